package resourcegroup

import (
	"bytes"
	"errors"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/imamik/easycluster/internal/config"
	"github.com/imamik/easycluster/internal/provisioning"
	testutil "github.com/imamik/easycluster/internal/testing"
)

func createTestContext(t *testing.T, fixture *testutil.AzureFixture) (*provisioning.Context, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	ctx := provisioning.NewContext(
		testutil.TestContext(t),
		testutil.MinimalConfig(),
		fixture.Factory,
		provisioning.WithObserver(provisioning.NewWriterObserver(out, logr.Discard())),
		provisioning.WithTimeouts(config.TestTimeouts()),
	)
	return ctx, out
}

func TestProvisioner_Name(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "resource group", NewProvisioner().Name())
}

func TestEnsureExists_Creates(t *testing.T) {
	t.Parallel()

	fixture := testutil.NewAzureFixture()
	fixture.ResourceGroups.On("ListResourceGroups", mock.Anything).Return([]string{"other"}, nil).Once()
	fixture.ResourceGroups.On("CreateOrUpdateResourceGroup", mock.Anything, testutil.TestResourceGroup, testutil.TestLocation).
		Return(nil).Once()

	ctx, out := createTestContext(t, fixture)
	outcome, err := EnsureExists(ctx)

	require.NoError(t, err)
	assert.Equal(t, provisioning.OutcomeCreated, outcome)
	assert.Equal(t, "Created resource `test-rg`.\n", out.String())
	fixture.ResourceGroups.AssertExpectations(t)
}

func TestEnsureExists_Idempotent(t *testing.T) {
	t.Parallel()

	fixture := testutil.NewAzureFixture()
	fixture.ResourceGroups.On("ListResourceGroups", mock.Anything).Return([]string{testutil.TestResourceGroup}, nil).Twice()

	ctx, out := createTestContext(t, fixture)
	for range 2 {
		outcome, err := EnsureExists(ctx)
		require.NoError(t, err)
		assert.Equal(t, provisioning.OutcomeAlreadyExists, outcome)
	}

	assert.Equal(t, "`test-rg` already exists.\n`test-rg` already exists.\n", out.String())
	fixture.ResourceGroups.AssertNotCalled(t, "CreateOrUpdateResourceGroup", mock.Anything, mock.Anything, mock.Anything)
}

func TestEnsureExists_ListFailureProceedsToCreate(t *testing.T) {
	t.Parallel()

	fixture := testutil.NewAzureFixture()
	fixture.ResourceGroups.On("ListResourceGroups", mock.Anything).Return(nil, errors.New("connection reset")).Once()
	fixture.ResourceGroups.On("CreateOrUpdateResourceGroup", mock.Anything, testutil.TestResourceGroup, testutil.TestLocation).
		Return(nil).Once()

	ctx, out := createTestContext(t, fixture)
	outcome, err := EnsureExists(ctx)

	require.NoError(t, err)
	assert.Equal(t, provisioning.OutcomeCreated, outcome)
	assert.Contains(t, out.String(), "Could not list resource groups: connection reset.")
	assert.Contains(t, out.String(), "Created resource `test-rg`.")
}

func TestEnsureExists_CreateFailure(t *testing.T) {
	t.Parallel()

	cause := errors.New("location not allowed")
	fixture := testutil.NewAzureFixture()
	fixture.ResourceGroups.On("ListResourceGroups", mock.Anything).Return([]string{}, nil).Once()
	fixture.ResourceGroups.On("CreateOrUpdateResourceGroup", mock.Anything, mock.Anything, mock.Anything).Return(cause).Once()

	ctx, out := createTestContext(t, fixture)
	_, err := EnsureExists(ctx)

	require.Error(t, err)
	assert.True(t, provisioning.IsCreateFailed(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Failed to create `test-rg`. Exception: location not allowed\n", out.String())
}

func TestEnsureExists_ClientFailure(t *testing.T) {
	t.Parallel()

	factory := &testutil.MockFactory{}
	factory.On("ResourceGroups").Return(nil, errors.New("invalid client secret"))
	fixture := testutil.NewAzureFixture()
	fixture.Factory = factory

	ctx, _ := createTestContext(t, fixture)
	_, err := EnsureExists(ctx)

	assert.True(t, provisioning.IsAuthError(err))
}
