package provisioning

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testutil "github.com/imamik/easycluster/internal/testing"
)

func TestClients_MemoizesPerKind(t *testing.T) {
	t.Parallel()

	factory := &testutil.MockFactory{}
	rg := &testutil.MockResourceGroups{}
	ws := &testutil.MockWorkspaces{}
	factory.On("ResourceGroups").Return(rg, nil).Once()
	factory.On("Workspaces").Return(ws, nil).Once()

	clients := NewClients(factory)

	for range 3 {
		got, err := clients.ResourceGroups()
		require.NoError(t, err)
		assert.Same(t, rg, got)
	}
	for range 2 {
		got, err := clients.Workspaces()
		require.NoError(t, err)
		assert.Same(t, ws, got)
	}

	factory.AssertNumberOfCalls(t, "ResourceGroups", 1)
	factory.AssertNumberOfCalls(t, "Workspaces", 1)
	factory.AssertNotCalled(t, "Clusters")
}

func TestClients_FileServiceBoundToFirstAccount(t *testing.T) {
	t.Parallel()

	factory := &testutil.MockFactory{}
	fs := &testutil.MockFileService{}
	factory.On("FileService", "acct", "key").Return(fs, nil).Once()

	clients := NewClients(factory)
	first, err := clients.FileService("acct", "key")
	require.NoError(t, err)
	second, err := clients.FileService("acct", "key")
	require.NoError(t, err)

	assert.Same(t, first, second)
	factory.AssertExpectations(t)
}

func TestClients_FactoryFailureIsAuthError(t *testing.T) {
	t.Parallel()

	cause := errors.New("no token")
	factory := &testutil.MockFactory{}
	factory.On("StorageAccounts").Return(nil, cause).Once()
	factory.On("Clusters").Return(nil, cause).Once()

	clients := NewClients(factory)

	_, err := clients.StorageAccounts()
	require.Error(t, err)
	assert.True(t, IsAuthError(err))
	assert.ErrorIs(t, err, cause)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, KindStorageAccounts, authErr.Kind)
	assert.Contains(t, err.Error(), "storage accounts client")

	_, err = clients.Clusters()
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, KindClusters, authErr.Kind)
}

func TestClients_FailureIsNotMemoized(t *testing.T) {
	t.Parallel()

	factory := &testutil.MockFactory{}
	clusters := &testutil.MockClusters{}
	factory.On("Clusters").Return(nil, errors.New("transient")).Once()
	factory.On("Clusters").Return(clusters, nil).Once()

	clients := NewClients(factory)
	_, err := clients.Clusters()
	require.Error(t, err)

	got, err := clients.Clusters()
	require.NoError(t, err)
	assert.Same(t, clusters, got)
}
