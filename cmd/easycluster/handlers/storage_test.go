package handlers

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	testutil "github.com/imamik/easycluster/internal/testing"
)

func TestFileShareCreate_NothingExists(t *testing.T) {
	fixture := testutil.NewAzureFixture().NothingExists()
	out := stubEnvironment(t, testutil.MinimalConfig(), fixture)

	require.NoError(t, FileShareCreate(context.Background(), &Options{}))

	assert.Contains(t, out.String(), "Created resource `"+testutil.TestStorageAccount+"`.")
	assert.Contains(t, out.String(), "Created resource `"+testutil.TestFileShare+"`.")
	fixture.Factory.AssertNotCalled(t, "Workspaces")
	fixture.Factory.AssertNotCalled(t, "Clusters")
}

func TestFileShareCreate_Idempotent(t *testing.T) {
	fixture := testutil.NewAzureFixture().EverythingExists()
	out := stubEnvironment(t, testutil.MinimalConfig(), fixture)

	require.NoError(t, FileShareCreate(context.Background(), &Options{}))
	require.NoError(t, FileShareCreate(context.Background(), &Options{}))

	assert.NotContains(t, out.String(), "Created resource")
	assert.Contains(t, out.String(), "`"+testutil.TestFileShare+"` already exists.")
	fixture.ResourceGroups.AssertNotCalled(t, "CreateOrUpdateResourceGroup", mock.Anything, mock.Anything, mock.Anything)
	fixture.StorageAccounts.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	fixture.FileService.AssertNotCalled(t, "CreateShare", mock.Anything, mock.Anything)
}

func TestFileShareCreate_MissingFlags(t *testing.T) {
	cfg := testutil.NewConfigBuilder().WithStorage("", "").Build()
	stubEnvironment(t, cfg, testutil.NewAzureFixture())

	err := FileShareCreate(context.Background(), &Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--storage-account-name")
	assert.Contains(t, err.Error(), "--fileshare-name")
}

func TestDirectoryCreate(t *testing.T) {
	fixture := testutil.NewAzureFixture()
	fixture.ResourceGroups.On("ListResourceGroups", mock.Anything).Return([]string{testutil.TestResourceGroup}, nil)
	fixture.StorageAccounts.On("ListKeys", mock.Anything, testutil.TestResourceGroup, testutil.TestStorageAccount).
		Return(testutil.TestKeys(), nil)
	fixture.FileService.On("ListShares", mock.Anything).Return([]string{testutil.TestFileShare}, nil)
	fixture.FileService.On("ListRootEntries", mock.Anything, testutil.TestFileShare).Return([]string{"other"}, nil)
	fixture.FileService.On("CreateDirectory", mock.Anything, testutil.TestFileShare, testutil.TestDirectory).Return(nil)

	cfg := testutil.NewConfigBuilder().WithDirectory(testutil.TestDirectory).Build()
	out := stubEnvironment(t, cfg, fixture)

	require.NoError(t, DirectoryCreate(context.Background(), &Options{}))

	assert.Contains(t, out.String(), "Created resource `"+testutil.TestDirectory+"`.")
	// The account is addressed as existing: only its key is read.
	fixture.StorageAccounts.AssertNotCalled(t, "CheckNameAvailability", mock.Anything, mock.Anything)
	mock.AssertExpectationsForObjects(t, fixture.Mocks()...)
}

func TestDirectoryCreate_KeyNotFound(t *testing.T) {
	fixture := testutil.NewAzureFixture()
	fixture.ResourceGroups.On("ListResourceGroups", mock.Anything).Return([]string{testutil.TestResourceGroup}, nil)
	fixture.StorageAccounts.On("ListKeys", mock.Anything, testutil.TestResourceGroup, testutil.TestStorageAccount).
		Return(testutil.TestKeys()[1:], nil)

	cfg := testutil.NewConfigBuilder().WithDirectory(testutil.TestDirectory).Build()
	stubEnvironment(t, cfg, fixture)

	err := DirectoryCreate(context.Background(), &Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `key "key1" not found`)
	fixture.Factory.AssertNotCalled(t, "FileService", mock.Anything, mock.Anything)
}

func TestFileShareCreate_MetricsFile(t *testing.T) {
	fixture := testutil.NewAzureFixture().EverythingExists()
	stubEnvironment(t, testutil.MinimalConfig(), fixture)

	path := filepath.Join(t.TempDir(), "metrics.prom")
	require.NoError(t, FileShareCreate(context.Background(), &Options{MetricsFile: path}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `easycluster_resource_ensure_total{kind="file share",outcome="exists"} 1`)
	assert.Contains(t, string(data), "easycluster_step_duration_seconds")
}
