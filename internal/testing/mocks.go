package testing

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/imamik/easycluster/internal/platform/azure"
)

// MockResourceGroups is a mock implementation of azure.ResourceGroupsAPI.
type MockResourceGroups struct {
	mock.Mock
}

// ListResourceGroups returns the mocked group names.
func (m *MockResourceGroups) ListResourceGroups(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// CreateOrUpdateResourceGroup records the create call.
func (m *MockResourceGroups) CreateOrUpdateResourceGroup(ctx context.Context, name, location string) error {
	args := m.Called(ctx, name, location)
	return args.Error(0)
}

// MockStorageAccounts is a mock implementation of azure.StorageAccountsAPI.
type MockStorageAccounts struct {
	mock.Mock
}

// CheckNameAvailability returns the mocked availability.
func (m *MockStorageAccounts) CheckNameAvailability(ctx context.Context, name string) (*azure.NameAvailability, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*azure.NameAvailability), args.Error(1)
}

// AccountExists returns whether the mocked account exists.
func (m *MockStorageAccounts) AccountExists(ctx context.Context, resourceGroup, name string) (bool, error) {
	args := m.Called(ctx, resourceGroup, name)
	return args.Bool(0), args.Error(1)
}

// CreateAccount records the create call.
func (m *MockStorageAccounts) CreateAccount(ctx context.Context, resourceGroup, name, location string) error {
	args := m.Called(ctx, resourceGroup, name, location)
	return args.Error(0)
}

// ListKeys returns the mocked access keys.
func (m *MockStorageAccounts) ListKeys(ctx context.Context, resourceGroup, name string) ([]azure.AccountKey, error) {
	args := m.Called(ctx, resourceGroup, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]azure.AccountKey), args.Error(1)
}

// MockFileService is a mock implementation of azure.FileServiceAPI.
type MockFileService struct {
	mock.Mock
}

// ListShares returns the mocked share names.
func (m *MockFileService) ListShares(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// CreateShare records the create call.
func (m *MockFileService) CreateShare(ctx context.Context, share string) error {
	args := m.Called(ctx, share)
	return args.Error(0)
}

// ListRootEntries returns the mocked root entry names.
func (m *MockFileService) ListRootEntries(ctx context.Context, share string) ([]string, error) {
	args := m.Called(ctx, share)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// CreateDirectory records the create call.
func (m *MockFileService) CreateDirectory(ctx context.Context, share, directory string) error {
	args := m.Called(ctx, share, directory)
	return args.Error(0)
}

// MockWorkspaces is a mock implementation of azure.WorkspacesAPI.
type MockWorkspaces struct {
	mock.Mock
}

// ListWorkspaces returns the mocked workspaces.
func (m *MockWorkspaces) ListWorkspaces(ctx context.Context, resourceGroup string) ([]azure.Workspace, error) {
	args := m.Called(ctx, resourceGroup)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]azure.Workspace), args.Error(1)
}

// CreateWorkspace records the create call.
func (m *MockWorkspaces) CreateWorkspace(ctx context.Context, resourceGroup, name, location string) error {
	args := m.Called(ctx, resourceGroup, name, location)
	return args.Error(0)
}

// MockClusters is a mock implementation of azure.ClustersAPI.
type MockClusters struct {
	mock.Mock
}

// CreateCluster returns the mocked cluster.
func (m *MockClusters) CreateCluster(ctx context.Context, resourceGroup, workspace, name string, params azure.ClusterParameters) (*azure.Cluster, error) {
	args := m.Called(ctx, resourceGroup, workspace, name, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*azure.Cluster), args.Error(1)
}

// GetCluster returns the mocked cluster.
func (m *MockClusters) GetCluster(ctx context.Context, resourceGroup, workspace, name string) (*azure.Cluster, error) {
	args := m.Called(ctx, resourceGroup, workspace, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*azure.Cluster), args.Error(1)
}

// MockFactory is a mock implementation of azure.ClientFactory.
type MockFactory struct {
	mock.Mock
}

// ResourceGroups returns the mocked resource group client.
func (m *MockFactory) ResourceGroups() (azure.ResourceGroupsAPI, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(azure.ResourceGroupsAPI), args.Error(1)
}

// StorageAccounts returns the mocked storage account client.
func (m *MockFactory) StorageAccounts() (azure.StorageAccountsAPI, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(azure.StorageAccountsAPI), args.Error(1)
}

// FileService returns the mocked file service client.
func (m *MockFactory) FileService(account, key string) (azure.FileServiceAPI, error) {
	args := m.Called(account, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(azure.FileServiceAPI), args.Error(1)
}

// Workspaces returns the mocked workspace client.
func (m *MockFactory) Workspaces() (azure.WorkspacesAPI, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(azure.WorkspacesAPI), args.Error(1)
}

// Clusters returns the mocked cluster client.
func (m *MockFactory) Clusters() (azure.ClustersAPI, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(azure.ClustersAPI), args.Error(1)
}
