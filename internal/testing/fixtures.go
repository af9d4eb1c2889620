package testing

import (
	"github.com/stretchr/testify/mock"

	"github.com/imamik/easycluster/internal/platform/azure"
)

// AzureFixture bundles one mock per Azure API behind a MockFactory.
type AzureFixture struct {
	Factory         *MockFactory
	ResourceGroups  *MockResourceGroups
	StorageAccounts *MockStorageAccounts
	FileService     *MockFileService
	Workspaces      *MockWorkspaces
	Clusters        *MockClusters
}

// NewAzureFixture creates a fixture whose factory hands out its mocks.
// The file service is only handed out for the test account and key.
func NewAzureFixture() *AzureFixture {
	f := &AzureFixture{
		Factory:         &MockFactory{},
		ResourceGroups:  &MockResourceGroups{},
		StorageAccounts: &MockStorageAccounts{},
		FileService:     &MockFileService{},
		Workspaces:      &MockWorkspaces{},
		Clusters:        &MockClusters{},
	}
	f.Factory.On("ResourceGroups").Return(f.ResourceGroups, nil).Maybe()
	f.Factory.On("StorageAccounts").Return(f.StorageAccounts, nil).Maybe()
	f.Factory.On("FileService", TestStorageAccount, TestStorageKey).Return(f.FileService, nil).Maybe()
	f.Factory.On("Workspaces").Return(f.Workspaces, nil).Maybe()
	f.Factory.On("Clusters").Return(f.Clusters, nil).Maybe()
	return f
}

// Mocks returns every API mock for use with mock.AssertExpectationsForObjects.
func (f *AzureFixture) Mocks() []any {
	return []any{f.ResourceGroups, f.StorageAccounts, f.FileService, f.Workspaces, f.Clusters}
}

// NothingExists configures every listing to come back empty and every create to succeed.
func (f *AzureFixture) NothingExists() *AzureFixture {
	f.ResourceGroups.On("ListResourceGroups", mock.Anything).Return([]string{"other-rg"}, nil)
	f.ResourceGroups.On("CreateOrUpdateResourceGroup", mock.Anything, TestResourceGroup, TestLocation).Return(nil)

	f.StorageAccounts.On("CheckNameAvailability", mock.Anything, TestStorageAccount).
		Return(&azure.NameAvailability{Available: true}, nil)
	f.StorageAccounts.On("CreateAccount", mock.Anything, TestResourceGroup, TestStorageAccount, TestLocation).Return(nil)
	f.StorageAccounts.On("ListKeys", mock.Anything, TestResourceGroup, TestStorageAccount).Return(TestKeys(), nil)

	f.FileService.On("ListShares", mock.Anything).Return([]string{}, nil)
	f.FileService.On("CreateShare", mock.Anything, TestFileShare).Return(nil)

	f.Workspaces.On("ListWorkspaces", mock.Anything, TestResourceGroup).Return([]azure.Workspace{}, nil)
	f.Workspaces.On("CreateWorkspace", mock.Anything, TestResourceGroup, TestWorkspace, TestLocation).Return(nil)

	f.Clusters.On("CreateCluster", mock.Anything, TestResourceGroup, TestWorkspace, TestCluster, mock.Anything).
		Return(SteadyCluster(1), nil)
	return f
}

// EverythingExists configures every listing to report the test resources.
func (f *AzureFixture) EverythingExists() *AzureFixture {
	f.ResourceGroups.On("ListResourceGroups", mock.Anything).Return([]string{TestResourceGroup}, nil)

	f.StorageAccounts.On("CheckNameAvailability", mock.Anything, TestStorageAccount).
		Return(&azure.NameAvailability{Available: false, Reason: azure.ReasonAlreadyExists}, nil)
	f.StorageAccounts.On("AccountExists", mock.Anything, TestResourceGroup, TestStorageAccount).Return(true, nil)
	f.StorageAccounts.On("ListKeys", mock.Anything, TestResourceGroup, TestStorageAccount).Return(TestKeys(), nil)

	f.FileService.On("ListShares", mock.Anything).Return([]string{TestFileShare}, nil)

	f.Workspaces.On("ListWorkspaces", mock.Anything, TestResourceGroup).
		Return([]azure.Workspace{{Name: TestWorkspace, Location: TestLocation}}, nil)
	return f
}

// TestKeys returns the access keys of the test storage account.
func TestKeys() []azure.AccountKey {
	return []azure.AccountKey{
		{Name: "key1", Value: TestStorageKey},
		{Name: "key2", Value: "c2VjcmV0LWtleS0y"},
	}
}

// SteadyCluster returns a cluster with all nodes allocated and idle.
func SteadyCluster(nodes int32) *azure.Cluster {
	return &azure.Cluster{
		Name:              TestCluster,
		VMSize:            "STANDARD_NC6",
		ProvisioningState: "succeeded",
		AllocationState:   "steady",
		TargetNodeCount:   nodes,
		CurrentNodeCount:  nodes,
		NodeStateCounts:   azure.NodeStateCounts{Idle: nodes},
	}
}
