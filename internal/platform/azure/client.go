package azure

import "context"

// NameUnavailableReason explains why a storage account name cannot be used.
type NameUnavailableReason string

// Reasons reported by the storage name availability check.
const (
	ReasonAlreadyExists      NameUnavailableReason = "AlreadyExists"
	ReasonAccountNameInvalid NameUnavailableReason = "AccountNameInvalid"
)

// NameAvailability is the result of a storage account name check.
type NameAvailability struct {
	Available bool
	Reason    NameUnavailableReason
	Message   string
}

// AccountKey is one access key of a storage account.
type AccountKey struct {
	Name  string
	Value string
}

// Workspace is a Batch AI workspace.
type Workspace struct {
	Name              string
	Location          string
	ProvisioningState string
}

// FileShareMount describes an Azure Files share mounted on every cluster node.
type FileShareMount struct {
	AccountName       string
	AccountKey        string
	ShareURL          string
	RelativeMountPath string
}

// ClusterParameters holds all parameters for creating a Batch AI cluster.
type ClusterParameters struct {
	VMSize            string
	TargetNodeCount   int32
	AdminUsername     string
	AdminPassword     string
	AdminSSHPublicKey string

	// FileShare is mounted under $AZ_BATCHAI_MOUNT_ROOT when set.
	FileShare *FileShareMount
}

// NodeStateCounts breaks the allocated nodes of a cluster down by state.
type NodeStateCounts struct {
	Idle      int32
	Running   int32
	Preparing int32
	Unusable  int32
	Leaving   int32
}

// NameValue is a detail entry attached to a cluster error.
type NameValue struct {
	Name  string
	Value string
}

// ClusterError is an error reported by the service for a cluster.
type ClusterError struct {
	Code    string
	Message string
	Details []NameValue
}

// Cluster is the observed state of a Batch AI cluster.
type Cluster struct {
	Name              string
	VMSize            string
	ProvisioningState string
	AllocationState   string
	TargetNodeCount   int32
	CurrentNodeCount  int32
	NodeStateCounts   NodeStateCounts
	Errors            []ClusterError
}

// ResourceGroupsAPI defines the resource group operations.
type ResourceGroupsAPI interface {
	ListResourceGroups(ctx context.Context) ([]string, error)
	CreateOrUpdateResourceGroup(ctx context.Context, name, location string) error
}

// StorageAccountsAPI defines the storage account operations.
type StorageAccountsAPI interface {
	CheckNameAvailability(ctx context.Context, name string) (*NameAvailability, error)
	// AccountExists reports whether the account exists in the given resource group.
	AccountExists(ctx context.Context, resourceGroup, name string) (bool, error)
	// CreateAccount creates a Standard_GRS StorageV2 account and waits for completion.
	CreateAccount(ctx context.Context, resourceGroup, name, location string) error
	ListKeys(ctx context.Context, resourceGroup, name string) ([]AccountKey, error)
}

// FileServiceAPI defines the Azure Files operations of one storage account.
type FileServiceAPI interface {
	// ListShares returns share names, snapshots included.
	ListShares(ctx context.Context) ([]string, error)
	// CreateShare returns an error wrapping ErrAlreadyExists when the share exists.
	CreateShare(ctx context.Context, share string) error
	// ListRootEntries returns the names of directories and files at the share root.
	ListRootEntries(ctx context.Context, share string) ([]string, error)
	// CreateDirectory returns an error wrapping ErrAlreadyExists when the directory exists.
	CreateDirectory(ctx context.Context, share, directory string) error
}

// WorkspacesAPI defines the Batch AI workspace operations.
type WorkspacesAPI interface {
	ListWorkspaces(ctx context.Context, resourceGroup string) ([]Workspace, error)
	// CreateWorkspace creates the workspace and waits for completion.
	CreateWorkspace(ctx context.Context, resourceGroup, name, location string) error
}

// ClustersAPI defines the Batch AI cluster operations.
type ClustersAPI interface {
	// CreateCluster submits the cluster and blocks until the operation is terminal.
	CreateCluster(ctx context.Context, resourceGroup, workspace, name string, params ClusterParameters) (*Cluster, error)
	GetCluster(ctx context.Context, resourceGroup, workspace, name string) (*Cluster, error)
}

// ClientFactory builds the per-kind clients of one subscription.
type ClientFactory interface {
	ResourceGroups() (ResourceGroupsAPI, error)
	StorageAccounts() (StorageAccountsAPI, error)
	FileService(account, key string) (FileServiceAPI, error)
	Workspaces() (WorkspacesAPI, error)
	Clusters() (ClustersAPI, error)
}
