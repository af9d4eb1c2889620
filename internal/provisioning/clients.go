package provisioning

import (
	"github.com/imamik/easycluster/internal/platform/azure"
)

// ClientKind identifies one of the memoized API clients.
type ClientKind string

// Client kinds held by Clients.
const (
	KindResourceGroups  ClientKind = "resource groups"
	KindStorageAccounts ClientKind = "storage accounts"
	KindFileService     ClientKind = "file service"
	KindWorkspaces      ClientKind = "workspaces"
	KindClusters        ClientKind = "clusters"
)

// Clients memoizes one client per kind for the lifetime of a run.
// It is not safe for concurrent use; a run is driven by a single goroutine.
type Clients struct {
	factory azure.ClientFactory

	resourceGroups  azure.ResourceGroupsAPI
	storageAccounts azure.StorageAccountsAPI
	fileService     azure.FileServiceAPI
	workspaces      azure.WorkspacesAPI
	clusters        azure.ClustersAPI
}

// NewClients creates a client cache backed by factory.
func NewClients(factory azure.ClientFactory) *Clients {
	return &Clients{factory: factory}
}

// memoize returns *slot, building it with build on first access.
func memoize[T any](slot *T, isSet bool, kind ClientKind, build func() (T, error)) (T, error) {
	if isSet {
		return *slot, nil
	}
	client, err := build()
	if err != nil {
		var zero T
		return zero, &AuthError{Kind: kind, Cause: err}
	}
	*slot = client
	return client, nil
}

// ResourceGroups returns the resource group client.
func (c *Clients) ResourceGroups() (azure.ResourceGroupsAPI, error) {
	return memoize(&c.resourceGroups, c.resourceGroups != nil, KindResourceGroups, c.factory.ResourceGroups)
}

// StorageAccounts returns the storage account client.
func (c *Clients) StorageAccounts() (azure.StorageAccountsAPI, error) {
	return memoize(&c.storageAccounts, c.storageAccounts != nil, KindStorageAccounts, c.factory.StorageAccounts)
}

// FileService returns the Azure Files client of account, authenticated with key.
// The client is bound to the first account it is requested for.
func (c *Clients) FileService(account, key string) (azure.FileServiceAPI, error) {
	return memoize(&c.fileService, c.fileService != nil, KindFileService, func() (azure.FileServiceAPI, error) {
		return c.factory.FileService(account, key)
	})
}

// Workspaces returns the workspace client.
func (c *Clients) Workspaces() (azure.WorkspacesAPI, error) {
	return memoize(&c.workspaces, c.workspaces != nil, KindWorkspaces, c.factory.Workspaces)
}

// Clusters returns the cluster client.
func (c *Clients) Clusters() (azure.ClustersAPI, error) {
	return memoize(&c.clusters, c.clusters != nil, KindClusters, c.factory.Clusters)
}
