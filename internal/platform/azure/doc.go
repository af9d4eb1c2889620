// Package azure provides a wrapper around the Azure management and storage APIs.
//
// Each remote concern is exposed through a narrow interface (ResourceGroupsAPI,
// StorageAccountsAPI, FileServiceAPI, WorkspacesAPI, ClustersAPI) so that the
// provisioning layer can be tested without a subscription. RealClient builds
// the SDK-backed implementations: armresources and armstorage for management,
// azfile for shares and directories, and the azcore ARM pipeline for the
// Batch AI REST surface, which has no generated Go client.
package azure
