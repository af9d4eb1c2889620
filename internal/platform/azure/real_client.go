package azure

import (
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/storage/armstorage"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azfile/service"

	"github.com/imamik/easycluster/internal/util/naming"
)

// RealClient implements ClientFactory using the Azure SDK.
type RealClient struct {
	subscriptionID string
	cred           azcore.TokenCredential
	armOptions     *arm.ClientOptions
	fileOptions    *service.ClientOptions
	fileServiceURL func(account string) string
	pollFrequency  time.Duration
}

// ClientOption configures a RealClient.
type ClientOption func(*RealClient)

// WithARMClientOptions sets the pipeline options of the management clients.
func WithARMClientOptions(opts *arm.ClientOptions) ClientOption {
	return func(c *RealClient) {
		c.armOptions = opts
	}
}

// WithFileClientOptions sets the pipeline options of the Azure Files client.
func WithFileClientOptions(opts *service.ClientOptions) ClientOption {
	return func(c *RealClient) {
		c.fileOptions = opts
	}
}

// WithFileServiceURL overrides how the file endpoint of an account is derived.
func WithFileServiceURL(fn func(account string) string) ClientOption {
	return func(c *RealClient) {
		c.fileServiceURL = fn
	}
}

// WithPollFrequency sets the polling interval of long-running operations.
func WithPollFrequency(d time.Duration) ClientOption {
	return func(c *RealClient) {
		c.pollFrequency = d
	}
}

// NewRealClient creates a new RealClient with optional configuration.
func NewRealClient(subscriptionID string, cred azcore.TokenCredential, opts ...ClientOption) *RealClient {
	c := &RealClient{
		subscriptionID: subscriptionID,
		cred:           cred,
		fileServiceURL: naming.FileServiceURL,
		pollFrequency:  10 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ResourceGroups returns a resource group client.
func (c *RealClient) ResourceGroups() (ResourceGroupsAPI, error) {
	client, err := armresources.NewResourceGroupsClient(c.subscriptionID, c.cred, c.armOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource groups client: %w", err)
	}
	return &resourceGroupsClient{client: client}, nil
}

// StorageAccounts returns a storage account client.
func (c *RealClient) StorageAccounts() (StorageAccountsAPI, error) {
	client, err := armstorage.NewAccountsClient(c.subscriptionID, c.cred, c.armOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage accounts client: %w", err)
	}
	return &storageAccountsClient{client: client, pollFrequency: c.pollFrequency}, nil
}

// FileService returns an Azure Files client authenticated with an account key.
func (c *RealClient) FileService(account, key string) (FileServiceAPI, error) {
	cred, err := service.NewSharedKeyCredential(account, key)
	if err != nil {
		return nil, fmt.Errorf("failed to create shared key credential: %w", err)
	}
	client, err := service.NewClientWithSharedKeyCredential(c.fileServiceURL(account), cred, c.fileOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to create file service client: %w", err)
	}
	return &fileServiceClient{client: client}, nil
}

// Workspaces returns a Batch AI workspace client.
func (c *RealClient) Workspaces() (WorkspacesAPI, error) {
	return c.batchAI()
}

// Clusters returns a Batch AI cluster client.
func (c *RealClient) Clusters() (ClustersAPI, error) {
	return c.batchAI()
}

func (c *RealClient) batchAI() (*batchAIClient, error) {
	client, err := arm.NewClient(batchAIModuleName, batchAIModuleVersion, c.cred, c.armOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to create batch ai client: %w", err)
	}
	return &batchAIClient{
		internal:       client,
		subscriptionID: c.subscriptionID,
		pollFrequency:  c.pollFrequency,
	}, nil
}
