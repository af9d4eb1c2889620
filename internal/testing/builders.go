package testing

import (
	"github.com/imamik/easycluster/internal/config"
)

// Values used by NewConfigBuilder.
const (
	TestSubscriptionID = "00000000-0000-0000-0000-000000000001"
	TestResourceGroup  = "test-rg"
	TestLocation       = "eastus"
	TestStorageAccount = "teststorage01"
	TestFileShare      = "data"
	TestDirectory      = "logs"
	TestWorkspace      = "test-ws"
	TestCluster        = "test-cluster"
	TestStorageKey     = "c2VjcmV0LWtleS0x"
)

// ConfigBuilder provides a fluent interface for constructing test configs.
// Each method returns a new builder (immutable) for chaining.
type ConfigBuilder struct {
	cfg config.Config
}

// NewConfigBuilder creates a new ConfigBuilder with sensible defaults.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: config.Config{
			SubscriptionID: TestSubscriptionID,
			ResourceGroup:  TestResourceGroup,
			Location:       TestLocation,
			AAD: config.AAD{
				ClientID: "client-id",
				Secret:   "client-secret",
				TenantID: "tenant-id",
			},
			Storage: config.Storage{
				AccountName:   TestStorageAccount,
				FileShareName: TestFileShare,
			},
			Workspace: TestWorkspace,
			Cluster: config.Cluster{
				Name:          TestCluster,
				NodeCount:     1,
				VMSize:        config.DefaultVMSize,
				AdminUsername: "azureuser",
				AdminPassword: "P@ssw0rd!",
				MountPath:     config.DefaultMountPath,
			},
		},
	}
}

// WithResourceGroup sets the resource group name.
func (b *ConfigBuilder) WithResourceGroup(name string) *ConfigBuilder {
	newBuilder := b.clone()
	newBuilder.cfg.ResourceGroup = name
	return newBuilder
}

// WithLocation sets the Azure region.
func (b *ConfigBuilder) WithLocation(location string) *ConfigBuilder {
	newBuilder := b.clone()
	newBuilder.cfg.Location = location
	return newBuilder
}

// WithStorage sets the storage account and file share names.
func (b *ConfigBuilder) WithStorage(account, share string) *ConfigBuilder {
	newBuilder := b.clone()
	newBuilder.cfg.Storage.AccountName = account
	newBuilder.cfg.Storage.FileShareName = share
	return newBuilder
}

// WithDirectory sets the directory created inside the file share.
func (b *ConfigBuilder) WithDirectory(name string) *ConfigBuilder {
	newBuilder := b.clone()
	newBuilder.cfg.Storage.DirectoryName = name
	return newBuilder
}

// WithWorkspace sets the workspace name.
func (b *ConfigBuilder) WithWorkspace(name string) *ConfigBuilder {
	newBuilder := b.clone()
	newBuilder.cfg.Workspace = name
	return newBuilder
}

// WithCluster sets the cluster name, VM size and node count.
func (b *ConfigBuilder) WithCluster(name, vmSize string, nodes int) *ConfigBuilder {
	newBuilder := b.clone()
	newBuilder.cfg.Cluster.Name = name
	newBuilder.cfg.Cluster.VMSize = vmSize
	newBuilder.cfg.Cluster.NodeCount = nodes
	return newBuilder
}

// WithSSHPublicKey sets the admin SSH public key.
func (b *ConfigBuilder) WithSSHPublicKey(key string) *ConfigBuilder {
	newBuilder := b.clone()
	newBuilder.cfg.Cluster.AdminSSHPublicKey = key
	return newBuilder
}

// WithMountPath sets where the file share is mounted on cluster nodes.
func (b *ConfigBuilder) WithMountPath(path string) *ConfigBuilder {
	newBuilder := b.clone()
	newBuilder.cfg.Cluster.MountPath = path
	return newBuilder
}

// Build returns the constructed config.
func (b *ConfigBuilder) Build() *config.Config {
	cfg := b.cfg // copy
	return &cfg
}

// clone creates a copy of the builder for immutability. Config holds no
// reference types, so a value copy is deep.
func (b *ConfigBuilder) clone() *ConfigBuilder {
	return &ConfigBuilder{cfg: b.cfg}
}

// MinimalConfig returns a minimal valid config for simple tests.
func MinimalConfig() *config.Config {
	return NewConfigBuilder().Build()
}
