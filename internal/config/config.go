package config

// DefaultConfigFilename is the file looked up when no --config flag is given.
const DefaultConfigFilename = "easycluster.yaml"

// Defaults applied to cluster settings left empty.
const (
	DefaultVMSize    = "STANDARD_NC6"
	DefaultNodeCount = 1
	DefaultMountPath = "afs"
)

// MaxNodeCount caps --node-count so it always fits the int32 target node count.
const MaxNodeCount = 1000

// Config holds everything needed to address and provision the resources of one run.
type Config struct {
	SubscriptionID string `yaml:"subscription_id"`
	ResourceGroup  string `yaml:"resource_group"`
	Location       string `yaml:"location"`

	AAD       AAD     `yaml:"aad"`
	Storage   Storage `yaml:"storage"`
	Workspace string  `yaml:"workspace"`
	Cluster   Cluster `yaml:"cluster"`
}

// AAD holds the service principal used to obtain management tokens.
type AAD struct {
	ClientID string `yaml:"client_id"`
	Secret   string `yaml:"secret"`
	TenantID string `yaml:"tenant_id"`
}

// Storage addresses the storage account and the Azure Files resources inside it.
type Storage struct {
	AccountName   string `yaml:"account_name"`
	FileShareName string `yaml:"fileshare_name"`
	DirectoryName string `yaml:"directory_name"`
}

// Cluster describes the compute cluster to create.
type Cluster struct {
	Name              string `yaml:"name"`
	NodeCount         int    `yaml:"node_count"`
	VMSize            string `yaml:"vm_size"`
	AdminUsername     string `yaml:"admin_username"`
	AdminPassword     string `yaml:"admin_password"`
	AdminSSHPublicKey string `yaml:"admin_ssh_public_key"`

	// MountPath is the path, relative to the node mount root, where the file share is mounted.
	MountPath string `yaml:"mount_path"`
}

// ApplyDefaults fills cluster settings that have a sensible default.
func (c *Config) ApplyDefaults() {
	if c.Cluster.VMSize == "" {
		c.Cluster.VMSize = DefaultVMSize
	}
	if c.Cluster.NodeCount == 0 {
		c.Cluster.NodeCount = DefaultNodeCount
	}
	if c.Cluster.MountPath == "" {
		c.Cluster.MountPath = DefaultMountPath
	}
}

// Merge returns a copy of base where every non-zero field of override wins.
func Merge(base, override *Config) *Config {
	out := &Config{}
	if base != nil {
		*out = *base
	}
	if override == nil {
		return out
	}

	setString(&out.SubscriptionID, override.SubscriptionID)
	setString(&out.ResourceGroup, override.ResourceGroup)
	setString(&out.Location, override.Location)

	setString(&out.AAD.ClientID, override.AAD.ClientID)
	setString(&out.AAD.Secret, override.AAD.Secret)
	setString(&out.AAD.TenantID, override.AAD.TenantID)

	setString(&out.Storage.AccountName, override.Storage.AccountName)
	setString(&out.Storage.FileShareName, override.Storage.FileShareName)
	setString(&out.Storage.DirectoryName, override.Storage.DirectoryName)

	setString(&out.Workspace, override.Workspace)

	setString(&out.Cluster.Name, override.Cluster.Name)
	if override.Cluster.NodeCount != 0 {
		out.Cluster.NodeCount = override.Cluster.NodeCount
	}
	setString(&out.Cluster.VMSize, override.Cluster.VMSize)
	setString(&out.Cluster.AdminUsername, override.Cluster.AdminUsername)
	setString(&out.Cluster.AdminPassword, override.Cluster.AdminPassword)
	setString(&out.Cluster.AdminSSHPublicKey, override.Cluster.AdminSSHPublicKey)
	setString(&out.Cluster.MountPath, override.Cluster.MountPath)

	return out
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
