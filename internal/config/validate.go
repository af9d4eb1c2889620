package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/imamik/easycluster/internal/util/keygen"
	"github.com/imamik/easycluster/internal/util/naming"
)

// requirement pairs a flag name with the value it must provide.
type requirement struct {
	flag  string
	value string
}

func missing(reqs ...requirement) error {
	var names []string
	for _, r := range reqs {
		if strings.TrimSpace(r.value) == "" {
			names = append(names, "--"+r.flag)
		}
	}
	if len(names) == 0 {
		return nil
	}
	return fmt.Errorf("missing required settings: %s", strings.Join(names, ", "))
}

// ValidateGlobal checks the settings every command needs to reach the subscription.
func (c *Config) ValidateGlobal() error {
	if err := missing(
		requirement{"subscription-id", c.SubscriptionID},
		requirement{"resource-group-name", c.ResourceGroup},
		requirement{"location", c.Location},
		requirement{"aad-client-id", c.AAD.ClientID},
		requirement{"aad-secret-key", c.AAD.Secret},
		requirement{"aad-tenant-id", c.AAD.TenantID},
	); err != nil {
		return err
	}
	return naming.ValidateResourceGroup(c.ResourceGroup)
}

// ValidateClusterCreate checks the settings of `cluster create`.
func (c *Config) ValidateClusterCreate() error {
	if err := c.ValidateGlobal(); err != nil {
		return err
	}
	if err := missing(
		requirement{"cluster-name", c.Cluster.Name},
		requirement{"admin-username", c.Cluster.AdminUsername},
		requirement{"admin-password", c.Cluster.AdminPassword},
		requirement{"admin-ssh-public-key", c.Cluster.AdminSSHPublicKey},
		requirement{"workspace", c.Workspace},
		requirement{"storage-account-name", c.Storage.AccountName},
		requirement{"fileshare-name", c.Storage.FileShareName},
	); err != nil {
		return err
	}
	if c.Cluster.NodeCount < 1 || c.Cluster.NodeCount > MaxNodeCount {
		return fmt.Errorf("--node-count must be between 1 and %d, got %d", MaxNodeCount, c.Cluster.NodeCount)
	}
	if _, err := keygen.ValidateAuthorizedKey(c.Cluster.AdminSSHPublicKey); err != nil {
		return fmt.Errorf("--admin-ssh-public-key: %w", err)
	}
	return errors.Join(
		naming.ValidateCluster(c.Cluster.Name),
		naming.ValidateWorkspace(c.Workspace),
		naming.ValidateStorageAccount(c.Storage.AccountName),
		naming.ValidateFileShare(c.Storage.FileShareName),
	)
}

// ValidateClusterMonitor checks the settings of `cluster monitor`.
func (c *Config) ValidateClusterMonitor() error {
	if err := c.ValidateGlobal(); err != nil {
		return err
	}
	if err := missing(
		requirement{"cluster-name", c.Cluster.Name},
		requirement{"workspace", c.Workspace},
	); err != nil {
		return err
	}
	return errors.Join(
		naming.ValidateCluster(c.Cluster.Name),
		naming.ValidateWorkspace(c.Workspace),
	)
}

// ValidateFileShareCreate checks the settings of `storage fileshare create`.
func (c *Config) ValidateFileShareCreate() error {
	if err := c.ValidateGlobal(); err != nil {
		return err
	}
	if err := missing(
		requirement{"storage-account-name", c.Storage.AccountName},
		requirement{"fileshare-name", c.Storage.FileShareName},
	); err != nil {
		return err
	}
	return errors.Join(
		naming.ValidateStorageAccount(c.Storage.AccountName),
		naming.ValidateFileShare(c.Storage.FileShareName),
	)
}

// ValidateDirectoryCreate checks the settings of `storage fileshare directory create`.
func (c *Config) ValidateDirectoryCreate() error {
	if err := c.ValidateFileShareCreate(); err != nil {
		return err
	}
	if err := missing(requirement{"directory-name", c.Storage.DirectoryName}); err != nil {
		return err
	}
	return naming.ValidateDirectory(c.Storage.DirectoryName)
}
