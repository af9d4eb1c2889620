package wizard

import (
	"strconv"
	"strings"

	"github.com/imamik/easycluster/internal/config"
)

// BuildConfig creates a Config struct from the wizard result.
func BuildConfig(result *WizardResult) *config.Config {
	cfg := &config.Config{
		SubscriptionID: strings.TrimSpace(result.SubscriptionID),
		ResourceGroup:  result.ResourceGroup,
		Location:       result.Location,
		AAD: config.AAD{
			ClientID: strings.TrimSpace(result.ClientID),
			TenantID: strings.TrimSpace(result.TenantID),
		},
		Storage: config.Storage{
			AccountName:   result.StorageAccount,
			FileShareName: result.FileShare,
		},
		Workspace: result.Workspace,
		Cluster: config.Cluster{
			Name:          result.ClusterName,
			VMSize:        result.VMSize,
			AdminUsername: result.AdminUsername,
		},
	}

	if n, err := strconv.Atoi(strings.TrimSpace(result.NodeCount)); err == nil {
		cfg.Cluster.NodeCount = n
	}

	cfg.ApplyDefaults()
	return cfg
}
