package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/easycluster/cmd/easycluster/handlers"
	"github.com/imamik/easycluster/internal/config"
)

// Init returns the command for interactively creating an easycluster configuration.
//
// Flags:
//
//	--output, -o: Path to output file (default "easycluster.yaml")
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create an easycluster configuration",
		Long: `Interactively create an easycluster configuration file.

The wizard asks for:

  - Subscription, resource group and location
  - Service principal client and tenant IDs
  - Storage account and file share
  - Workspace and cluster shape

Secrets are never written; pass them with --aad-secret-key and
--admin-password or through AZURE_CLIENT_SECRET.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", config.DefaultConfigFilename, "Output file path")

	return cmd
}
