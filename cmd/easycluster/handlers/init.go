package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/easycluster/internal/config"
	"github.com/imamik/easycluster/internal/config/wizard"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = wizard.FileExists

	// confirmOverwrite asks before replacing an existing file.
	confirmOverwrite = wizard.ConfirmOverwrite

	// runWizard runs the interactive wizard.
	runWizard = wizard.RunWizard

	// writeConfig writes the config to a file.
	writeConfig = wizard.WriteConfig
)

// Init runs the configuration wizard and writes the result to a file.
func Init(ctx context.Context, outputPath string) error {
	if fileExists(outputPath) {
		ok, err := confirmOverwrite(outputPath)
		if err != nil {
			return fmt.Errorf("failed to confirm overwrite: %w", err)
		}
		if !ok {
			fmt.Fprintln(stdout, "Aborted, existing configuration kept.")
			return nil
		}
	}

	printWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	cfg := wizard.BuildConfig(result)

	if err := writeConfig(cfg, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, cfg)

	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "easycluster - Batch AI training clusters on Azure")
	fmt.Fprintln(stdout, "=================================================")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "This wizard writes the settings shared by every easycluster command.")
	fmt.Fprintln(stdout, "Secrets are never stored; pass them as flags or environment variables.")
	fmt.Fprintln(stdout)
}

// printInitSuccess prints the success message with summary and next steps.
func printInitSuccess(outputPath string, cfg *config.Config) {
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Configuration saved!")
	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "  File: %s\n", outputPath)
	fmt.Fprintln(stdout)

	fmt.Fprintln(stdout, "Summary")
	fmt.Fprintln(stdout, "-------")
	fmt.Fprintf(stdout, "  Resource group: %s (%s)\n", cfg.ResourceGroup, cfg.Location)
	fmt.Fprintf(stdout, "  Storage:        %s / %s\n", cfg.Storage.AccountName, cfg.Storage.FileShareName)
	fmt.Fprintf(stdout, "  Workspace:      %s\n", cfg.Workspace)
	fmt.Fprintf(stdout, "  Cluster:        %s, %d x %s\n", cfg.Cluster.Name, cfg.Cluster.NodeCount, cfg.Cluster.VMSize)
	fmt.Fprintln(stdout)

	fmt.Fprintln(stdout, "Next Steps")
	fmt.Fprintln(stdout, "----------")
	fmt.Fprintln(stdout, "  1. Set the service principal secret:")
	fmt.Fprintf(stdout, "     export %s=<secret>\n", config.EnvClientSecret)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "  2. Create the cluster:")
	fmt.Fprintln(stdout, "     easycluster cluster create --admin-password <password> --generate-ssh-key ./admin_rsa")
	fmt.Fprintln(stdout)
}
