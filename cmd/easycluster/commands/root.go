// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/easycluster/cmd/easycluster/handlers"
)

// Root returns the root command for the easycluster CLI.
//
// The root command carries the flags shared by every Azure command: the
// subscription, the resource group and its location, and the service
// principal. Unset values fall back to the config file and then to the
// AZURE_* environment variables.
func Root() *cobra.Command {
	opts := &handlers.Options{}

	cmd := &cobra.Command{
		Use:           "easycluster",
		Short:         "Provision Batch AI training clusters on Azure",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.Overrides.SubscriptionID, "subscription-id", "", "Azure subscription ID")
	flags.StringVar(&opts.Overrides.ResourceGroup, "resource-group-name", "", "Resource group holding every resource")
	flags.StringVar(&opts.Overrides.Location, "location", "", "Azure region of new resources")
	flags.StringVar(&opts.Overrides.AAD.ClientID, "aad-client-id", "", "Service principal client ID")
	flags.StringVar(&opts.Overrides.AAD.Secret, "aad-secret-key", "", "Service principal secret")
	flags.StringVar(&opts.Overrides.AAD.TenantID, "aad-tenant-id", "", "Azure AD tenant ID")
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "Config file (default: easycluster.yaml in the working directory or a parent)")
	flags.CountVarP(&opts.Verbosity, "verbose", "v", "Increase log verbosity (repeatable)")
	flags.StringVar(&opts.MetricsFile, "metrics-file", "", "Write run metrics in Prometheus text format to this file")

	cmd.AddCommand(Init())
	cmd.AddCommand(Cluster(opts))
	cmd.AddCommand(Storage(opts))
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
