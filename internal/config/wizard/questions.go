package wizard

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/imamik/easycluster/internal/config"
	"github.com/imamik/easycluster/internal/util/naming"
)

// runScopeGroup prompts for the subscription, resource group and region.
func runScopeGroup(ctx context.Context, result *WizardResult) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Subscription ID").
				Placeholder("00000000-0000-0000-0000-000000000000").
				Value(&result.SubscriptionID).
				Validate(validateRequired),
			huh.NewInput().
				Title("Resource Group").
				Description("Created if it does not exist").
				Placeholder("training").
				Value(&result.ResourceGroup).
				Validate(requiredAnd(naming.ValidateResourceGroup)),
			huh.NewSelect[string]().
				Title("Location").
				Description("Azure region for every resource").
				Options(LocationsToOptions()...).
				Value(&result.Location),
		).Title("Scope"),
	).RunWithContext(ctx)
}

// runServicePrincipalGroup prompts for the AAD application identity.
func runServicePrincipalGroup(ctx context.Context, result *WizardResult) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("AAD Client ID").
				Value(&result.ClientID).
				Validate(validateRequired),
			huh.NewInput().
				Title("AAD Tenant ID").
				Value(&result.TenantID).
				Validate(validateRequired),
		).Title("Service Principal").
			Description("The client secret is read from --aad-secret-key or AZURE_CLIENT_SECRET"),
	).RunWithContext(ctx)
}

// runStorageGroup prompts for the storage account and file share names.
func runStorageGroup(ctx context.Context, result *WizardResult) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Storage Account").
				Description("3-24 lowercase letters or digits, globally unique").
				Value(&result.StorageAccount).
				Validate(requiredAnd(naming.ValidateStorageAccount)),
			huh.NewInput().
				Title("File Share").
				Description("Mounted on every cluster node").
				Value(&result.FileShare).
				Validate(requiredAnd(naming.ValidateFileShare)),
		).Title("Storage"),
	).RunWithContext(ctx)
}

// runComputeGroup prompts for workspace and cluster settings.
func runComputeGroup(ctx context.Context, result *WizardResult) error {
	result.VMSize = config.DefaultVMSize
	result.NodeCount = strconv.Itoa(config.DefaultNodeCount)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Workspace").
				Value(&result.Workspace).
				Validate(requiredAnd(naming.ValidateWorkspace)),
			huh.NewInput().
				Title("Cluster Name").
				Value(&result.ClusterName).
				Validate(requiredAnd(naming.ValidateCluster)),
			huh.NewSelect[string]().
				Title("VM Size").
				Options(VMSizesToOptions()...).
				Value(&result.VMSize),
			huh.NewInput().
				Title("Node Count").
				Value(&result.NodeCount).
				Validate(validateNodeCount),
			huh.NewInput().
				Title("Admin Username").
				Placeholder("azureuser").
				Value(&result.AdminUsername).
				Validate(validateRequired),
		).Title("Compute"),
	).RunWithContext(ctx)
}

// validateRequired rejects blank input.
func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return errValueRequired
	}
	return nil
}

// requiredAnd chains validateRequired with a naming rule.
func requiredAnd(rule func(string) error) func(string) error {
	return func(s string) error {
		if err := validateRequired(s); err != nil {
			return err
		}
		return rule(s)
	}
}

// validateNodeCount accepts positive integers.
func validateNodeCount(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return errNodeCountInvalid
	}
	return nil
}
