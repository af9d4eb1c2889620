package wizard

import (
	"context"
	"fmt"
)

// WizardResult holds all the answers from the interactive wizard.
type WizardResult struct {
	// Scope
	SubscriptionID string
	ResourceGroup  string
	Location       string

	// Service principal (the secret is never written to disk)
	ClientID string
	TenantID string

	// Storage
	StorageAccount string
	FileShare      string

	// Compute
	Workspace     string
	ClusterName   string
	VMSize        string
	NodeCount     string
	AdminUsername string
}

// RunWizard runs the interactive configuration wizard.
// The context is used for cancellation support (e.g., Ctrl+C).
func RunWizard(ctx context.Context) (*WizardResult, error) {
	result := &WizardResult{}

	if err := runScopeGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("scope: %w", err)
	}

	if err := runServicePrincipalGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("service principal: %w", err)
	}

	if err := runStorageGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	if err := runComputeGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("compute: %w", err)
	}

	return result, nil
}
