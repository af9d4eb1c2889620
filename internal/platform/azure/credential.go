package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
)

// ManagementScope is the token scope of Azure Resource Manager.
const ManagementScope = "https://management.azure.com/.default"

// NewCredential creates a service principal credential from an AAD client secret.
func NewCredential(tenantID, clientID, secret string) (azcore.TokenCredential, error) {
	cred, err := azidentity.NewClientSecretCredential(tenantID, clientID, secret, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create client secret credential: %w", err)
	}
	return cred, nil
}

// CheckCredential acquires a management token so that bad credentials fail
// before the first resource operation.
func CheckCredential(ctx context.Context, cred azcore.TokenCredential) error {
	_, err := cred.GetToken(ctx, policy.TokenRequestOptions{Scopes: []string{ManagementScope}})
	if err != nil {
		return fmt.Errorf("failed to acquire management token: %w", err)
	}
	return nil
}
