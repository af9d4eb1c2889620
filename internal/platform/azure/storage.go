package azure

import (
	"context"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/storage/armstorage"
)

const storageAccountType = "Microsoft.Storage/storageAccounts"

type storageAccountsClient struct {
	client        *armstorage.AccountsClient
	pollFrequency time.Duration
}

// CheckNameAvailability checks whether name can be used for a new account.
func (c *storageAccountsClient) CheckNameAvailability(ctx context.Context, name string) (*NameAvailability, error) {
	resp, err := c.client.CheckNameAvailability(ctx, armstorage.AccountCheckNameAvailabilityParameters{
		Name: to.Ptr(name),
		Type: to.Ptr(storageAccountType),
	}, nil)
	if err != nil {
		return nil, err
	}

	result := &NameAvailability{
		Available: value(resp.NameAvailable),
		Message:   value(resp.Message),
	}
	if resp.Reason != nil {
		result.Reason = NameUnavailableReason(*resp.Reason)
	}
	return result, nil
}

// AccountExists reports whether the account exists in resourceGroup.
func (c *storageAccountsClient) AccountExists(ctx context.Context, resourceGroup, name string) (bool, error) {
	_, err := c.client.GetProperties(ctx, resourceGroup, name, nil)
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CreateAccount creates a geo-redundant general purpose account and waits for it.
func (c *storageAccountsClient) CreateAccount(ctx context.Context, resourceGroup, name, location string) error {
	poller, err := c.client.BeginCreate(ctx, resourceGroup, name, armstorage.AccountCreateParameters{
		Location: to.Ptr(location),
		Kind:     to.Ptr(armstorage.KindStorageV2),
		SKU: &armstorage.SKU{
			Name: to.Ptr(armstorage.SKUNameStandardGRS),
		},
	}, nil)
	if err == nil {
		_, err = poller.PollUntilDone(ctx, &runtime.PollUntilDoneOptions{Frequency: c.pollFrequency})
	}
	return err
}

// ListKeys returns the access keys of the account.
func (c *storageAccountsClient) ListKeys(ctx context.Context, resourceGroup, name string) ([]AccountKey, error) {
	resp, err := c.client.ListKeys(ctx, resourceGroup, name, nil)
	if err != nil {
		return nil, err
	}
	keys := make([]AccountKey, 0, len(resp.Keys))
	for _, k := range resp.Keys {
		if k == nil {
			continue
		}
		keys = append(keys, AccountKey{Name: value(k.KeyName), Value: value(k.Value)})
	}
	return keys, nil
}

// value dereferences p, returning the zero value for nil.
func value[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
