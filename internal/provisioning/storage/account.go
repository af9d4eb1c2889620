package storage

import (
	"errors"
	"fmt"

	"github.com/imamik/easycluster/internal/platform/azure"
	"github.com/imamik/easycluster/internal/provisioning"
)

// PrimaryKeyName is the access key used to authenticate against Azure Files.
const PrimaryKeyName = "key1"

const accountKind = "storage account"

// EnsureAccountExists creates the storage account when its name is available,
// accepts it when it already exists in the configured resource group, and
// then resolves the primary key into the provisioning state.
func EnsureAccountExists(ctx *provisioning.Context) (string, error) {
	name := ctx.Config.Storage.AccountName
	rg := ctx.Config.ResourceGroup

	client, err := ctx.Clients.StorageAccounts()
	if err != nil {
		return "", err
	}

	availability, err := client.CheckNameAvailability(ctx, name)
	if err != nil {
		return "", ctx.ReportFailure(accountPhase, accountKind, name, fmt.Errorf("checking name availability: %w", err))
	}

	switch {
	case availability.Available:
		provisioning.LogResourceCreating(ctx.Observer, accountPhase, accountKind, name)
		if err := client.CreateAccount(ctx, rg, name, ctx.Config.Location); err != nil {
			return "", ctx.ReportFailure(accountPhase, accountKind, name, err)
		}
		ctx.ReportOutcome(accountPhase, accountKind, name, provisioning.OutcomeCreated)

	case availability.Reason == azure.ReasonAlreadyExists:
		exists, err := client.AccountExists(ctx, rg, name)
		if err != nil {
			return "", ctx.ReportFailure(accountPhase, accountKind, name, fmt.Errorf("looking up account in resource group `%s`: %w", rg, err))
		}
		if !exists {
			return "", ctx.ReportFailure(accountPhase, accountKind, name, fmt.Errorf("name is taken by an account outside resource group `%s`", rg))
		}
		ctx.ReportOutcome(accountPhase, accountKind, name, provisioning.OutcomeAlreadyExists)

	default:
		return "", ctx.ReportFailure(accountPhase, accountKind, name, unavailableError(availability))
	}

	return FetchKey(ctx)
}

// FetchKey lists the keys of the configured account and stores key1 in the
// provisioning state.
func FetchKey(ctx *provisioning.Context) (string, error) {
	name := ctx.Config.Storage.AccountName

	client, err := ctx.Clients.StorageAccounts()
	if err != nil {
		return "", err
	}

	keys, err := client.ListKeys(ctx, ctx.Config.ResourceGroup, name)
	if err != nil {
		return "", fmt.Errorf("failed to list keys of storage account `%s`: %w", name, err)
	}

	for _, key := range keys {
		if key.Name == PrimaryKeyName {
			ctx.State.SetStorageKey(key.Value)
			ctx.Log.V(1).Info("resolved storage account key", "account", name, "key", PrimaryKeyName)
			return key.Value, nil
		}
	}
	return "", &provisioning.KeyNotFoundError{Account: name, KeyName: PrimaryKeyName}
}

func unavailableError(a *azure.NameAvailability) error {
	if a.Message != "" {
		return errors.New(a.Message)
	}
	if a.Reason != "" {
		return fmt.Errorf("name unavailable: %s", a.Reason)
	}
	return errors.New("name unavailable")
}
