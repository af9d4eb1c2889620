package handlers

import (
	"context"

	"github.com/imamik/easycluster/internal/config"
	"github.com/imamik/easycluster/internal/provisioning"
	"github.com/imamik/easycluster/internal/provisioning/resourcegroup"
	"github.com/imamik/easycluster/internal/provisioning/storage"
)

// FileShareCreate ensures the storage account and the file share inside it.
func FileShareCreate(ctx context.Context, opts *Options) error {
	return runStorage(ctx, opts, (*config.Config).ValidateFileShareCreate, []provisioning.Phase{
		resourcegroup.NewProvisioner(),
		storage.AccountPhase(),
		storage.SharePhase(),
	})
}

// DirectoryCreate ensures a directory at the root of the file share of an
// existing storage account.
func DirectoryCreate(ctx context.Context, opts *Options) error {
	return runStorage(ctx, opts, (*config.Config).ValidateDirectoryCreate, []provisioning.Phase{
		resourcegroup.NewProvisioner(),
		storage.KeyPhase(),
		storage.SharePhase(),
		storage.DirectoryPhase(),
	})
}

func runStorage(ctx context.Context, opts *Options, validate func(*config.Config) error, phases []provisioning.Phase) error {
	r, err := begin(ctx, opts, func(_ context.Context, cfg *config.Config) error {
		return validate(cfg)
	})
	if err != nil {
		return err
	}

	pctx, err := r.connect()
	if err != nil {
		return r.finish(err)
	}
	return r.finish(provisioning.RunPhases(pctx, phases))
}
