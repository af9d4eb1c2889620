package storage

import "github.com/imamik/easycluster/internal/provisioning"

const (
	accountPhase   = "storage account"
	keyPhase       = "storage key"
	sharePhase     = "file share"
	directoryPhase = "directory"
)

// AccountPhase ensures the storage account and resolves its key.
func AccountPhase() provisioning.Phase {
	return provisioning.PhaseFunc{PhaseName: accountPhase, Fn: func(ctx *provisioning.Context) error {
		_, err := EnsureAccountExists(ctx)
		return err
	}}
}

// KeyPhase resolves the key of an existing storage account.
func KeyPhase() provisioning.Phase {
	return provisioning.PhaseFunc{PhaseName: keyPhase, Fn: func(ctx *provisioning.Context) error {
		_, err := FetchKey(ctx)
		return err
	}}
}

// SharePhase ensures the file share.
func SharePhase() provisioning.Phase {
	return provisioning.PhaseFunc{PhaseName: sharePhase, Fn: func(ctx *provisioning.Context) error {
		_, err := EnsureShareExists(ctx)
		return err
	}}
}

// DirectoryPhase ensures the directory at the root of the file share.
func DirectoryPhase() provisioning.Phase {
	return provisioning.PhaseFunc{PhaseName: directoryPhase, Fn: func(ctx *provisioning.Context) error {
		_, err := EnsureDirectoryExists(ctx)
		return err
	}}
}
