package storage

import (
	"slices"

	"github.com/imamik/easycluster/internal/platform/azure"
	"github.com/imamik/easycluster/internal/provisioning"
)

const (
	shareKind     = "file share"
	directoryKind = "directory"
)

// fileService returns the Azure Files client of the configured account.
// It fails with a missing dependency before any remote call when the
// account key has not been resolved.
func fileService(ctx *provisioning.Context) (azure.FileServiceAPI, error) {
	key, err := ctx.State.StorageKey()
	if err != nil {
		return nil, err
	}
	return ctx.Clients.FileService(ctx.Config.Storage.AccountName, key)
}

// EnsureShareExists creates the configured file share unless it is listed.
// Snapshots are included in the listing. Losing a create race to another
// creator counts as the share already existing.
func EnsureShareExists(ctx *provisioning.Context) (provisioning.Outcome, error) {
	share := ctx.Config.Storage.FileShareName

	fs, err := fileService(ctx)
	if err != nil {
		return provisioning.OutcomeNone, err
	}

	shares, err := fs.ListShares(ctx)
	if err != nil {
		provisioning.LogListFailed(ctx.Observer, sharePhase, shareKind, share, err)
	} else if slices.Contains(shares, share) {
		ctx.ReportOutcome(sharePhase, shareKind, share, provisioning.OutcomeAlreadyExists)
		return provisioning.OutcomeAlreadyExists, nil
	}

	provisioning.LogResourceCreating(ctx.Observer, sharePhase, shareKind, share)
	return report(ctx, sharePhase, shareKind, share, fs.CreateShare(ctx, share))
}

// EnsureDirectoryExists creates the configured directory at the root of the
// file share unless a directory or file of that name is listed there.
func EnsureDirectoryExists(ctx *provisioning.Context) (provisioning.Outcome, error) {
	share := ctx.Config.Storage.FileShareName
	dir := ctx.Config.Storage.DirectoryName

	fs, err := fileService(ctx)
	if err != nil {
		return provisioning.OutcomeNone, err
	}

	entries, err := fs.ListRootEntries(ctx, share)
	if err != nil {
		provisioning.LogListFailed(ctx.Observer, directoryPhase, directoryKind, dir, err)
	} else if slices.Contains(entries, dir) {
		ctx.ReportOutcome(directoryPhase, directoryKind, dir, provisioning.OutcomeAlreadyExists)
		return provisioning.OutcomeAlreadyExists, nil
	}

	provisioning.LogResourceCreating(ctx.Observer, directoryPhase, directoryKind, dir)
	return report(ctx, directoryPhase, directoryKind, dir, fs.CreateDirectory(ctx, share, dir))
}

// report turns the result of a create call into an outcome.
func report(ctx *provisioning.Context, phase, kind, name string, err error) (provisioning.Outcome, error) {
	switch {
	case err == nil:
		ctx.ReportOutcome(phase, kind, name, provisioning.OutcomeCreated)
		return provisioning.OutcomeCreated, nil
	case azure.IsAlreadyExists(err):
		ctx.ReportOutcome(phase, kind, name, provisioning.OutcomeAlreadyExists)
		return provisioning.OutcomeAlreadyExists, nil
	default:
		return provisioning.OutcomeNone, ctx.ReportFailure(phase, kind, name, err)
	}
}
