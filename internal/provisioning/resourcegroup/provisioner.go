package resourcegroup

import (
	"slices"

	"github.com/imamik/easycluster/internal/provisioning"
)

const (
	phaseName = "resource group"
	kind      = "resource group"
)

// Provisioner ensures the configured resource group exists.
type Provisioner struct{}

// NewProvisioner creates a new resource group provisioner.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// Name implements the provisioning.Phase interface.
func (p *Provisioner) Name() string {
	return phaseName
}

// Provision implements the provisioning.Phase interface.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	_, err := EnsureExists(ctx)
	return err
}

// EnsureExists creates the resource group unless a group of that name is listed.
// A failed listing is reported and followed by a create attempt, which is
// idempotent on the service side.
func EnsureExists(ctx *provisioning.Context) (provisioning.Outcome, error) {
	name := ctx.Config.ResourceGroup

	client, err := ctx.Clients.ResourceGroups()
	if err != nil {
		return provisioning.OutcomeNone, err
	}

	groups, err := client.ListResourceGroups(ctx)
	if err != nil {
		provisioning.LogListFailed(ctx.Observer, phaseName, kind, name, err)
	} else if slices.Contains(groups, name) {
		ctx.ReportOutcome(phaseName, kind, name, provisioning.OutcomeAlreadyExists)
		return provisioning.OutcomeAlreadyExists, nil
	}

	provisioning.LogResourceCreating(ctx.Observer, phaseName, kind, name)
	if err := client.CreateOrUpdateResourceGroup(ctx, name, ctx.Config.Location); err != nil {
		return provisioning.OutcomeNone, ctx.ReportFailure(phaseName, kind, name, err)
	}

	ctx.ReportOutcome(phaseName, kind, name, provisioning.OutcomeCreated)
	return provisioning.OutcomeCreated, nil
}
