package workspace

import (
	"slices"

	"github.com/imamik/easycluster/internal/platform/azure"
	"github.com/imamik/easycluster/internal/provisioning"
)

const (
	phaseName = "workspace"
	kind      = "workspace"
)

// Provisioner ensures the configured workspace exists.
type Provisioner struct{}

// NewProvisioner creates a new workspace provisioner.
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

// EnsureExists creates the workspace unless it is listed in the resource group.
// It returns true once the workspace is known to exist and records that in
// the provisioning state; a failed create returns false.
func EnsureExists(ctx *provisioning.Context) (bool, error) {
	name := ctx.Config.Workspace
	rg := ctx.Config.ResourceGroup

	client, err := ctx.Clients.Workspaces()
	if err != nil {
		return false, err
	}

	workspaces, err := client.ListWorkspaces(ctx, rg)
	if err != nil {
		provisioning.LogListFailed(ctx.Observer, phaseName, kind, name, err)
	} else if slices.ContainsFunc(workspaces, func(w azure.Workspace) bool { return w.Name == name }) {
		ctx.ReportOutcome(phaseName, kind, name, provisioning.OutcomeAlreadyExists)
		ctx.State.ConfirmWorkspace()
		return true, nil
	}

	provisioning.LogResourceCreating(ctx.Observer, phaseName, kind, name)
	if err := client.CreateWorkspace(ctx, rg, name, ctx.Config.Location); err != nil {
		return false, ctx.ReportFailure(phaseName, kind, name, err)
	}

	ctx.ReportOutcome(phaseName, kind, name, provisioning.OutcomeCreated)
	ctx.State.ConfirmWorkspace()
	return true, nil
}
