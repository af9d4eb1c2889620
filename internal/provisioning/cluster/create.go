package cluster

import (
	"context"
	"errors"
	"fmt"

	"github.com/imamik/easycluster/internal/platform/azure"
	"github.com/imamik/easycluster/internal/provisioning"
	"github.com/imamik/easycluster/internal/util/naming"
)

const (
	phaseName = "cluster"
	kind      = "cluster"
)

// Provisioner creates the configured cluster.
type Provisioner struct{}

// NewProvisioner creates a new cluster provisioner.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// Name implements the provisioning.Phase interface.
func (p *Provisioner) Name() string {
	return phaseName
}

// Provision implements the provisioning.Phase interface.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	_, err := Create(ctx)
	return err
}

// Create submits the cluster and waits until the service reports a terminal
// state. The workspace must have been confirmed by an earlier step. When a
// file share is configured, every node mounts it with the resolved storage key.
func Create(ctx *provisioning.Context) (*azure.Cluster, error) {
	if err := ctx.State.WorkspaceConfirmed(); err != nil {
		return nil, err
	}

	params, err := buildParameters(ctx)
	if err != nil {
		return nil, err
	}

	client, err := ctx.Clients.Clusters()
	if err != nil {
		return nil, err
	}

	name := ctx.Config.Cluster.Name
	opCtx := context.Context(ctx)
	if timeout := ctx.Timeouts.ClusterCreate; timeout > 0 {
		var cancel context.CancelFunc
		opCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	provisioning.LogResourceCreating(ctx.Observer, phaseName, kind, name)
	ctx.Log.V(1).Info("submitting cluster", "cluster", name, "vmSize", params.VMSize,
		"nodes", params.TargetNodeCount, "fileShare", params.FileShare != nil)

	cluster, err := client.CreateCluster(opCtx, ctx.Config.ResourceGroup, ctx.Config.Workspace, name, params)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			err = fmt.Errorf("timed out after %s: %w", ctx.Timeouts.ClusterCreate, err)
		}
		return nil, ctx.ReportFailure(phaseName, kind, name, err)
	}

	ctx.ReportOutcome(phaseName, kind, name, provisioning.OutcomeCreated)
	ctx.State.Cluster = cluster
	ctx.Metrics.SetClusterNodes(cluster)
	return cluster, nil
}

func buildParameters(ctx *provisioning.Context) (azure.ClusterParameters, error) {
	cfg := ctx.Config
	params := azure.ClusterParameters{
		VMSize:            cfg.Cluster.VMSize,
		TargetNodeCount:   int32(cfg.Cluster.NodeCount), //nolint:gosec // bounded by config.MaxNodeCount in ValidateClusterCreate
		AdminUsername:     cfg.Cluster.AdminUsername,
		AdminPassword:     cfg.Cluster.AdminPassword,
		AdminSSHPublicKey: cfg.Cluster.AdminSSHPublicKey,
	}

	if cfg.Storage.FileShareName == "" {
		return params, nil
	}

	key, err := ctx.State.StorageKey()
	if err != nil {
		return params, err
	}
	params.FileShare = &azure.FileShareMount{
		AccountName:       cfg.Storage.AccountName,
		AccountKey:        key,
		ShareURL:          naming.FileShareURL(cfg.Storage.AccountName, cfg.Storage.FileShareName),
		RelativeMountPath: cfg.Cluster.MountPath,
	}
	return params, nil
}
