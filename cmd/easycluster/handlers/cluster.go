package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/imamik/easycluster/internal/config"
	"github.com/imamik/easycluster/internal/platform/azure"
	"github.com/imamik/easycluster/internal/provisioning"
	"github.com/imamik/easycluster/internal/provisioning/cluster"
	"github.com/imamik/easycluster/internal/provisioning/resourcegroup"
	"github.com/imamik/easycluster/internal/provisioning/storage"
	"github.com/imamik/easycluster/internal/provisioning/workspace"
	"github.com/imamik/easycluster/internal/ui/tui"
	"github.com/imamik/easycluster/internal/util/keygen"
)

// Factory function variables for cluster commands - can be replaced in tests.
var (
	// generateKey creates the admin key pair for --generate-ssh-key.
	generateKey = func() (*keygen.KeyPair, error) {
		return keygen.Generate(keygen.DefaultBits)
	}

	// runMonitorTUI runs the live cluster dashboard.
	runMonitorTUI = tui.RunMonitorTUI
)

// ClusterCreateOptions holds the options specific to `cluster create`.
type ClusterCreateOptions struct {
	// GenerateSSHKeyPath, when set and no public key is configured, receives
	// a freshly generated private key whose public half is used for the admin user.
	GenerateSSHKeyPath string
}

// ClusterMonitorOptions holds the options specific to `cluster monitor`.
type ClusterMonitorOptions struct {
	Watch bool
	JSON  bool
}

// clusterCreatePhases returns the steps of `cluster create` in dependency order.
func clusterCreatePhases() []provisioning.Phase {
	return []provisioning.Phase{
		resourcegroup.NewProvisioner(),
		storage.AccountPhase(),
		storage.SharePhase(),
		workspace.NewProvisioner(),
		cluster.NewProvisioner(),
	}
}

// ClusterCreate ensures every dependency of the cluster and then creates it.
func ClusterCreate(ctx context.Context, opts *Options, createOpts ClusterCreateOptions) error {
	r, err := begin(ctx, opts, func(ctx context.Context, cfg *config.Config) error {
		if err := ensureAdminKey(cfg, createOpts.GenerateSSHKeyPath); err != nil {
			return err
		}
		if err := promptMissing(ctx, &cfg.Cluster.AdminPassword, "Admin password", "Password of the admin user on every node"); err != nil {
			return err
		}
		return cfg.ValidateClusterCreate()
	})
	if err != nil {
		return err
	}

	pctx, err := r.connect()
	if err != nil {
		return r.finish(err)
	}

	if err := provisioning.RunPhases(pctx, clusterCreatePhases()); err != nil {
		return r.finish(err)
	}

	printStatus(cluster.NewStatus(pctx.State.Cluster))
	return r.finish(nil)
}

// ensureAdminKey generates the admin key pair when requested and no public key is set.
func ensureAdminKey(cfg *config.Config, path string) error {
	if path == "" || cfg.Cluster.AdminSSHPublicKey != "" {
		return nil
	}

	pair, err := generateKey()
	if err != nil {
		return err
	}
	if err := pair.WritePrivateKey(path); err != nil {
		return err
	}

	cfg.Cluster.AdminSSHPublicKey = pair.AuthorizedKey
	fmt.Fprintf(stdout, "Generated admin SSH key %s, private key written to %s\n", pair.Fingerprint, path)
	return nil
}

// ClusterMonitor reports the allocation and node state of the cluster.
// With Watch it keeps polling until the context is cancelled or, on a
// terminal, until the dashboard is closed.
func ClusterMonitor(ctx context.Context, opts *Options, monitorOpts ClusterMonitorOptions) error {
	r, err := begin(ctx, opts, func(_ context.Context, cfg *config.Config) error {
		return cfg.ValidateClusterMonitor()
	})
	if err != nil {
		return err
	}

	pctx, err := r.connect()
	if err != nil {
		return r.finish(err)
	}

	fetch := func() (*cluster.Status, error) {
		return cluster.Monitor(pctx)
	}

	switch {
	case monitorOpts.Watch && !monitorOpts.JSON && isInteractiveTTY():
		err = runMonitorTUI(pctx, fetch, r.timeouts.MonitorInterval, r.cfg.Cluster.Name, r.cfg.Workspace)
	case monitorOpts.Watch:
		err = watchStatus(pctx, fetch, r.timeouts.MonitorInterval, monitorOpts.JSON)
	default:
		var status *cluster.Status
		if status, err = fetch(); err == nil {
			err = writeStatus(status, monitorOpts.JSON)
		}
	}
	return r.finish(err)
}

// watchStatus prints the status on every interval until ctx is done.
// Fetch failures are reported and retried on the next tick unless the
// credentials were rejected.
func watchStatus(ctx context.Context, fetch tui.FetchFunc, interval time.Duration, asJSON bool) error {
	if interval <= 0 {
		interval = config.DefaultMonitorInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		status, err := fetch()
		switch {
		case err == nil:
			if !asJSON {
				fmt.Fprintf(stdout, "--- %s\n", time.Now().Format(time.RFC3339))
			}
			if err := writeStatus(status, asJSON); err != nil {
				return err
			}
		case provisioning.IsAuthError(err):
			return err
		default:
			fmt.Fprintf(stdout, "Could not get cluster status: %s\n", azure.Summary(err))
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// writeStatus prints the status as text lines or as a single JSON document.
func writeStatus(status *cluster.Status, asJSON bool) error {
	if !asJSON {
		printStatus(status)
		return nil
	}
	if err := json.NewEncoder(stdout).Encode(status); err != nil {
		return fmt.Errorf("failed to encode status: %w", err)
	}
	return nil
}

func printStatus(status *cluster.Status) {
	fmt.Fprintln(stdout, status.String())
}
