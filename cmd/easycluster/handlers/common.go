// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command definitions
// in the commands package. Handlers are framework-agnostic and can be tested
// independently of the CLI framework.
package handlers

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/imamik/easycluster/internal/config"
	"github.com/imamik/easycluster/internal/config/wizard"
	"github.com/imamik/easycluster/internal/platform/azure"
	"github.com/imamik/easycluster/internal/provisioning"
)

// Options carries the global flags and the per-command overrides bound by
// the commands package. Overrides win over the config file.
type Options struct {
	ConfigPath  string
	Verbosity   int
	MetricsFile string

	Overrides config.Config
}

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// loadConfig loads the optional config file.
	loadConfig = config.Load

	// loadTimeouts reads poll and timeout settings from the environment.
	loadTimeouts = config.LoadTimeouts

	// newCredential creates the service principal credential.
	newCredential = azure.NewCredential

	// checkCredential acquires a token to fail fast on bad credentials.
	checkCredential = azure.CheckCredential

	// newClientFactory creates the Azure client factory.
	newClientFactory = func(subscriptionID string, cred azcore.TokenCredential, timeouts *config.Timeouts) azure.ClientFactory {
		return azure.NewRealClient(subscriptionID, cred, azure.WithPollFrequency(timeouts.PollFrequency))
	}

	// promptSecret asks for a secret on the terminal.
	promptSecret = wizard.PromptSecret

	// isInteractiveTTY reports whether stdout is a terminal.
	isInteractiveTTY = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	// stdout receives user-facing output.
	stdout io.Writer = os.Stdout

	// stderr receives diagnostic logs.
	stderr io.Writer = os.Stderr

	// newRunID returns the identifier attached to every log line of a run.
	newRunID = uuid.NewString
)

// newLogger creates the diagnostic logger of a run.
func newLogger(verbosity int, runID string) logr.Logger {
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintf(stderr, "%s: %s\n", prefix, args)
			return
		}
		fmt.Fprintln(stderr, args)
	}, funcr.Options{Verbosity: verbosity}).WithName("easycluster").WithValues("run", runID)
}

// resolveConfig merges the config file, flag overrides, environment and defaults.
func resolveConfig(opts *Options) (*config.Config, error) {
	base, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg := config.Merge(base, &opts.Overrides)
	cfg.ApplyEnv()
	cfg.ApplyDefaults()
	return cfg, nil
}

// promptMissing asks for an empty secret when running on a terminal.
// Without a terminal the value stays empty and validation reports the flag.
func promptMissing(ctx context.Context, dst *string, title, description string) error {
	if *dst != "" || !isInteractiveTTY() {
		return nil
	}
	value, err := promptSecret(ctx, title, description)
	if err != nil {
		return fmt.Errorf("prompt canceled: %w", err)
	}
	*dst = value
	return nil
}

// run is the resolved state of one command invocation.
type run struct {
	ctx      context.Context
	log      logr.Logger
	cfg      *config.Config
	timeouts *config.Timeouts
	metrics  *provisioning.Metrics
	opts     *Options
}

// begin sets up logging and resolves the configuration of a command.
// validate runs last so it sees flags, file, environment, defaults and prompts.
func begin(ctx context.Context, opts *Options, validate func(context.Context, *config.Config) error) (*run, error) {
	runID := newRunID()
	log := newLogger(opts.Verbosity, runID)
	ctx = logr.NewContext(ctx, log)

	cfg, err := resolveConfig(opts)
	if err != nil {
		return nil, err
	}
	if err := promptMissing(ctx, &cfg.AAD.Secret, "AAD client secret", "Secret of the service principal used to reach Azure"); err != nil {
		return nil, err
	}
	if err := validate(ctx, cfg); err != nil {
		return nil, err
	}

	log.V(1).Info("resolved configuration", "subscription", cfg.SubscriptionID,
		"resourceGroup", cfg.ResourceGroup, "location", cfg.Location)

	return &run{
		ctx:      ctx,
		log:      log,
		cfg:      cfg,
		timeouts: loadTimeouts(),
		metrics:  provisioning.NewMetrics(),
		opts:     opts,
	}, nil
}

// connect authenticates and returns the provisioning context of the run.
func (r *run) connect() (*provisioning.Context, error) {
	cred, err := newCredential(r.cfg.AAD.TenantID, r.cfg.AAD.ClientID, r.cfg.AAD.Secret)
	if err != nil {
		return nil, &provisioning.AuthError{Cause: err}
	}

	checkCtx, cancel := context.WithTimeout(r.ctx, r.timeouts.CredentialCheck)
	defer cancel()
	if err := checkCredential(checkCtx, cred); err != nil {
		return nil, &provisioning.AuthError{Cause: err}
	}
	r.log.V(1).Info("credential verified", "tenant", r.cfg.AAD.TenantID, "client", r.cfg.AAD.ClientID)

	factory := newClientFactory(r.cfg.SubscriptionID, cred, r.timeouts)
	observer := provisioning.NewWriterObserver(stdout, r.log)

	return provisioning.NewContext(r.ctx, r.cfg, factory,
		provisioning.WithObserver(observer),
		provisioning.WithMetrics(r.metrics),
		provisioning.WithTimeouts(r.timeouts),
	), nil
}

// finish writes the metrics file if requested and returns err unchanged.
func (r *run) finish(err error) error {
	if r.opts.MetricsFile == "" {
		return err
	}
	if werr := r.metrics.WriteToTextfile(r.opts.MetricsFile); werr != nil {
		r.log.Error(werr, "failed to write metrics file", "path", r.opts.MetricsFile)
	}
	return err
}
