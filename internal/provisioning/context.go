package provisioning

import (
	"context"

	"github.com/go-logr/logr"

	"github.com/imamik/easycluster/internal/config"
	"github.com/imamik/easycluster/internal/platform/azure"
)

// State holds the values resolved by earlier phases and read by later ones.
// Unset values are reported as missing dependencies instead of zero values.
type State struct {
	storageKey         string
	workspaceConfirmed bool

	// Cluster is the last observed cluster, set by create and monitor.
	Cluster *azure.Cluster
}

// NewState creates an empty provisioning state.
func NewState() *State {
	return &State{}
}

// SetStorageKey records the primary access key of the storage account.
func (s *State) SetStorageKey(key string) {
	s.storageKey = key
}

// StorageKey returns the recorded storage key or a missing dependency error.
func (s *State) StorageKey() (string, error) {
	if s.storageKey == "" {
		return "", MissingDependency("storage account key")
	}
	return s.storageKey, nil
}

// ConfirmWorkspace records that the workspace exists.
func (s *State) ConfirmWorkspace() {
	s.workspaceConfirmed = true
}

// WorkspaceConfirmed returns nil once the workspace is known to exist.
func (s *State) WorkspaceConfirmed() error {
	if !s.workspaceConfirmed {
		return MissingDependency("workspace confirmation")
	}
	return nil
}

// Context wraps all dependencies and state needed for a provisioning phase.
type Context struct {
	context.Context
	Config   *config.Config
	State    *State
	Clients  *Clients
	Observer Observer
	Log      logr.Logger
	Metrics  *Metrics
	Timeouts *config.Timeouts
}

// Option customizes a Context.
type Option func(*Context)

// WithObserver sets the observer receiving provisioning events.
func WithObserver(o Observer) Option {
	return func(c *Context) {
		c.Observer = o
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(m *Metrics) Option {
	return func(c *Context) {
		c.Metrics = m
	}
}

// WithTimeouts overrides the environment-derived timeouts.
func WithTimeouts(t *config.Timeouts) Option {
	return func(c *Context) {
		c.Timeouts = t
	}
}

// NewContext creates a new provisioning context. The logger is taken from ctx.
func NewContext(ctx context.Context, cfg *config.Config, factory azure.ClientFactory, opts ...Option) *Context {
	c := &Context{
		Context:  ctx,
		Config:   cfg,
		State:    NewState(),
		Clients:  NewClients(factory),
		Log:      logr.FromContextOrDiscard(ctx),
		Timeouts: config.LoadTimeouts(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.Observer == nil {
		c.Observer = NewConsoleObserver(c.Log)
	}
	if c.Metrics == nil {
		c.Metrics = NewMetrics()
	}
	return c
}

// ReportOutcome notifies the user of a successful ensure and counts it.
func (c *Context) ReportOutcome(phase, kind, name string, outcome Outcome) {
	if outcome == OutcomeCreated {
		LogResourceCreated(c.Observer, phase, kind, name)
	} else {
		LogResourceExists(c.Observer, phase, kind, name)
	}
	c.Metrics.RecordOutcome(kind, outcome)
}

// ReportFailure notifies the user of a failed create and returns it as a CreateFailedError.
func (c *Context) ReportFailure(phase, kind, name string, cause error) error {
	LogResourceFailed(c.Observer, phase, kind, name, cause)
	c.Metrics.RecordFailure(kind)
	return CreateFailed(kind, name, cause)
}
