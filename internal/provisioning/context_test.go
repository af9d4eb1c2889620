package provisioning

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/easycluster/internal/config"
	testfix "github.com/imamik/easycluster/internal/testing"
)

func TestState_StorageKey(t *testing.T) {
	t.Parallel()

	s := NewState()
	_, err := s.StorageKey()
	require.ErrorIs(t, err, ErrMissingDependency)
	assert.Contains(t, err.Error(), "storage account key")

	s.SetStorageKey("secret")
	key, err := s.StorageKey()
	require.NoError(t, err)
	assert.Equal(t, "secret", key)
}

func TestState_WorkspaceConfirmation(t *testing.T) {
	t.Parallel()

	s := NewState()
	require.ErrorIs(t, s.WorkspaceConfirmed(), ErrMissingDependency)

	s.ConfirmWorkspace()
	assert.NoError(t, s.WorkspaceConfirmed())
}

func TestNewContext_Defaults(t *testing.T) {
	t.Parallel()

	cfg := testfix.MinimalConfig()
	ctx := NewContext(context.Background(), cfg, &testfix.MockFactory{})

	assert.Same(t, cfg, ctx.Config)
	assert.NotNil(t, ctx.State)
	assert.NotNil(t, ctx.Clients)
	assert.NotNil(t, ctx.Observer)
	assert.NotNil(t, ctx.Metrics)
	assert.NotNil(t, ctx.Timeouts)
}

func TestNewContext_Options(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	obs := NewWriterObserver(&buf, logr.Discard())
	metrics := NewMetrics()
	timeouts := config.TestTimeouts()

	ctx := NewContext(context.Background(), testfix.MinimalConfig(), &testfix.MockFactory{},
		WithObserver(obs), WithMetrics(metrics), WithTimeouts(timeouts))

	assert.Same(t, obs, ctx.Observer)
	assert.Same(t, metrics, ctx.Metrics)
	assert.Same(t, timeouts, ctx.Timeouts)
}

func TestContext_ReportOutcome(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := NewContext(context.Background(), testfix.MinimalConfig(), &testfix.MockFactory{},
		WithObserver(NewWriterObserver(&buf, logr.Discard())))

	ctx.ReportOutcome("storage", "file share", "data", OutcomeCreated)
	ctx.ReportOutcome("storage", "file share", "data", OutcomeAlreadyExists)

	assert.Equal(t, "Created resource `data`.\n`data` already exists.\n", buf.String())
	assert.Equal(t, float64(1), testutil.ToFloat64(ctx.Metrics.ensureTotal.WithLabelValues("file share", "created")))
	assert.Equal(t, float64(1), testutil.ToFloat64(ctx.Metrics.ensureTotal.WithLabelValues("file share", "exists")))
}

func TestContext_ReportFailure(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := NewContext(context.Background(), testfix.MinimalConfig(), &testfix.MockFactory{},
		WithObserver(NewWriterObserver(&buf, logr.Discard())))

	cause := errors.New("quota exceeded")
	err := ctx.ReportFailure("workspace", "workspace", "ws", cause)

	require.True(t, IsCreateFailed(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Failed to create `ws`. Exception: quota exceeded\n", buf.String())
	assert.Equal(t, float64(1), testutil.ToFloat64(ctx.Metrics.ensureTotal.WithLabelValues("workspace", "failed")))
}
