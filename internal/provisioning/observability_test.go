package provisioning

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCapturingLogger(lines *[]string) logr.Logger {
	return funcr.New(func(prefix, args string) {
		*lines = append(*lines, args)
	}, funcr.Options{Verbosity: 1})
}

func TestConsoleObserver_NotifyLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		emit func(Observer)
		want string
	}{
		{
			name: "created",
			emit: func(o Observer) { LogResourceCreated(o, "rg", "resource group", "my-rg") },
			want: "Created resource `my-rg`.\n",
		},
		{
			name: "exists",
			emit: func(o Observer) { LogResourceExists(o, "rg", "resource group", "my-rg") },
			want: "`my-rg` already exists.\n",
		},
		{
			name: "failed",
			emit: func(o Observer) {
				LogResourceFailed(o, "cluster", "cluster", "gpu", errors.New("VM size not available"))
			},
			want: "Failed to create `gpu`. Exception: VM size not available\n",
		},
		{
			name: "list failed",
			emit: func(o Observer) {
				LogListFailed(o, "rg", "resource group", "my-rg", errors.New("timeout"))
			},
			want: "Could not list resource groups: timeout. Trying to create `my-rg`.\n",
		},
		{
			name: "info",
			emit: func(o Observer) { LogInfo(o, "monitor", "Cluster state: steady") },
			want: "Cluster state: steady\n",
		},
		{
			name: "phase events are diagnostic only",
			emit: func(o Observer) {
				LogPhaseStart(o, "storage")
				LogPhaseComplete(o, "storage", time.Second)
				LogResourceCreating(o, "storage", "storage account", "acct")
			},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			tt.emit(NewWriterObserver(&buf, logr.Discard()))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestConsoleObserver_LogsEvents(t *testing.T) {
	t.Parallel()

	var lines []string
	var buf bytes.Buffer
	obs := NewWriterObserver(&buf, newCapturingLogger(&lines))

	LogPhaseStart(obs, "storage")
	LogResourceCreated(obs, "storage", "storage account", "acct")
	LogResourceFailed(obs, "storage", "file share", "data", errors.New("boom"))

	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], `"event"="phase.started"`)
	assert.Contains(t, lines[1], `"kind"="storage account"`)
	assert.Contains(t, lines[1], `"resource"="acct"`)
	assert.Contains(t, lines[2], `"error"="boom"`)
}

func TestConsoleObserver_WithFields(t *testing.T) {
	t.Parallel()

	var lines []string
	var buf bytes.Buffer
	base := NewWriterObserver(&buf, newCapturingLogger(&lines))
	child := base.WithFields(map[string]string{"run": "abc"})

	LogResourceExists(child, "rg", "resource group", "my-rg")
	LogResourceExists(base, "rg", "resource group", "my-rg")

	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"run"="abc"`)
	assert.NotContains(t, lines[1], `"run"=`)
	assert.Equal(t, 2, strings.Count(buf.String(), "already exists"))
}
