// Package tui provides a Bubble Tea-based terminal UI for watching a cluster.
package tui

import (
	"time"

	"github.com/imamik/easycluster/internal/provisioning/cluster"
)

// StatusMsg carries the latest cluster status.
type StatusMsg struct {
	Status *cluster.Status
	At     time.Time
}

// FetchErrMsg reports a failed poll. Polling continues.
type FetchErrMsg struct {
	Err error
	At  time.Time
}

// TickMsg is sent periodically to refresh the display.
type TickMsg struct{}

// ErrMsg carries an error that ends the dashboard.
type ErrMsg struct{ Err error }

// DoneMsg signals that the operation is complete.
type DoneMsg struct{}
