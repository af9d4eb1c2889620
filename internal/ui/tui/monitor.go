package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/imamik/easycluster/internal/provisioning/cluster"
)

// FetchFunc fetches the current cluster status.
type FetchFunc func() (*cluster.Status, error)

// RunMonitorTUI shows a live cluster dashboard, polling fetch every interval
// until the user quits or ctx is cancelled.
func RunMonitorTUI(ctx context.Context, fetch FetchFunc, interval time.Duration, clusterName, workspace string) error {
	m := NewMonitorModel(clusterName, workspace)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	pollCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go pollStatus(pollCtx, p.Send, fetch, interval)

	finalModel, err := p.Run()
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	if fm, ok := finalModel.(Model); ok && fm.Err != nil {
		return fm.Err
	}
	return nil
}

// defaultPollInterval is used when the caller passes a non-positive interval.
const defaultPollInterval = 15 * time.Second

// pollStatus fetches immediately and then on every tick until ctx is done.
func pollStatus(ctx context.Context, send func(tea.Msg), fetch FetchFunc, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	send(fetchMsg(fetch))
	for {
		select {
		case <-ctx.Done():
			send(DoneMsg{})
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				continue
			}
			send(fetchMsg(fetch))
		}
	}
}

func fetchMsg(fetch FetchFunc) tea.Msg {
	status, err := fetch()
	if err != nil {
		return FetchErrMsg{Err: err, At: time.Now()}
	}
	return StatusMsg{Status: status, At: time.Now()}
}
