package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/imamik/easycluster/internal/provisioning/cluster"
)

// Model is the Bubble Tea model for the cluster monitor dashboard.
type Model struct {
	// Cluster info
	ClusterName string
	Workspace   string

	// Latest observation
	Status    *cluster.Status
	LastFetch time.Time
	FetchErr  error
	Polls     int

	// Animation
	SpinnerFrame int
	StartTime    time.Time

	// UI state
	Width  int
	Height int
	Err    error
	Done   bool
}

// NewMonitorModel creates a model for the cluster monitor dashboard.
func NewMonitorModel(clusterName, workspace string) Model {
	return Model{
		ClusterName: clusterName,
		Workspace:   workspace,
		StartTime:   time.Now(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.Done = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case StatusMsg:
		m.Status = msg.Status
		m.LastFetch = msg.At
		m.FetchErr = nil
		m.Polls++

	case FetchErrMsg:
		m.FetchErr = msg.Err
		m.LastFetch = msg.At
		m.Polls++

	case TickMsg:
		m.SpinnerFrame++
		return m, tickCmd()

	case ErrMsg:
		m.Err = msg.Err
		return m, tea.Quit

	case DoneMsg:
		m.Done = true
		return m, tea.Quit
	}

	return m, nil
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View implements tea.Model.
func (m Model) View() string {
	return renderView(m)
}
