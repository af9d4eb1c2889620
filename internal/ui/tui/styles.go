package tui

import "github.com/charmbracelet/lipgloss"

// Palette shared by the dashboard.
var (
	colorGreen  = lipgloss.Color("#22c55e")
	colorRed    = lipgloss.Color("#ef4444")
	colorYellow = lipgloss.Color("#eab308")
	colorBlue   = lipgloss.Color("#3b82f6")
	colorDim    = lipgloss.Color("#6b7280")
	colorWhite  = lipgloss.Color("#f9fafb")
)

// Layout styles.
var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	subtitleStyle = lipgloss.NewStyle().Foreground(colorDim)
	sectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorBlue).MarginTop(1)
	footerStyle   = lipgloss.NewStyle().Foreground(colorDim).MarginTop(1)
	dimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// Cluster and node state styles.
var (
	steadyStyle   = lipgloss.NewStyle().Foreground(colorGreen)
	resizingStyle = lipgloss.NewStyle().Foreground(colorYellow)
	errorStyle    = lipgloss.NewStyle().Foreground(colorRed)
	busyStyle     = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)

	allocatedBarStyle   = lipgloss.NewStyle().Foreground(colorGreen)
	unallocatedBarStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// nodeStateStyles colors each node count when it is non-zero.
var nodeStateStyles = map[string]lipgloss.Style{
	"idle":      steadyStyle,
	"running":   busyStyle,
	"preparing": resizingStyle,
	"leaving":   dimStyle,
	"unusable":  errorStyle,
}

const (
	steadyMark   = "[OK]"
	errorMark    = "[!!]"
	resizingMark = "[~~]"
	staleMark    = "[??]"
)

var spinnerFrames = []string{"[⠋]", "[⠙]", "[⠹]", "[⠸]", "[⠼]", "[⠴]", "[⠦]", "[⠧]", "[⠇]", "[⠏]"}
