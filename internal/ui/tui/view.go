package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// styleFunc is a single-string styling function.
type styleFunc func(string) string

// sf wraps a lipgloss.Style into a styleFunc.
func sf(s lipgloss.Style) styleFunc {
	return func(str string) string { return s.Render(str) }
}

func renderView(m Model) string {
	var b strings.Builder

	renderHeader(&b, m)

	if m.Status != nil {
		renderNodes(&b, m)
		if len(m.Status.Errors) > 0 {
			renderErrors(&b, m)
		}
	}

	renderFooter(&b, m)

	return b.String()
}

func renderHeader(b *strings.Builder, m Model) {
	title := fmt.Sprintf("easycluster: %s", m.ClusterName)
	if m.Workspace != "" {
		title += fmt.Sprintf(" (%s)", m.Workspace)
	}
	b.WriteString(titleStyle.Render(title))

	status := " "
	switch {
	case m.Err != nil:
		status += errorStyle.Render(fmt.Sprintf("Error: %v", m.Err))
	case m.Status == nil:
		status += busyStyle.Render(currentSpinner(m.SpinnerFrame)+" ") + dimStyle.Render("Fetching...")
	default:
		icon, style := allocationIcon(m.Status.AllocationState, len(m.Status.Errors))
		status += style(icon + " " + m.Status.AllocationState)
	}
	b.WriteString(status)
	b.WriteString("\n")

	if m.Status != nil && m.Status.VMSize != "" {
		b.WriteString(subtitleStyle.Render(fmt.Sprintf("  %s, provisioning %s", m.Status.VMSize, m.Status.ProvisioningState)))
		b.WriteString("\n")
	}
}

func renderNodes(b *strings.Builder, m Model) {
	s := m.Status
	b.WriteString(sectionStyle.Render("  Nodes"))
	b.WriteString("\n")

	fmt.Fprintf(b, "    %-10s %s %d/%d\n", "allocated", nodeBar(s.Allocated, s.Target, barWidth(m)), s.Allocated, s.Target)

	rows := []struct {
		name  string
		count int32
	}{
		{"idle", s.Idle},
		{"running", s.Running},
		{"preparing", s.Preparing},
		{"leaving", s.Leaving},
		{"unusable", s.Unusable},
	}
	for _, row := range rows {
		style := dimStyle
		if row.count > 0 {
			style = nodeStateStyles[row.name]
		}
		fmt.Fprintf(b, "    %-10s %s\n", row.name, style.Render(fmt.Sprintf("%d", row.count)))
	}
}

func renderErrors(b *strings.Builder, m Model) {
	b.WriteString(sectionStyle.Render("  Errors"))
	b.WriteString("\n")

	for _, e := range m.Status.Errors {
		fmt.Fprintf(b, "    %s %s: %s\n", errorStyle.Render(errorMark), e.Code, dimStyle.Render(e.Message))
		for _, d := range e.Details {
			fmt.Fprintf(b, "        %s: %s\n", d.Name, dimStyle.Render(d.Value))
		}
	}
}

func renderFooter(b *strings.Builder, m Model) {
	parts := []string{fmt.Sprintf("elapsed: %s", formatDuration(time.Since(m.StartTime)))}
	if !m.LastFetch.IsZero() {
		parts = append(parts, fmt.Sprintf("updated: %s ago", formatDuration(time.Since(m.LastFetch))))
	}
	if m.FetchErr != nil {
		parts = append(parts, resizingStyle.Render(fmt.Sprintf("%s last poll failed: %v", staleMark, m.FetchErr)))
	}
	b.WriteString(footerStyle.Render(fmt.Sprintf("  %s  |  q: quit", strings.Join(parts, "  |  "))))
	b.WriteString("\n")
}

// Helper functions

// allocationIcon maps a Batch AI allocation state to an icon and style.
func allocationIcon(state string, errorCount int) (string, styleFunc) {
	switch {
	case errorCount > 0:
		return errorMark, sf(errorStyle)
	case strings.EqualFold(state, "steady"):
		return steadyMark, sf(steadyStyle)
	default:
		return resizingMark, sf(resizingStyle)
	}
}

func barWidth(m Model) int {
	width := 30
	if m.Width > 0 && m.Width < 60 {
		width = max(m.Width-30, 10)
	}
	return width
}

func nodeBar(current, target int32, width int) string {
	filled := 0
	if target > 0 {
		filled = min(int(float64(width)*float64(current)/float64(target)), width)
	}
	return allocatedBarStyle.Render(strings.Repeat("█", filled)) +
		unallocatedBarStyle.Render(strings.Repeat("░", width-filled))
}

func currentSpinner(frame int) string {
	if frame < 0 {
		frame = -frame
	}
	return spinnerFrames[frame%len(spinnerFrames)]
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
}
