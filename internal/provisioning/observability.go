package provisioning

import (
	"fmt"
	"io"
	"maps"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-logr/logr"

	"github.com/imamik/easycluster/internal/platform/azure"
)

// Observer receives structured provisioning events.
type Observer interface {
	// Event emits a structured event
	Event(event Event)

	// WithFields returns a new Observer with additional context fields
	WithFields(fields map[string]string) Observer
}

// Event represents a structured provisioning event.
type Event struct {
	Type      EventType         // Type of event
	Phase     string            // Phase name (e.g., "storage", "cluster")
	Kind      string            // Resource kind (e.g., "storage account")
	Resource  string            // Resource name if applicable
	Message   string            // Human-readable message
	Err       error             // Cause of a failure event
	Timestamp time.Time         // When the event occurred
	Fields    map[string]string // Additional contextual fields
}

// EventType represents the type of provisioning event.
type EventType string

const (
	// EventPhaseStarted indicates a provisioning phase has started.
	EventPhaseStarted EventType = "phase.started"
	// EventPhaseCompleted indicates a provisioning phase completed successfully.
	EventPhaseCompleted EventType = "phase.completed"
	// EventPhaseFailed indicates a provisioning phase failed.
	EventPhaseFailed EventType = "phase.failed"

	// EventResourceCreating indicates a resource is being created.
	EventResourceCreating EventType = "resource.creating"
	// EventResourceCreated indicates a resource was created successfully.
	EventResourceCreated EventType = "resource.created"
	// EventResourceExists indicates a resource already exists.
	EventResourceExists EventType = "resource.exists"
	// EventResourceFailed indicates resource creation failed.
	EventResourceFailed EventType = "resource.failed"

	// EventListFailed indicates an existence listing failed and creation will be attempted anyway.
	EventListFailed EventType = "list.failed"

	// EventInfo carries a plain informational message for the user.
	EventInfo EventType = "info"
)

type notifyStyles struct {
	created lipgloss.Style
	exists  lipgloss.Style
	failed  lipgloss.Style
	warning lipgloss.Style
}

func newNotifyStyles(r *lipgloss.Renderer) notifyStyles {
	return notifyStyles{
		created: r.NewStyle().Foreground(lipgloss.Color("2")),
		exists:  r.NewStyle().Foreground(lipgloss.Color("6")),
		failed:  r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		warning: r.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

// ConsoleObserver prints resource outcomes as colored notify lines and
// sends every event to a logr.Logger at verbosity 1 for diagnostics.
type ConsoleObserver struct {
	out           io.Writer
	log           logr.Logger
	styles        notifyStyles
	contextFields map[string]string
}

// NewConsoleObserver creates an observer printing to stdout.
func NewConsoleObserver(log logr.Logger) *ConsoleObserver {
	return NewWriterObserver(os.Stdout, log)
}

// NewWriterObserver creates an observer printing to out. Colors are only
// emitted when out is a terminal.
func NewWriterObserver(out io.Writer, log logr.Logger) *ConsoleObserver {
	return &ConsoleObserver{
		out:           out,
		log:           log,
		styles:        newNotifyStyles(lipgloss.NewRenderer(out)),
		contextFields: make(map[string]string),
	}
}

// Event implements Observer interface.
func (o *ConsoleObserver) Event(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	if event.Fields == nil {
		event.Fields = make(map[string]string)
	}
	for k, v := range o.contextFields {
		if _, exists := event.Fields[k]; !exists {
			event.Fields[k] = v
		}
	}

	if line := o.notifyLine(event); line != "" {
		fmt.Fprintln(o.out, line)
	}
	o.logEvent(event)
}

// WithFields implements Observer interface.
func (o *ConsoleObserver) WithFields(fields map[string]string) Observer {
	newFields := maps.Clone(o.contextFields)
	maps.Copy(newFields, fields)

	return &ConsoleObserver{
		out:           o.out,
		log:           o.log,
		styles:        o.styles,
		contextFields: newFields,
	}
}

// notifyLine returns the user-facing line for event, or "" for diagnostic-only events.
func (o *ConsoleObserver) notifyLine(event Event) string {
	switch event.Type {
	case EventResourceCreated:
		return o.styles.created.Render(fmt.Sprintf("Created resource `%s`.", event.Resource))
	case EventResourceExists:
		return o.styles.exists.Render(fmt.Sprintf("`%s` already exists.", event.Resource))
	case EventResourceFailed:
		return o.styles.failed.Render(fmt.Sprintf("Failed to create `%s`. Exception: %s", event.Resource, azure.Summary(event.Err)))
	case EventListFailed:
		return o.styles.warning.Render(fmt.Sprintf("Could not list %ss: %s. Trying to create `%s`.", event.Kind, azure.Summary(event.Err), event.Resource))
	case EventInfo:
		return event.Message
	default:
		return ""
	}
}

func (o *ConsoleObserver) logEvent(event Event) {
	kv := []any{"event", string(event.Type)}
	if event.Phase != "" {
		kv = append(kv, "phase", event.Phase)
	}
	if event.Kind != "" {
		kv = append(kv, "kind", event.Kind)
	}
	if event.Resource != "" {
		kv = append(kv, "resource", event.Resource)
	}
	keys := make([]string, 0, len(event.Fields))
	for k := range event.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		kv = append(kv, k, event.Fields[k])
	}

	msg := event.Message
	if msg == "" {
		msg = strings.ReplaceAll(string(event.Type), ".", " ")
	}

	if event.Err != nil {
		kv = append(kv, "error", event.Err.Error())
	}
	// User-facing lines already go to out; the log only carries them at V(1).
	o.log.V(1).Info(msg, kv...)
}

// Helper functions for common events

// LogPhaseStart logs a phase start event.
func LogPhaseStart(observer Observer, phase string) {
	observer.Event(Event{
		Type:    EventPhaseStarted,
		Phase:   phase,
		Message: "starting",
	})
}

// LogPhaseComplete logs a phase completion event.
func LogPhaseComplete(observer Observer, phase string, duration time.Duration) {
	observer.Event(Event{
		Type:    EventPhaseCompleted,
		Phase:   phase,
		Message: fmt.Sprintf("completed in %v", duration.Round(time.Millisecond)),
	})
}

// LogPhaseFailed logs a phase failure event.
func LogPhaseFailed(observer Observer, phase string, err error) {
	observer.Event(Event{
		Type:    EventPhaseFailed,
		Phase:   phase,
		Message: "failed",
		Err:     err,
	})
}

// LogResourceCreating logs a resource creation start event.
func LogResourceCreating(observer Observer, phase, kind, name string) {
	observer.Event(Event{
		Type:     EventResourceCreating,
		Phase:    phase,
		Kind:     kind,
		Resource: name,
		Message:  fmt.Sprintf("creating %s", kind),
	})
}

// LogResourceCreated logs a successful resource creation event.
func LogResourceCreated(observer Observer, phase, kind, name string) {
	observer.Event(Event{
		Type:     EventResourceCreated,
		Phase:    phase,
		Kind:     kind,
		Resource: name,
		Message:  fmt.Sprintf("%s created", kind),
	})
}

// LogResourceExists logs when a resource already exists.
func LogResourceExists(observer Observer, phase, kind, name string) {
	observer.Event(Event{
		Type:     EventResourceExists,
		Phase:    phase,
		Kind:     kind,
		Resource: name,
		Message:  fmt.Sprintf("%s already exists", kind),
	})
}

// LogResourceFailed logs a failed resource creation.
func LogResourceFailed(observer Observer, phase, kind, name string, err error) {
	observer.Event(Event{
		Type:     EventResourceFailed,
		Phase:    phase,
		Kind:     kind,
		Resource: name,
		Message:  fmt.Sprintf("%s creation failed", kind),
		Err:      err,
	})
}

// LogListFailed logs a failed existence listing that is followed by a create attempt.
func LogListFailed(observer Observer, phase, kind, name string, err error) {
	observer.Event(Event{
		Type:     EventListFailed,
		Phase:    phase,
		Kind:     kind,
		Resource: name,
		Message:  fmt.Sprintf("listing %ss failed", kind),
		Err:      err,
	})
}

// LogInfo prints a plain message.
func LogInfo(observer Observer, phase, message string) {
	observer.Event(Event{
		Type:    EventInfo,
		Phase:   phase,
		Message: message,
	})
}
