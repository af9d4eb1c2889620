package wizard

import "errors"

// Validation errors for the interactive wizard.
var (
	errValueRequired    = errors.New("value is required")
	errNodeCountInvalid = errors.New("node count must be a positive integer")
)
