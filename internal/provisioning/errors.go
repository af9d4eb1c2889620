package provisioning

import (
	"errors"
	"fmt"

	"github.com/imamik/easycluster/internal/platform/azure"
)

// Outcome is the successful result of an ensure operation.
type Outcome int

const (
	// OutcomeNone is returned alongside an error.
	OutcomeNone Outcome = iota
	// OutcomeCreated means the resource did not exist and was created.
	OutcomeCreated
	// OutcomeAlreadyExists means the resource was found and left untouched.
	OutcomeAlreadyExists
)

// String returns the metric label of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeCreated:
		return "created"
	case OutcomeAlreadyExists:
		return "exists"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// ErrMissingDependency is returned when a step runs before the step that
// resolves one of its inputs.
var ErrMissingDependency = errors.New("missing dependency")

// MissingDependency returns an error wrapping ErrMissingDependency for what.
func MissingDependency(what string) error {
	return fmt.Errorf("%w: %s has not been resolved", ErrMissingDependency, what)
}

// CreateFailedError reports a fatal failure to create a resource.
type CreateFailedError struct {
	Kind  string
	Name  string
	Cause error
}

func (e *CreateFailedError) Error() string {
	return fmt.Sprintf("failed to create %s `%s`: %v", e.Kind, e.Name, e.Cause)
}

func (e *CreateFailedError) Unwrap() error { return e.Cause }

// CreateFailed wraps cause as a CreateFailedError.
func CreateFailed(kind, name string, cause error) error {
	return &CreateFailedError{Kind: kind, Name: name, Cause: cause}
}

// AuthError reports that credentials could not be used to build a client or call the API.
type AuthError struct {
	Kind  ClientKind
	Cause error
}

func (e *AuthError) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("authentication failed: %v", e.Cause)
	}
	return fmt.Sprintf("authentication failed for %s client: %v", e.Kind, e.Cause)
}

func (e *AuthError) Unwrap() error { return e.Cause }

// KeyNotFoundError is returned when the expected access key is absent from an account.
type KeyNotFoundError struct {
	Account string
	KeyName string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("key %q not found for storage account `%s`", e.KeyName, e.Account)
}

// IsCreateFailed reports whether err is a CreateFailedError.
func IsCreateFailed(err error) bool {
	var target *CreateFailedError
	return errors.As(err, &target)
}

// IsAuthError reports whether err is an AuthError or an authentication failure from Azure.
func IsAuthError(err error) bool {
	var target *AuthError
	return errors.As(err, &target) || azure.IsAuthFailure(err)
}

// IsKeyNotFound reports whether err is a KeyNotFoundError.
func IsKeyNotFound(err error) bool {
	var target *KeyNotFoundError
	return errors.As(err, &target)
}
