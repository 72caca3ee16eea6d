package input

import (
	"errors"
	"fmt"
)

var (
	// ErrNoInput is returned when the requested strategies found no types.
	ErrNoInput = errors.New("no input types found")
	// ErrMissingCollaborator is returned when a strategy is requested but the
	// environment lacks what it needs to run.
	ErrMissingCollaborator = errors.New("missing collaborator")
)

// NameResolutionError reports a name that could not be loaded.
type NameResolutionError struct {
	Name string
	Err  error
}

func (e *NameResolutionError) Error() string {
	return fmt.Sprintf("failed to resolve type %q: %v", e.Name, e.Err)
}

func (e *NameResolutionError) Unwrap() error { return e.Err }

// ApplicationScanError reports a failed application introspection.
type ApplicationScanError struct {
	Application string
	Err         error
}

func (e *ApplicationScanError) Error() string {
	return fmt.Sprintf("failed to scan application %q: %v", e.Application, e.Err)
}

func (e *ApplicationScanError) Unwrap() error { return e.Err }

// IsUserError reports whether err is a configuration problem the user can
// correct, as opposed to an internal failure.
func IsUserError(err error) bool {
	var nameErr *NameResolutionError
	var appErr *ApplicationScanError
	return errors.Is(err, ErrNoInput) || errors.As(err, &nameErr) || errors.As(err, &appErr)
}
