package resolver

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// ErrNoServers is returned at construction time when the server list is
// empty. It is never returned from Resolve.
var ErrNoServers = errors.New("no DoH servers configured")

// AttemptError records one failed attempt against one server in the
// fallback chain.
type AttemptError struct {
	// Server is the display name of the server that failed.
	Server string
	// Cause is the classified failure: transport error, timeout,
	// unexpected HTTP status, or decode failure.
	Cause error
}

func (e *AttemptError) Error() string {
	return fmt.Sprintf("server %s: %v", e.Server, e.Cause)
}

func (e *AttemptError) Unwrap() error {
	return e.Cause
}

// AllServersFailedError is returned when every server in the fallback
// chain failed. It carries the per-server causes in chain order for
// diagnostics; this is the only error callers of Resolve normally need
// to branch on.
type AllServersFailedError struct {
	attempts []*AttemptError
}

// Attempts returns the per-server failures in the order the servers were
// configured.
func (e *AllServersFailedError) Attempts() []*AttemptError {
	return e.attempts
}

// Unwrap exposes the combined causes so errors.Is and errors.As reach
// through to individual attempt failures.
func (e *AllServersFailedError) Unwrap() error {
	errs := make([]error, len(e.attempts))
	for i, a := range e.attempts {
		errs[i] = a
	}
	return multierr.Combine(errs...)
}

func (e *AllServersFailedError) Error() string {
	return fmt.Sprintf("all %d DoH servers failed: %v", len(e.attempts), e.Unwrap())
}
