package dupescan

import (
	"errors"
	"fmt"
)

// SetupError reports a condition that prevents a scan from starting at all:
// the root path is missing, is not a directory, or cannot be read. It is the
// only error kind NewFinder returns, so callers can distinguish setup
// failures from unexpected runtime errors with errors.As.
type SetupError struct {
	Path   string
	Reason string
	Err    error
}

func (e *SetupError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot scan %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("cannot scan %s: %s", e.Path, e.Reason)
}

func (e *SetupError) Unwrap() error {
	return e.Err
}

// ErrInterrupted is returned when a scan is stopped via the shutdown channel
// before completing.
var ErrInterrupted = errors.New("scan interrupted by shutdown")
