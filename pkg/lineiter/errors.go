package lineiter

import "errors"

// Sentinel errors returned by iterator operations.
// Exhaustion of the underlying source is reported as io.EOF.
var (
	// ErrNotStarted is returned by CurrentLine before any line has been consumed.
	ErrNotStarted = errors.New("no lines read yet")

	// ErrJumpBackward is returned by Jump when the step count is less than one.
	ErrJumpBackward = errors.New("can only jump forward")
)
