package lua

import "errors"

// Errors for Lua state and library operations.
var (
	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrExecutionTimeout is returned when execution times out.
	ErrExecutionTimeout = errors.New("lua execution timeout")

	// ErrNoFunction is returned when the script does not define an operation.
	ErrNoFunction = errors.New("lua: function not defined")

	// ErrNotArea is returned when the target is not an editable text area.
	ErrNotArea = errors.New("lua: target is not an editable text area")

	// ErrActionFailed is returned when an operation reports failure.
	ErrActionFailed = errors.New("lua: action failed")
)
