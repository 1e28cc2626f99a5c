package script

import (
	"errors"
	"fmt"
)

var (
	// ErrEngineClosed is returned when calling into a closed engine.
	ErrEngineClosed = errors.New("script: engine is closed")

	// ErrUndefinedFunction is returned when a hook names a missing global.
	ErrUndefinedFunction = errors.New("script: undefined function")
)

// CallError wraps a Lua runtime error with the function that raised it.
type CallError struct {
	Function string
	Err      error
}

// Error implements the error interface.
func (e *CallError) Error() string {
	return fmt.Sprintf("script: calling %s: %v", e.Function, e.Err)
}

// Unwrap returns the underlying error.
func (e *CallError) Unwrap() error { return e.Err }
