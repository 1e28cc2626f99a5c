package config

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownFormat is returned for files that are neither TOML nor YAML.
	ErrUnknownFormat = errors.New("config: unknown document format")

	// ErrValidationFailed wraps every validation error.
	ErrValidationFailed = errors.New("config: validation failed")

	// ErrHooksWithoutScript is returned when a column names hooks but no
	// script engine is available to bind them.
	ErrHooksWithoutScript = errors.New("config: column hooks require a script")

	// ErrWatcherClosed is returned when using a closed watcher.
	ErrWatcherClosed = errors.New("config: watcher is closed")
)

// ParseError represents an error while parsing a document.
type ParseError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("config: parse error in %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError describes one invalid setting.
type ValidationError struct {
	// Path is the setting path, for example "columns[2].type".
	Path    string
	Message string
	Value   any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("%s: %s (got %v)", e.Path, e.Message, e.Value)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Is makes every ValidationError match ErrValidationFailed.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// EnvError reports an environment override that could not be parsed.
type EnvError struct {
	Var   string
	Value string
	Err   error
}

// Error implements the error interface.
func (e *EnvError) Error() string {
	return fmt.Sprintf("config: %s=%q: %v", e.Var, e.Value, e.Err)
}

// Unwrap returns the underlying error.
func (e *EnvError) Unwrap() error { return e.Err }
