package event

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEvent is returned when an event does not carry a valid topic.
	ErrInvalidEvent = errors.New("invalid event")

	// ErrInvalidTopic is returned when a subscription pattern is malformed.
	ErrInvalidTopic = errors.New("invalid topic")

	// ErrNilHandler is returned when a nil handler is provided.
	ErrNilHandler = errors.New("handler cannot be nil")

	// ErrHandlerPanic matches recovered handler panics.
	ErrHandlerPanic = errors.New("handler panicked")
)

// HandlerError wraps an error returned by a handler.
type HandlerError struct {
	SubscriptionID uint64
	Topic          Topic
	Err            error
}

// Error implements the error interface.
func (e *HandlerError) Error() string {
	return fmt.Sprintf("handler error for subscription %d on topic %s: %v", e.SubscriptionID, e.Topic, e.Err)
}

// Unwrap returns the underlying error.
func (e *HandlerError) Unwrap() error { return e.Err }

// PanicError wraps a recovered panic value.
type PanicError struct {
	SubscriptionID uint64
	Topic          Topic
	Value          any
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("handler panic for subscription %d on topic %s: %v", e.SubscriptionID, e.Topic, e.Value)
}

// Is matches ErrHandlerPanic.
func (e *PanicError) Is(target error) bool {
	return target == ErrHandlerPanic
}
