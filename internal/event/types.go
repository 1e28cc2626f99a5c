package event

import "context"

// Priority orders handlers. Lower values run first.
type Priority int

const (
	// PriorityCritical is for engine-internal listeners that keep state consistent.
	PriorityCritical Priority = 0

	// PriorityHigh is for features reacting to other features.
	PriorityHigh Priority = 100

	// PriorityNormal is the default, used by host listeners.
	PriorityNormal Priority = 200

	// PriorityLow is for logging and metrics.
	PriorityLow Priority = 300
)

// String returns a human-readable priority name.
func (p Priority) String() string {
	switch {
	case p <= PriorityCritical:
		return "critical"
	case p <= PriorityHigh:
		return "high"
	case p <= PriorityNormal:
		return "normal"
	default:
		return "low"
	}
}

// Handler processes a notification. The event is type-erased.
type Handler interface {
	Handle(ctx context.Context, event any) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, event any) error

// Handle implements Handler.
func (f HandlerFunc) Handle(ctx context.Context, event any) error {
	return f(ctx, event)
}

// TypedHandlerFunc handles events of a single payload type.
type TypedHandlerFunc[T any] func(ctx context.Context, event Event[T]) error

// Typed converts a TypedHandlerFunc to a Handler.
// Events with a different payload type are skipped.
func Typed[T any](fn TypedHandlerFunc[T]) Handler {
	return HandlerFunc(func(ctx context.Context, event any) error {
		if e, ok := event.(Event[T]); ok {
			return fn(ctx, e)
		}
		return nil
	})
}

// FilterFunc decides whether a subscription receives an event.
type FilterFunc func(event any) bool

// Stats contains bus counters.
type Stats struct {
	EventsPublished   uint64
	HandlersExecuted  uint64
	HandlerErrors     uint64
	HandlerPanics     uint64
	ActiveSubscribers int
}
