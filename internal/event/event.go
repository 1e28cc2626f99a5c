package event

import (
	"time"

	"github.com/google/uuid"
)

// Event is a typed notification.
type Event[T any] struct {
	// Type is the topic the event is published on.
	Type Topic

	// Payload carries the notification data.
	Payload T

	// Metadata carries standard information.
	Metadata Metadata
}

// Metadata is attached to every event.
type Metadata struct {
	// ID uniquely identifies this event instance.
	ID string

	// Timestamp is when the event was created.
	Timestamp time.Time

	// Source identifies the grid instance that published the event.
	Source string
}

// NewEvent creates an event with fresh metadata.
func NewEvent[T any](eventType Topic, payload T, source string) Event[T] {
	return Event[T]{
		Type:    eventType,
		Payload: payload,
		Metadata: Metadata{
			ID:        uuid.NewString(),
			Timestamp: time.Now(),
			Source:    source,
		},
	}
}

// EventTopic implements TopicProvider.
func (e Event[T]) EventTopic() Topic { return e.Type }

// EventMetadata implements MetadataProvider.
func (e Event[T]) EventMetadata() Metadata { return e.Metadata }

// TopicProvider is implemented by every publishable event.
type TopicProvider interface {
	EventTopic() Topic
}

// MetadataProvider is implemented by events carrying metadata.
type MetadataProvider interface {
	EventMetadata() Metadata
}
