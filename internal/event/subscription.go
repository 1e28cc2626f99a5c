package event

import "sync/atomic"

// Subscription is an active registration on a Bus.
type Subscription struct {
	id      uint64
	pattern Topic
	handler Handler
	config  subscriptionConfig
	bus     *Bus

	cancelled atomic.Bool
}

// ID returns the subscription identifier.
func (s *Subscription) ID() uint64 { return s.id }

// Topic returns the subscription pattern.
func (s *Subscription) Topic() Topic { return s.pattern }

// Priority returns the handler priority.
func (s *Subscription) Priority() Priority { return s.config.priority }

// IsActive reports whether the subscription still receives events.
func (s *Subscription) IsActive() bool { return !s.cancelled.Load() }

// Cancel removes the subscription from its bus. Safe to call more than once.
func (s *Subscription) Cancel() {
	if s.cancelled.Swap(true) {
		return
	}
	if s.bus != nil {
		s.bus.remove(s.id)
	}
}

func (s *Subscription) accepts(t Topic, event any) bool {
	if !s.IsActive() || !t.Matches(s.pattern) {
		return false
	}
	return s.config.filter == nil || s.config.filter(event)
}
