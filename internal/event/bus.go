package event

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
)

// Bus delivers notifications synchronously to subscribed handlers.
type Bus struct {
	mu     sync.RWMutex
	subs   []*Subscription
	nextID uint64
	config busConfig

	published atomic.Uint64
	executed  atomic.Uint64
	errs      atomic.Uint64
	panics    atomic.Uint64
}

// NewBus creates a bus.
func NewBus(opts ...BusOption) *Bus {
	cfg := defaultBusConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Bus{config: cfg}
}

// Subscribe registers handler for topics matching pattern.
func (b *Bus) Subscribe(pattern Topic, handler Handler, opts ...SubscriptionOption) (*Subscription, error) {
	if handler == nil {
		return nil, ErrNilHandler
	}
	if !pattern.IsValid() {
		return nil, ErrInvalidTopic
	}

	cfg := defaultSubscriptionConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	sub := &Subscription{
		id:      b.nextID,
		pattern: pattern,
		handler: handler,
		config:  cfg,
		bus:     b,
	}
	b.subs = append(b.subs, sub)
	// Stable so equal priorities keep registration order.
	sort.SliceStable(b.subs, func(i, j int) bool {
		return b.subs[i].config.priority < b.subs[j].config.priority
	})
	return sub, nil
}

// SubscribeFunc is Subscribe with a plain function.
func (b *Bus) SubscribeFunc(pattern Topic, fn func(ctx context.Context, event any) error, opts ...SubscriptionOption) (*Subscription, error) {
	if fn == nil {
		return nil, ErrNilHandler
	}
	return b.Subscribe(pattern, HandlerFunc(fn), opts...)
}

// Publish delivers event to every matching subscription.
// The event must implement TopicProvider.
func (b *Bus) Publish(ctx context.Context, event any) error {
	tp, ok := event.(TopicProvider)
	if !ok || !tp.EventTopic().IsValid() {
		return ErrInvalidEvent
	}
	t := tp.EventTopic()

	b.mu.RLock()
	subs := make([]*Subscription, 0, len(b.subs))
	for _, s := range b.subs {
		if s.accepts(t, event) {
			subs = append(subs, s)
		}
	}
	b.mu.RUnlock()

	b.published.Add(1)
	for _, s := range subs {
		// A handler earlier in the chain may have cancelled this one.
		if !s.IsActive() {
			continue
		}
		if err := b.deliver(ctx, s, t, event); err != nil {
			b.report(err)
			continue
		}
		if s.config.once {
			s.Cancel()
		}
	}
	return nil
}

func (b *Bus) deliver(ctx context.Context, s *Subscription, t Topic, event any) (err error) {
	b.executed.Add(1)
	defer func() {
		if r := recover(); r != nil {
			b.panics.Add(1)
			err = &PanicError{SubscriptionID: s.id, Topic: t, Value: r}
		}
	}()
	if herr := s.handler.Handle(ctx, event); herr != nil {
		b.errs.Add(1)
		return &HandlerError{SubscriptionID: s.id, Topic: t, Err: herr}
	}
	return nil
}

func (b *Bus) report(err error) {
	b.config.logger.Warn("event handler failed", slog.Any("error", err))
	if b.config.onError != nil {
		b.config.onError(err)
	}
}

func (b *Bus) remove(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, s := range b.subs {
		if s.id == id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}

// Stats returns bus counters.
func (b *Bus) Stats() Stats {
	b.mu.RLock()
	active := len(b.subs)
	b.mu.RUnlock()
	return Stats{
		EventsPublished:   b.published.Load(),
		HandlersExecuted:  b.executed.Load(),
		HandlerErrors:     b.errs.Load(),
		HandlerPanics:     b.panics.Load(),
		ActiveSubscribers: active,
	}
}
