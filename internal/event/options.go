package event

import "log/slog"

// BusOption configures a Bus.
type BusOption func(*busConfig)

type busConfig struct {
	logger  *slog.Logger
	onError func(error)
}

func defaultBusConfig() busConfig {
	return busConfig{
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithLogger sets the logger used for handler failures.
func WithLogger(l *slog.Logger) BusOption {
	return func(c *busConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithErrorHandler registers a callback receiving handler errors and panics.
func WithErrorHandler(fn func(error)) BusOption {
	return func(c *busConfig) {
		c.onError = fn
	}
}

// SubscriptionOption configures a subscription.
type SubscriptionOption func(*subscriptionConfig)

type subscriptionConfig struct {
	priority Priority
	once     bool
	filter   FilterFunc
}

func defaultSubscriptionConfig() subscriptionConfig {
	return subscriptionConfig{priority: PriorityNormal}
}

// WithPriority sets the handler priority.
func WithPriority(p Priority) SubscriptionOption {
	return func(c *subscriptionConfig) {
		c.priority = p
	}
}

// WithOnce cancels the subscription after its first successful delivery.
func WithOnce() SubscriptionOption {
	return func(c *subscriptionConfig) {
		c.once = true
	}
}

// WithFilter delivers only events accepted by fn.
func WithFilter(fn FilterFunc) SubscriptionOption {
	return func(c *subscriptionConfig) {
		c.filter = fn
	}
}
