package retry

import "context"

type config struct {
	name     string
	notifier Notifier
	sleeper  Sleeper
}

// Option customizes a single Do or Run call.
type Option func(*config)

func newConfig(opts []Option) config {
	cfg := config{
		notifier: LogNotifier{},
		sleeper:  timerSleeper{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Named labels the operation in diagnostics and metrics.
func Named(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithNotifier replaces the default zap notifier.
func WithNotifier(n Notifier) Option {
	return func(c *config) {
		if n != nil {
			c.notifier = n
		}
	}
}

// WithSleeper replaces the timer-based sleeper. Useful for tests.
func WithSleeper(s Sleeper) Option {
	return func(c *config) {
		if s != nil {
			c.sleeper = s
		}
	}
}

func (c config) exhausted(ctx context.Context, ev Event) {
	if en, ok := c.notifier.(ExhaustedNotifier); ok {
		en.Exhausted(ctx, ev)
	}
}
