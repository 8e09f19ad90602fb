package retry

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Event describes one failed attempt.
// Retry is the retry count after the failure; Delay is zero on exhaustion.
type Event struct {
	Operation  string
	Err        error
	Retry      int
	MaxRetries int
	Delay      time.Duration
}

// Notifier observes retries. Retrying is called before each sleep, never on
// success or on the failure that exhausts the budget.
type Notifier interface {
	Retrying(ctx context.Context, ev Event)
}

// ExhaustedNotifier is implemented by notifiers that also want the final failure.
type ExhaustedNotifier interface {
	Exhausted(ctx context.Context, ev Event)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, ev Event)

func (f NotifierFunc) Retrying(ctx context.Context, ev Event) {
	f(ctx, ev)
}

// LogNotifier writes one warning per retry. A nil Logger means zap.L().
type LogNotifier struct {
	Logger *zap.Logger
}

func (n LogNotifier) Retrying(_ context.Context, ev Event) {
	log := n.Logger
	if log == nil {
		log = zap.L()
	}
	log.Warn("operation failed, retrying",
		zap.String("operation", ev.Operation),
		zap.String("error", fmt.Sprintf("%+v", ev.Err)),
		zap.Int("retry", ev.Retry),
		zap.Int("max_retries", ev.MaxRetries),
		zap.Duration("delay", ev.Delay),
	)
}

type multiNotifier []Notifier

// Notifiers fans events out to every non-nil notifier in order.
func Notifiers(ns ...Notifier) Notifier {
	out := make(multiNotifier, 0, len(ns))
	for _, n := range ns {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

func (m multiNotifier) Retrying(ctx context.Context, ev Event) {
	for _, n := range m {
		n.Retrying(ctx, ev)
	}
}

func (m multiNotifier) Exhausted(ctx context.Context, ev Event) {
	for _, n := range m {
		if en, ok := n.(ExhaustedNotifier); ok {
			en.Exhausted(ctx, ev)
		}
	}
}
