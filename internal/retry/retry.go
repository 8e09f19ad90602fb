// Package retry runs a repeatable operation with exponential backoff.
//
// Every failure is retried until the policy's retry budget is spent; the
// delay starts at the policy's base delay, doubles per retry and is capped
// at its maximum delay. The retry budget is resolved from a PolicySource
// once per call, so a configuration-backed source is re-read on every call.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Operation is one attempt of a repeatable unit of work.
type Operation[T any] func(ctx context.Context) (T, error)

// ErrPolicyUnavailable is returned when the retry policy cannot be resolved.
// The wrapped operation is never invoked in that case.
var ErrPolicyUnavailable = errors.New("retry: policy unavailable")

// Delays used when a Policy leaves BaseDelay or MaxDelay at zero.
const (
	DefaultBaseDelay = time.Second
	DefaultMaxDelay  = 10 * time.Second
)

// Policy bounds a retry loop. Zero delays resolve to the defaults.
type Policy struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

// DefaultPolicy returns a 1s..10s doubling schedule with the given budget.
func DefaultPolicy(maxRetries int) Policy {
	return Policy{
		MaxRetries: maxRetries,
		BaseDelay:  DefaultBaseDelay,
		MaxDelay:   DefaultMaxDelay,
	}
}

// RetryPolicy implements PolicySource, so a Policy can be passed directly.
func (p Policy) RetryPolicy() (Policy, error) {
	return p, nil
}

func (p Policy) normalize() (Policy, error) {
	if p.BaseDelay <= 0 {
		p.BaseDelay = DefaultBaseDelay
	}
	if p.MaxDelay <= 0 {
		p.MaxDelay = DefaultMaxDelay
	}
	if p.MaxRetries < 0 {
		return Policy{}, fmt.Errorf("max retries must be >= 0, got %d", p.MaxRetries)
	}
	if p.MaxDelay < p.BaseDelay {
		return Policy{}, fmt.Errorf("max delay %s is below base delay %s", p.MaxDelay, p.BaseDelay)
	}
	return p, nil
}

// Do invokes op until it succeeds or the retry budget from src is spent.
//
// The first success is returned immediately. Once retries reach the budget
// the error of the last attempt is returned unchanged. If ctx ends while
// waiting between attempts, the returned error matches both ctx.Err() and
// the last attempt's error.
func Do[T any](ctx context.Context, src PolicySource, op Operation[T], opts ...Option) (T, error) {
	var zero T

	cfg := newConfig(opts)

	policy, err := resolve(src)
	if err != nil {
		return zero, err
	}

	schedule := newSchedule(policy)
	retries := 0

	for {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}

		if retries >= policy.MaxRetries {
			cfg.exhausted(ctx, Event{
				Operation:  cfg.name,
				Err:        err,
				Retry:      retries,
				MaxRetries: policy.MaxRetries,
			})
			return zero, err
		}

		delay := schedule.NextBackOff()
		retries++

		cfg.notifier.Retrying(ctx, Event{
			Operation:  cfg.name,
			Err:        err,
			Retry:      retries,
			MaxRetries: policy.MaxRetries,
			Delay:      delay,
		})

		if serr := cfg.sleeper.Sleep(ctx, delay); serr != nil {
			return zero, &AbortedError{Retries: retries, Cause: serr, Last: err}
		}
	}
}

// Run is Do for operations that only report an error.
func Run(ctx context.Context, src PolicySource, fn func(ctx context.Context) error, opts ...Option) error {
	_, err := Do(ctx, src, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	}, opts...)
	return err
}

func resolve(src PolicySource) (Policy, error) {
	if src == nil {
		return Policy{}, fmt.Errorf("%w: no policy source", ErrPolicyUnavailable)
	}
	p, err := src.RetryPolicy()
	if err != nil {
		return Policy{}, fmt.Errorf("%w: %w", ErrPolicyUnavailable, err)
	}
	p, err = p.normalize()
	if err != nil {
		return Policy{}, fmt.Errorf("%w: %w", ErrPolicyUnavailable, err)
	}
	return p, nil
}

// AbortedError reports a retry loop cut short by its context.
type AbortedError struct {
	Retries int
	Cause   error
	Last    error
}

func (e *AbortedError) Error() string {
	return fmt.Sprintf("retry aborted after %d retries: %v (last error: %v)", e.Retries, e.Cause, e.Last)
}

func (e *AbortedError) Unwrap() []error {
	return []error{e.Cause, e.Last}
}
