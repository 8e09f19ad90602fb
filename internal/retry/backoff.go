package retry

import (
	"time"

	"github.com/cenkalti/backoff/v4"
)

// newSchedule returns a fresh, deterministic doubling schedule for one call.
// Its n-th NextBackOff equals Delay(p, n-1).
func newSchedule(p Policy) backoff.BackOff {
	return backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(p.BaseDelay),
		backoff.WithMaxInterval(p.MaxDelay),
		backoff.WithMultiplier(2),
		backoff.WithRandomizationFactor(0),
		backoff.WithMaxElapsedTime(0),
	)
}

// Delay returns the wait taken before retry number retries+1:
// min(BaseDelay * 2^retries, MaxDelay).
func Delay(p Policy, retries int) time.Duration {
	if p.BaseDelay <= 0 {
		p.BaseDelay = DefaultBaseDelay
	}
	if p.MaxDelay <= 0 {
		p.MaxDelay = DefaultMaxDelay
	}
	d := p.BaseDelay
	for i := 0; i < retries; i++ {
		if d > p.MaxDelay/2 {
			return p.MaxDelay
		}
		d *= 2
	}
	if d > p.MaxDelay {
		return p.MaxDelay
	}
	return d
}
