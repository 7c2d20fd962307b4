package handler

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/multierr"
)

// ErrRetriesExhausted is wrapped by the error returned once every attempt
// of a RetryPolicy has failed.
var ErrRetriesExhausted = errors.New("retries exhausted")

// RetryPolicy bounds how often a failed write is attempted
type RetryPolicy struct {
	// MaxAttempts is the total number of attempts including the first (default: 3)
	MaxAttempts int
	// Delay is the wait before the second attempt (default: 50ms, negative: none)
	Delay time.Duration
	// Multiplier grows the delay between later attempts (default: 2)
	Multiplier float64
	// MaxDelay caps the delay between attempts (default: 1s)
	MaxDelay time.Duration
}

// DefaultRetryPolicy returns the policy used when none is configured
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		Delay:       50 * time.Millisecond,
		Multiplier:  2,
		MaxDelay:    time.Second,
	}
}

// WithDefaults fills in zero-value fields with defaults.
func (p RetryPolicy) WithDefaults() RetryPolicy {
	d := DefaultRetryPolicy()
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = d.MaxAttempts
	}
	if p.Delay == 0 {
		p.Delay = d.Delay
	}
	if p.Multiplier < 1 {
		p.Multiplier = d.Multiplier
	}
	if p.MaxDelay <= 0 {
		p.MaxDelay = d.MaxDelay
	}
	return p
}

// Do calls fn until it succeeds or the attempts run out, sleeping between
// attempts. A nil sleep uses time.Sleep. It returns the number of attempts
// made; on exhaustion the error wraps ErrRetriesExhausted and every
// attempt's error.
func (p RetryPolicy) Do(fn func() error, sleep func(time.Duration)) (int, error) {
	p = p.WithDefaults()
	if sleep == nil {
		sleep = time.Sleep
	}

	var errs error
	delay := p.Delay
	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil {
			return attempt, nil
		}
		errs = multierr.Append(errs, err)
		if attempt >= p.MaxAttempts {
			return attempt, fmt.Errorf("%w after %d attempts: %w", ErrRetriesExhausted, attempt, errs)
		}

		if delay > 0 {
			sleep(delay)
		}
		delay = time.Duration(float64(delay) * p.Multiplier)
		if delay > p.MaxDelay {
			delay = p.MaxDelay
		}
	}
}
