package runner

import (
	"log/slog"
	"time"

	"github.com/aretw0/arbor/pkg/ports"
)

// DefaultPeriod is the tick period used when none is configured.
const DefaultPeriod = time.Second

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithPeriod sets the tick period. Non-positive values keep the default.
func WithPeriod(period time.Duration) Option {
	return func(r *Runner) {
		if period > 0 {
			r.period = period
		}
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithReporter registers a callback invoked after every scheduled tick.
// Calling it more than once registers several reporters.
func WithReporter(fn func(Report)) Option {
	return func(r *Runner) {
		if fn != nil {
			r.reporters = append(r.reporters, fn)
		}
	}
}

// WithErrorHandler registers a callback for failed ticks (errors and recovered panics).
func WithErrorHandler(fn func(error)) Option {
	return func(r *Runner) {
		r.onError = fn
	}
}

// WithLocker makes Start acquire a distributed lock on key before scheduling.
// The lock is released when the schedule ends. A zero ttl holds the lock until release;
// a positive ttl is renewed every ttl/3, and the schedule stops with ports.ErrLockLost
// if a renewal fails.
func WithLocker(locker ports.DistributedLocker, key string, ttl time.Duration) Option {
	return func(r *Runner) {
		r.locker = locker
		r.lockKey = key
		r.lockTTL = ttl
	}
}
