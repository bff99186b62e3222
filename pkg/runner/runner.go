package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/ports"
)

// unlockTimeout bounds the release of the distributed lock after Stop.
const unlockTimeout = 5 * time.Second

// Runner schedules ticks of a tree on a fixed period.
type Runner struct {
	ticker    domain.Ticker
	period    time.Duration
	logger    *slog.Logger
	reporters []func(Report)
	onError   func(error)

	locker  ports.DistributedLocker
	lockKey string
	lockTTL time.Duration
}

// Report describes one scheduled tick.
type Report struct {
	Seq      uint64
	Started  time.Time
	Duration time.Duration
	Skipped  bool
	Err      error
}

// PanicError wraps a panic recovered from a scheduled tick.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("tick panicked: %v", e.Value)
}

// New creates a Runner dispatching through ticker.
func New(ticker domain.Ticker, opts ...Option) *Runner {
	r := &Runner{
		ticker: ticker,
		period: DefaultPeriod,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Period returns the configured tick period.
func (r *Runner) Period() time.Duration {
	return r.period
}

// Start schedules root to be ticked against actor once per period until the
// returned Handle is stopped or ctx is cancelled. The first tick fires one
// period after Start.
func (r *Runner) Start(ctx context.Context, root domain.Node, actor domain.Actor) (*Handle, error) {
	if domain.IsNil(root) {
		return nil, domain.ErrNilNode
	}
	if actor == nil {
		return nil, domain.ErrNilActor
	}

	var lease ports.Lease
	if r.locker != nil {
		l, err := r.locker.Lock(ctx, r.lockKey, r.lockTTL)
		if err != nil {
			return nil, fmt.Errorf("failed to acquire driver lock %q: %w", r.lockKey, err)
		}
		lease = l
		r.logger.Debug("driver lock acquired", "key", r.lockKey, "ttl", r.lockTTL)
	}

	runCtx, cancel := context.WithCancel(ctx)
	h := &Handle{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go r.loop(runCtx, h, root, actor, lease)
	r.logger.Info("schedule started", "period", r.period)
	return h, nil
}

func (r *Runner) loop(ctx context.Context, h *Handle, root domain.Node, actor domain.Actor, lease ports.Lease) {
	defer close(h.done)
	defer r.release(ctx, h, lease)

	t := time.NewTicker(r.period)
	defer t.Stop()

	// A lease with a ttl expires unless renewed well before it runs out.
	var renew <-chan time.Time
	if lease != nil && r.lockTTL > 0 {
		rt := time.NewTicker(max(r.lockTTL/3, time.Millisecond))
		defer rt.Stop()
		renew = rt.C
	}

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("schedule stopped", "ticks", h.Ticks())
			return
		case <-renew:
			if err := lease.Renew(ctx, r.lockTTL); err != nil {
				if ctx.Err() != nil {
					continue
				}
				// Another driver may own the tree now; ticking on would break exclusivity.
				err = fmt.Errorf("failed to renew driver lock %q: %w", r.lockKey, err)
				r.logger.Error("schedule stopped: driver lock lost", "key", r.lockKey, "err", err)
				if r.onError != nil {
					r.onError(err)
				}
				h.err = err
				return
			}
		case <-t.C:
			if ctx.Err() != nil {
				continue
			}
			r.tickOnce(ctx, h, root, actor)
		}
	}
}

func (r *Runner) tickOnce(ctx context.Context, h *Handle, root domain.Node, actor domain.Actor) {
	started := time.Now()
	res, err := r.safeTick(ctx, root, actor)
	report := Report{
		Seq:      h.ticks.Add(1),
		Started:  started,
		Duration: time.Since(started),
		Skipped:  res.Skipped,
		Err:      err,
	}

	// A tick interrupted by Stop is not a failure.
	if err != nil && ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		report.Err = nil
		err = nil
	}

	if err != nil {
		r.logger.Error("tick failed", "seq", report.Seq, "err", err)
		if r.onError != nil {
			r.onError(err)
		}
	} else if report.Skipped {
		r.logger.Debug("tick held by in-progress action", "seq", report.Seq)
	}

	for _, fn := range r.reporters {
		fn(report)
	}
}

func (r *Runner) safeTick(ctx context.Context, root domain.Node, actor domain.Actor) (res domain.Result, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = &PanicError{Value: v, Stack: debug.Stack()}
		}
	}()
	return r.ticker.Tick(ctx, root, actor)
}

func (r *Runner) release(ctx context.Context, h *Handle, lease ports.Lease) {
	if lease == nil {
		return
	}
	releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), unlockTimeout)
	defer cancel()
	if err := lease.Unlock(releaseCtx); err != nil {
		h.err = errors.Join(h.err, fmt.Errorf("failed to release driver lock %q: %w", r.lockKey, err))
		r.logger.Warn("driver lock release failed", "key", r.lockKey, "err", err)
	}
}

// Handle is the cancellation token of a running schedule.
type Handle struct {
	cancel context.CancelFunc
	done   chan struct{}
	ticks  atomic.Uint64
	err    error
}

// Stop cancels the schedule, waits for it to end and returns any error that
// ended it early (a lost driver lock) or was raised while releasing its
// resources. Safe to call more than once.
func (h *Handle) Stop() error {
	h.cancel()
	<-h.done
	return h.err
}

// Done is closed once the schedule has ended.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Ticks returns the number of scheduled ticks run so far.
func (h *Handle) Ticks() uint64 {
	return h.ticks.Load()
}
