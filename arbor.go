package arbor

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/internal/runtime"
	"github.com/aretw0/arbor/internal/validator"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/runner"
)

// Engine is the high-level entry point for the Arbor library.
// It wraps the internal tick engine and the periodic driver behind a simplified API.
type Engine struct {
	runtime    *runtime.Engine
	hooks      domain.LifecycleHooks
	logger     *slog.Logger
	runnerOpts []runner.Option
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
// Calling it more than once chains the hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = e.hooks.Merge(hooks)
	}
}

// WithLogger sets a custom structured logger for the engine and its schedules.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithRunnerOptions appends options applied to every schedule started by Run
// (reporters, error handlers, distributed locking).
func WithRunnerOptions(opts ...runner.Option) Option {
	return func(e *Engine) {
		e.runnerOpts = append(e.runnerOpts, opts...)
	}
}

// New initializes a new Arbor Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	// Ensure logger is initialized so components never log to a nil handler.
	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}

	eng.runtime = runtime.NewEngine(
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithLogger(eng.logger),
	)
	return eng
}

// Tick evaluates the tree rooted at node once against actor.
// The result is Skipped when the actor's current action is still in progress.
// Errors from leaf actions are returned unchanged.
func (e *Engine) Tick(ctx context.Context, node domain.Node, actor domain.Actor) (domain.Result, error) {
	return e.runtime.Tick(ctx, node, actor)
}

// Run ticks root against actor once per period until the returned handle is
// stopped or ctx is cancelled. A non-positive period means runner.DefaultPeriod.
// Trees failing Validate are rejected before the first tick.
func (e *Engine) Run(ctx context.Context, root domain.Node, actor domain.Actor, period time.Duration) (*runner.Handle, error) {
	if err := Validate(root); err != nil {
		return nil, err
	}
	opts := []runner.Option{
		runner.WithLogger(e.logger),
		runner.WithPeriod(period),
	}
	opts = append(opts, e.runnerOpts...)
	return runner.New(e, opts...).Start(ctx, root, actor)
}

// TickID returns the correlation ID of the tick running in ctx.
// Leaf actions can use it to tag their own logs.
func TickID(ctx context.Context) (string, bool) {
	return runtime.TickID(ctx)
}

// Validate reports structural problems in the tree rooted at root:
// nil nodes, cycles, and selectors with no children to dispatch to.
func Validate(root domain.Node) error {
	return validator.ValidateTree(root)
}
