package runtime

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/pkg/domain"
)

// Engine is the tick engine: the only place where the gating signal is read.
// It implements domain.Ticker and is passed down to every composite, so the
// gate is checked again before each child is dispatched.
type Engine struct {
	hooks  domain.LifecycleHooks
	logger *slog.Logger
	now    func() time.Time
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLifecycleHooks registers observability hooks.
// Calling it more than once chains the hooks in registration order.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = e.hooks.Merge(hooks)
	}
}

// WithLogger sets the structured logger. A nil logger keeps the no-op default.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithClock overrides the time source used for event timestamps and durations.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// NewEngine creates a new tick engine.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		logger: logging.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Tick evaluates node once against actor.
//
// If the actor's signal is InProgress nothing runs and the result is Skipped.
// Otherwise the node's Execute is called with the engine itself as Ticker, and
// its value and error are returned unchanged.
func (e *Engine) Tick(ctx context.Context, node domain.Node, actor domain.Actor) (domain.Result, error) {
	if err := ctx.Err(); err != nil {
		return domain.Result{}, err
	}
	if domain.IsNil(node) {
		return domain.Result{}, domain.ErrNilNode
	}
	if actor == nil {
		return domain.Result{}, domain.ErrNilActor
	}

	ctx, p := enterPass(ctx)
	kind, label := domain.KindOf(node), domain.LabelOf(node)

	if signal := actor.CompletedCurrentAction(); !signal.AllowsTick() {
		e.logger.Debug("tick skipped", "tick_id", p.id, "node", label, "depth", p.depth, "signal", signal)
		if e.hooks.OnNodeSkipped != nil {
			e.hooks.OnNodeSkipped(ctx, e.event(domain.EventNodeSkipped, p, kind, label))
		}
		return domain.Result{Skipped: true}, nil
	}

	if e.hooks.OnNodeEnter != nil {
		e.hooks.OnNodeEnter(ctx, e.event(domain.EventNodeEnter, p, kind, label))
	}

	start := e.now()
	value, err := node.Execute(ctx, e, actor)
	elapsed := e.now().Sub(start)

	if err != nil {
		e.logger.Debug("node failed", "tick_id", p.id, "node", label, "depth", p.depth, "err", err)
	}
	if e.hooks.OnNodeLeave != nil {
		ev := e.event(domain.EventNodeLeave, p, kind, label)
		ev.Duration = elapsed
		ev.Err = err
		e.hooks.OnNodeLeave(ctx, ev)
	}

	return domain.Result{Value: value}, err
}

func (e *Engine) event(typ domain.EventType, p pass, kind, label string) *domain.NodeEvent {
	return &domain.NodeEvent{
		EventBase: domain.EventBase{
			Timestamp: e.now(),
			Type:      typ,
			TickID:    p.id,
		},
		NodeKind:  kind,
		NodeLabel: label,
		Depth:     p.depth,
	}
}
