package observability

import (
	"context"
	"errors"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/runner"
	"github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes every metric name.
const Namespace = "arbor"

// Tick outcomes used as the "outcome" label.
const (
	OutcomeOK      = "ok"
	OutcomeSkipped = "skipped"
	OutcomeError   = "error"
)

// Metrics holds the Prometheus collectors of one engine.
type Metrics struct {
	nodeExecutions *prometheus.CounterVec
	nodeSkips      *prometheus.CounterVec
	nodeFailures   *prometheus.CounterVec
	nodeDuration   *prometheus.HistogramVec
	ticks          *prometheus.CounterVec
	tickDuration   prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		nodeExecutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "node_executions_total",
				Help:      "Total number of node executions",
			},
			[]string{"kind"},
		),
		nodeSkips: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "node_skipped_total",
				Help:      "Total number of node dispatches skipped by an in-progress action",
			},
			[]string{"kind"},
		),
		nodeFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "node_failures_total",
				Help:      "Total number of node executions that returned an error",
			},
			[]string{"kind"},
		),
		nodeDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "node_duration_seconds",
				Help:      "Duration of node executions, children included",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
			[]string{"kind"},
		),
		ticks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "scheduled_ticks_total",
				Help:      "Total number of scheduled ticks by outcome",
			},
			[]string{"outcome"},
		),
		tickDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "scheduled_tick_duration_seconds",
				Help:      "Duration of scheduled ticks",
				Buckets:   prometheus.DefBuckets,
			},
		),
	}

	var err error
	if m.nodeExecutions, err = register(reg, m.nodeExecutions); err != nil {
		return nil, err
	}
	if m.nodeSkips, err = register(reg, m.nodeSkips); err != nil {
		return nil, err
	}
	if m.nodeFailures, err = register(reg, m.nodeFailures); err != nil {
		return nil, err
	}
	if m.nodeDuration, err = register(reg, m.nodeDuration); err != nil {
		return nil, err
	}
	if m.ticks, err = register(reg, m.ticks); err != nil {
		return nil, err
	}
	if m.tickDuration, err = register(reg, m.tickDuration); err != nil {
		return nil, err
	}
	return m, nil
}

// register adds c to reg, reusing an identical collector registered earlier
// (e.g. by a previous engine on the default registry).
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}
	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		if existing, ok := already.ExistingCollector.(T); ok {
			return existing, nil
		}
	}
	return c, err
}

// Hooks returns lifecycle hooks recording node metrics.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnNodeEnter: func(_ context.Context, e *domain.NodeEvent) {
			m.nodeExecutions.WithLabelValues(e.NodeKind).Inc()
		},
		OnNodeLeave: func(_ context.Context, e *domain.NodeEvent) {
			m.nodeDuration.WithLabelValues(e.NodeKind).Observe(e.Duration.Seconds())
			if e.Err != nil {
				m.nodeFailures.WithLabelValues(e.NodeKind).Inc()
			}
		},
		OnNodeSkipped: func(_ context.Context, e *domain.NodeEvent) {
			m.nodeSkips.WithLabelValues(e.NodeKind).Inc()
		},
	}
}

// ObserveTick records a scheduled tick. Pass it to runner.WithReporter.
func (m *Metrics) ObserveTick(rep runner.Report) {
	outcome := OutcomeOK
	switch {
	case rep.Err != nil:
		outcome = OutcomeError
	case rep.Skipped:
		outcome = OutcomeSkipped
	}
	m.ticks.WithLabelValues(outcome).Inc()
	m.tickDuration.Observe(rep.Duration.Seconds())
}
