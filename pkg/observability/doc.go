/*
Package observability provides tools for monitoring the Arbor engine.

Metrics exposes Prometheus collectors fed by the engine's lifecycle hooks and
by the periodic driver's tick reports:

	metrics, err := observability.NewMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}
	engine := arbor.New(arbor.WithLifecycleHooks(metrics.Hooks()))
	r := runner.New(engine, runner.WithReporter(metrics.ObserveTick))
*/
package observability
