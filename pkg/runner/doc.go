/*
Package runner implements the periodic driver of the Arbor engine.

A Runner repeatedly ticks a root node against an actor on a fixed wall-clock
period. Every schedule is an owned resource: Start returns a Handle whose Stop
method cancels the schedule and waits for the in-flight tick to finish.

# Scheduling Model

  - One goroutine per schedule: ticks of the same tree never overlap.
  - Missed periods are dropped, there is no catch-up.
  - Each tick's failure (error or panic) is isolated. It is reported and the
    schedule continues.
  - An optional DistributedLocker guarantees a single driver per tree across
    processes.

# Usage

	r := runner.New(engine,
		runner.WithPeriod(500*time.Millisecond),
		runner.WithLogger(logger),
	)

	h, err := r.Start(ctx, root, actor)
	if err != nil {
		log.Fatal(err)
	}
	defer h.Stop()
*/
package runner
