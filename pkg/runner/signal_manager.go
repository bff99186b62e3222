package runner

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// SignalManager ties a schedule's lifetime to OS signals.
// Its context is cancelled on SIGINT (Ctrl+C), SIGTERM or Stop.
type SignalManager struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// NewSignalManager creates a new manager and immediately starts listening for signals.
func NewSignalManager(parent context.Context) *SignalManager {
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	return &SignalManager{ctx: ctx, cancel: cancel}
}

// Context returns the signal context. Pass it to Runner.Start.
func (sm *SignalManager) Context() context.Context {
	return sm.ctx
}

// Stop stops listening and cancels the context.
func (sm *SignalManager) Stop() {
	sm.cancel()
}
