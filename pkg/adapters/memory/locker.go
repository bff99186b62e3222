package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/aretw0/arbor/pkg/ports"
)

// Locker implements ports.DistributedLocker inside a single process.
// Useful for tests and for embedding several drivers in one binary.
// Safe for concurrent use. The ttl argument is ignored.
type Locker struct {
	mu   sync.Mutex
	held map[string]chan struct{}
}

var _ ports.DistributedLocker = (*Locker)(nil)

// NewLocker creates a new in-memory locker.
func NewLocker() *Locker {
	return &Locker{
		held: make(map[string]chan struct{}),
	}
}

// Lock blocks until key is free or ctx is cancelled.
func (l *Locker) Lock(ctx context.Context, key string, _ time.Duration) (ports.Lease, error) {
	for {
		l.mu.Lock()
		released, busy := l.held[key]
		if !busy {
			mine := make(chan struct{})
			l.held[key] = mine
			l.mu.Unlock()
			return &lease{locker: l, key: key, mine: mine}, nil
		}
		l.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-released:
		}
	}
}

// Held reports whether key is currently locked.
func (l *Locker) Held(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.held[key]
	return ok
}

// lease owns key while the map still points at mine.
type lease struct {
	locker *Locker
	key    string
	mine   chan struct{}
	once   sync.Once
}

// Renew only checks ownership: in-process locks never expire.
func (l *lease) Renew(context.Context, time.Duration) error {
	l.locker.mu.Lock()
	defer l.locker.mu.Unlock()
	if l.locker.held[l.key] != l.mine {
		return fmt.Errorf("%w: %s", ports.ErrLockLost, l.key)
	}
	return nil
}

func (l *lease) Unlock(context.Context) error {
	l.once.Do(func() {
		l.locker.mu.Lock()
		if l.locker.held[l.key] == l.mine {
			delete(l.locker.held, l.key)
		}
		l.locker.mu.Unlock()
		close(l.mine)
	})
	return nil
}
