package ports

import (
	"context"
	"errors"
	"time"
)

// ErrLockLost is returned by Lease.Renew when the lock expired or was taken by another holder.
var ErrLockLost = errors.New("distributed lock lost")

// Lease is a held distributed lock.
type Lease interface {
	// Renew extends the lock by ttl from now. It fails with ErrLockLost when
	// this holder no longer owns the key.
	Renew(ctx context.Context, ttl time.Duration) error
	// Unlock releases the lock. Releasing a lock already lost is not an error.
	Unlock(ctx context.Context) error
}

// DistributedLocker defines the interface for distributed concurrency control.
// The periodic driver uses it to coordinate schedules across multiple instances (replicas).
type DistributedLocker interface {
	// Lock attempts to acquire a distributed lock for the given key (e.g., a tree name).
	// It blocks until the lock is acquired or the context is canceled.
	// A zero ttl means the lock never expires on its own; otherwise the holder
	// must Renew the lease before ttl elapses.
	// The returned Lease MUST be unlocked to release the lock.
	Lock(ctx context.Context, key string, ttl time.Duration) (Lease, error)
}
