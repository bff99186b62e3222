package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/arbor/pkg/adapters/memory"
	"github.com/aretw0/arbor/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocker_LockUnlock(t *testing.T) {
	l := memory.NewLocker()
	ctx := context.Background()

	lease, err := l.Lock(ctx, "tree", 0)
	require.NoError(t, err)
	assert.True(t, l.Held("tree"))
	assert.False(t, l.Held("other"))

	require.NoError(t, lease.Unlock(ctx))
	assert.False(t, l.Held("tree"))

	// Releasing twice is harmless.
	require.NoError(t, lease.Unlock(ctx))
}

func TestLocker_Contention(t *testing.T) {
	l := memory.NewLocker()
	ctx := context.Background()

	lease1, err := l.Lock(ctx, "tree", 0)
	require.NoError(t, err)

	timeoutCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	_, err = l.Lock(timeoutCtx, "tree", 0)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	acquired := make(chan struct{})
	go func() {
		defer close(acquired)
		lease2, err := l.Lock(ctx, "tree", 0)
		if assert.NoError(t, err) {
			_ = lease2.Unlock(ctx)
		}
	}()

	require.NoError(t, lease1.Unlock(ctx))
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("waiter was not woken on release")
	}
}

func TestLocker_Renew(t *testing.T) {
	l := memory.NewLocker()
	ctx := context.Background()

	lease, err := l.Lock(ctx, "tree", time.Second)
	require.NoError(t, err)
	require.NoError(t, lease.Renew(ctx, time.Second))

	require.NoError(t, lease.Unlock(ctx))
	assert.ErrorIs(t, lease.Renew(ctx, time.Second), ports.ErrLockLost)
}
