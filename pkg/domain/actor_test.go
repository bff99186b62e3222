package domain_test

import (
	"sync"
	"testing"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestCompletion_AllowsTick(t *testing.T) {
	assert.True(t, domain.Unset.AllowsTick())
	assert.True(t, domain.Completed.AllowsTick())
	assert.False(t, domain.InProgress.AllowsTick())
}

func TestActionState_Transitions(t *testing.T) {
	var s domain.ActionState
	assert.Equal(t, domain.Unset, s.CompletedCurrentAction(), "zero value must be unset")

	s.Hold()
	assert.Equal(t, domain.InProgress, s.CompletedCurrentAction())

	s.Complete()
	assert.Equal(t, domain.Completed, s.CompletedCurrentAction())

	s.Reset()
	assert.Equal(t, domain.Unset, s.CompletedCurrentAction())

	// ActionState satisfies ActionTracker when embedded by pointer receiver.
	var _ domain.ActionTracker = &s
}

func TestActionState_ConcurrentAccess(t *testing.T) {
	var s domain.ActionState
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Hold()
			s.Complete()
		}()
		go func() {
			defer wg.Done()
			_ = s.CompletedCurrentAction().AllowsTick()
		}()
	}
	wg.Wait()
	assert.Equal(t, domain.Completed, s.CompletedCurrentAction())
}
