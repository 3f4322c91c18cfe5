package services

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testDebounce = 30 * time.Millisecond

func TestDebouncer_RunsOnlyTheLastAction(t *testing.T) {
	d := NewDebouncer(testDebounce)

	var (
		mu    sync.Mutex
		calls []int
	)
	for i := 1; i <= 5; i++ {
		d.Trigger(func() {
			mu.Lock()
			defer mu.Unlock()
			calls = append(calls, i)
		})
	}
	assert.True(t, d.Pending())

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(calls) == 1
	}, time.Second, 5*time.Millisecond)

	time.Sleep(3 * testDebounce)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{5}, calls)
	assert.False(t, d.Pending())
}

func TestDebouncer_FlushRunsSynchronously(t *testing.T) {
	d := NewDebouncer(time.Hour)
	ran := false

	d.Trigger(func() { ran = true })

	assert.True(t, d.Flush())
	assert.True(t, ran)
	assert.False(t, d.Pending())
	assert.False(t, d.Flush())
}

func TestDebouncer_CancelDropsAction(t *testing.T) {
	d := NewDebouncer(testDebounce)
	var runs atomic.Int32

	d.Trigger(func() { runs.Add(1) })

	assert.True(t, d.Cancel())
	assert.False(t, d.Cancel())
	time.Sleep(3 * testDebounce)
	assert.Zero(t, runs.Load())
}

func TestDebouncer_TriggerAfterFireSchedulesAgain(t *testing.T) {
	d := NewDebouncer(testDebounce)
	var runs atomic.Int32

	d.Trigger(func() { runs.Add(1) })
	assert.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)

	d.Trigger(func() { runs.Add(1) })
	assert.Eventually(t, func() bool { return runs.Load() == 2 }, time.Second, 5*time.Millisecond)
}
