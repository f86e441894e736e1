package timer

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRestTimer_CountsDownAndStops(t *testing.T) {
	doneChan := make(chan struct{}, 1)
	restTimer := NewRestTimer(20*time.Millisecond, func() {
		doneChan <- struct{}{}
	})
	defer restTimer.Close()

	assert.False(t, restTimer.IsResting())
	assert.Equal(t, 0, restTimer.Remaining())

	restTimer.Start(3)
	assert.True(t, restTimer.IsResting())
	status := restTimer.Status()
	assert.Equal(t, 3, status.Total)
	assert.LessOrEqual(t, status.Remaining, 3)

	select {
	case <-doneChan:
	case <-time.After(2 * time.Second):
		t.Fatal("rest timer did not finish")
	}

	assert.False(t, restTimer.IsResting())
	assert.Equal(t, 0, restTimer.Remaining())
	assert.Equal(t, "0:00", restTimer.Status().Display)
}

func TestRestTimer_Skip(t *testing.T) {
	var doneCalls atomic.Int32
	restTimer := NewRestTimer(time.Hour, func() {
		doneCalls.Add(1)
	})

	restTimer.Start(90)
	assert.Equal(t, 90, restTimer.Remaining())
	assert.Equal(t, "1:30", restTimer.Status().Display)

	restTimer.Skip()
	assert.False(t, restTimer.IsResting())
	assert.Equal(t, 0, restTimer.Remaining())

	// repeated stops are fine
	restTimer.Skip()
	restTimer.Close()
	restTimer.Close()
	assert.Equal(t, int32(0), doneCalls.Load())
}

func TestRestTimer_RestartReplacesCountdown(t *testing.T) {
	restTimer := NewRestTimer(time.Hour, nil)
	defer restTimer.Close()

	restTimer.Start(60)
	restTimer.Start(120)
	assert.Equal(t, 120, restTimer.Remaining())
	assert.Equal(t, 120, restTimer.Status().Total)

	restTimer.Start(0)
	assert.False(t, restTimer.IsResting())
}

func TestRestTimer_SkipRacingTicks(t *testing.T) {
	var doneCalls atomic.Int32
	restTimer := NewRestTimer(time.Millisecond, func() {
		doneCalls.Add(1)
	})

	for i := 0; i < 50; i++ {
		restTimer.Start(1000)
		time.Sleep(100 * time.Microsecond)
		restTimer.Skip()
	}
	require.False(t, restTimer.IsResting())
	assert.Equal(t, int32(0), doneCalls.Load())
}

func TestRestTimer_StartAfterCloseIgnored(t *testing.T) {
	restTimer := NewRestTimer(time.Millisecond, nil)
	restTimer.Start(60)
	restTimer.Close()

	restTimer.Start(60)
	assert.False(t, restTimer.IsResting())
	assert.Equal(t, 0, restTimer.Remaining())
}

func TestRestTimer_ConcurrentStarts(t *testing.T) {
	restTimer := NewRestTimer(time.Hour, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(seconds int) {
			defer wg.Done()
			restTimer.Start(seconds)
		}(100 + i)
	}
	wg.Wait()
	assert.True(t, restTimer.IsResting())

	// all replaced countdowns were joined, Close leaves nothing behind for goleak
	restTimer.Close()
	assert.False(t, restTimer.IsResting())
}
