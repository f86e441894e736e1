package timer

import (
	"sync"
	"time"
)

// WorkoutTimer reports the elapsed time of the active workout once per interval.
// Once closed, Start does nothing.
type WorkoutTimer struct {
	interval time.Duration
	onTick   func(elapsed time.Duration)

	mutex     sync.Mutex
	startTime time.Time
	running   bool
	stop      chan struct{}
	done      chan struct{}
	closed    bool

	// ability to inject clock (for unit testing)
	NowFunc func() time.Time
}

func NewWorkoutTimer(interval time.Duration, onTick func(elapsed time.Duration)) *WorkoutTimer {
	if interval <= 0 {
		interval = time.Second
	}
	return &WorkoutTimer{
		interval: interval,
		onTick:   onTick,
		NowFunc:  time.Now,
	}
}

// Start ticks from startTime on. A running timer is stopped first.
func (t *WorkoutTimer) Start(startTime time.Time) {
	stop := make(chan struct{})
	done := make(chan struct{})

	t.mutex.Lock()
	if t.closed {
		t.mutex.Unlock()
		return
	}
	prevStop, prevDone := t.stop, t.done
	t.startTime = startTime
	t.running = true
	t.stop = stop
	t.done = done
	go t.run(stop, done)
	t.mutex.Unlock()

	stopAndWait(prevStop, prevDone)
}

func (t *WorkoutTimer) run(stop, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if t.onTick != nil {
				t.onTick(t.Elapsed())
			}
		}
	}
}

// Stop halts the ticker and waits for its goroutine. Safe to call repeatedly.
func (t *WorkoutTimer) Stop() {
	t.mutex.Lock()
	stop, done := t.stop, t.done
	t.stop, t.done = nil, nil
	t.running = false
	t.mutex.Unlock()

	stopAndWait(stop, done)
}

// Close stops the timer for good.
func (t *WorkoutTimer) Close() {
	t.mutex.Lock()
	t.closed = true
	t.mutex.Unlock()
	t.Stop()
}

// Elapsed is the time since start, truncated to whole seconds; 0 when stopped.
func (t *WorkoutTimer) Elapsed() time.Duration {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if !t.running {
		return 0
	}
	elapsed := t.NowFunc().Sub(t.startTime).Truncate(time.Second)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

func (t *WorkoutTimer) IsRunning() bool {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.running
}
