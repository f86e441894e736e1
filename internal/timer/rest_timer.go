package timer

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// RestTimer counts down a rest period between sets, one step per interval.
// It owns at most one goroutine, which is always joined by Skip/Start/Close.
// Once closed, Start does nothing.
type RestTimer struct {
	interval time.Duration
	onDone   func()

	mutex     sync.Mutex
	remaining int
	total     int
	stop      chan struct{}
	done      chan struct{}
	closed    bool
}

// NewRestTimer creates a stopped timer. onDone (may be nil) runs on the timer
// goroutine when a countdown reaches zero; it must not call back into the timer.
func NewRestTimer(interval time.Duration, onDone func()) *RestTimer {
	if interval <= 0 {
		interval = time.Second
	}
	return &RestTimer{
		interval: interval,
		onDone:   onDone,
	}
}

// Start begins a countdown of seconds, replacing any running one.
func (t *RestTimer) Start(seconds int) {
	if seconds <= 0 {
		t.Skip()
		return
	}

	stop := make(chan struct{})
	done := make(chan struct{})

	t.mutex.Lock()
	if t.closed {
		t.mutex.Unlock()
		log.Debugln("rest timer closed, not starting")
		return
	}
	prevStop, prevDone := t.stop, t.done
	t.remaining = seconds
	t.total = seconds
	t.stop = stop
	t.done = done
	// started under the lock, so a concurrent Skip/Close always sees done
	go t.run(stop, done)
	t.mutex.Unlock()

	stopAndWait(prevStop, prevDone)
	log.Debugf("rest timer started: %ds", seconds)
}

func (t *RestTimer) run(stop, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			t.mutex.Lock()
			if t.stop != stop {
				// skipped in between
				t.mutex.Unlock()
				return
			}
			t.remaining--
			finished := t.remaining <= 0
			if finished {
				t.remaining = 0
				t.stop = nil
			}
			t.mutex.Unlock()

			if finished {
				log.Debugln("rest timer done")
				if t.onDone != nil {
					t.onDone()
				}
				return
			}
		}
	}
}

// Skip stops the countdown, if any, and waits for its goroutine to exit.
func (t *RestTimer) Skip() {
	t.mutex.Lock()
	stop, done := t.stop, t.done
	t.stop, t.done = nil, nil
	t.remaining = 0
	t.mutex.Unlock()

	stopAndWait(stop, done)
}

// Close stops the countdown for good. Safe to call any number of times.
func (t *RestTimer) Close() {
	t.mutex.Lock()
	t.closed = true
	t.mutex.Unlock()
	t.Skip()
}

func stopAndWait(stop, done chan struct{}) {
	if stop != nil {
		close(stop)
	}
	if done != nil {
		<-done
	}
}

func (t *RestTimer) Remaining() int {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.remaining
}

func (t *RestTimer) IsResting() bool {
	return t.Remaining() > 0
}

// Status is a point-in-time view of the rest timer.
type Status struct {
	Resting   bool   `json:"resting"`
	Remaining int    `json:"remaining"`
	Total     int    `json:"total"`
	Display   string `json:"display"`
}

func (t *RestTimer) Status() Status {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return Status{
		Resting:   t.remaining > 0,
		Remaining: t.remaining,
		Total:     t.total,
		Display:   FormatClock(t.remaining),
	}
}
