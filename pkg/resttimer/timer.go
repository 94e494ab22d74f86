// Package resttimer implements the rest interval countdown shown between sets.
// It is meant for client applications, the service itself never runs one.
// It is purely advisory and never touches stored sessions.
package resttimer

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

const DefaultInterval = time.Second

// Timer runs at most one countdown at a time.
type Timer struct {
	interval time.Duration

	mu        sync.Mutex
	gen       uint64
	cancel    context.CancelFunc
	remaining time.Duration
	done      chan struct{}
}

func New() *Timer {
	return NewWithInterval(DefaultInterval)
}

// NewWithInterval creates a timer ticking every interval instead of every second.
func NewWithInterval(interval time.Duration) *Timer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Timer{
		interval: interval,
	}
}

// Start begins a countdown of d, cancelling the running one. The returned
// channel receives the remaining time on every tick, 0 last, and is closed
// when the countdown ends, is cancelled or ctx is done. A reader that falls
// behind only sees the latest value.
func (t *Timer) Start(ctx context.Context, d time.Duration) <-chan time.Duration {
	ticks := make(chan time.Duration, 1)

	t.mu.Lock()
	if t.cancel != nil {
		t.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	t.gen++
	gen := t.gen
	done := make(chan struct{})
	t.cancel = cancel
	t.remaining = d
	t.done = done
	t.mu.Unlock()

	log.Tracef("rest timer #%d started: %s", gen, d)
	go t.run(runCtx, gen, d, ticks, done)
	return ticks
}

func (t *Timer) run(ctx context.Context, gen uint64, d time.Duration, ticks chan time.Duration, done chan struct{}) {
	defer close(done)
	defer close(ticks)
	defer t.finish(gen)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	remaining := d
	for remaining > 0 {
		select {
		case <-ctx.Done():
			log.Tracef("rest timer #%d cancelled with %s left", gen, remaining)
			return
		case <-ticker.C:
		}

		remaining -= t.interval
		if remaining < 0 {
			remaining = 0
		}
		if !t.update(gen, remaining) {
			return
		}
		publishLatest(ticks, remaining)
	}
}

func publishLatest(ticks chan time.Duration, v time.Duration) {
	select {
	case ticks <- v:
		return
	default:
	}
	// drop the stale value, this goroutine is the only sender
	select {
	case <-ticks:
	default:
	}
	ticks <- v
}

func (t *Timer) update(gen uint64, remaining time.Duration) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.gen != gen {
		return false
	}
	t.remaining = remaining
	return true
}

func (t *Timer) finish(gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.gen != gen {
		return
	}
	t.cancel()
	t.cancel = nil
	t.remaining = 0
}

// Cancel stops the running countdown, if any, and waits for it to wind down.
func (t *Timer) Cancel() {
	t.mu.Lock()
	cancel, done := t.cancel, t.done
	t.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Remaining reports the time left and whether a countdown is running.
func (t *Timer) Remaining() (time.Duration, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining, t.cancel != nil
}
