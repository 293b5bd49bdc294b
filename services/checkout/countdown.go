package checkout

import (
	"sync"
	"time"

	"stayhub/models"
)

// CountdownTimer is an owned ticking resource: it decrements once per second
// while running and fires its expiry callback exactly once per arming, when
// the remaining seconds transition from 1 to 0. The owning session must stop
// it on teardown.
type CountdownTimer struct {
	mu        sync.Mutex
	remaining int
	total     int
	expired   bool
	running   bool
	onExpire  func()
	stop      chan struct{}
	interval  time.Duration
}

// NewCountdownTimer returns a timer ticking at one-second resolution.
func NewCountdownTimer() *CountdownTimer {
	return &CountdownTimer{interval: time.Second}
}

// Start arms the timer for the given duration and begins ticking. Starting
// an already running timer re-arms it, clearing the expired flag.
func (t *CountdownTimer) Start(minutes int, onExpire func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.arm(minutes, onExpire)
	if !t.running {
		t.running = true
		t.stop = make(chan struct{})
		go t.loop(t.stop)
	}
}

// Reset re-arms the timer to a new duration and clears the expired flag,
// keeping the current expiry callback. Used both to extend a price hold and
// to restart a QR refresh window.
func (t *CountdownTimer) Reset(minutes int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.arm(minutes, t.onExpire)
	if !t.running {
		t.running = true
		t.stop = make(chan struct{})
		go t.loop(t.stop)
	}
}

// arm must be called with the mutex held.
func (t *CountdownTimer) arm(minutes int, onExpire func()) {
	t.remaining = minutes * 60
	t.total = minutes * 60
	t.expired = false
	t.onExpire = onExpire
}

// Stop halts ticking. The timer keeps its last state and may be restarted.
func (t *CountdownTimer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		close(t.stop)
		t.running = false
	}
}

// State returns a read-only snapshot for progress meters.
func (t *CountdownTimer) State() models.CountdownState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return models.CountdownState{
		RemainingSeconds: t.remaining,
		TotalSeconds:     t.total,
		Expired:          t.expired,
	}
}

// Progress returns the remaining/total ratio in [0,1].
func (t *CountdownTimer) Progress() float64 {
	return t.State().Progress()
}

func (t *CountdownTimer) loop(stop chan struct{}) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			t.tick()
		}
	}
}

// tick decrements once and fires the expiry callback on the 1 to 0
// transition. Ticks after expiry are no-ops until the timer is re-armed.
func (t *CountdownTimer) tick() {
	t.mu.Lock()
	if t.expired || t.remaining <= 0 {
		t.mu.Unlock()
		return
	}
	t.remaining--
	fire := false
	if t.remaining == 0 {
		t.expired = true
		fire = true
	}
	cb := t.onExpire
	t.mu.Unlock()

	if fire && cb != nil {
		cb()
	}
}
