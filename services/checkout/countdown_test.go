package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// armed returns a timer armed for the given minutes with its ticking
// goroutine stopped, so the test drives ticks deterministically.
func armed(minutes int, onExpire func()) *CountdownTimer {
	t := NewCountdownTimer()
	t.Start(minutes, onExpire)
	t.Stop()
	return t
}

func TestCountdown_ExpiresExactlyOnce(t *testing.T) {
	fired := 0
	timer := armed(1, func() { fired++ })

	for i := 0; i < 59; i++ {
		timer.tick()
	}
	assert.Equal(t, 0, fired)
	assert.False(t, timer.State().Expired)

	timer.tick() // tick 60: the 1 -> 0 transition
	assert.Equal(t, 1, fired)
	assert.True(t, timer.State().Expired)
	assert.Equal(t, 0, timer.State().RemainingSeconds)

	// Ticks past zero must not re-fire.
	for i := 0; i < 10; i++ {
		timer.tick()
	}
	assert.Equal(t, 1, fired)
}

func TestCountdown_ResetReArms(t *testing.T) {
	fired := 0
	timer := armed(1, func() { fired++ })

	for i := 0; i < 60; i++ {
		timer.tick()
	}
	assert.Equal(t, 1, fired)

	timer.Reset(1)
	timer.Stop()
	state := timer.State()
	assert.False(t, state.Expired)
	assert.Equal(t, 60, state.RemainingSeconds)

	for i := 0; i < 60; i++ {
		timer.tick()
	}
	assert.Equal(t, 2, fired, "a reset arming fires again")
}

func TestCountdown_Progress(t *testing.T) {
	timer := armed(2, nil)
	assert.InDelta(t, 1.0, timer.Progress(), 1e-9)

	for i := 0; i < 60; i++ {
		timer.tick()
	}
	assert.InDelta(t, 0.5, timer.Progress(), 1e-9)
}

func TestCountdown_ZeroStateBeforeStart(t *testing.T) {
	timer := NewCountdownTimer()
	state := timer.State()
	assert.Equal(t, 0, state.TotalSeconds)
	assert.False(t, state.Expired)
	assert.Equal(t, 0.0, timer.Progress())
	timer.Stop() // stopping an unstarted timer is harmless
}

func TestCountdown_NilCallback(t *testing.T) {
	timer := armed(1, nil)
	for i := 0; i < 61; i++ {
		timer.tick()
	}
	assert.True(t, timer.State().Expired)
}
