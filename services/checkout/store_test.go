package checkout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayhub/models"
)

func storedSession(store *SessionStore, id string) *session {
	s := newSession(id, models.DemoDraft())
	store.put(s)
	return s
}

func TestSessionStore_PutGetRemove(t *testing.T) {
	store := NewSessionStore(time.Hour)
	storedSession(store, "a")

	got, ok := store.get("a")
	require.True(t, ok)
	assert.Equal(t, "a", got.id)
	assert.Equal(t, 1, store.Len())

	assert.True(t, store.remove("a"))
	assert.False(t, store.remove("a"))
	assert.Equal(t, 0, store.Len())

	_, ok = store.get("a")
	assert.False(t, ok)
}

func TestSessionStore_RemoveTearsDown(t *testing.T) {
	store := NewSessionStore(time.Hour)
	s := storedSession(store, "a")
	s.hold.Start(20, nil)

	require.True(t, store.remove("a"))

	select {
	case <-s.ctx.Done():
	default:
		t.Fatal("session context must be cancelled on removal")
	}
	s.hold.mu.Lock()
	assert.False(t, s.hold.running)
	s.hold.mu.Unlock()
}

func TestSessionStore_SweepIdle(t *testing.T) {
	store := NewSessionStore(30 * time.Minute)
	stale := storedSession(store, "stale")
	storedSession(store, "fresh")

	stale.mu.Lock()
	stale.touchedAt = time.Now().Add(-time.Hour)
	stale.mu.Unlock()

	swept := store.SweepIdle(time.Now())
	assert.Equal(t, 1, swept)
	assert.Equal(t, 1, store.Len())

	_, ok := store.get("stale")
	assert.False(t, ok)
	_, ok = store.get("fresh")
	assert.True(t, ok)

	select {
	case <-stale.ctx.Done():
	default:
		t.Fatal("swept session context must be cancelled")
	}
}
