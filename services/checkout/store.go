package checkout

import (
	"sync"
	"time"
)

// SessionStore keeps live checkout sessions in process memory, keyed by
// session ID. A session removed from the store is always torn down first so
// its timers stop and any pending settlement is cancelled.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*session
	ttl      time.Duration
}

// NewSessionStore returns a store that considers sessions idle after ttl.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*session),
		ttl:      ttl,
	}
}

func (st *SessionStore) put(s *session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.id] = s
}

func (st *SessionStore) get(id string) (*session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

// remove deletes and tears down the session if present.
func (st *SessionStore) remove(id string) bool {
	st.mu.Lock()
	s, ok := st.sessions[id]
	if ok {
		delete(st.sessions, id)
	}
	st.mu.Unlock()
	if ok {
		s.teardown()
	}
	return ok
}

// Len returns the number of live sessions.
func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// SweepIdle tears down sessions whose last activity is older than the TTL
// and returns how many were removed. Confirmed sessions are swept like any
// other; the confirmation outputs have already been handed over.
func (st *SessionStore) SweepIdle(now time.Time) int {
	st.mu.Lock()
	var stale []*session
	for id, s := range st.sessions {
		s.mu.Lock()
		idle := now.Sub(s.touchedAt) > st.ttl
		s.mu.Unlock()
		if idle {
			delete(st.sessions, id)
			stale = append(stale, s)
		}
	}
	st.mu.Unlock()

	for _, s := range stale {
		s.teardown()
	}
	return len(stale)
}
