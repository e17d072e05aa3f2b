package view

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultSessionTTL = 24 * time.Hour
	sweepInterval     = time.Minute
)

// Store keeps one Session per visitor in memory.
type Store struct {
	ttl time.Duration
	now func() time.Time

	mu        sync.Mutex
	sessions  map[string]*Session
	lastSweep time.Time
}

// NewStore creates a store evicting sessions idle for longer than ttl.
// A non-positive ttl uses DefaultSessionTTL.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Store{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Get returns the session with the given id, or a new session with a fresh
// id when it is unknown or expired. The boolean reports whether a session
// was created.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := st.now()
	st.sweep(now)

	if s, ok := st.sessions[id]; ok && id != "" {
		s.touch(now)
		return s, false
	}

	s := NewSession(uuid.NewString())
	s.lastSeen = now
	st.sessions[s.ID] = s
	return s, true
}

// Len reports the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

func (st *Store) sweep(now time.Time) {
	if now.Sub(st.lastSweep) < sweepInterval {
		return
	}
	st.lastSweep = now
	for id, s := range st.sessions {
		if s.idleSince(now) > st.ttl {
			delete(st.sessions, id)
		}
	}
}
