package view

import (
	"context"
	"testing"
	"time"

	"letterboxd-recs/movie"

	"github.com/stretchr/testify/assert"
)

func TestStore_Get(t *testing.T) {
	t.Run("creates a session for an unknown id", func(t *testing.T) {
		st := NewStore(time.Hour)

		s, created := st.Get("missing")

		assert.True(t, created)
		assert.NotEqual(t, "missing", s.ID)
		assert.NotEmpty(t, s.ID)
		assert.Equal(t, 1, st.Len())
	})

	t.Run("returns the same session for a known id", func(t *testing.T) {
		st := NewStore(time.Hour)
		first, _ := st.Get("")
		first.SetUsername("dave")

		again, created := st.Get(first.ID)

		assert.False(t, created)
		assert.Same(t, first, again)
		assert.Equal(t, "dave", again.State().Username)
	})

	t.Run("sessions are isolated", func(t *testing.T) {
		st := NewStore(time.Hour)
		a, _ := st.Get("")
		b, _ := st.Get("")

		a.SetUsername("dave")

		assert.NotEqual(t, a.ID, b.ID)
		assert.Empty(t, b.State().Username)
	})
}

func TestStore_EvictsIdleSessions(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	st := NewStore(time.Hour)
	st.now = func() time.Time { return now }

	idle, _ := st.Get("")
	busy, _ := st.Get("")
	busy.apply(State.SubmitStarted)
	busy.lastSeen = now

	now = now.Add(2 * time.Hour)
	_, _ = st.Get("")

	_, idleCreated := st.Get(idle.ID)
	assert.True(t, idleCreated, "idle session should have been evicted")
	_, busyCreated := st.Get(busy.ID)
	assert.False(t, busyCreated, "a session with a request in flight is kept")
}

func TestNewStore_DefaultTTL(t *testing.T) {
	st := NewStore(0)

	assert.Equal(t, DefaultSessionTTL, st.ttl)
}

func TestSession_SubmitTouchesSession(t *testing.T) {
	s := NewSession("id")
	s.lastSeen = time.Time{}

	_ = s.Submit(context.Background(), noMovies{}, "dave")

	assert.False(t, s.lastSeen.IsZero())
}

type noMovies struct{}

func (noMovies) Recommend(context.Context, string) ([]movie.Movie, error) {
	return []movie.Movie{}, nil
}
