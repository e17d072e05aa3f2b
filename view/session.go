package view

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"letterboxd-recs/movie"
)

// Session owns the state of one visitor's view. State changes only through
// the transitions in state.go.
type Session struct {
	ID string

	mu       sync.Mutex
	state    State
	lastSeen time.Time
}

func NewSession(id string) *Session {
	return &Session{
		ID:       id,
		state:    State{Recommendations: []movie.Movie{}},
		lastSeen: time.Now(),
	}
}

// State returns a snapshot that is safe to keep after the session changes.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

func (s *Session) SetUsername(username string) {
	s.apply(func(st State) State { return st.WithUsername(username) })
}

// Submit fetches recommendations for username and records the outcome.
// Loading is cleared on every exit path. The returned error is for
// diagnostics only; the state carries FetchFailedMessage instead.
//
// Overlapping submissions are not guarded against: each one applies its own
// transitions as it settles.
func (s *Session) Submit(ctx context.Context, svc movie.Service, username string) error {
	s.apply(State.SubmitStarted)
	return s.fetch(ctx, svc, username)
}

// Dispatch is Submit in the background. Loading is recorded before Dispatch
// returns; done, if not nil, receives the outcome. A panicking service is
// recorded as a failed fetch.
func (s *Session) Dispatch(ctx context.Context, svc movie.Service, username string, done func(error)) {
	s.apply(State.SubmitStarted)
	go func() {
		var err error
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("recommendation service panicked: %v", r)
				s.fail(ctx, username, err)
			}
			if done != nil {
				done(err)
			}
		}()
		err = s.fetch(ctx, svc, username)
	}()
}

func (s *Session) fetch(ctx context.Context, svc movie.Service, username string) error {
	defer s.apply(State.SubmitSettled)

	movies, err := svc.Recommend(ctx, username)
	if err != nil {
		s.fail(ctx, username, err)
		return err
	}

	s.apply(func(st State) State { return st.SubmitSucceeded(movies) })
	return nil
}

func (s *Session) fail(ctx context.Context, username string, err error) {
	slog.ErrorContext(ctx, "Error fetching recommendations",
		"session", s.ID,
		"username", username,
		"error", err,
	)
	s.apply(State.SubmitFailed)
}

func (s *Session) apply(transition func(State) State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = transition(s.state)
	s.lastSeen = time.Now()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Loading {
		return 0
	}
	return now.Sub(s.lastSeen)
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}
