// Package view holds the state of the recommendation page for one visitor
// and the transitions a submission goes through.
package view

import (
	"slices"

	"letterboxd-recs/movie"
)

// FetchFailedMessage is the only error a visitor ever sees.
const FetchFailedMessage = "Could not fetch recommendations. Please check the username."

// State is an immutable snapshot of the view. Transitions return a new
// State and never share the recommendations slice with the caller.
type State struct {
	Username        string        `json:"username"`
	Recommendations []movie.Movie `json:"recommendations"`
	Loading         bool          `json:"loading"`
	Error           string        `json:"error"`
}

func (s State) WithUsername(username string) State {
	s = s.clone()
	s.Username = username
	return s
}

func (s State) SubmitStarted() State {
	s = s.clone()
	s.Loading = true
	s.Error = ""
	return s
}

// SubmitSucceeded replaces the recommendations wholesale.
func (s State) SubmitSucceeded(movies []movie.Movie) State {
	s.Recommendations = slices.Clone(movies)
	if s.Recommendations == nil {
		s.Recommendations = []movie.Movie{}
	}
	return s
}

// SubmitFailed keeps whatever recommendations were shown before.
func (s State) SubmitFailed() State {
	s = s.clone()
	s.Error = FetchFailedMessage
	return s
}

func (s State) SubmitSettled() State {
	s = s.clone()
	s.Loading = false
	return s
}

func (s State) clone() State {
	s.Recommendations = slices.Clone(s.Recommendations)
	return s
}
