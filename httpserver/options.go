package httpserver

import (
	"letterboxd-recs/movie"
	"letterboxd-recs/view"
)

type Options func(s *Server) error

func WithRecommendationService(svc movie.Service) Options {
	return func(s *Server) error {
		s.RecommendationService = svc
		return nil
	}
}

func WithSessionStore(store *view.Store) Options {
	return func(s *Server) error {
		s.Sessions = store
		return nil
	}
}

func WithAllowOrigins(origins ...string) Options {
	return func(s *Server) error {
		s.AllowOrigins = origins
		return nil
	}
}
