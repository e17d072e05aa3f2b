package movie_test

import (
	"testing"

	"letterboxd-recs/movie"

	"github.com/stretchr/testify/assert"
)

func TestMovie_Title(t *testing.T) {
	tests := []struct {
		slug     string
		expected string
	}{
		{slug: "dune-part-two", expected: "dune part two"},
		{slug: "parasite-2019", expected: "parasite 2019"},
		{slug: "m", expected: "m"},
		{slug: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			assert.Equal(t, tt.expected, movie.Movie{Slug: tt.slug}.Title())
		})
	}
}

func TestMovie_LetterboxdURL(t *testing.T) {
	m := movie.Movie{Slug: "dune-part-two"}

	assert.Equal(t, "https://letterboxd.com/film/dune-part-two/", m.LetterboxdURL())
}

func TestMovie_FormattedRating(t *testing.T) {
	tests := []struct {
		rating   float64
		expected string
	}{
		{rating: 4.567, expected: "4.6"},
		{rating: 4, expected: "4.0"},
		{rating: 3.04, expected: "3.0"},
		{rating: 4.96, expected: "5.0"},
		{rating: 2.25, expected: "2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, movie.Movie{Rating: tt.rating}.FormattedRating())
		})
	}
}
