package movie

import (
	"math"
	"strconv"
	"strings"

	"letterboxd-recs/errs"
)

const letterboxdFilmURL = "https://letterboxd.com/film/"

var ErrInvalidUsername = errs.Errorf(errs.EINVALID, "movie: invalid username")

// Movie is a single recommendation returned by the recommendation service.
// It is never persisted.
type Movie struct {
	Slug      string  `json:"slug"`
	PosterURL string  `json:"poster_url"`
	Rating    float64 `json:"rating"`
}

// Title is the slug with hyphens turned into spaces.
func (m Movie) Title() string {
	return strings.ReplaceAll(m.Slug, "-", " ")
}

// LetterboxdURL is the canonical film page for the slug.
func (m Movie) LetterboxdURL() string {
	return letterboxdFilmURL + m.Slug + "/"
}

// FormattedRating is the predicted rating rounded to one decimal place,
// halves rounding away from zero.
func (m Movie) FormattedRating() string {
	return strconv.FormatFloat(math.Round(m.Rating*10)/10, 'f', 1, 64)
}
