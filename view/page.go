package view

const PageTitle = "Letterboxd Movie Recommendations"

// Page is everything the template needs; it is derived from a State and
// nothing else.
type Page struct {
	Title    string
	Username string
	Loading  bool
	Error    string
	Movies   []MovieItem
}

type MovieItem struct {
	Title     string
	URL       string
	PosterURL string
	Rating    string
}

func NewPage(s State) Page {
	p := Page{
		Title:    PageTitle,
		Username: s.Username,
		Loading:  s.Loading,
		Error:    s.Error,
		Movies:   make([]MovieItem, 0, len(s.Recommendations)),
	}
	for _, m := range s.Recommendations {
		p.Movies = append(p.Movies, MovieItem{
			Title:     m.Title(),
			URL:       m.LetterboxdURL(),
			PosterURL: m.PosterURL,
			Rating:    m.FormattedRating(),
		})
	}
	return p
}

// Empty reports whether the "No recommendations yet." placeholder is shown.
func (p Page) Empty() bool {
	return len(p.Movies) == 0
}
