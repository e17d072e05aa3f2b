package httpserver

import (
	"log/slog"
	"net/http"

	"letterboxd-recs/errs"
	"letterboxd-recs/movie"
	"letterboxd-recs/pkg/sentry"
	"letterboxd-recs/view"

	"github.com/labstack/echo/v4"
)

type MovieResponse struct {
	Slug          string  `json:"slug"`
	Title         string  `json:"title"`
	URL           string  `json:"url"`
	PosterURL     string  `json:"poster_url"`
	Rating        float64 `json:"rating"`
	DisplayRating string  `json:"display_rating"`
}

func toMovieResponses(movies []movie.Movie) []MovieResponse {
	out := make([]MovieResponse, 0, len(movies))
	for _, m := range movies {
		out = append(out, MovieResponse{
			Slug:          m.Slug,
			Title:         m.Title(),
			URL:           m.LetterboxdURL(),
			PosterURL:     m.PosterURL,
			Rating:        m.Rating,
			DisplayRating: m.FormattedRating(),
		})
	}
	return out
}

func (s *Server) RegisterRecommendationRoutes(g *echo.Group) {
	g.POST("/recommendations", s.handleRecommend)
	g.GET("/view", s.handleViewState)
}

// handleRecommend godoc
// @Summary Recommend Movies
// @Description Ask the recommendation service for movies a Letterboxd user may like
// @Tags recommendations
// @Accept json
// @Produce json
// @Param payload body RecommendRequest true "Letterboxd username"
// @Success 200 {object} APIResponse
// @Failure 400 {object} APIResponse
// @Failure 502 {object} APIResponse
// @Router /api/recommendations [post]
func (s *Server) handleRecommend(c echo.Context) error {
	if s.RecommendationService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "recommendation service not configured")
	}

	var req RecommendRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	movies, err := s.RecommendationService.Recommend(ctx, req.Username)
	if err != nil {
		if errs.ErrorCode(err) == errs.EINVALID {
			return err
		}
		slog.ErrorContext(ctx, "Error fetching recommendations",
			"request_id", requestID(c),
			"username", req.Username,
			"error", err,
		)
		fetchFailureReporter(c, req.Username).Error(err)
		return writeError(c, http.StatusBadGateway, view.FetchFailedMessage, "", err)
	}

	return writeList(c, http.StatusOK, toMovieResponses(movies))
}

// handleViewState godoc
// @Summary View State
// @Description Current state of the caller's recommendation view
// @Tags recommendations
// @Produce json
// @Success 200 {object} APIResponse
// @Router /api/view [get]
func (s *Server) handleViewState(c echo.Context) error {
	return writeSuccess(c, http.StatusOK, s.session(c).State())
}

// fetchFailureReporter prepares a Sentry report for a failed fetch. It does
// not hold on to c, so it may be used after the handler has returned.
func fetchFailureReporter(c echo.Context, username string) *sentry.Sentry {
	return new(sentry.Sentry).
		WithHub(sentry.HubFromContext(c)).
		WithTags(map[string]string{"component": "recommendations"}).
		WithExtras(map[string]interface{}{
			"username":   username,
			"request_id": requestID(c),
		})
}

func requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}
