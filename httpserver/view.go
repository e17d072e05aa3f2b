package httpserver

import (
	"context"
	"net/http"

	"letterboxd-recs/errs"
	"letterboxd-recs/view"

	"github.com/labstack/echo/v4"
)

const sessionCookieName = "recs_session"

func (s *Server) RegisterViewRoutes() {
	s.Router.GET("/", s.handleShowView)
	s.Router.POST("/", s.handleSubmitView)
}

func (s *Server) handleShowView(c echo.Context) error {
	return c.Render(http.StatusOK, indexTemplate, view.NewPage(s.session(c).State()))
}

// handleSubmitView starts a submission for the caller's view and redirects
// back to it; the page shows the loading state until the request settles.
// The request to the recommendation service outlives the browser request
// and is never cancelled.
func (s *Server) handleSubmitView(c echo.Context) error {
	if s.RecommendationService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "recommendation service not configured")
	}

	session := s.session(c)

	var req RecommendRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	session.SetUsername(req.Username)
	if err := c.Validate(&req); err != nil {
		return c.Render(http.StatusBadRequest, indexTemplate, view.NewPage(session.State()))
	}

	reporter := fetchFailureReporter(c, req.Username)
	ctx := context.WithoutCancel(c.Request().Context())

	s.inflight.Add(1)
	session.Dispatch(ctx, s.RecommendationService, req.Username, func(err error) {
		defer s.inflight.Done()
		if err != nil {
			reporter.Error(err)
		}
	})

	return c.Redirect(http.StatusSeeOther, "/")
}

// session returns the caller's view, issuing a cookie for new visitors.
func (s *Server) session(c echo.Context) *view.Session {
	var id string
	if cookie, err := c.Cookie(sessionCookieName); err == nil {
		id = cookie.Value
	}

	session, created := s.Sessions.Get(id)
	if created {
		c.SetCookie(&http.Cookie{
			Name:     sessionCookieName,
			Value:    session.ID,
			Path:     "/",
			HttpOnly: true,
			Secure:   s.SecureCookies,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return session
}
