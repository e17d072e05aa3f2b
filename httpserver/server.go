package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"letterboxd-recs/errs"
	"letterboxd-recs/movie"
	"letterboxd-recs/pkg/config"
	"letterboxd-recs/view"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	// Router is the Echo router instance
	Router *echo.Echo

	// Addr represents the address the server will listen on
	Addr string

	// Allowed origins for CORS
	AllowOrigins []string

	// SecureCookies marks the session cookie Secure; on in production
	SecureCookies bool

	RecommendationService movie.Service

	Sessions *view.Store

	// submissions dispatched from the page that have not settled yet
	inflight sync.WaitGroup
}

func Default(cfg *config.Config, options ...Options) (*Server, error) {
	s := Server{
		Router:        echo.New(),
		Addr:          fmt.Sprintf(":%d", cfg.Port),
		AllowOrigins:  []string{"*"},
		SecureCookies: cfg.IsProduction(),
		Sessions:      view.NewStore(cfg.SessionTTL),
	}
	if cfg.Port == 0 {
		s.Addr = ":8080"
	}
	if cfg.AllowOrigins != "" {
		s.AllowOrigins = strings.Split(cfg.AllowOrigins, ",")
	}

	for _, fn := range options {
		if err := fn(&s); err != nil {
			return nil, err
		}
	}

	s.Router.HideBanner = true
	s.Router.HTTPErrorHandler = customHTTPErrorHandler
	s.Router.Validator = NewValidator()
	s.Router.Renderer = NewTemplateRenderer()
	s.RegisterGlobalMiddlewares()

	s.RegisterViewRoutes()
	s.RegisterRecommendationRoutes(s.Router.Group("/api"))
	s.RegisterHealthRoutes()
	s.RegisterSwaggerRoutes()
	return &s, nil
}

func (s *Server) RegisterGlobalMiddlewares() {
	s.Router.Use(middleware.Recover())
	s.Router.Use(middleware.Secure())
	s.Router.Use(middleware.RequestID())
	s.Router.Use(middleware.Gzip())
	s.Router.Use(sentryecho.New(sentryecho.Options{Repanic: true}))
	s.Router.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(20)))

	// CORS
	if len(s.AllowOrigins) > 0 {
		s.Router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: s.AllowOrigins,
		}))
	}
}

func (s *Server) Start() error {
	return s.Router.Start(s.Addr)
}

// Shutdown stops accepting requests and waits for dispatched submissions
// until ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.Router.Shutdown(ctx)

	settled := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(settled)
	}()

	select {
	case <-settled:
	case <-ctx.Done():
		if err == nil {
			err = ctx.Err()
		}
	}
	return err
}

// customHTTPErrorHandler maps application errors to appropriate HTTP status codes
func customHTTPErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	message := "Internal server error"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		message = fmt.Sprint(he.Message)
	} else {
		switch errs.ErrorCode(err) {
		case errs.EINVALID:
			code = http.StatusBadRequest
			message = errs.ErrorMessage(err)
		case errs.ENOTFOUND:
			code = http.StatusNotFound
			message = errs.ErrorMessage(err)
		case errs.ECONFLICT:
			code = http.StatusConflict
			message = errs.ErrorMessage(err)
		case errs.EUNAUTHORIZED:
			code = http.StatusUnauthorized
			message = errs.ErrorMessage(err)
		case errs.ENOTIMPLEMENTED:
			code = http.StatusNotImplemented
			message = errs.ErrorMessage(err)
		}
	}

	// Don't write response if already committed
	if !c.Response().Committed {
		if err := writeError(c, code, message, "", err); err != nil {
			c.Logger().Error(err)
		}
	}
}
