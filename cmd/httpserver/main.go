package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"letterboxd-recs/httpserver"
	"letterboxd-recs/movie"
	"letterboxd-recs/pkg/config"
	"letterboxd-recs/pkg/sentry"
	"letterboxd-recs/recommendapi"
	"letterboxd-recs/view"

	sentrygo "github.com/getsentry/sentry-go"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Cannot load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		slog.Error("Cannot init sentry", "error", err)
		os.Exit(1)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	client := recommendapi.NewClient(cfg.RecommendBaseURL(), nil)
	server, err := httpserver.Default(cfg,
		httpserver.WithRecommendationService(movie.NewUsecase(client)),
		httpserver.WithSessionStore(view.NewStore(cfg.SessionTTL)),
	)
	if err != nil {
		slog.Error("Cannot create server", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server started!", "addr", server.Addr, "env", cfg.AppEnv, "recommend_api", client.BaseURL())
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped with error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown with error", "error", err)
	}
	slog.Info("server stopped")
}
