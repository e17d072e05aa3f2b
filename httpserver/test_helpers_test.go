package httpserver_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"letterboxd-recs/httpserver"
	"letterboxd-recs/movie"
	"letterboxd-recs/pkg/config"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{AppEnv: config.EnvLocal, Port: 8080}
	cfg.RecommendAPI.DevelopmentURL = "http://localhost:5000"
	return cfg
}

func newTestServer(t *testing.T, options ...httpserver.Options) *httpserver.Server {
	t.Helper()
	server, err := httpserver.Default(testConfig(), options...)
	require.NoError(t, err)
	return server
}

type MockRecommendationService struct {
	mock.Mock
}

func (m *MockRecommendationService) Recommend(ctx context.Context, username string) ([]movie.Movie, error) {
	args := m.Called(ctx, username)
	movies, _ := args.Get(0).([]movie.Movie)
	return movies, args.Error(1)
}

func decodeAPIResponse(t *testing.T, rec *httptest.ResponseRecorder) httpserver.APIResponse {
	t.Helper()
	var resp httpserver.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func postJSON(server *httpserver.Server, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Router.ServeHTTP(rec, req)
	return rec
}

func postForm(server *httpserver.Server, username string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	form := url.Values{"username": {username}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	server.Router.ServeHTTP(rec, req)
	return rec
}

func getWithCookies(server *httpserver.Server, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	server.Router.ServeHTTP(rec, req)
	return rec
}
