package recommendapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"letterboxd-recs/movie"

	"github.com/goccy/go-json"
)

const recommendPath = "/recommend"

// Client talks to the recommendation service over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// APIError is returned when the service responds with a non-2xx status.
type APIError struct {
	StatusCode int
	Status     string
	Endpoint   string
	Message    string
}

func (e *APIError) Error() string {
	if e == nil {
		return "recommendation api error"
	}
	return fmt.Sprintf("recommendation api error: %s: %s", e.Status, e.Message)
}

// IsNotFound reports whether the service answered 404, which it does for
// users without any ratings.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	return false
}

var errMissingRecommendations = errors.New("response has no recommendations array")

type recommendRequest struct {
	Username string `json:"username"`
}

type recommendResponse struct {
	Recommendations []movie.Movie `json:"recommendations"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewClient creates a client for the service at baseURL. If httpClient is
// nil, http.DefaultClient is used.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// BaseURL returns the service root the client posts to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Recommend posts the username to the service and returns its movies in
// the order received. An empty list is a valid answer.
func (c *Client) Recommend(ctx context.Context, username string) ([]movie.Movie, error) {
	endpoint := c.baseURL + recommendPath

	var out recommendResponse
	if err := c.postJSON(ctx, endpoint, recommendRequest{Username: username}, &out); err != nil {
		return nil, err
	}
	if out.Recommendations == nil {
		return nil, fmt.Errorf("decode response from %s: %w", endpoint, errMissingRecommendations)
	}
	return out.Recommendations, nil
}

func (c *Client) postJSON(ctx context.Context, endpoint string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, 8<<10))
		return &APIError{
			StatusCode: res.StatusCode,
			Status:     res.Status,
			Endpoint:   endpoint,
			Message:    errorMessage(snippet),
		}
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response from %s: %w", endpoint, err)
	}
	return nil
}

// errorMessage prefers the service's {"error": "..."} body over raw text.
func errorMessage(body []byte) string {
	var e errorResponse
	if err := json.Unmarshal(body, &e); err == nil && e.Error != "" {
		return e.Error
	}
	return strings.TrimSpace(string(body))
}
