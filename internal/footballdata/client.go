// Package footballdata is a thin client for the football-data.org v4 API.
// The service only proxies responses through; bodies are passed back verbatim
// and upstream failures become UpstreamError envelopes, never retries.
package footballdata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"matchday/internal/observability"
)

const (
	// DefaultTeamID is Liverpool FC's football-data.org team identifier.
	DefaultTeamID = 64

	maxResponseBytes = 4 << 20
)

// Client calls the football-data.org API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient returns a Client for the given base URL and API key.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// ScheduledMatches fetches the scheduled matches for a team. The raw upstream
// JSON body is returned for pass-through to the caller.
func (c *Client) ScheduledMatches(ctx context.Context, teamID int) ([]byte, error) {
	url := fmt.Sprintf("%s/v4/teams/%d/matches?status=SCHEDULED", c.baseURL, teamID)
	return c.get(ctx, "team_matches", url)
}

// Match fetches a single match by its upstream identifier.
func (c *Client) Match(ctx context.Context, matchID int) ([]byte, error) {
	url := fmt.Sprintf("%s/v4/matches/%d", c.baseURL, matchID)
	return c.get(ctx, "match", url)
}

func (c *Client) get(ctx context.Context, endpoint, url string) ([]byte, error) {
	start := time.Now()
	status := "error"
	defer func() {
		observability.UpstreamRequests.WithLabelValues(endpoint, status).Inc()
		observability.UpstreamLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Auth-Token", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		status = strconv.Itoa(resp.StatusCode)
		return nil, fmt.Errorf("football-data returned status %d", resp.StatusCode)
	}

	status = "ok"
	return body, nil
}
