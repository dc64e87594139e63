package pandascore

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"gamepulse/internal/model"
)

// Client is a minimal PandaScore API client.
// Docs: https://developers.pandascore.co
type Client struct {
	baseURL  string
	token    string
	client   *http.Client
	limiter  *rate.Limiter
	pageSize int
}

// NewClient creates a client. baseURL defaults to the public API endpoint.
// Requests are rate limited to stay inside the free-tier quota.
func NewClient(baseURL, token string, pageSize int) *Client {
	if baseURL == "" {
		baseURL = "https://api.pandascore.co"
	}
	if pageSize <= 0 {
		pageSize = 5
	}
	return &Client{
		baseURL:  baseURL,
		token:    token,
		client:   &http.Client{Timeout: 10 * time.Second},
		limiter:  rate.NewLimiter(rate.Every(4*time.Second), 2),
		pageSize: pageSize,
	}
}

// LiveMatches fetches currently running matches.
func (c *Client) LiveMatches(ctx context.Context) ([]model.EsportsMatch, error) {
	q := url.Values{"page[size]": {strconv.Itoa(c.pageSize)}}
	return c.matches(ctx, "/matches/running", q)
}

// UpcomingMatches fetches not-yet-started matches ordered by start time.
func (c *Client) UpcomingMatches(ctx context.Context) ([]model.EsportsMatch, error) {
	q := url.Values{
		"sort":       {"begin_at"},
		"page[size]": {strconv.Itoa(c.pageSize)},
	}
	return c.matches(ctx, "/matches/upcoming", q)
}

func (c *Client) matches(ctx context.Context, path string, q url.Values) ([]model.EsportsMatch, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	endpoint := c.baseURL + path + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("pandascore: %s status %d", path, resp.StatusCode)
	}
	var raw []RawMatch
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, err
	}
	matches := make([]model.EsportsMatch, 0, len(raw))
	for _, m := range raw {
		// Placeholder fixtures without both teams are not worth showing.
		if len(m.Opponents) < 2 {
			continue
		}
		matches = append(matches, TransformMatch(m))
	}
	return matches, nil
}
