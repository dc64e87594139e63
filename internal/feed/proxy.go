// Package feed retrieves syndication feeds and normalizes raw entries into
// news items.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Item is one raw feed entry as returned by the normalization proxy.
type Item struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
	Content     string `json:"content,omitempty"`
	PubDate     string `json:"pubDate"`
	Enclosure   struct {
		Link string `json:"link"`
	} `json:"enclosure,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Author    string `json:"author,omitempty"`
}

// envelope is the proxy's JSON response shape.
type envelope struct {
	Status string `json:"status"`
	Feed   struct {
		Title string `json:"title"`
	} `json:"feed"`
	Items []Item `json:"items"`
}

// ProxyClient fetches feeds through an rss2json-style normalization proxy.
type ProxyClient struct {
	baseURL string
	client  *http.Client
}

// NewProxyClient creates a proxy client. baseURL is the full endpoint that
// accepts the feed URL in its rss_url query parameter.
func NewProxyClient(baseURL string) *ProxyClient {
	return &ProxyClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Retrieve fetches one feed via the proxy and returns its raw items.
func (c *ProxyClient) Retrieve(ctx context.Context, feedURL string) ([]Item, error) {
	endpoint := c.baseURL + "?rss_url=" + url.QueryEscape(feedURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("feed proxy: status %d", resp.StatusCode)
	}
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, err
	}
	if env.Status != "ok" {
		return nil, fmt.Errorf("feed proxy: feed status %q", env.Status)
	}
	return env.Items, nil
}
