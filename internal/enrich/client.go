// Package enrich implements the optional LLM rewrite stage: a best-effort
// client that decorates aggregated items, and the rewrite engine behind the
// batch endpoint it talks to.
package enrich

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"gamepulse/internal/classify"
	"gamepulse/internal/model"
)

// ArticleInput is one article sent to the batch rewrite endpoint.
type ArticleInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Source  string `json:"source"`
}

// ProcessedArticle is one rewritten article, aligned by index with the input.
type ProcessedArticle struct {
	ProcessedTitle   string   `json:"processedTitle"`
	ProcessedSummary string   `json:"processedSummary"`
	ProcessedTags    []string `json:"processedTags,omitempty"`
}

type batchRequest struct {
	Articles []ArticleInput `json:"articles"`
}

type batchResponse struct {
	ProcessedArticles []ProcessedArticle `json:"processedArticles"`
}

// Client calls the batch rewrite endpoint for the leading aggregated items.
// Every failure degrades to the unmodified originals; enrichment can never
// fail an aggregation cycle.
type Client struct {
	endpoint  string
	client    *http.Client
	topN      int
	batchSize int
	tagCap    int
}

func NewClient(endpoint string, topN, batchSize, tagCap int) *Client {
	if topN <= 0 {
		topN = 10
	}
	if batchSize <= 0 {
		batchSize = 5
	}
	if tagCap <= 0 {
		tagCap = 8
	}
	return &Client{
		endpoint:  endpoint,
		client:    &http.Client{Timeout: 60 * time.Second},
		topN:      topN,
		batchSize: batchSize,
		tagCap:    tagCap,
	}
}

// Enrich rewrites up to topN leading items. Sub-batches are sent concurrently
// to bound both latency and per-request size; a failed sub-batch keeps its
// originals while the others still apply.
func (c *Client) Enrich(ctx context.Context, items []model.NewsItem) []model.NewsItem {
	if c.endpoint == "" || len(items) == 0 {
		return items
	}
	n := c.topN
	if n > len(items) {
		n = len(items)
	}

	out := make([]model.NewsItem, len(items))
	copy(out, items)

	var wg sync.WaitGroup
	for start := 0; start < n; start += c.batchSize {
		end := start + c.batchSize
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			processed, err := c.send(ctx, out[start:end])
			if err != nil {
				slog.Error("enrichment sub-batch failed, keeping originals.", "start", start, "end", end, "error", err)
				return
			}
			// Tolerate a response shorter than the request.
			for i := 0; i < len(processed) && start+i < end; i++ {
				out[start+i] = c.apply(out[start+i], processed[i])
			}
		}(start, end)
	}
	wg.Wait()
	return out
}

func (c *Client) send(ctx context.Context, items []model.NewsItem) ([]ProcessedArticle, error) {
	req := batchRequest{Articles: make([]ArticleInput, 0, len(items))}
	for _, it := range items {
		req.Articles = append(req.Articles, ArticleInput{
			Title:   it.Title,
			Content: it.Summary,
			Source:  it.Source,
		})
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("enrich: status %d", resp.StatusCode)
	}
	var br batchResponse
	if err := json.NewDecoder(resp.Body).Decode(&br); err != nil {
		return nil, err
	}
	return br.ProcessedArticles, nil
}

// apply merges one rewritten article into its original item. Returned tags
// are unioned after the locally inferred ones, and the gaming rule is
// re-applied since the rewrite may introduce a conflicting tag.
func (c *Client) apply(it model.NewsItem, p ProcessedArticle) model.NewsItem {
	if p.ProcessedTitle != "" {
		it.Title = p.ProcessedTitle
	}
	if p.ProcessedSummary != "" {
		it.Summary = p.ProcessedSummary
	}
	if len(p.ProcessedTags) > 0 {
		it.Tags = classify.MergeTags(it.Tags, p.ProcessedTags, c.tagCap)
		it.Tags = classify.ApplyGamingRule(it.Tags, c.tagCap)
	}
	return it
}
