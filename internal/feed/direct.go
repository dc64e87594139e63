package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/mmcdole/gofeed"
)

// DirectClient fetches and parses feeds without a proxy. It produces the same
// raw item shape as ProxyClient so the extractor stays source-agnostic.
type DirectClient struct {
	parser  *gofeed.Parser
	timeout time.Duration
}

func NewDirectClient(timeout time.Duration) *DirectClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &DirectClient{parser: gofeed.NewParser(), timeout: timeout}
}

// Retrieve fetches one feed directly and maps its entries to raw items.
func (c *DirectClient) Retrieve(ctx context.Context, feedURL string) ([]Item, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	parsed, err := c.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", feedURL, err)
	}

	items := make([]Item, 0, len(parsed.Items))
	for _, entry := range parsed.Items {
		it := Item{
			Title:       entry.Title,
			Link:        entry.Link,
			Description: entry.Description,
			Content:     entry.Content,
			PubDate:     entry.Published,
		}
		if it.PubDate == "" && entry.PublishedParsed != nil {
			it.PubDate = entry.PublishedParsed.Format(time.RFC1123Z)
		}
		if len(entry.Enclosures) > 0 {
			it.Enclosure.Link = entry.Enclosures[0].URL
		}
		if entry.Image != nil {
			it.Thumbnail = entry.Image.URL
		}
		if entry.Author != nil {
			it.Author = entry.Author.Name
		}
		items = append(items, it)
	}
	return items, nil
}
