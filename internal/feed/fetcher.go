package feed

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"gamepulse/internal/classify"
	"gamepulse/internal/model"
)

// Retriever fetches the raw items of one feed.
type Retriever interface {
	Retrieve(ctx context.Context, feedURL string) ([]Item, error)
}

// Fetcher turns one feed source into classified news items.
type Fetcher struct {
	retriever Retriever
	perFeed   int
}

func NewFetcher(r Retriever, itemsPerFeed int) *Fetcher {
	if itemsPerFeed <= 0 {
		itemsPerFeed = 5
	}
	return &Fetcher{retriever: r, perFeed: itemsPerFeed}
}

// Fetch retrieves one source and maps its leading entries into news items.
// Failures are contained here: the caller only ever sees an empty result, so
// one broken feed cannot block the others.
func (f *Fetcher) Fetch(ctx context.Context, src model.FeedSource, cycle time.Time) []model.NewsItem {
	raw, err := f.retriever.Retrieve(ctx, src.URL)
	if err != nil {
		slog.Error("fetch feed failed.", "source", src.Name, "error", err)
		return nil
	}
	if len(raw) > f.perFeed {
		raw = raw[:f.perFeed]
	}
	items := make([]model.NewsItem, 0, len(raw))
	for i, it := range raw {
		content := it.Content
		if content == "" {
			content = it.Description
		}
		items = append(items, model.NewsItem{
			// Unique within a cycle; items are replaced wholesale each cycle,
			// so cross-cycle collisions do not matter.
			ID:        fmt.Sprintf("%s-%d-%d", src.Name, i, cycle.UnixMilli()),
			Title:     it.Title,
			Summary:   Summary(it),
			SourceURL: it.Link,
			ImageURL:  Image(it),
			Category:  classify.Category(it.Title, content),
			Timestamp: it.PubDate,
			Source:    src.Name,
			Author:    Author(it),
			Tags:      classify.Tags(it.Title, content, src.Name),
			Likes:     rand.Intn(2000), // regenerated every cycle, not persisted
		})
	}
	return items
}
