// Package aggregate runs a full aggregation cycle: fan out over all feed
// sources, normalize and sort, fall back to the bundled dataset on total
// failure, and apply the optional enrichment pass.
package aggregate

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"gamepulse/internal/fallback"
	"gamepulse/internal/model"
)

// ErrAllSourcesFailed is the user-facing message published with a fallback
// snapshot.
const ErrAllSourcesFailed = "Could not load live news. Showing offline archives."

// Fetcher retrieves one source's items. Implementations must contain their
// own failures and return an empty slice instead of an error.
type Fetcher interface {
	Fetch(ctx context.Context, src model.FeedSource, cycle time.Time) []model.NewsItem
}

// Enricher optionally rewrites a prefix of the aggregated items. It must be
// best-effort: on failure it returns the input unchanged.
type Enricher interface {
	Enrich(ctx context.Context, items []model.NewsItem) []model.NewsItem
}

// Result is one immutable aggregation snapshot. A new Result fully replaces
// the previous one; there is no merging across cycles.
type Result struct {
	Items         []model.NewsItem `json:"items"`
	FetchedAt     time.Time        `json:"fetchedAt"`
	Generation    uint64           `json:"generation"`
	UsingFallback bool             `json:"usingFallback"`
	Err           string           `json:"error,omitempty"`
}

// Aggregator fans the fetcher out over a fixed source list.
type Aggregator struct {
	fetcher  Fetcher
	enricher Enricher // nil disables enrichment
	sources  []model.FeedSource

	generation atomic.Uint64
}

func New(f Fetcher, sources []model.FeedSource, e Enricher) *Aggregator {
	return &Aggregator{fetcher: f, enricher: e, sources: sources}
}

// Run executes one aggregation cycle. It never returns an error: total
// failure degrades to the bundled offline dataset with the error recorded on
// the snapshot.
func (a *Aggregator) Run(ctx context.Context) *Result {
	gen := a.generation.Add(1)
	cycle := time.Now()

	perSource := make([][]model.NewsItem, len(a.sources))
	var wg sync.WaitGroup
	for i, src := range a.sources {
		wg.Add(1)
		go func(i int, src model.FeedSource) {
			defer wg.Done()
			perSource[i] = a.fetcher.Fetch(ctx, src, cycle)
		}(i, src)
	}
	wg.Wait()

	var all []model.NewsItem
	for _, items := range perSource {
		all = append(all, items...)
	}

	if len(all) == 0 {
		slog.Error("aggregation cycle produced no items from any source.", "sources", len(a.sources))
		return &Result{
			Items:         fallback.Items(),
			FetchedAt:     cycle,
			Generation:    gen,
			UsingFallback: true,
			Err:           ErrAllSourcesFailed,
		}
	}

	SortByTimestampDesc(all)

	if a.enricher != nil {
		all = a.enricher.Enrich(ctx, all)
	}

	slog.Info("aggregation cycle complete.", "items", len(all), "generation", gen)
	return &Result{Items: all, FetchedAt: cycle, Generation: gen}
}

// timestampLayouts are tried in order when parsing feed publish times. The
// proxy normalizes most dates to "2006-01-02 15:04:05"; direct feeds commonly
// use the RFC822/1123 family or RFC3339.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
}

// ParseTimestamp parses a feed publish time. Unparsable values yield the zero
// time so comparisons stay total and sorting never panics.
func ParseTimestamp(s string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// SortByTimestampDesc orders items newest first. Entries with unparsable
// timestamps compare as the zero time and sink to the end.
func SortByTimestampDesc(items []model.NewsItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return ParseTimestamp(items[i].Timestamp).After(ParseTimestamp(items[j].Timestamp))
	})
}
