package aggregate

import (
	"context"
	"testing"
	"time"

	"gamepulse/internal/fallback"
	"gamepulse/internal/model"
)

// stubFetcher serves canned items per source name.
type stubFetcher struct {
	items map[string][]model.NewsItem
}

func (s *stubFetcher) Fetch(_ context.Context, src model.FeedSource, _ time.Time) []model.NewsItem {
	return s.items[src.Name]
}

func sources(names ...string) []model.FeedSource {
	out := make([]model.FeedSource, 0, len(names))
	for _, n := range names {
		out = append(out, model.FeedSource{Name: n, URL: "https://example.com/" + n})
	}
	return out
}

func TestRunSortsNewestFirst(t *testing.T) {
	f := &stubFetcher{items: map[string][]model.NewsItem{
		"a": {
			{ID: "1", Timestamp: "2026-02-01 00:00:00"}, // T1
			{ID: "3", Timestamp: "2026-02-03 00:00:00"}, // T3
		},
		"b": {
			{ID: "2", Timestamp: "2026-02-02 00:00:00"}, // T2
		},
	}}
	agg := New(f, sources("a", "b"), nil)
	res := agg.Run(context.Background())

	if res.UsingFallback || res.Err != "" {
		t.Fatalf("unexpected failure state: %+v", res)
	}
	got := []string{res.Items[0].ID, res.Items[1].ID, res.Items[2].ID}
	want := []string{"3", "2", "1"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestRunUnparsableTimestampSortsEarliest(t *testing.T) {
	f := &stubFetcher{items: map[string][]model.NewsItem{
		"a": {
			{ID: "bad", Timestamp: "not a date"},
			{ID: "ok", Timestamp: "2026-02-02 00:00:00"},
		},
	}}
	agg := New(f, sources("a"), nil)
	res := agg.Run(context.Background())
	if res.Items[len(res.Items)-1].ID != "bad" {
		t.Fatalf("unparsable timestamp should sort last: %+v", res.Items)
	}
}

func TestRunTotalFailureUsesFallback(t *testing.T) {
	f := &stubFetcher{items: map[string][]model.NewsItem{}}
	agg := New(f, sources("a", "b"), nil)
	res := agg.Run(context.Background())

	if !res.UsingFallback {
		t.Fatal("expected fallback snapshot")
	}
	if res.Err != ErrAllSourcesFailed {
		t.Fatalf("err = %q, want %q", res.Err, ErrAllSourcesFailed)
	}
	want := fallback.Items()
	if len(res.Items) != len(want) {
		t.Fatalf("fallback size = %d, want %d", len(res.Items), len(want))
	}
	for i := range want {
		if res.Items[i].ID != want[i].ID {
			t.Fatalf("fallback item %d = %q, want %q", i, res.Items[i].ID, want[i].ID)
		}
	}
}

func TestRunGenerationsIncrease(t *testing.T) {
	f := &stubFetcher{items: map[string][]model.NewsItem{
		"a": {{ID: "1", Timestamp: "2026-02-01 00:00:00"}},
	}}
	agg := New(f, sources("a"), nil)
	r1 := agg.Run(context.Background())
	r2 := agg.Run(context.Background())
	if r2.Generation <= r1.Generation {
		t.Fatalf("generations must increase: %d then %d", r1.Generation, r2.Generation)
	}
}

type upperEnricher struct{}

func (upperEnricher) Enrich(_ context.Context, items []model.NewsItem) []model.NewsItem {
	out := make([]model.NewsItem, len(items))
	copy(out, items)
	for i := range out {
		out[i].Title = "enriched: " + out[i].Title
	}
	return out
}

func TestRunAppliesEnricher(t *testing.T) {
	f := &stubFetcher{items: map[string][]model.NewsItem{
		"a": {{ID: "1", Title: "base", Timestamp: "2026-02-01 00:00:00"}},
	}}
	agg := New(f, sources("a"), upperEnricher{})
	res := agg.Run(context.Background())
	if res.Items[0].Title != "enriched: base" {
		t.Fatalf("enricher not applied: %+v", res.Items[0])
	}
}

func TestParseTimestampLayouts(t *testing.T) {
	cases := []string{
		"2026-02-20 10:00:00",
		"2026-02-20T10:00:00Z",
		"Fri, 20 Feb 2026 10:00:00 +0000",
		"Fri, 20 Feb 2026 10:00:00 UTC",
	}
	for _, c := range cases {
		if ParseTimestamp(c).IsZero() {
			t.Errorf("ParseTimestamp(%q) = zero, want parsed", c)
		}
	}
	if !ParseTimestamp("garbage").IsZero() {
		t.Error("ParseTimestamp should yield zero time for garbage input")
	}
}
