package worker

import (
	"context"
	"log/slog"
	"time"

	"gamepulse/internal/model"
	"gamepulse/internal/storage"
)

// MatchFetch retrieves one esports query (live or upcoming).
type MatchFetch func(ctx context.Context) ([]model.EsportsMatch, error)

// MatchStore is the snapshot persistence the poller reads and writes.
// *storage.SnapshotStore satisfies it.
type MatchStore interface {
	Matches(ctx context.Context, query string) ([]model.EsportsMatch, time.Time, error)
	SaveMatches(ctx context.Context, query string, matches []model.EsportsMatch, fetchedAt time.Time) error
}

// EsportsPoller polls one match query on its own cadence. Failed polls are
// retried within the cycle; a cycle that exhausts its retries logs and leaves
// the previous snapshot in place so the widget degrades without blocking
// anything else.
type EsportsPoller struct {
	Fetch     MatchFetch
	Store     MatchStore
	Query     string // storage query identity, e.g. storage.QueryLiveMatches
	Interval  time.Duration
	Staleness time.Duration
	Retries   int
}

func (w *EsportsPoller) Start(ctx context.Context) error {
	if w.Interval <= 0 {
		w.Interval = time.Minute
	}
	if w.Retries < 0 {
		w.Retries = 0
	}

	// initial run
	w.runOnce(ctx)

	t := time.NewTicker(w.Interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			w.runOnce(ctx)
		}
	}
}

func (w *EsportsPoller) runOnce(ctx context.Context) {
	// Skip the upstream call while the cached snapshot is inside its
	// staleness window.
	if w.Staleness > 0 {
		if _, fetchedAt, err := w.Store.Matches(ctx, w.Query); err == nil && storage.IsFresh(fetchedAt, w.Staleness) {
			return
		}
	}

	var matches []model.EsportsMatch
	var err error
	for attempt := 0; attempt <= w.Retries; attempt++ {
		fctx, cancel := context.WithTimeout(ctx, 15*time.Second)
		matches, err = w.Fetch(fctx)
		cancel()
		if err == nil {
			break
		}
		slog.Warn("esports poll attempt failed.", "query", w.Query, "attempt", attempt+1, "error", err)
	}
	if err != nil {
		slog.Error("esports poll exhausted retries, keeping previous snapshot.", "query", w.Query, "error", err)
		return
	}

	if err := w.Store.SaveMatches(ctx, w.Query, matches, time.Now()); err != nil {
		slog.Error("store match snapshot failed.", "query", w.Query, "error", err)
		return
	}
	slog.Info("esports poll complete.", "query", w.Query, "matches", len(matches))
}
