package worker

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"gamepulse/internal/aggregate"
	"gamepulse/internal/storage"
)

// NewsRefresher runs aggregation cycles on an interval and publishes each
// snapshot in-memory and to the store. Publication is guarded by the
// snapshot's generation so a newer cycle can never be overwritten by an older
// one that resolved late.
type NewsRefresher struct {
	Aggregator *aggregate.Aggregator
	Store      *storage.SnapshotStore // optional
	Interval   time.Duration

	latest    atomic.Pointer[aggregate.Result]
	published atomic.Uint64
	refreshCh chan struct{}
}

func NewNewsRefresher(agg *aggregate.Aggregator, store *storage.SnapshotStore, interval time.Duration) *NewsRefresher {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &NewsRefresher{
		Aggregator: agg,
		Store:      store,
		Interval:   interval,
		refreshCh:  make(chan struct{}, 1),
	}
}

// Latest returns the most recently published snapshot, or nil before the
// first cycle completes.
func (w *NewsRefresher) Latest() *aggregate.Result {
	return w.latest.Load()
}

// RequestRefresh schedules an on-demand cycle. Requests arriving while one is
// already pending coalesce.
func (w *NewsRefresher) RequestRefresh() {
	select {
	case w.refreshCh <- struct{}{}:
	default:
	}
}

func (w *NewsRefresher) Start(ctx context.Context) error {
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
		case <-w.refreshCh:
			w.runOnce(ctx)
		}
	}
}

func (w *NewsRefresher) runOnce(ctx context.Context) {
	res := w.Aggregator.Run(ctx)
	w.publish(ctx, res)
}

func (w *NewsRefresher) publish(ctx context.Context, res *aggregate.Result) {
	for {
		cur := w.published.Load()
		if res.Generation <= cur {
			slog.Warn("discarding stale aggregation snapshot.", "generation", res.Generation, "published", cur)
			return
		}
		if w.published.CompareAndSwap(cur, res.Generation) {
			break
		}
	}
	w.latest.Store(res)
	if w.Store != nil {
		if err := w.Store.SaveNews(ctx, res); err != nil {
			slog.Error("store news snapshot failed.", "error", err)
		}
	}
}
