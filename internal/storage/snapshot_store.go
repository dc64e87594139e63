// Package storage caches aggregation and esports snapshots in redis, keyed
// by query identity with explicit fetch timestamps so consumers can decide
// staleness instead of relying on implicit module-level request state.
package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"gamepulse/internal/aggregate"
	"gamepulse/internal/model"
)

// Match query identities.
const (
	QueryLiveMatches     = "esports:live"
	QueryUpcomingMatches = "esports:upcoming"
)

type SnapshotStore struct {
	rdb *redis.Client
}

func NewSnapshotStore(rdb *redis.Client) *SnapshotStore {
	return &SnapshotStore{rdb: rdb}
}

func newsKey() string {
	return "gamepulse:news:latest"
}

func matchKey(query string) string {
	return "gamepulse:" + query
}

// matchSnapshot wraps a poll result with its fetch time.
type matchSnapshot struct {
	Matches   []model.EsportsMatch `json:"matches"`
	FetchedAt time.Time            `json:"fetchedAt"`
}

// SaveNews stores the latest aggregation snapshot.
func (s *SnapshotStore) SaveNews(ctx context.Context, res *aggregate.Result) error {
	b, err := json.Marshal(res)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, newsKey(), b, 24*time.Hour).Err()
}

// LatestNews returns the cached aggregation snapshot, or nil when absent.
func (s *SnapshotStore) LatestNews(ctx context.Context) (*aggregate.Result, error) {
	b, err := s.rdb.Get(ctx, newsKey()).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var res aggregate.Result
	if err := json.Unmarshal(b, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// SaveMatches stores a poll result for the given query identity.
func (s *SnapshotStore) SaveMatches(ctx context.Context, query string, matches []model.EsportsMatch, fetchedAt time.Time) error {
	b, err := json.Marshal(matchSnapshot{Matches: matches, FetchedAt: fetchedAt})
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, matchKey(query), b, 24*time.Hour).Err()
}

// Matches returns the cached matches for a query and when they were fetched.
// A missing key yields an empty result with a zero fetch time.
func (s *SnapshotStore) Matches(ctx context.Context, query string) ([]model.EsportsMatch, time.Time, error) {
	b, err := s.rdb.Get(ctx, matchKey(query)).Bytes()
	if err == redis.Nil {
		return nil, time.Time{}, nil
	}
	if err != nil {
		return nil, time.Time{}, err
	}
	var snap matchSnapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return nil, time.Time{}, err
	}
	return snap.Matches, snap.FetchedAt, nil
}

// IsFresh reports whether data fetched at the given time is still inside the
// staleness window.
func IsFresh(fetchedAt time.Time, window time.Duration) bool {
	if fetchedAt.IsZero() {
		return false
	}
	return time.Since(fetchedAt) < window
}
