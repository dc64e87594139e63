package config

import "testing"

func TestFillDefaults(t *testing.T) {
	var cfg Config
	cfg.FillDefaults()

	if cfg.App.LogLevel != "info" {
		t.Errorf("log level = %q", cfg.App.LogLevel)
	}
	if cfg.Redis.Addr != "127.0.0.1:6379" {
		t.Errorf("redis addr = %q", cfg.Redis.Addr)
	}
	if cfg.Feeds.ItemsPerFeed != 5 {
		t.Errorf("items per feed = %d, want 5", cfg.Feeds.ItemsPerFeed)
	}
	if len(cfg.Feeds.Sources) != 4 {
		t.Errorf("default sources = %d, want 4", len(cfg.Feeds.Sources))
	}
	if cfg.Enrich.TopN != 10 || cfg.Enrich.BatchSize != 5 || cfg.Enrich.TagCap != 8 {
		t.Errorf("enrich defaults = %+v", cfg.Enrich)
	}
	if cfg.Esports.Retries != 2 {
		t.Errorf("esports retries = %d, want 2", cfg.Esports.Retries)
	}
	if cfg.Esports.LiveStale != "30s" || cfg.Esports.UpcomingStale != "2m" {
		t.Errorf("staleness windows = %q / %q", cfg.Esports.LiveStale, cfg.Esports.UpcomingStale)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("server addr = %q", cfg.Server.Addr)
	}
}

func TestFillDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := Config{}
	cfg.Feeds.ItemsPerFeed = 3
	cfg.Enrich.TopN = 2
	cfg.Esports.Retries = -1
	cfg.FillDefaults()

	if cfg.Feeds.ItemsPerFeed != 3 {
		t.Errorf("explicit items per feed overwritten: %d", cfg.Feeds.ItemsPerFeed)
	}
	if cfg.Enrich.TopN != 2 {
		t.Errorf("explicit top_n overwritten: %d", cfg.Enrich.TopN)
	}
	// -1 expresses "no retries" and must survive defaulting.
	if cfg.Esports.Retries != -1 {
		t.Errorf("retries = %d, want -1 preserved", cfg.Esports.Retries)
	}
}
