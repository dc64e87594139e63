package cmd

import (
	"time"

	"gamepulse/internal/aggregate"
	"gamepulse/internal/config"
	"gamepulse/internal/enrich"
	"gamepulse/internal/feed"
)

// newRetriever picks the proxy or direct feed path based on configuration.
func newRetriever(cfg config.Config) feed.Retriever {
	if cfg.Feeds.ProxyURL != "" {
		return feed.NewProxyClient(cfg.Feeds.ProxyURL)
	}
	return feed.NewDirectClient(10 * time.Second)
}

// newAggregator wires the fetcher, source list and optional enrichment client.
func newAggregator(cfg config.Config) *aggregate.Aggregator {
	fetcher := feed.NewFetcher(newRetriever(cfg), cfg.Feeds.ItemsPerFeed)

	var enricher aggregate.Enricher
	if cfg.Enrich.Enabled && cfg.Enrich.Endpoint != "" {
		enricher = enrich.NewClient(cfg.Enrich.Endpoint, cfg.Enrich.TopN, cfg.Enrich.BatchSize, cfg.Enrich.TagCap)
	}
	return aggregate.New(fetcher, cfg.Feeds.Sources, enricher)
}
