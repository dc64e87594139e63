package config

import "gamepulse/internal/model"

// AppConfig holds application-level settings.
type AppConfig struct {
	LogLevel string `mapstructure:"log_level"`
}

// RedisConfig holds redis connection settings.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// FeedsConfig controls the news aggregation pipeline.
type FeedsConfig struct {
	// ProxyURL is the feed-normalization proxy (rss2json style). When empty,
	// feeds are fetched and parsed directly.
	ProxyURL        string             `mapstructure:"proxy_url"`
	RefreshInterval string             `mapstructure:"refresh_interval"` // duration string, e.g., "10m"
	ItemsPerFeed    int                `mapstructure:"items_per_feed"`
	Sources         []model.FeedSource `mapstructure:"sources"`
}

// EnrichConfig controls the optional LLM enrichment pass.
type EnrichConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Endpoint  string `mapstructure:"endpoint"` // batch rewrite endpoint
	TopN      int    `mapstructure:"top_n"`    // how many leading items to enrich
	BatchSize int    `mapstructure:"batch_size"`
	TagCap    int    `mapstructure:"tag_cap"` // post-merge tag ceiling
}

// OpenAIConfig configures the article rewriter backing the enrichment endpoint.
type OpenAIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

// EsportsConfig controls the esports score pollers.
type EsportsConfig struct {
	BaseURL          string `mapstructure:"base_url"`
	Token            string `mapstructure:"token"`
	PageSize         int    `mapstructure:"page_size"`
	LiveInterval     string `mapstructure:"live_interval"`
	UpcomingInterval string `mapstructure:"upcoming_interval"`
	LiveStale        string `mapstructure:"live_stale"`
	UpcomingStale    string `mapstructure:"upcoming_stale"`
	// Retries is the per-poll retry budget. 0 (unset) applies the default;
	// -1 disables retries.
	Retries int `mapstructure:"retries"`
}

// ServerConfig holds the HTTP API settings.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// Config is the top-level configuration structure.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Feeds   FeedsConfig   `mapstructure:"feeds"`
	Enrich  EnrichConfig  `mapstructure:"enrich"`
	OpenAI  OpenAIConfig  `mapstructure:"openai"`
	Esports EsportsConfig `mapstructure:"esports"`
	Server  ServerConfig  `mapstructure:"server"`
}

// DefaultSources is the feed list used when none is configured.
var DefaultSources = []model.FeedSource{
	{Name: "IGN", URL: "https://feeds.ign.com/ign/news"},
	{Name: "GameSpot", URL: "https://www.gamespot.com/feeds/news/"},
	{Name: "Kotaku", URL: "https://kotaku.com/rss"},
	{Name: "Polygon", URL: "https://www.polygon.com/rss/index.xml"},
}

// FillDefaults applies default values if not provided.
func (c *Config) FillDefaults() {
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "127.0.0.1:6379"
	}
	if c.Feeds.RefreshInterval == "" {
		c.Feeds.RefreshInterval = "10m"
	}
	if c.Feeds.ItemsPerFeed == 0 {
		c.Feeds.ItemsPerFeed = 5
	}
	if len(c.Feeds.Sources) == 0 {
		c.Feeds.Sources = DefaultSources
	}
	if c.Enrich.TopN == 0 {
		c.Enrich.TopN = 10
	}
	if c.Enrich.BatchSize == 0 {
		c.Enrich.BatchSize = 5
	}
	if c.Enrich.TagCap == 0 {
		c.Enrich.TagCap = 8
	}
	if c.Esports.BaseURL == "" {
		c.Esports.BaseURL = "https://api.pandascore.co"
	}
	if c.Esports.PageSize == 0 {
		c.Esports.PageSize = 5
	}
	if c.Esports.LiveInterval == "" {
		c.Esports.LiveInterval = "1m"
	}
	if c.Esports.UpcomingInterval == "" {
		c.Esports.UpcomingInterval = "5m"
	}
	if c.Esports.LiveStale == "" {
		c.Esports.LiveStale = "30s"
	}
	if c.Esports.UpcomingStale == "" {
		c.Esports.UpcomingStale = "2m"
	}
	if c.Esports.Retries == 0 {
		c.Esports.Retries = 2
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
}
