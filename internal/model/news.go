package model

// NewsItem is one normalized gaming-news entry. Items are immutable once
// built and are replaced wholesale on every aggregation cycle.
type NewsItem struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Summary   string   `json:"summary"`
	SourceURL string   `json:"sourceUrl"`
	ImageURL  string   `json:"imageUrl"`
	Category  string   `json:"category"`
	Timestamp string   `json:"timestamp"` // raw pubDate from the feed; may be unparsable
	Source    string   `json:"source"`
	Author    string   `json:"author"`
	Tags      []string `json:"tags"`
	Likes     int      `json:"likes"`
}

// FeedSource is a configured syndication endpoint plus its display name.
type FeedSource struct {
	Name string `json:"name" mapstructure:"name"`
	URL  string `json:"url" mapstructure:"url"`
}
