// Package fallback ships a small offline news dataset used when every feed
// source fails, guaranteeing consumers never render an empty feed.
package fallback

import (
	_ "embed"

	"gopkg.in/yaml.v3"

	"gamepulse/internal/model"
)

//go:embed data.yaml
var rawData []byte

// record mirrors model.NewsItem with yaml tags for the bundled dataset.
type record struct {
	ID        string   `yaml:"id"`
	Title     string   `yaml:"title"`
	Summary   string   `yaml:"summary"`
	SourceURL string   `yaml:"source_url"`
	ImageURL  string   `yaml:"image_url"`
	Category  string   `yaml:"category"`
	Timestamp string   `yaml:"timestamp"`
	Source    string   `yaml:"source"`
	Author    string   `yaml:"author"`
	Tags      []string `yaml:"tags"`
	Likes     int      `yaml:"likes"`
}

// Items returns a fresh copy of the bundled offline dataset.
func Items() []model.NewsItem {
	var records []record
	if err := yaml.Unmarshal(rawData, &records); err != nil {
		// The dataset is compiled in; a decode failure is a build defect.
		panic("fallback: decode bundled dataset: " + err.Error())
	}
	items := make([]model.NewsItem, 0, len(records))
	for _, r := range records {
		items = append(items, model.NewsItem{
			ID:        r.ID,
			Title:     r.Title,
			Summary:   r.Summary,
			SourceURL: r.SourceURL,
			ImageURL:  r.ImageURL,
			Category:  r.Category,
			Timestamp: r.Timestamp,
			Source:    r.Source,
			Author:    r.Author,
			Tags:      r.Tags,
			Likes:     r.Likes,
		})
	}
	return items
}
