package feed

import (
	"regexp"
	"strings"
)

// FallbackImage is used when no image can be derived from an entry.
const FallbackImage = "https://images.unsplash.com/photo-1538481199705-c710c4e965fc?w=800&h=400&fit=crop"

// DefaultAuthor substitutes a missing author field.
const DefaultAuthor = "Staff Writer"

// placeholderSummary substitutes an entry whose description strips to nothing.
const placeholderSummary = "Click to read the full article for more details."

var (
	htmlTagRe = regexp.MustCompile(`<[^>]+>`) // best-effort removal
	imgSrcRe  = regexp.MustCompile(`(?i)<img[^>]+src=["']([^"']+)["']`)
)

// StripHTML removes markup and unescapes common entities. Feed descriptions
// are simple HTML, so a tag regexp is sufficient here.
func StripHTML(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	s = htmlTagRe.ReplaceAllString(s, "")
	replacer := strings.NewReplacer(
		"&quot;", "\"",
		"&apos;", "'",
		"&#39;", "'",
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&nbsp;", " ",
	)
	return strings.TrimSpace(replacer.Replace(s))
}

// ExtractImage returns the URL of the first <img> tag in the markup, or "".
func ExtractImage(html string) string {
	m := imgSrcRe.FindStringSubmatch(html)
	if m == nil {
		return ""
	}
	return m[1]
}

// Summary derives the plain-text summary for an entry: the stripped
// description, falling back to the stripped content, falling back to a fixed
// placeholder. The full text is kept; no truncation.
func Summary(it Item) string {
	s := StripHTML(it.Description)
	if s == "" {
		s = StripHTML(it.Content)
	}
	if s == "" {
		return placeholderSummary
	}
	return s
}

// Image derives the best image URL for an entry: enclosure, then thumbnail,
// then the first inline image in the content, then the fixed fallback.
func Image(it Item) string {
	if it.Enclosure.Link != "" {
		return it.Enclosure.Link
	}
	if it.Thumbnail != "" {
		return it.Thumbnail
	}
	content := it.Content
	if content == "" {
		content = it.Description
	}
	if img := ExtractImage(content); img != "" {
		return img
	}
	return FallbackImage
}

// Author returns the entry author or the fixed default.
func Author(it Item) string {
	if strings.TrimSpace(it.Author) != "" {
		return it.Author
	}
	return DefaultAuthor
}
