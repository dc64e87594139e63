// Package classify implements the rule-based category and tag classifier for
// news items. Rules are data-driven keyword tables evaluated by iteration so
// they stay independently testable; matching is case-insensitive substring
// matching and fully deterministic.
package classify

import "strings"

// DefaultCategory is assigned when no category rule matches.
const DefaultCategory = "Gaming"

const (
	minTags = 4
	maxTags = 6
)

// rule binds a label to the keywords that trigger it.
type rule struct {
	Label    string
	Keywords []string
}

// categoryRules are evaluated in order; the first match wins.
var categoryRules = []rule{
	{"PlayStation", []string{"playstation", "ps5", "ps4", "sony interactive"}},
	{"Xbox", []string{"xbox", "game pass", "series x", "series s"}},
	{"Nintendo", []string{"nintendo", "switch", "zelda", "mario", "pokemon"}},
	{"PCGaming", []string{"pc gaming", "steam", "nvidia", "amd", "gpu", "graphics card"}},
	{"FPS", []string{"fps", "shooter", "call of duty", "valorant", "counter-strike", "overwatch"}},
	{"RPG", []string{"rpg", "role-playing", "baldur's gate", "elden ring", "final fantasy", "witcher"}},
	{"Indie", []string{"indie", "hollow knight", "celeste", "stardew"}},
	{"Esports", []string{"esports", "tournament", "championship", "pro league"}},
}

// tagRules accumulate: every matching group contributes its tag.
var tagRules = []rule{
	// platforms
	{"PlayStation", []string{"playstation", "ps5", "ps4"}},
	{"Xbox", []string{"xbox", "game pass"}},
	{"Nintendo", []string{"nintendo", "switch", "zelda", "mario"}},
	{"PCGaming", []string{"pc gaming", "steam", "nvidia", "amd", "gpu"}},
	// genres
	{"FPS", []string{"fps", "shooter", "call of duty", "valorant", "counter-strike"}},
	{"RPG", []string{"rpg", "role-playing", "baldur's gate", "elden ring"}},
	{"Indie", []string{"indie", "hollow knight", "celeste"}},
	// streaming platforms
	{"Twitch", []string{"twitch", "stream", "streamer"}},
	{"YouTube", []string{"youtube"}},
	{"Kick", []string{"kick.com", "kick streaming"}},
	// named streamers
	{"KaiCenat", []string{"kai cenat", "kaicenat"}},
	{"xQc", []string{"xqc"}},
	{"Ninja", []string{"ninja"}},
	// esports
	{"Esports", []string{"esports", "tournament", "championship", "pro league"}},
}

// sourceTags are appended per source when keyword matches leave room.
var sourceTags = map[string][]string{
	"IGN":      {"Gaming", "News"},
	"GameSpot": {"Gaming", "Reviews"},
	"Kotaku":   {"Gaming", "Culture"},
	"Polygon":  {"Gaming", "Entertainment"},
}

// genericTags backfill the list up to the minimum length.
var genericTags = []string{"Gaming", "News", "Trending", "Community"}

// gamingSignals are tags that imply gaming content and trigger the
// Entertainment-exclusion rule.
var gamingSignals = map[string]struct{}{
	"PlayStation": {},
	"Xbox":        {},
	"Nintendo":    {},
	"PCGaming":    {},
	"FPS":         {},
	"RPG":         {},
	"Indie":       {},
	"Esports":     {},
}

// Category assigns exactly one category from the fixed vocabulary. The first
// matching rule wins; unmatched text falls through to DefaultCategory.
func Category(title, content string) string {
	text := strings.ToLower(title + " " + content)
	for _, r := range categoryRules {
		for _, kw := range r.Keywords {
			if strings.Contains(text, kw) {
				return r.Label
			}
		}
	}
	return DefaultCategory
}

// Tags infers an ordered, de-duplicated tag set of 4 to 6 entries for the
// given item text and source name.
func Tags(title, content, source string) []string {
	text := strings.ToLower(title + " " + content)
	tags := make([]string, 0, maxTags)
	seen := map[string]struct{}{}

	add := func(t string) bool {
		if _, ok := seen[t]; ok {
			return false
		}
		seen[t] = struct{}{}
		tags = append(tags, t)
		return true
	}

	for _, r := range tagRules {
		if len(tags) >= maxTags {
			break
		}
		for _, kw := range r.Keywords {
			if strings.Contains(text, kw) {
				add(r.Label)
				break
			}
		}
	}

	// Source defaults, then generic backfill to the minimum.
	defaults, ok := sourceTags[source]
	if !ok {
		defaults = []string{"Gaming", "News"}
	}
	for _, t := range defaults {
		if len(tags) >= maxTags {
			break
		}
		add(t)
	}
	for _, t := range genericTags {
		if len(tags) >= minTags {
			break
		}
		add(t)
	}

	tags = ApplyGamingRule(tags, maxTags)

	// The rule may have dropped "Entertainment" below the minimum; top up.
	for _, t := range genericTags {
		if len(tags) >= minTags {
			break
		}
		if !containsTag(tags, t) {
			tags = append(tags, t)
		}
	}
	if len(tags) > maxTags {
		tags = tags[:maxTags]
	}
	return tags
}

// ApplyGamingRule enforces the mutual exclusion between gaming content and the
// "Entertainment" tag: whenever any gaming-signal tag (or "Gaming" itself) is
// present, "Gaming" is guaranteed in the output and "Entertainment" is not.
func ApplyGamingRule(tags []string, limit int) []string {
	signal := false
	for _, t := range tags {
		if t == "Gaming" {
			signal = true
			break
		}
		if _, ok := gamingSignals[t]; ok {
			signal = true
			break
		}
	}
	if !signal {
		return tags
	}
	out := make([]string, 0, len(tags))
	hasGaming := false
	for _, t := range tags {
		if t == "Entertainment" {
			continue
		}
		if t == "Gaming" {
			hasGaming = true
		}
		out = append(out, t)
	}
	if !hasGaming {
		if len(out) < limit {
			out = append(out, "Gaming")
		} else {
			out[len(out)-1] = "Gaming"
		}
	}
	return out
}

// MergeTags unions original and extra preserving order (originals first),
// dropping duplicates and truncating to cap.
func MergeTags(original, extra []string, limit int) []string {
	out := make([]string, 0, limit)
	seen := map[string]struct{}{}
	for _, t := range original {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	for _, t := range extra {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func containsTag(tags []string, t string) bool {
	for _, v := range tags {
		if v == t {
			return true
		}
	}
	return false
}
