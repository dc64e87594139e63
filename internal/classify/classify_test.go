package classify

import (
	"reflect"
	"testing"
)

var categoryVocabulary = map[string]struct{}{
	"PlayStation": {}, "Xbox": {}, "Nintendo": {}, "PCGaming": {},
	"FPS": {}, "RPG": {}, "Indie": {}, "Esports": {}, "Gaming": {},
}

func TestCategoryFixedVocabularyAndDeterminism(t *testing.T) {
	inputs := [][2]string{
		{"PS5 Pro review", "Sony's new console"},
		{"Game Pass adds titles", "xbox lineup"},
		{"Switch 2 rumors", "nintendo hardware"},
		{"RTX 5090 leak", "nvidia gpu benchmarks"},
		{"Valorant patch notes", "shooter meta"},
		{"Elden Ring DLC", "role-playing epic"},
		{"Hollow Knight Silksong", "indie metroidvania"},
		{"Major championship finals", "esports viewership"},
		{"Weather tomorrow", "sunny with clouds"},
	}
	for _, in := range inputs {
		got := Category(in[0], in[1])
		if _, ok := categoryVocabulary[got]; !ok {
			t.Errorf("Category(%q, %q) = %q, not in fixed vocabulary", in[0], in[1], got)
		}
		if again := Category(in[0], in[1]); again != got {
			t.Errorf("Category not deterministic for %q: %q vs %q", in[0], got, again)
		}
	}
}

func TestCategoryPriorityOrder(t *testing.T) {
	// Text matching both PlayStation and FPS keywords must resolve to the
	// higher-priority PlayStation rule.
	if got := Category("Call of Duty comes to PS5", ""); got != "PlayStation" {
		t.Errorf("expected PlayStation to win priority, got %q", got)
	}
	if got := Category("no keywords here at all", "still nothing"); got != DefaultCategory {
		t.Errorf("expected default category, got %q", got)
	}
}

func TestTagsLengthAndUniqueness(t *testing.T) {
	cases := []struct {
		title, content, source string
	}{
		{"PS5 and Xbox cross-play in Valorant", "steam version on twitch", "IGN"},
		{"Quiet news day", "nothing notable", "GameSpot"},
		{"Indie RPG on Switch", "nintendo eshop highlight", "Unknown Blog"},
		{"Culture piece", "no gaming words", "Polygon"},
	}
	for _, c := range cases {
		tags := Tags(c.title, c.content, c.source)
		if len(tags) < 4 || len(tags) > 6 {
			t.Errorf("Tags(%q, %q, %q) length = %d, want 4..6 (%v)", c.title, c.content, c.source, len(tags), tags)
		}
		seen := map[string]int{}
		for _, tag := range tags {
			seen[tag]++
			if seen[tag] > 1 {
				t.Errorf("duplicate tag %q in %v", tag, tags)
			}
		}
		if !reflect.DeepEqual(tags, Tags(c.title, c.content, c.source)) {
			t.Errorf("Tags not deterministic for %q", c.title)
		}
	}
}

func TestTagsSourceDefaults(t *testing.T) {
	tags := Tags("Quiet news day", "nothing notable", "GameSpot")
	if !containsTag(tags, "Reviews") {
		t.Errorf("expected GameSpot default tag Reviews, got %v", tags)
	}
	tags = Tags("Quiet news day", "nothing notable", "Some Feed")
	if !containsTag(tags, "Gaming") || !containsTag(tags, "News") {
		t.Errorf("expected generic fallback defaults, got %v", tags)
	}
}

func TestGamingRuleExcludesEntertainment(t *testing.T) {
	// Polygon's defaults include Entertainment; any gaming signal must evict it.
	tags := Tags("Elden Ring expansion announced", "role-playing", "Polygon")
	if containsTag(tags, "Entertainment") {
		t.Errorf("Entertainment must not co-exist with gaming signals: %v", tags)
	}
	if !containsTag(tags, "Gaming") {
		t.Errorf("Gaming must be present when a gaming signal is: %v", tags)
	}
	if len(tags) < 4 {
		t.Errorf("rule application dropped below minimum: %v", tags)
	}
}

func TestApplyGamingRule(t *testing.T) {
	got := ApplyGamingRule([]string{"FPS", "Entertainment", "News"}, 6)
	want := []string{"FPS", "News", "Gaming"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ApplyGamingRule = %v, want %v", got, want)
	}

	// No gaming signal: untouched.
	got = ApplyGamingRule([]string{"Entertainment", "News"}, 6)
	want = []string{"Entertainment", "News"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ApplyGamingRule without signal = %v, want %v", got, want)
	}

	// At the cap with no room: the tail slot is given to Gaming.
	got = ApplyGamingRule([]string{"FPS", "RPG", "News"}, 3)
	if !containsTag(got, "Gaming") || len(got) != 3 {
		t.Errorf("ApplyGamingRule at cap = %v, want Gaming within 3 tags", got)
	}
}

func TestMergeTags(t *testing.T) {
	got := MergeTags([]string{"FPS", "Gaming"}, []string{"Gaming", "Esports"}, 8)
	want := []string{"FPS", "Gaming", "Esports"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MergeTags = %v, want %v", got, want)
	}

	got = MergeTags([]string{"A", "B", "C"}, []string{"D", "E"}, 4)
	want = []string{"A", "B", "C", "D"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MergeTags cap = %v, want %v", got, want)
	}
}
