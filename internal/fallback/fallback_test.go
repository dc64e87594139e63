package fallback

import "testing"

func TestItemsDecodeAndShape(t *testing.T) {
	items := Items()
	if len(items) == 0 {
		t.Fatal("bundled dataset is empty")
	}
	seen := map[string]struct{}{}
	for _, it := range items {
		if it.ID == "" || it.Title == "" || it.Summary == "" {
			t.Errorf("incomplete fallback item: %+v", it)
		}
		if _, dup := seen[it.ID]; dup {
			t.Errorf("duplicate fallback id %q", it.ID)
		}
		seen[it.ID] = struct{}{}
		if len(it.Tags) == 0 {
			t.Errorf("fallback item %q has no tags", it.ID)
		}
	}
}

func TestItemsReturnsFreshCopies(t *testing.T) {
	a := Items()
	a[0].Title = "mutated"
	b := Items()
	if b[0].Title == "mutated" {
		t.Fatal("Items must return an independent copy per call")
	}
}
