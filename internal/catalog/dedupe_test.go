package catalog_test

import (
	"testing"

	"m3ucat/internal/catalog"
)

func TestDedupeByURLKeepsFirstOccurrence(t *testing.T) {
	items := []catalog.Item{
		{ID: "a", Name: "First", URL: "http://u/1"},
		{ID: "b", Name: "Second", URL: "http://u/2"},
		{ID: "c", Name: "First Again", URL: "http://u/1"},
		{ID: "d", Name: "Third", URL: "http://u/3"},
		{ID: "e", Name: "Second Again", URL: "http://u/2"},
	}

	unique, dropped := catalog.DedupeByURL(items)
	if dropped != 2 {
		t.Errorf("dropped = %d, want 2", dropped)
	}
	if len(unique) != 3 {
		t.Fatalf("len(unique) = %d, want 3", len(unique))
	}
	for i, wantName := range []string{"First", "Second", "Third"} {
		if unique[i].Name != wantName {
			t.Errorf("unique[%d].Name = %q, want %q", i, unique[i].Name, wantName)
		}
	}
}

func TestDedupeByURLEmpty(t *testing.T) {
	unique, dropped := catalog.DedupeByURL(nil)
	if len(unique) != 0 || dropped != 0 {
		t.Errorf("got %d items, %d dropped; want 0, 0", len(unique), dropped)
	}
}
