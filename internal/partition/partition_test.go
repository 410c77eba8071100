package partition_test

import (
	"testing"

	"m3ucat/internal/catalog"
	"m3ucat/internal/partition"
)

func TestBuildGroupsSplitsByCategoryAndKind(t *testing.T) {
	items := []catalog.Item{
		{ID: "m1", Type: catalog.TypeMovie, Category: "Netflix"},
		{ID: "s1", Type: catalog.TypeSeries, Category: "Netflix"},
		{ID: "a1", Type: catalog.TypeSeries, IsAdult: true, Category: "Netflix"},
		{ID: "m2", Type: catalog.TypeMovie, Category: "Drama"},
		{ID: "m3", Type: catalog.TypeMovie, Category: "Netflix"},
	}

	groups := partition.BuildGroups(items)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	// First-appearance order.
	if groups[0].Name != "Netflix" || groups[1].Name != "Drama" {
		t.Fatalf("group order = %q, %q", groups[0].Name, groups[1].Name)
	}

	netflix := groups[0]
	if len(netflix.Movies) != 2 || netflix.Movies[0].ID != "m1" || netflix.Movies[1].ID != "m3" {
		t.Errorf("netflix movies = %+v", netflix.Movies)
	}
	if len(netflix.Series) != 1 || netflix.Series[0].ID != "s1" {
		t.Errorf("netflix series = %+v", netflix.Series)
	}
	// Adult items leave the movies/series lists regardless of type.
	if len(netflix.Adult) != 1 || netflix.Adult[0].ID != "a1" {
		t.Errorf("netflix adult = %+v", netflix.Adult)
	}
	if netflix.Total() != 4 {
		t.Errorf("netflix total = %d, want 4", netflix.Total())
	}
}

func TestFileSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Netflix", "netflix"},
		{"Prime Video", "prime_video"},
		{"Coletânea: Harry Potter", "colet_nea_harry_potter"},
		{"Séries", "s_ries"},
		{"  UHD 4K  ", "uhd_4k"},
		{"Ação", "a_o"},
	}
	for _, tc := range cases {
		if got := partition.FileSlug(tc.in); got != tc.want {
			t.Errorf("FileSlug(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
