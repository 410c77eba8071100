package catalog_test

import (
	"testing"

	"m3ucat/internal/catalog"
)

func TestClassifyIgnoredCategories(t *testing.T) {
	var c catalog.Classifier
	cases := []struct {
		category string
		ignored  bool
	}{
		{"⏺️ GLOBO", true},
		{"⏺️ globo", true},
		{"⏺️ GLOBO SP", true}, // prefix match
		{"GLOBO (NORDESTE)", true},
		{"A FAZENDA", true},
		{"a fazenda", true},
		{"Filmes | Drama", false},
		{"Series | Drama", false},
	}
	for _, tc := range cases {
		if _, keep := c.Classify("Anything", tc.category); keep == tc.ignored {
			t.Errorf("Classify(%q): keep=%v, want ignored=%v", tc.category, keep, tc.ignored)
		}
		if got := catalog.ShouldIgnoreCategory(tc.category); got != tc.ignored {
			t.Errorf("ShouldIgnoreCategory(%q) = %v, want %v", tc.category, got, tc.ignored)
		}
	}
}

func TestClassifySeriesWithEpisodeTuple(t *testing.T) {
	var c catalog.Classifier
	cls, keep := c.Classify("Breaking Bad S02E05", "Series | Drama")
	if !keep {
		t.Fatal("entry unexpectedly discarded")
	}
	if cls.Type != catalog.TypeSeries {
		t.Errorf("Type = %q, want series", cls.Type)
	}
	if cls.SeriesName != "Breaking Bad" {
		t.Errorf("SeriesName = %q", cls.SeriesName)
	}
	if !cls.HasEpisode || cls.Season != 2 || cls.Episode != 5 {
		t.Errorf("tuple = (%d, %d, %v), want (2, 5, true)", cls.Season, cls.Episode, cls.HasEpisode)
	}
}

func TestClassifySeriesTuplePatterns(t *testing.T) {
	var c catalog.Classifier
	cases := []struct {
		name       string
		seriesName string
		season     int
		episode    int
	}{
		{"Dark T03E08", "Dark", 3, 8},
		{"Naruto 12x34", "Naruto", 12, 34},
		{"The Office s01e01", "The Office", 1, 1},
	}
	for _, tc := range cases {
		cls, keep := c.Classify(tc.name, "Outros")
		if !keep {
			t.Fatalf("Classify(%q) discarded", tc.name)
		}
		if cls.Type != catalog.TypeSeries {
			t.Errorf("Classify(%q).Type = %q, want series", tc.name, cls.Type)
		}
		if cls.SeriesName != tc.seriesName || cls.Season != tc.season || cls.Episode != tc.episode {
			t.Errorf("Classify(%q) tuple = (%q, %d, %d), want (%q, %d, %d)",
				tc.name, cls.SeriesName, cls.Season, cls.Episode, tc.seriesName, tc.season, tc.episode)
		}
	}
}

func TestClassifySeriesByCategoryWithoutTuple(t *testing.T) {
	var c catalog.Classifier
	cls, keep := c.Classify("Minha Novela Favorita", "NOVELAS")
	if !keep {
		t.Fatal("entry unexpectedly discarded")
	}
	if cls.Type != catalog.TypeSeries {
		t.Errorf("Type = %q, want series", cls.Type)
	}
	if cls.HasEpisode {
		t.Error("expected no episode tuple")
	}
	if cls.SeriesName != "" {
		t.Errorf("SeriesName = %q, want empty", cls.SeriesName)
	}
}

func TestClassifySeriesByNameMarkers(t *testing.T) {
	var c catalog.Classifier
	for _, name := range []string{
		"Lost Temporada 3",
		"Friends Temp. 2",
		"Crown Season 4",
	} {
		cls, keep := c.Classify(name, "Filmes")
		if !keep {
			t.Fatalf("Classify(%q) discarded", name)
		}
		if cls.Type != catalog.TypeSeries {
			t.Errorf("Classify(%q).Type = %q, want series", name, cls.Type)
		}
	}
}

func TestClassifyMovieDefault(t *testing.T) {
	var c catalog.Classifier
	cls, keep := c.Classify("Interestelar", "Filmes | Ficção")
	if !keep {
		t.Fatal("entry unexpectedly discarded")
	}
	if cls.Type != catalog.TypeMovie {
		t.Errorf("Type = %q, want movie", cls.Type)
	}
	if cls.Adult {
		t.Error("unexpected adult flag")
	}
}

func TestClassifyAdultFlag(t *testing.T) {
	var c catalog.Classifier
	cls, keep := c.Classify("Some XXX Movie", "Outros")
	if !keep {
		t.Fatal("entry unexpectedly discarded")
	}
	if !cls.Adult {
		t.Error("expected adult flag from name keyword")
	}

	// Matching is case-sensitive by default.
	cls, _ = c.Classify("Some xxx movie", "Outros")
	if cls.Adult {
		t.Error("lowercase keyword should not match without folding")
	}

	folded := catalog.Classifier{FoldAdult: true}
	cls, _ = folded.Classify("Some xxx movie", "Outros")
	if !cls.Adult {
		t.Error("expected adult flag with case folding enabled")
	}
}

func TestCleanName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"001 - Matrix", "Matrix"},
		{"12 – Matrix", "Matrix"},
		{"Matrix [L]", "Matrix"},
		{"Matrix (DUB)", "Matrix"},
		{"Matrix (LEG) Reloaded", "MatrixReloaded"},
		{"Matrix (dub)", "Matrix"},
		{"  Matrix  ", "Matrix"},
		{"Matrix", "Matrix"},
	}
	for _, tc := range cases {
		if got := catalog.CleanName(tc.in); got != tc.want {
			t.Errorf("CleanName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
