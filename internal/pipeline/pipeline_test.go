package pipeline_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"m3ucat/internal/config"
	"m3ucat/internal/logging"
	"m3ucat/internal/partition"
	"m3ucat/internal/pipeline"
)

const samplePlaylist = `#EXTM3U
#EXTINF:-1 tvg-logo="http://img/bb.png" group-title="Series | Drama",Breaking Bad S02E05
http://host/bb/205.mp4
#EXTINF:-1 group-title="FILMES NETFLIX",001 - Matrix
http://host/matrix.mp4
#EXTINF:-1 group-title="FILMES NETFLIX",Matrix Duplicate
http://host/matrix.mp4
#EXTINF:-1 group-title="⏺️ GLOBO",Jornal Nacional
http://host/jn.mp4
#EXTINF:-1 group-title="Outros",Hot XXX Flick
http://host/adult.mp4
#EXTINF:-1 group-title="Filmes",Live Channel
http://host/live.ts
`

func testConfig(t *testing.T, playlists ...string) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Paths.OutputDir = t.TempDir()
	cfg.Inputs.Playlists = playlists
	cfg.History.Enabled = false
	if err := cfg.Validate(); err != nil {
		t.Fatalf("config invalid: %v", err)
	}
	return &cfg
}

func writePlaylist(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "list.m3u8")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func fixedClock() func() time.Time {
	return func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
}

func TestRunProducesCatalogAndIndex(t *testing.T) {
	cfg := testConfig(t, writePlaylist(t, samplePlaylist))
	p := pipeline.New(cfg, logging.NewNop())
	p.Now = fixedClock()

	result, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	// Six raw entries: one .ts leftover never becomes an entry, one ignored
	// category discarded, one URL duplicate dropped.
	if result.Items != 3 {
		t.Errorf("Items = %d, want 3", result.Items)
	}
	if result.Duplicates != 1 {
		t.Errorf("Duplicates = %d, want 1", result.Duplicates)
	}
	if result.TotalMovies != 1 || result.TotalSeries != 1 || result.TotalAdult != 1 {
		t.Errorf("totals = %d/%d/%d, want 1/1/1",
			result.TotalMovies, result.TotalSeries, result.TotalAdult)
	}

	data, err := os.ReadFile(filepath.Join(cfg.Paths.OutputDir, "index.json"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	var idx partition.Index
	if err := json.Unmarshal(data, &idx); err != nil {
		t.Fatal(err)
	}
	if idx.Version != 2 || idx.MaxItemsPerPage != 5000 {
		t.Errorf("index metadata = %+v", idx)
	}
	if idx.GeneratedAt != "2026-03-01T12:00:00Z" {
		t.Errorf("GeneratedAt = %q", idx.GeneratedAt)
	}
	names := map[string]bool{}
	for _, c := range idx.Categories {
		names[c.Name] = true
	}
	for _, want := range []string{"Drama", "Netflix", "Outros"} {
		if !names[want] {
			t.Errorf("index missing category %q (have %v)", want, names)
		}
	}
	if names["⏺️ GLOBO"] {
		t.Error("ignored category leaked into index")
	}

	// The series entry carries its parsed tuple.
	drama, err := os.ReadFile(filepath.Join(cfg.Paths.OutputDir, "drama.json"))
	if err != nil {
		t.Fatal(err)
	}
	var doc struct {
		Series []map[string]any `json:"series"`
	}
	if err := json.Unmarshal(drama, &doc); err != nil {
		t.Fatal(err)
	}
	if len(doc.Series) != 1 {
		t.Fatalf("drama series = %d, want 1", len(doc.Series))
	}
	s := doc.Series[0]
	if s["seriesName"] != "Breaking Bad" || s["season"] != float64(2) || s["episode"] != float64(5) {
		t.Errorf("series tuple = %v", s)
	}

	// Adult item lands only in the side file.
	if _, err := os.Stat(filepath.Join(cfg.Paths.OutputDir, "outros_adult.json")); err != nil {
		t.Errorf("missing adult side file: %v", err)
	}
	outros, err := os.ReadFile(filepath.Join(cfg.Paths.OutputDir, "outros.json"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(outros), "XXX") {
		t.Error("adult item leaked into regular category document")
	}
}

func TestRunIsByteIdenticalAcrossRuns(t *testing.T) {
	playlistPath := writePlaylist(t, samplePlaylist)

	snapshot := func() map[string]string {
		cfg := testConfig(t, playlistPath)
		p := pipeline.New(cfg, logging.NewNop())
		p.Now = fixedClock()
		if _, err := p.Run(context.Background()); err != nil {
			t.Fatalf("Run: %v", err)
		}
		files := map[string]string{}
		entries, err := os.ReadDir(cfg.Paths.OutputDir)
		if err != nil {
			t.Fatal(err)
		}
		for _, entry := range entries {
			if !strings.HasSuffix(entry.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(cfg.Paths.OutputDir, entry.Name()))
			if err != nil {
				t.Fatal(err)
			}
			files[entry.Name()] = string(data)
		}
		return files
	}

	first := snapshot()
	second := snapshot()
	if len(first) == 0 {
		t.Fatal("no output files produced")
	}
	if len(first) != len(second) {
		t.Fatalf("file sets differ: %d vs %d", len(first), len(second))
	}
	for name, content := range first {
		if second[name] != content {
			t.Errorf("%s differs between runs", name)
		}
	}
}

func TestRunDedupInvariantAcrossOutput(t *testing.T) {
	cfg := testConfig(t, writePlaylist(t, samplePlaylist))
	p := pipeline.New(cfg, logging.NewNop())
	p.Now = fixedClock()
	if _, err := p.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	seen := map[string]bool{}
	entries, err := os.ReadDir(cfg.Paths.OutputDir)
	if err != nil {
		t.Fatal(err)
	}
	for _, entry := range entries {
		if entry.Name() == "index.json" || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(cfg.Paths.OutputDir, entry.Name()))
		if err != nil {
			t.Fatal(err)
		}
		var doc struct {
			Movies []struct{ URL string `json:"url"` } `json:"movies"`
			Series []struct{ URL string `json:"url"` } `json:"series"`
			Items  []struct{ URL string `json:"url"` } `json:"items"`
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			t.Fatal(err)
		}
		for _, lists := range [][]struct {
			URL string `json:"url"`
		}{doc.Movies, doc.Series, doc.Items} {
			for _, item := range lists {
				if seen[item.URL] {
					t.Errorf("url %q appears twice in output", item.URL)
				}
				seen[item.URL] = true
			}
		}
	}
	if len(seen) == 0 {
		t.Fatal("no items found in output")
	}
}

func TestRunSkipsMissingPlaylists(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone.m3u8")
	cfg := testConfig(t, missing, writePlaylist(t, samplePlaylist))
	p := pipeline.New(cfg, logging.NewNop())
	p.Now = fixedClock()

	result, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Skipped) != 1 || result.Skipped[0] != missing {
		t.Errorf("Skipped = %v", result.Skipped)
	}
	if len(result.Inputs) != 1 {
		t.Errorf("Inputs = %v", result.Inputs)
	}
	if result.Items == 0 {
		t.Error("expected items from the surviving playlist")
	}
}

func TestRunFailsWithoutInputs(t *testing.T) {
	cfg := testConfig(t)
	p := pipeline.New(cfg, logging.NewNop())

	_, err := p.Run(context.Background())
	if err == nil {
		t.Fatal("expected configuration error")
	}
	if !errors.Is(err, pipeline.ErrConfiguration) {
		t.Errorf("error %v is not ErrConfiguration", err)
	}
}

func TestRunWriteFailureAbortsBeforeIndex(t *testing.T) {
	cfg := testConfig(t, writePlaylist(t, samplePlaylist))
	// Replace the output directory with a plain file so every write fails.
	if err := os.Remove(cfg.Paths.OutputDir); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(cfg.Paths.OutputDir, []byte("not a dir"), 0o644); err != nil {
		t.Fatal(err)
	}

	p := pipeline.New(cfg, logging.NewNop())
	_, err := p.Run(context.Background())
	if err == nil {
		t.Fatal("expected write failure")
	}
	if !errors.Is(err, pipeline.ErrWrite) {
		t.Errorf("error %v is not ErrWrite", err)
	}
}
