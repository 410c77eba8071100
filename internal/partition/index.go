package partition

import (
	"sort"
	"time"
)

// IndexEntry summarizes one category in the manifest. Pages and HasMovies
// are present only for paginated categories.
type IndexEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MovieCount  int    `json:"movieCount"`
	SeriesCount int    `json:"seriesCount"`
	AdultCount  int    `json:"adultCount"`
	TotalCount  int    `json:"totalCount"`
	Pages       int    `json:"pages,omitempty"`
	HasMovies   *bool  `json:"hasMovies,omitempty"`
}

// Index is the manifest covering one run's output.
type Index struct {
	Version         int          `json:"version"`
	GeneratedAt     string       `json:"generatedAt"`
	TotalMovies     int          `json:"totalMovies"`
	TotalSeries     int          `json:"totalSeries"`
	TotalAdult      int          `json:"totalAdult"`
	MaxItemsPerPage int          `json:"maxItemsPerPage"`
	Categories      []IndexEntry `json:"categories"`
}

// BuildIndex aggregates the per-category entries into a manifest, sorted by
// total item count descending. The sort is stable so equal-sized categories
// keep their first-appearance order.
func BuildIndex(entries []IndexEntry, version, maxItemsPerPage int, generatedAt time.Time) Index {
	sorted := make([]IndexEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalCount > sorted[j].TotalCount
	})

	idx := Index{
		Version:         version,
		GeneratedAt:     generatedAt.Format(time.RFC3339),
		MaxItemsPerPage: maxItemsPerPage,
		Categories:      sorted,
	}
	for _, entry := range sorted {
		idx.TotalMovies += entry.MovieCount
		idx.TotalSeries += entry.SeriesCount
		idx.TotalAdult += entry.AdultCount
	}
	return idx
}
