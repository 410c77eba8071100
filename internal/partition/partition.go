package partition

import (
	"regexp"
	"strings"

	"m3ucat/internal/catalog"
)

// Group holds one canonical category's items split into three disjoint
// lists. Adult items land in Adult regardless of type.
type Group struct {
	Name   string
	Movies []catalog.Item
	Series []catalog.Item
	Adult  []catalog.Item
}

// Total is the number of items across all three lists.
func (g *Group) Total() int {
	return len(g.Movies) + len(g.Series) + len(g.Adult)
}

// BuildGroups partitions items by canonical category. Groups appear in
// first-appearance order and items keep their source order, which keeps
// repeated runs byte-identical.
func BuildGroups(items []catalog.Item) []Group {
	index := make(map[string]int)
	var groups []Group
	for _, item := range items {
		i, ok := index[item.Category]
		if !ok {
			i = len(groups)
			index[item.Category] = i
			groups = append(groups, Group{Name: item.Category})
		}
		g := &groups[i]
		switch {
		case item.IsAdult:
			g.Adult = append(g.Adult, item)
		case item.Type == catalog.TypeSeries:
			g.Series = append(g.Series, item)
		default:
			g.Movies = append(g.Movies, item)
		}
	}
	return groups
}

var fileSlugRe = regexp.MustCompile(`[^a-z0-9]+`)

// FileSlug derives the filesystem-safe document basename for a category:
// lower-cased, non-alphanumeric runs collapsed to single underscores,
// leading and trailing underscores stripped.
func FileSlug(category string) string {
	slug := fileSlugRe.ReplaceAllString(strings.ToLower(category), "_")
	return strings.Trim(slug, "_")
}

// paginate splits items into consecutive chunks of at most size items; the
// last chunk may be shorter.
func paginate(items []catalog.Item, size int) [][]catalog.Item {
	if len(items) == 0 {
		return nil
	}
	pages := make([][]catalog.Item, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		pages = append(pages, items[start:end])
	}
	return pages
}
