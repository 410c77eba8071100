package catalog

// DedupeByURL retains the first occurrence of each distinct URL, preserving
// source order, and reports how many later duplicates were dropped.
func DedupeByURL(items []Item) ([]Item, int) {
	seen := make(map[string]struct{}, len(items))
	unique := make([]Item, 0, len(items))
	dropped := 0
	for _, item := range items {
		if _, ok := seen[item.URL]; ok {
			dropped++
			continue
		}
		seen[item.URL] = struct{}{}
		unique = append(unique, item)
	}
	return unique, dropped
}
