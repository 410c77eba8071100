package catalog

import (
	"hash/fnv"
	"regexp"
	"strconv"
	"strings"
)

var (
	slugStripRe    = regexp.MustCompile(`[^a-z0-9\s]`)
	slugCollapseRe = regexp.MustCompile(`\s+`)
)

// GenerateID derives a stable, human-legible identifier from the cleaned
// name and the source URL: "<slug>-<hash6>". The suffix is the first six
// decimal digits of the FNV-1a 64 hash of the URL. FNV is deterministic
// across runs and platforms; the suffix is collision-resistant within a
// playlist corpus, not globally unique.
func GenerateID(name, url string) string {
	return nameSlug(name) + "-" + urlHash(url)
}

func nameSlug(name string) string {
	slug := slugStripRe.ReplaceAllString(strings.ToLower(name), "")
	slug = strings.TrimSpace(slug)
	return slugCollapseRe.ReplaceAllString(slug, "-")
}

func urlHash(url string) string {
	h := fnv.New64a()
	h.Write([]byte(url))
	digits := strconv.FormatUint(h.Sum64(), 10)
	if len(digits) > 6 {
		digits = digits[:6]
	}
	return digits
}
