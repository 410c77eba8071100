package catalog

import (
	"regexp"
	"strconv"
	"strings"
)

// ignoredCategories drops live TV, sports, and other non-VOD bundles before
// classification. Matching is exact, case-insensitive exact, or
// case-insensitive prefix.
var ignoredCategories = []string{
	"⏺️ ABERTO", "⏺️ BAND", "⏺️ SBT", "⏺️ GLOBO", "⏺️ RECORD", "⏺️ HBO",
	"⏺️ TELECINE", "⏺️ DISCOVERY", "⏺️ CINE SKY", "⏺️ FILMES E SERIES",
	"⏺️ NOTICIA", "⏺️ NBA", "⏺️ RUNTIME", "⏺️ 4K",
	"GLOBO (CENTRO-OESTE)", "GLOBO (NORDESTE)", "GLOBO (NORTE)",
	"GLOBO (SUDESTE)", "GLOBO (SUL)",
	"⚽APPLETV", "⚽DAZN", "⚽DISNEY", "⚽ESPORTE", "⚽HBO",
	"⚽PARAMOUNT", "⚽PREMIERE", "⚽PRIME", "⚽ COPINHA",
	"A FAZENDA", "BBB 20", "BBB 2026", "ESTRELA DA CASA",
	"Área do cliente", "JOGOS DE HOJE", "RÁDIOS FM", "CANAIS:",
}

var adultKeywords = []string{"ADULTOS", "[HOT]", "XXX", "[Adulto]", "ADULTO", "❌❤️"}

var seriesCategoryKeywords = []string{"series", "série", "novelas", "doramas", "programas", "stand up", "24h"}

// episodePatterns flag a title as a series episode without extracting the
// numeric tuple.
var episodePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)S\d+\s*E\d+`),
	regexp.MustCompile(`(?i)T\d+\s*E\d+`),
	regexp.MustCompile(`(?i)\d+\s*x\s*\d+`),
	regexp.MustCompile(`(?i)Temporada\s*\d+`),
	regexp.MustCompile(`(?i)Temp\.?\s*\d+`),
	regexp.MustCompile(`(?i)Season\s*\d+`),
}

// seriesInfoPatterns extract (series name, season, episode). Anchored at the
// start; the first match wins.
var seriesInfoPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(.+?)\s*S(\d+)\s*E(\d+)`),
	regexp.MustCompile(`(?i)^(.+?)\s*T(\d+)\s*E(\d+)`),
	regexp.MustCompile(`(?i)^(.+?)\s*(\d+)\s*x\s*(\d+)`),
}

var (
	ordinalPrefixRe = regexp.MustCompile(`^\d+\s*[-–]\s*`)
	trailingLTagRe  = regexp.MustCompile(`(?i)\s*\[L\]\s*$`)
	dubMarkerRe     = regexp.MustCompile(`(?i)\s*\(DUB\)\s*`)
	legMarkerRe     = regexp.MustCompile(`(?i)\s*\(LEG\)\s*`)
)

// Classification is the classifier verdict for one raw entry.
type Classification struct {
	Name       string
	Type       string
	Adult      bool
	SeriesName string
	Season     int
	Episode    int
	HasEpisode bool
}

// Classifier decides type and adult status for raw entries.
type Classifier struct {
	// FoldAdult folds case when matching adult keywords. Historical behavior
	// is case-sensitive, so the zero value preserves it.
	FoldAdult bool
}

// Classify inspects a raw (name, category) pair. The boolean is false when
// the entry's category is on the ignore list; otherwise the entry always
// lands as either a movie or a series.
func (c *Classifier) Classify(name, category string) (Classification, bool) {
	if ShouldIgnoreCategory(category) {
		return Classification{}, false
	}

	cls := Classification{Adult: c.isAdult(name, category)}
	if seriesName, season, episode, ok := parseSeriesInfo(name); ok {
		cls.SeriesName = seriesName
		cls.Season = season
		cls.Episode = episode
		cls.HasEpisode = true
	}
	if isSeriesByCategory(category) || isSeriesByName(name) || cls.HasEpisode {
		cls.Type = TypeSeries
	} else {
		cls.Type = TypeMovie
	}
	cls.Name = CleanName(name)
	return cls, true
}

// ShouldIgnoreCategory reports whether the category is on the fixed block
// list of live/non-VOD bundles.
func ShouldIgnoreCategory(category string) bool {
	upper := strings.ToUpper(category)
	for _, ignored := range ignoredCategories {
		upperIgnored := strings.ToUpper(ignored)
		if upper == upperIgnored || strings.HasPrefix(upper, upperIgnored) || category == ignored {
			return true
		}
	}
	return false
}

func (c *Classifier) isAdult(name, category string) bool {
	combined := name + " " + category
	if c.FoldAdult {
		combined = strings.ToLower(combined)
	}
	for _, keyword := range adultKeywords {
		if c.FoldAdult {
			keyword = strings.ToLower(keyword)
		}
		if strings.Contains(combined, keyword) {
			return true
		}
	}
	return false
}

func isSeriesByCategory(category string) bool {
	lower := strings.ToLower(category)
	for _, keyword := range seriesCategoryKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

func isSeriesByName(name string) bool {
	for _, pattern := range episodePatterns {
		if pattern.MatchString(name) {
			return true
		}
	}
	return false
}

func parseSeriesInfo(name string) (seriesName string, season, episode int, ok bool) {
	for _, pattern := range seriesInfoPatterns {
		m := pattern.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		season, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		episode, err := strconv.Atoi(m[3])
		if err != nil {
			continue
		}
		return strings.TrimSpace(m[1]), season, episode, true
	}
	return "", 0, 0, false
}

// CleanName strips the leading "<number> - " ordinal prefix, a trailing [L]
// tag, and (DUB)/(LEG) markers from a display title.
func CleanName(name string) string {
	name = ordinalPrefixRe.ReplaceAllString(name, "")
	name = trailingLTagRe.ReplaceAllString(name, "")
	name = dubMarkerRe.ReplaceAllString(name, "")
	name = legMarkerRe.ReplaceAllString(name, "")
	return strings.TrimSpace(name)
}
