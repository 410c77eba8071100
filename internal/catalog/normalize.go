package catalog

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Recapitalization policies for category labels stripped of a structural
// prefix.
const (
	RecapitalizeFirstRune = "first-rune"
	RecapitalizeTitle     = "title"
)

var launchYearRe = regexp.MustCompile(`20\d{2}`)

// categoryRule is one step of the normalization chain. Rules are evaluated
// strictly in table order against the lower-cased label; the first match
// wins. result receives the lower-cased and the raw label for the few rules
// that derive their output from the input.
type categoryRule struct {
	match  func(lower string) bool
	result func(lower, raw string) string
}

func fixed(name string, subs ...string) categoryRule {
	return categoryRule{
		match: func(lower string) bool {
			for _, sub := range subs {
				if strings.Contains(lower, sub) {
					return true
				}
			}
			return false
		},
		result: func(string, string) string { return name },
	}
}

func when(name string, match func(lower string) bool) categoryRule {
	return categoryRule{match: match, result: func(string, string) string { return name }}
}

// categoryRules maps free-text labels to canonical category names: streaming
// platforms first, then genres, then franchise collections. The order is a
// documented total order; moving a rule changes classification outcomes.
var categoryRules = []categoryRule{
	// Streaming platforms.
	fixed("Netflix", "netflix"),
	fixed("Prime Video", "prime video", "amazon prime"),
	fixed("Disney+", "disney"),
	when("Max", func(l string) bool { return strings.Contains(l, "max") && !strings.Contains(l, "mad max") }),
	fixed("Max", "hbo"),
	fixed("Globoplay", "globoplay"),
	fixed("Paramount+", "paramount"),
	fixed("Apple TV+", "apple"),
	when("Star+", func(l string) bool { return strings.Contains(l, "star") && strings.Contains(l, "star plus") }),
	fixed("Discovery+", "discovery"),
	fixed("Crunchyroll", "crunchyroll"),
	fixed("Funimation", "funimation"),
	fixed("DirecTV", "directv"),
	fixed("Claro Video", "claro video"),
	fixed("Lionsgate", "lionsgate"),
	fixed("PlutoTV", "plutotv"),
	fixed("Play Plus", "play plus"),
	fixed("AMC+", "amc"),
	fixed("Brasil Paralelo", "brasil paralelo"),
	fixed("SBT", "sbt"),
	fixed("Univer", "univer"),

	// Genres and umbrella categories.
	fixed("Novelas", "novela"),
	fixed("Doramas", "dorama"),
	fixed("Animes", "anime"),
	fixed("Turcas", "turca"),
	when("Programas de TV", func(l string) bool { return strings.Contains(l, "programas de tv") || l == "programas" }),
	fixed("Stand Up", "stand up", "stand-up"),
	fixed("Legendados", "legendad"),
	when("Documentário", func(l string) bool { return strings.Contains(l, "document") || l == "docu" }),
	when("Comédia", func(l string) bool {
		return strings.Contains(l, "com") &&
			(strings.Contains(l, "dia") || strings.Contains(l, "edia") || strings.Contains(l, "édia"))
	}),
	fixed("Drama", "drama"),
	fixed("Terror", "terror"),
	when("Ação", func(l string) bool {
		return strings.HasPrefix(l, "a") && (strings.Contains(l, "ção") || strings.Contains(l, "cao"))
	}),
	fixed("Suspense", "suspense"),
	fixed("Romance", "romance"),
	when("Animação", func(l string) bool {
		return strings.Contains(l, "anima") && (strings.Contains(l, "ção") || strings.Contains(l, "cao"))
	}),
	when("Fantasia", func(l string) bool {
		return strings.Contains(l, "fantasia") || (strings.Contains(l, "fic") && strings.Contains(l, "o"))
	}),
	fixed("Faroeste", "faroeste"),
	fixed("Guerra", "guerra"),
	fixed("Aventura", "aventura"),
	fixed("Religiosos", "religio"),
	fixed("Nacionais", "nacion"),
	fixed("Crime", "crime"),
	when("Família", func(l string) bool { return strings.Contains(l, "fam") && strings.Contains(l, "lia") }),
	fixed("Marvel", "marvel", "ucm"),
	fixed("UHD 4K", "4k", "uhd"),
	fixed("Infantil", "infantil"),
	fixed("Esportes", "esporte"),
	fixed("Shows", "show"),
	fixed("Cinema", "cinema"),
	fixed("Oscar", "oscar"),
	fixed("Adultos", "hot", "adult"),
	fixed("Sugestão da Semana", "sugest", "semana"),
	when("Outras Produtoras", func(l string) bool { return strings.Contains(l, "outra") && strings.Contains(l, "produtora") }),
	{
		match: func(l string) bool { return strings.Contains(l, "lançamento") || strings.Contains(l, "lancamento") },
		result: func(_, raw string) string {
			if year := launchYearRe.FindString(raw); year != "" {
				return "Lançamentos " + year
			}
			return "Lançamentos"
		},
	},
	when("Dublagem Não Oficial", func(l string) bool { return strings.Contains(l, "dublagem") && strings.Contains(l, "oficial") }),

	// Franchise collections.
	when("Coletânea: Alien", func(l string) bool { return l == "alien" }),
	fixed("Coletânea: American Pie", "american pie"),
	fixed("Coletânea: John Wick", "john wick", "jhon wick"),
	fixed("Coletânea: Denzel Washington", "denzel"),
	fixed("Coletânea: Mad Max", "mad max"),
	fixed("Coletânea: Homem Aranha", "homem aranha", "aranha"),
	fixed("Coletânea: Jogos Mortais", "jogos mortais"),
	fixed("Coletânea: Jogos Vorazes", "jogos vorazes"),
	fixed("Coletânea: MIB", "mib", "homens de preto"),
	fixed("Coletânea: Exterminador", "exterminador"),
	fixed("Coletânea: Shrek", "shrek"),
	when("Coletânea: Todo Mundo em Pânico", func(l string) bool {
		return strings.Contains(l, "p") && strings.Contains(l, "nico") && strings.Contains(l, "todo")
	}),
	fixed("Coletânea: Toy Story", "toy story"),
	fixed("Coletânea: Harry Potter", "harry potter"),
	when("Coletânea: Senhor dos Anéis", func(l string) bool {
		return strings.Contains(l, "senhor dos") && strings.Contains(l, "an")
	}),
	when("Coletânea: Crepúsculo", func(l string) bool {
		return strings.Contains(l, "crep") && strings.Contains(l, "sculo")
	}),
}

// Normalizer maps free-text category labels to canonical category names.
type Normalizer struct {
	titleCaser *cases.Caser
}

// NewNormalizer builds a Normalizer using the given recapitalization policy.
// An empty policy means first-rune.
func NewNormalizer(recapitalize string) *Normalizer {
	n := &Normalizer{}
	if recapitalize == RecapitalizeTitle {
		caser := cases.Title(language.BrazilianPortuguese)
		n.titleCaser = &caser
	}
	return n
}

// Normalize strips known structural prefixes, then walks the rule chain in
// order. With no match the prefix-stripped label passes through unchanged.
func (n *Normalizer) Normalize(category string) string {
	category = n.stripPrefix(category)

	lower := strings.ToLower(category)
	for _, rule := range categoryRules {
		if rule.match(lower) {
			return rule.result(lower, category)
		}
	}
	return category
}

func (n *Normalizer) stripPrefix(category string) string {
	switch {
	case strings.HasPrefix(category, "OND /"):
		stripped := strings.TrimSpace(strings.TrimPrefix(category, "OND /"))
		stripped = strings.TrimSpace(strings.TrimSuffix(stripped, " -"))
		if stripped == "" {
			return "Filmes"
		}
		return n.recapitalize(stripped)
	case strings.HasPrefix(category, "Series |"):
		stripped := strings.TrimSpace(strings.TrimPrefix(category, "Series |"))
		if stripped == "" {
			return "Séries"
		}
		return stripped
	case strings.HasPrefix(category, "COLETÂNEA:"):
		return strings.TrimSpace(strings.TrimPrefix(category, "COLETÂNEA:"))
	}
	return category
}

func (n *Normalizer) recapitalize(value string) string {
	if n.titleCaser != nil {
		return n.titleCaser.String(value)
	}
	r, size := utf8.DecodeRuneInString(value)
	if r == utf8.RuneError {
		return value
	}
	return string(unicode.ToUpper(r)) + value[size:]
}
