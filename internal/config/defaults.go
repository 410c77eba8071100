package config

const (
	defaultOutputDir       = "~/.local/share/m3ucat/catalog"
	defaultHistoryDir      = "~/.local/share/m3ucat"
	defaultMaxItemsPerPage = 5000
	defaultFormatVersion   = 2
	defaultRecapitalize    = RecapitalizeFirstRune
	defaultLogLevel        = "info"
)

// Recapitalization policies accepted by policy.recapitalize.
const (
	RecapitalizeFirstRune = "first-rune"
	RecapitalizeTitle     = "title"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir:  defaultOutputDir,
			HistoryDir: defaultHistoryDir,
		},
		Catalog: Catalog{
			MaxItemsPerPage: defaultMaxItemsPerPage,
			FormatVersion:   defaultFormatVersion,
		},
		Policy: Policy{
			AdultMatchFold: false,
			Recapitalize:   defaultRecapitalize,
		},
		History: History{
			Enabled: true,
		},
		Logging: Logging{
			Level: defaultLogLevel,
		},
	}
}
