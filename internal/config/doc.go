// Package config loads, validates, and normalizes m3ucat configuration.
//
// Configuration lives in a TOML file resolved from the --config flag, then
// ~/.config/m3ucat/config.toml, then ./m3ucat.toml. A missing file is not an
// error; defaults apply. All path fields are expanded (~ and relative paths)
// during load so the rest of the pipeline only sees absolute paths.
package config
