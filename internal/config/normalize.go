package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeCatalog()
	c.normalizePolicy()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.OutputDir, err = ExpandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if c.Paths.HistoryDir, err = ExpandPath(c.Paths.HistoryDir); err != nil {
		return fmt.Errorf("paths.history_dir: %w", err)
	}
	for i, playlist := range c.Inputs.Playlists {
		expanded, err := ExpandPath(strings.TrimSpace(playlist))
		if err != nil {
			return fmt.Errorf("inputs.playlists[%d]: %w", i, err)
		}
		c.Inputs.Playlists[i] = expanded
	}
	if c.History.Path == "" {
		c.History.Path = filepath.Join(c.Paths.HistoryDir, "history.db")
	} else {
		expanded, err := ExpandPath(c.History.Path)
		if err != nil {
			return fmt.Errorf("history.path: %w", err)
		}
		c.History.Path = expanded
	}
	return nil
}

func (c *Config) normalizeCatalog() {
	if c.Catalog.MaxItemsPerPage == 0 {
		c.Catalog.MaxItemsPerPage = defaultMaxItemsPerPage
	}
	if c.Catalog.FormatVersion == 0 {
		c.Catalog.FormatVersion = defaultFormatVersion
	}
}

func (c *Config) normalizePolicy() {
	c.Policy.Recapitalize = strings.ToLower(strings.TrimSpace(c.Policy.Recapitalize))
	if c.Policy.Recapitalize == "" {
		c.Policy.Recapitalize = defaultRecapitalize
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
