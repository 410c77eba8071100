package config

import (
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validatePolicy(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateCatalog() error {
	if c.Catalog.MaxItemsPerPage < 1 {
		return fmt.Errorf("catalog.max_items_per_page must be positive, got %d", c.Catalog.MaxItemsPerPage)
	}
	if c.Catalog.FormatVersion < 1 {
		return fmt.Errorf("catalog.format_version must be positive, got %d", c.Catalog.FormatVersion)
	}
	return nil
}

func (c *Config) validatePolicy() error {
	switch c.Policy.Recapitalize {
	case RecapitalizeFirstRune, RecapitalizeTitle:
		return nil
	default:
		return fmt.Errorf("policy.recapitalize must be %q or %q, got %q",
			RecapitalizeFirstRune, RecapitalizeTitle, c.Policy.Recapitalize)
	}
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level %q is not a known level", c.Logging.Level)
	}
}
