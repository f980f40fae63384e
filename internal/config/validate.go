package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTMDB(); err != nil {
		return err
	}
	if err := c.validateSearch(); err != nil {
		return err
	}
	if err := c.validateServer(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateTMDB() error {
	if c.TMDB.APIKey == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = defaultConfigPath
		}
		return fmt.Errorf("tmdb.api_key is required. Set TMDB_API_KEY env var or edit %s (create with 'costar config init')", defaultPath)
	}
	if _, err := url.ParseRequestURI(c.TMDB.BaseURL); err != nil {
		return fmt.Errorf("tmdb.base_url: %w", err)
	}
	if c.TMDB.RequestsPerSecond < 0 {
		return errors.New("tmdb.requests_per_second must not be negative")
	}
	return nil
}

func (c *Config) validateSearch() error {
	if c.Search.MaxResults > 20 {
		return errors.New("search.max_results must be at most 20 (one TMDB page)")
	}
	return nil
}

func (c *Config) validateServer() error {
	if _, _, err := net.SplitHostPort(c.Server.Bind); err != nil {
		return fmt.Errorf("server.bind: %w", err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
}
