package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"costar/internal/api"
	"costar/internal/config"
	"costar/internal/history"
	"costar/internal/logging"
	"costar/internal/tmdb"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	serviceOnce sync.Once
	logger      *slog.Logger
	history     *history.Store
	service     *api.Service
	serviceErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) configPath() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(c.configPath())
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureService builds the logger, TMDB client, history store and service
// on first use.
func (c *commandContext) ensureService() (*api.Service, error) {
	c.serviceOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.serviceErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.serviceErr = fmt.Errorf("init logging: %w", err)
			return
		}
		c.logger = logger

		client, err := tmdb.NewFromConfig(cfg, logger)
		if err != nil {
			c.serviceErr = err
			return
		}

		var store api.HistoryStore
		if cfg.History.Enabled {
			hs, err := history.Open(cfg.History.Path)
			if err != nil {
				c.serviceErr = fmt.Errorf("open history: %w", err)
				return
			}
			c.history = hs
			store = hs
		}
		c.service = api.NewService(cfg, client, store, logger)
	})
	return c.service, c.serviceErr
}

// ensureHistory opens the history store without building the TMDB client.
func (c *commandContext) ensureHistory() (*history.Store, error) {
	if c.history != nil {
		return c.history, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if !cfg.History.Enabled {
		return nil, api.ErrHistoryDisabled
	}
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	c.history = store
	return store, nil
}

func (c *commandContext) close() error {
	if c.history == nil {
		return nil
	}
	err := c.history.Close()
	c.history = nil
	return err
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

// userError rewrites well-known failures into messages for the terminal.
func userError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, api.ErrHistoryDisabled):
		return errors.New("history is disabled; set [history] enabled = true in the config")
	}
	return err
}
