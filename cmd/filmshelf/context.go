package main

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"filmshelf/internal/config"
	"filmshelf/internal/library"
	"filmshelf/internal/logging"
	"filmshelf/internal/omdb"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
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

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

// openStore opens the collection store; the caller owns closing it.
func (c *commandContext) openStore() (*library.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	return library.Open(cfg, logger)
}

// metadataClient builds the OMDb client, or returns nil when no API key is
// configured. The session reports the missing key only when a lookup is
// attempted.
func (c *commandContext) metadataClient() (omdb.Fetcher, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(cfg.OMDB.APIKey) == "" {
		return nil, nil
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	client, err := omdb.New(
		cfg.OMDB.APIKey,
		cfg.OMDB.BaseURL,
		omdb.WithTimeout(time.Duration(cfg.OMDB.TimeoutSeconds)*time.Second),
		omdb.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}
	return client, nil
}
