package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeSources(); err != nil {
		return err
	}
	c.normalizeArchive()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}
	if c.Paths.StateDir, err = ExpandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeSources() error {
	for i := range c.Sources {
		expanded, err := ExpandPath(strings.TrimSpace(c.Sources[i].Path))
		if err != nil {
			return fmt.Errorf("sources[%d].path: %w", i, err)
		}
		c.Sources[i].Path = expanded
		c.Sources[i].Kind = strings.ToLower(strings.TrimSpace(c.Sources[i].Kind))
	}
	return nil
}

func (c *Config) normalizeArchive() {
	c.Archive.Destination = strings.TrimSpace(c.Archive.Destination)
	if c.Archive.Destination != "" {
		if expanded, err := ExpandPath(c.Archive.Destination); err == nil {
			c.Archive.Destination = expanded
		}
	}
	c.Archive.DefaultTag = strings.TrimSpace(c.Archive.DefaultTag)
	if c.Archive.DefaultTag == "" {
		c.Archive.DefaultTag = defaultDefaultTag
	}
	if c.Archive.Workers <= 0 {
		c.Archive.Workers = defaultWorkers
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
