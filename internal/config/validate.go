package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is structurally usable. It intentionally
// tolerates an empty source list and destination so management commands
// (sources add, destination, config init) can run against a fresh install;
// commands that execute a run call ValidateForRun as well.
func (c *Config) Validate() error {
	for i, src := range c.Sources {
		if strings.TrimSpace(src.Path) == "" {
			return fmt.Errorf("sources[%d].path must be set", i)
		}
		if src.Kind != SourceKindMovie && src.Kind != SourceKindSubtitle {
			return fmt.Errorf("sources[%d].kind must be %q or %q, got %q", i, SourceKindMovie, SourceKindSubtitle, src.Kind)
		}
	}
	if c.Archive.Workers <= 0 {
		return errors.New("archive.workers must be positive")
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
	return nil
}

// ValidateForRun checks the preconditions for scanning and organizing: at
// least one source root and a destination. These failures abort the run before
// any scan begins.
func (c *Config) ValidateForRun() error {
	if len(c.Sources) == 0 {
		return errors.New("no sources configured; add one with 'ordo sources add PATH --kind movie'")
	}
	if strings.TrimSpace(c.Archive.Destination) == "" {
		return errors.New("archive.destination must be set; use 'ordo destination PATH'")
	}
	return nil
}
