package config

const (
	defaultStateDir   = "~/.local/share/ordo"
	defaultDefaultTag = "Unsorted"
	defaultWorkers    = 4
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Archive: Archive{
			DefaultTag: defaultDefaultTag,
			Workers:    defaultWorkers,
		},
		Paths: Paths{
			StateDir: defaultStateDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
