// Package config loads, validates, and persists the ordo configuration file.
//
// The configuration is TOML with three sections plus an ordered list of source
// roots:
//   - [[sources]]: directories scanned for movie or subtitle files
//   - [archive]: destination root, default tag, worker count, verification
//   - [paths]: state directory for logs, lock file, and the run journal
//   - [logging]: output format and level
//
// Load applies defaults, expands ~ paths, and validates structure. Commands
// that execute a run additionally call ValidateForRun, which requires at least
// one source and a destination. Save writes atomically (temp file + rename) so
// a crash cannot truncate the config.
package config
