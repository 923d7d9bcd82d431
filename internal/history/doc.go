// Package history persists a journal of organize runs in SQLite: one row per
// run with its summary counts, one row per movie group with its outcome. The
// journal lives in the state directory and replaces per-folder metadata
// sidecars, keeping the archive tree free of bookkeeping files.
package history
