// Package tags resolves the category label placed at the top of the
// destination layout. Requested tags are trimmed, whitespace-collapsed, and
// made filesystem-safe; anything that sanitizes away falls back to the
// configured default.
package tags
