// Package textutil provides text normalization helpers shared across the
// pipeline: filesystem-safe sanitization for tags and folder names, and
// whitespace collapsing for user-supplied input.
package textutil
