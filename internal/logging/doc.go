// Package logging wires log/slog for the CLI: a console handler for humans, a
// JSON handler for machine consumption, multi-writer output (stdout plus a log
// file under the state directory), and small attr helpers so call sites stay
// terse.
package logging
