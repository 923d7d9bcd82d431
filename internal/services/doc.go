// Package services defines shared error-handling utilities consumed by the
// pipeline stages.
//
// Key responsibilities:
//   - Structured error markers plus the Wrap helper that tag failures with a
//     category the caller can classify (skip, continue, abort).
//   - The Fatal predicate that decides whether a failure aborts the whole run
//     (configuration problems) or is recovered locally (everything else).
//
// Use these helpers when wiring new stage logic so operational behaviour stays
// uniform across the pipeline.
package services
