// Package classify decides whether a discovered file is a movie, a subtitle,
// or noise, and derives the normalized title used to match subtitles to their
// parent movie.
//
// Classification is extension-driven against fixed allow-lists; the source
// root's kind is only a default and is overridden when the extension
// contradicts it (an .srt under a movie root is a subtitle). Unrecognized
// extensions are ignored rather than treated as errors. Title normalization
// strips release noise (resolution and codec tokens, bracketed metadata,
// episode markers) and collapses separators; the original casing is preserved
// for display and destination paths while matching uses a case-folded key.
package classify
