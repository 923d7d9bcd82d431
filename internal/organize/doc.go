// Package organize computes destination plans and performs the copy stage.
//
// The destination layout is a pure function of (destination root, tag,
// normalized title, original filename):
//
//	root/<tag>/<title>/<movie filename>
//	root/<tag>/<title>/subtitles/<subtitle filename>
//
// which makes group subtrees disjoint and lets groups copy in parallel with
// no locking. Copies are idempotent: a destination file whose size and mtime
// match the source is skipped. Sources are never written, moved, or deleted,
// on any code path. Each group succeeds or fails on its own; one group's disk
// or permission failure never aborts the batch.
package organize
