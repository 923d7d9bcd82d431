// Package scanner walks the configured source roots and produces the
// classified file set one run operates on. Directory walks are lexical, so the
// scan order (and everything downstream that depends on first-seen ordering)
// is deterministic. Unreadable entries become warnings and the walk continues;
// only an unusable source root aborts the run. Sources are only ever read.
package scanner
