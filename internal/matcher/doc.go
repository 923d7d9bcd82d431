// Package matcher joins the classified file set into movie groups: one movie
// file plus the subtitle files sharing its normalized title key. Duplicate
// movies for a key are first-seen-wins and reported, never silently dropped.
// Subtitle-only partitions become orphaned groups that the organizer skips.
package matcher
