package tags

import (
	"ordo/internal/matcher"
	"ordo/internal/textutil"
)

// fallbackTag guards against a default_tag that itself sanitizes to nothing.
const fallbackTag = "Unsorted"

// Assign returns the group with its tag resolved from the requested value and
// the configured default. It never mutates its input.
func Assign(group matcher.MovieGroup, requested, defaultTag string) matcher.MovieGroup {
	group.Tag = Resolve(requested, defaultTag)
	return group
}

// Resolve normalizes the requested tag and falls back to defaultTag when the
// request is empty or sanitizes to nothing.
func Resolve(requested, defaultTag string) string {
	if tag := normalize(requested); tag != "" {
		return tag
	}
	if tag := normalize(defaultTag); tag != "" {
		return tag
	}
	return fallbackTag
}

func normalize(value string) string {
	return textutil.SanitizePathComponent(textutil.CollapseWhitespace(value))
}
