package textutil

import "strings"

// reservedReplacer maps filesystem-reserved characters to underscores so tag
// and title values stay valid as single path components on common filesystems.
var reservedReplacer = strings.NewReplacer(
	"/", "_",
	"\\", "_",
	":", "_",
	"*", "_",
	"?", "_",
	"\"", "_",
	"<", "_",
	">", "_",
	"|", "_",
)

// SanitizePathComponent replaces filesystem-reserved characters with
// underscores and trims surrounding whitespace. Returns "" when nothing
// usable remains, letting callers fall back to a default.
func SanitizePathComponent(name string) string {
	name = strings.TrimSpace(reservedReplacer.Replace(name))
	return strings.Trim(name, "._")
}

// CollapseWhitespace trims the string and folds internal whitespace runs into
// single spaces.
func CollapseWhitespace(value string) string {
	return strings.Join(strings.Fields(value), " ")
}
