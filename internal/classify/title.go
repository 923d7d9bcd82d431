package classify

import (
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

var (
	// Bracketed release metadata like [YTS.MX] or [1080p] is dropped wholesale.
	bracketPattern = regexp.MustCompile(`\[[^\]]*\]`)
	// Separators commonly used instead of spaces in release names.
	separatorPattern = regexp.MustCompile(`[._\-()]+`)
	// Episode markers such as S01E02, S1 E2, s01.e02. The marker and anything
	// after it is cut so a season's episodes share one title key.
	episodePattern = regexp.MustCompile(`(?i)(^|\s)s\d{1,2}\s?e\d{1,3}\b.*$`)
	// Resolution tokens: 480p, 720p, 1080p, 2160p.
	resolutionPattern = regexp.MustCompile(`(?i)^\d{3,4}p$`)
)

// noiseTokens are release-tag and subtitle-language tokens that never belong
// to a title. Comparison is against the lowercased token.
var noiseTokens = map[string]struct{}{
	"x264": {}, "x265": {}, "h264": {}, "h265": {}, "hevc": {}, "avc": {},
	"xvid": {}, "divx": {}, "aac": {}, "ac3": {}, "dts": {},
	"webrip": {}, "webdl": {}, "bluray": {}, "brrip": {}, "bdrip": {},
	"dvdrip": {}, "hdrip": {}, "hdtv": {}, "remux": {},
	"yify": {}, "yts": {}, "rarbg": {},
	"proper": {}, "repack": {}, "extended": {}, "unrated": {},
	"10bit": {}, "8bit": {}, "hdr": {}, "uhd": {},
	"eng": {}, "english": {}, "kor": {}, "korean": {}, "chs": {}, "cht": {},
	"jpn": {}, "forced": {}, "sdh": {},
}

// NormalizeTitle derives the display title and the case-insensitive matching
// key from a raw filename. The display form keeps the original casing with
// separators collapsed to single spaces; the key is the Unicode case-folded
// display form.
func NormalizeTitle(rawName string) (display, key string) {
	name := strings.TrimSuffix(rawName, filepath.Ext(rawName))
	name = bracketPattern.ReplaceAllString(name, " ")
	name = separatorPattern.ReplaceAllString(name, " ")
	name = episodePattern.ReplaceAllString(name, "")

	fields := strings.Fields(name)
	kept := make([]string, 0, len(fields))
	for _, field := range fields {
		lowered := strings.ToLower(field)
		if resolutionPattern.MatchString(field) {
			continue
		}
		if _, noisy := noiseTokens[lowered]; noisy {
			continue
		}
		kept = append(kept, field)
	}
	if len(kept) == 0 {
		// Everything looked like noise; better an odd title than none.
		kept = fields
	}

	display = strings.Join(kept, " ")
	if display == "" {
		display = "Untitled"
	}
	key = cases.Fold().String(display)
	return display, key
}
