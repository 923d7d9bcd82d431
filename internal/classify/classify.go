package classify

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"ordo/internal/services"
)

// Kind distinguishes the two media families ordo organizes.
type Kind string

const (
	KindMovie    Kind = "movie"
	KindSubtitle Kind = "subtitle"
)

// MediaFile describes one classified file. Instances are created during the
// scan pass and never mutated afterwards.
type MediaFile struct {
	AbsolutePath string
	Kind         Kind
	RawName      string
	Title        string
	TitleKey     string
	Size         int64
	ModTime      time.Time
}

var movieExtensions = map[string]struct{}{
	".mp4":  {},
	".mkv":  {},
	".avi":  {},
	".mov":  {},
	".m4v":  {},
	".webm": {},
}

var subtitleExtensions = map[string]struct{}{
	".srt": {},
	".vtt": {},
	".ass": {},
	".ssa": {},
	".sub": {},
	".idx": {},
}

// Classify inspects path and returns a MediaFile, or nil when the extension is
// not recognized. sourceKind is the kind of the source root the file was found
// under; the extension wins when it contradicts it. Unreadable paths yield an
// ErrFileAccess-tagged error the caller is expected to report and skip.
func Classify(path string, sourceKind Kind) (*MediaFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, services.Wrap(services.ErrFileAccess, "classifying", "stat", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, nil
	}

	ext := strings.ToLower(filepath.Ext(path))
	kind := sourceKind
	switch {
	case isMovieExtension(ext):
		kind = KindMovie
	case isSubtitleExtension(ext):
		kind = KindSubtitle
	default:
		return nil, nil
	}

	raw := filepath.Base(path)
	title, key := NormalizeTitle(raw)

	return &MediaFile{
		AbsolutePath: path,
		Kind:         kind,
		RawName:      raw,
		Title:        title,
		TitleKey:     key,
		Size:         info.Size(),
		ModTime:      info.ModTime(),
	}, nil
}

func isMovieExtension(ext string) bool {
	_, ok := movieExtensions[ext]
	return ok
}

func isSubtitleExtension(ext string) bool {
	_, ok := subtitleExtensions[ext]
	return ok
}
