package organize

import (
	"fmt"
	"path/filepath"
	"strings"

	"ordo/internal/fileutil"
	"ordo/internal/matcher"
	"ordo/internal/services"
	"ordo/internal/textutil"
)

// subtitleSubdir is the fixed folder name for a group's subtitle files.
const subtitleSubdir = "subtitles"

// Plan is the computed destination layout for one group. It is ephemeral:
// built immediately before the copy and never persisted.
type Plan struct {
	Group         matcher.MovieGroup
	MovieDir      string
	MoviePath     string
	SubtitleDir   string
	SubtitlePaths []string
	AlreadyExists bool
}

// NewPlan computes the destination paths for a tagged group. Orphaned groups
// have nothing to anchor a folder name to and are rejected with a validation
// error. AlreadyExists is set when the destination movie file fingerprints
// identical to the source.
func NewPlan(group matcher.MovieGroup, destinationRoot string) (*Plan, error) {
	if group.Orphaned() {
		return nil, services.Wrap(services.ErrValidation, "organizing", "plan", "orphaned subtitle group has no movie to anchor a destination", nil)
	}
	if strings.TrimSpace(destinationRoot) == "" {
		return nil, services.Wrap(services.ErrConfiguration, "organizing", "plan", "destination root not configured", nil)
	}
	tag := textutil.SanitizePathComponent(group.Tag)
	if tag == "" {
		return nil, services.Wrap(services.ErrValidation, "organizing", "plan", "group has no usable tag", nil)
	}
	title := textutil.SanitizePathComponent(group.Title)
	if title == "" {
		title = textutil.SanitizePathComponent(group.TitleKey)
	}
	if title == "" {
		return nil, services.Wrap(services.ErrValidation, "organizing", "plan", "group has no usable title", nil)
	}

	movieDir := filepath.Join(destinationRoot, tag, title)
	plan := &Plan{
		Group:       group,
		MovieDir:    movieDir,
		MoviePath:   filepath.Join(movieDir, group.Movie.RawName),
		SubtitleDir: filepath.Join(movieDir, subtitleSubdir),
	}
	// Subtitles from different source directories can share a basename.
	// Later ones get a numeric suffix so no copy overwrites an earlier one;
	// scan order is deterministic, so the suffixes are stable across runs.
	used := make(map[string]struct{}, len(group.Subtitles))
	for _, sub := range group.Subtitles {
		name := sub.RawName
		if _, taken := used[name]; taken {
			ext := filepath.Ext(sub.RawName)
			stem := strings.TrimSuffix(sub.RawName, ext)
			for n := 2; ; n++ {
				candidate := fmt.Sprintf("%s.%d%s", stem, n, ext)
				if _, dup := used[candidate]; !dup {
					name = candidate
					break
				}
			}
		}
		used[name] = struct{}{}
		plan.SubtitlePaths = append(plan.SubtitlePaths, filepath.Join(plan.SubtitleDir, name))
	}

	same, err := fileutil.SameFingerprint(group.Movie.AbsolutePath, plan.MoviePath)
	if err != nil {
		return nil, services.Wrap(services.ErrFileAccess, "organizing", "plan", "fingerprint destination", err)
	}
	plan.AlreadyExists = same
	return plan, nil
}
