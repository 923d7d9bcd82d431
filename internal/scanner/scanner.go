package scanner

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"

	"ordo/internal/classify"
	"ordo/internal/config"
	"ordo/internal/logging"
	"ordo/internal/services"
)

// Warning records a source entry that could not be classified. The scan
// continues past it.
type Warning struct {
	Path string
	Err  error
}

// Result is the outcome of one scan pass. Files appear in scan order with
// duplicates (the same absolute path reachable from multiple roots) removed.
type Result struct {
	Files    []classify.MediaFile
	Warnings []Warning
}

// Scanner discovers and classifies media files under configured source roots.
type Scanner struct {
	logger *slog.Logger
}

// New constructs a Scanner.
func New(logger *slog.Logger) *Scanner {
	return &Scanner{logger: logging.WithComponent(logger, "scanner")}
}

// Scan walks every source root in order. A root that cannot be walked at all
// is a configuration error and aborts the scan; per-file failures are
// collected as warnings.
func (s *Scanner) Scan(ctx context.Context, roots []config.SourceRoot) (*Result, error) {
	result := &Result{}
	seen := make(map[string]struct{})

	for _, root := range roots {
		kind := rootKind(root)
		s.logger.Info("scanning source root",
			logging.String("path", root.Path),
			logging.String("kind", string(kind)),
		)

		walkErr := filepath.WalkDir(root.Path, func(path string, entry fs.DirEntry, err error) error {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			if err != nil {
				if path == root.Path {
					return services.Wrap(services.ErrConfiguration, "scanning", "walk source root", root.Path, err)
				}
				result.Warnings = append(result.Warnings, Warning{Path: path, Err: err})
				s.logger.Warn("skipping unreadable entry", logging.String("path", path), logging.Error(err))
				if entry != nil && entry.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if entry.IsDir() {
				return nil
			}

			abs, absErr := filepath.Abs(path)
			if absErr != nil {
				result.Warnings = append(result.Warnings, Warning{Path: path, Err: absErr})
				return nil
			}
			if _, dup := seen[abs]; dup {
				return nil
			}

			mf, classifyErr := classify.Classify(abs, kind)
			if classifyErr != nil {
				result.Warnings = append(result.Warnings, Warning{Path: abs, Err: classifyErr})
				s.logger.Warn("skipping unclassifiable file", logging.String("path", abs), logging.Error(classifyErr))
				return nil
			}
			if mf == nil {
				s.logger.Debug("ignoring unrecognized file", logging.String("path", abs))
				return nil
			}

			seen[abs] = struct{}{}
			result.Files = append(result.Files, *mf)
			return nil
		})
		if walkErr != nil {
			return nil, walkErr
		}
	}

	s.logger.Info("scan complete",
		logging.Int("files", len(result.Files)),
		logging.Int("warnings", len(result.Warnings)),
	)
	return result, nil
}

func rootKind(root config.SourceRoot) classify.Kind {
	if root.Kind == config.SourceKindSubtitle {
		return classify.KindSubtitle
	}
	return classify.KindMovie
}
