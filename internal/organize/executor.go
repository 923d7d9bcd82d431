package organize

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"ordo/internal/config"
	"ordo/internal/fileutil"
	"ordo/internal/logging"
	"ordo/internal/matcher"
	"ordo/internal/services"
)

// CopyResult is the per-group outcome of the execute stage.
type CopyResult struct {
	Group        matcher.MovieGroup
	Status       Status
	FilesCopied  int
	FilesSkipped int
	Err          error
}

// Summary aggregates a batch. A run always ends with these counts, even when
// some groups failed.
type Summary struct {
	Copied          int
	SkippedExisting int
	Failed          int
	Orphaned        int
	Results         []CopyResult
}

// Executor copies movie groups into the destination tree with a bounded
// worker pool. Group subtrees are disjoint by construction, so workers need
// no coordination beyond create-if-absent directory handling.
type Executor struct {
	cfg      *config.Config
	logger   *slog.Logger
	reporter Reporter
}

// NewExecutor constructs the copy stage.
func NewExecutor(cfg *config.Config, logger *slog.Logger, reporter Reporter) *Executor {
	if reporter == nil {
		reporter = NopReporter{}
	}
	return &Executor{
		cfg:      cfg,
		logger:   logging.WithComponent(logger, "organizer"),
		reporter: reporter,
	}
}

// Run plans and copies every group. Orphaned groups are reported and skipped.
// Per-group failures are recorded and the batch continues; cancellation stops
// scheduling new groups and aborts in-flight copies (removing only their
// partially written destination files).
func (e *Executor) Run(ctx context.Context, groups []matcher.MovieGroup) Summary {
	results := make([]CopyResult, len(groups))

	workers := e.cfg.Archive.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(groups) && len(groups) > 0 {
		workers = len(groups)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = e.executeGroup(ctx, groups[idx])
			}
		}()
	}

dispatch:
	for i := range groups {
		if groups[i].Orphaned() {
			results[i] = CopyResult{Group: groups[i], Status: StatusOrphaned}
			e.reporter.Publish(Event{GroupTitle: groups[i].Title, Status: StatusOrphaned})
			e.logger.Warn("orphaned subtitles, nothing to copy",
				logging.String("title", groups[i].Title),
				logging.Int("subtitles", len(groups[i].Subtitles)),
			)
			continue
		}
		select {
		case jobs <- i:
		case <-ctx.Done():
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()

	summary := Summary{Results: results}
	for i := range results {
		if results[i].Status == "" {
			results[i].Status = StatusFailed
			results[i].Err = services.Wrap(services.ErrTransient, "organizing", "execute", "run interrupted before group started", ctx.Err())
			results[i].Group = groups[i]
		}
		switch results[i].Status {
		case StatusCopied:
			summary.Copied++
		case StatusSkippedExisting:
			summary.SkippedExisting++
		case StatusOrphaned:
			summary.Orphaned++
		default:
			summary.Failed++
		}
	}
	return summary
}

func (e *Executor) executeGroup(ctx context.Context, group matcher.MovieGroup) CopyResult {
	plan, err := NewPlan(group, e.cfg.Archive.Destination)
	if err != nil {
		e.reporter.Publish(Event{GroupTitle: group.Title, Status: StatusFailed})
		return CopyResult{Group: group, Status: StatusFailed, Err: err}
	}
	return e.Execute(ctx, plan)
}

// Execute copies one planned group. The movie file goes first; subtitles
// follow into their subdirectory. Already-present files (identical size and
// mtime) are skipped, which makes repeated runs no-ops.
func (e *Executor) Execute(ctx context.Context, plan *Plan) CopyResult {
	result := CopyResult{Group: plan.Group}

	if err := os.MkdirAll(plan.MovieDir, 0o755); err != nil {
		result.Status = StatusFailed
		result.Err = services.Wrap(services.ErrCopy, "organizing", "create destination dir", plan.MovieDir, err)
		e.reporter.Publish(Event{GroupTitle: plan.Group.Title, Status: StatusFailed})
		return result
	}

	if err := e.copyOne(ctx, plan.Group.Title, plan.Group.Movie.AbsolutePath, plan.MoviePath, &result); err != nil {
		result.Status = StatusFailed
		result.Err = err
		return result
	}

	if len(plan.SubtitlePaths) > 0 {
		if err := os.MkdirAll(plan.SubtitleDir, 0o755); err != nil {
			result.Status = StatusFailed
			result.Err = services.Wrap(services.ErrCopy, "organizing", "create subtitle dir", plan.SubtitleDir, err)
			e.reporter.Publish(Event{GroupTitle: plan.Group.Title, Status: StatusFailed})
			return result
		}
		for i, sub := range plan.Group.Subtitles {
			if err := e.copyOne(ctx, plan.Group.Title, sub.AbsolutePath, plan.SubtitlePaths[i], &result); err != nil {
				result.Status = StatusFailed
				result.Err = err
				return result
			}
		}
	}

	if result.FilesCopied == 0 {
		result.Status = StatusSkippedExisting
		e.logger.Info("group already archived",
			logging.String("title", plan.Group.Title),
			logging.Int("files", result.FilesSkipped),
		)
	} else {
		result.Status = StatusCopied
		e.logger.Info("group archived",
			logging.String("title", plan.Group.Title),
			logging.Int("copied", result.FilesCopied),
			logging.Int("skipped", result.FilesSkipped),
		)
	}
	return result
}

// copyOne copies a single file unless the destination already fingerprints
// identical to the source. Only destination paths are ever written.
func (e *Executor) copyOne(ctx context.Context, title, src, dst string, result *CopyResult) error {
	same, err := fileutil.SameFingerprint(src, dst)
	if err != nil {
		e.reporter.Publish(Event{GroupTitle: title, File: dst, Status: StatusFailed})
		return services.Wrap(services.ErrCopy, "organizing", "fingerprint", dst, err)
	}
	if same {
		result.FilesSkipped++
		e.reporter.Publish(Event{GroupTitle: title, File: dst, Status: StatusSkippedExisting})
		return nil
	}

	copyFn := fileutil.CopyFile
	if e.cfg.Archive.VerifyChecksums {
		copyFn = fileutil.CopyFileVerified
	}
	if err := copyFn(ctx, src, dst); err != nil {
		e.reporter.Publish(Event{GroupTitle: title, File: dst, Status: StatusFailed})
		return services.Wrap(services.ErrCopy, "organizing", "copy", fmt.Sprintf("%s -> %s", src, dst), err)
	}

	result.FilesCopied++
	e.reporter.Publish(Event{GroupTitle: title, File: dst, Status: StatusCopied})
	return nil
}
