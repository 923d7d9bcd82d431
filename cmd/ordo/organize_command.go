package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"ordo/internal/config"
	"ordo/internal/history"
	"ordo/internal/logging"
	"ordo/internal/matcher"
	"ordo/internal/organize"
	"ordo/internal/scanner"
	"ordo/internal/tags"
)

func newOrganizeCommand(ctx *commandContext) *cobra.Command {
	var tagFlag string
	var yesFlag bool
	var dryRunFlag bool
	var workersFlag int
	var verifyFlag bool

	cmd := &cobra.Command{
		Use:   "organize",
		Short: "Scan sources and copy movie groups into the destination",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if workersFlag > 0 {
				cfg.Archive.Workers = workersFlag
			}
			if verifyFlag {
				cfg.Archive.VerifyChecksums = true
			}
			if err := cfg.ValidateForRun(); err != nil {
				return err
			}

			logger, err := logging.New(logging.Options{
				Level:       cfg.Logging.Level,
				Format:      cfg.Logging.Format,
				OutputPaths: []string{cfg.LogPath()},
			})
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			lock := flock.New(cfg.LockPath())
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire run lock: %w", err)
			}
			if !locked {
				return fmt.Errorf("another ordo run is already in progress (lock %s)", cfg.LockPath())
			}
			defer func() { _ = lock.Unlock() }()

			signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			out := cmd.OutOrStdout()
			result, err := scanner.New(logger).Scan(signalCtx, cfg.Sources)
			if err != nil {
				return fmt.Errorf("scan sources: %w", err)
			}
			printWarnings(cmd.ErrOrStderr(), result.Warnings)

			grouped := matcher.Group(result.Files)
			printDuplicates(out, grouped.Duplicates)
			if len(grouped.Groups) == 0 {
				fmt.Fprintln(out, "No media files found in the configured sources.")
				return nil
			}

			// One reader for the whole run so type-ahead buffered during the
			// tag prompts is still available to the confirmation.
			interactive := interactiveTerminal() && !yesFlag
			var reader *bufio.Reader
			if interactive {
				reader = bufio.NewReader(cmd.InOrStdin())
			}
			groups := assignTags(reader, out, grouped.Groups, tagFlag, cfg.Archive.DefaultTag, interactive && tagFlag == "")

			if dryRunFlag {
				return printPlanPreview(out, cfg, groups)
			}

			if interactive {
				question := fmt.Sprintf("Archive %d group(s) into %s?", countCopyable(groups), cfg.Archive.Destination)
				if !confirm(reader, out, question) {
					fmt.Fprintln(out, "Aborted.")
					return nil
				}
			}

			store, err := history.Open(cfg)
			if err != nil {
				return fmt.Errorf("open history journal: %w", err)
			}
			defer func() { _ = store.Close() }()

			runID, err := store.BeginRun(signalCtx, cfg.Archive.Destination)
			if err != nil {
				return fmt.Errorf("journal run start: %w", err)
			}

			var reporter organize.Reporter
			var progress *progressReporter
			if isTerminal(os.Stderr) {
				progress = newProgressReporter(countFiles(groups))
				reporter = progress
			}

			summary := organize.NewExecutor(cfg, logger, reporter).Run(signalCtx, groups)
			if progress != nil {
				progress.finish()
			}

			journalResults(cmd.ErrOrStderr(), store, runID, summary)
			printSummary(out, summary)

			if err := signalCtx.Err(); err != nil {
				return context.Canceled
			}
			if summary.Failed > 0 {
				return fmt.Errorf("%d group(s) failed; see %s", summary.Failed, cfg.LogPath())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&tagFlag, "tag", "t", "", "Tag applied to every group (skips per-group prompts)")
	cmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "Accept default tags and skip confirmation")
	cmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Show what would be copied without writing anything")
	cmd.Flags().IntVar(&workersFlag, "workers", 0, "Number of concurrent group workers (overrides config)")
	cmd.Flags().BoolVar(&verifyFlag, "verify", false, "Verify copies with a checksum comparison")
	return cmd
}

// assignTags resolves the tag for every group, prompting per group when the
// run is interactive and no --tag was supplied. reader may be nil when prompt
// is false.
func assignTags(reader *bufio.Reader, out io.Writer, groups []matcher.MovieGroup, requested, defaultTag string, prompt bool) []matcher.MovieGroup {
	assigned := make([]matcher.MovieGroup, 0, len(groups))
	for _, group := range groups {
		if group.Orphaned() {
			assigned = append(assigned, tags.Assign(group, requested, defaultTag))
			continue
		}
		value := requested
		if prompt {
			fallback := tags.Resolve(requested, defaultTag)
			value = promptLine(reader, out, fmt.Sprintf("Tag for %q", group.Title), fallback)
		}
		assigned = append(assigned, tags.Assign(group, value, defaultTag))
	}
	return assigned
}

func printPlanPreview(out io.Writer, cfg *config.Config, groups []matcher.MovieGroup) error {
	rows := make([][]string, 0, len(groups))
	for i := range groups {
		group := groups[i]
		if group.Orphaned() {
			rows = append(rows, []string{group.Title, group.Tag, strconv.Itoa(len(group.Subtitles)), "-", "orphaned, skipped"})
			continue
		}
		plan, err := organize.NewPlan(group, cfg.Archive.Destination)
		if err != nil {
			return fmt.Errorf("plan %q: %w", group.Title, err)
		}
		status := "copy"
		if plan.AlreadyExists {
			status = "up to date"
		}
		rows = append(rows, []string{
			group.Title,
			group.Tag,
			strconv.Itoa(1 + len(group.Subtitles)),
			plan.MovieDir,
			status,
		})
	}
	fmt.Fprintln(out, renderTable([]string{"TITLE", "TAG", "FILES", "DESTINATION", "ACTION"}, rows, 2))
	return nil
}

func printWarnings(out io.Writer, warnings []scanner.Warning) {
	for _, warning := range warnings {
		fmt.Fprintf(out, "warn: %s: %v\n", warning.Path, warning.Err)
	}
}

func printDuplicates(out io.Writer, duplicates []matcher.Duplicate) {
	for _, dup := range duplicates {
		fmt.Fprintf(out, "Duplicate title %q: keeping %s, ignoring %s\n", dup.TitleKey, dup.Kept, dup.Skipped)
	}
}

func printSummary(out io.Writer, summary organize.Summary) {
	rows := make([][]string, 0, len(summary.Results))
	for _, result := range summary.Results {
		detail := ""
		if result.Err != nil {
			detail = result.Err.Error()
		}
		rows = append(rows, []string{
			result.Group.Title,
			result.Group.Tag,
			string(result.Status),
			strconv.Itoa(result.FilesCopied),
			strconv.Itoa(result.FilesSkipped),
			detail,
		})
	}
	fmt.Fprintln(out, renderTable([]string{"TITLE", "TAG", "STATUS", "COPIED", "SKIPPED", "DETAIL"}, rows, 3, 4))
	fmt.Fprintf(out, "Copied %d, up to date %d, failed %d, orphaned %d\n",
		summary.Copied, summary.SkippedExisting, summary.Failed, summary.Orphaned)
}

// journalResults is best effort; a journaling failure must not mask the copy
// outcome.
func journalResults(errOut io.Writer, store *history.Store, runID string, summary organize.Summary) {
	ctx := context.Background()
	for _, result := range summary.Results {
		record := history.GroupRecord{
			RunID:        runID,
			Title:        result.Group.Title,
			Tag:          result.Group.Tag,
			Status:       string(result.Status),
			FilesCopied:  result.FilesCopied,
			FilesSkipped: result.FilesSkipped,
		}
		if result.Err != nil {
			record.Detail = result.Err.Error()
		}
		if err := store.RecordGroup(ctx, record); err != nil {
			fmt.Fprintf(errOut, "warn: journal group %q: %v\n", result.Group.Title, err)
		}
	}
	if err := store.FinishRun(ctx, runID, summary.Copied, summary.SkippedExisting, summary.Failed, summary.Orphaned); err != nil {
		fmt.Fprintf(errOut, "warn: journal run finish: %v\n", err)
	}
}

func countCopyable(groups []matcher.MovieGroup) int {
	count := 0
	for i := range groups {
		if !groups[i].Orphaned() {
			count++
		}
	}
	return count
}

func countFiles(groups []matcher.MovieGroup) int {
	count := 0
	for i := range groups {
		if groups[i].Orphaned() {
			continue
		}
		count += 1 + len(groups[i].Subtitles)
	}
	return count
}
