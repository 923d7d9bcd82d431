package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"ordo/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limitFlag int

	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "Show recent organize runs, or the groups of one run",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := history.Open(cfg)
			if err != nil {
				return fmt.Errorf("open history journal: %w", err)
			}
			defer func() { _ = store.Close() }()

			out := cmd.OutOrStdout()
			if len(args) == 1 {
				return printRunGroups(cmd, store, args[0])
			}

			runs, err := store.RecentRuns(cmd.Context(), limitFlag)
			if err != nil {
				return fmt.Errorf("load runs: %w", err)
			}
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded yet.")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				finished := "interrupted"
				if run.Finished() {
					finished = run.FinishedAt.Local().Format(time.DateTime)
				}
				rows = append(rows, []string{
					run.ID,
					run.StartedAt.Local().Format(time.DateTime),
					finished,
					run.Destination,
					strconv.Itoa(run.Copied),
					strconv.Itoa(run.Skipped),
					strconv.Itoa(run.Failed),
					strconv.Itoa(run.Orphaned),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"RUN", "STARTED", "FINISHED", "DESTINATION", "COPIED", "SKIPPED", "FAILED", "ORPHANED"},
				rows, 4, 5, 6, 7))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limitFlag, "limit", "n", 20, "Maximum number of runs to show")
	return cmd
}

func printRunGroups(cmd *cobra.Command, store *history.Store, runID string) error {
	groups, err := store.GroupsForRun(cmd.Context(), runID)
	if err != nil {
		return fmt.Errorf("load run groups: %w", err)
	}
	out := cmd.OutOrStdout()
	if len(groups) == 0 {
		fmt.Fprintf(out, "No groups recorded for run %s.\n", runID)
		return nil
	}
	rows := make([][]string, 0, len(groups))
	for _, group := range groups {
		rows = append(rows, []string{
			group.Title,
			group.Tag,
			group.Status,
			strconv.Itoa(group.FilesCopied),
			strconv.Itoa(group.FilesSkipped),
			group.Detail,
		})
	}
	fmt.Fprintln(out, renderTable([]string{"TITLE", "TAG", "STATUS", "COPIED", "SKIPPED", "DETAIL"}, rows, 3, 4))
	return nil
}
