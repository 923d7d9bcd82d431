package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"ordo/internal/logging"
	"ordo/internal/matcher"
	"ordo/internal/scanner"
	"ordo/internal/tags"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Scan sources and show the resulting movie groups without copying",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if len(cfg.Sources) == 0 {
				return fmt.Errorf("no sources configured; add one with `ordo sources add`")
			}

			result, err := scanner.New(logging.NewNop()).Scan(cmd.Context(), cfg.Sources)
			if err != nil {
				return fmt.Errorf("scan sources: %w", err)
			}
			out := cmd.OutOrStdout()
			printWarnings(cmd.ErrOrStderr(), result.Warnings)

			grouped := matcher.Group(result.Files)
			printDuplicates(out, grouped.Duplicates)
			if len(grouped.Groups) == 0 {
				fmt.Fprintln(out, "No media files found in the configured sources.")
				return nil
			}

			rows := make([][]string, 0, len(grouped.Groups))
			for i := range grouped.Groups {
				group := grouped.Groups[i]
				movie := "-"
				status := "orphaned"
				if !group.Orphaned() {
					movie = group.Movie.RawName
					status = "ready"
				}
				rows = append(rows, []string{
					group.Title,
					tags.Resolve("", cfg.Archive.DefaultTag),
					movie,
					strconv.Itoa(len(group.Subtitles)),
					status,
				})
			}
			fmt.Fprintln(out, renderTable([]string{"TITLE", "DEFAULT TAG", "MOVIE", "SUBTITLES", "STATUS"}, rows, 3))
			fmt.Fprintf(out, "%d file(s) in %d group(s)\n", len(result.Files), len(grouped.Groups))
			return nil
		},
	}
}
