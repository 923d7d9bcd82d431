package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ordo/internal/config"
)

func newDestinationCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "destination [path]",
		Short: "Show or set the archive destination directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				if cfg.Archive.Destination == "" {
					fmt.Fprintln(out, "No destination configured.")
					return nil
				}
				fmt.Fprintln(out, cfg.Archive.Destination)
				return nil
			}

			path, err := config.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve destination path: %w", err)
			}
			cfg.Archive.Destination = path
			if err := cfg.Save(ctx.configPath); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			fmt.Fprintf(out, "Destination set to %s\n", path)
			return nil
		},
	}
}
