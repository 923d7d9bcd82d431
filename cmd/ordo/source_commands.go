package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"ordo/internal/config"
)

func newSourcesCommand(ctx *commandContext) *cobra.Command {
	sourcesCmd := &cobra.Command{
		Use:   "sources",
		Short: "Manage the source directories ordo scans",
	}

	sourcesCmd.AddCommand(newSourcesListCommand(ctx))
	sourcesCmd.AddCommand(newSourcesAddCommand(ctx))
	sourcesCmd.AddCommand(newSourcesRemoveCommand(ctx))

	return sourcesCmd
}

func newSourcesListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured source directories",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(cfg.Sources) == 0 {
				fmt.Fprintln(out, "No sources configured.")
				return nil
			}
			rows := make([][]string, 0, len(cfg.Sources))
			for i, source := range cfg.Sources {
				rows = append(rows, []string{strconv.Itoa(i + 1), source.Path, source.Kind})
			}
			fmt.Fprintln(out, renderTable([]string{"#", "PATH", "KIND"}, rows, 0))
			return nil
		},
	}
}

func newSourcesAddCommand(ctx *commandContext) *cobra.Command {
	var kindFlag string

	cmd := &cobra.Command{
		Use:   "add <path>",
		Short: "Add a source directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			kind := strings.ToLower(strings.TrimSpace(kindFlag))
			if kind != config.SourceKindMovie && kind != config.SourceKindSubtitle {
				return fmt.Errorf("source kind must be %q or %q, got %q", config.SourceKindMovie, config.SourceKindSubtitle, kindFlag)
			}
			path, err := config.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve source path: %w", err)
			}
			for _, source := range cfg.Sources {
				if source.Path == path {
					return fmt.Errorf("source %s is already configured (kind %s)", path, source.Kind)
				}
			}
			cfg.Sources = append(cfg.Sources, config.SourceRoot{Path: path, Kind: kind})
			if err := cfg.Save(ctx.configPath); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s source %s\n", kind, path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&kindFlag, "kind", "k", config.SourceKindMovie, "Source kind (movie or subtitle)")
	return cmd
}

func newSourcesRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <path>",
		Short: "Remove a source directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			path, err := config.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve source path: %w", err)
			}
			kept := cfg.Sources[:0]
			removed := false
			for _, source := range cfg.Sources {
				if source.Path == path {
					removed = true
					continue
				}
				kept = append(kept, source)
			}
			if !removed {
				return fmt.Errorf("source %s is not configured", path)
			}
			cfg.Sources = kept
			if err := cfg.Save(ctx.configPath); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed source %s\n", path)
			return nil
		},
	}
}
