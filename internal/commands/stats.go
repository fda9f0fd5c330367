// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fsx

package commands

import (
	"github.com/spf13/cobra"
	"github.com/woozymasta/fsx"
	"github.com/woozymasta/fsx/internal/config"
	"github.com/woozymasta/fsx/internal/output"
	"go.uber.org/zap"
)

// StatsCmd creates the stats command.
func StatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [path]",
		Short: "Compute filesystem statistics for a directory tree",
		Long: `Counts files, directories and symlinks under PATH (default ".") and
reports the total size, the largest file and the deepest level reached.

Example:
  fsx stats
  fsx stats ./src --max-depth 2
  fsx stats ~/projects -L --ignore 'node_modules/' --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runStats,
	}

	config.AddFlags(cmd.Flags())

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	root, err := walkRoot(args, 0)
	if err != nil {
		return err
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	opts := s.cfg.WalkOptions()
	s.logger.Debug("collecting stats",
		zap.String("root", root),
		zap.Int("max_depth", opts.MaxDepth),
		zap.Bool("follow_symlinks", opts.FollowSymlinks))

	report := fsx.CollectStats(root, s.filter(root), opts)
	s.logWalkErrors(report.Errors)

	s.logger.Debug("stats collected",
		zap.Int("files", report.Stats.TotalFiles),
		zap.Int("dirs", report.Stats.TotalDirs),
		zap.Int("errors", len(report.Errors)))

	return output.WriteStats(cmd.OutOrStdout(), report, s.cfg.OutputFormat())
}
