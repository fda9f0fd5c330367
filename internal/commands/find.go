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

// FindCmd creates the find command.
func FindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <regex> [path]",
		Short: "Find files whose name matches a regular expression",
		Long: `Lists files under PATH (default ".") whose base name matches REGEX
(Go RE2 syntax). Directories and symlinks themselves are not listed.

Example:
  fsx find '\.go$'
  fsx find '^README' ./docs --format raw
  fsx find 'log' -i '*.log' -i '!keep.log'`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runFind,
	}

	config.AddFlags(cmd.Flags())

	return cmd
}

func runFind(cmd *cobra.Command, args []string) error {
	root, err := walkRoot(args, 1)
	if err != nil {
		return err
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	opts := s.cfg.WalkOptions()
	s.logger.Debug("finding files",
		zap.String("root", root),
		zap.String("pattern", args[0]),
		zap.Int("max_depth", opts.MaxDepth),
		zap.Bool("follow_symlinks", opts.FollowSymlinks))

	report, err := fsx.Find(root, args[0], s.filter(root), opts)
	if err != nil {
		return err
	}

	s.logWalkErrors(report.Errors)
	s.logger.Debug("find finished",
		zap.Int("matches", len(report.Entries)),
		zap.Int("errors", len(report.Errors)))

	return output.WriteFind(cmd.OutOrStdout(), report, s.cfg.OutputFormat())
}
