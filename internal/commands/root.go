// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fsx

// Package commands implements the fsx command line interface.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/woozymasta/fsx"
)

// Persistent flag names.
const (
	flagConfig   = "config"
	flagLogLevel = "log-level"
	flagLogFile  = "log-file"
	flagVerbose  = "verbose"
)

// RootCmd creates and returns the root command for the fsx CLI.
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fsx",
		Short: "Filesystem exploration tool",
		Long: `fsx walks a directory tree depth-first and reports on what it finds.

Entries are filtered with gitignore-style patterns read from the ignore file
in the walk root (.gitignore by default) followed by --ignore patterns, so
command line patterns win. Settings may also come from ./fsx.yaml and FSX_*
environment variables.`,
		Version:      fsx.Version,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringP(flagConfig, "c", "", "Config file (default ./fsx.yaml when present)")
	cmd.PersistentFlags().String(flagLogLevel, "warn", "Log level: debug, info, warn, error")
	cmd.PersistentFlags().String(flagLogFile, "", "Write logs to this file instead of stderr")
	cmd.PersistentFlags().BoolP(flagVerbose, "v", false, "Enable debug logging")

	return cmd
}

// VersionCmd prints version information.
func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "fsx v%s\n", fsx.Version)
		},
	}
}

// NewApp returns the root command with every subcommand registered.
func NewApp() *cobra.Command {
	root := RootCmd()
	root.AddCommand(StatsCmd())
	root.AddCommand(FindCmd())
	root.AddCommand(VersionCmd())

	return root
}
