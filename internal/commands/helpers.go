// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fsx

package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/woozymasta/fsx"
	"github.com/woozymasta/fsx/internal/config"
	"github.com/woozymasta/fsx/internal/logging"
	"go.uber.org/zap"
)

// errRootNotDir indicates a walk root that is not a directory.
var errRootNotDir = errors.New("not a directory")

// session is the per-invocation state of a walk command.
type session struct {
	cfg    *config.Config
	logger *zap.Logger
}

// newSession resolves settings and builds the logger for cmd.
func newSession(cmd *cobra.Command) (*session, error) {
	configPath, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	return &session{cfg: cfg, logger: logger}, nil
}

// newLogger builds the session logger, writing to cfg.LogFile when set and
// to stderr otherwise.
func newLogger(cfg *config.Config, stderr io.Writer) (*zap.Logger, error) {
	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.LogLevel
	if cfg.Verbose {
		logCfg = logging.VerboseConfig()
	}

	if cfg.LogFile != "" {
		logCfg.OutputPaths = []string{cfg.LogFile}
		return logging.New(logCfg)
	}

	return logging.NewWriter(logCfg, stderr)
}

// filter builds the ignore filter for root from settings.
func (s *session) filter(root string) fsx.PathFilter {
	opts := fsx.FilterOptions{
		Logger:          s.logger,
		CaseInsensitive: s.cfg.IgnoreCase,
	}

	overrides := s.cfg.OverridePatterns()
	if s.cfg.NoIgnoreFile {
		return fsx.NewIgnoreFilter(root, overrides, opts)
	}

	return fsx.NewIgnoreFilterFromFile(root, s.cfg.IgnoreFile, overrides, opts)
}

// logWalkErrors reports non-fatal walk failures.
func (s *session) logWalkErrors(errs []error) {
	for _, err := range errs {
		s.logger.Warn("walk error", zap.Error(err))
	}
}

// close flushes buffered log entries.
func (s *session) close() {
	_ = s.logger.Sync()
}

// walkRoot returns args[i] or "." and checks it is a directory.
func walkRoot(args []string, i int) (string, error) {
	root := "."
	if len(args) > i {
		root = args[i]
	}

	info, err := os.Stat(root)
	if err != nil {
		return "", fmt.Errorf("walk root: %w", err)
	}

	if !info.IsDir() {
		return "", fmt.Errorf("walk root %s: %w", root, errRootNotDir)
	}

	return root, nil
}
