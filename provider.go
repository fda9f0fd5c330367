// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fsx

package fsx

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// DefaultIgnoreFileName is the ignore file loaded from the walk root.
const DefaultIgnoreFileName = ".gitignore"

// NewIgnoreFilterFromFile builds a filter from the ignore file in root
// followed by overrides.
//
// Precedence:
// 1. Patterns from <root>/<fileName> (empty name defaults to ".gitignore").
// 2. overrides, appended after file patterns so they win on conflicts.
//
// A missing file is not an error. An unreadable, misnamed or escaping file is
// logged as a warning on opts.Logger and only overrides are used.
func NewIgnoreFilterFromFile(root, fileName string, overrides []string, opts FilterOptions) *IgnoreFilter {
	opts.applyDefaults()

	filePatterns, err := loadRootIgnoreFile(root, fileName)
	if err != nil {
		opts.Logger.Warn("could not read ignore file, continuing with override patterns",
			zap.String("root", root),
			zap.String("file", fileName),
			zap.Error(err))
	}

	return NewIgnoreFilter(root, MergePatterns(filePatterns, overrides), opts)
}

// loadRootIgnoreFile reads patterns from the ignore file directly in root.
// It returns nil patterns and nil error when the file does not exist.
func loadRootIgnoreFile(root, fileName string) ([]string, error) {
	name, err := cleanRulesFileName(fileName)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(root, name)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("stat ignore file: %w", err)
	}

	resolvedRoot, err := resolvePathOrAbs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root: %w", err)
	}

	resolvedPath, err := resolvePathOrAbs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve ignore file: %w", err)
	}

	if !isPathWithinRoot(resolvedRoot, resolvedPath) {
		return nil, fmt.Errorf("%w: %s", ErrIgnoreFileOutsideRoot, resolvedPath)
	}

	return LoadPatternsFile(path)
}

// cleanRulesFileName validates a bare ignore file name.
func cleanRulesFileName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		name = DefaultIgnoreFileName
	}

	if filepath.IsAbs(name) {
		return "", ErrInvalidRulesFileName
	}

	name = filepath.ToSlash(name)
	if strings.Contains(name, "/") || name == "." || name == ".." {
		return "", ErrInvalidRulesFileName
	}

	return name, nil
}

// resolvePathOrAbs resolves symlinks in path, falling back to the absolute
// path when it does not exist.
func resolvePathOrAbs(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err == nil {
		return resolved, nil
	}

	abs, absErr := filepath.Abs(path)
	if absErr != nil {
		return "", absErr
	}

	if os.IsNotExist(err) {
		return abs, nil
	}

	return "", err
}

// isPathWithinRoot reports whether target path is inside root path.
func isPathWithinRoot(root string, target string) bool {
	rel, err := filepath.Rel(root, target)
	if err != nil {
		return false
	}

	if rel == "." {
		return true
	}

	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}

	return true
}
