// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fsx

package fsx

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
)

// FindEntry is one file whose name matched a Find expression.
type FindEntry struct {
	// Path is the reported file path.
	Path string `json:"path" yaml:"path"`
	// Size is the file size in bytes.
	Size int64 `json:"size" yaml:"size"`
	// Depth is the walk depth of the file.
	Depth int `json:"depth" yaml:"depth"`
}

// FindReport is the outcome of Find.
type FindReport struct {
	// Entries are matches in walk order.
	Entries []FindEntry `json:"entries" yaml:"entries"`
	// Errors are walk failures in the order they were reported.
	Errors []error `json:"-" yaml:"-"`
}

// findVisitor collects files whose base name matches pattern.
type findVisitor struct {
	pattern *regexp.Regexp
	entries []FindEntry
	errs    []error
}

// Find walks root and collects files whose base name matches the regular
// expression pattern. Directories and symlinks themselves are not matched.
//
// An invalid expression is returned as an error wrapping ErrInvalidRegex
// before anything is walked.
func Find(root, pattern string, filter PathFilter, opts WalkOptions) (FindReport, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return FindReport{}, fmt.Errorf("%w: %w", ErrInvalidRegex, err)
	}

	v := &findVisitor{pattern: re}
	Walk(root, v, filter, opts)

	return FindReport{
		Entries: v.entries,
		Errors:  v.errs,
	}, nil
}

func (v *findVisitor) VisitFile(path string, info fs.FileInfo, depth int) {
	if !v.pattern.MatchString(filepath.Base(path)) {
		return
	}

	v.entries = append(v.entries, FindEntry{
		Path:  path,
		Size:  info.Size(),
		Depth: depth,
	})
}

func (v *findVisitor) EnterDir(string, fs.FileInfo, int) {}

func (v *findVisitor) ExitDir(string, fs.FileInfo, int) {}

func (v *findVisitor) VisitSymlink(string, int) {}

func (v *findVisitor) OnError(err error) {
	v.errs = append(v.errs, err)
}
