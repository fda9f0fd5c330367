// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fsx

package fsx

import (
	"errors"
	"fmt"
)

// Sentinel errors for fsx operations.
var (
	// ErrInvalidPattern indicates malformed ignore pattern input.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrInvalidRulesFileName indicates invalid ignore file name.
	ErrInvalidRulesFileName = errors.New("invalid rules file name")
	// ErrIgnoreFileOutsideRoot indicates the ignore file resolved outside the walk root.
	ErrIgnoreFileOutsideRoot = errors.New("ignore file path is outside walk root")
	// ErrInvalidRegex indicates malformed name search expression.
	ErrInvalidRegex = errors.New("invalid regex")
	// ErrListDir indicates a directory could not be opened or listed.
	ErrListDir = errors.New("list directory")
	// ErrReadEntry indicates a directory listing was cut short while reading entries.
	ErrReadEntry = errors.New("read directory entry")
	// ErrStat indicates entry metadata could not be read.
	ErrStat = errors.New("stat")
	// ErrResolveSymlink indicates a path could not be resolved to its canonical form.
	ErrResolveSymlink = errors.New("resolve symlink")
)

// WalkError is a path-attributed failure reported during a walk.
type WalkError struct {
	// Op is one of ErrListDir, ErrReadEntry, ErrStat, ErrResolveSymlink.
	Op error
	// Err is the underlying cause.
	Err error
	// Path is the offending path.
	Path string
}

// Error implements error.
func (e *WalkError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Path, e.Op, e.Err)
}

// Unwrap exposes both the operation sentinel and the underlying cause.
func (e *WalkError) Unwrap() []error {
	return []error{e.Op, e.Err}
}

// PatternError describes one ignore pattern dropped during compilation.
type PatternError struct {
	// Err is the underlying cause.
	Err error
	// Pattern is the raw pattern as supplied by the caller.
	Pattern string
}

// Error implements error.
func (e *PatternError) Error() string {
	return fmt.Sprintf("%v %q: %v", ErrInvalidPattern, e.Pattern, e.Err)
}

// Unwrap exposes ErrInvalidPattern and the underlying cause.
func (e *PatternError) Unwrap() []error {
	return []error{ErrInvalidPattern, e.Err}
}

// newWalkError builds a walk error for path.
func newWalkError(op error, path string, err error) *WalkError {
	return &WalkError{Op: op, Path: path, Err: err}
}
