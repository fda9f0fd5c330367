// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fsx

package fsx

import "go.uber.org/zap"

// Unbounded disables the walk depth limit.
const Unbounded = 0

// FilterOptions controls pattern compilation and matching.
type FilterOptions struct {
	// Logger receives one warning per dropped pattern. Nil disables logging.
	Logger *zap.Logger `json:"-" yaml:"-"`
	// CaseInsensitive enables ASCII case-insensitive matching.
	CaseInsensitive bool `json:"case_insensitive,omitempty" yaml:"case_insensitive,omitempty"`
}

// WalkOptions controls walk behavior.
type WalkOptions struct {
	// MaxDepth limits recursion. Entries at MaxDepth are still reported,
	// their children are not. Zero or negative means Unbounded.
	MaxDepth int `json:"max_depth,omitempty" yaml:"max_depth,omitempty"`
	// FollowSymlinks descends into symlink targets with cycle detection.
	FollowSymlinks bool `json:"follow_symlinks,omitempty" yaml:"follow_symlinks,omitempty"`
}

// MatchResult is a deterministic decision produced by IgnoreFilter.
type MatchResult struct {
	// Ignored reports final ignore decision.
	Ignored bool `json:"ignored" yaml:"ignored"`
	// Matched reports whether at least one rule matched.
	Matched bool `json:"matched" yaml:"matched"`
	// RuleIndex is the last matched compiled rule index, -1 when no match.
	RuleIndex int `json:"rule_index" yaml:"rule_index"`
}

// applyDefaults fills zero-valued options with defaults.
func (opts *FilterOptions) applyDefaults() {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
}

// depthLimit returns the effective recursion limit.
func (opts WalkOptions) depthLimit() int {
	if opts.MaxDepth <= 0 {
		return int(^uint(0) >> 1)
	}

	return opts.MaxDepth
}
