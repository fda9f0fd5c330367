// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fsx

package fsx

import "path/filepath"

// PathFilter decides whether a walked path is skipped.
type PathFilter interface {
	// IsIgnored reports whether path, a directory when isDir is set, is skipped
	// together with everything beneath it.
	IsIgnored(path string, isDir bool) bool
}

// NopFilter ignores nothing.
type NopFilter struct{}

// IsIgnored implements PathFilter.
func (NopFilter) IsIgnored(string, bool) bool { return false }

// IgnoreFilter evaluates paths under one walk root against compiled ordered rules.
//
// IgnoreFilter is read-only after construction and safe for concurrent use.
type IgnoreFilter struct {
	// roots are the spellings of the walk root used for relative path lookup.
	roots []string
	// rules are compiled rules in source order.
	rules []CompiledRule
	// diagnostics are errors for patterns dropped during compilation.
	diagnostics []error
	// caseInsensitive lowers candidates before matching.
	caseInsensitive bool
}

// NewIgnoreFilter compiles ordered patterns into a filter rooted at root.
//
// Malformed patterns are dropped and reported through Diagnostics and
// opts.Logger, the remaining patterns keep their relative order.
func NewIgnoreFilter(root string, patterns []string, opts FilterOptions) *IgnoreFilter {
	opts.applyDefaults()

	rules, diags := CompilePatterns(patterns, opts)

	return &IgnoreFilter{
		roots:           rootForms(root),
		rules:           rules,
		diagnostics:     diags,
		caseInsensitive: opts.CaseInsensitive,
	}
}

// Rules returns a copy of compiled rules in evaluation order.
func (f *IgnoreFilter) Rules() []CompiledRule {
	out := make([]CompiledRule, len(f.rules))
	copy(out, f.rules)
	return out
}

// Diagnostics returns errors for patterns dropped during compilation.
func (f *IgnoreFilter) Diagnostics() []error {
	return f.diagnostics
}

// Match returns deterministic ignore decision for one path.
//
// Decision policy:
// - paths outside the walk root are never ignored
// - directory-only rules are skipped for non-directory candidates
// - every matching rule overwrites the decision, so the last match wins
// - if no rule matched, the path is not ignored
func (f *IgnoreFilter) Match(path string, isDir bool) MatchResult {
	res := MatchResult{RuleIndex: -1}

	rel, ok := f.relative(path)
	if !ok {
		return res
	}

	if f.caseInsensitive {
		rel = asciiLower(rel)
	}

	for i := range f.rules {
		if f.rules[i].DirOnly && !isDir {
			continue
		}

		if !f.rules[i].Matches(rel) {
			continue
		}

		res.Matched = true
		res.RuleIndex = i
		res.Ignored = !f.rules[i].Negated
	}

	return res
}

// IsIgnored implements PathFilter.
func (f *IgnoreFilter) IsIgnored(path string, isDir bool) bool {
	return f.Match(path, isDir).Ignored
}

// relative returns path relative to the filter root in slash form.
func (f *IgnoreFilter) relative(path string) (string, bool) {
	path = filepath.Clean(path)
	for _, root := range f.roots {
		if rel, ok := relativeTo(root, path); ok {
			return rel, true
		}
	}

	if filepath.IsAbs(path) {
		return "", false
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}

	for _, root := range f.roots {
		if rel, ok := relativeTo(root, abs); ok {
			return rel, true
		}
	}

	return "", false
}
