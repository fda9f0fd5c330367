// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fsx

package fsx

import (
	"errors"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
)

// descendantSuffix marks rules matching everything strictly beneath a prefix.
const descendantSuffix = "/**"

// errEmptyPattern is reported for patterns that are empty after trimming
// the negation, anchor and directory markers.
var errEmptyPattern = errors.New("empty pattern")

// CompiledRule is one ordered rule evaluated by IgnoreFilter.
type CompiledRule struct {
	// Pattern is the effective glob evaluated against root-relative slash paths.
	Pattern string `json:"pattern" yaml:"pattern"`
	// Source is the raw pattern this rule was compiled from.
	Source string `json:"source" yaml:"source"`
	// base is Pattern without the trailing "/**" for descendant rules.
	base string
	// DirOnly restricts the rule to directory candidates.
	DirOnly bool `json:"dir_only,omitempty" yaml:"dir_only,omitempty"`
	// Negated turns a match into a re-include.
	Negated bool `json:"negated,omitempty" yaml:"negated,omitempty"`
	// descendant means the rule matches only below a path matching base.
	descendant bool
}

// Matches reports whether the rule glob matches a root-relative slash path.
// It does not consider DirOnly.
//
// A pattern ending in "/**" matches everything inside a matching directory
// but never the directory itself.
func (r *CompiledRule) Matches(rel string) bool {
	if !r.descendant {
		return doublestar.MatchUnvalidated(r.Pattern, rel)
	}

	for i := 0; i < len(rel); i++ {
		if rel[i] != '/' {
			continue
		}

		if doublestar.MatchUnvalidated(r.base, rel[:i]) {
			return true
		}
	}

	return false
}

// CompilePatterns compiles ordered raw patterns into ordered rules.
//
// Compilation steps per pattern:
//   - trim surrounding whitespace
//   - strip leading "!" (negated), leading "/" (anchored), trailing "/" (directory only)
//   - prefix unanchored text with "**/" so it matches at any depth
//   - validate the glob; malformed patterns are dropped and reported
//   - directory-only patterns emit a second rule over "<glob>/**" that
//     matches any entry beneath the directory
//
// Compilation never fails as a whole. Each dropped pattern yields one
// *PatternError in the returned diagnostics and one warning on opts.Logger.
func CompilePatterns(patterns []string, opts FilterOptions) ([]CompiledRule, []error) {
	opts.applyDefaults()

	rules := make([]CompiledRule, 0, len(patterns)+len(patterns)/2)
	var diags []error

	for _, raw := range patterns {
		compiled, err := compilePattern(raw, opts.CaseInsensitive)
		if err != nil {
			diags = append(diags, err)
			opts.Logger.Warn("dropping invalid ignore pattern",
				zap.String("pattern", raw),
				zap.Error(err))

			continue
		}

		rules = append(rules, compiled...)
	}

	return rules, diags
}

// compilePattern compiles one raw pattern into one or two rules.
func compilePattern(raw string, caseInsensitive bool) ([]CompiledRule, error) {
	text := trimPatternSpace(raw)

	negated := strings.HasPrefix(text, "!")
	if negated {
		text = text[1:]
	}

	anchored := strings.HasPrefix(text, "/")
	if anchored {
		text = text[1:]
	}

	dirOnly := strings.HasSuffix(text, "/")
	if dirOnly {
		text = text[:len(text)-1]
	}

	if text == "" {
		return nil, &PatternError{Pattern: raw, Err: errEmptyPattern}
	}

	effective := text
	if !anchored && !strings.HasPrefix(text, "**/") {
		effective = "**/" + text
	}

	if caseInsensitive {
		effective = asciiLower(effective)
	}

	if !doublestar.ValidatePattern(effective) {
		return nil, &PatternError{Pattern: raw, Err: doublestar.ErrBadPattern}
	}

	rules := []CompiledRule{newCompiledRule(effective, raw, dirOnly, negated)}
	if dirOnly {
		// Children of an ignored directory can be files.
		rules = append(rules, newDescendantRule(effective, raw, negated))
	}

	return rules, nil
}

// newCompiledRule builds one rule and selects its matching strategy.
func newCompiledRule(pattern, source string, dirOnly, negated bool) CompiledRule {
	r := CompiledRule{
		Pattern: pattern,
		Source:  source,
		DirOnly: dirOnly,
		Negated: negated,
	}

	base, ok := strings.CutSuffix(pattern, descendantSuffix)
	if ok && base != "**" && !strings.HasSuffix(base, descendantSuffix) {
		r.base = base
		r.descendant = true
	}

	return r
}

// newDescendantRule builds a rule matching entries strictly beneath a path
// matching base, whatever base looks like.
func newDescendantRule(base, source string, negated bool) CompiledRule {
	return CompiledRule{
		Pattern:    base + descendantSuffix,
		Source:     source,
		Negated:    negated,
		base:       base,
		descendant: true,
	}
}
