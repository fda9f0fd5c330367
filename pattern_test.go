// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fsx

package fsx

import (
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompilePatterns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want []CompiledRule
	}{
		{
			raw:  "*.log",
			want: []CompiledRule{{Pattern: "**/*.log", Source: "*.log"}},
		},
		{
			raw:  "  /foo.txt  ",
			want: []CompiledRule{{Pattern: "foo.txt", Source: "  /foo.txt  "}},
		},
		{
			raw:  "!keep.log",
			want: []CompiledRule{{Pattern: "**/keep.log", Source: "!keep.log", Negated: true}},
		},
		{
			raw:  "**/*.rs",
			want: []CompiledRule{{Pattern: "**/*.rs", Source: "**/*.rs"}},
		},
		{
			raw: "build/",
			want: []CompiledRule{
				{Pattern: "**/build", Source: "build/", DirOnly: true},
				{Pattern: "**/build/**", Source: "build/", base: "**/build", descendant: true},
			},
		},
		{
			raw: "!/out/",
			want: []CompiledRule{
				{Pattern: "out", Source: "!/out/", DirOnly: true, Negated: true},
				{Pattern: "out/**", Source: "!/out/", Negated: true, base: "out", descendant: true},
			},
		},
		{
			raw:  "/**",
			want: []CompiledRule{{Pattern: "**", Source: "/**"}},
		},
		{
			raw: "**/",
			want: []CompiledRule{
				{Pattern: "**/**", Source: "**/", DirOnly: true},
				{Pattern: "**/**/**", Source: "**/", base: "**/**", descendant: true},
			},
		},
	}

	for _, tt := range tests {
		rules, diags := CompilePatterns([]string{tt.raw}, FilterOptions{})
		require.Empty(t, diags, tt.raw)
		assert.Equal(t, tt.want, rules, tt.raw)
	}
}

func TestCompilePatternsDiagnostics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		wantErr error
	}{
		{raw: "[abc", wantErr: doublestar.ErrBadPattern},
		{raw: "{a,b", wantErr: doublestar.ErrBadPattern},
		{raw: "   ", wantErr: errEmptyPattern},
		{raw: "!/", wantErr: errEmptyPattern},
		{raw: "/", wantErr: errEmptyPattern},
	}

	for _, tt := range tests {
		rules, diags := CompilePatterns([]string{tt.raw}, FilterOptions{})
		assert.Empty(t, rules, tt.raw)
		require.Len(t, diags, 1, tt.raw)
		assert.ErrorIs(t, diags[0], ErrInvalidPattern, tt.raw)
		assert.ErrorIs(t, diags[0], tt.wantErr, tt.raw)
	}
}

func TestCompilePatternsCaseInsensitiveLowersGlob(t *testing.T) {
	t.Parallel()

	rules, diags := CompilePatterns([]string{"SRC/*.Go"}, FilterOptions{CaseInsensitive: true})
	require.Empty(t, diags)
	require.Len(t, rules, 1)
	assert.Equal(t, "**/src/*.go", rules[0].Pattern)
	assert.Equal(t, "SRC/*.Go", rules[0].Source)
}

func TestCompiledRuleDescendantMatches(t *testing.T) {
	t.Parallel()

	r := newCompiledRule("a/*/c/**", "a/*/c/**", false, false)
	require.True(t, r.descendant)

	assert.False(t, r.Matches("a/b/c"))
	assert.True(t, r.Matches("a/b/c/d"))
	assert.True(t, r.Matches("a/b/c/d/e"))
	assert.False(t, r.Matches("a/b/x/d"))
	assert.False(t, r.Matches(""))

	all := newCompiledRule("**", "**", false, false)
	assert.False(t, all.descendant)
	assert.True(t, all.Matches("anything/at/all"))
}

func TestCompiledRuleDirectoryOnlyDoubleStar(t *testing.T) {
	t.Parallel()

	rules, diags := CompilePatterns([]string{"**/"}, FilterOptions{})
	require.Empty(t, diags)
	require.Len(t, rules, 2)

	beneath := rules[1]
	require.True(t, beneath.descendant)
	assert.False(t, beneath.Matches("x"))
	assert.True(t, beneath.Matches("a/x"))
	assert.True(t, beneath.Matches("a/b/x"))
}

func TestTrimPatternSpace(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"  a  ":   "a",
		"\ta\t":   "a",
		`a\ `:     "a ",
		`a\  `:    "a ",
		"a b":     "a b",
		"":        "",
		`a\\b`:    `a\\b`,
		"   \t  ": "",
	}

	for in, want := range tests {
		assert.Equal(t, want, trimPatternSpace(in), "%q", in)
	}
}

func TestAsciiLower(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc/déf", asciiLower("ABC/déf"))
	assert.Equal(t, "ÄÖ", asciiLower("ÄÖ"))
	assert.Equal(t, "already", asciiLower("already"))
}
