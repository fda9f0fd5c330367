// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fsx

package fsx

import (
	"errors"
	"strings"
	"testing"
)

func TestParsePatterns(t *testing.T) {
	t.Parallel()

	patterns, err := ParsePatternsString("\n# comment\n*.tmp\r\n!keep.tmp\n   \n\\#literal\n\\!bang\nname\\ \n/build/\n")
	if err != nil {
		t.Fatalf("ParsePatternsString: %v", err)
	}

	want := []string{"*.tmp", "!keep.tmp", `\#literal`, `\!bang`, `name\ `, "/build/"}
	if len(patterns) != len(want) {
		t.Fatalf("len(patterns)=%d, want %d: %q", len(patterns), len(want), patterns)
	}

	for i := range want {
		if patterns[i] != want[i] {
			t.Fatalf("pattern[%d]=%q, want %q", i, patterns[i], want[i])
		}
	}
}

func TestParsePatternsEscapedTrailingSpaceMatches(t *testing.T) {
	t.Parallel()

	patterns, err := ParsePatternsString("name\\ \nother   \n")
	if err != nil {
		t.Fatalf("ParsePatternsString: %v", err)
	}

	f := NewIgnoreFilter(projectRoot, patterns, FilterOptions{})
	if !f.IsIgnored(projectPath("name "), false) {
		t.Fatalf("escaped trailing space should be kept")
	}

	if !f.IsIgnored(projectPath("other"), false) {
		t.Fatalf("unescaped trailing spaces should be trimmed")
	}
}

func TestParsePatternsLineTooLong(t *testing.T) {
	t.Parallel()

	_, err := ParsePatterns(strings.NewReader(strings.Repeat("x", 1<<17)))
	if err == nil {
		t.Fatalf("expected scan error")
	}

	if !strings.HasPrefix(err.Error(), "scan patterns: ") {
		t.Fatalf("unexpected error: %v", err)
	}

	if errors.Is(err, ErrInvalidPattern) {
		t.Fatalf("scan failure must not be reported as invalid pattern")
	}
}
