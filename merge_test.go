// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fsx

package fsx

import "testing"

func TestMergePatterns(t *testing.T) {
	t.Parallel()

	a := []string{"*.tmp"}
	b := []string{"!keep.tmp", "build/"}

	merged := MergePatterns(a, nil, b)
	if len(merged) != 3 {
		t.Fatalf("len(merged)=%d, want 3", len(merged))
	}

	if merged[0] != "*.tmp" || merged[1] != "!keep.tmp" || merged[2] != "build/" {
		t.Fatalf("unexpected merged order: %q", merged)
	}

	// Ensure result does not alias input backing arrays for appended tail.
	b[0] = "mutated"
	if merged[1] != "!keep.tmp" {
		t.Fatalf("merged slice was unexpectedly aliased")
	}
}

func TestMergePatternsLaterSetWins(t *testing.T) {
	t.Parallel()

	f := NewIgnoreFilter(projectRoot, MergePatterns([]string{"*.txt"}, []string{"!a.txt"}), FilterOptions{})
	if f.IsIgnored(projectPath("a.txt"), false) {
		t.Fatalf("override should re-include a.txt")
	}

	if !f.IsIgnored(projectPath("b.txt"), false) {
		t.Fatalf("b.txt should stay ignored")
	}
}
