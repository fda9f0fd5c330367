// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fsx

package fsx

import "testing"

func TestParseExtensions(t *testing.T) {
	t.Parallel()

	got := ParseExtensions([]string{
		"log",
		".TMP",
		"*.OGG",
		" ..cfg  ",
		"",
		"   ",
	})

	want := []string{"*.log", "*.tmp", "*.ogg", "*.cfg"}
	if len(got) != len(want) {
		t.Fatalf("len(got)=%d, want %d", len(got), len(want))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pattern[%d]=%q, want %q", i, got[i], want[i])
		}
	}
}

func TestParseExtensions_Empty(t *testing.T) {
	t.Parallel()

	got := ParseExtensions(nil)
	if len(got) != 0 {
		t.Fatalf("len(got)=%d, want 0", len(got))
	}
}
