// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fsx

package fsx

import "strings"

// ParseExtensions converts an extension list to ignore patterns.
//
// Accepted extension forms:
//   - "log"
//   - ".log"
//   - "*.log"
//
// Empty values are skipped. Returned patterns are normalized to lower-case
// "*.ext" form and preserve input order.
func ParseExtensions(exts []string) []string {
	patterns := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		ext = strings.TrimPrefix(ext, "*.")
		ext = strings.TrimLeft(ext, ".")
		ext = asciiLower(ext)
		if ext == "" {
			continue
		}

		patterns = append(patterns, "*."+ext)
	}

	return patterns
}
