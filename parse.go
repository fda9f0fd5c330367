// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fsx

package fsx

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParsePatterns reads raw ignore patterns from reader, one per line.
//
// Semantics:
// - blank and whitespace-only lines are skipped
// - lines starting with "#" are comments
// - "\#" and "\!" escapes are kept verbatim, the glob layer treats them as literals
// - negation, anchoring and directory markers are left for CompilePatterns
func ParsePatterns(r io.Reader) ([]string, error) {
	s := bufio.NewScanner(r)
	patterns := make([]string, 0, 16)

	for s.Scan() {
		line := strings.TrimRight(s.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if strings.HasPrefix(line, "#") {
			continue
		}

		patterns = append(patterns, line)
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan patterns: %w", err)
	}

	return patterns, nil
}

// ParsePatternsString parses patterns from string input.
func ParsePatternsString(src string) ([]string, error) {
	return ParsePatterns(strings.NewReader(src))
}
