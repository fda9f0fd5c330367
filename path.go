// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fsx

package fsx

import (
	"path/filepath"
	"strings"
)

// rootForms returns distinct spellings of root used for relative path lookup:
// the cleaned input, its absolute form and its symlink-resolved form.
func rootForms(root string) []string {
	forms := make([]string, 0, 3)
	add := func(p string) {
		for _, f := range forms {
			if f == p {
				return
			}
		}

		forms = append(forms, p)
	}

	root = filepath.Clean(root)
	add(root)

	abs, err := filepath.Abs(root)
	if err != nil {
		return forms
	}

	add(abs)

	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		add(resolved)
	}

	return forms
}

// relativeTo returns path relative to root in slash form.
// ok is false when path is not inside root.
func relativeTo(root, path string) (rel string, ok bool) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", false
	}

	rel = filepath.ToSlash(rel)
	if rel == "." {
		return "", true
	}

	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", false
	}

	return rel, true
}

// asciiLower converts only ASCII A-Z to a-z and leaves all other bytes unchanged.
func asciiLower(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if b[j] >= 'A' && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}

			return string(b)
		}
	}

	return s
}

// trimPatternSpace trims surrounding whitespace, keeping one trailing
// space when it is escaped by "\".
func trimPatternSpace(s string) string {
	s = strings.TrimLeft(s, " \t")
	for len(s) > 0 && (s[len(s)-1] == ' ' || s[len(s)-1] == '\t') {
		if len(s) >= 2 && s[len(s)-2] == '\\' {
			return s[:len(s)-2] + s[len(s)-1:]
		}

		s = s[:len(s)-1]
	}

	return s
}
