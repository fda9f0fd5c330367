// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fsx

package output

import (
	"errors"
	"fmt"
	"strings"
)

// Format selects how reports are written.
type Format string

// Supported formats.
const (
	// Human prints labels with human readable sizes.
	Human Format = "human"
	// Raw prints labels with exact byte counts.
	Raw Format = "raw"
	// Debug prints Go value dumps.
	Debug Format = "debug"
	// JSON prints one indented JSON document.
	JSON Format = "json"
	// YAML prints one YAML document.
	YAML Format = "yaml"
)

// ErrUnknownFormat indicates an unsupported output format name.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists supported formats in help order.
func Formats() []Format {
	return []Format{Human, Raw, Debug, JSON, YAML}
}

// ParseFormat parses a case-insensitive format name. Empty means Human.
func ParseFormat(s string) (Format, error) {
	name := Format(strings.ToLower(strings.TrimSpace(s)))
	if name == "" {
		return Human, nil
	}

	for _, f := range Formats() {
		if f == name {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w %q (want one of %s)", ErrUnknownFormat, s, FormatNames())
}

// FormatNames returns supported format names joined for help texts.
func FormatNames() string {
	names := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		names = append(names, string(f))
	}

	return strings.Join(names, "|")
}
