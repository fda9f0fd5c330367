// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fsx

// Package output renders fsx reports for the terminal and for machines.
//
// Human format styles labels with lipgloss. The renderer is bound to the
// destination writer, so redirected output stays free of escape sequences.
// Machine formats are JSON and YAML documents carrying the report and its
// walk errors as strings.
package output
