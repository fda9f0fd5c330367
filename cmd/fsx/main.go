// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fsx

package main

import (
	"os"

	"github.com/woozymasta/fsx/internal/commands"
)

func main() {
	if err := commands.NewApp().Execute(); err != nil {
		os.Exit(1)
	}
}
