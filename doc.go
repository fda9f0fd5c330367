// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fsx

/*
Package fsx walks directory trees and filters them with gitignore-like rules.

The package has two tightly coupled parts: an ignore filter that compiles
ordered patterns and evaluates them with last-match-wins semantics, and a
depth-first walker that consults the filter before reporting any entry to a
Visitor.

Basic flow:
  - collect raw patterns (`ParsePatterns` / `LoadPatternsFile` / `MergePatterns`)
  - compile a filter for the walk root (`NewIgnoreFilter` or `NewIgnoreFilterFromFile`)
  - implement `Visitor` (or fill a `VisitorFuncs`)
  - call `Walk` with `WalkOptions` (depth limit, symlink following)

Pattern grammar:
  - "!" prefix negates a pattern (re-includes a path)
  - leading "/" anchors a pattern to the walk root
  - trailing "/" restricts a pattern to directories and everything beneath them
  - "*" matches inside one path segment, "**" matches across segments

Walk errors never stop a walk. Every failure is reported to `Visitor.OnError`
as a `*WalkError` carrying the offending path, and the walk moves on to the next
sibling.

`CollectStats` and `Find` are two ready-made visitors built on top of `Walk`.
*/
package fsx
