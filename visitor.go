// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fsx

package fsx

import "io/fs"

// Visitor receives walk events.
//
// Exactly one of VisitFile, the EnterDir/ExitDir pair, or VisitSymlink fires
// for every entry that is not ignored. OnError may fire any number of times,
// interleaved with other events, and never stops the walk.
//
// Depth is 1 for entries directly under the walk root.
type Visitor interface {
	// VisitFile is called for regular files and other non-directory entries.
	VisitFile(path string, info fs.FileInfo, depth int)
	// EnterDir is called before the children of a directory are walked.
	EnterDir(path string, info fs.FileInfo, depth int)
	// ExitDir is called after the children of a directory were walked,
	// also when errors occurred beneath it.
	ExitDir(path string, info fs.FileInfo, depth int)
	// VisitSymlink is called for every symlink entry, followed or not.
	VisitSymlink(path string, depth int)
	// OnError receives a *WalkError for every failure.
	OnError(err error)
}

// VisitorFuncs adapts a set of optional callbacks to Visitor.
// Nil callbacks are no-ops.
type VisitorFuncs struct {
	File    func(path string, info fs.FileInfo, depth int)
	Enter   func(path string, info fs.FileInfo, depth int)
	Exit    func(path string, info fs.FileInfo, depth int)
	Symlink func(path string, depth int)
	Error   func(err error)
}

// VisitFile implements Visitor.
func (v VisitorFuncs) VisitFile(path string, info fs.FileInfo, depth int) {
	if v.File != nil {
		v.File(path, info, depth)
	}
}

// EnterDir implements Visitor.
func (v VisitorFuncs) EnterDir(path string, info fs.FileInfo, depth int) {
	if v.Enter != nil {
		v.Enter(path, info, depth)
	}
}

// ExitDir implements Visitor.
func (v VisitorFuncs) ExitDir(path string, info fs.FileInfo, depth int) {
	if v.Exit != nil {
		v.Exit(path, info, depth)
	}
}

// VisitSymlink implements Visitor.
func (v VisitorFuncs) VisitSymlink(path string, depth int) {
	if v.Symlink != nil {
		v.Symlink(path, depth)
	}
}

// OnError implements Visitor.
func (v VisitorFuncs) OnError(err error) {
	if v.Error != nil {
		v.Error(err)
	}
}
