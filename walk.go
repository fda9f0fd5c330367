// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fsx

package fsx

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// walker holds the state of one Walk call.
type walker struct {
	// visitor receives events.
	visitor Visitor
	// filter is consulted before any event or recursion.
	filter PathFilter
	// visited holds canonical paths already walked. Nil unless following symlinks.
	visited map[string]struct{}
	// maxDepth is the effective recursion limit.
	maxDepth int
	// follow enables symlink following.
	follow bool
}

// Walk walks the tree under root depth-first and reports entries to visitor.
//
// For every listed entry the filter is asked first; ignored entries produce no
// event and ignored directories are never listed. Directories fire EnterDir
// before and ExitDir after their children. Entries at opts.MaxDepth are
// reported but not descended into. The root itself produces no event.
//
// With opts.FollowSymlinks, symlink targets are walked in place of the link,
// using the target path for events. Every directory, and every file reached
// through a symlink, is walked at most once by its canonical path, so cycles
// terminate.
//
// Walk blocks until the reachable tree was processed. Failures are reported
// through visitor.OnError and never stop the walk. A nil filter ignores nothing.
func Walk(root string, visitor Visitor, filter PathFilter, opts WalkOptions) {
	if filter == nil {
		filter = NopFilter{}
	}

	w := &walker{
		visitor:  visitor,
		filter:   filter,
		maxDepth: opts.depthLimit(),
		follow:   opts.FollowSymlinks,
	}

	if w.follow {
		w.visited = make(map[string]struct{})
		// An unresolvable root fails again on listing and is reported there.
		if canonical, err := canonicalPath(root); err == nil {
			w.visited[canonical] = struct{}{}
		}
	}

	w.walkDir(root, 1)
}

// walkDir lists dir and processes its entries at depth.
func (w *walker) walkDir(dir string, depth int) {
	for _, entry := range w.readDir(dir) {
		w.visitEntry(filepath.Join(dir, entry.Name()), entry, depth)
	}
}

// readDir lists dir sorted by name. The directory handle is closed before
// any entry is processed.
func (w *walker) readDir(dir string) []fs.DirEntry {
	f, err := os.Open(dir)
	if err != nil {
		w.visitor.OnError(newWalkError(ErrListDir, dir, err))
		return nil
	}

	entries, err := f.ReadDir(-1)
	_ = f.Close()

	if err != nil {
		if len(entries) == 0 {
			w.visitor.OnError(newWalkError(ErrListDir, dir, err))
			return nil
		}

		w.visitor.OnError(newWalkError(ErrReadEntry, dir, err))
	}

	slices.SortFunc(entries, func(a, b fs.DirEntry) int {
		return strings.Compare(a.Name(), b.Name())
	})

	return entries
}

// visitEntry filters and dispatches one listed entry.
func (w *walker) visitEntry(path string, entry fs.DirEntry, depth int) {
	if w.filter.IsIgnored(path, entry.IsDir()) {
		return
	}

	info, err := entry.Info()
	if err != nil {
		w.visitor.OnError(newWalkError(ErrStat, path, err))
		return
	}

	switch mode := info.Mode(); {
	case mode&fs.ModeSymlink != 0:
		w.visitSymlink(path, depth)
	case mode.IsDir():
		w.visitDir(path, info, depth)
	default:
		w.visitor.VisitFile(path, info, depth)
	}
}

// visitSymlink reports a symlink and, when following, walks its target.
func (w *walker) visitSymlink(path string, depth int) {
	w.visitor.VisitSymlink(path, depth)
	if !w.follow {
		return
	}

	target, err := canonicalPath(path)
	if err != nil {
		w.visitor.OnError(newWalkError(ErrResolveSymlink, path, err))
		return
	}

	if !w.markVisited(target) {
		return
	}

	info, err := os.Stat(target)
	if err != nil {
		w.visitor.OnError(newWalkError(ErrStat, target, err))
		return
	}

	// The target may live where the filter would exclude it.
	if w.filter.IsIgnored(target, info.IsDir()) {
		return
	}

	if info.IsDir() {
		w.descend(target, info, depth)
		return
	}

	w.visitor.VisitFile(target, info, depth)
}

// visitDir walks a real directory once per canonical identity.
func (w *walker) visitDir(path string, info fs.FileInfo, depth int) {
	if w.follow {
		canonical, err := canonicalPath(path)
		if err != nil {
			w.visitor.OnError(newWalkError(ErrResolveSymlink, path, err))
			return
		}

		if !w.markVisited(canonical) {
			return
		}
	}

	w.descend(path, info, depth)
}

// descend fires the EnterDir/ExitDir pair around the depth-limited recursion.
func (w *walker) descend(path string, info fs.FileInfo, depth int) {
	w.visitor.EnterDir(path, info, depth)
	if depth < w.maxDepth {
		w.walkDir(path, depth+1)
	}
	w.visitor.ExitDir(path, info, depth)
}

// markVisited records canonical and reports whether it was not seen before.
func (w *walker) markVisited(canonical string) bool {
	if _, seen := w.visited[canonical]; seen {
		return false
	}

	w.visited[canonical] = struct{}{}
	return true
}

// canonicalPath returns the absolute, fully symlink-resolved form of path.
func canonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return filepath.EvalSymlinks(abs)
}
