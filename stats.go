// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fsx

package fsx

import "io/fs"

// FileSize is a file path with its size in bytes.
type FileSize struct {
	// Path is the reported file path.
	Path string `json:"path" yaml:"path"`
	// Size is the file size in bytes.
	Size int64 `json:"size" yaml:"size"`
}

// Stats are aggregate counters for one walk.
type Stats struct {
	// LargestFile is the first file seen with the greatest size, nil when no file was seen.
	LargestFile *FileSize `json:"largest_file,omitempty" yaml:"largest_file,omitempty"`
	// TotalFiles counts VisitFile events.
	TotalFiles int `json:"total_files" yaml:"total_files"`
	// TotalDirs counts EnterDir events.
	TotalDirs int `json:"total_dirs" yaml:"total_dirs"`
	// TotalSymlinks counts VisitSymlink events.
	TotalSymlinks int `json:"total_symlinks" yaml:"total_symlinks"`
	// TotalSize sums file sizes in bytes.
	TotalSize int64 `json:"total_size" yaml:"total_size"`
	// MaxDepth is the deepest file or directory depth seen.
	MaxDepth int `json:"max_depth" yaml:"max_depth"`
}

// StatsReport is the outcome of CollectStats.
type StatsReport struct {
	// Errors are walk failures in the order they were reported.
	Errors []error `json:"-" yaml:"-"`
	// Stats are the collected counters.
	Stats Stats `json:"stats" yaml:"stats"`
}

// statsVisitor accumulates Stats.
type statsVisitor struct {
	errs  []error
	stats Stats
}

// CollectStats walks root and aggregates file, directory and symlink counters.
func CollectStats(root string, filter PathFilter, opts WalkOptions) StatsReport {
	v := &statsVisitor{}
	Walk(root, v, filter, opts)

	return StatsReport{
		Stats:  v.stats,
		Errors: v.errs,
	}
}

func (v *statsVisitor) VisitFile(path string, info fs.FileInfo, depth int) {
	size := info.Size()
	v.stats.TotalFiles++
	v.stats.TotalSize += size

	if v.stats.LargestFile == nil || size > v.stats.LargestFile.Size {
		v.stats.LargestFile = &FileSize{Path: path, Size: size}
	}

	v.stats.MaxDepth = max(v.stats.MaxDepth, depth)
}

func (v *statsVisitor) EnterDir(_ string, _ fs.FileInfo, depth int) {
	v.stats.TotalDirs++
	v.stats.MaxDepth = max(v.stats.MaxDepth, depth)
}

// ExitDir is a no-op, directories are counted on entry.
func (v *statsVisitor) ExitDir(string, fs.FileInfo, int) {}

func (v *statsVisitor) VisitSymlink(string, int) {
	v.stats.TotalSymlinks++
}

func (v *statsVisitor) OnError(err error) {
	v.errs = append(v.errs, err)
}
