// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fsx

package fsx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectStatsScenario(t *testing.T) {
	t.Parallel()

	root := newScenario(t)
	report := CollectStats(root, nil, WalkOptions{})

	assert.Empty(t, report.Errors)
	assert.Equal(t, Stats{
		LargestFile: &FileSize{
			Path: filepath.Join(root, "subdir", "subdir2", "file3.txt"),
			Size: 12,
		},
		TotalFiles: 3,
		TotalDirs:  2,
		TotalSize:  23,
		MaxDepth:   3,
	}, report.Stats)
}

func TestCollectStatsMaxDepth(t *testing.T) {
	t.Parallel()

	root := newScenario(t)
	report := CollectStats(root, nil, WalkOptions{MaxDepth: 2})

	assert.Empty(t, report.Errors)
	assert.Equal(t, Stats{
		LargestFile: &FileSize{
			Path: filepath.Join(root, "subdir", "file2.txt"),
			Size: 6,
		},
		TotalFiles: 2,
		TotalDirs:  2,
		TotalSize:  11,
		MaxDepth:   2,
	}, report.Stats)
}

func TestCollectStatsWithFilter(t *testing.T) {
	t.Parallel()

	root := newScenario(t)
	filter := NewIgnoreFilter(root, []string{"subdir2/"}, FilterOptions{})
	report := CollectStats(root, filter, WalkOptions{})

	assert.Equal(t, 2, report.Stats.TotalFiles)
	assert.Equal(t, 1, report.Stats.TotalDirs)
	assert.Equal(t, int64(11), report.Stats.TotalSize)
	assert.Equal(t, 2, report.Stats.MaxDepth)
}

func TestCollectStatsLargestFileTieKeepsFirst(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	buildTree(t, tmp, dir("root",
		file("a.txt", "1234"),
		file("b.txt", "5678"),
	))
	root := filepath.Join(tmp, "root")

	report := CollectStats(root, nil, WalkOptions{})
	require.NotNil(t, report.Stats.LargestFile)
	assert.Equal(t, filepath.Join(root, "a.txt"), report.Stats.LargestFile.Path)
}

func TestCollectStatsCountsSymlinks(t *testing.T) {
	t.Parallel()
	skipWithoutSymlinks(t)

	tmp := t.TempDir()
	buildTree(t, tmp, dir("root",
		file("a.txt", "abc"),
		symlink("l1", "a.txt"),
		symlink("l2", "missing"),
	))
	root := filepath.Join(tmp, "root")

	report := CollectStats(root, nil, WalkOptions{})
	assert.Empty(t, report.Errors)
	assert.Equal(t, 2, report.Stats.TotalSymlinks)
	assert.Equal(t, 1, report.Stats.TotalFiles)

	followed := CollectStats(root, nil, WalkOptions{FollowSymlinks: true})
	assert.Equal(t, 2, followed.Stats.TotalSymlinks)
	assert.Equal(t, 2, followed.Stats.TotalFiles)
	assert.Equal(t, int64(6), followed.Stats.TotalSize)
	require.Len(t, followed.Errors, 1)
	assert.ErrorIs(t, followed.Errors[0], ErrResolveSymlink)
}

func TestCollectStatsEmptyAndMissing(t *testing.T) {
	t.Parallel()

	empty := CollectStats(t.TempDir(), nil, WalkOptions{})
	assert.Equal(t, Stats{}, empty.Stats)
	assert.Empty(t, empty.Errors)

	missing := CollectStats(filepath.Join(t.TempDir(), "missing"), nil, WalkOptions{})
	assert.Equal(t, Stats{}, missing.Stats)
	require.Len(t, missing.Errors, 1)
	assert.ErrorIs(t, missing.Errors[0], ErrListDir)
}
