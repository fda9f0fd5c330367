// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fsx

package fsx

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// nodeKind is the kind of one fixture node.
type nodeKind uint8

const (
	kindFile nodeKind = iota
	kindDir
	kindSymlink
)

// node is one fixture file system node.
type node struct {
	name     string
	content  string
	target   string
	children []node
	kind     nodeKind
}

func file(name, content string) node {
	return node{kind: kindFile, name: name, content: content}
}

func dir(name string, children ...node) node {
	return node{kind: kindDir, name: name, children: children}
}

func symlink(name, target string) node {
	return node{kind: kindSymlink, name: name, target: target}
}

// buildTree materializes n under parent.
func buildTree(t *testing.T, parent string, n node) {
	t.Helper()

	path := filepath.Join(parent, n.name)
	switch n.kind {
	case kindFile:
		require.NoError(t, os.WriteFile(path, []byte(n.content), 0o600))
	case kindDir:
		require.NoError(t, os.Mkdir(path, 0o755))
		for _, child := range n.children {
			buildTree(t, path, child)
		}
	case kindSymlink:
		require.NoError(t, os.Symlink(n.target, path))
	}
}

// scenarioTree is root/{file.txt, subdir/{file2.txt, subdir2/{file3.txt}}}.
func scenarioTree() node {
	return dir("root",
		file("file.txt", "hello"),
		dir("subdir",
			file("file2.txt", "world!"),
			dir("subdir2",
				file("file3.txt", "hello world!"),
			),
		),
	)
}

// newScenario builds scenarioTree in a temp dir and returns its root.
func newScenario(t *testing.T) string {
	t.Helper()

	tmp := t.TempDir()
	buildTree(t, tmp, scenarioTree())
	return filepath.Join(tmp, "root")
}

// skipWithoutSymlinks skips tests needing unprivileged symlinks.
func skipWithoutSymlinks(t *testing.T) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("symlink fixtures need unprivileged symlink support")
	}
}
