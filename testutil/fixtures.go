/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package testutil provides testing utilities for propcheck.
package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"bennypowers.dev/propcheck/internal/mapfs"
)

// findFixture locates a path under the repository testdata directory.
// Go runs tests from the package directory, so parents are tried too.
func findFixture(t *testing.T, fixture string) string {
	t.Helper()
	for _, dir := range []string{"testdata", filepath.Join("..", "testdata"), filepath.Join("..", "..", "testdata")} {
		p := filepath.Join(dir, fixture)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	t.Fatalf("could not find fixture %s (tried all paths)", fixture)
	return ""
}

// NewFixtureFS loads fixture files from testdata and returns a MapFileSystem
// with files mapped to the specified root path.
func NewFixtureFS(t *testing.T, fixtureDir string, rootPath string) *mapfs.MapFileSystem {
	t.Helper()

	fixturePath := findFixture(t, fixtureDir)
	mfs := mapfs.New()

	err := filepath.WalkDir(fixturePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(fixturePath, path)
		if err != nil {
			return err
		}

		mfs.AddFile(filepath.Join(rootPath, relPath), string(content), 0644)
		return nil
	})
	if err != nil {
		t.Fatalf("failed to load fixtures from %s: %v", fixtureDir, err)
	}

	return mfs
}

// LoadFixtureFile reads a single fixture file and returns its content.
func LoadFixtureFile(t *testing.T, fixture string) []byte {
	t.Helper()

	content, err := os.ReadFile(findFixture(t, fixture))
	if err != nil {
		t.Fatalf("failed to read fixture %s: %v", fixture, err)
	}
	return content
}
