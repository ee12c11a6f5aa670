/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package mapfs_test

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pcfs "bennypowers.dev/propcheck/fs"
	"bennypowers.dev/propcheck/internal/mapfs"
)

var _ pcfs.FileSystem = (*mapfs.MapFileSystem)(nil)

func TestMapFileSystem(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/styles/a.css", "a {}", 0644)
	mfs.AddFile("project/styles/nested/b.css", "b {}", 0644)

	data, err := mfs.ReadFile("/project/styles/a.css")
	require.NoError(t, err)
	assert.Equal(t, "a {}", string(data))

	assert.True(t, mfs.Exists("/project/styles"))
	assert.True(t, mfs.Exists("/project/styles/nested/b.css"))
	assert.False(t, mfs.Exists("/project/missing.css"))

	entries, err := mfs.ReadDir("/project/styles")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a.css", entries[0].Name())
	assert.True(t, entries[1].IsDir())

	var walked []string
	err = fs.WalkDir(mfs, "/project", func(p string, d fs.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			walked = append(walked, p)
		}
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/project/styles/a.css", "/project/styles/nested/b.css"}, walked)
	assert.Equal(t, walked, mfs.Paths())
}
