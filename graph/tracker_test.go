// Copyright (c) 2025, Graph Playground Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0666))
}

func touch(t *testing.T, path string, at time.Time) {
	t.Helper()
	require.NoError(t, os.Chtimes(path, at, at))
}

func TestTrackerReportsChangeOnce(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "a.wgsl")
	writeFile(t, fn, "one")

	ft := NewFileTracker()
	ft.RecordOrUpdate(fn)
	assert.Equal(t, 1, ft.Len())
	assert.False(t, ft.HasAnyChanged())

	touch(t, fn, time.Now().Add(time.Second))
	assert.True(t, ft.HasAnyChanged())
	// the change was consumed by the previous poll
	assert.False(t, ft.HasAnyChanged())
}

func TestTrackerMultipleFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.wgsl")
	b := filepath.Join(dir, "b.wgsli")
	writeFile(t, a, "a")
	writeFile(t, b, "b")

	ft := NewFileTracker()
	ft.RecordOrUpdate(a)
	ft.RecordOrUpdate(b)
	assert.Equal(t, 2, ft.Len())
	assert.False(t, ft.HasAnyChanged())

	touch(t, b, time.Now().Add(time.Second))
	assert.True(t, ft.HasAnyChanged())
	assert.False(t, ft.HasAnyChanged())
}

func TestTrackerIgnoresStatFailures(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "gone.wgsl")

	ft := NewFileTracker()
	// recording a nonexistent file is a no-op
	ft.RecordOrUpdate(fn)
	assert.Equal(t, 0, ft.Len())

	writeFile(t, fn, "x")
	ft.RecordOrUpdate(fn)
	assert.Equal(t, 1, ft.Len())

	// a deleted file neither reports a change nor drops the entry
	require.NoError(t, os.Remove(fn))
	assert.False(t, ft.HasAnyChanged())
	assert.Equal(t, 1, ft.Len())

	// reappearing with a new mtime reports again
	writeFile(t, fn, "y")
	touch(t, fn, time.Now().Add(time.Second))
	assert.True(t, ft.HasAnyChanged())
}

func TestTrackerRecordOrUpdateResets(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "a.wgsl")
	writeFile(t, fn, "one")

	ft := NewFileTracker()
	ft.RecordOrUpdate(fn)
	touch(t, fn, time.Now().Add(time.Second))
	// a recompile re-records the file, absorbing the pending change
	ft.RecordOrUpdate(fn)
	assert.False(t, ft.HasAnyChanged())
}
