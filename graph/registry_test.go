// Copyright (c) 2025, Graph Playground Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTutorials(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "HelloWorkGraphs.wgsl"), "// a\n")
	writeFile(t, filepath.Join(dir, "HelloWorkGraphsSolution.wgsl"), "// a solution\n")
	writeFile(t, filepath.Join(dir, "PersistentPaint.wgsl"), "// b\n")
	writeFile(t, filepath.Join(dir, "Common.wgsli"), "// shared include\n")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "extra"), 0777))
	writeFile(t, filepath.Join(dir, "extra", "Nested.wgsl"), "// c\n")
	return dir
}

func TestRegistryScan(t *testing.T) {
	rg := NewRegistry(makeTutorials(t))
	prs := rg.Programs()
	require.Len(t, prs, 3)

	assert.Equal(t, "HelloWorkGraphs.wgsl", prs[0].File)
	assert.Equal(t, "HelloWorkGraphsSolution.wgsl", prs[0].SolutionFile)
	assert.True(t, strings.HasPrefix(prs[0].Name, "Tutorial 0: "))

	assert.Equal(t, "PersistentPaint.wgsl", prs[1].File)
	assert.Empty(t, prs[1].SolutionFile)

	assert.Equal(t, filepath.Join("extra", "Nested.wgsl"), prs[2].File)
	assert.True(t, strings.HasPrefix(prs[2].Name, "Tutorial 2: "))
}

func TestRegistryExcludesSolutionsAndIncludes(t *testing.T) {
	rg := NewRegistry(makeTutorials(t))
	for _, pr := range rg.Programs() {
		assert.False(t, strings.HasSuffix(strings.TrimSuffix(pr.File, SourceExt), SolutionSuffix))
		assert.NotContains(t, pr.File, IncludeExt)
	}
}

func TestRegistryScanIsCached(t *testing.T) {
	dir := makeTutorials(t)
	rg := NewRegistry(dir)
	require.Len(t, rg.Programs(), 3)
	// files added later are not picked up
	writeFile(t, filepath.Join(dir, "Latecomer.wgsl"), "// d\n")
	assert.Len(t, rg.Programs(), 3)
}

func TestRegistryEmptyRoot(t *testing.T) {
	rg := NewRegistry(t.TempDir())
	assert.Empty(t, rg.Programs())
}
