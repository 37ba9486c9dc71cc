// Copyright (c) 2025, Graph Playground Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workgraph/playground/gpu"
)

func TestCompileProgramEntryNode(t *testing.T) {
	cp := NewCompiler("testdata")

	prog, err := compileProgram(cp, Program{Name: "basic", File: "basic.wgsl"}, false)
	require.NoError(t, err)
	assert.True(t, HasComputeEntry(prog.SPIRV, EntryPointName))

	_, err = compileProgram(cp, Program{Name: "noentry", File: "noentry.wgsl"}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), EntryPointName)
}

func TestCompileProgramMissingSolution(t *testing.T) {
	cp := NewCompiler("testdata")
	_, err := compileProgram(cp, Program{Name: "basic", File: "basic.wgsl"}, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sample solution")
}

func TestNewGraph(t *testing.T) {
	t.Skip("Need software GPU on CI")
	gp, dev, err := gpu.NoDisplayGPU()
	require.NoError(t, err)
	defer gp.Release()
	defer dev.Release()

	ly, err := NewLayouts(dev)
	require.NoError(t, err)
	defer ly.Release()

	cp := NewCompiler("testdata")

	g, err := NewGraph(dev, cp, ly, Program{Name: "basic", File: "basic.wgsl"}, false)
	require.NoError(t, err)
	assert.Equal(t, Ready, g.State)
	assert.Zero(t, g.BackingBytes)
	assert.Nil(t, g.backing)
	g.Release()

	g, err = NewGraph(dev, cp, ly, Program{Name: "backing", File: "backing.wgsl"}, false)
	require.NoError(t, err)
	assert.Equal(t, Ready, g.State)
	assert.Equal(t, uint64(4096), g.BackingBytes)
	assert.NotNil(t, g.backing)
	assert.True(t, g.initBacking)
	dev.WaitDone()
	g.Release()
}
