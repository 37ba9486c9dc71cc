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

func TestCompileBasic(t *testing.T) {
	cp := NewCompiler("testdata")
	prog, err := cp.Compile("basic.wgsl")
	require.NoError(t, err)
	assert.Equal(t, "basic.wgsl", prog.Name)
	assert.NotEmpty(t, prog.SPIRV)
	assert.Zero(t, len(prog.SPIRV)%4)
	assert.Zero(t, prog.BackingBytes)
	// no includes: exactly the top-level file is tracked
	assert.Equal(t, 1, cp.Tracker.Len())
}

func TestCompileInclude(t *testing.T) {
	cp := NewCompiler("testdata")
	prog, err := cp.Compile("with_include.wgsl")
	require.NoError(t, err)
	assert.Equal(t, 2, cp.Tracker.Len())
	assert.Contains(t, prog.WGSL, "fn double_it")
	// the include line itself is commented out in the preprocessed text
	assert.Contains(t, prog.WGSL, `// #include "helpers.wgsli"`)
}

func TestCompileIncludeOnce(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "helpers.wgsli"), "fn double_it(x: u32) -> u32 {\n    return x * 2u;\n}\n")
	writeFile(t, filepath.Join(dir, "twice.wgsl"), `#include "helpers.wgsli"
#include "helpers.wgsli"

@group(0) @binding(0) var<storage, read_write> out: array<u32>;

@compute @workgroup_size(1)
fn entry(@builtin(global_invocation_id) gid: vec3<u32>) {
    out[gid.x] = double_it(gid.x);
}
`)
	cp := NewCompiler(dir)
	prog, err := cp.Compile("twice.wgsl")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(prog.WGSL, "fn double_it"))
	assert.Equal(t, 2, cp.Tracker.Len())
}

func TestCompileBroken(t *testing.T) {
	cp := NewCompiler("testdata")
	_, err := cp.Compile("broken.wgsl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.wgsl")
}

func TestCompileMissingFile(t *testing.T) {
	cp := NewCompiler("testdata")
	_, err := cp.Compile("nope.wgsl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading program source")
	assert.Zero(t, cp.Tracker.Len())
}

func TestCompileMissingInclude(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "lonely.wgsl"), `#include "missing.wgsli"

@group(0) @binding(0) var<storage, read_write> out: array<u32>;

@compute @workgroup_size(1)
fn entry(@builtin(global_invocation_id) gid: vec3<u32>) {
    out[gid.x] = 1u;
}
`)
	cp := NewCompiler(dir)
	// the missing include is logged and skipped; the program itself compiles
	prog, err := cp.Compile("lonely.wgsl")
	require.NoError(t, err)
	assert.Equal(t, 1, cp.Tracker.Len())
	assert.Contains(t, prog.WGSL, `// #include "missing.wgsli"`)
}

func TestCompileBackingDirective(t *testing.T) {
	cp := NewCompiler("testdata")
	prog, err := cp.Compile("backing.wgsl")
	require.NoError(t, err)
	assert.Equal(t, uint64(4096), prog.BackingBytes)
}

func TestBackingSize(t *testing.T) {
	assert.Equal(t, uint64(0), backingSize("fn f() {}"))
	assert.Equal(t, uint64(123), backingSize("//#backing 123\nfn f() {}"))
	assert.Equal(t, uint64(64), backingSize("// comment\n//#backing   64\n"))
	// malformed directives are skipped
	assert.Equal(t, uint64(0), backingSize("//#backing lots\n"))
	// only the first valid directive counts
	assert.Equal(t, uint64(8), backingSize("//#backing 8\n//#backing 16\n"))
}

func TestLoadSourceRetries(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "late.wgsl")
	_, err := loadSource(fn)
	require.Error(t, err)
	require.NoError(t, os.WriteFile(fn, []byte("x"), 0666))
	src, err := loadSource(fn)
	require.NoError(t, err)
	assert.Equal(t, "x", src)
}
