// Copyright (c) 2025, Graph Playground Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package playground

import (
	"image"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workgraph/playground/gpu"
)

// Globals is uploaded by memory layout; it must match both the
// uniform buffer size and the WGSL struct in tutorials/Common.wgsli.
func TestGlobalsLayout(t *testing.T) {
	assert.Equal(t, uintptr(GlobalsSize), unsafe.Sizeof(Globals{}))
	assert.Equal(t, uintptr(0), unsafe.Offsetof(Globals{}.Width))
	assert.Equal(t, uintptr(4), unsafe.Offsetof(Globals{}.Height))
	assert.Equal(t, uintptr(8), unsafe.Offsetof(Globals{}.Mouse))
	assert.Equal(t, uintptr(16), unsafe.Offsetof(Globals{}.Input))
	assert.Equal(t, uintptr(20), unsafe.Offsetof(Globals{}.Time))
}

func TestFontGlyphs(t *testing.T) {
	assert.Len(t, fontGlyphs, 128)
	// control characters are blank, printable glyphs are not
	assert.Zero(t, fontGlyphs[0])
	assert.NotZero(t, fontGlyphs['!'])
	assert.NotZero(t, fontGlyphs['A'])
	assert.NotZero(t, fontGlyphs['z'])
	assert.Zero(t, fontGlyphs[' '])
}

func TestBufferSizes(t *testing.T) {
	// sizes are part of the program-visible contract
	assert.Equal(t, 100*1024*4, ScratchSize)
	assert.Equal(t, 100*1024*1024*4, PersistentSize)
	assert.LessOrEqual(t, PersistentSize, gpu.MaxStorageBytes)
}

func TestNewResources(t *testing.T) {
	t.Skip("Need software GPU on CI")
	gp, dev, err := gpu.NoDisplayGPU()
	require.NoError(t, err)
	defer gp.Release()
	defer dev.Release()

	rs, err := NewResources(dev, image.Point{640, 480})
	require.NoError(t, err)
	assert.NotNil(t, rs.Group)
	assert.Equal(t, image.Point{640, 480}, rs.Size)

	require.NoError(t, rs.Resize(image.Point{800, 600}))
	assert.Equal(t, image.Point{800, 600}, rs.Size)

	dev.WaitDone()
	rs.Release()
}
