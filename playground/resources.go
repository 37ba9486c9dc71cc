// Copyright (c) 2025, Graph Playground Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package playground

import (
	"fmt"
	"image"

	"cogentcore.org/core/math32"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/workgraph/playground/gpu"
	"github.com/workgraph/playground/graph"
)

const (
	// ScratchSize is the per-frame scratch buffer size in bytes
	// (100 * 1024 u32 values). Cleared before every dispatch.
	ScratchSize = 100 * 1024 * 4

	// PersistentSize is the persistent scratch buffer size in bytes
	// (100 * 1024 * 1024 u32 values). Cleared only on program switch.
	PersistentSize = 100 * 1024 * 1024 * 4

	// GlobalsSize is the frame globals uniform block size in bytes.
	GlobalsSize = 32
)

// Globals is the per-frame parameter block bound as the group 0
// uniform. The layout mirrors the WGSL Globals struct in
// tutorials/Common.wgsli.
type Globals struct {
	// Width and Height are the backbuffer size in pixels.
	Width  uint32
	Height uint32

	// Mouse is the pointer position in pixels.
	Mouse math32.Vector2

	// Input is the input bitmask, see the Input* constants.
	Input uint32

	// Time is seconds since the current program was selected.
	Time float32

	pad [2]uint32
}

// Resources owns everything bound to every graph dispatch: the
// writable backbuffer image, the scratch and persistent buffers,
// the font table, the globals uniform, and the group 0 bind group
// tying them together per the layout in [graph.NewLayouts].
type Resources struct {
	Layouts *graph.Layouts

	// Group is the group 0 bind group, rebuilt on resize.
	Group *wgpu.BindGroup

	// Size is the current backbuffer size.
	Size image.Point

	globals    *wgpu.Buffer
	font       *wgpu.Buffer
	scratch    *wgpu.Buffer
	persistent *wgpu.Buffer
	backbuffer *wgpu.Texture
	backView   *wgpu.TextureView

	device *gpu.Device
}

// NewResources creates the shared layouts and buffers and the
// backbuffer at the given size.
func NewResources(dv *gpu.Device, size image.Point) (*Resources, error) {
	ly, err := graph.NewLayouts(dv)
	if err != nil {
		return nil, err
	}
	rs := &Resources{Layouts: ly, device: dv}
	dev := dv.Device
	rs.globals, err = dev.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "globals",
		Size:  GlobalsSize,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("globals buffer: %w", err)
	}
	rs.font, err = dev.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "font",
		Contents: wgpu.ToBytes(fontGlyphs[:]),
		Usage:    wgpu.BufferUsageStorage,
	})
	if err != nil {
		rs.Release()
		return nil, fmt.Errorf("font buffer: %w", err)
	}
	rs.scratch, err = dev.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "scratch",
		Size:  ScratchSize,
		Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		rs.Release()
		return nil, fmt.Errorf("scratch buffer: %w", err)
	}
	rs.persistent, err = dev.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "persistent",
		Size:  PersistentSize,
		Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		rs.Release()
		return nil, fmt.Errorf("persistent buffer: %w", err)
	}
	if err := rs.Resize(size); err != nil {
		rs.Release()
		return nil, err
	}
	return rs, nil
}

// Resize recreates the backbuffer image at the new size and rebuilds
// the group 0 bind group. The device must be idle.
func (rs *Resources) Resize(size image.Point) error {
	rs.releaseBackbuffer()
	dev := rs.device.Device
	tx, err := dev.CreateTexture(&wgpu.TextureDescriptor{
		Label: "backbuffer",
		Size: wgpu.Extent3D{
			Width:              uint32(size.X),
			Height:             uint32(size.Y),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatRGBA8Unorm,
		Usage:         wgpu.TextureUsageStorageBinding | wgpu.TextureUsageCopySrc | wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		return fmt.Errorf("backbuffer %v: %w", size, err)
	}
	view, err := tx.CreateView(nil)
	if err != nil {
		tx.Release()
		return fmt.Errorf("backbuffer view: %w", err)
	}
	group, err := dev.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "graph shared resources",
		Layout: rs.Layouts.Shared,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: rs.globals, Size: wgpu.WholeSize},
			{Binding: 1, Buffer: rs.font, Size: wgpu.WholeSize},
			{Binding: 2, TextureView: view},
			{Binding: 3, Buffer: rs.scratch, Size: wgpu.WholeSize},
			{Binding: 4, Buffer: rs.persistent, Size: wgpu.WholeSize},
		},
	})
	if err != nil {
		view.Release()
		tx.Release()
		return fmt.Errorf("shared bind group: %w", err)
	}
	rs.backbuffer = tx
	rs.backView = view
	rs.Group = group
	rs.Size = size
	return nil
}

// ClearTransient resets the per-frame resources: the backbuffer to
// opaque white and the scratch buffer to zero. Runs every frame,
// before the dispatch.
func (rs *Resources) ClearTransient(cmd *wgpu.CommandEncoder) {
	pass := cmd.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "clear backbuffer",
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       rs.backView,
			LoadOp:     wgpu.LoadOpClear,
			ClearValue: wgpu.Color{R: 1, G: 1, B: 1, A: 1},
			StoreOp:    wgpu.StoreOpStore,
		}},
	})
	pass.End()
	pass.Release()
	cmd.ClearBuffer(rs.scratch, 0, ScratchSize)
}

// ClearPersistent zeroes the persistent scratch buffer. Runs once
// after a successful program switch, so each program starts from
// clean persistent state.
func (rs *Resources) ClearPersistent(cmd *wgpu.CommandEncoder) {
	cmd.ClearBuffer(rs.persistent, 0, PersistentSize)
}

// WriteGlobals uploads the frame parameter block.
func (rs *Resources) WriteGlobals(g *Globals) {
	rs.device.Queue.WriteBuffer(rs.globals, 0, wgpu.ToBytes([]Globals{*g}))
}

// Blit copies the backbuffer into the given surface texture.
// Formats must match; the surface is configured rgba8unorm to
// match the backbuffer.
func (rs *Resources) Blit(cmd *wgpu.CommandEncoder, dst *wgpu.Texture) {
	cmd.CopyTextureToTexture(
		&wgpu.ImageCopyTexture{Texture: rs.backbuffer},
		&wgpu.ImageCopyTexture{Texture: dst},
		&wgpu.Extent3D{
			Width:              uint32(rs.Size.X),
			Height:             uint32(rs.Size.Y),
			DepthOrArrayLayers: 1,
		},
	)
}

func (rs *Resources) releaseBackbuffer() {
	if rs.Group != nil {
		rs.Group.Release()
		rs.Group = nil
	}
	if rs.backView != nil {
		rs.backView.Release()
		rs.backView = nil
	}
	if rs.backbuffer != nil {
		rs.backbuffer.Release()
		rs.backbuffer = nil
	}
}

// Release frees all resources. The device must be idle.
func (rs *Resources) Release() {
	rs.releaseBackbuffer()
	for _, b := range []**wgpu.Buffer{&rs.globals, &rs.font, &rs.scratch, &rs.persistent} {
		if *b != nil {
			(*b).Release()
			*b = nil
		}
	}
	if rs.Layouts != nil {
		rs.Layouts.Release()
		rs.Layouts = nil
	}
}
