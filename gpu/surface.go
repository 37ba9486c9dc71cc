// Copyright (c) 2025, Graph Playground Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
)

// Surface manages presentation to a window: configuring the
// swapchain, acquiring the next image, and presenting.
//
// The surface is configured with CopyDst usage so the offscreen
// backbuffer image can be blitted into the acquired image directly.
type Surface struct {
	// Format is the texture format the surface is configured with.
	// RGBA8Unorm is preferred, to match the backbuffer image; on
	// platforms without it the first supported format is used.
	Format wgpu.TextureFormat

	// Size is the current surface size in pixels.
	Size image.Point

	// VSync synchronizes presentation with display refresh.
	// Changing it requires an idle device and [Surface.Reconfigure].
	VSync bool

	gpu       *GPU
	device    *Device
	surface   *wgpu.Surface
	alphaMode wgpu.CompositeAlphaMode
}

// NewSurface configures the given wgpu surface for presentation
// at the given size, with vsync initially on.
func NewSurface(gp *GPU, dv *Device, sf *wgpu.Surface, size image.Point) (*Surface, error) {
	caps := sf.GetCapabilities(gp.Adapter)
	if len(caps.Formats) == 0 {
		return nil, fmt.Errorf("gpu: surface reports no supported formats")
	}
	format := caps.Formats[0]
	for _, f := range caps.Formats {
		if f == wgpu.TextureFormatRGBA8Unorm {
			format = f
			break
		}
	}
	if format != wgpu.TextureFormatRGBA8Unorm {
		slog.Warn("gpu: surface does not support rgba8unorm", "using", format)
	}
	su := &Surface{
		Format:    format,
		VSync:     true,
		gpu:       gp,
		device:    dv,
		surface:   sf,
		alphaMode: caps.AlphaModes[0],
	}
	su.Reconfigure(size)
	return su, nil
}

// Reconfigure (re)configures the swapchain at the given size, with
// the current VSync setting. The device must be idle when resizing
// or toggling vsync on a live surface.
func (su *Surface) Reconfigure(size image.Point) {
	mode := wgpu.PresentModeFifo
	if !su.VSync {
		mode = wgpu.PresentModeImmediate
	}
	su.surface.Configure(su.gpu.Adapter, su.device.Device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment | wgpu.TextureUsageCopyDst,
		Format:      su.Format,
		Width:       uint32(size.X),
		Height:      uint32(size.Y),
		PresentMode: mode,
		AlphaMode:   su.alphaMode,
	})
	su.Size = size
}

// SetVSync sets the vsync mode and reconfigures the swapchain.
// The device must be idle.
func (su *Surface) SetVSync(on bool) {
	su.VSync = on
	su.Reconfigure(su.Size)
}

// GetCurrentTexture acquires the next surface image to render into.
// The returned texture must be released after presenting.
func (su *Surface) GetCurrentTexture() (*wgpu.Texture, error) {
	return su.surface.GetCurrentTexture()
}

// Present presents the most recently acquired surface image.
func (su *Surface) Present() {
	su.surface.Present()
}

// Release frees the underlying surface.
func (su *Surface) Release() {
	if su.surface != nil {
		su.surface.Release()
		su.surface = nil
	}
}
