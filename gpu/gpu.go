// Copyright (c) 2025, Graph Playground Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
)

// Debug enables extra validation and logging from the API layer.
// Set before calling NewGPU.
var Debug = false

// Options configure adapter selection in [NewGPU].
type Options struct {
	// ForceFallback selects the software rasterizer adapter even
	// when a hardware adapter is present.
	ForceFallback bool

	// DebugLayer enables API validation logging.
	DebugLayer bool

	// GPUValidation enables additional GPU assisted validation,
	// at a significant performance cost.
	GPUValidation bool
}

// GPU holds the wgpu instance and the selected physical adapter.
// One GPU serves the whole process.
type GPU struct {
	Instance *wgpu.Instance
	Adapter  *wgpu.Adapter

	// DeviceName is the name of the adapter in use.
	DeviceName string

	// Fallback is set when the software rasterizer adapter was selected,
	// either by request or because no hardware adapter was available.
	Fallback bool
}

// NewGPU creates the instance and selects an adapter.
// When no hardware adapter is available, the software fallback
// adapter is tried before giving up.
func NewGPU(opts *Options) (*GPU, error) {
	if opts == nil {
		opts = &Options{}
	}
	if opts.DebugLayer || opts.GPUValidation {
		Debug = true
	}
	gp := &GPU{}
	gp.Instance = wgpu.CreateInstance(nil)
	if gp.Instance == nil {
		return nil, fmt.Errorf("gpu: failed to create wgpu instance")
	}
	ad, err := gp.Instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: opts.ForceFallback,
		PowerPreference:      wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil && !opts.ForceFallback {
		slog.Warn("gpu: no hardware adapter, trying software fallback", "err", err)
		ad, err = gp.Instance.RequestAdapter(&wgpu.RequestAdapterOptions{
			ForceFallbackAdapter: true,
		})
		gp.Fallback = true
	}
	if err != nil {
		gp.Release()
		return nil, fmt.Errorf("gpu: no usable adapter: %w", err)
	}
	gp.Adapter = ad
	gp.Fallback = gp.Fallback || opts.ForceFallback
	info := ad.GetInfo()
	gp.DeviceName = info.Name
	if Debug {
		slog.Info("gpu: selected adapter", "name", gp.DeviceName, "backend", info.BackendType, "fallback", gp.Fallback)
	}
	return gp, nil
}

// NoDisplayGPU creates a GPU and Device for headless compute,
// without any display surface. Used in tests.
func NoDisplayGPU() (*GPU, *Device, error) {
	gp, err := NewGPU(nil)
	if err != nil {
		return nil, nil, err
	}
	dv, err := NewDevice(gp)
	if err != nil {
		gp.Release()
		return nil, nil, err
	}
	return gp, dv, nil
}

// Release frees the adapter and instance.
func (gp *GPU) Release() {
	if gp.Adapter != nil {
		gp.Adapter.Release()
		gp.Adapter = nil
	}
	if gp.Instance != nil {
		gp.Instance.Release()
		gp.Instance = nil
	}
}

// PropertiesString returns a listing of the key adapter properties,
// for diagnostic logging.
func (gp *GPU) PropertiesString() string {
	info := gp.Adapter.GetInfo()
	return fmt.Sprintf("gpu: %s  backend: %v  type: %v", info.Name, info.BackendType, info.AdapterType)
}
