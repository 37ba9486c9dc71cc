// Copyright (c) 2025, Graph Playground Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/workgraph/playground/gpu"
)

// EntryPointName is the name of the compute function every program
// must declare as its entry node. The entry node is launched with a
// single record per frame; everything else the program does fans out
// from there.
const EntryPointName = "entry"

// States are the lifecycle states of a [Graph].
type States int32

const (
	// Uninitialized is the zero state, before compilation starts.
	Uninitialized States = iota

	// Compiling means sources are being compiled and GPU objects created.
	Compiling

	// Ready means the graph can be dispatched. Terminal: a reload or
	// switch builds a replacement instance rather than mutating this one.
	Ready

	// Failed means compilation or pipeline creation failed. Terminal.
	Failed
)

// Layouts holds the bind group layouts common to every graph.
// Group 0 is the fixed resource contract every program sees: the
// frame globals uniform, the font table, the writable backbuffer
// image, and the scratch and persistent buffers. Group 1 holds the
// per-graph backing buffer and is only part of a pipeline layout
// when the program declares a nonzero backing requirement.
type Layouts struct {
	Shared  *wgpu.BindGroupLayout
	Backing *wgpu.BindGroupLayout
}

// NewLayouts creates the shared bind group layouts on the device.
func NewLayouts(dv *gpu.Device) (*Layouts, error) {
	shared, err := dv.Device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "graph shared resources",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageCompute,
				Buffer:     wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeUniform},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageCompute,
				Buffer:     wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeReadOnlyStorage},
			},
			{
				Binding:    2,
				Visibility: wgpu.ShaderStageCompute,
				StorageTexture: wgpu.StorageTextureBindingLayout{
					Access:        wgpu.StorageTextureAccessWriteOnly,
					Format:        wgpu.TextureFormatRGBA8Unorm,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
			{
				Binding:    3,
				Visibility: wgpu.ShaderStageCompute,
				Buffer:     wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeStorage},
			},
			{
				Binding:    4,
				Visibility: wgpu.ShaderStageCompute,
				Buffer:     wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeStorage},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("graph: shared layout: %w", err)
	}
	backing, err := dv.Device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "graph backing memory",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageCompute,
				Buffer:     wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeStorage},
			},
		},
	})
	if err != nil {
		shared.Release()
		return nil, fmt.Errorf("graph: backing layout: %w", err)
	}
	return &Layouts{Shared: shared, Backing: backing}, nil
}

// Release frees the layouts.
func (ly *Layouts) Release() {
	if ly.Shared != nil {
		ly.Shared.Release()
		ly.Shared = nil
	}
	if ly.Backing != nil {
		ly.Backing.Release()
		ly.Backing = nil
	}
}

// Graph is one compiled, dispatchable program instance.
// Instances are immutable once built: hot reload and program
// switching construct a replacement and release the old instance
// after the device is idle.
type Graph struct {
	// Program is the source descriptor this instance was built from.
	Program Program

	// Solution is set when the sample solution source was used.
	Solution bool

	// State is Ready once construction succeeds. Constructors
	// return an error instead of a Failed instance.
	State States

	// BackingBytes is the backing memory requirement declared by
	// the source. Zero means no backing buffer was allocated.
	BackingBytes uint64

	pipeline     *wgpu.ComputePipeline
	module       *wgpu.ShaderModule
	backing      *wgpu.Buffer
	backingGroup *wgpu.BindGroup
	initBacking  bool
}

// NewGraph compiles the program (the sample solution when solution
// is set) and creates its pipeline against the shared layouts.
// On error nothing is retained and the previous instance, if any,
// can keep running.
func NewGraph(dv *gpu.Device, cp *Compiler, ly *Layouts, pr Program, solution bool) (*Graph, error) {
	g := &Graph{Program: pr, Solution: solution, State: Compiling}
	prog, err := compileProgram(cp, pr, solution)
	if err != nil {
		g.State = Failed
		return nil, err
	}
	g.BackingBytes = prog.BackingBytes
	dev := dv.Device
	g.module, err = dev.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          prog.Name,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: prog.WGSL},
	})
	if err != nil {
		g.State = Failed
		return nil, fmt.Errorf("shader module for %s: %w", prog.Name, err)
	}
	bgls := []*wgpu.BindGroupLayout{ly.Shared}
	if g.BackingBytes > 0 {
		bgls = append(bgls, ly.Backing)
	}
	pl, err := dev.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            prog.Name,
		BindGroupLayouts: bgls,
	})
	if err != nil {
		g.fail()
		return nil, fmt.Errorf("pipeline layout for %s: %w", prog.Name, err)
	}
	g.pipeline, err = dev.CreateComputePipeline(&wgpu.ComputePipelineDescriptor{
		Label:  prog.Name,
		Layout: pl,
		Compute: wgpu.ProgrammableStageDescriptor{
			Module:     g.module,
			EntryPoint: EntryPointName,
		},
	})
	pl.Release()
	if err != nil {
		g.fail()
		return nil, fmt.Errorf("pipeline for %s: %w", prog.Name, err)
	}
	if g.BackingBytes > 0 {
		g.backing, err = dev.CreateBuffer(&wgpu.BufferDescriptor{
			Label: prog.Name + " backing",
			Size:  g.BackingBytes,
			Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopyDst,
		})
		if err != nil {
			g.fail()
			return nil, fmt.Errorf("backing memory for %s (%d bytes): %w", prog.Name, g.BackingBytes, err)
		}
		g.backingGroup, err = dev.CreateBindGroup(&wgpu.BindGroupDescriptor{
			Label:  prog.Name + " backing",
			Layout: ly.Backing,
			Entries: []wgpu.BindGroupEntry{
				{Binding: 0, Buffer: g.backing, Size: wgpu.WholeSize},
			},
		})
		if err != nil {
			g.fail()
			return nil, fmt.Errorf("backing bind group for %s: %w", prog.Name, err)
		}
		g.initBacking = true
	}
	g.State = Ready
	return g, nil
}

// compileProgram selects the source file, compiles it, and verifies
// the entry node declaration.
func compileProgram(cp *Compiler, pr Program, solution bool) (*CompiledProgram, error) {
	file := pr.File
	if solution {
		if pr.SolutionFile == "" {
			return nil, fmt.Errorf("%s does not provide a sample solution", pr.Name)
		}
		file = pr.SolutionFile
	}
	prog, err := cp.Compile(file)
	if err != nil {
		return nil, err
	}
	if !HasComputeEntry(prog.SPIRV, EntryPointName) {
		return nil, fmt.Errorf("%s: program does not declare a compute entry node named %q", file, EntryPointName)
	}
	return prog, nil
}

// Dispatch records one launch of the graph on the encoder: a single
// entry record. The first dispatch of an instance zeroes its backing
// memory first; after that the backing contents persist across frames.
func (g *Graph) Dispatch(cmd *wgpu.CommandEncoder, shared *wgpu.BindGroup) {
	if g.initBacking {
		cmd.ClearBuffer(g.backing, 0, g.BackingBytes)
		g.initBacking = false
	}
	pass := cmd.BeginComputePass(nil)
	pass.SetPipeline(g.pipeline)
	pass.SetBindGroup(0, shared, nil)
	if g.backingGroup != nil {
		pass.SetBindGroup(1, g.backingGroup, nil)
	}
	pass.DispatchWorkgroups(1, 1, 1)
	pass.End()
	pass.Release()
}

func (g *Graph) fail() {
	g.State = Failed
	g.Release()
}

// Release frees the GPU objects held by the graph. The device must
// be idle if the graph has been dispatched.
func (g *Graph) Release() {
	if g.backingGroup != nil {
		g.backingGroup.Release()
		g.backingGroup = nil
	}
	if g.backing != nil {
		g.backing.Release()
		g.backing = nil
	}
	if g.pipeline != nil {
		g.pipeline.Release()
		g.pipeline = nil
	}
	if g.module != nil {
		g.module.Release()
		g.module = nil
	}
}
