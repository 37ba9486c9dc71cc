// Copyright (c) 2025, Graph Playground Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package playground

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/workgraph/playground/gpu"
)

// overlayShader draws a translucent strip along the bottom of the
// surface, signalling a compile error. The message itself goes to
// the log and the window title.
const overlayShader = `
@vertex
fn vs_main(@builtin(vertex_index) vi: u32) -> @builtin(position) vec4<f32> {
    var pos = array<vec2<f32>, 6>(
        vec2<f32>(-1.0, -1.0), vec2<f32>(1.0, -1.0), vec2<f32>(1.0, -0.92),
        vec2<f32>(-1.0, -1.0), vec2<f32>(1.0, -0.92), vec2<f32>(-1.0, -0.92),
    );
    return vec4<f32>(pos[vi], 0.0, 1.0);
}

@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(0.6, 0.05, 0.05, 0.85);
}
`

// overlay renders the error banner strip over the presented image.
type overlay struct {
	pipeline *wgpu.RenderPipeline
}

// newOverlay builds the banner pipeline targeting the surface format.
func newOverlay(dv *gpu.Device, format wgpu.TextureFormat) (*overlay, error) {
	module, err := dv.Device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "overlay",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: overlayShader},
	})
	if err != nil {
		return nil, fmt.Errorf("overlay shader: %w", err)
	}
	defer module.Release()
	pipe, err := dv.Device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label: "overlay",
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: "vs_main",
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{{
				Format: format,
				Blend: &wgpu.BlendState{
					Color: wgpu.BlendComponent{
						SrcFactor: wgpu.BlendFactorSrcAlpha,
						DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
						Operation: wgpu.BlendOperationAdd,
					},
					Alpha: wgpu.BlendComponent{
						SrcFactor: wgpu.BlendFactorOne,
						DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
						Operation: wgpu.BlendOperationAdd,
					},
				},
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
		Primitive: wgpu.PrimitiveState{
			Topology: wgpu.PrimitiveTopologyTriangleList,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("overlay pipeline: %w", err)
	}
	return &overlay{pipeline: pipe}, nil
}

// render draws the banner strip onto the given surface view,
// over the already-blitted frame.
func (ov *overlay) render(cmd *wgpu.CommandEncoder, view *wgpu.TextureView) {
	pass := cmd.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "overlay",
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:    view,
			LoadOp:  wgpu.LoadOpLoad,
			StoreOp: wgpu.StoreOpStore,
		}},
	})
	pass.SetPipeline(ov.pipeline)
	pass.Draw(6, 1, 0, 0)
	pass.End()
	pass.Release()
}

func (ov *overlay) release() {
	if ov.pipeline != nil {
		ov.pipeline.Release()
		ov.pipeline = nil
	}
}
