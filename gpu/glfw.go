// Copyright (c) 2025, Graph Playground Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd

package gpu

import (
	"image"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// note: this file contains the glfw dependencies, for desktop platform builds.

// Init initializes the windowing system.
// IMPORTANT: must be called on the main initial thread!
func Init() error {
	err := glfw.Init()
	if err != nil {
		return errors.Log(err)
	}
	return nil
}

// Terminate shuts down the windowing system; call as the last thing
// before quitting.
// IMPORTANT: must be called on the main initial thread!
func Terminate() {
	glfw.Terminate()
}

// NewGLFWWindow makes a new glfw window of the given size,
// configured for wgpu rendering (no client GL API).
func NewGLFWWindow(size image.Point, title string) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	window, err := glfw.CreateWindow(size.X, size.Y, title, nil, nil)
	if err != nil {
		return nil, errors.Log(err)
	}
	return window, nil
}

// GLFWSurface returns a wgpu rendering surface for the given glfw window.
func (gp *GPU) GLFWSurface(window *glfw.Window) *wgpu.Surface {
	return gp.Instance.CreateSurface(wgpuglfw.GetSurfaceDescriptor(window))
}
