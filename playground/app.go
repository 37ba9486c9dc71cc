// Copyright (c) 2025, Graph Playground Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package playground

import (
	"fmt"
	"image"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/stringsx"
	"cogentcore.org/core/math32"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/workgraph/playground/gpu"
	"github.com/workgraph/playground/graph"
)

const appTitle = "Work Graph Playground"

// DefaultSize is the initial window size.
var DefaultSize = image.Point{1280, 720}

// Config holds the startup options, set from the command line.
type Config struct {
	// ForceFallbackAdapter selects the software rasterizer adapter.
	ForceFallbackAdapter bool

	// DebugLayer enables API validation logging.
	DebugLayer bool

	// GPUValidation enables GPU-assisted validation.
	GPUValidation bool

	// Tutorials overrides the tutorials root directory.
	// Default "tutorials".
	Tutorials string
}

// App owns the window, the GPU stack, the program registry, and the
// live graph, and runs the frame loop. Everything happens on the
// main thread; the GPU runs asynchronously behind the frame slots.
type App struct {
	GPU     *gpu.GPU
	Device  *gpu.Device
	Surface *gpu.Surface
	Frames  *gpu.Frames

	window    *glfw.Window
	compiler  *graph.Compiler
	registry  *graph.Registry
	resources *Resources
	overlay   *overlay

	// live is the running graph instance. It is only replaced by a
	// successfully built one: a broken edit or switch keeps it.
	live  *graph.Graph
	index int

	// started is when the current program was selected; the shader
	// time uniform counts from here.
	started time.Time

	// clearPersistent requests a one-time persistent buffer clear
	// in the next frame, set on successful program switch.
	clearPersistent bool

	banner  banner
	keys    keyEdges
	titleAt time.Time

	// build and idle are the graph construction and device idle
	// operations, as fields so the switch protocol is testable
	// without a device.
	build func(pr graph.Program, solution bool) (*graph.Graph, error)
	idle  func()
}

// NewApp opens the window, sets up the device and surface, scans the
// tutorials, and builds the first program. Any error here is fatal:
// the caller prints it and exits nonzero.
func NewApp(cfg *Config) (*App, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	gp, err := gpu.NewGPU(&gpu.Options{
		ForceFallback: cfg.ForceFallbackAdapter,
		DebugLayer:    cfg.DebugLayer,
		GPUValidation: cfg.GPUValidation,
	})
	if err != nil {
		return nil, err
	}
	dv, err := gpu.NewDevice(gp)
	if err != nil {
		gp.Release()
		return nil, err
	}
	window, err := gpu.NewGLFWWindow(DefaultSize, appTitle)
	if err != nil {
		dv.Release()
		gp.Release()
		return nil, err
	}
	w, h := window.GetFramebufferSize()
	size := image.Point{w, h}
	su, err := gpu.NewSurface(gp, dv, gp.GLFWSurface(window), size)
	if err != nil {
		return nil, err
	}
	root := cfg.Tutorials
	if root == "" {
		root = "tutorials"
	}
	a := &App{
		GPU:      gp,
		Device:   dv,
		Surface:  su,
		Frames:   gpu.NewFrames(dv),
		window:   window,
		compiler: graph.NewCompiler(root),
		registry: graph.NewRegistry(root),
		started:  time.Now(),
	}
	a.idle = dv.WaitDone
	a.resources, err = NewResources(dv, size)
	if err != nil {
		return nil, err
	}
	a.overlay, err = newOverlay(dv, su.Format)
	if err != nil {
		return nil, err
	}
	a.build = func(pr graph.Program, solution bool) (*graph.Graph, error) {
		return graph.NewGraph(dv, a.compiler, a.resources.Layouts, pr, solution)
	}
	programs := a.registry.Programs()
	if len(programs) == 0 {
		return nil, fmt.Errorf("no tutorial programs found under %s", root)
	}
	a.live, err = a.build(programs[0], false)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Run loops until the window is closed, then waits for the device.
func (a *App) Run() error {
	for !a.window.ShouldClose() {
		glfw.PollEvents()
		if err := a.Frame(); err != nil {
			return err
		}
	}
	a.Device.WaitDone()
	return nil
}

// Frame runs one frame: input and switching, resize, hot reload,
// frame slot and surface image acquisition, clears, globals upload,
// dispatch, blit, overlay, present.
func (a *App) Frame() error {
	now := time.Now()
	a.handleKeys(now)

	w, h := a.window.GetFramebufferSize()
	if w == 0 || h == 0 { // minimized
		return nil
	}
	size := image.Point{w, h}
	if size != a.resources.Size {
		a.idle()
		a.Surface.Reconfigure(size)
		if err := a.resources.Resize(size); err != nil {
			return err
		}
	}

	if a.compiler.Tracker.HasAnyChanged() {
		a.rebuild(a.index, a.live.Solution, false, now)
	}

	a.Frames.Begin()
	frame, err := a.Surface.GetCurrentTexture()
	if err != nil {
		// surface lost (e.g. mid-resize): reconfigure and skip the frame
		errors.Log(err)
		a.idle()
		a.Surface.Reconfigure(size)
		return nil
	}
	view, err := frame.CreateView(nil)
	if err != nil {
		frame.Release()
		return err
	}
	cmd, err := a.Device.Device.CreateCommandEncoder(nil)
	if err != nil {
		view.Release()
		frame.Release()
		return err
	}

	a.resources.ClearTransient(cmd)
	if a.clearPersistent {
		a.resources.ClearPersistent(cmd)
		a.clearPersistent = false
	}

	mx, my := a.window.GetCursorPos()
	a.resources.WriteGlobals(&Globals{
		Width:  uint32(size.X),
		Height: uint32(size.Y),
		Mouse:  math32.Vec2(float32(mx), float32(my)),
		Input:  InputState(a.window),
		Time:   float32(now.Sub(a.started).Seconds()),
	})

	a.live.Dispatch(cmd, a.resources.Group)
	a.resources.Blit(cmd, frame)
	if a.banner.active(now) {
		a.overlay.render(cmd, view)
	}

	cb, err := cmd.Finish(nil)
	if err != nil {
		cmd.Release()
		view.Release()
		frame.Release()
		return err
	}
	a.Frames.Submitted(a.Device.Queue.Submit(cb))
	a.Surface.Present()

	cb.Release()
	cmd.Release()
	view.Release()
	frame.Release()

	a.updateTitle(now)
	return nil
}

// handleKeys processes the playground's own controls: Tab and
// Shift+Tab cycle programs, Enter toggles the sample solution,
// F1 toggles vsync.
func (a *App) handleKeys(now time.Time) {
	programs := a.registry.Programs()
	if a.keys.pressed(a.window, glfw.KeyTab) {
		step := 1
		if a.shiftDown() {
			step = len(programs) - 1
		}
		a.rebuild((a.index+step)%len(programs), false, true, now)
	}
	if a.keys.pressed(a.window, glfw.KeyEnter) {
		a.rebuild(a.index, !a.live.Solution, true, now)
	}
	if a.keys.pressed(a.window, glfw.KeyF1) {
		a.idle()
		a.Surface.SetVSync(!a.Surface.VSync)
	}
}

func (a *App) shiftDown() bool {
	return a.window.GetKey(glfw.KeyLeftShift) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightShift) == glfw.Press
}

// rebuild compiles a replacement graph instance and swaps it in.
// On failure the previous instance keeps running and the error goes
// to the log and the timed banner. On success the old instance is
// released behind a device idle barrier and any shown error is
// cleared; a program switch also marks the persistent buffer for
// clearing and restarts the shader clock.
func (a *App) rebuild(index int, solution bool, isSwitch bool, now time.Time) {
	programs := a.registry.Programs()
	g, err := a.build(programs[index], solution)
	if err != nil {
		errors.Log(err)
		a.banner.arm(err.Error(), now)
		return
	}
	a.idle()
	if a.live != nil {
		a.live.Release()
	}
	a.live = g
	a.index = index
	a.banner.clear()
	if isSwitch {
		a.clearPersistent = true
		a.started = now
	}
}

// updateTitle refreshes the window title with the current program
// and error state, at most twice a second.
func (a *App) updateTitle(now time.Time) {
	if now.Sub(a.titleAt) < 500*time.Millisecond {
		return
	}
	a.titleAt = now
	name := a.live.Program.Name
	if a.live.Solution {
		name += " (solution)"
	}
	title := fmt.Sprintf("%s  |  %s", appTitle, name)
	if a.banner.active(now) {
		title += "  |  error: " + firstLine(a.banner.text)
	}
	a.window.SetTitle(title)
}

func firstLine(s string) string {
	return stringsx.SplitLines(s)[0]
}

// Release frees everything. Call after Run returns, before
// terminating the windowing system.
func (a *App) Release() {
	a.Device.WaitDone()
	if a.live != nil {
		a.live.Release()
		a.live = nil
	}
	a.overlay.release()
	a.resources.Release()
	a.Surface.Release()
	a.Device.Release()
	a.GPU.Release()
	a.window.Destroy()
}
