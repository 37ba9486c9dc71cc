// Copyright (c) 2025, Graph Playground Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command playground opens the work graph playground: a window
// running GPU node-graph tutorial programs with hot reload.
//
// Usage:
//
//	playground [--forceWarpAdapter] [--enableDebugLayer] [--enableGpuValidationLayer]
//
// Unrecognized arguments are ignored.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/workgraph/playground/gpu"
	"github.com/workgraph/playground/playground"
)

func init() {
	// glfw and the surface must stay on the main OS thread
	runtime.LockOSThread()
}

func main() {
	cfg := &playground.Config{}
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--forceWarpAdapter":
			cfg.ForceFallbackAdapter = true
		case "--enableDebugLayer":
			cfg.DebugLayer = true
		case "--enableGpuValidationLayer":
			cfg.GPUValidation = true
		}
	}
	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg *playground.Config) error {
	if err := gpu.Init(); err != nil {
		return err
	}
	defer gpu.Terminate()
	app, err := playground.NewApp(cfg)
	if err != nil {
		return err
	}
	defer app.Release()
	return app.Run()
}
