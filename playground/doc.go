// Copyright (c) 2025, Graph Playground Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package playground is the frame orchestrator: it owns the window,
// the GPU stack, the shared resources every program binds, and the
// live compiled graph, and runs the per-frame loop with hot reload
// and program switching.
package playground
