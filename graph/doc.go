// Copyright (c) 2025, Graph Playground Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package graph compiles and runs the playground's node-graph
// compute programs: source discovery (Registry), WGSL compilation
// with include resolution and change tracking (Compiler,
// FileTracker), and the compiled program lifecycle (Graph).
package graph
