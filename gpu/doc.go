// Copyright (c) 2025, Graph Playground Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu is a thin device layer over wgpu for the playground:
// instance and adapter selection (GPU), logical device and queue
// (Device), window presentation (Surface), and pipelined frame
// slots (Frames).
package gpu
