// Copyright (c) 2025, Graph Playground Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "github.com/cogentcore/webgpu/wgpu"

// FramesInFlight is the number of frames that can be recorded
// ahead of the GPU.
const FramesInFlight = 3

// Frames pipelines up to [FramesInFlight] submitted frames.
// Each slot remembers the queue submission index of the frame last
// submitted from it; reusing a slot blocks until that submission
// has completed. This is the only steady state blocking point.
type Frames struct {
	device  *Device
	slots   [FramesInFlight]frameSlot
	current int
}

type frameSlot struct {
	submitted bool
	index     wgpu.SubmissionIndex
}

func NewFrames(dv *Device) *Frames {
	return &Frames{device: dv}
}

// Begin advances to the next frame slot, waiting until the work
// previously submitted from it has completed.
func (fr *Frames) Begin() {
	fr.current = (fr.current + 1) % FramesInFlight
	sl := &fr.slots[fr.current]
	if sl.submitted {
		fr.device.WaitFor(sl.index)
		sl.submitted = false
	}
}

// Submitted records the submission index of the work just submitted
// from the current slot.
func (fr *Frames) Submitted(idx wgpu.SubmissionIndex) {
	fr.slots[fr.current] = frameSlot{submitted: true, index: idx}
}
