// Copyright (c) 2025, Graph Playground Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// MaxStorageBytes is the storage buffer size limit requested from
// the device. The persistent scratch buffer alone is 400 MiB, so the
// default 128 MiB limit is raised.
const MaxStorageBytes = 512 * 1024 * 1024

// Device holds the logical device and its queue.
type Device struct {
	Device *wgpu.Device
	Queue  *wgpu.Queue
}

// NewDevice creates the logical device and queue on the given adapter,
// with limits raised enough for the playground's large storage buffers.
func NewDevice(gp *GPU) (*Device, error) {
	limits := wgpu.DefaultLimits()
	limits.MaxStorageBufferBindingSize = MaxStorageBytes
	limits.MaxBufferSize = MaxStorageBytes
	dev, err := gp.Adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label:          "playground",
		RequiredLimits: &wgpu.RequiredLimits{Limits: limits},
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: device request failed on %s: %w", gp.DeviceName, err)
	}
	return &Device{Device: dev, Queue: dev.GetQueue()}, nil
}

// WaitDone blocks until the GPU has finished all submitted work.
func (dv *Device) WaitDone() {
	dv.Device.Poll(true, nil)
}

// WaitFor blocks until the given queue submission has completed.
func (dv *Device) WaitFor(idx wgpu.SubmissionIndex) {
	dv.Device.Poll(true, &wgpu.WrappedSubmissionIndex{Queue: dv.Queue, SubmissionIndex: idx})
}

// Release frees the queue and device.
func (dv *Device) Release() {
	if dv.Device == nil {
		return
	}
	dv.Queue.Release()
	dv.Device.Release()
	dv.Device = nil
	dv.Queue = nil
}
