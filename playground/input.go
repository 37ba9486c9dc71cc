// Copyright (c) 2025, Graph Playground Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package playground

import "github.com/go-gl/glfw/v3.3/glfw"

// Bits of the shader-visible input bitmask in [Globals.Input].
// The assignments are a fixed contract with the tutorial sources;
// see tutorials/Common.wgsli.
const (
	InputMouseLeft uint32 = 1 << iota
	InputMouseMiddle
	InputMouseRight
	InputSpace
	InputUp
	InputLeft
	InputDown
	InputRight
	InputW
	InputA
	InputS
	InputD
)

// inputBits builds the bitmask from pressed-state predicates.
func inputBits(key func(glfw.Key) bool, mouse func(glfw.MouseButton) bool) uint32 {
	var in uint32
	if mouse(glfw.MouseButtonLeft) {
		in |= InputMouseLeft
	}
	if mouse(glfw.MouseButtonMiddle) {
		in |= InputMouseMiddle
	}
	if mouse(glfw.MouseButtonRight) {
		in |= InputMouseRight
	}
	if key(glfw.KeySpace) {
		in |= InputSpace
	}
	if key(glfw.KeyUp) {
		in |= InputUp
	}
	if key(glfw.KeyLeft) {
		in |= InputLeft
	}
	if key(glfw.KeyDown) {
		in |= InputDown
	}
	if key(glfw.KeyRight) {
		in |= InputRight
	}
	if key(glfw.KeyW) {
		in |= InputW
	}
	if key(glfw.KeyA) {
		in |= InputA
	}
	if key(glfw.KeyS) {
		in |= InputS
	}
	if key(glfw.KeyD) {
		in |= InputD
	}
	return in
}

// InputState reads the current input bitmask from the window.
func InputState(w *glfw.Window) uint32 {
	return inputBits(
		func(k glfw.Key) bool { return w.GetKey(k) == glfw.Press },
		func(b glfw.MouseButton) bool { return w.GetMouseButton(b) == glfw.Press },
	)
}

// keyEdges tracks previous key states for just-pressed detection of
// the playground's own control keys. The control keys are disjoint
// from the shader-visible bitmask keys.
type keyEdges struct {
	prev map[glfw.Key]bool
}

// pressed reports whether the key transitioned to pressed since the
// last call for that key.
func (ke *keyEdges) pressed(w *glfw.Window, k glfw.Key) bool {
	if ke.prev == nil {
		ke.prev = map[glfw.Key]bool{}
	}
	down := w.GetKey(k) == glfw.Press
	was := ke.prev[k]
	ke.prev[k] = down
	return down && !was
}
