// Copyright (c) 2025, Graph Playground Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package playground

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func bits(keys []glfw.Key, buttons []glfw.MouseButton) uint32 {
	return inputBits(
		func(k glfw.Key) bool {
			for _, d := range keys {
				if d == k {
					return true
				}
			}
			return false
		},
		func(b glfw.MouseButton) bool {
			for _, d := range buttons {
				if d == b {
					return true
				}
			}
			return false
		},
	)
}

func TestInputBits(t *testing.T) {
	assert.Equal(t, uint32(0), bits(nil, nil))

	assert.Equal(t, InputMouseLeft, bits(nil, []glfw.MouseButton{glfw.MouseButtonLeft}))
	assert.Equal(t, InputMouseMiddle, bits(nil, []glfw.MouseButton{glfw.MouseButtonMiddle}))
	assert.Equal(t, InputMouseRight, bits(nil, []glfw.MouseButton{glfw.MouseButtonRight}))

	assert.Equal(t, InputSpace, bits([]glfw.Key{glfw.KeySpace}, nil))
	assert.Equal(t, InputUp, bits([]glfw.Key{glfw.KeyUp}, nil))
	assert.Equal(t, InputLeft, bits([]glfw.Key{glfw.KeyLeft}, nil))
	assert.Equal(t, InputDown, bits([]glfw.Key{glfw.KeyDown}, nil))
	assert.Equal(t, InputRight, bits([]glfw.Key{glfw.KeyRight}, nil))
	assert.Equal(t, InputW, bits([]glfw.Key{glfw.KeyW}, nil))
	assert.Equal(t, InputA, bits([]glfw.Key{glfw.KeyA}, nil))
	assert.Equal(t, InputS, bits([]glfw.Key{glfw.KeyS}, nil))
	assert.Equal(t, InputD, bits([]glfw.Key{glfw.KeyD}, nil))
}

func TestInputBitsCombine(t *testing.T) {
	got := bits([]glfw.Key{glfw.KeyW, glfw.KeySpace}, []glfw.MouseButton{glfw.MouseButtonLeft})
	assert.Equal(t, InputMouseLeft|InputSpace|InputW, got)
}

// The bit assignments are a fixed contract with the tutorial
// sources; renumbering them breaks every program that reads input.
func TestInputBitContract(t *testing.T) {
	assert.Equal(t, uint32(1<<0), InputMouseLeft)
	assert.Equal(t, uint32(1<<1), InputMouseMiddle)
	assert.Equal(t, uint32(1<<2), InputMouseRight)
	assert.Equal(t, uint32(1<<3), InputSpace)
	assert.Equal(t, uint32(1<<4), InputUp)
	assert.Equal(t, uint32(1<<5), InputLeft)
	assert.Equal(t, uint32(1<<6), InputDown)
	assert.Equal(t, uint32(1<<7), InputRight)
	assert.Equal(t, uint32(1<<8), InputW)
	assert.Equal(t, uint32(1<<9), InputA)
	assert.Equal(t, uint32(1<<10), InputS)
	assert.Equal(t, uint32(1<<11), InputD)
}
