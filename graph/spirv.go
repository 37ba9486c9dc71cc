// Copyright (c) 2025, Graph Playground Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"slices"
)

// SPIR-V constants for the minimal entry point scan.
// See the SPIR-V specification, sections 2.3 (physical layout)
// and 3.32.1 (OpEntryPoint).
const (
	spirvMagic              = 0x07230203
	spirvHeaderWords        = 5
	opEntryPoint            = 15
	executionModelGLCompute = 5
)

// ComputeEntryPoints returns the names of the compute entry points
// declared in the given SPIR-V module, in declaration order.
// This lets a missing entry node be diagnosed host-side, without a
// device round trip.
func ComputeEntryPoints(spirv []byte) ([]string, error) {
	if len(spirv) < spirvHeaderWords*4 || len(spirv)%4 != 0 {
		return nil, fmt.Errorf("spirv: truncated module (%d bytes)", len(spirv))
	}
	words := make([]uint32, len(spirv)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(spirv[i*4:])
	}
	if words[0] != spirvMagic {
		return nil, fmt.Errorf("spirv: bad magic number %#x", words[0])
	}
	var names []string
	for i := spirvHeaderWords; i < len(words); {
		op := words[i] & 0xffff
		n := int(words[i] >> 16)
		if n == 0 || i+n > len(words) {
			return nil, fmt.Errorf("spirv: malformed instruction at word %d", i)
		}
		// OpEntryPoint: execution model, function id, literal name, interface ids.
		if op == opEntryPoint && n >= 4 && words[i+1] == executionModelGLCompute {
			names = append(names, decodeLiteralString(words[i+3:i+n]))
		}
		i += n
	}
	return names, nil
}

// HasComputeEntry reports whether the module declares a compute
// entry point with the given name (case-sensitive).
func HasComputeEntry(spirv []byte, name string) bool {
	eps, err := ComputeEntryPoints(spirv)
	if err != nil {
		return false
	}
	return slices.Contains(eps, name)
}

// decodeLiteralString reads a nul-terminated literal string packed
// little-endian into words.
func decodeLiteralString(words []uint32) string {
	b := make([]byte, 0, len(words)*4)
	for _, w := range words {
		b = append(b, byte(w), byte(w>>8), byte(w>>16), byte(w>>24))
	}
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}
