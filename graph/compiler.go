// Copyright (c) 2025, Graph Playground Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"cogentcore.org/core/base/stringsx"
	"github.com/gogpu/naga"
)

// BackingDirective declares the per-graph backing memory requirement
// in a program source, in bytes, e.g.:
//
//	//#backing 65536
//
// Backing memory holds in-flight records between graph nodes.
// A program with no directive gets no backing buffer.
const BackingDirective = "//#backing"

// CompiledProgram is the result of compiling one program source.
type CompiledProgram struct {
	// Name is the path of the top-level source, relative to the
	// tutorials root.
	Name string

	// WGSL is the preprocessed source text, with includes inlined.
	// Shader modules are created from this.
	WGSL string

	// SPIRV is the compiled bytecode, little-endian 32-bit words.
	// Used host-side for entry point reflection.
	SPIRV []byte

	// BackingBytes is the backing memory requirement declared by
	// the source, 0 when absent.
	BackingBytes uint64
}

// Compiler turns program sources into [CompiledProgram]s: it loads
// the source, resolves #include lines against the tutorials root,
// and compiles the result. Every file it reads is recorded in
// Tracker; that is how hot reload discovers include dependencies.
type Compiler struct {
	// Root is the tutorials directory.
	Root string

	// Tracker records the sources and includes read by Compile.
	Tracker *FileTracker
}

func NewCompiler(root string) *Compiler {
	return &Compiler{Root: root, Tracker: NewFileTracker()}
}

// Compile loads, preprocesses, and compiles the given source file,
// relative to Root. Compiler diagnostics are returned verbatim in
// the error. On success the top-level file and all includes are
// recorded in the tracker.
func (cp *Compiler) Compile(sourceFile string) (*CompiledProgram, error) {
	path := filepath.Join(cp.Root, sourceFile)
	src, err := loadSource(path)
	if err != nil {
		return nil, err
	}
	code := cp.resolveIncludes(src, map[string]bool{})
	spirv, err := naga.Compile(code)
	if err != nil {
		return nil, fmt.Errorf("compiling %s: %w", sourceFile, err)
	}
	cp.Tracker.RecordOrUpdate(path)
	return &CompiledProgram{
		Name:         sourceFile,
		WGSL:         code,
		SPIRV:        spirv,
		BackingBytes: backingSize(code),
	}, nil
}

// loadSource reads the file, retrying once on failure: editors
// briefly hold source files exclusively while saving.
func loadSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		time.Sleep(10 * time.Millisecond)
		b, err = os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading program source: %w", err)
		}
	}
	return string(b), nil
}

// resolveIncludes processes #include "file" lines, inlining the
// included file (itself recursively resolved) and recording it in
// the tracker. Each file is inlined at most once; repeats are
// commented out, so shared includes do not redefine symbols.
func (cp *Compiler) resolveIncludes(code string, seen map[string]bool) string {
	fl := stringsx.SplitLines(code)
	for li := len(fl) - 1; li >= 0; li-- {
		ln := fl[li]
		if !strings.HasPrefix(ln, `#include "`) {
			continue
		}
		fn := ln[10:]
		qi := strings.Index(fn, `"`)
		if qi < 0 {
			slog.Error("malformed #include: no final quote", "line", ln)
			continue
		}
		fname := fn[:qi]
		fl[li] = "// " + ln
		if seen[fname] {
			continue
		}
		seen[fname] = true
		path := filepath.Join(cp.Root, fname)
		b, err := os.ReadFile(path)
		if err != nil {
			slog.Error("could not find include", "file", fname, "root", cp.Root)
			continue
		}
		cp.Tracker.RecordOrUpdate(path)
		ol := stringsx.SplitLines(cp.resolveIncludes(string(b), seen))
		fl = slices.Insert(fl, li+1, ol...)
	}
	return strings.Join(fl, "\n")
}

// backingSize parses the first [BackingDirective] line, returning
// 0 when absent.
func backingSize(code string) uint64 {
	for _, ln := range stringsx.SplitLines(code) {
		if !strings.HasPrefix(ln, BackingDirective) {
			continue
		}
		n, err := strconv.ParseUint(strings.TrimSpace(ln[len(BackingDirective):]), 10, 64)
		if err != nil {
			slog.Error("malformed backing directive", "line", ln)
			continue
		}
		return n
	}
	return 0
}
