// Copyright (c) 2025, Graph Playground Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/fsx"
	"cogentcore.org/core/base/strcase"
)

const (
	// SourceExt is the file extension of program sources.
	// Shared include files use [IncludeExt] and are not listed.
	SourceExt = ".wgsl"

	// IncludeExt is the file extension of shared include files.
	IncludeExt = ".wgsli"

	// SolutionSuffix on a source file name marks it as the sample
	// solution of the like-named program, e.g. HelloWorkGraphsSolution.wgsl.
	// Solutions are not listed on their own.
	SolutionSuffix = "Solution"
)

// Program describes one program found in the tutorials root.
type Program struct {
	// Name is the display name, e.g. "Tutorial 1: Hello work graphs",
	// derived from the file name's casing boundaries.
	Name string

	// File is the source path, relative to the root.
	File string

	// SolutionFile is the source path of the sample solution,
	// empty when the program does not provide one.
	SolutionFile string
}

// Registry enumerates the programs under a tutorials root directory.
// The scan runs once and is cached for the process lifetime;
// hot reload covers edits to known programs, not new files.
type Registry struct {
	// Root is the tutorials directory.
	Root string

	programs []Program
	scanned  bool
}

func NewRegistry(root string) *Registry {
	return &Registry{Root: root}
}

// Programs returns the programs in directory traversal order.
func (rg *Registry) Programs() []Program {
	if rg.scanned {
		return rg.programs
	}
	rg.scanned = true
	fsys := os.DirFS(rg.Root)
	errors.Log(filepath.WalkDir(rg.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		if filepath.Ext(path) != SourceExt {
			return nil
		}
		stem := strings.TrimSuffix(d.Name(), SourceExt)
		if strings.HasSuffix(stem, SolutionSuffix) {
			return nil
		}
		rel, err := filepath.Rel(rg.Root, path)
		if err != nil {
			return err
		}
		pr := Program{
			Name: fmt.Sprintf("Tutorial %d: %s", len(rg.programs), strcase.ToSentence(stem)),
			File: rel,
		}
		sol := strings.TrimSuffix(rel, SourceExt) + SolutionSuffix + SourceExt
		if errors.Log1(fsx.FileExistsFS(fsys, filepath.ToSlash(sol))) {
			pr.SolutionFile = sol
		}
		rg.programs = append(rg.programs, pr)
		return nil
	}))
	return rg.programs
}
