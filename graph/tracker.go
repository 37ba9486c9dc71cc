// Copyright (c) 2025, Graph Playground Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"os"
	"time"
)

// FileTracker records the last known modification time of every
// source file contributing to a compiled program, so the frame loop
// can poll for edits. All access is from the main thread.
//
// The tracked set only grows: files stay tracked for the process
// lifetime even after a program stops using them. Re-tracking a
// handful of stale entries per frame is cheaper than reference
// counting them.
type FileTracker struct {
	times map[string]time.Time
}

func NewFileTracker() *FileTracker {
	return &FileTracker{times: map[string]time.Time{}}
}

// RecordOrUpdate stats path and stores its modification time,
// adding the file to the tracked set. Stat failures are ignored;
// the file may be mid-save from an editor and will be picked up
// on a later poll.
func (ft *FileTracker) RecordOrUpdate(path string) {
	st, err := os.Stat(path)
	if err != nil {
		return
	}
	ft.times[path] = st.ModTime()
}

// HasAnyChanged polls every tracked file and reports whether any
// modification time differs from the recorded one. Changed entries
// are updated in the same pass, so each edit is reported exactly
// once. Files that fail to stat are left untouched for this poll.
func (ft *FileTracker) HasAnyChanged() bool {
	changed := false
	for path, prev := range ft.times {
		st, err := os.Stat(path)
		if err != nil {
			continue
		}
		if mt := st.ModTime(); !mt.Equal(prev) {
			ft.times[path] = mt
			changed = true
		}
	}
	return changed
}

// Len returns the number of tracked files.
func (ft *FileTracker) Len() int {
	return len(ft.times)
}
