// Copyright (c) 2025, Graph Playground Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package playground

import "time"

// bannerDuration is how long an error banner stays visible.
const bannerDuration = 5 * time.Second

// banner is the timed error banner state. Arming it again restarts
// the timer with the new message; it expires on its own, or is
// cleared early by a successful rebuild.
type banner struct {
	text  string
	until time.Time
}

func (b *banner) arm(text string, now time.Time) {
	b.text = text
	b.until = now.Add(bannerDuration)
}

func (b *banner) active(now time.Time) bool {
	return b.text != "" && now.Before(b.until)
}

func (b *banner) clear() {
	*b = banner{}
}
