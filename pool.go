// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

import "sync"

// Visiting sets guard default resolution against cycles such as
// transform → adjust_if → transform. A set lives for one top-level
// resolution; resolve removes every key it adds, so released sets are
// already empty.

var visitingPool = sync.Pool{New: func() any { return make(map[slotKey]bool, 8) }}

// acquireVisiting returns an empty visiting set.
func acquireVisiting() map[slotKey]bool {
	return visitingPool.Get().(map[slotKey]bool)
}

// releaseVisiting clears v and returns it to the pool.
func releaseVisiting(v map[slotKey]bool) {
	clear(v)
	visitingPool.Put(v)
}
