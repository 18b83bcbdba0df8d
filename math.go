// Copyright 2025 The floatcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatcmp

import "math"

// ulpWithin reports whether the bit patterns src and ref are at most
// ulps representable values apart. The distance wraps in
// two's-complement arithmetic, and a negative ulps admits any
// distance.
func ulpWithin[T uint16 | uint32](src, ref T, ulps int) bool {
	diff := int32(src) - int32(ref)
	if diff < 0 {
		diff = -diff
	}
	return uint32(diff) <= uint32(ulps)
}

// abs32 returns f with its sign bit cleared.
func abs32(f float32) float32 {
	return math.Float32frombits(math.Float32bits(f) &^ f32SignMask)
}
