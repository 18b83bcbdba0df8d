// Copyright 2025 The floatcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package float16

import (
	"math"
	"strconv"
)

// BF16 is a bfloat16 ("brain float") value, represented as raw bits:
// 1 sign bit, 8 exponent bits, 7 mantissa bits. It is a float32 with the
// low 16 mantissa bits dropped, which keeps both conversions trivial and
// gives it the full float32 exponent range at reduced precision.
type BF16 uint16

// Bit fields of a BF16 value.
const (
	BF16SignMask     BF16 = 0x8000
	BF16ExponentMask BF16 = 0x7f80
	BF16MantissaMask BF16 = 0x007f
)

// BF16FromFloat32 converts f to bfloat16, rounding to nearest-even.
// NaNs are quieted before the rounding step so a NaN input can never come
// out as an infinity.
func BF16FromFloat32(f float32) BF16 {
	bits := math.Float32bits(f)
	if abs := bits &^ f32SignMask; abs > f32MaxFinite && abs&f32MantissaMask != 0 {
		return BF16(bits>>16 | 0x0040)
	}
	round := 0x7fff + (bits>>16)&1
	return BF16((bits + round) >> 16)
}

// BF16FromBits returns the bfloat16 value with representation b.
func BF16FromBits(b uint16) BF16 {
	return BF16(b)
}

// Bits returns the raw representation of b.
func (b BF16) Bits() uint16 {
	return uint16(b)
}

// Float32 widens b to float32 exactly.
func (b BF16) Float32() float32 {
	return math.Float32frombits(uint32(b) << 16)
}

// IsNaN reports whether b is a "not-a-number" value.
func (b BF16) IsNaN() bool {
	return b&BF16ExponentMask == BF16ExponentMask && b&BF16MantissaMask != 0
}

// IsInf reports whether b is a positive or negative infinity.
func (b BF16) IsInf() bool {
	return b&^BF16SignMask == BF16ExponentMask
}

// IsZero reports whether b is a positive or negative zero.
func (b BF16) IsZero() bool {
	return b&^BF16SignMask == 0
}

// IsDenormal reports whether b is a subnormal: a nonzero value with a zero
// exponent field.
func (b BF16) IsDenormal() bool {
	return b&BF16ExponentMask == 0 && b&BF16MantissaMask != 0
}

// Signbit reports whether b is negative or negative zero.
func (b BF16) Signbit() bool {
	return b&BF16SignMask != 0
}

// String formats b as the shortest decimal string that round-trips the
// widened float32 value.
func (b BF16) String() string {
	return strconv.FormatFloat(float64(b.Float32()), 'g', -1, 32)
}
