// Copyright 2025 The floatcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatcmp

import (
	"math"
)

const (
	f32SignMask     = 0x80000000
	f32ExponentMask = 0x7f800000
	f32MantissaMask = 0x007fffff

	f64ExponentMask = 0x7ff0000000000000
	f64MantissaMask = 0x000fffffffffffff
)

// Signbit reports whether f is negative or negative zero.
func Signbit(f float32) bool {
	return math.Float32bits(f)&f32SignMask != 0
}

// Mantissa returns the 23 mantissa bits of f.
func Mantissa(f float32) uint32 {
	return math.Float32bits(f) & f32MantissaMask
}

// Exponent returns the 8 biased exponent bits of f.
func Exponent(f float32) uint32 {
	return math.Float32bits(f) >> 23 & 0xff
}

// IsDenormal32 reports whether f is a denormal (subnormal) value.
func IsDenormal32(f float32) bool {
	bits := math.Float32bits(f)
	return bits&f32ExponentMask == 0 && bits&f32MantissaMask != 0
}

// IsDenormal64 reports whether f is a denormal (subnormal) value.
func IsDenormal64(f float64) bool {
	bits := math.Float64bits(f)
	return bits&f64ExponentMask == 0 && bits&f64MantissaMask != 0
}

// FlushDenorm returns a zero with the sign of f if f is denormal,
// otherwise f unchanged.
func FlushDenorm(f float32) float32 {
	if IsDenormal32(f) {
		return math.Float32frombits(math.Float32bits(f) & f32SignMask)
	}
	return f
}

// EqualFlushed reports whether a and b are equal once denormals on
// either side are flushed to zero.
func EqualFlushed(a, b float32) bool {
	return FlushDenorm(a) == FlushDenorm(b)
}

// EqualFlushedOrNaN is EqualFlushed, except that two NaNs also
// compare equal.
func EqualFlushedOrNaN(a, b float32) bool {
	if isNaN32(a) && isNaN32(b) {
		return true
	}
	return EqualFlushed(a, b)
}

func isNaN32(f float32) bool {
	return f != f
}
