// Copyright 2025 The floatcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package floatcmp compares floating-point values the way GPU result
// checkers do: by whole bit patterns rather than by arithmetic.
//
// Values can be compared within a number of ULPs (units in the last
// place), within an absolute epsilon, or within a relative epsilon
// expressed as a number of accurate mantissa bits. All comparisons
// treat NaN as matching only NaN, and the 32-bit comparisons can
// tolerate denormals flushed to a sign-preserved zero, which GPUs
// are permitted to do. See DenormMode.
//
// Half-precision values are compared through the float16 package and
// always keep their denormals.
package floatcmp

import (
	"math"

	"github.com/zenhumany/floatcmp/float16"
)

// Mantissa widths, used to turn accurate-bit counts into ULPs.
const (
	mantissaBits32 = 23
	mantissaBits16 = 10
)

// EqualULP reports whether src is within ulps representable float32
// values of ref.
//
// Equal values always match, including +0 and -0. A NaN src matches
// any NaN ref. Under DenormAny, a zero src matches a denormal ref
// with the same sign.
func EqualULP(src, ref float32, ulps int, mode DenormMode) bool {
	if src == ref {
		return true
	}
	if isNaN32(src) {
		return isNaN32(ref)
	}
	if mode == DenormAny && IsDenormal32(ref) && src == 0 && Signbit(src) == Signbit(ref) {
		return true
	}
	return ulpWithin(math.Float32bits(src), math.Float32bits(ref), ulps)
}

// EqualEpsilon reports whether the absolute difference between src
// and ref is below epsilon.
//
// The special cases of EqualULP apply here too: equal values and
// NaN pairs match, and under DenormAny a zero src matches a denormal
// ref with the same sign.
func EqualEpsilon(src, ref, epsilon float32, mode DenormMode) bool {
	if src == ref {
		return true
	}
	if isNaN32(src) {
		return isNaN32(ref)
	}
	if mode == DenormAny && IsDenormal32(ref) && src == 0 && Signbit(src) == Signbit(ref) {
		return true
	}
	return abs32(src-ref) < epsilon
}

// EqualRelativeEpsilon reports whether src and ref agree in their n
// most significant mantissa bits, by allowing 23-n ULPs between them.
func EqualRelativeEpsilon(src, ref float32, n int, mode DenormMode) bool {
	return EqualULP(src, ref, mantissaBits32-n, mode)
}

// EqualHalfULP reports whether src is within ulps representable
// half-precision values of ref.
//
// The bit patterns are compared directly, so unlike EqualULP a +0
// src matches a -0 ref only within the ULP tolerance. Half results
// must preserve denormals, so no flush leniency applies.
func EqualHalfULP(src, ref float16.F16, ulps int) bool {
	if src == ref {
		return true
	}
	if src.IsNaN() {
		return ref.IsNaN()
	}
	return ulpWithin(src.Bits(), ref.Bits(), ulps)
}

// EqualHalfEpsilon reports whether the absolute difference between
// src and ref, widened to float32, is below epsilon.
func EqualHalfEpsilon(src, ref float16.F16, epsilon float32) bool {
	if src == ref {
		return true
	}
	if src.IsNaN() {
		return ref.IsNaN()
	}
	return abs32(src.Float32()-ref.Float32()) < epsilon
}

// EqualHalfRelativeEpsilon reports whether src and ref agree in their
// n most significant mantissa bits, by allowing 10-n ULPs between them.
func EqualHalfRelativeEpsilon(src, ref float16.F16, n int) bool {
	return EqualHalfULP(src, ref, mantissaBits16-n)
}
