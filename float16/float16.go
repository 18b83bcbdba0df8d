// Copyright 2025 The floatcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package float16 implements the 16-bit floating-point formats used by
// GPU pipelines: IEEE 754 binary16 ("half precision") and bfloat16.
// Both are value types carrying the raw bit pattern, so they can be
// stored, hashed and compared without any hidden conversion.
package float16

import (
	"math"
	"strconv"
)

// F16 is an IEEE 754 binary16 value, represented as raw bits:
// 1 sign bit, 5 exponent bits, 10 mantissa bits.
type F16 uint16

// Bit fields of an F16 value.
const (
	SignMask     F16 = 0x8000 // sign bit
	ExponentMask F16 = 0x7c00 // exponent field; all bits set on Inf and NaN
	MantissaMask F16 = 0x03ff // mantissa field; also the biggest denormal
)

// Special half-precision values.
const (
	PosZero   F16 = 0x0000
	NegZero   F16 = 0x8000
	PosInf    F16 = 0x7c00
	NegInf    F16 = 0xfc00
	NaN       F16 = 0xff80 // one quiet NaN; every exponent-all-set, mantissa-nonzero pattern is a NaN
	PosDenorm F16 = 0x0008
	NegDenorm F16 = 0x8008

	// maxNormal is the biggest finite half value, 65504.
	maxNormal F16 = 0x7bff
)

// float32 bit patterns delimiting the half-precision range.
const (
	f32SignMask     uint32 = 0x80000000
	f32MantissaMask uint32 = 0x007fffff
	f32MaxFinite    uint32 = 0x7f7fffff // math.MaxFloat32; anything above is Inf or NaN
	f32MinNormal16  uint32 = 0x38800000 // 2^-14, the smallest normal half, widened
	f32ExpDelta     uint32 = 0x38000000 // exponent re-bias between the two widths, (127-15)<<23
	f32InfDelta     uint32 = 0x70000000 // exponent re-bias for Inf and NaN patterns
	f32DenormScale  uint32 = 0x4b800000 // 2^24: aligns the smallest half denormal at 1
	f32DenormRatio  uint32 = 0x33800000 // 2^-24: the value of the smallest half denormal
)

// FromFloat32 converts f to its half-precision encoding.
//
// The conversion truncates: mantissa bits that do not fit are dropped, not
// rounded. Magnitudes below the smallest normal half (2^-14) become
// denormals, flushing to a zero of the same sign once even the denormal
// range cannot hold them. Infinities map to half infinities, every NaN maps
// to a half NaN, and the sign survives in all cases, zeros included.
// Finite magnitudes past the largest finite half are not clamped; the
// result keeps only the low 16 bits of the rebiased pattern, so 65536
// encodes as PosInf while yet larger values wrap around.
func FromFloat32(f float32) F16 {
	bits := math.Float32bits(f)
	sign := uint16((bits & f32SignMask) >> 16)
	abs := bits &^ f32SignMask

	switch {
	case math.Float32frombits(abs) < math.Float32frombits(f32MinNormal16):
		// Denormal or zero result: scale the magnitude so the half
		// denormal range becomes the integers 0..1023, then truncate.
		denorm := math.Float32frombits(abs) * math.Float32frombits(f32DenormScale)
		return F16(uint16(denorm) | sign)
	case abs > f32MaxFinite:
		if abs&f32MantissaMask != 0 {
			return F16(sign) | ExponentMask | MantissaMask
		}
		return F16(sign) | ExponentMask
	default:
		return F16(uint16((abs-f32ExpDelta)>>13) | sign)
	}
}

// FromBits returns the half value with representation b.
func FromBits(b uint16) F16 {
	return F16(b)
}

// Bits returns the raw representation of f.
func (f F16) Bits() uint16 {
	return uint16(f)
}

// Float32 widens f to float32. The mapping is exact and total: every half
// value, denormals, NaNs and infinities included, has a float32
// counterpart, and every non-NaN result converts back to the same bits.
func (f F16) Float32() float32 {
	sign := uint32(f&SignMask) << 16
	abs := uint32(f) &^ uint32(SignMask)

	switch {
	case abs > uint32(maxNormal): // Inf or NaN
		return math.Float32frombits(sign | ((abs << 13) + f32InfDelta))
	case abs > uint32(MantissaMask): // normal
		return math.Float32frombits(sign | ((abs << 13) + f32ExpDelta))
	default: // denormal or zero
		denorm := float32(abs) * math.Float32frombits(f32DenormRatio)
		return math.Float32frombits(sign | math.Float32bits(denorm))
	}
}

// IsNaN reports whether f is a "not-a-number" value.
func (f F16) IsNaN() bool {
	return f&ExponentMask == ExponentMask && f&MantissaMask != 0
}

// IsInf reports whether f is a positive or negative infinity.
func (f F16) IsInf() bool {
	return f&^SignMask == PosInf
}

// IsZero reports whether f is a positive or negative zero.
func (f F16) IsZero() bool {
	return f&^SignMask == 0
}

// IsDenormal reports whether f is a subnormal: a nonzero value with a zero
// exponent field, representing magnitudes below the smallest normal half.
func (f F16) IsDenormal() bool {
	return f&ExponentMask == 0 && f&MantissaMask != 0
}

// Signbit reports whether f is negative or negative zero.
func (f F16) Signbit() bool {
	return f&SignMask != 0
}

// String formats f as the shortest decimal string that round-trips the
// widened float32 value.
func (f F16) String() string {
	return strconv.FormatFloat(float64(f.Float32()), 'g', -1, 32)
}
