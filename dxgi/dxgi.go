// Copyright 2025 The floatcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dxgi enumerates DXGI pixel formats and reports the byte
// size of one element of each format.
package dxgi

import (
	"errors"
	"fmt"
)

// ErrUnknownFormat is returned when a value or a name does not match
// any known DXGI pixel format.
var ErrUnknownFormat = errors.New("unknown DXGI format")

// Format represents a DXGI pixel format.
//
// The numeric values match the DXGI_FORMAT enumeration, so a Format
// can be used directly in Direct3D resource descriptions.
type Format uint32

// Unknown is the zero Format. It has no element size.
const Unknown Format = 0

const (
	// Four 32-bit channels.
	R32G32B32A32Typeless Format = iota + 1
	R32G32B32A32Float
	R32G32B32A32Uint
	R32G32B32A32Sint

	// Three 32-bit channels.
	R32G32B32Typeless
	R32G32B32Float
	R32G32B32Uint
	R32G32B32Sint

	// Four 16-bit channels.
	R16G16B16A16Typeless
	R16G16B16A16Float
	R16G16B16A16Unorm
	R16G16B16A16Uint
	R16G16B16A16Snorm
	R16G16B16A16Sint

	// Two 32-bit channels.
	R32G32Typeless
	R32G32Float
	R32G32Uint
	R32G32Sint

	// 32-bit depth with 8-bit stencil.
	R32G8X24Typeless
	D32FloatS8X24Uint
	R32FloatX8X24Typeless
	X32TypelessG8X24Uint

	// Packed 32-bit channels.
	R10G10B10A2Typeless
	R10G10B10A2Unorm
	R10G10B10A2Uint
	R11G11B10Float

	// Four 8-bit channels.
	R8G8B8A8Typeless
	R8G8B8A8Unorm
	R8G8B8A8UnormSRGB
	R8G8B8A8Uint
	R8G8B8A8Snorm
	R8G8B8A8Sint

	// Two 16-bit channels.
	R16G16Typeless
	R16G16Float
	R16G16Unorm
	R16G16Uint
	R16G16Snorm
	R16G16Sint

	// One 32-bit channel.
	R32Typeless
	D32Float
	R32Float
	R32Uint
	R32Sint

	// 24-bit depth with 8-bit stencil.
	R24G8Typeless
	D24UnormS8Uint
	R24UnormX8Typeless
	X24TypelessG8Uint

	// Two 8-bit channels.
	R8G8Typeless
	R8G8Unorm
	R8G8Uint
	R8G8Snorm
	R8G8Sint

	// One 16-bit channel.
	R16Typeless
	R16Float
	D16Unorm
	R16Unorm
	R16Uint
	R16Snorm
	R16Sint

	// One 8-bit channel.
	R8Typeless
	R8Unorm
	R8Uint
	R8Snorm
	R8Sint
	A8Unorm

	// One 1-bit channel.
	R1Unorm
)

var (
	formatToString = [...]string{
		R32G32B32A32Typeless:  "R32G32B32A32_TYPELESS",
		R32G32B32A32Float:     "R32G32B32A32_FLOAT",
		R32G32B32A32Uint:      "R32G32B32A32_UINT",
		R32G32B32A32Sint:      "R32G32B32A32_SINT",
		R32G32B32Typeless:     "R32G32B32_TYPELESS",
		R32G32B32Float:        "R32G32B32_FLOAT",
		R32G32B32Uint:         "R32G32B32_UINT",
		R32G32B32Sint:         "R32G32B32_SINT",
		R16G16B16A16Typeless:  "R16G16B16A16_TYPELESS",
		R16G16B16A16Float:     "R16G16B16A16_FLOAT",
		R16G16B16A16Unorm:     "R16G16B16A16_UNORM",
		R16G16B16A16Uint:      "R16G16B16A16_UINT",
		R16G16B16A16Snorm:     "R16G16B16A16_SNORM",
		R16G16B16A16Sint:      "R16G16B16A16_SINT",
		R32G32Typeless:        "R32G32_TYPELESS",
		R32G32Float:           "R32G32_FLOAT",
		R32G32Uint:            "R32G32_UINT",
		R32G32Sint:            "R32G32_SINT",
		R32G8X24Typeless:      "R32G8X24_TYPELESS",
		D32FloatS8X24Uint:     "D32_FLOAT_S8X24_UINT",
		R32FloatX8X24Typeless: "R32_FLOAT_X8X24_TYPELESS",
		X32TypelessG8X24Uint:  "X32_TYPELESS_G8X24_UINT",
		R10G10B10A2Typeless:   "R10G10B10A2_TYPELESS",
		R10G10B10A2Unorm:      "R10G10B10A2_UNORM",
		R10G10B10A2Uint:       "R10G10B10A2_UINT",
		R11G11B10Float:        "R11G11B10_FLOAT",
		R8G8B8A8Typeless:      "R8G8B8A8_TYPELESS",
		R8G8B8A8Unorm:         "R8G8B8A8_UNORM",
		R8G8B8A8UnormSRGB:     "R8G8B8A8_UNORM_SRGB",
		R8G8B8A8Uint:          "R8G8B8A8_UINT",
		R8G8B8A8Snorm:         "R8G8B8A8_SNORM",
		R8G8B8A8Sint:          "R8G8B8A8_SINT",
		R16G16Typeless:        "R16G16_TYPELESS",
		R16G16Float:           "R16G16_FLOAT",
		R16G16Unorm:           "R16G16_UNORM",
		R16G16Uint:            "R16G16_UINT",
		R16G16Snorm:           "R16G16_SNORM",
		R16G16Sint:            "R16G16_SINT",
		R32Typeless:           "R32_TYPELESS",
		D32Float:              "D32_FLOAT",
		R32Float:              "R32_FLOAT",
		R32Uint:               "R32_UINT",
		R32Sint:               "R32_SINT",
		R24G8Typeless:         "R24G8_TYPELESS",
		D24UnormS8Uint:        "D24_UNORM_S8_UINT",
		R24UnormX8Typeless:    "R24_UNORM_X8_TYPELESS",
		X24TypelessG8Uint:     "X24_TYPELESS_G8_UINT",
		R8G8Typeless:          "R8G8_TYPELESS",
		R8G8Unorm:             "R8G8_UNORM",
		R8G8Uint:              "R8G8_UINT",
		R8G8Snorm:             "R8G8_SNORM",
		R8G8Sint:              "R8G8_SINT",
		R16Typeless:           "R16_TYPELESS",
		R16Float:              "R16_FLOAT",
		D16Unorm:              "D16_UNORM",
		R16Unorm:              "R16_UNORM",
		R16Uint:               "R16_UINT",
		R16Snorm:              "R16_SNORM",
		R16Sint:               "R16_SINT",
		R8Typeless:            "R8_TYPELESS",
		R8Unorm:               "R8_UNORM",
		R8Uint:                "R8_UINT",
		R8Snorm:               "R8_SNORM",
		R8Sint:                "R8_SINT",
		A8Unorm:               "A8_UNORM",
		R1Unorm:               "R1_UNORM",
	}
	formatToSize = [...]int{
		R32G32B32A32Typeless: 16,
		R32G32B32A32Float:    16,
		R32G32B32A32Uint:     16,
		R32G32B32A32Sint:     16,
		R32G32B32Typeless:    12,
		R32G32B32Float:       12,
		R32G32B32Uint:        12,
		R32G32B32Sint:        12,
		R16G16B16A16Typeless: 8,
		R16G16B16A16Float:    8,
		R16G16B16A16Unorm:    8,
		R16G16B16A16Uint:     8,
		R16G16B16A16Snorm:    8,
		R16G16B16A16Sint:     8,
		R32G32Typeless:       8,
		R32G32Float:          8,
		R32G32Uint:           8,
		R32G32Sint:           8,
		R32G8X24Typeless:     8,
		// Only the 32-bit depth plane counts for the three
		// depth-stencil views below.
		D32FloatS8X24Uint:     4,
		R32FloatX8X24Typeless: 4,
		X32TypelessG8X24Uint:  4,
		R10G10B10A2Typeless:   4,
		R10G10B10A2Unorm:      4,
		R10G10B10A2Uint:       4,
		R11G11B10Float:        4,
		R8G8B8A8Typeless:      4,
		R8G8B8A8Unorm:         4,
		R8G8B8A8UnormSRGB:     4,
		R8G8B8A8Uint:          4,
		R8G8B8A8Snorm:         4,
		R8G8B8A8Sint:          4,
		R16G16Typeless:        4,
		R16G16Float:           4,
		R16G16Unorm:           4,
		R16G16Uint:            4,
		R16G16Snorm:           4,
		R16G16Sint:            4,
		R32Typeless:           4,
		D32Float:              4,
		R32Float:              4,
		R32Uint:               4,
		R32Sint:               4,
		R24G8Typeless:         4,
		D24UnormS8Uint:        4,
		R24UnormX8Typeless:    4,
		X24TypelessG8Uint:     4,
		R8G8Typeless:          2,
		R8G8Unorm:             2,
		R8G8Uint:              2,
		R8G8Snorm:             2,
		R8G8Sint:              2,
		R16Typeless:           2,
		R16Float:              2,
		D16Unorm:              2,
		R16Unorm:              2,
		R16Uint:               2,
		R16Snorm:              2,
		R16Sint:               2,
		R8Typeless:            1,
		R8Unorm:               1,
		R8Uint:                1,
		R8Snorm:               1,
		R8Sint:                1,
		A8Unorm:               1,
		R1Unorm:               1,
	}
)

var stringToFormat = make(map[string]Format, len(formatToString))

func init() {
	for f, s := range formatToString {
		if s != "" {
			stringToFormat[s] = Format(f)
		}
	}
}

// Validate returns an error if the Format is not valid, otherwise nil.
// Unknown is not a valid format.
func (f Format) Validate() error {
	if f == Unknown || f > R1Unorm {
		return fmt.Errorf("%w: Format(%d)", ErrUnknownFormat, uint32(f))
	}
	return nil
}

// String returns the DXGI name of a Format, such as "R32G32B32A32_FLOAT".
func (f Format) String() string {
	if err := f.Validate(); err != nil {
		return err.Error()
	}
	return formatToString[f]
}

// ByteSize returns the size in bytes of one element of this format.
// It returns an error wrapping ErrUnknownFormat if the Format value
// is not valid.
func (f Format) ByteSize() (int, error) {
	if err := f.Validate(); err != nil {
		return 0, err
	}
	return formatToSize[f], nil
}

// ParseFormat converts a DXGI format name, such as "R32G32B32A32_FLOAT",
// to the corresponding Format value.
func ParseFormat(s string) (Format, error) {
	f, ok := stringToFormat[s]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
	return f, nil
}

// MarshalJSON satisfies json.Marshaler interface.
func (f Format) MarshalJSON() ([]byte, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return []byte(`"` + formatToString[f] + `"`), nil
}

// UnmarshalJSON satisfies json.Unmarshaler interface.
func (f *Format) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		if parsed, ok := stringToFormat[s[1:len(s)-1]]; ok {
			*f = parsed
			return nil
		}
	}
	return fmt.Errorf("failed to JSON-unmarshal Format from value %q", s)
}

// MarshalText satisfies encoding.TextMarshaler interface.
func (f Format) MarshalText() ([]byte, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return []byte(formatToString[f]), nil
}

// UnmarshalText satisfies encoding.TextUnmarshaler interface.
func (f *Format) UnmarshalText(text []byte) error {
	parsed, ok := stringToFormat[string(text)]
	if !ok {
		return fmt.Errorf("failed to text-unmarshal Format from value %q", text)
	}
	*f = parsed
	return nil
}
