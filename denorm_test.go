// Copyright 2025 The floatcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatcmp

import (
	"encoding"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	_ json.Marshaler           = DenormMode(0)
	_ json.Unmarshaler         = new(DenormMode)
	_ encoding.TextMarshaler   = DenormMode(0)
	_ encoding.TextUnmarshaler = new(DenormMode)
)

var (
	validDenormModes = []struct {
		mode   DenormMode
		string string
	}{
		{DenormAny, "any"},
		{DenormFTZ, "ftz"},
		{DenormPreserve, "preserve"},
	}
	invalidDenormModes = []DenormMode{3, 4, 255}
)

func TestDenormMode_Default(t *testing.T) {
	// The zero value is the permissive mode.
	var m DenormMode
	assert.Equal(t, DenormAny, m)
}

func TestDenormMode_Validate(t *testing.T) {
	for _, tc := range validDenormModes {
		assert.NoError(t, tc.mode.Validate())
	}

	for _, m := range invalidDenormModes {
		assert.EqualError(t, m.Validate(), fmt.Sprintf("invalid DenormMode(%d)", m))
	}
}

func TestDenormMode_String(t *testing.T) {
	for _, tc := range validDenormModes {
		assert.Equal(t, tc.string, tc.mode.String())
	}

	for _, m := range invalidDenormModes {
		assert.Equal(t, fmt.Sprintf("invalid DenormMode(%d)", m), m.String())
	}
}

func TestParseDenormMode(t *testing.T) {
	for _, tc := range validDenormModes {
		m, err := ParseDenormMode(tc.string)
		assert.NoError(t, err)
		assert.Equal(t, tc.mode, m)
	}

	for _, s := range []string{"", "Any", "FTZ", "flush"} {
		m, err := ParseDenormMode(s)
		assert.EqualError(t, err, fmt.Sprintf("invalid DenormMode string value %q", s))
		assert.Equal(t, DenormMode(0), m)
	}
}

func TestDenormMode_MarshalJSON(t *testing.T) {
	for _, tc := range validDenormModes {
		b, err := tc.mode.MarshalJSON()
		assert.NoError(t, err)
		assert.Equal(t, []byte(`"`+tc.string+`"`), b)
	}

	for _, m := range invalidDenormModes {
		b, err := m.MarshalJSON()
		assert.Error(t, err)
		assert.Nil(t, b)
	}
}

func TestDenormMode_UnmarshalJSON(t *testing.T) {
	for _, tc := range validDenormModes {
		var m DenormMode
		err := m.UnmarshalJSON([]byte(`"` + tc.string + `"`))
		assert.NoError(t, err)
		assert.Equal(t, tc.mode, m)
	}

	var m DenormMode
	assert.EqualError(t, m.UnmarshalJSON(nil), `failed to JSON-unmarshal DenormMode from value ""`)
	assert.EqualError(t, m.UnmarshalJSON([]byte("any")), `failed to JSON-unmarshal DenormMode from value "any"`)
	assert.EqualError(t, m.UnmarshalJSON([]byte(`"foo"`)), `failed to JSON-unmarshal DenormMode from value "\"foo\""`)
}

func TestDenormMode_MarshalText(t *testing.T) {
	for _, tc := range validDenormModes {
		b, err := tc.mode.MarshalText()
		assert.NoError(t, err)
		assert.Equal(t, []byte(tc.string), b)
	}

	for _, m := range invalidDenormModes {
		b, err := m.MarshalText()
		assert.Error(t, err)
		assert.Nil(t, b)
	}
}

func TestDenormMode_UnmarshalText(t *testing.T) {
	for _, tc := range validDenormModes {
		var m DenormMode
		err := m.UnmarshalText([]byte(tc.string))
		assert.NoError(t, err)
		assert.Equal(t, tc.mode, m)
	}

	var m DenormMode
	assert.EqualError(t, m.UnmarshalText(nil), `failed to text-unmarshal DenormMode from value ""`)
	assert.EqualError(t, m.UnmarshalText([]byte("foo")), `failed to text-unmarshal DenormMode from value "foo"`)
}
