// Copyright 2025 The floatcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatcmp

import (
	"fmt"
)

// DenormMode selects how the 32-bit comparisons treat denormal
// reference values. GPU pipelines may flush 32-bit denormals to zero
// unless told otherwise, so the default mode tolerates either outcome.
type DenormMode uint8

const (
	// DenormAny accepts a sign-preserved zero in place of an expected
	// denormal value.
	DenormAny DenormMode = iota
	// DenormFTZ expects results computed with denormals flushed to
	// zero; the reference value must match within tolerance.
	DenormFTZ
	// DenormPreserve expects results computed with denormals kept;
	// the reference value must match within tolerance.
	DenormPreserve
)

var (
	denormModeToString = [...]string{
		DenormAny:      "any",
		DenormFTZ:      "ftz",
		DenormPreserve: "preserve",
	}
	denormModeToJSON = [...]string{
		DenormAny:      `"any"`,
		DenormFTZ:      `"ftz"`,
		DenormPreserve: `"preserve"`,
	}
	stringToDenormMode = map[string]DenormMode{
		"any":      DenormAny,
		"ftz":      DenormFTZ,
		"preserve": DenormPreserve,
	}
)

// Validate returns an error if the DenormMode is not valid, otherwise nil.
func (m DenormMode) Validate() error {
	if m > DenormPreserve {
		return fmt.Errorf("invalid DenormMode(%d)", m)
	}
	return nil
}

// String returns a string representation of a DenormMode.
func (m DenormMode) String() string {
	if err := m.Validate(); err != nil {
		return err.Error()
	}
	return denormModeToString[m]
}

// ParseDenormMode converts one of the names "any", "ftz" or
// "preserve" to the corresponding DenormMode value.
func ParseDenormMode(s string) (DenormMode, error) {
	m, ok := stringToDenormMode[s]
	if !ok {
		return 0, fmt.Errorf("invalid DenormMode string value %q", s)
	}
	return m, nil
}

// MarshalJSON satisfies json.Marshaler interface.
func (m DenormMode) MarshalJSON() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return []byte(denormModeToJSON[m]), nil
}

// UnmarshalJSON satisfies json.Unmarshaler interface.
func (m *DenormMode) UnmarshalJSON(b []byte) error {
	switch string(b) {
	case `"any"`:
		*m = DenormAny
	case `"ftz"`:
		*m = DenormFTZ
	case `"preserve"`:
		*m = DenormPreserve
	default:
		return fmt.Errorf("failed to JSON-unmarshal DenormMode from value %q", b)
	}
	return nil
}

// MarshalText satisfies encoding.TextMarshaler interface.
func (m DenormMode) MarshalText() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return []byte(denormModeToString[m]), nil
}

// UnmarshalText satisfies encoding.TextUnmarshaler interface.
func (m *DenormMode) UnmarshalText(text []byte) error {
	parsed, ok := stringToDenormMode[string(text)]
	if !ok {
		return fmt.Errorf("failed to text-unmarshal DenormMode from value %q", text)
	}
	*m = parsed
	return nil
}
