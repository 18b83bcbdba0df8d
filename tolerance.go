// Copyright 2025 The floatcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatcmp

import (
	"fmt"
	"math"

	"github.com/zenhumany/floatcmp/float16"
)

// Method identifies a comparison method.
type Method uint8

const (
	// MethodULP compares bit patterns within a whole number of ULPs.
	MethodULP Method = iota + 1
	// MethodEpsilon compares values within an absolute difference.
	MethodEpsilon
	// MethodRelativeEpsilon compares values within a number of
	// accurate mantissa bits.
	MethodRelativeEpsilon
)

var (
	methodToString = [...]string{
		MethodULP:             "ulp",
		MethodEpsilon:         "epsilon",
		MethodRelativeEpsilon: "relative-epsilon",
	}
	methodToJSON = [...]string{
		MethodULP:             `"ulp"`,
		MethodEpsilon:         `"epsilon"`,
		MethodRelativeEpsilon: `"relative-epsilon"`,
	}
	stringToMethod = map[string]Method{
		"ulp":              MethodULP,
		"epsilon":          MethodEpsilon,
		"relative-epsilon": MethodRelativeEpsilon,
	}
)

// Validate returns an error if the Method is not valid, otherwise nil.
func (m Method) Validate() error {
	if m == 0 || m > MethodRelativeEpsilon {
		return fmt.Errorf("invalid Method(%d)", m)
	}
	return nil
}

// String returns a string representation of a Method.
func (m Method) String() string {
	if err := m.Validate(); err != nil {
		return err.Error()
	}
	return methodToString[m]
}

// ParseMethod converts one of the names "ulp", "epsilon" or
// "relative-epsilon" to the corresponding Method value.
func ParseMethod(s string) (Method, error) {
	m, ok := stringToMethod[s]
	if !ok {
		return 0, fmt.Errorf("invalid Method string value %q", s)
	}
	return m, nil
}

// MarshalJSON satisfies json.Marshaler interface.
func (m Method) MarshalJSON() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return []byte(methodToJSON[m]), nil
}

// UnmarshalJSON satisfies json.Unmarshaler interface.
func (m *Method) UnmarshalJSON(b []byte) error {
	switch string(b) {
	case `"ulp"`:
		*m = MethodULP
	case `"epsilon"`:
		*m = MethodEpsilon
	case `"relative-epsilon"`:
		*m = MethodRelativeEpsilon
	default:
		return fmt.Errorf("failed to JSON-unmarshal Method from value %q", b)
	}
	return nil
}

// MarshalText satisfies encoding.TextMarshaler interface.
func (m Method) MarshalText() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return []byte(methodToString[m]), nil
}

// UnmarshalText satisfies encoding.TextUnmarshaler interface.
func (m *Method) UnmarshalText(text []byte) error {
	parsed, ok := stringToMethod[string(text)]
	if !ok {
		return fmt.Errorf("failed to text-unmarshal Method from value %q", text)
	}
	*m = parsed
	return nil
}

// Tolerance pairs a comparison method with its tolerance value, the
// way test tables state them.
type Tolerance struct {
	Method Method  `json:"method"`
	Value  float64 `json:"value"`
}

// ULP returns a Tolerance admitting ulps units in the last place.
func ULP(ulps int) Tolerance {
	return Tolerance{Method: MethodULP, Value: float64(ulps)}
}

// Epsilon returns a Tolerance admitting an absolute difference
// below epsilon.
func Epsilon(epsilon float32) Tolerance {
	return Tolerance{Method: MethodEpsilon, Value: float64(epsilon)}
}

// RelativeEpsilon returns a Tolerance requiring n accurate mantissa
// bits.
func RelativeEpsilon(n int) Tolerance {
	return Tolerance{Method: MethodRelativeEpsilon, Value: float64(n)}
}

// Validate returns an error if the Tolerance is malformed, otherwise nil.
func (t Tolerance) Validate() error {
	if err := t.Method.Validate(); err != nil {
		return err
	}
	if math.IsNaN(t.Value) {
		return fmt.Errorf("%s tolerance value is NaN", t.Method)
	}
	if t.Method != MethodEpsilon && t.Value != math.Trunc(t.Value) {
		return fmt.Errorf("%s tolerance must be a whole number, got %g", t.Method, t.Value)
	}
	return nil
}

// Equal reports whether src matches ref under this tolerance.
// An invalid Tolerance matches nothing.
func (t Tolerance) Equal(src, ref float32, mode DenormMode) bool {
	switch t.Method {
	case MethodULP:
		return EqualULP(src, ref, int(t.Value), mode)
	case MethodEpsilon:
		return EqualEpsilon(src, ref, float32(t.Value), mode)
	case MethodRelativeEpsilon:
		return EqualRelativeEpsilon(src, ref, int(t.Value), mode)
	default:
		return false
	}
}

// EqualHalf reports whether src matches ref under this tolerance.
// An invalid Tolerance matches nothing.
func (t Tolerance) EqualHalf(src, ref float16.F16) bool {
	switch t.Method {
	case MethodULP:
		return EqualHalfULP(src, ref, int(t.Value))
	case MethodEpsilon:
		return EqualHalfEpsilon(src, ref, float32(t.Value))
	case MethodRelativeEpsilon:
		return EqualHalfRelativeEpsilon(src, ref, int(t.Value))
	default:
		return false
	}
}

// Mismatch returns the index of the first element of src that does
// not match the corresponding element of ref, or -1 if all elements
// match. Slices of different lengths mismatch at the shorter length.
func (t Tolerance) Mismatch(src, ref []float32, mode DenormMode) int {
	n := len(src)
	if len(ref) < n {
		n = len(ref)
	}
	for i := 0; i < n; i++ {
		if !t.Equal(src[i], ref[i], mode) {
			return i
		}
	}
	if len(src) != len(ref) {
		return n
	}
	return -1
}

// MismatchHalf returns the index of the first element of src that
// does not match the corresponding element of ref, or -1 if all
// elements match. Slices of different lengths mismatch at the
// shorter length.
func (t Tolerance) MismatchHalf(src, ref []float16.F16) int {
	n := len(src)
	if len(ref) < n {
		n = len(ref)
	}
	for i := 0; i < n; i++ {
		if !t.EqualHalf(src[i], ref[i]) {
			return i
		}
	}
	if len(src) != len(ref) {
		return n
	}
	return -1
}
