package jetblue

import (
	"bytes"
	"encoding/json"
)

// Scalar holds the text of a JSON string, number or boolean. Null, a missing
// field and any non-scalar value all leave it unset.
type Scalar struct {
	raw *string
}

// S builds a set Scalar, mostly useful in tests.
func S(v string) Scalar { return Scalar{raw: &v} }

// UnmarshalJSON implements json.Unmarshaler
func (s *Scalar) UnmarshalJSON(p []byte) error {
	s.raw = nil
	p = bytes.TrimSpace(p)
	if len(p) == 0 {
		return nil
	}
	switch p[0] {
	case '"':
		var v string
		if err := json.Unmarshal(p, &v); err != nil {
			return err
		}
		s.raw = &v
	case 't', 'f', '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		v := string(p)
		s.raw = &v
	}
	// null, objects and arrays are not scalars
	return nil
}

// MarshalJSON writes the scalar back as a JSON string, or null when unset.
func (s Scalar) MarshalJSON() ([]byte, error) {
	if s.raw == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*s.raw)
}

// Ptr returns the raw text, or nil when unset.
func (s Scalar) Ptr() *string { return s.raw }

// String returns the raw text, or "" when unset.
func (s Scalar) String() string {
	if s.raw == nil {
		return ""
	}
	return *s.raw
}

// IsSet reports whether the field carried a scalar value.
func (s Scalar) IsSet() bool { return s.raw != nil }
