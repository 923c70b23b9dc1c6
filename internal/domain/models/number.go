package models

import (
	"bytes"
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	floatPrefix = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)
	intPrefix   = regexp.MustCompile(`^[+-]?\d+`)
)

// Number is a numeric field taken from an untrusted payload. Valid is false
// when the field was absent, null, non-numeric, NaN or infinite.
type Number struct {
	Value float64
	Valid bool
}

// NumberOf returns a valid Number unless f is NaN or infinite.
func NumberOf(f float64) Number {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Number{}
	}
	return Number{Value: f, Valid: true}
}

// ParseNumber reads the longest decimal prefix of s after leading
// whitespace, so "0.85%" is 0.85. No prefix or a non-finite value is invalid.
func ParseNumber(s string) Number {
	return parsePrefix(floatPrefix, s)
}

// ParseInteger reads the leading base-10 digits of s: "5 folds" is 5 and
// "1e3" is 1.
func ParseInteger(s string) Number {
	return parsePrefix(intPrefix, s)
}

func parsePrefix(re *regexp.Regexp, s string) Number {
	m := re.FindString(strings.TrimLeftFunc(s, unicode.IsSpace))
	if m == "" {
		return Number{}
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return Number{}
	}
	return NumberOf(f)
}

// UnmarshalJSON never fails: anything that is not a finite number or a
// numeric string leaves n invalid.
func (n *Number) UnmarshalJSON(b []byte) error {
	*n = Number{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil
	}
	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err == nil {
			*n = ParseNumber(s)
		}
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		*n = ParseNumber(string(b))
	}
	return nil
}

// MarshalJSON writes null for invalid numbers.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// OrZero returns the value or 0.
func (n Number) OrZero() float64 {
	return n.Or(0)
}

// Or returns the value or fallback.
func (n Number) Or(fallback float64) float64 {
	if !n.Valid {
		return fallback
	}
	return n.Value
}

// Integer is a Number read as a whole count. Strings keep only their leading
// digits and JSON numbers are truncated.
type Integer struct {
	Number
}

// IntegerOf returns the truncated Integer for f.
func IntegerOf(f float64) Integer {
	return Integer{Number: NumberOf(math.Trunc(f))}
}

func (n *Integer) UnmarshalJSON(b []byte) error {
	*n = Integer{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil
	}
	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err == nil {
			n.Number = ParseInteger(s)
		}
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		if f := ParseNumber(string(b)); f.Valid {
			*n = IntegerOf(f.Value)
		}
	}
	return nil
}

// OptionalString holds free text that backends sometimes send as a number.
type OptionalString struct {
	Value string
	Valid bool
}

func (s *OptionalString) UnmarshalJSON(b []byte) error {
	*s = OptionalString{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil
	}
	switch b[0] {
	case '"':
		var v string
		if err := json.Unmarshal(b, &v); err == nil && strings.TrimSpace(v) != "" {
			*s = OptionalString{Value: v, Valid: true}
		}
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		if n := ParseNumber(string(b)); n.Valid {
			*s = OptionalString{Value: string(b), Valid: true}
		}
	}
	return nil
}

func (s OptionalString) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(s.Value)
}
