package model

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// ValueKind discriminates the contents of a Value.
type ValueKind uint8

const (
	KindNull ValueKind = iota
	KindNumber
	KindString
)

// Value is a parsed CSV cell: null, a finite number, or a trimmed string.
// The zero Value is null.
type Value struct {
	Kind ValueKind
	Num  float64
	Str  string
}

// Null returns the null Value.
func Null() Value { return Value{} }

// Number wraps a float64.
func Number(f float64) Value { return Value{Kind: KindNumber, Num: f} }

// String wraps a string.
func String(s string) Value { return Value{Kind: KindString, Str: s} }

// IsNull reports whether v holds no value.
func (v Value) IsNull() bool { return v.Kind == KindNull }

// Float returns the numeric payload and whether v is a number.
func (v Value) Float() (float64, bool) {
	if v.Kind != KindNumber {
		return 0, false
	}
	return v.Num, true
}

// Truthy mirrors the loose truthiness the front-end relies on: null, zero
// and the empty string are all false.
func (v Value) Truthy() bool {
	switch v.Kind {
	case KindNumber:
		return v.Num != 0
	case KindString:
		return v.Str != ""
	default:
		return false
	}
}

// String renders v for logs.
func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindString:
		return v.Str
	default:
		return "null"
	}
}

// MarshalJSON encodes v as a JSON null, number or string.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindNumber:
		return json.Marshal(v.Num)
	case KindString:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v.Str); err != nil {
			return nil, err
		}
		return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes a JSON null, number or string into v.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch x := raw.(type) {
	case float64:
		*v = Number(x)
	case string:
		*v = String(x)
	default:
		*v = Null()
	}
	return nil
}

// Point is one (year, value) observation.
type Point struct {
	Year  int   `json:"year"`
	Value Value `json:"value"`
}
