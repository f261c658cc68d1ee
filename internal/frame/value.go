package frame

import (
	"strconv"
	"strings"
)

// Kind identifies the type of a cell value.
type Kind uint8

const (
	KindNull Kind = iota
	KindInt
	KindFloat
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	}
	return "unknown"
}

// Value is a single typed cell. The zero Value is null.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
}

// Null returns the null cell value.
func Null() Value { return Value{} }

// Int wraps an int64 cell.
func Int(v int64) Value { return Value{kind: KindInt, i: v} }

// Float wraps a float64 cell.
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// String wraps a string cell.
func String(v string) Value { return Value{kind: KindString, s: v} }

// Parse infers a typed Value from a raw CSV field. Empty input is null;
// integer literals become KindInt, other numerics KindFloat, everything
// else KindString. Surrounding whitespace is trimmed before inference.
func Parse(raw string) Value {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Null()
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Float(f)
	}
	return String(s)
}

// Kind returns the value's kind.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the cell is missing.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Int returns the cell as int64. ok is false for non-int cells.
func (v Value) Int() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.i, true
}

// Float64 returns the cell as float64, promoting int cells.
// ok is false for null and string cells.
func (v Value) Float64() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	}
	return 0, false
}

// Str returns the cell as a string. ok is false for non-string cells.
func (v Value) Str() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// Interface returns the cell as the natural Go type (nil, int64,
// float64, or string), suitable for JSON encoding and SQL parameters.
func (v Value) Interface() any {
	switch v.kind {
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	}
	return nil
}
