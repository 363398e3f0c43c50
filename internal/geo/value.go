package geo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind tags the scalar held by a Value.
type Kind uint8

// Value kinds. The zero Kind marks an unset Value.
const (
	KindInvalid Kind = iota
	KindInt
	KindFloat
	KindString
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	default:
		return "invalid"
	}
}

// Value is a scalar property value.
type Value struct {
	s    string
	i    int64
	f    float64
	kind Kind
	b    bool
}

// Int returns an integer Value.
func Int(v int64) Value { return Value{kind: KindInt, i: v} }

// Float returns a floating point Value.
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// String returns a string Value.
func String(v string) Value { return Value{kind: KindString, s: v} }

// Bool returns a boolean Value.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// Kind reports which scalar the value holds.
func (v Value) Kind() Kind { return v.kind }

// IsNumber reports whether the value is an integer or a float.
func (v Value) IsNumber() bool { return v.kind == KindInt || v.kind == KindFloat }

// AsInt returns the integer held by v.
func (v Value) AsInt() (int64, bool) {
	return v.i, v.kind == KindInt
}

// AsFloat returns the numeric value of v, converting integers.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	default:
		return 0, false
	}
}

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) {
	return v.s, v.kind == KindString
}

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// String formats the value verbatim, without grouping or quoting.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case KindString:
		return v.s
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return ""
	}
}

// Interface returns the value as a plain Go scalar, nil when unset.
func (v Value) Interface() any {
	switch v.kind {
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindBool:
		return v.b
	default:
		return nil
	}
}

// MarshalJSON encodes the value as a JSON scalar.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// MarshalYAML encodes the value as a YAML scalar.
func (v Value) MarshalYAML() (any, error) {
	return v.Interface(), nil
}

// parseValue converts one raw JSON property into a Value.
// present is false for null.
func parseValue(raw json.RawMessage) (v Value, present bool, err error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return Value{}, false, nil
	}

	switch raw[0] {
	case 'n':
		return Value{}, false, nil

	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return Value{}, false, err
		}
		return String(s), true, nil

	case 't', 'f':
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return Value{}, false, err
		}
		return Bool(b), true, nil

	case '{', '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return Value{}, false, err
		}
		return String(buf.String()), true, nil
	}

	text := string(raw)
	if !bytes.ContainsAny(raw, ".eE") {
		if i, err := strconv.ParseInt(text, 10, 64); err == nil {
			return Int(i), true, nil
		}
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Value{}, false, fmt.Errorf("invalid number %q", text)
	}

	return Float(f), true, nil
}
