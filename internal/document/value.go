package document

import (
	"encoding/json"
	"fmt"
)

// Kind discriminates the scalar type held by a Value.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindNumber
)

// Value is one typed scalar of a node or attribute. The zero Value is the
// empty string. Accessors report a type mismatch via their second return
// value instead of an error so callers can synthesize their own diagnostics.
type Value struct {
	kind Kind
	str  string
	b    bool
	num  float64
}

// String wraps a string scalar.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Bool wraps a boolean scalar.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number wraps a numeric scalar.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Kind returns the scalar type of the value.
func (v Value) Kind() Kind { return v.kind }

// Text returns the string payload, reporting false for non-string values.
func (v Value) Text() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// Boolean returns the bool payload, reporting false for non-bool values.
func (v Value) Boolean() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// Float returns the numeric payload, reporting false for non-number values.
func (v Value) Float() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// GoString renders the value for error messages and test failures.
func (v Value) GoString() string {
	switch v.kind {
	case KindBool:
		return fmt.Sprintf("%v", v.b)
	case KindNumber:
		return fmt.Sprintf("%v", v.num)
	default:
		return fmt.Sprintf("%q", v.str)
	}
}

// MarshalJSON emits the native JSON scalar for the value.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindBool:
		return json.Marshal(v.b)
	case KindNumber:
		return json.Marshal(v.num)
	default:
		return json.Marshal(v.str)
	}
}

// UnmarshalJSON accepts any JSON scalar and stores it with the matching kind.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch t := raw.(type) {
	case string:
		*v = String(t)
	case bool:
		*v = Bool(t)
	case float64:
		*v = Number(t)
	default:
		return fmt.Errorf("document value must be a string, boolean, or number, got %T", raw)
	}
	return nil
}
