// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package smartarg

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// =============================================================================
// KINDS
// =============================================================================

// Kind is the inferred type of a Value.
type Kind int

const (
	KindText Kind = iota
	KindInt
	KindFloat
	KindBool
)

// String returns the lowercase kind name used in reports.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	default:
		return "text"
	}
}

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrKindMismatch is returned when an accessor or helper receives a value
	// of the wrong kind.
	ErrKindMismatch = errors.New("smartarg: kind mismatch")
	// ErrOverflow is returned when a numeric literal does not fit its kind.
	ErrOverflow = errors.New("smartarg: numeric overflow")
	// ErrDivideByZero is returned by Div for a zero divisor.
	ErrDivideByZero = errors.New("smartarg: division by zero")
	// ErrUnsupported is returned when an operation has no meaning for a kind.
	ErrUnsupported = errors.New("smartarg: operation not supported for kind")
)

// =============================================================================
// VALUE
// =============================================================================

var (
	intPattern   = regexp.MustCompile(`^\d+$`)
	floatPattern = regexp.MustCompile(`^\d*\.\d+$`)
	boolPattern  = regexp.MustCompile(`^(true|false)$`)
)

// Value is a raw string paired with the value inferred from it.
// The zero Value is empty text.
type Value struct {
	raw  string
	kind Kind
	i    int64
	f    float64
	b    bool
}

// Infer classifies raw using the fixed trial order int, float, bool, text.
// The only failure is a numeric literal too large for its kind.
func Infer(raw string) (Value, error) {
	switch {
	case intPattern.MatchString(raw):
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Value{raw: raw}, fmt.Errorf("%w: integer %s", ErrOverflow, raw)
		}
		return Value{raw: raw, kind: KindInt, i: n}, nil
	case floatPattern.MatchString(raw):
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Value{raw: raw}, fmt.Errorf("%w: float %s", ErrOverflow, raw)
		}
		return Value{raw: raw, kind: KindFloat, f: f}, nil
	case boolPattern.MatchString(raw):
		return Value{raw: raw, kind: KindBool, b: raw == "true"}, nil
	default:
		return Value{raw: raw, kind: KindText}, nil
	}
}

// MustInfer is like Infer but panics on overflow. Intended for literals in tests.
func MustInfer(raw string) Value {
	v, err := Infer(raw)
	if err != nil {
		panic(err)
	}
	return v
}

// InferAll infers every string in raws, stopping at the first overflow.
func InferAll(raws []string) ([]Value, error) {
	values := make([]Value, 0, len(raws))
	for _, raw := range raws {
		v, err := Infer(raw)
		if err != nil {
			return values, err
		}
		values = append(values, v)
	}
	return values, nil
}

// Int constructs an integer value.
func Int(n int64) Value {
	return Value{raw: strconv.FormatInt(n, 10), kind: KindInt, i: n}
}

// Float constructs a float value.
func Float(f float64) Value {
	return Value{raw: strconv.FormatFloat(f, 'f', -1, 64), kind: KindFloat, f: f}
}

// Bool constructs a boolean value.
func Bool(b bool) Value {
	return Value{raw: strconv.FormatBool(b), kind: KindBool, b: b}
}

// Text constructs a text value without inference.
func Text(s string) Value {
	return Value{raw: s, kind: KindText}
}

// Kind returns the inferred kind.
func (v Value) Kind() Kind { return v.kind }

// Raw returns the original string.
func (v Value) Raw() string { return v.raw }

// String returns the original string.
func (v Value) String() string { return v.raw }

// Int returns the integer value or ErrKindMismatch.
func (v Value) Int() (int64, error) {
	if v.kind != KindInt {
		return 0, v.mismatch(KindInt)
	}
	return v.i, nil
}

// Float returns the float value or ErrKindMismatch.
// Integers are not widened.
func (v Value) Float() (float64, error) {
	if v.kind != KindFloat {
		return 0, v.mismatch(KindFloat)
	}
	return v.f, nil
}

// Bool returns the boolean value or ErrKindMismatch.
func (v Value) Bool() (bool, error) {
	if v.kind != KindBool {
		return false, v.mismatch(KindBool)
	}
	return v.b, nil
}

// Interface returns the inferred value as int64, float64, bool or string.
func (v Value) Interface() any {
	switch v.kind {
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindBool:
		return v.b
	default:
		return v.raw
	}
}

func (v Value) mismatch(want Kind) error {
	return fmt.Errorf("%w: %q is %s, not %s", ErrKindMismatch, v.raw, v.kind, want)
}
