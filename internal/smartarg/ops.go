// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package smartarg

import (
	"cmp"
	"fmt"
	"strings"
)

// sameKind reports ErrKindMismatch unless a and b were inferred alike.
func sameKind(op string, a, b Value) error {
	if a.kind != b.kind {
		return fmt.Errorf("%w: cannot %s %s %q and %s %q", ErrKindMismatch, op, a.kind, a.raw, b.kind, b.raw)
	}
	return nil
}

func unsupported(op string, k Kind) error {
	return fmt.Errorf("%w: %s on %s", ErrUnsupported, op, k)
}

// Add sums ints or floats, concatenates text, and ORs booleans.
func Add(a, b Value) (Value, error) {
	if err := sameKind("add", a, b); err != nil {
		return Value{}, err
	}
	switch a.kind {
	case KindInt:
		return Int(a.i + b.i), nil
	case KindFloat:
		return Float(a.f + b.f), nil
	case KindBool:
		return Bool(a.b || b.b), nil
	default:
		return Text(a.raw + b.raw), nil
	}
}

// Sub subtracts ints or floats.
func Sub(a, b Value) (Value, error) {
	if err := sameKind("subtract", a, b); err != nil {
		return Value{}, err
	}
	switch a.kind {
	case KindInt:
		return Int(a.i - b.i), nil
	case KindFloat:
		return Float(a.f - b.f), nil
	default:
		return Value{}, unsupported("subtract", a.kind)
	}
}

// Mul multiplies ints or floats.
func Mul(a, b Value) (Value, error) {
	if err := sameKind("multiply", a, b); err != nil {
		return Value{}, err
	}
	switch a.kind {
	case KindInt:
		return Int(a.i * b.i), nil
	case KindFloat:
		return Float(a.f * b.f), nil
	default:
		return Value{}, unsupported("multiply", a.kind)
	}
}

// Div divides ints (truncating) or floats.
func Div(a, b Value) (Value, error) {
	if err := sameKind("divide", a, b); err != nil {
		return Value{}, err
	}
	switch a.kind {
	case KindInt:
		if b.i == 0 {
			return Value{}, ErrDivideByZero
		}
		return Int(a.i / b.i), nil
	case KindFloat:
		if b.f == 0 {
			return Value{}, ErrDivideByZero
		}
		return Float(a.f / b.f), nil
	default:
		return Value{}, unsupported("divide", a.kind)
	}
}

// And is logical for booleans and bitwise for ints.
func And(a, b Value) (Value, error) {
	if err := sameKind("and", a, b); err != nil {
		return Value{}, err
	}
	switch a.kind {
	case KindBool:
		return Bool(a.b && b.b), nil
	case KindInt:
		return Int(a.i & b.i), nil
	default:
		return Value{}, unsupported("and", a.kind)
	}
}

// Or is logical for booleans and bitwise for ints.
func Or(a, b Value) (Value, error) {
	if err := sameKind("or", a, b); err != nil {
		return Value{}, err
	}
	switch a.kind {
	case KindBool:
		return Bool(a.b || b.b), nil
	case KindInt:
		return Int(a.i | b.i), nil
	default:
		return Value{}, unsupported("or", a.kind)
	}
}

// Not negates a boolean.
func Not(v Value) (Value, error) {
	if v.kind != KindBool {
		return Value{}, v.mismatch(KindBool)
	}
	return Bool(!v.b), nil
}

// Equal compares inferred values. Values of different kinds are never equal,
// so "1" and "1.0" differ.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindInt:
		return a.i == b.i
	case KindFloat:
		return a.f == b.f
	case KindBool:
		return a.b == b.b
	default:
		return a.raw == b.raw
	}
}

// Compare orders two values of the same kind, returning -1, 0 or +1.
// false sorts before true.
func Compare(a, b Value) (int, error) {
	if err := sameKind("compare", a, b); err != nil {
		return 0, err
	}
	switch a.kind {
	case KindInt:
		return cmp.Compare(a.i, b.i), nil
	case KindFloat:
		return cmp.Compare(a.f, b.f), nil
	case KindBool:
		switch {
		case a.b == b.b:
			return 0, nil
		case !a.b:
			return -1, nil
		default:
			return 1, nil
		}
	default:
		return strings.Compare(a.raw, b.raw), nil
	}
}
