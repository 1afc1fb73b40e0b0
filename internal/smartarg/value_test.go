// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package smartarg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// INFERENCE TESTS
// =============================================================================

func TestInfer_TrialOrder(t *testing.T) {
	tests := []struct {
		raw  string
		want Kind
	}{
		{"0", KindInt},
		{"42", KindInt},
		{"007", KindInt},
		{"3.14", KindFloat},
		{".5", KindFloat},
		{"5.", KindText},
		{"-1", KindText}, // sign is not part of the digit pattern
		{"1e5", KindText},
		{"true", KindBool},
		{"false", KindBool},
		{"True", KindText},
		{"yes", KindText},
		{"", KindText},
		{"hello world", KindText},
		{"１２", KindText}, // fullwidth digits are not ASCII digits
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			v, err := Infer(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Kind())
			assert.Equal(t, tt.raw, v.Raw())
		})
	}
}

func TestInfer_Values(t *testing.T) {
	n, err := MustInfer("42").Int()
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)

	f, err := MustInfer("2.5").Float()
	require.NoError(t, err)
	assert.InDelta(t, 2.5, f, 1e-9)

	b, err := MustInfer("true").Bool()
	require.NoError(t, err)
	assert.True(t, b)

	assert.Equal(t, "abc", MustInfer("abc").Interface())
}

func TestInfer_Overflow(t *testing.T) {
	v, err := Infer("99999999999999999999999")
	require.ErrorIs(t, err, ErrOverflow)
	assert.Equal(t, KindText, v.Kind())
}

func TestAccessors_KindMismatch(t *testing.T) {
	v := MustInfer("42")

	_, err := v.Float()
	assert.ErrorIs(t, err, ErrKindMismatch, "ints are not widened to floats")

	_, err = v.Bool()
	assert.ErrorIs(t, err, ErrKindMismatch)

	_, err = MustInfer("x").Int()
	assert.ErrorIs(t, err, ErrKindMismatch)
}

func TestInferAll(t *testing.T) {
	values, err := InferAll([]string{"1", "2.0", "false", "name"})
	require.NoError(t, err)
	require.Len(t, values, 4)

	kinds := []Kind{values[0].Kind(), values[1].Kind(), values[2].Kind(), values[3].Kind()}
	assert.Equal(t, []Kind{KindInt, KindFloat, KindBool, KindText}, kinds)
}

// =============================================================================
// OPERATION TESTS
// =============================================================================

func TestAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want Value
	}{
		{"ints", "2", "3", Int(5)},
		{"floats", "1.5", "0.25", Float(1.75)},
		{"bools or", "false", "true", Bool(true)},
		{"text concat", "foo", "bar", Text("foobar")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Add(MustInfer(tt.a), MustInfer(tt.b))
			require.NoError(t, err)
			assert.True(t, Equal(tt.want, got), "got %v (%s)", got, got.Kind())
		})
	}
}

func TestOperations_RequireSameKind(t *testing.T) {
	ops := map[string]func(a, b Value) (Value, error){
		"add": Add, "sub": Sub, "mul": Mul, "div": Div, "and": And, "or": Or,
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			_, err := op(MustInfer("1"), MustInfer("1.0"))
			assert.ErrorIs(t, err, ErrKindMismatch)
		})
	}

	_, err := Compare(MustInfer("1"), MustInfer("true"))
	assert.ErrorIs(t, err, ErrKindMismatch)
}

func TestArithmetic(t *testing.T) {
	got, err := Sub(MustInfer("10"), MustInfer("4"))
	require.NoError(t, err)
	assert.Equal(t, "6", got.Raw())

	got, err = Mul(MustInfer("1.5"), MustInfer("2.0"))
	require.NoError(t, err)
	assert.Equal(t, "3", got.Raw())

	got, err = Div(MustInfer("7"), MustInfer("2"))
	require.NoError(t, err)
	assert.Equal(t, "3", got.Raw())

	_, err = Div(MustInfer("7"), MustInfer("0"))
	assert.ErrorIs(t, err, ErrDivideByZero)

	_, err = Sub(MustInfer("a"), MustInfer("b"))
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestLogical(t *testing.T) {
	got, err := And(MustInfer("true"), MustInfer("false"))
	require.NoError(t, err)
	assert.Equal(t, "false", got.Raw())

	got, err = Or(MustInfer("6"), MustInfer("1"))
	require.NoError(t, err)
	assert.Equal(t, "7", got.Raw())

	got, err = Not(MustInfer("false"))
	require.NoError(t, err)
	assert.Equal(t, "true", got.Raw())

	_, err = Not(MustInfer("1"))
	assert.ErrorIs(t, err, ErrKindMismatch)
}

func TestCompareAndEqual(t *testing.T) {
	c, err := Compare(MustInfer("2"), MustInfer("10"))
	require.NoError(t, err)
	assert.Equal(t, -1, c, "ints compare numerically, not lexically")

	c, err = Compare(MustInfer("true"), MustInfer("false"))
	require.NoError(t, err)
	assert.Equal(t, 1, c)

	c, err = Compare(MustInfer("b"), MustInfer("a"))
	require.NoError(t, err)
	assert.Equal(t, 1, c)

	assert.True(t, Equal(MustInfer("007"), MustInfer("7")))
	assert.False(t, Equal(MustInfer("1"), MustInfer("1.0")))
}
