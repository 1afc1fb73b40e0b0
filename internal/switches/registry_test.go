// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package switches

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// =============================================================================
// DEFINE
// =============================================================================

func TestDefine_DerivesShortName(t *testing.T) {
	tests := []struct {
		long      string
		wantLong  string
		wantShort string
	}{
		{"verbose", "verbose", "v"},
		{"Output", "output", "o"},
		{"dry-run", "dry-run", "d"},
		{"🦄🌈", "🦄🌈", "🦄"},
		{"éclair", "éclair", "é"},
		{"e\u0301t", "e\u0301t", "e\u0301"},
	}

	for _, tt := range tests {
		t.Run(tt.long, func(t *testing.T) {
			reg := NewRegistry()
			h, err := reg.Define(tt.long)
			require.NoError(t, err)

			s := reg.Switch(h)
			require.NotNil(t, s)
			assert.Equal(t, tt.wantLong, s.LongName())
			assert.Equal(t, tt.wantShort, s.ShortName())
			assert.False(t, s.IsLongOnly())
			assert.Equal(t, 0, s.MinArgs())
			assert.Equal(t, Unlimited, s.MaxArgs())
		})
	}
}

func TestDefine_ExplicitShortName(t *testing.T) {
	reg := NewRegistry()
	h, err := reg.Define("output", WithShortName("X"))
	require.NoError(t, err)
	assert.Equal(t, "x", reg.Switch(h).ShortName())
}

func TestDefine_LongOnly(t *testing.T) {
	reg := NewRegistry()
	h, err := reg.Define("verbose", LongOnly())
	require.NoError(t, err)

	s := reg.Switch(h)
	assert.True(t, s.IsLongOnly())
	assert.Equal(t, "", s.ShortName())
	assert.Equal(t, []string{"--verbose"}, s.Forms())
}

func TestDefine_Arity(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantMin int
		wantMax int
	}{
		{"defaults", nil, 0, Unlimited},
		{"min only", []Option{WithMinArgs(2)}, 2, Unlimited},
		{"max only", []Option{WithMaxArgs(1)}, 0, 1},
		{"max raised to min", []Option{WithMinArgs(3), WithMaxArgs(1)}, 3, 3},
		{"arity", []Option{WithArity(1, 4)}, 1, 4},
		{"argless", []Option{Argless()}, 0, 0},
		{"argless overrides min", []Option{WithMinArgs(2), Argless()}, 0, 0},
		{"zero max", []Option{WithMaxArgs(0)}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry()
			h, err := reg.Define("count", tt.opts...)
			require.NoError(t, err)

			s := reg.Switch(h)
			assert.Equal(t, tt.wantMin, s.MinArgs())
			assert.Equal(t, tt.wantMax, s.MaxArgs())
			assert.Equal(t, tt.wantMax == 0, s.IsArgless())
		})
	}
}

func TestDefine_Errors(t *testing.T) {
	tests := []struct {
		name     string
		long     string
		opts     []Option
		wantKind ErrorKind
		wantErr  error
	}{
		{"negative min", "count", []Option{WithMinArgs(-1)}, InvalidArity, ErrInvalidArity},
		{"negative max", "count", []Option{WithMaxArgs(-1)}, InvalidArity, ErrInvalidArity},
		{"negative min with argless", "count", []Option{WithMinArgs(-1), Argless()}, InvalidArity, ErrInvalidArity},
		{"empty long", "", []Option{WithShortName("c")}, InvalidName, ErrInvalidName},
		{"one character long", "c", nil, InvalidName, ErrInvalidName},
		{"single emoji long", "🦄", nil, InvalidName, ErrInvalidName},
		{"slash in long", "in/out", nil, InvalidCharacter, ErrInvalidCharacter},
		{"two character short", "count", []Option{WithShortName("cn")}, InvalidName, ErrInvalidName},
		{"empty short", "count", []Option{WithShortName("")}, InvalidName, ErrInvalidName},
		{"dash short", "count", []Option{WithShortName("-")}, InvalidCharacter, ErrInvalidCharacter},
		{"slash short", "count", []Option{WithShortName("/")}, InvalidCharacter, ErrInvalidCharacter},
		{"derived dash short", "-count", nil, InvalidCharacter, ErrInvalidCharacter},
		{"leading dash long only", "-count", []Option{LongOnly()}, InvalidFormat, ErrInvalidFormat},
		{"double dash long only", "dry--run", []Option{LongOnly()}, InvalidFormat, ErrInvalidFormat},
		{"space in both", "a b", []Option{WithShortName(" ")}, InvalidFormat, ErrInvalidFormat},
		{"vertical tab in long only", "dry\vrun", []Option{LongOnly()}, InvalidFormat, ErrInvalidFormat},
		{"next line in long only", "dry\u0085run", []Option{LongOnly()}, InvalidFormat, ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry()
			_, err := reg.Define(tt.long, tt.opts...)
			require.Error(t, err)

			var defErr *DefinitionError
			require.ErrorAs(t, err, &defErr)
			assert.Equal(t, tt.wantKind, defErr.Kind)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsDefinitionError(err))
			assert.False(t, IsParseError(err))
			assert.Equal(t, 0, reg.Len(), "failed definition must not be registered")
		})
	}
}

func TestDefine_OneValidNameSuffices(t *testing.T) {
	// Only one of the two names has to fit the grammar.
	reg := NewRegistry()
	_, err := reg.Define("a b")
	require.NoError(t, err)
}

func TestDefine_NameConflicts(t *testing.T) {
	t.Run("same long name", func(t *testing.T) {
		reg := NewRegistry()
		reg.MustDefine("foo")
		_, err := reg.Define("FOO", WithShortName("x"))
		assert.ErrorIs(t, err, ErrNameConflict)
	})

	t.Run("same short name", func(t *testing.T) {
		reg := NewRegistry()
		reg.MustDefine("foo")
		_, err := reg.Define("far")
		assert.ErrorIs(t, err, ErrNameConflict)
		assert.Equal(t, 1, reg.Len())
	})

	t.Run("same long name when long only", func(t *testing.T) {
		reg := NewRegistry()
		reg.MustDefine("foo", LongOnly())
		_, err := reg.Define("foo", LongOnly())
		assert.ErrorIs(t, err, ErrNameConflict)
	})

	t.Run("new switch long only", func(t *testing.T) {
		reg := NewRegistry()
		reg.MustDefine("foo")
		_, err := reg.Define("far", LongOnly())
		assert.NoError(t, err)
	})

	t.Run("existing switch long only", func(t *testing.T) {
		reg := NewRegistry()
		reg.MustDefine("far", LongOnly())
		_, err := reg.Define("foo")
		assert.NoError(t, err)
		assert.Equal(t, 2, reg.Len())
	})

	t.Run("short name equals another long name", func(t *testing.T) {
		reg := NewRegistry()
		reg.MustDefine("xy", WithShortName("a"))
		_, err := reg.Define("ab", WithShortName("x"))
		assert.NoError(t, err)
	})
}

func TestMustDefine_Panics(t *testing.T) {
	reg := NewRegistry()
	assert.Panics(t, func() { reg.MustDefine("x") })
}

func TestDefine_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	reg := NewRegistry(WithLogger(zap.New(core)))

	reg.MustDefine("verbose")
	_, err := reg.Define("v")
	require.Error(t, err)

	require.Equal(t, 1, logs.FilterMessage("switch defined").Len())
	rejected := logs.FilterMessage("switch definition rejected").All()
	require.Len(t, rejected, 1)
	assert.Equal(t, "v", rejected[0].ContextMap()["long"])
}

func TestDefine_Documentation(t *testing.T) {
	reg := NewRegistry()
	h := reg.MustDefine("output",
		WithSummary("Write results to a file."),
		WithRemarks("The file is overwritten."))

	s := reg.Switch(h)
	assert.Equal(t, "Write results to a file.", s.Summary)
	assert.Equal(t, "The file is overwritten.", s.Remarks)
}

// =============================================================================
// LOOKUP
// =============================================================================

func newLookupRegistry(t *testing.T) (*Registry, Handle, Handle) {
	t.Helper()
	reg := NewRegistry()
	foo := reg.MustDefine("foo")
	bar := reg.MustDefine("bar", LongOnly())
	return reg, foo, bar
}

func TestResolveSwitch(t *testing.T) {
	reg, foo, bar := newLookupRegistry(t)

	tests := []struct {
		token  string
		want   Handle
		wantOK bool
	}{
		{"--foo", foo, true},
		{"-f", foo, true},
		{"/f", foo, true},
		{"foo", foo, true},
		{"f", foo, true},
		{"--FOO", foo, true},
		{"-F", foo, true},
		{"--bar", bar, true},
		{"bar", bar, true},

		{"--f", noSwitch, false},
		{"-foo", noSwitch, false},
		{"-b", noSwitch, false},
		{"/b", noSwitch, false},
		{"b", noSwitch, false},
		{"--baz", noSwitch, false},
		{"", noSwitch, false},
		{"--", noSwitch, false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			h, ok := reg.ResolveSwitch(tt.token)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, h)
		})
	}
}

func TestResolveSwitch_AllFormsSameHandle(t *testing.T) {
	reg := NewRegistry()
	want := reg.MustDefine("foo", WithShortName("f"))

	for _, token := range []string{"--foo", "-f", "foo"} {
		h, ok := reg.ResolveSwitch(token)
		require.True(t, ok, token)
		assert.Equal(t, want, h, token)
	}
}

func TestIsNameOfSwitch(t *testing.T) {
	reg, _, _ := newLookupRegistry(t)

	assert.True(t, reg.IsNameOfSwitch("foo"))
	assert.True(t, reg.IsNameOfSwitch("f"))
	assert.True(t, reg.IsNameOfSwitch("BAR"))
	assert.False(t, reg.IsNameOfSwitch("b"))
	assert.False(t, reg.IsNameOfSwitch("--foo"))
	assert.False(t, reg.IsNameOfSwitch("baz"))
	assert.False(t, reg.IsNameOfSwitch(""))
}

func TestIsSwitchToken(t *testing.T) {
	reg, _, _ := newLookupRegistry(t)

	assert.True(t, reg.IsSwitchToken("--foo"))
	assert.True(t, reg.IsSwitchToken("-f"))
	assert.True(t, reg.IsSwitchToken("/F"))
	assert.True(t, reg.IsSwitchToken("--bar"))
	assert.False(t, reg.IsSwitchToken("foo"), "bare names are not tokens")
	assert.False(t, reg.IsSwitchToken("-b"), "long-only has no short form")
	assert.False(t, reg.IsSwitchToken("--baz"))
	assert.False(t, reg.IsSwitchToken("-x"))
}

func TestSwitchAccessors(t *testing.T) {
	reg := NewRegistry()
	h := reg.MustDefine("output")

	assert.Nil(t, reg.Switch(Handle(5)))
	assert.Nil(t, reg.Switch(noSwitch))

	s := reg.Switch(h)
	assert.Equal(t, h, s.Handle())
	assert.Equal(t, "--output", s.String())
	assert.Equal(t, []string{"--output", "-o", "/o"}, s.Forms())

	all := reg.Switches()
	require.Len(t, all, 1)
	all[0] = nil
	assert.NotNil(t, reg.Switches()[0], "Switches returns a copy")
}

func TestLookup(t *testing.T) {
	reg, foo, _ := newLookupRegistry(t)

	h, ok := reg.Lookup("Foo")
	assert.True(t, ok)
	assert.Equal(t, foo, h)

	_, ok = reg.Lookup("--foo")
	assert.False(t, ok)
}

func TestErrorsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrInvalidArity, ErrInvalidName, ErrInvalidCharacter, ErrInvalidFormat,
		ErrNameConflict, ErrDuplicateSwitchUse, ErrArityNotSatisfied,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("%v should not match %v", a, b)
			}
		}
	}
}
