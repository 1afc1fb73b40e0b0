// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package switches

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamSignature(t *testing.T) {
	tests := []struct {
		param Param
		want  string
	}{
		{Param{Name: "path", Type: ParamString}, "{string:path}"},
		{Param{Name: "count", Type: ParamInt}, "{int:count}"},
		{Param{Name: "files", Type: ParamString, Variadic: true}, "... {string:files}"},
		{Param{Name: "name"}, "{string:name}"},
		{Param{Name: "when", Type: "date"}, "{date:when}"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.param.Signature())
		})
	}
}

func TestAddParam(t *testing.T) {
	reg := NewRegistry()
	h := reg.MustDefine("copy", WithMinArgs(2))

	require.NoError(t, reg.AddParam(h, Param{Name: "dest", Type: ParamString}))
	require.NoError(t, reg.AddParam(h, Param{Name: "sources", Type: ParamString, Variadic: true}))

	err := reg.AddParam(h, Param{Name: "extra", Type: ParamBool})
	assert.ErrorIs(t, err, ErrParamsClosed)

	params := reg.Switch(h).Params()
	require.Len(t, params, 2)
	assert.Equal(t, "dest", params[0].Name)
	assert.True(t, params[1].Variadic)
}

func TestAddParam_UnknownHandle(t *testing.T) {
	reg := NewRegistry()
	err := reg.AddParam(Handle(3), Param{Name: "x"})
	assert.ErrorIs(t, err, ErrUnknownSwitch)
}
