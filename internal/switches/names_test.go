// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package switches

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSwitchFormat(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"v", true},
		{"verbose", true},
		{"dry-run", true},
		{"a-b-c", true},
		{"Verbose", true},
		{"🦄", true},
		{"🦄🌈", true},
		{"", false},
		{"-v", false},
		{"--verbose", false},
		{"/v", false},
		{"a/b", false},
		{"dry--run", false},
		{"dry-", false},
		{"a b", false},
		{"tab\there", false},
		{"nbsp\u00a0here", false},
		{"dry\vrun", false},
		{"dry\u0085run", false},
		{"dry\u2028run", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSwitchFormat(tt.name))
		})
	}
}

func TestIsPrefixedSwitchFormat(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"--foo", true},
		{"--dry-run", true},
		{"--FOO", true},
		{"-f", true},
		{"/f", true},
		{"-F", true},
		{"-5", true},
		{"-🦄", true},
		{"-e\u0301", true}, // e + combining acute is one character
		{"--🦄🌈", true},

		{"--f", false},
		{"-fo", false},
		{"/fo", false},
		{"-a-x", false},
		{"/a/ba", false},
		{"--bo--bo", false},
		{"---x", false},
		{"--x-", false},
		{"-/", false},
		{"//a", false},
		{"-", false},
		{"--", false},
		{"/", false},
		{"foo", false},
		{"", false},
		{"--a b", false},
		{"- a", false},
		{"--dry\vrun", false},
		{"--dry\u0085run", false},
		{"-\v", false},
		{"/\u0085", false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPrefixedSwitchFormat(tt.token))
		})
	}
}

func TestSplitPrefix(t *testing.T) {
	tests := []struct {
		token    string
		wantForm form
		wantName string
	}{
		{"--foo", formLong, "foo"},
		{"-f", formShort, "f"},
		{"/f", formShort, "f"},
		{"foo", formBare, "foo"},
		{"--my-name", formLong, "my-name"},
		{"---x", formLong, "-x"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			f, name := splitPrefix(tt.token)
			assert.Equal(t, tt.wantForm, f)
			assert.Equal(t, tt.wantName, name)
		})
	}
}
