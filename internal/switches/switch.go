// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package switches

import (
	"math"
	"slices"

	"github.com/jeranaias/switchkit/internal/smartarg"
)

// Unlimited is the MaxArgs of a switch without an upper bound.
const Unlimited = math.MaxInt

// Handle identifies a Switch within the Registry that defined it.
// Two handles from the same registry are equal exactly when they name the
// same definition.
type Handle int

// noSwitch is the zero state for "no switch seen".
const noSwitch Handle = -1

// Switch is a defined switch. Name and arity never change after Define;
// Used and Args reflect the parses since the last Reset.
type Switch struct {
	handle  Handle
	long    string
	short   string
	minArgs int
	maxArgs int

	used bool
	args []string

	// Summary and Remarks are free text consumed by the help formatter.
	Summary string
	Remarks string

	params       []Param
	paramsClosed bool
}

// Handle returns the switch's identity in its registry.
func (s *Switch) Handle() Handle { return s.handle }

// LongName returns the lowercase multi-character name.
func (s *Switch) LongName() string { return s.long }

// ShortName returns the lowercase single-character name, or "" for a
// long-only switch.
func (s *Switch) ShortName() string { return s.short }

// IsLongOnly reports whether the switch has no short name.
func (s *Switch) IsLongOnly() bool { return s.short == "" }

// MinArgs returns the number of mandatory value arguments.
func (s *Switch) MinArgs() int { return s.minArgs }

// MaxArgs returns the maximum number of value arguments, or Unlimited.
func (s *Switch) MaxArgs() int { return s.maxArgs }

// IsArgless reports whether the switch accepts no value arguments.
func (s *Switch) IsArgless() bool { return s.maxArgs == 0 }

// Used reports whether the switch appeared in a parse since the last Reset.
func (s *Switch) Used() bool { return s.used }

// Args returns a copy of the value arguments collected for the switch.
func (s *Switch) Args() []string { return slices.Clone(s.args) }

// Values infers a smart value for each collected argument.
func (s *Switch) Values() ([]smartarg.Value, error) {
	return smartarg.InferAll(s.args)
}

// Params returns the documented parameters in the order they were added.
func (s *Switch) Params() []Param { return slices.Clone(s.params) }

// Forms returns the invocation forms of the switch: "--long", and for
// switches with a short name also "-s" and "/s".
func (s *Switch) Forms() []string {
	forms := []string{"--" + s.long}
	if s.short != "" {
		forms = append(forms, "-"+s.short, "/"+s.short)
	}
	return forms
}

// String returns the long form, e.g. "--verbose".
func (s *Switch) String() string { return "--" + s.long }

func (s *Switch) reset() {
	s.used = false
	s.args = nil
}
