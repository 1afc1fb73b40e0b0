// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package switches

import (
	"slices"

	"github.com/jeranaias/switchkit/internal/smartarg"
)

// ParseResult is a snapshot of the registry after a successful Parse.
// It does not change when the registry is parsed again or Reset.
type ParseResult struct {
	Leading  []string // Stand-alone arguments before the first switch
	Trailing []string // Stand-alone arguments after the last switch was filled
	Combined []string // Leading followed by Trailing
	Used     []Handle // Used switches in definition order

	args map[Handle][]string
}

func (r *Registry) snapshot() *ParseResult {
	res := &ParseResult{
		Leading:  slices.Clone(r.leading),
		Trailing: slices.Clone(r.trailing),
		args:     make(map[Handle][]string),
	}
	res.Combined = make([]string, 0, len(res.Leading)+len(res.Trailing))
	res.Combined = append(res.Combined, res.Leading...)
	res.Combined = append(res.Combined, res.Trailing...)

	for _, s := range r.switches {
		if s.used {
			res.Used = append(res.Used, s.handle)
			res.args[s.handle] = slices.Clone(s.args)
		}
	}
	return res
}

// Has reports whether the switch h was used.
func (res *ParseResult) Has(h Handle) bool {
	_, ok := res.args[h]
	return ok
}

// Args returns the values collected for h, or nil if h was not used.
func (res *ParseResult) Args(h Handle) []string {
	return slices.Clone(res.args[h])
}

// Values infers smart values for the arguments of h.
func (res *ParseResult) Values(h Handle) ([]smartarg.Value, error) {
	return smartarg.InferAll(res.args[h])
}

// CombinedValues infers smart values for all stand-alone arguments.
func (res *ParseResult) CombinedValues() ([]smartarg.Value, error) {
	return smartarg.InferAll(res.Combined)
}
