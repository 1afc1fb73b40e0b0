// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package switches

import "fmt"

// Common parameter types shown in help signatures. Any other string is
// accepted as a custom type.
const (
	ParamString  = "string"
	ParamInt     = "int"
	ParamDouble  = "double"
	ParamDecimal = "decimal"
	ParamBool    = "bool"
)

// Param documents one value argument of a switch for help output.
// Params do not affect parsing; arity does.
type Param struct {
	Name     string `json:"name"`
	Type     string `json:"type,omitempty"`
	Variadic bool   `json:"variadic,omitempty"` // Takes the remaining values; must be the last param
}

// Signature renders the param as "{type:name}", prefixed with "... " when variadic.
func (p Param) Signature() string {
	typ := p.Type
	if typ == "" {
		typ = ParamString
	}
	sig := fmt.Sprintf("{%s:%s}", typ, p.Name)
	if p.Variadic {
		sig = "... " + sig
	}
	return sig
}

// AddParam appends a documented parameter to the switch h. After a variadic
// parameter nothing more can be added.
func (r *Registry) AddParam(h Handle, p Param) error {
	s := r.Switch(h)
	if s == nil {
		return fmt.Errorf("%w: handle %d", ErrUnknownSwitch, h)
	}
	if s.paramsClosed {
		return fmt.Errorf("%s: %w", s, ErrParamsClosed)
	}
	s.params = append(s.params, p)
	if p.Variadic {
		s.paramsClosed = true
	}
	return nil
}
