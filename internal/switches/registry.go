// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package switches

import (
	"strings"

	"go.uber.org/zap"

	"github.com/jeranaias/switchkit/internal/util"
)

// Registry holds switch definitions in the order they were defined, and the
// stand-alone arguments accumulated by Parse since the last Reset.
type Registry struct {
	switches []*Switch
	byLong   map[string]Handle
	byShort  map[string]Handle

	leading  []string
	trailing []string

	logger *zap.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger routes definition and parse tracing to logger at debug level.
func WithLogger(logger *zap.Logger) RegistryOption {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		byLong:  make(map[string]Handle),
		byShort: make(map[string]Handle),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// =============================================================================
// DEFINITION
// =============================================================================

// Define validates and adds a switch. Without options the switch takes any
// number of arguments and its short name is the first character of long.
//
// Validation runs in a fixed order and the first failure is returned as a
// *DefinitionError:
//
//  1. negative minimum or maximum: InvalidArity
//  2. a maximum below the minimum is raised to the minimum; Argless forces 0/0
//  3. long name shorter than two characters: InvalidName; containing '/': InvalidCharacter
//  4. short name not exactly one character: InvalidName; containing '-' or '/': InvalidCharacter
//  5. neither name fits the dash-joined grammar: InvalidFormat
//  6. long name taken, or short name taken by a switch that has one: NameConflict
func (r *Registry) Define(long string, opts ...Option) (Handle, error) {
	d := definition{maxArgs: Unlimited}
	for _, opt := range opts {
		opt(&d)
	}

	h, err := r.define(long, d)
	if err != nil {
		r.logger.Debug("switch definition rejected",
			zap.String("long", long),
			zap.String("short", d.short),
			zap.Error(err))
		return noSwitch, err
	}

	s := r.switches[h]
	r.logger.Debug("switch defined",
		zap.String("long", s.long),
		zap.String("short", s.short),
		zap.Int("min_args", s.minArgs),
		zap.Int("max_args", s.maxArgs))
	return h, nil
}

func (r *Registry) define(long string, d definition) (Handle, error) {
	if d.minArgs < 0 {
		return noSwitch, definitionError(InvalidArity, long, d.short,
			"minimum arguments must not be negative (got %d)", d.minArgs)
	}
	if d.maxArgs < 0 {
		return noSwitch, definitionError(InvalidArity, long, d.short,
			"maximum arguments must not be negative (got %d)", d.maxArgs)
	}
	if d.maxArgs < d.minArgs {
		d.maxArgs = d.minArgs
	}
	if d.argless {
		d.minArgs, d.maxArgs = 0, 0
	}

	short := d.short
	if !d.shortSet && !d.longOnly && long != "" {
		short = util.FirstGrapheme(long)
	}
	long = lower(long)
	short = lower(short)
	hasShort := !d.longOnly

	if long == "" || util.GraphemeCount(long) < 2 {
		return noSwitch, definitionError(InvalidName, long, short,
			"long name must be at least 2 characters")
	}
	if strings.Contains(long, "/") {
		return noSwitch, definitionError(InvalidCharacter, long, short,
			"long name must not contain '/'")
	}
	if hasShort {
		if util.GraphemeCount(short) != 1 {
			return noSwitch, definitionError(InvalidName, long, short,
				"short name must be exactly 1 character")
		}
		if strings.ContainsAny(short, "-/") {
			return noSwitch, definitionError(InvalidCharacter, long, short,
				"short name must not be '-' or '/'")
		}
	}
	if !IsSwitchFormat(long) && !(hasShort && IsSwitchFormat(short)) {
		return noSwitch, definitionError(InvalidFormat, long, short,
			"names must be runs of characters other than '-', '/' and whitespace joined by single dashes")
	}

	if other, taken := r.byLong[long]; taken {
		return noSwitch, definitionError(NameConflict, long, short,
			"long name already used by %s", r.switches[other])
	}
	if hasShort {
		if other, taken := r.byShort[short]; taken {
			return noSwitch, definitionError(NameConflict, long, short,
				"short name already used by %s", r.switches[other])
		}
	}

	h := Handle(len(r.switches))
	r.switches = append(r.switches, &Switch{
		handle:  h,
		long:    long,
		short:   short,
		minArgs: d.minArgs,
		maxArgs: d.maxArgs,
		Summary: d.summary,
		Remarks: d.remarks,
	})
	r.byLong[long] = h
	if hasShort {
		r.byShort[short] = h
	}
	return h, nil
}

// MustDefine is like Define but panics on error. Use it for switch tables
// fixed at compile time.
func (r *Registry) MustDefine(long string, opts ...Option) Handle {
	h, err := r.Define(long, opts...)
	if err != nil {
		panic(err)
	}
	return h
}

// =============================================================================
// LOOKUP
// =============================================================================

// Len returns the number of defined switches.
func (r *Registry) Len() int { return len(r.switches) }

// Switch returns the definition for h, or nil if h is not from this registry.
func (r *Registry) Switch(h Handle) *Switch {
	if h < 0 || int(h) >= len(r.switches) {
		return nil
	}
	return r.switches[h]
}

// Switches returns all definitions in definition order.
func (r *Registry) Switches() []*Switch {
	out := make([]*Switch, len(r.switches))
	copy(out, r.switches)
	return out
}

// ResolveSwitch maps a token to a switch: "--x" matches long names only,
// "-x" and "/x" match short names only, and an unprefixed token matches
// either. Matching is case-insensitive.
func (r *Registry) ResolveSwitch(token string) (Handle, bool) {
	f, name := splitPrefix(lower(token))
	return r.lookup(f, name)
}

// Lookup resolves an unprefixed long or short name.
func (r *Registry) Lookup(name string) (Handle, bool) {
	return r.lookup(formBare, lower(name))
}

func (r *Registry) lookup(f form, name string) (Handle, bool) {
	if name == "" {
		return noSwitch, false
	}
	if f == formLong || f == formBare {
		if h, ok := r.byLong[name]; ok {
			return h, true
		}
	}
	if f == formShort || f == formBare {
		if h, ok := r.byShort[name]; ok {
			return h, true
		}
	}
	return noSwitch, false
}

// IsNameOfSwitch reports whether name is a well-formed unprefixed name of a
// defined switch.
func (r *Registry) IsNameOfSwitch(name string) bool {
	if !IsSwitchFormat(name) {
		return false
	}
	_, ok := r.Lookup(name)
	return ok
}

// IsSwitchToken reports whether token is a well-formed prefixed invocation
// of a defined switch. This is the test Parse applies to every token.
func (r *Registry) IsSwitchToken(token string) bool {
	_, ok := r.switchToken(token)
	return ok
}

func (r *Registry) switchToken(token string) (Handle, bool) {
	if !IsPrefixedSwitchFormat(token) {
		return noSwitch, false
	}
	return r.ResolveSwitch(token)
}

// =============================================================================
// RESET
// =============================================================================

// Reset clears every switch's used flag and collected arguments, and the
// accumulated stand-alone arguments. Definitions are kept.
func (r *Registry) Reset() {
	for _, s := range r.switches {
		s.reset()
	}
	r.leading = nil
	r.trailing = nil
}
