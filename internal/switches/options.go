// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package switches

// definition collects the Define arguments before validation.
type definition struct {
	short    string
	shortSet bool
	longOnly bool
	minArgs  int
	maxArgs  int
	argless  bool
	summary  string
	remarks  string
}

// Option configures a switch passed to Registry.Define.
type Option func(*definition)

// WithShortName sets the short name explicitly instead of deriving it from
// the first character of the long name.
func WithShortName(short string) Option {
	return func(d *definition) {
		d.short = short
		d.shortSet = true
		d.longOnly = false
	}
}

// LongOnly defines the switch without a short name. It can then only be
// invoked as --long, and is exempt from short-name conflicts.
func LongOnly() Option {
	return func(d *definition) {
		d.short = ""
		d.shortSet = false
		d.longOnly = true
	}
}

// WithMinArgs sets the number of mandatory value arguments (default 0).
func WithMinArgs(n int) Option {
	return func(d *definition) { d.minArgs = n }
}

// WithMaxArgs sets the maximum number of value arguments (default Unlimited).
// A maximum below the minimum is raised to the minimum.
func WithMaxArgs(n int) Option {
	return func(d *definition) { d.maxArgs = n }
}

// WithArity sets both bounds.
func WithArity(minArgs, maxArgs int) Option {
	return func(d *definition) {
		d.minArgs = minArgs
		d.maxArgs = maxArgs
	}
}

// Argless forces both bounds to zero.
func Argless() Option {
	return func(d *definition) { d.argless = true }
}

// WithSummary sets the help summary.
func WithSummary(summary string) Option {
	return func(d *definition) { d.summary = summary }
}

// WithRemarks sets the help remarks.
func WithRemarks(remarks string) Option {
	return func(d *definition) { d.remarks = remarks }
}
