// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package switches defines command-line switches and classifies raw
// arguments against them.
//
// A switch has a multi-character long name and an optional single-character
// short name, and accepts between MinArgs and MaxArgs value arguments:
//
//	--name   long form
//	-n, /n   short forms
//
// Names are lowercased, measured in grapheme clusters (an emoji is one
// character), and may contain single dashes between runs of other
// characters ("dry-run"). A switch defined with LongOnly has no short name
// and can only be invoked as --name.
//
// # Key Types
//
//   - Registry: the ordered set of defined switches plus parse state
//   - Switch: a definition with its per-parse usage and collected arguments
//   - Handle: stable identity of a definition within its Registry
//   - ParseResult: stand-alone arguments and used switches of one parse
//   - DefinitionError, ParseError: typed failures carrying an ErrorKind
//
// # Classification
//
// Registry.Parse walks the tokens once. Tokens before the first switch are
// leading stand-alone arguments. After a switch token, following tokens fill
// that switch's minimum, then its optional maximum. Once the last switch on
// the line is full, remaining tokens become trailing stand-alone arguments;
// overflow after any earlier switch is dropped.
//
//	reg := switches.NewRegistry()
//	out, _ := reg.Define("output", switches.WithMinArgs(1), switches.WithMaxArgs(1))
//	force, _ := reg.Define("force", switches.Argless())
//
//	res, err := reg.Parse([]string{"in.txt", "-o", "out.txt", "--force", "extra"})
//	// res.Leading  == [in.txt]
//	// reg.Switch(out).Args() == [out.txt]
//	// res.Trailing == [extra]
//
// Parse mutates the registry. Call Reset before parsing a new token vector;
// otherwise arguments accumulate and switches used in the earlier parse are
// reported as duplicates.
//
// A Registry is not safe for concurrent use. Give each goroutine its own.
package switches
