// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package switches

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jeranaias/switchkit/internal/util"
)

// =============================================================================
// NAME GRAMMAR
// =============================================================================

// A name is one or more runs of characters other than '-', '/' and
// whitespace, joined by single dashes: "v", "help", "dry-run".
// A prefixed name is "--" + long name, or '-' or '/' + one character.
// Both patterns are anchored so "-a-x" or "--bo--bo" never match by substring.
// nameChar excludes every rune unicode.IsSpace accepts; RE2's \s alone
// misses \v and U+0085.
const nameChar = `[^-/\s\v\x{85}\p{Z}]`

var (
	bareNamePattern     = regexp.MustCompile(`^` + nameChar + `+(-` + nameChar + `+)*$`)
	prefixedNamePattern = regexp.MustCompile(`^(--` + nameChar + `+(-` + nameChar + `+)*|[-/]` + nameChar + `+)$`)
)

// form is how a token addresses a switch.
type form int

const (
	formBare  form = iota // "name" or "n"
	formLong              // "--name"
	formShort             // "-n" or "/n"
)

// lower applies Unicode lowercasing. A Caser is stateful, so one is built per call.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// splitPrefix strips one switch prefix from token.
func splitPrefix(token string) (form, string) {
	switch {
	case strings.HasPrefix(token, "--"):
		return formLong, token[2:]
	case strings.HasPrefix(token, "-"), strings.HasPrefix(token, "/"):
		return formShort, token[1:]
	default:
		return formBare, token
	}
}

// IsSwitchFormat reports whether name, without a prefix, fits the name
// grammar. Any match is usable in some role: one character as a short name,
// two or more as a long name.
func IsSwitchFormat(name string) bool {
	return bareNamePattern.MatchString(lower(name))
}

// IsPrefixedSwitchFormat reports whether token has the whole-string shape of
// a switch invocation: "--" followed by a name of at least two characters,
// or '-' or '/' followed by exactly one character.
func IsPrefixedSwitchFormat(token string) bool {
	token = lower(token)
	if !prefixedNamePattern.MatchString(token) {
		return false
	}
	f, name := splitPrefix(token)
	if f == formLong {
		return util.GraphemeCount(name) >= 2
	}
	return util.GraphemeCount(name) == 1
}
