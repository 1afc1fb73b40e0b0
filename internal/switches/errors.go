// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package switches

import (
	"errors"
	"fmt"
)

// =============================================================================
// ERROR KINDS
// =============================================================================

// ErrorKind identifies the rule a definition or parse violated.
type ErrorKind int

const (
	// Definition errors
	InvalidArity ErrorKind = iota + 1
	InvalidName
	InvalidCharacter
	InvalidFormat
	NameConflict

	// Parse errors
	DuplicateSwitchUse
	ArityNotSatisfied
)

// Sentinels returned by DefinitionError.Unwrap and ParseError.Unwrap, for
// use with errors.Is.
var (
	ErrInvalidArity       = errors.New("invalid arity")
	ErrInvalidName        = errors.New("invalid name")
	ErrInvalidCharacter   = errors.New("invalid character")
	ErrInvalidFormat      = errors.New("invalid name format")
	ErrNameConflict       = errors.New("name conflict")
	ErrDuplicateSwitchUse = errors.New("switch used more than once")
	ErrArityNotSatisfied  = errors.New("minimum arguments not met")

	// ErrUnknownSwitch is returned for a Handle that does not belong to the registry.
	ErrUnknownSwitch = errors.New("unknown switch")
	// ErrParamsClosed is returned when documenting a parameter after a variadic one.
	ErrParamsClosed = errors.New("variadic parameter already documented")
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidArity:
		return "InvalidArity"
	case InvalidName:
		return "InvalidName"
	case InvalidCharacter:
		return "InvalidCharacter"
	case InvalidFormat:
		return "InvalidFormat"
	case NameConflict:
		return "NameConflict"
	case DuplicateSwitchUse:
		return "DuplicateSwitchUse"
	case ArityNotSatisfied:
		return "ArityNotSatisfied"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case InvalidArity:
		return ErrInvalidArity
	case InvalidName:
		return ErrInvalidName
	case InvalidCharacter:
		return ErrInvalidCharacter
	case InvalidFormat:
		return ErrInvalidFormat
	case NameConflict:
		return ErrNameConflict
	case DuplicateSwitchUse:
		return ErrDuplicateSwitchUse
	case ArityNotSatisfied:
		return ErrArityNotSatisfied
	default:
		return nil
	}
}

// =============================================================================
// ERROR TYPES
// =============================================================================

// DefinitionError is returned by Registry.Define when a switch cannot be created.
type DefinitionError struct {
	Kind      ErrorKind
	LongName  string // Requested long name (lowercased when known)
	ShortName string // Requested or derived short name, "" for long-only
	Reason    string
}

func (e *DefinitionError) Error() string {
	name := "--" + e.LongName
	if e.ShortName != "" {
		name += " (-" + e.ShortName + ")"
	}
	return fmt.Sprintf("cannot define switch %s: %s: %s", name, e.Kind.sentinel(), e.Reason)
}

func (e *DefinitionError) Unwrap() error {
	return e.Kind.sentinel()
}

// ParseError is returned by Registry.Parse. It names the token that
// triggered the failure and the switch it concerns.
type ParseError struct {
	Kind      ErrorKind
	Token     string // Offending raw token
	Index     int    // Position of Token in the parsed vector
	Switch    Handle
	LongName  string
	ShortName string
	Reason    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("switch %q (--%s) at argument %d: %s: %s",
		e.Token, e.LongName, e.Index, e.Kind.sentinel(), e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Kind.sentinel()
}

// IsDefinitionError reports whether err is, or wraps, a DefinitionError.
func IsDefinitionError(err error) bool {
	var defErr *DefinitionError
	return errors.As(err, &defErr)
}

// IsParseError reports whether err is, or wraps, a ParseError.
func IsParseError(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

func definitionError(kind ErrorKind, long, short, format string, args ...any) error {
	return &DefinitionError{
		Kind:      kind,
		LongName:  long,
		ShortName: short,
		Reason:    fmt.Sprintf(format, args...),
	}
}
