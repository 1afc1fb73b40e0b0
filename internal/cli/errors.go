// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Error types, display and exit codes for switchkit commands.
//
// STANDARDIZED PATTERN:
//   - Commands ALWAYS return errors (never just print and return nil)
//   - Execute displays the error once and maps it to an exit code

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jeranaias/switchkit/internal/config"
	"github.com/jeranaias/switchkit/internal/switches"
)

// =============================================================================
// EXIT CODES - Specific codes for different error categories
// =============================================================================

const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitGeneralError indicates a general/unknown error
	ExitGeneralError = 1
	// ExitUsageError indicates invalid command usage or a token vector that failed to parse
	ExitUsageError = 2
	// ExitConfigError indicates a configuration file or switch definition error
	ExitConfigError = 3
)

// =============================================================================
// ERROR TYPES FOR STRUCTURED ERROR HANDLING
// =============================================================================

// CommandError represents a CLI command error with context.
type CommandError struct {
	Command string // Command that failed (e.g., "check", "init")
	Action  string // Action being performed (e.g., "load", "write")
	Reason  string // Human-readable reason
	Err     error  // Underlying error (if any)
}

func (e *CommandError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s failed: %s: %v", e.Command, e.Action, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s %s failed: %s", e.Command, e.Action, e.Reason)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ValidationError represents a validation failure for user input.
type ValidationError struct {
	Field   string // Field that failed validation
	Value   string // Value that was provided
	Reason  string // Why validation failed
	Example string // Example of valid value (optional)
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	if e.Value != "" {
		msg += fmt.Sprintf(" (got: %s)", e.Value)
	}
	if e.Example != "" {
		msg += fmt.Sprintf("\nExample: %s", e.Example)
	}
	return msg
}

// NewCommandError creates a new command error.
func NewCommandError(command, action, reason string, err error) error {
	return &CommandError{
		Command: command,
		Action:  action,
		Reason:  reason,
		Err:     err,
	}
}

// NewValidationErrorWithExample creates a validation error with an example.
func NewValidationErrorWithExample(field, value, reason, example string) error {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Reason:  reason,
		Example: example,
	}
}

// ErrMissingArgument creates an error for missing required arguments.
func ErrMissingArgument(argName, usage string) error {
	return NewValidationErrorWithExample(argName, "", "required argument missing", usage)
}

// =============================================================================
// ERROR DISPLAY HELPERS
// =============================================================================

// DisplayError writes err in a consistent format: structured JSON in JSON
// mode, a styled one-line message otherwise.
func DisplayError(w io.Writer, err error, jsonMode bool) {
	if err == nil {
		return
	}
	if jsonMode {
		DisplayErrorJSON(w, err)
		return
	}
	fmt.Fprintf(w, "%s %s\n", RenderConditional(ErrorStyle, "[ERROR]"), err.Error())
}

// DisplayErrorJSON writes err as a JSON object with its structured details.
func DisplayErrorJSON(w io.Writer, err error) {
	output := map[string]interface{}{
		"error":     err.Error(),
		"success":   false,
		"exit_code": GetExitCode(err),
	}

	var (
		parseErr *switches.ParseError
		defErr   *switches.DefinitionError
		cfgErrs  config.ValidateErrors
		cmdErr   *CommandError
		valErr   *ValidationError
	)
	switch {
	case errors.As(err, &parseErr):
		output["error_type"] = "parse_error"
		output["kind"] = parseErr.Kind.String()
		output["token"] = parseErr.Token
		output["index"] = parseErr.Index
		output["switch"] = parseErr.LongName
		output["reason"] = parseErr.Reason

	case errors.As(err, &defErr):
		output["error_type"] = "definition_error"
		output["kind"] = defErr.Kind.String()
		output["long_name"] = defErr.LongName
		output["short_name"] = defErr.ShortName
		output["reason"] = defErr.Reason

	case errors.As(err, &cfgErrs):
		output["error_type"] = "config_error"
		fields := make([]map[string]string, 0, len(cfgErrs))
		for _, e := range cfgErrs {
			fields = append(fields, map[string]string{"field": e.Field, "message": e.Message})
		}
		output["fields"] = fields

	case errors.As(err, &valErr):
		output["error_type"] = "validation_error"
		output["field"] = valErr.Field
		output["value"] = valErr.Value
		output["reason"] = valErr.Reason
		if valErr.Example != "" {
			output["example"] = valErr.Example
		}

	case errors.As(err, &cmdErr):
		output["error_type"] = "command_error"
		output["command"] = cmdErr.Command
		output["action"] = cmdErr.Action
		output["reason"] = cmdErr.Reason

	default:
		output["error_type"] = "generic_error"
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	_ = encoder.Encode(output)
}

// =============================================================================
// EXIT CODES
// =============================================================================

// usageMessages are prefixes of cobra's argument and flag errors.
var usageMessages = []string{
	"unknown command",
	"unknown flag",
	"unknown shorthand flag",
	"flag needs an argument",
	"invalid argument",
	"accepts ",
	"requires at least",
}

// GetExitCode determines the appropriate exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if switches.IsParseError(err) {
		return ExitUsageError
	}
	if switches.IsDefinitionError(err) {
		return ExitConfigError
	}

	var cfgErrs config.ValidateErrors
	if errors.As(err, &cfgErrs) {
		return ExitConfigError
	}
	var configErr *configLoadError
	if errors.As(err, &configErr) {
		return ExitConfigError
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return ExitUsageError
	}

	errMsg := strings.ToLower(err.Error())
	for _, prefix := range usageMessages {
		if strings.HasPrefix(errMsg, prefix) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

// configLoadError marks a failure to read or decode the definition file.
type configLoadError struct {
	Path string
	Err  error
}

func (e *configLoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("config: %v", e.Err)
	}
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *configLoadError) Unwrap() error { return e.Err }

// WrapError wraps an error with additional context.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
