// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// json_output.go - JSON output envelope for every switchkit command.

package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"
)

// JSONResponse is the response format for all commands in --json mode.
type JSONResponse struct {
	// Success indicates whether the command completed successfully
	Success bool `json:"success"`

	// Data contains the command-specific response data
	Data interface{} `json:"data"`

	// Error contains the error message if Success is false, null otherwise
	Error *string `json:"error"`

	// Timestamp is the RFC3339 timestamp when the response was generated
	Timestamp string `json:"timestamp"`

	// Command is the command that was executed
	Command string `json:"command,omitempty"`

	// RunID correlates the response with log entries of the same invocation
	RunID string `json:"run_id,omitempty"`
}

// NewJSONResponse creates a new successful JSON response.
func NewJSONResponse(command, runID string, data interface{}) *JSONResponse {
	return &JSONResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Command:   command,
		RunID:     runID,
	}
}

// Marshal returns the indented JSON encoding followed by a newline.
func (r *JSONResponse) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}
	return append(data, '\n'), nil
}

// Write encodes the response to w. A non-empty style highlights the JSON
// with that chroma style.
func (r *JSONResponse) Write(w io.Writer, style string) error {
	data, err := r.Marshal()
	if err != nil {
		return err
	}
	if style != "" {
		if highlighted, hlErr := HighlightJSON(string(data), style); hlErr == nil {
			_, err = io.WriteString(w, highlighted)
			return err
		}
	}
	_, err = w.Write(data)
	return err
}

// =============================================================================
// SYNTAX HIGHLIGHTING
// =============================================================================

// HighlightJSON applies terminal syntax highlighting to JSON source using
// the named chroma style. Unknown styles fall back to chroma's default.
func HighlightJSON(src, style string) (string, error) {
	lexer := lexers.Get("json")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	st := chromaStyles.Get(style)
	if st == nil {
		st = chromaStyles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, src)
	if err != nil {
		return "", fmt.Errorf("failed to tokenise JSON: %w", err)
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, st, iterator); err != nil {
		return "", fmt.Errorf("failed to format JSON: %w", err)
	}
	return buf.String(), nil
}
