// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// confirm.go - Interactive confirmation before replacing files.

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// RequireConfirmation asks the question on out and reads a y/N answer from
// in. Anything other than "y" or "yes" declines. jsonMode never prompts.
func RequireConfirmation(in io.Reader, out io.Writer, question string, jsonMode bool) (bool, error) {
	if jsonMode {
		return false, errors.New("confirmation required: use --force in JSON mode")
	}

	fmt.Fprintf(out, "%s [y/N]: ", question)
	input, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}

	response := strings.ToLower(strings.TrimSpace(input))
	return response == "y" || response == "yes", nil
}

// ShowCancellationMessage reports a declined confirmation.
func ShowCancellationMessage(out io.Writer) {
	fmt.Fprintln(out, RenderConditional(DimStyle, "Cancelled."))
}
