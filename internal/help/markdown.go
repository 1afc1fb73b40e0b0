// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package help

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// StyleAuto picks a glamour style from the terminal background.
const StyleAuto = "auto"

// RenderMarkdown renders md for the terminal with glamour, wrapping at width.
// style is a glamour standard style name ("dark", "light", "notty", ...) or StyleAuto.
func RenderMarkdown(md string, width int, style string) (string, error) {
	styleOpt := glamour.WithStandardStyle(style)
	if style == "" || style == StyleAuto {
		styleOpt = glamour.WithAutoStyle()
	}

	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}
