// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package help

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/switchkit/internal/util"
)

const (
	bannerRule  = "==================================="
	sectionRule = "-----------------------------------"
	indent      = "    "
	labelMin    = "Minimum arguments:"
	labelMax    = "Maximum arguments:"
)

// role is the part of the page a fragment of text belongs to.
type role int

const (
	roleBanner role = iota
	roleSection
	roleRule
	roleForms
	roleLabel
	roleUsage
	roleText
)

// Theme holds the styles used by Render.
type Theme struct {
	Banner  lipgloss.Style
	Section lipgloss.Style
	Rule    lipgloss.Style
	Forms   lipgloss.Style
	Label   lipgloss.Style
	Usage   lipgloss.Style
	Text    lipgloss.Style
}

// DefaultTheme returns the CLI palette.
func DefaultTheme() Theme {
	return Theme{
		Banner:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Section: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		Rule:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Forms:   lipgloss.NewStyle().Foreground(lipgloss.Color("82")),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Usage:   lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		Text:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}

func (t Theme) paint(r role, s string) string {
	var st lipgloss.Style
	switch r {
	case roleBanner:
		st = t.Banner
	case roleSection:
		st = t.Section
	case roleRule:
		st = t.Rule
	case roleForms:
		st = t.Forms
	case roleLabel:
		st = t.Label
	case roleUsage:
		st = t.Usage
	default:
		st = t.Text
	}
	return st.Render(s)
}

func plain(_ role, s string) string { return s }

// =============================================================================
// TEXT
// =============================================================================

// Text renders the page without styling.
func (p *Page) Text() string {
	return p.layout(plain)
}

// Render renders the page with theme applied to each part.
func (p *Page) Render(theme Theme) string {
	return p.layout(theme.paint)
}

func (p *Page) layout(paint func(role, string) string) string {
	var b strings.Builder
	line := func(r role, s string) {
		b.WriteString(paint(r, s))
		b.WriteByte('\n')
	}
	section := func(title string) {
		line(roleRule, sectionRule)
		line(roleSection, title+":")
	}

	line(roleBanner, bannerRule)
	line(roleBanner, "=== HELP: "+p.ToolName)
	line(roleBanner, bannerRule)
	line(roleSection, "DESCRIPTION:")
	if p.Description != "" {
		writeBlock(line, "", p.Description)
	}

	section("USAGES")
	for i, e := range p.Usages {
		if i > 0 {
			b.WriteByte('\n')
		}
		p.writeEntry(line, e, true)
	}

	if p.Settings != nil {
		section("SETTINGS")
		p.writeEntry(line, *p.Settings, false)
	}
	if p.CopySwitch != nil || p.Copyright != "" {
		section("COPYRIGHT")
		if p.Copyright != "" {
			writeBlock(line, indent, p.Copyright)
		}
		if p.CopySwitch != nil {
			p.writeEntry(line, *p.CopySwitch, false)
		}
	}
	if p.Help != nil {
		section("HELP")
		p.writeEntry(line, *p.Help, false)
	}
	return b.String()
}

func (p *Page) writeEntry(line func(role, string), e Entry, full bool) {
	line(roleForms, indent+":: "+strings.Join(e.Forms, ", "))

	width := util.DisplayWidth(labelMin) + 1
	if e.HasMin() {
		line(roleLabel, indent+indent+util.PadRight(labelMin, width)+strconv.Itoa(e.MinArgs))
	}
	if e.HasMax() {
		line(roleLabel, indent+indent+util.PadRight(labelMax, width)+strconv.Itoa(e.MaxArgs))
	}
	if full {
		line(roleUsage, indent+indent+e.Usage(p.ToolName))
	}

	if e.Summary != "" {
		if full {
			line(roleSection, indent+indent+"SUMMARY:")
			writeBlock(line, indent+indent+indent, e.Summary)
		} else {
			writeBlock(line, indent+indent, e.Summary)
		}
	}
	if full && e.Remarks != "" {
		line(roleSection, indent+indent+"REMARKS:")
		writeBlock(line, indent+indent+indent, e.Remarks)
	}
}

// writeBlock writes each line of text with the given prefix.
func writeBlock(line func(role, string), prefix, text string) {
	for _, l := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		line(roleText, prefix+l)
	}
}

// =============================================================================
// MARKDOWN
// =============================================================================

// Markdown renders the page as a markdown document.
func (p *Page) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", p.ToolName)
	if p.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", p.Description)
	}

	b.WriteString("## Usages\n\n")
	for _, e := range p.Usages {
		p.writeMarkdownEntry(&b, e, true)
	}

	if p.Settings != nil {
		b.WriteString("## Settings\n\n")
		p.writeMarkdownEntry(&b, *p.Settings, false)
	}
	if p.CopySwitch != nil || p.Copyright != "" {
		b.WriteString("## Copyright\n\n")
		if p.Copyright != "" {
			fmt.Fprintf(&b, "%s\n\n", p.Copyright)
		}
		if p.CopySwitch != nil {
			p.writeMarkdownEntry(&b, *p.CopySwitch, false)
		}
	}
	if p.Help != nil {
		b.WriteString("## Help\n\n")
		p.writeMarkdownEntry(&b, *p.Help, false)
	}
	return b.String()
}

func (p *Page) writeMarkdownEntry(b *strings.Builder, e Entry, full bool) {
	forms := make([]string, len(e.Forms))
	for i, f := range e.Forms {
		forms[i] = "`" + f + "`"
	}
	fmt.Fprintf(b, "### %s\n\n", strings.Join(forms, ", "))

	if e.HasMin() || e.HasMax() {
		if e.HasMin() {
			fmt.Fprintf(b, "- %s %d\n", labelMin, e.MinArgs)
		}
		if e.HasMax() {
			fmt.Fprintf(b, "- %s %d\n", labelMax, e.MaxArgs)
		}
		b.WriteByte('\n')
	}
	if full {
		fmt.Fprintf(b, "```\n%s\n```\n\n", e.Usage(p.ToolName))
	}
	if e.Summary != "" {
		fmt.Fprintf(b, "%s\n\n", e.Summary)
	}
	if full && e.Remarks != "" {
		fmt.Fprintf(b, "**Remarks:** %s\n\n", e.Remarks)
	}
}
