// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package help builds help pages from a switch registry.
//
// A Page lists every switch in definition order under USAGES, with its
// invocation forms, argument bounds, parameter signature, summary and
// remarks. The settings, copyright and help switches are pulled out of
// USAGES into sections of their own. A Page renders as plain text, as
// lipgloss-styled text, or as markdown for glamour.
package help

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/jeranaias/switchkit/internal/switches"
)

// Long names that mark a switch as the settings, copyright or help switch
// when Options does not name one.
var (
	settingsNames  = []string{"settings", "switch-settings", "settings-switch"}
	copyrightNames = []string{"copyright", "switch-copyright", "copyright-switch"}
	helpNames      = []string{"help", "switch-help", "help-switch"}
)

// Options controls the page header and the special sections.
// Switch fields hold a long name; empty means detect by name.
type Options struct {
	ToolName        string // Defaults to the executable name
	Description     string
	Copyright       string
	SettingsSwitch  string
	CopyrightSwitch string
	HelpSwitch      string
}

// Entry describes one switch.
type Entry struct {
	Forms   []string         `json:"forms"` // "--long", then "-s" and "/s" when there is a short name
	MinArgs int              `json:"min_args"`
	MaxArgs int              `json:"max_args"` // switches.Unlimited when unbounded
	Params  []switches.Param `json:"params,omitempty"`
	Summary string           `json:"summary,omitempty"`
	Remarks string           `json:"remarks,omitempty"`
}

// HasMin reports whether the minimum differs from the default of zero.
func (e Entry) HasMin() bool { return e.MinArgs != 0 }

// HasMax reports whether the switch has an upper bound.
func (e Entry) HasMax() bool { return e.MaxArgs != switches.Unlimited }

// Usage returns the invocation line: tool name, long form and parameter signatures.
func (e Entry) Usage(tool string) string {
	parts := []string{tool, e.Forms[0]}
	for _, p := range e.Params {
		parts = append(parts, p.Signature())
	}
	return strings.Join(parts, " ")
}

// Page is a help page ready to render.
type Page struct {
	ToolName    string  `json:"tool_name"`
	Description string  `json:"description,omitempty"`
	Copyright   string  `json:"copyright,omitempty"`
	Usages      []Entry `json:"usages"`
	Settings    *Entry  `json:"settings,omitempty"`
	CopySwitch  *Entry  `json:"copyright_switch,omitempty"`
	Help        *Entry  `json:"help,omitempty"`
}

// Build collects the registry's switches into a Page.
func Build(reg *switches.Registry, opts Options) *Page {
	tool := opts.ToolName
	if tool == "" {
		tool = filepath.Base(os.Args[0])
	}

	p := &Page{
		ToolName:    tool,
		Description: opts.Description,
		Copyright:   opts.Copyright,
	}

	for _, s := range reg.Switches() {
		e := entryFor(s)
		switch {
		case p.Settings == nil && matches(s, opts.SettingsSwitch, settingsNames):
			p.Settings = &e
		case p.CopySwitch == nil && matches(s, opts.CopyrightSwitch, copyrightNames):
			p.CopySwitch = &e
		case p.Help == nil && matches(s, opts.HelpSwitch, helpNames):
			p.Help = &e
		default:
			p.Usages = append(p.Usages, e)
		}
	}
	return p
}

func entryFor(s *switches.Switch) Entry {
	return Entry{
		Forms:   s.Forms(),
		MinArgs: s.MinArgs(),
		MaxArgs: s.MaxArgs(),
		Params:  s.Params(),
		Summary: s.Summary,
		Remarks: s.Remarks,
	}
}

// matches reports whether s is the designated switch, or, with nothing
// designated, whether its long name is one of the conventional names.
func matches(s *switches.Switch, designated string, conventional []string) bool {
	if designated != "" {
		return strings.EqualFold(strings.TrimPrefix(designated, "--"), s.LongName())
	}
	return slices.Contains(conventional, s.LongName())
}
