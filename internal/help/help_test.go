// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package help

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/switchkit/internal/switches"
)

func newDemoRegistry(t *testing.T) *switches.Registry {
	t.Helper()
	reg := switches.NewRegistry()
	out := reg.MustDefine("output", switches.WithArity(1, 1), switches.WithSummary("Write results to FILE."))
	require.NoError(t, reg.AddParam(out, switches.Param{Name: "file", Type: switches.ParamString}))
	reg.MustDefine("force", switches.LongOnly(), switches.Argless())
	reg.MustDefine("help", switches.Argless(), switches.WithSummary("Show this page."))
	return reg
}

func TestBuild_Text(t *testing.T) {
	page := Build(newDemoRegistry(t), Options{
		ToolName:    "tool",
		Description: "Demo tool.",
		Copyright:   "(c) 2025 Someone",
	})

	want := `===================================
=== HELP: tool
===================================
DESCRIPTION:
Demo tool.
-----------------------------------
USAGES:
    :: --output, -o, /o
        Minimum arguments: 1
        Maximum arguments: 1
        tool --output {string:file}
        SUMMARY:
            Write results to FILE.

    :: --force
        Maximum arguments: 0
        tool --force
-----------------------------------
COPYRIGHT:
    (c) 2025 Someone
-----------------------------------
HELP:
    :: --help, -h, /h
        Maximum arguments: 0
        Show this page.
`
	assert.Equal(t, want, page.Text())
}

func TestBuild_SectionsByName(t *testing.T) {
	reg := switches.NewRegistry()
	reg.MustDefine("settings", switches.WithMaxArgs(2))
	reg.MustDefine("copyright", switches.Argless())
	reg.MustDefine("help", switches.Argless())
	reg.MustDefine("name")

	page := Build(reg, Options{ToolName: "tool"})
	require.NotNil(t, page.Settings)
	require.NotNil(t, page.CopySwitch)
	require.NotNil(t, page.Help)
	require.Len(t, page.Usages, 1)
	assert.Equal(t, "--name", page.Usages[0].Forms[0])

	text := page.Text()
	assert.Contains(t, text, "SETTINGS:\n    :: --settings, -s, /s")
	assert.Contains(t, text, "COPYRIGHT:\n    :: --copyright, -c, /c")
}

func TestBuild_DesignatedSwitches(t *testing.T) {
	reg := switches.NewRegistry()
	reg.MustDefine("usage", switches.WithShortName("?"), switches.Argless())
	reg.MustDefine("help")

	page := Build(reg, Options{ToolName: "tool", HelpSwitch: "--usage"})
	require.NotNil(t, page.Help)
	assert.Equal(t, "--usage", page.Help.Forms[0])
	require.Len(t, page.Usages, 1, "a designated switch replaces name detection")
	assert.Equal(t, "--help", page.Usages[0].Forms[0])
}

func TestEntry_Usage(t *testing.T) {
	e := Entry{
		Forms: []string{"--copy", "-c", "/c"},
		Params: []switches.Param{
			{Name: "dest", Type: switches.ParamString},
			{Name: "sources", Type: switches.ParamString, Variadic: true},
		},
		MaxArgs: switches.Unlimited,
	}
	assert.Equal(t, "tool --copy {string:dest} ... {string:sources}", e.Usage("tool"))
	assert.False(t, e.HasMin())
	assert.False(t, e.HasMax())
}

func TestBuild_DefaultToolName(t *testing.T) {
	page := Build(switches.NewRegistry(), Options{})
	assert.NotEmpty(t, page.ToolName)
}

func TestRender_Themed(t *testing.T) {
	page := Build(newDemoRegistry(t), Options{ToolName: "tool"})
	out := page.Render(DefaultTheme())
	assert.Contains(t, out, "HELP: tool")
	assert.Contains(t, out, "--output, -o, /o")
}

func TestMarkdown(t *testing.T) {
	page := Build(newDemoRegistry(t), Options{ToolName: "tool", Description: "Demo tool."})
	md := page.Markdown()

	assert.Contains(t, md, "# tool\n\nDemo tool.\n\n## Usages\n\n")
	assert.Contains(t, md, "### `--output`, `-o`, `/o`\n\n- Minimum arguments: 1\n- Maximum arguments: 1\n\n")
	assert.Contains(t, md, "```\ntool --output {string:file}\n```\n\nWrite results to FILE.\n\n")
	assert.Contains(t, md, "## Help\n\n### `--help`, `-h`, `/h`\n\n")
	assert.NotContains(t, md, "## Copyright")
}

func TestRenderMarkdown(t *testing.T) {
	page := Build(newDemoRegistry(t), Options{ToolName: "tool"})
	out, err := RenderMarkdown(page.Markdown(), 80, "notty")
	require.NoError(t, err)
	assert.Contains(t, out, "--output")
	assert.Contains(t, out, "tool --output {string:file}")
}
