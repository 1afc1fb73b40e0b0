// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// report.go - Command results and their text rendering.

package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jeranaias/switchkit/internal/smartarg"
	"github.com/jeranaias/switchkit/internal/switches"
	"github.com/jeranaias/switchkit/internal/util"
)

// kindOverflow labels a numeric value that does not fit its kind.
const kindOverflow = "overflow"

// =============================================================================
// DATA STRUCTURES
// =============================================================================

// SwitchInfo describes a defined switch.
type SwitchInfo struct {
	Long    string   `json:"long"`
	Short   string   `json:"short,omitempty"`
	Forms   []string `json:"forms"`
	Min     int      `json:"min"`
	Max     *int     `json:"max"` // null when unlimited
	Summary string   `json:"summary,omitempty"`
}

// CheckReport is the result of the check command.
type CheckReport struct {
	Source   string       `json:"source"`
	Count    int          `json:"count"`
	Switches []SwitchInfo `json:"switches"`
}

// ValueInfo is a raw token with its inferred smart-value kind.
type ValueInfo struct {
	Raw  string `json:"raw"`
	Kind string `json:"kind"`
}

// UsedSwitch is a switch that appeared in a parse, with its values.
type UsedSwitch struct {
	Long  string      `json:"long"`
	Short string      `json:"short,omitempty"`
	Args  []ValueInfo `json:"args"`
}

// ParseReport is the result of parsing one token vector.
type ParseReport struct {
	Tokens   []string     `json:"tokens"`
	Leading  []string     `json:"leading"`
	Trailing []string     `json:"trailing"`
	Combined []string     `json:"combined"`
	Used     []UsedSwitch `json:"used"`
}

// ResolveInfo is the result of resolving one token.
type ResolveInfo struct {
	Token      string `json:"token"`
	Prefixed   bool   `json:"prefixed"`
	Switch     string `json:"switch,omitempty"`
	IsToken    bool   `json:"is_switch_token"`
	Suggestion string `json:"suggestion,omitempty"`
}

// =============================================================================
// BUILDERS
// =============================================================================

func newSwitchInfo(s *switches.Switch) SwitchInfo {
	info := SwitchInfo{
		Long:    s.LongName(),
		Short:   s.ShortName(),
		Forms:   s.Forms(),
		Min:     s.MinArgs(),
		Summary: s.Summary,
	}
	if s.MaxArgs() != switches.Unlimited {
		m := s.MaxArgs()
		info.Max = &m
	}
	return info
}

func newCheckReport(source string, reg *switches.Registry) CheckReport {
	report := CheckReport{Source: source, Switches: []SwitchInfo{}}
	for _, s := range reg.Switches() {
		report.Switches = append(report.Switches, newSwitchInfo(s))
	}
	report.Count = len(report.Switches)
	return report
}

// valueInfos infers a kind for each raw value. Numbers too large for their
// kind are reported as overflow rather than failing the report.
func valueInfos(raws []string) []ValueInfo {
	out := make([]ValueInfo, 0, len(raws))
	for _, raw := range raws {
		out = append(out, valueInfo(raw))
	}
	return out
}

func valueInfo(raw string) ValueInfo {
	v, err := smartarg.Infer(raw)
	if errors.Is(err, smartarg.ErrOverflow) {
		return ValueInfo{Raw: raw, Kind: kindOverflow}
	}
	return ValueInfo{Raw: raw, Kind: v.Kind().String()}
}

func newParseReport(tokens []string, reg *switches.Registry, res *switches.ParseResult) ParseReport {
	report := ParseReport{
		Tokens:   nonNil(tokens),
		Leading:  nonNil(res.Leading),
		Trailing: nonNil(res.Trailing),
		Combined: nonNil(res.Combined),
		Used:     []UsedSwitch{},
	}
	for _, h := range res.Used {
		s := reg.Switch(h)
		report.Used = append(report.Used, UsedSwitch{
			Long:  s.LongName(),
			Short: s.ShortName(),
			Args:  valueInfos(res.Args(h)),
		})
	}
	return report
}

func resolveToken(reg *switches.Registry, token string) ResolveInfo {
	info := ResolveInfo{
		Token:    token,
		Prefixed: switches.IsPrefixedSwitchFormat(token),
		IsToken:  reg.IsSwitchToken(token),
	}
	if h, ok := reg.ResolveSwitch(token); ok {
		info.Switch = reg.Switch(h).String()
		return info
	}
	info.Suggestion = SuggestSwitch(reg, token)
	return info
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// =============================================================================
// TEXT RENDERING
// =============================================================================

func formatMax(m *int) string {
	if m == nil {
		return "unlimited"
	}
	return strconv.Itoa(*m)
}

func writeCheckReport(w io.Writer, r CheckReport, width int) {
	fmt.Fprintf(w, "%s %s\n", RenderStatus("ok"), RenderConditional(TitleStyle,
		fmt.Sprintf("%d switch(es) defined in %s", r.Count, r.Source)))
	if r.Count == 0 {
		return
	}
	fmt.Fprintln(w, RenderSeparator(min(width, 70)))

	formsWidth := 0
	for _, s := range r.Switches {
		formsWidth = max(formsWidth, util.DisplayWidth(strings.Join(s.Forms, ", ")))
	}
	for _, s := range r.Switches {
		forms := util.PadRight(strings.Join(s.Forms, ", "), formsWidth)
		arity := fmt.Sprintf("args %d..%s", s.Min, formatMax(s.Max))
		fmt.Fprintf(w, "  %s  %s\n", RenderConditional(HighlightStyle, forms), RenderConditional(DimStyle, arity))
		if s.Summary != "" {
			indent := strings.Repeat(" ", 4)
			wrapped := WrapText(s.Summary, max(width-len(indent), MinTerminalWidth))
			for _, line := range strings.Split(wrapped, "\n") {
				fmt.Fprintln(w, indent+RenderConditional(ValueStyle, line))
			}
		}
	}
}

func writeList(w io.Writer, label string, items []string) {
	fmt.Fprintf(w, "%s %s\n", RenderConditional(LabelStyle, util.PadRight(label+":", 10)), formatTokens(items))
}

func formatTokens(items []string) string {
	if len(items) == 0 {
		return RenderConditional(DimStyle, "(none)")
	}
	quoted := make([]string, len(items))
	for i, it := range items {
		quoted[i] = strconv.Quote(it)
	}
	return strings.Join(quoted, " ")
}

func formatValues(vals []ValueInfo) string {
	if len(vals) == 0 {
		return RenderConditional(DimStyle, "(no arguments)")
	}
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Quote(v.Raw) + RenderConditional(InfoStyle, ":"+v.Kind)
	}
	return strings.Join(parts, " ")
}

func writeParseReport(w io.Writer, r ParseReport) {
	writeList(w, "leading", r.Leading)
	if len(r.Used) == 0 {
		fmt.Fprintf(w, "%s %s\n", RenderConditional(LabelStyle, util.PadRight("switches:", 10)),
			RenderConditional(DimStyle, "(none)"))
	} else {
		fmt.Fprintln(w, RenderConditional(LabelStyle, "switches:"))
		for _, u := range r.Used {
			fmt.Fprintf(w, "  %s %s\n", RenderConditional(HighlightStyle, "--"+u.Long), formatValues(u.Args))
		}
	}
	writeList(w, "trailing", r.Trailing)
	writeList(w, "combined", r.Combined)
}

func writeResolveInfo(w io.Writer, info ResolveInfo) {
	switch {
	case info.Switch != "" && info.IsToken:
		fmt.Fprintf(w, "%s %s -> %s\n", RenderStatus("ok"), info.Token, RenderConditional(HighlightStyle, info.Switch))
	case info.Switch != "":
		fmt.Fprintf(w, "%s %s -> %s %s\n", RenderStatus("warn"), info.Token,
			RenderConditional(HighlightStyle, info.Switch),
			RenderConditional(DimStyle, "(name only; not a switch token)"))
	default:
		fmt.Fprintf(w, "%s %s does not name a switch\n", RenderStatus("fail"), info.Token)
		if info.Suggestion != "" {
			fmt.Fprintf(w, "     %s\n", RenderConditional(WarningStyle, "did you mean "+info.Suggestion+"?"))
		}
	}
}

func writeValueInfo(w io.Writer, v ValueInfo) {
	fmt.Fprintf(w, "%s %s\n", RenderConditional(InfoStyle, util.PadRight(v.Kind, 9)), strconv.Quote(v.Raw))
}
