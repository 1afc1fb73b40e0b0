// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// commands.go - check, parse, resolve, infer, help and init commands.

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeranaias/switchkit/internal/config"
	"github.com/jeranaias/switchkit/internal/help"
	"github.com/jeranaias/switchkit/internal/switches"
)

// =============================================================================
// CHECK
// =============================================================================

func (a *App) newCheckCmd() *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the switch definitions",
		Long: `Define every switch from the definition file and report them, or report
the first definition error. With --watch the file is re-checked whenever it
changes, until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !watch {
				return a.runCheck()
			}
			if a.source == "" {
				return NewValidationErrorWithExample("--watch", "",
					"no definition file to watch", "switchkit check --watch -c switches.toml")
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.watchCheck(ctx)
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-check when the definition file changes")
	return cmd
}

func (a *App) runCheck() error {
	reg, err := a.registry()
	if err != nil {
		return err
	}
	report := newCheckReport(a.sourceName(), reg)
	return a.emit("check", report, func(w io.Writer) {
		writeCheckReport(w, report, a.width())
	})
}

// watchCheck checks once, then again after every change to the source file.
// Failures of later checks are reported without ending the watch.
func (a *App) watchCheck(ctx context.Context) error {
	if err := a.runCheck(); err != nil {
		DisplayError(a.Err, err, a.jsonMode())
	}

	w, err := NewFileWatcher(a.source, defaultDebounce, a.logger)
	if err != nil {
		return NewCommandError("check", "watch", "could not watch "+a.source, err)
	}
	defer w.Close()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.Changes():
			cfg, err := config.LoadFromPath(a.source)
			if err != nil {
				DisplayError(a.Err, &configLoadError{Path: a.source, Err: err}, a.jsonMode())
				continue
			}
			if a.jsonOut {
				cfg.Output.Format = config.OutputJSON
			}
			a.cfg = cfg
			config.SetGlobal(cfg)
			if err := a.runCheck(); err != nil {
				DisplayError(a.Err, err, a.jsonMode())
			}
		}
	}
}

// =============================================================================
// PARSE
// =============================================================================

func (a *App) newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse -- TOKENS...",
		Short: "Classify an argument vector",
		Long: `Parse the tokens against the defined switches and report the leading
arguments, each used switch with its values, and the trailing arguments.
Put the tokens after "--" so they are not read as switchkit flags.`,
		Example: `  switchkit parse -- build --files a.go b.go -v
  switchkit --json parse -- /o out.txt`,
		RunE: func(_ *cobra.Command, args []string) error {
			reg, err := a.registry()
			if err != nil {
				return err
			}
			report, err := parseTokens(reg, args)
			if err != nil {
				return err
			}
			return a.emit("parse", report, func(w io.Writer) {
				writeParseReport(w, report)
			})
		},
	}
}

// parseTokens resets reg and parses tokens into a report.
func parseTokens(reg *switches.Registry, tokens []string) (ParseReport, error) {
	reg.Reset()
	res, err := reg.Parse(tokens)
	if err != nil {
		return ParseReport{}, err
	}
	return newParseReport(tokens, reg, res), nil
}

// =============================================================================
// RESOLVE
// =============================================================================

func (a *App) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve -- TOKEN...",
		Short: "Show which switch each token names",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			reg, err := a.registry()
			if err != nil {
				return err
			}
			infos := make([]ResolveInfo, 0, len(args))
			for _, tok := range args {
				infos = append(infos, resolveToken(reg, tok))
			}
			return a.emit("resolve", infos, func(w io.Writer) {
				for _, info := range infos {
					writeResolveInfo(w, info)
				}
			})
		},
	}
}

// =============================================================================
// INFER
// =============================================================================

func (a *App) newInferCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "infer -- VALUE...",
		Short: "Show the smart-value kind of each value",
		Long: `Infer the kind of each value: int, float, bool or text, tried in that
order. Integers that do not fit in 64 bits are reported as overflow.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			infos := valueInfos(args)
			return a.emit("infer", infos, func(w io.Writer) {
				for _, v := range infos {
					writeValueInfo(w, v)
				}
			})
		},
	}
}

// =============================================================================
// HELP
// =============================================================================

func (a *App) newHelpCmd() *cobra.Command {
	var markdown bool
	cmd := &cobra.Command{
		Use:   "help",
		Short: "Show the help page of the defined switches",
		Long: `Build the help page of the switches in the definition file. Use
"switchkit --help" for help on switchkit itself.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			reg, err := a.registry()
			if err != nil {
				return err
			}
			page := help.Build(reg, a.helpOptions())
			if a.jsonMode() {
				return a.emit("help", page, nil)
			}
			return a.writeHelp(page, markdown)
		},
	}
	cmd.Flags().BoolVar(&markdown, "markdown", false, "Write the page as markdown")
	return cmd
}

func (a *App) helpOptions() help.Options {
	h := a.cfg.Help
	return help.Options{
		ToolName:        h.ToolName,
		Description:     h.Description,
		Copyright:       h.Copyright,
		SettingsSwitch:  h.SettingsSwitch,
		CopyrightSwitch: h.CopyrightSwitch,
		HelpSwitch:      h.HelpSwitch,
	}
}

// writeHelp writes markdown (rendered with glamour on a terminal) or the
// text page, styled when colors are on.
func (a *App) writeHelp(page *help.Page, markdown bool) error {
	if markdown {
		md := page.Markdown()
		if IsStdoutTTY() && ColorsEnabled() {
			out, err := help.RenderMarkdown(md, a.width(), a.cfg.Help.Style)
			if err != nil {
				a.logger.Warn("markdown rendering failed", zap.Error(err))
			} else {
				md = out
			}
		}
		_, err := io.WriteString(a.Out, md)
		return err
	}

	text := page.Text()
	if ColorsEnabled() {
		text = page.Render(HelpTheme())
	}
	_, err := io.WriteString(a.Out, text)
	return err
}

// =============================================================================
// INIT
// =============================================================================

// InitResult is the result of the init command.
type InitResult struct {
	Path     string `json:"path"`
	Format   string `json:"format"`
	Switches int    `json:"switches"`
}

func (a *App) newInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:         "init [PATH]",
		Short:       "Write a sample definition file",
		Long:        "Write a sample definition file. The format follows the file extension; the default path is ~/.switchkit/switches.toml.",
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{skipConfig: "true"},
		RunE: func(_ *cobra.Command, args []string) error {
			path, err := a.initPath(args)
			if err != nil {
				return err
			}
			if _, statErr := os.Stat(path); statErr == nil && !force {
				if a.jsonMode() || !a.interactive() {
					return NewValidationErrorWithExample("PATH", path, "file already exists",
						"switchkit init --force "+path)
				}
				ok, err := RequireConfirmation(a.In, a.Out, "Overwrite "+path+"?", false)
				if err != nil {
					return err
				}
				if !ok {
					ShowCancellationMessage(a.Out)
					return nil
				}
			}

			sample := config.Sample()
			if err := config.Save(sample, path); err != nil {
				return NewCommandError("init", "write", "could not write "+path, err)
			}
			a.logger.Info("sample definitions written", zap.String("path", path))

			res := InitResult{Path: path, Format: config.FormatOf(path), Switches: len(sample.Switches)}
			return a.emit("init", res, func(w io.Writer) {
				fmt.Fprintf(w, "%s wrote %d switch definitions to %s\n", RenderStatus("ok"), res.Switches, res.Path)
			})
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	return cmd
}

func (a *App) initPath(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if a.configPath != "" {
		return a.configPath, nil
	}
	return config.DefaultPath()
}
