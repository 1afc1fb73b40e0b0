// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// repl.go - Interactive parse loop with line editing and history.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/shlex"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeranaias/switchkit/internal/config"
	"github.com/jeranaias/switchkit/internal/switches"
)

const replPrompt = "switchkit> "

const replUsage = `Type an argument vector to parse it, e.g.  build --files a.go b.go -v
  :switches  list the defined switches
  :reset     clear the parse state
  :help      show this text
  :quit      leave (also Ctrl-D)`

// lineReader reads one edited line at a time.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// errQuit ends the loop without an error.
var errQuit = errors.New("quit")

// ErrUnterminatedQuote is returned for a line that ends inside quotes or
// right after a backslash.
var ErrUnterminatedQuote = errors.New("unterminated quote")

// SplitLine splits a REPL line into tokens with shell quoting rules:
// whitespace separates, quotes group, backslash escapes and '#' starts a
// comment. Variables and globs are not expanded.
func SplitLine(line string) ([]string, error) {
	tokens, err := shlex.Split(line)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnterminatedQuote, err)
	}
	return tokens, nil
}

func (a *App) newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Parse argument vectors interactively",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			reg, err := a.registry()
			if err != nil {
				return err
			}

			line := liner.NewLiner()
			line.SetCtrlCAborts(true)
			historyFile := replHistoryPath()
			if f, err := os.Open(historyFile); err == nil {
				_, _ = line.ReadHistory(f)
				f.Close()
			}
			defer func() {
				saveHistory(line, historyFile, a.logger)
				line.Close()
			}()

			fmt.Fprintln(a.Out, RenderConditional(DimStyle, replUsage))
			return a.replLoop(line, reg)
		},
	}
}

// replLoop reads lines until EOF, Ctrl-C or :quit. Parse failures are
// reported and the loop continues.
func (a *App) replLoop(in lineReader, reg *switches.Registry) error {
	for {
		input, err := in.Prompt(replPrompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(a.Out)
			return nil
		}
		if err != nil {
			return NewCommandError("repl", "read", "could not read input", err)
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		in.AppendHistory(input)

		if err := a.evalLine(reg, input); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			DisplayError(a.Out, err, a.jsonMode())
		}
	}
}

// evalLine runs one REPL line: a colon command or an argument vector.
func (a *App) evalLine(reg *switches.Registry, input string) error {
	switch cmd := strings.TrimSpace(input); cmd {
	case ":quit", ":q", ":exit":
		return errQuit
	case ":help", ":?":
		fmt.Fprintln(a.Out, replUsage)
		return nil
	case ":reset":
		reg.Reset()
		fmt.Fprintln(a.Out, RenderStatus("ok")+" state cleared")
		return nil
	case ":switches":
		report := newCheckReport(a.sourceName(), reg)
		return a.emit("check", report, func(w io.Writer) {
			writeCheckReport(w, report, a.width())
		})
	default:
		if strings.HasPrefix(cmd, ":") {
			return NewValidationErrorWithExample("command", cmd, "unknown REPL command", ":help")
		}
	}

	tokens, err := SplitLine(input)
	if err != nil {
		return err
	}
	report, err := parseTokens(reg, tokens)
	if err != nil {
		return err
	}
	a.logger.Debug("repl parse", zap.Strings("tokens", tokens), zap.Int("used", len(report.Used)))
	return a.emit("parse", report, func(w io.Writer) {
		writeParseReport(w, report)
	})
}

func replHistoryPath() string {
	dir, err := config.ConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "repl_history")
}

func saveHistory(line *liner.State, path string, logger *zap.Logger) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		logger.Debug("history not saved", zap.Error(err))
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		logger.Debug("history not saved", zap.Error(err))
		return
	}
	defer f.Close()
	if _, err := line.WriteHistory(f); err != nil {
		logger.Debug("history not saved", zap.Error(err))
	}
}
