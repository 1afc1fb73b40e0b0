// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the switchkit command-line tool.
//
// switchkit loads switch definitions from a TOML, JSON or YAML file and
// exercises them: it validates the definitions, classifies token vectors,
// resolves single tokens, prints the help page, infers smart values, and
// runs an interactive parse loop.
//
// # Key Types
//
//   - App: shared state of one invocation (config, logger, output streams)
//   - JSONResponse: envelope for --json output
//   - ParseReport, SwitchInfo, ResolveInfo: command results
//
// # Commands Overview
//
//   - check: validate definitions, optionally on every file change
//   - parse: classify tokens given after "--"
//   - resolve: resolve tokens to switches, with suggestions for typos
//   - help: print the help page (text, styled, or markdown)
//   - infer: show the smart-value kind of each value
//   - repl: parse lines typed interactively
//   - init: write a sample definition file
//
// All commands support --json. Exit codes: 0 success, 1 general error,
// 2 usage or parse error, 3 configuration or definition error.
package cli
