// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads switchkit configuration and switch definition files.
//
// A file holds tool settings (output, logging, help page) and an ordered
// list of switch definitions. TOML, JSON and YAML are accepted; the format
// follows the file extension and defaults to TOML.
//
// # Key Types
//
//   - Config: tool settings plus switch definitions
//   - SwitchSpec: one switch definition as written in a file
//   - ValidateErrors: every settings problem found by Validate
//
// # Configuration Precedence
//
//   - Environment variables (SWITCHKIT_*)
//   - The file named by --config or SWITCHKIT_CONFIG
//   - ~/.switchkit/switches.toml
//   - Built-in defaults
//
// # Usage
//
//	cfg, err := config.LoadFromPath("switches.toml")
//	if err != nil {
//	    return err
//	}
//	reg, err := cfg.Registry(logger)
package config
