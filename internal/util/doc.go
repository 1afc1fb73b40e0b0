// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared across switchkit.
//
// # Key Functions
//
// Text Utilities:
//   - GraphemeCount, FirstGrapheme: user-perceived character handling
//   - DisplayWidth, PadRight, TruncateWidth: terminal column handling
//
// File Operations:
//   - AtomicWriteFile: Crash-safe file writing with fsync
//
// # Usage
//
//	// A single emoji counts as one unit
//	n := util.GraphemeCount("🦄🦄") // 2
//
//	// Align help columns regardless of wide characters
//	col := util.PadRight("--名前", 20)
//
//	// Write files atomically to prevent data loss
//	err := util.AtomicWriteFile(path, data, 0644)
package util
