// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package smartarg infers a typed value from a raw command-line string.
//
// Inference tries, in this exact order, an all-digits integer, a
// digits-dot-digits float, and the literals "true"/"false". Anything else is
// kept as text. An earlier match always wins: "1" is an Int, never a Float
// or a Bool.
//
// # Usage
//
//	v, err := smartarg.Infer("42")
//	n, _ := v.Int()                 // 42
//	sum, err := smartarg.Add(v, w)  // both operands must share a kind
//
// Arithmetic and comparison helpers refuse operands of different kinds with
// ErrKindMismatch rather than converting between them.
package smartarg
