// SPDX-FileCopyrightText: 2026 ba2pack contributors
//
// SPDX-License-Identifier: MIT

// Package cmd provides the CLI command entry point for ba2pack. It handles
// flag parsing, interactive path resolution, validation, error handling,
// and output handling.
package cmd
