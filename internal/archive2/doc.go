// SPDX-FileCopyrightText: 2026 ba2pack contributors
//
// SPDX-License-Identifier: MIT

// Package archive2 wraps the external Archive2 executable that ships with
// the Fallout 4 Creation Kit. The archive format itself is opaque to this
// package; it only builds command lines for the tool's extract and create
// modes and runs them as subprocesses.
package archive2
