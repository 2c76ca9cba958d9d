// SPDX-FileCopyrightText: 2026 ba2pack contributors
//
// SPDX-License-Identifier: MIT

// Package modpack implements the repacking pipeline: staging all enabled
// mods into a scratch directory, normalizing asset folder casing, and
// building the final game archives with the external Archive2 tool.
package modpack
