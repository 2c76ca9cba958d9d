// SPDX-FileCopyrightText: 2026 ba2pack contributors
//
// SPDX-License-Identifier: MIT

package modpack

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ShortcutName is the launcher script written into the mods directory.
// The underscore prefix keeps the traversal from classifying it.
const ShortcutName = "_repack.sh"

// WriteShortcut writes an executable launcher script into the mods
// directory that re-invokes the tool with the resolved paths and flags.
// It returns the path of the written script.
func WriteShortcut(spec *Spec, executable string) (string, error) {
	path := filepath.Join(spec.ModsDir, ShortcutName)

	args := []string{
		shellQuote(executable),
		"-archiver " + shellQuote(spec.ArchiverDir),
		"-mods " + shellQuote(spec.ModsDir),
		"-game " + shellQuote(spec.GameDir),
		"-prefix " + shellQuote(spec.Prefix),
	}

	if spec.SaveShortcut {
		args = append(args, "-save-shortcut")
	}

	if spec.Cleanup {
		args = append(args, "-cleanup")
	}

	script := fmt.Sprintf("#!/bin/sh\nexec %s \"$@\"\n",
		strings.Join(args, " \\\n\t"))

	err := os.WriteFile(path, []byte(script), 0o755)
	if err != nil {
		return "", fmt.Errorf("write shortcut: %w", err)
	}

	return path, nil
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
