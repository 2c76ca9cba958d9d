// SPDX-FileCopyrightText: 2026 ba2pack contributors
//
// SPDX-License-Identifier: MIT

package modpack

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// caseTempSuffix is appended for the intermediate rename step. Renaming
// "Meshes" to "meshes" directly fails on case-insensitive filesystems.
const caseTempSuffix = ".casetmp"

// Normalize lower-cases the names of all top level loose asset category
// folders in staging. The engine matches those folder names case
// sensitively on some platforms.
func Normalize(spec *Spec) error {
	staging := spec.StagingDir()

	entries, err := os.ReadDir(staging)
	if err != nil {
		return fmt.Errorf("read staging dir: %w", err)
	}

	for _, entry := range entries {
		name := entry.Name()

		if !entry.IsDir() || !IsLooseCategory(name) {
			continue
		}

		lower := strings.ToLower(name)
		if name == lower {
			continue
		}

		err := normalizeDir(staging, name, lower)
		if err != nil {
			return fmt.Errorf("normalize %s: %w", name, err)
		}
	}

	return nil
}

func normalizeDir(staging, name, lower string) error {
	slog.Debug("Normalizing folder name",
		slog.String("from", name),
		slog.String("to", lower))

	path := filepath.Join(staging, name)
	tmp := path + caseTempSuffix

	err := os.Rename(path, tmp)
	if err != nil {
		return err //nolint:wrapcheck
	}

	target := filepath.Join(staging, lower)

	_, err = os.Stat(target)
	if err == nil {
		// On case-sensitive filesystems several casings can have been
		// staged. The merge keeps the target's files, so an already
		// lower-cased tree, or the first casing normalized, wins
		// regardless of where its files came from in the staging order.
		err = copyTreeKeep(tmp, target)
		if err != nil {
			return err
		}

		return os.RemoveAll(tmp) //nolint:wrapcheck
	}

	return os.Rename(tmp, target) //nolint:wrapcheck
}
