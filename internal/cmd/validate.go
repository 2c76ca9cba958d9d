// SPDX-FileCopyrightText: 2026 ba2pack contributors
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"ba2pack/internal/archive2"
	"ba2pack/internal/modpack"
)

// Validate checks the directory parameters of the given [modpack.Spec]
// and probes the archiver binary. It must pass before anything on disk is
// touched.
func Validate(ctx context.Context, spec *modpack.Spec) error {
	dirs := []struct {
		what string
		path string
	}{
		{what: "archiver folder", path: spec.ArchiverDir},
		{what: "mods folder", path: spec.ModsDir},
		{what: "game folder", path: spec.GameDir},
		{what: "game data folder", path: spec.DataDir()},
	}

	for _, dir := range dirs {
		err := DirPath(dir.path).Check()
		if err != nil {
			return &ValidationError{What: dir.what, Err: err}
		}
	}

	err := validateExecutable(spec.Executable())
	if err != nil {
		return &ValidationError{What: "archiver binary", Err: err}
	}

	err = archive2.Probe(ctx, spec.Executable())
	if err != nil {
		return &ValidationError{What: "archiver binary", Err: err}
	}

	return nil
}

func validateExecutable(path string) error {
	stat, err := os.Stat(path)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if !stat.Mode().IsRegular() {
		return fmt.Errorf("%w: not a regular file", ErrNotExecutable)
	}

	err = unix.Access(path, unix.X_OK)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNotExecutable, err)
	}

	return nil
}
