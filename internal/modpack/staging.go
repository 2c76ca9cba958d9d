// SPDX-FileCopyrightText: 2026 ba2pack contributors
//
// SPDX-License-Identifier: MIT

package modpack

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"ba2pack/internal/archive2"
)

// Stage recreates the staging directory and fills it with the content of
// all enabled mods.
//
// Entries of the mods directory are processed in ascending lexicographic
// order ([os.ReadDir] sorts by name). Loose asset category folders are
// copied, archives are extracted through Archive2, and plain subfolders
// are descended into exactly one level with the same rules. On name
// collisions in staging, later entries overwrite earlier ones.
func Stage(ctx context.Context, spec *Spec) error {
	staging := spec.StagingDir()

	err := recreateDir(staging)
	if err != nil {
		return fmt.Errorf("recreate staging dir: %w", err)
	}

	err = stageDir(ctx, spec, spec.ModsDir, true)
	if err != nil {
		return fmt.Errorf("stage mods: %w", err)
	}

	return nil
}

func stageDir(ctx context.Context, spec *Spec, dir string, root bool) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read dir: %w", err)
	}

	for _, entry := range entries {
		err := stageEntry(ctx, spec, dir, entry, root)
		if err != nil {
			return fmt.Errorf("%s: %w", entry.Name(), err)
		}
	}

	return nil
}

func stageEntry(
	ctx context.Context,
	spec *Spec,
	dir string,
	entry fs.DirEntry,
	root bool,
) error {
	name := entry.Name()
	path := filepath.Join(dir, name)

	switch class := Classify(name, entry.IsDir()); class {
	case ClassIgnored:
		slog.Debug("Skipping disabled entry", slog.String("path", path))
	case ClassLooseCategory:
		slog.Info("Copying loose folder", slog.String("path", path))

		return copyTree(path, filepath.Join(spec.StagingDir(), name))
	case ClassArchive:
		slog.Info("Extracting archive", slog.String("path", path))

		return archive2.Extract(ctx, spec.Executable(), path, spec.StagingDir())
	case ClassSubfolder:
		if !root {
			// Nested subfolders are not recognized by the layout and are
			// silently skipped.
			slog.Debug("Skipping nested subfolder", slog.String("path", path))
			return nil
		}

		slog.Info("Entering subfolder", slog.String("path", path))

		return stageDir(ctx, spec, path, false)
	case ClassUnrecognized:
		slog.Warn("Skipping unrecognized entry",
			slog.String("path", path))
	default:
		slog.Warn("Skipping entry with invalid class",
			slog.String("path", path),
			slog.String("class", class.String()))
	}

	return nil
}

// Cleanup removes the staging directory.
func Cleanup(spec *Spec) {
	staging := spec.StagingDir()

	slog.Debug("Removing staging dir", slog.String("path", staging))

	err := os.RemoveAll(staging)
	if err != nil {
		slog.Error("Failed to remove staging dir",
			slog.String("path", staging),
			slog.Any("error", err))
	}
}

// recreateDir ensures dir exists and is empty.
func recreateDir(dir string) error {
	err := os.RemoveAll(dir)
	if err != nil {
		return err //nolint:wrapcheck
	}

	return os.MkdirAll(dir, 0o755) //nolint:wrapcheck
}

// copyTree copies the directory tree at src below dst, overwriting
// existing files. [os.CopyFS] is not used since it refuses to replace
// files, which would break the last-write-wins law.
func copyTree(src, dst string) error {
	srcFS := os.DirFS(src)

	return fs.WalkDir(srcFS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		target := filepath.Join(dst, filepath.FromSlash(path))

		if d.IsDir() {
			return os.MkdirAll(target, 0o755) //nolint:wrapcheck
		}

		return copyFile(filepath.Join(src, filepath.FromSlash(path)), target)
	})
}

// copyTreeKeep is like [copyTree] but keeps existing files in dst.
func copyTreeKeep(src, dst string) error {
	srcFS := os.DirFS(src)

	return fs.WalkDir(srcFS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		target := filepath.Join(dst, filepath.FromSlash(path))

		if d.IsDir() {
			return os.MkdirAll(target, 0o755) //nolint:wrapcheck
		}

		if _, err := os.Stat(target); err == nil {
			return nil
		}

		return copyFile(filepath.Join(src, filepath.FromSlash(path)), target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err //nolint:wrapcheck
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err //nolint:wrapcheck
	}

	_, err = io.Copy(out, in)
	if err != nil {
		_ = out.Close()
		return fmt.Errorf("copy: %w", err)
	}

	return out.Close() //nolint:wrapcheck
}
