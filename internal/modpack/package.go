// SPDX-FileCopyrightText: 2026 ba2pack contributors
//
// SPDX-License-Identifier: MIT

package modpack

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"ba2pack/internal/archive2"
)

// Result reports which outputs a run produced.
type Result struct {
	// StringsCopied is set if a strings folder was copied loose into the
	// game's Data directory.
	StringsCopied bool

	// TexturesPacked is set if a texture archive was built.
	TexturesPacked bool

	// GeneralPacked is set if a general archive was built.
	GeneralPacked bool
}

// Package builds the final outputs from the staged content.
//
// String tables must stay loose, so a staged strings folder is copied
// verbatim into the game's Data directory. A staged textures folder is
// packed into the texture archive with the DDS format. All remaining top
// level staged folders go into the general archive. Both destination
// archives are deleted before being rebuilt; the texture archive only if
// textures were staged.
func Package(ctx context.Context, spec *Spec) (Result, error) {
	var result Result

	staging := spec.StagingDir()

	stringsDir := filepath.Join(staging, stringsDirName)
	if dirExists(stringsDir) {
		slog.Info("Copying string tables", slog.String("to", spec.DataDir()))

		err := copyTree(stringsDir, filepath.Join(spec.DataDir(), stringsDirName))
		if err != nil {
			return result, fmt.Errorf("copy strings: %w", err)
		}

		result.StringsCopied = true
	}

	texturesDir := filepath.Join(staging, texturesDirName)
	if dirExists(texturesDir) {
		err := removeArchive(spec.TextureArchive())
		if err != nil {
			return result, err
		}

		err = buildArchive(
			ctx,
			spec,
			[]string{texturesDir},
			spec.TextureArchive(),
			archive2.FormatDDS,
		)
		if err != nil {
			return result, fmt.Errorf("pack textures: %w", err)
		}

		result.TexturesPacked = true
	}

	inputs, err := generalInputs(staging)
	if err != nil {
		return result, err
	}

	err = removeArchive(spec.GeneralArchive())
	if err != nil {
		return result, err
	}

	if len(inputs) == 0 {
		slog.Info("No content for the general archive")
		return result, nil
	}

	err = buildArchive(ctx, spec, inputs, spec.GeneralArchive(), archive2.FormatGeneral)
	if err != nil {
		return result, fmt.Errorf("pack general: %w", err)
	}

	result.GeneralPacked = true

	return result, nil
}

// generalInputs lists all top level staged folders except strings and
// textures.
func generalInputs(staging string) ([]string, error) {
	entries, err := os.ReadDir(staging)
	if err != nil {
		return nil, fmt.Errorf("read staging dir: %w", err)
	}

	var inputs []string

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		switch entry.Name() {
		case stringsDirName, texturesDirName:
			continue
		}

		inputs = append(inputs, filepath.Join(staging, entry.Name()))
	}

	return inputs, nil
}

func buildArchive(
	ctx context.Context,
	spec *Spec,
	inputs []string,
	archivePath string,
	format archive2.Format,
) error {
	slog.Info("Building archive",
		slog.String("path", archivePath),
		slog.String("format", format.String()))

	return archive2.Create(
		ctx,
		spec.Executable(),
		inputs,
		archivePath,
		spec.StagingDir(),
		format,
	)
}

func removeArchive(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove old archive: %w", err)
	}

	return nil
}

func dirExists(path string) bool {
	stat, err := os.Stat(path)
	return err == nil && stat.IsDir()
}
