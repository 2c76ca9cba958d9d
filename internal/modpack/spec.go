// SPDX-FileCopyrightText: 2026 ba2pack contributors
//
// SPDX-License-Identifier: MIT

package modpack

import (
	"path/filepath"

	"ba2pack/internal/archive2"
)

const (
	// ArchiveExt is the file extension of archives handled by Archive2,
	// matched case-insensitively.
	ArchiveExt = ".ba2"

	// StagingDirName is the scratch directory created below the mods
	// directory. The leading dot keeps the traversal from picking it up
	// if a previous run left it behind.
	StagingDirName = ".staging"

	// DataDirName is the resource directory below the game install the
	// engine loads archives and loose files from.
	DataDirName = "Data"

	// DefaultPrefix is the default base name of the built archives.
	DefaultPrefix = "Repacked"

	stringsDirName  = "strings"
	texturesDirName = "textures"
)

// Spec describes a single repack run. All paths are absolute.
type Spec struct {
	// ArchiverDir is the directory holding the Archive2 executable.
	ArchiverDir string

	// ModsDir is the directory holding the user's mods.
	ModsDir string

	// GameDir is the game install directory.
	GameDir string

	// Prefix is the base name of the built archives. The engine only
	// loads archives registered in its config, so the prefix should match
	// an entry there.
	Prefix string

	// SaveShortcut writes a launcher script with the resolved paths into
	// the mods directory.
	SaveShortcut bool

	// Cleanup removes the staging directory after packing.
	Cleanup bool
}

// Executable returns the expected path of the Archive2 binary.
func (s *Spec) Executable() string {
	return filepath.Join(s.ArchiverDir, archive2.ExecutableName)
}

// StagingDir returns the path of the scratch directory owned by this run.
func (s *Spec) StagingDir() string {
	return filepath.Join(s.ModsDir, StagingDirName)
}

// DataDir returns the game's resource directory.
func (s *Spec) DataDir() string {
	return filepath.Join(s.GameDir, DataDirName)
}

// GeneralArchive returns the destination path of the general archive.
func (s *Spec) GeneralArchive() string {
	return filepath.Join(s.DataDir(), s.Prefix+" - Main"+ArchiveExt)
}

// TextureArchive returns the destination path of the texture archive.
func (s *Spec) TextureArchive() string {
	return filepath.Join(s.DataDir(), s.Prefix+" - Textures"+ArchiveExt)
}
