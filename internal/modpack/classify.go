// SPDX-FileCopyrightText: 2026 ba2pack contributors
//
// SPDX-License-Identifier: MIT

package modpack

import (
	"path/filepath"
	"slices"
	"strings"
)

// looseCategories are the asset folder names the engine consumes loose,
// matched case-insensitively.
var looseCategories = []string{
	"effects",
	"interface",
	"meshes",
	"strings",
	"terrain",
	"textures",
}

const (
	// ClassIgnored marks entries whose name starts with "." or "_". Users
	// disable mods by prefixing them with an underscore.
	ClassIgnored Class = iota
	// ClassLooseCategory marks directories named after one of the
	// engine's asset categories.
	ClassLooseCategory
	// ClassArchive marks .ba2 files.
	ClassArchive
	// ClassSubfolder marks any other directory. It is descended into
	// exactly one level.
	ClassSubfolder
	// ClassUnrecognized marks any other file.
	ClassUnrecognized
)

// Class is the classification of a mods directory entry.
type Class int

// String implements [fmt.Stringer].
func (c Class) String() string {
	switch c {
	case ClassIgnored:
		return "ignored"
	case ClassLooseCategory:
		return "loose-category"
	case ClassArchive:
		return "archive"
	case ClassSubfolder:
		return "subfolder"
	case ClassUnrecognized:
		return "unrecognized"
	default:
		return "invalid"
	}
}

// Classify determines the [Class] of a directory entry. The prefix check
// comes first and is case-sensitive, everything else matches
// case-insensitively.
func Classify(name string, isDir bool) Class {
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
		return ClassIgnored
	}

	if isDir {
		if IsLooseCategory(name) {
			return ClassLooseCategory
		}

		return ClassSubfolder
	}

	if strings.EqualFold(filepath.Ext(name), ArchiveExt) {
		return ClassArchive
	}

	return ClassUnrecognized
}

// IsLooseCategory reports whether name is one of the engine's recognized
// asset folder names, ignoring case.
func IsLooseCategory(name string) bool {
	return slices.Contains(looseCategories, strings.ToLower(name))
}
