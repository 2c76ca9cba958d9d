// SPDX-FileCopyrightText: 2026 ba2pack contributors
//
// SPDX-License-Identifier: MIT

// ba2pack aggregates loose mod folders and pre-built .ba2 archives from a
// mods directory into two consolidated archives the Fallout 4 resource
// loader picks up, and copies string tables loose into the game's Data
// directory. It requires the Archive2 tool shipped with the Creation Kit.
//
// A run is a single sequential pipeline: validate the archiver, mods and
// game directories, stage every enabled mod into a scratch directory,
// normalize folder casing, then build "<prefix> - Main.ba2" and
// "<prefix> - Textures.ba2" in the game's Data directory. Entries whose
// name starts with "." or "_" are skipped, so mods can be disabled by
// prefixing them with an underscore.
//
// Run it with all paths given:
//
//	$ ba2pack -archiver ~/Fallout4/Tools/Archive2 \
//	    -mods ~/mods \
//	    -game ~/Fallout4 \
//	    -cleanup
//
// Any path left out is asked for with a native folder picker. Pass
// -save-shortcut to write a launcher script with the resolved paths into
// the mods directory for the next run.
package main
