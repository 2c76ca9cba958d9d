// SPDX-FileCopyrightText: 2026 ba2pack contributors
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"flag"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	t.Run("resolves paths and flags", func(t *testing.T) {
		flags, err := parseArgs([]string{
			"ba2pack",
			"-archiver", "/opt/archiver",
			"-mods", "mods",
			"-game", "/games/fallout4",
			"-prefix", "MyMods",
			"-save-shortcut",
			"-cleanup",
			"-debug",
		}, io.Discard)
		require.NoError(t, err)

		assert.Equal(t, DirPath("/opt/archiver"), flags.archiverDir)
		assert.True(t, strings.HasSuffix(string(flags.modsDir), "/mods"))
		assert.Equal(t, DirPath("/games/fallout4"), flags.gameDir)
		assert.Equal(t, "MyMods", flags.prefix)
		assert.True(t, flags.saveShortcut)
		assert.True(t, flags.cleanup)
		assert.False(t, flags.interactive)
		assert.Equal(t, slog.LevelDebug, flags.logLevel())
	})

	t.Run("defaults", func(t *testing.T) {
		flags, err := parseArgs([]string{"ba2pack"}, io.Discard)
		require.NoError(t, err)

		assert.Empty(t, flags.archiverDir)
		assert.Equal(t, "Repacked", flags.prefix)
		assert.Equal(t, slog.LevelInfo, flags.logLevel())
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, err := parseArgs([]string{"ba2pack", "-frobnicate"}, io.Discard)
		require.ErrorIs(t, err, &ParseArgsError{})
	})

	t.Run("version", func(t *testing.T) {
		var output strings.Builder

		_, err := parseArgs([]string{"ba2pack", "-version"}, &output)
		require.ErrorIs(t, err, flag.ErrHelp)

		assert.Contains(t, output.String(), "ba2pack")
	})
}

func TestFlagsSpec(t *testing.T) {
	flags, err := parseArgs([]string{
		"ba2pack",
		"-archiver", "/opt/archiver",
		"-mods", "/mods",
		"-game", "/games/fallout4",
		"-cleanup",
	}, io.Discard)
	require.NoError(t, err)

	spec := flags.spec()

	assert.Equal(t, "/opt/archiver", spec.ArchiverDir)
	assert.Equal(t, "/mods", spec.ModsDir)
	assert.Equal(t, "/games/fallout4", spec.GameDir)
	assert.Equal(t, "Repacked", spec.Prefix)
	assert.True(t, spec.Cleanup)
	assert.False(t, spec.SaveShortcut)
}
