// SPDX-FileCopyrightText: 2026 ba2pack contributors
//
// SPDX-License-Identifier: MIT

package archive2_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ba2pack/internal/archive2"
)

func TestNewCommand(t *testing.T) {
	t.Run("builds command line", func(t *testing.T) {
		cmd, err := archive2.NewCommand(archive2.CommandSpec{
			Executable: "Archive2",
			Inputs:     []string{"meshes"},
			Options: []archive2.Argument{
				archive2.ArgCreate("out.ba2"),
			},
		})
		require.NoError(t, err)

		assert.Equal(t, "Archive2 meshes -create=out.ba2", cmd.String())
	})

	t.Run("rejects colliding options", func(t *testing.T) {
		_, err := archive2.NewCommand(archive2.CommandSpec{
			Executable: "Archive2",
			Options: []archive2.Argument{
				archive2.ArgRoot("a"),
				archive2.ArgRoot("b"),
			},
		})
		assert.ErrorIs(t, err, archive2.ErrArgumentCollision)
	})
}

func TestProbe(t *testing.T) {
	t.Run("accepts fake tool", func(t *testing.T) {
		tool := archive2.WriteFakeTool(t, t.TempDir())

		err := archive2.Probe(context.Background(), tool)
		require.NoError(t, err)
	})

	t.Run("accepts identifying tool despite non-zero exit", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "Archive2")
		script := "#!/bin/sh\necho 'Archive2 <archive, files, or folders>'\nexit 1\n"
		require.NoError(t, os.WriteFile(path, []byte(script), 0o755))

		err := archive2.Probe(context.Background(), path)
		require.NoError(t, err)
	})

	t.Run("rejects foreign binary", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "Archive2")
		script := "#!/bin/sh\necho some other tool\n"
		require.NoError(t, os.WriteFile(path, []byte(script), 0o755))

		err := archive2.Probe(context.Background(), path)
		require.ErrorIs(t, err, archive2.ErrProbeFailed)
	})

	t.Run("rejects missing binary", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "Archive2")

		err := archive2.Probe(context.Background(), path)
		require.ErrorIs(t, err, archive2.ErrProbeFailed)
	})
}

func TestExtract(t *testing.T) {
	dir := t.TempDir()
	tool := archive2.WriteFakeTool(t, dir)

	archivePath := filepath.Join(dir, "ModA.ba2")
	archive2.WriteFakeArchive(t, archivePath, map[string]string{
		"meshes/moda.nif":  "mesh from A",
		"sound/fx/hit.xwm": "sound from A",
	})

	destDir := filepath.Join(dir, "staging")

	err := archive2.Extract(context.Background(), tool, archivePath, destDir)
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(destDir, "meshes", "moda.nif"))
	require.NoError(t, err)
	assert.Equal(t, "mesh from A", string(content))

	content, err = os.ReadFile(filepath.Join(destDir, "sound", "fx", "hit.xwm"))
	require.NoError(t, err)
	assert.Equal(t, "sound from A", string(content))
}

func TestCreate(t *testing.T) {
	dir := t.TempDir()
	tool := archive2.WriteFakeTool(t, dir)

	root := filepath.Join(dir, "staging")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "meshes"), 0o755))
	file := filepath.Join(root, "meshes", "a.nif")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	archivePath := filepath.Join(dir, "Test - Main.ba2")

	err := archive2.Create(
		context.Background(),
		tool,
		[]string{filepath.Join(root, "meshes")},
		archivePath,
		root,
		archive2.FormatGeneral,
	)
	require.NoError(t, err)

	manifest, err := os.ReadFile(archivePath)
	require.NoError(t, err)
	assert.Equal(t, "format=General\nmeshes/a.nif\n", string(manifest))
}

func TestCommandRunExitCode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Archive2")
	script := "#!/bin/sh\necho broken >&2\nexit 3\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))

	cmd, err := archive2.NewCommand(archive2.CommandSpec{
		Executable: path,
		Inputs:     []string{"whatever"},
	})
	require.NoError(t, err)

	err = cmd.Run(context.Background(), os.Stdout, os.Stderr)
	require.ErrorIs(t, err, &archive2.CommandError{})

	var cmdErr *archive2.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, 3, cmdErr.ExitCode)
}
