// SPDX-FileCopyrightText: 2026 ba2pack contributors
//
// SPDX-License-Identifier: MIT

package cmd_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ba2pack/internal/cmd"
)

func TestAbsoluteDirPath(t *testing.T) {
	t.Run("resolves relative path", func(t *testing.T) {
		path, err := cmd.AbsoluteDirPath("some/dir")
		require.NoError(t, err)

		assert.True(t, filepath.IsAbs(string(path)), path)
	})

	t.Run("keeps absolute path", func(t *testing.T) {
		path, err := cmd.AbsoluteDirPath("/some/dir")
		require.NoError(t, err)

		assert.Equal(t, cmd.DirPath("/some/dir"), path)
	})

	t.Run("rejects empty path", func(t *testing.T) {
		_, err := cmd.AbsoluteDirPath("")
		assert.ErrorIs(t, err, cmd.ErrEmptyDirPath)
	})
}

func TestDirPathCheck(t *testing.T) {
	t.Run("directory", func(t *testing.T) {
		assert.NoError(t, cmd.DirPath(t.TempDir()).Check())
	})

	t.Run("missing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing")
		assert.Error(t, cmd.DirPath(path).Check())
	})

	t.Run("regular file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "file")
		require.NoError(t, writeEmptyFile(path))

		assert.ErrorIs(t, cmd.DirPath(path).Check(), cmd.ErrNotADirectory)
	})
}
