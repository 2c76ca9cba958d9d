// SPDX-FileCopyrightText: 2026 ba2pack contributors
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
)

// DirPath is a directory path flag value that resolves to an absolute
// path when set.
type DirPath string

// MarshalText implements [encoding.TextMarshaler].
func (d DirPath) MarshalText() ([]byte, error) {
	return []byte(d), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (d *DirPath) UnmarshalText(text []byte) error {
	var err error
	*d, err = AbsoluteDirPath(string(text))

	return err
}

// Check returns an error if the path does not resolve to an existing
// directory.
func (d DirPath) Check() error {
	stat, err := os.Stat(string(d))
	if err != nil {
		return err //nolint:wrapcheck
	}

	if !stat.IsDir() {
		return ErrNotADirectory
	}

	return nil
}

// AbsoluteDirPath resolves the given path to an absolute one.
func AbsoluteDirPath(path string) (DirPath, error) {
	if path == "" {
		return "", ErrEmptyDirPath
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("ensure absolute path: %w", err)
	}

	return DirPath(abs), nil
}
