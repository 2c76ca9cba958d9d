// SPDX-FileCopyrightText: 2026 ba2pack contributors
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDirPath is returned for empty directory path values.
	ErrEmptyDirPath = errors.New("directory path must not be empty")

	// ErrNotADirectory is returned if a path does not resolve to a
	// directory.
	ErrNotADirectory = errors.New("not a directory")

	// ErrNotExecutable is returned if the archiver binary exists but
	// cannot be executed.
	ErrNotExecutable = errors.New("not executable")
)

// ParseArgsError wraps errors that occur during argument parsing.
type ParseArgsError struct {
	err error
	msg string
}

func (e *ParseArgsError) Error() string {
	if e.err == nil {
		return e.msg
	}

	return fmt.Sprintf("%s: %v", e.msg, e.err)
}

func (e *ParseArgsError) Is(other error) bool {
	_, ok := other.(*ParseArgsError)
	return ok
}

func (e *ParseArgsError) Unwrap() error {
	return e.err
}

// ValidationError marks a failed input validation. It names the input
// that failed so the diagnostic points at the offending path.
type ValidationError struct {
	What string
	Err  error
}

func (e *ValidationError) Error() string {
	return e.What + ": " + e.Err.Error()
}

func (e *ValidationError) Is(other error) bool {
	_, ok := other.(*ValidationError)
	return ok
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
