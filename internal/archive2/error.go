// SPDX-FileCopyrightText: 2026 ba2pack contributors
//
// SPDX-License-Identifier: MIT

package archive2

import "errors"

var (
	// ErrArgumentCollision is returned if two [Argument]s are considered
	// equal.
	ErrArgumentCollision = errors.New("colliding args")

	// ErrFormatInvalid is returned if an archive format is invalid.
	ErrFormatInvalid = errors.New("unknown archive format")

	// ErrProbeFailed is returned if the executable did not identify itself
	// as Archive2 when invoked with the help flag.
	ErrProbeFailed = errors.New("executable does not look like Archive2")
)

// CommandError wraps any error occurred during [Command] execution.
type CommandError struct {
	Err      error
	ExitCode int
}

// Error implements the [error] interface.
func (e *CommandError) Error() string {
	return "archive2: " + e.Err.Error()
}

// Is implements the [errors.Is] interface.
func (*CommandError) Is(other error) bool {
	_, ok := other.(*CommandError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *CommandError) Unwrap() error {
	return e.Err
}
