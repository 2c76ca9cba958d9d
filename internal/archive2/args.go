// SPDX-FileCopyrightText: 2026 ba2pack contributors
//
// SPDX-License-Identifier: MIT

package archive2

import (
	"fmt"
	"slices"
)

// Known Archive2 options.
var (
	// Path of the archive to create.
	ArgCreate = func(path string) Argument { return OptionArg("create", path) }
	// Directory to extract an archive into.
	ArgExtract = func(path string) Argument { return OptionArg("extract", path) }
	// Root directory relative paths in the archive are resolved against.
	ArgRoot = func(path string) Argument { return OptionArg("root", path) }
	// Archive format, see [Format].
	ArgFormat = func(f Format) Argument { return OptionArg("format", f.String()) }
	// Suppress the tool's interactive prompts.
	ArgQuiet = func() Argument { return OptionArg("q", "") }
	// Print usage. Used as identity probe.
	ArgHelp = func() Argument { return OptionArg("?", "") }
)

// Arguments is a list of [Argument]s.
//
// Once all [Argument]s are added, call [Arguments.Build] to compile the
// complete Archive2 arguments string slice.
type Arguments []Argument

// Add adds the given [Argument]s to the list.
func (a *Arguments) Add(e ...Argument) {
	*a = append(*a, e...)
}

// Build compiles the [Argument]s into a slice of strings which can be used
// with [exec.Command].
//
// It returns an error if the uniqueness constraint of any [Argument] is
// violated.
func (a Arguments) Build() ([]string, error) {
	s := make([]string, 0, len(a))

	for idx, e := range a {
		if slices.ContainsFunc(a[idx+1:], e.Equal) {
			return nil, fmt.Errorf("%w: %s", ErrArgumentCollision, e.String())
		}

		s = append(s, e.String())
	}

	return s, nil
}
