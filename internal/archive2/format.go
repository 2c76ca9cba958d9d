// SPDX-FileCopyrightText: 2026 ba2pack contributors
//
// SPDX-License-Identifier: MIT

package archive2

import "slices"

const (
	// FormatGeneral is the default format for meshes, interface files and
	// all other non-texture assets.
	FormatGeneral Format = "General"
	// FormatDDS is the texture format. The engine requires it for archives
	// holding DDS image assets.
	FormatDDS Format = "DDS"
)

// Format represents Archive2 archive formats.
type Format string

func (f *Format) isKnown() bool {
	knownFormats := []Format{
		FormatGeneral,
		FormatDDS,
	}

	return slices.Contains(knownFormats, *f)
}

// String implements [fmt.Stringer].
func (f *Format) String() string {
	if !f.isKnown() {
		return ""
	}

	return string(*f)
}

// MarshalText implements [encoding.TextMarshaler].
func (f Format) MarshalText() ([]byte, error) {
	s := f.String()
	if s == "" {
		return nil, ErrFormatInvalid
	}

	return []byte(s), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (f *Format) UnmarshalText(text []byte) error {
	format := Format(text)

	if !format.isKnown() {
		return ErrFormatInvalid
	}

	*f = format

	return nil
}
