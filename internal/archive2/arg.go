// SPDX-FileCopyrightText: 2026 ba2pack contributors
//
// SPDX-License-Identifier: MIT

package archive2

// Argument is a single Archive2 command line argument.
//
// Archive2 takes positional input paths and "-name=value" options. Option
// names must be unique in a command line. Positional arguments are
// repeatable as a kind, but passing the same input path twice is redundant
// and rejected as well.
type Argument struct {
	name       string
	value      string
	positional bool
}

// String implements [fmt.Stringer].
func (a Argument) String() string {
	if a.positional {
		return a.value
	}

	s := "-" + a.name
	if a.value != "" {
		s += "=" + a.value
	}

	return s
}

// Name returns the option name of the [Argument]. It is empty for
// positional arguments.
func (a Argument) Name() string {
	return a.name
}

// Value returns the value of the [Argument].
func (a Argument) Value() string {
	return a.value
}

// Equal compares the [Argument]s.
//
// Positional arguments are compared by value. Options are compared by name
// only, since an option may appear only once.
func (a Argument) Equal(other Argument) bool {
	if a.positional != other.positional {
		return false
	}

	if a.positional {
		return a.value == other.value
	}

	return a.name == other.name
}

// PositionalArg returns a new positional [Argument] with the given value.
func PositionalArg(value string) Argument {
	return Argument{
		value:      value,
		positional: true,
	}
}

// OptionArg returns a new option [Argument] rendered as "-name=value", or
// "-name" if value is empty. Its name must be unique in an [Arguments]
// list.
func OptionArg(name, value string) Argument {
	return Argument{
		name:  name,
		value: value,
	}
}
