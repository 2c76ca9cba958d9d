// SPDX-FileCopyrightText: 2026 ba2pack contributors
//
// SPDX-License-Identifier: MIT

package archive2

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"

	"golang.org/x/sync/errgroup"
)

// ExecutableName is the file name of the Archive2 binary.
const ExecutableName = "Archive2"

// probeSubstring must appear in the usage output of a genuine Archive2
// binary.
const probeSubstring = "Archive2"

// CommandSpec defines the parameters for a [Command].
type CommandSpec struct {
	// Path to the Archive2 binary.
	Executable string

	// Positional input paths, passed before any options.
	Inputs []string

	// Option arguments.
	Options []Argument
}

// Command is a single Archive2 invocation that can be run.
type Command struct {
	name string
	args []string
}

// NewCommand compiles the given [CommandSpec] into a [Command].
//
// It returns an error if the spec's arguments violate the option
// uniqueness constraint.
func NewCommand(spec CommandSpec) (*Command, error) {
	args := Arguments{}

	for _, input := range spec.Inputs {
		args.Add(PositionalArg(input))
	}

	args.Add(spec.Options...)

	built, err := args.Build()
	if err != nil {
		return nil, fmt.Errorf("build args: %w", err)
	}

	return &Command{
		name: spec.Executable,
		args: built,
	}, nil
}

// String returns a human readable representation of the command line.
func (c *Command) String() string {
	return strings.Join(append([]string{c.name}, c.args...), " ")
}

// Run runs the command and blocks until it has terminated. The
// subprocess's stdout and stderr are copied to the given writers while it
// runs.
//
// If the subprocess terminates with a non-zero exit code, the returned
// error is a [CommandError] carrying that code.
func (c *Command) Run(ctx context.Context, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, c.name, c.args...)

	outPipe, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}

	errPipe, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return &CommandError{Err: fmt.Errorf("start: %w", err)}
	}

	outputGroup := errgroup.Group{}
	outputGroup.Go(func() error {
		_, err := io.Copy(stdout, outPipe)
		return err
	})
	outputGroup.Go(func() error {
		_, err := io.Copy(stderr, errPipe)
		return err
	})

	outputErr := outputGroup.Wait()

	if err := cmd.Wait(); err != nil {
		cmdErr := &CommandError{Err: err}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			cmdErr.ExitCode = exitErr.ExitCode()
		}

		return cmdErr
	}

	return outputErr
}

// Probe runs the executable with the help flag and verifies the output
// identifies the binary as Archive2.
//
// Archive2 exits non-zero when asked for usage, so the exit code is
// ignored as long as the identifying output is present.
func Probe(ctx context.Context, executable string) error {
	cmd, err := NewCommand(CommandSpec{
		Executable: executable,
		Options:    []Argument{ArgHelp()},
	})
	if err != nil {
		return err
	}

	var output bytes.Buffer

	runErr := cmd.Run(ctx, &output, &output)

	if !strings.Contains(output.String(), probeSubstring) {
		if runErr != nil {
			return fmt.Errorf("%w: %w", ErrProbeFailed, runErr)
		}

		return ErrProbeFailed
	}

	return nil
}

// Extract extracts the given archive into destDir, overwriting existing
// files.
func Extract(ctx context.Context, executable, archive, destDir string) error {
	cmd, err := NewCommand(CommandSpec{
		Executable: executable,
		Inputs:     []string{archive},
		Options: []Argument{
			ArgExtract(destDir),
			ArgQuiet(),
		},
	})
	if err != nil {
		return err
	}

	return runLogged(ctx, cmd)
}

// Create builds a new archive at archivePath from the given input paths.
// Paths inside the archive are stored relative to root.
func Create(
	ctx context.Context,
	executable string,
	inputs []string,
	archivePath, root string,
	format Format,
) error {
	cmd, err := NewCommand(CommandSpec{
		Executable: executable,
		Inputs:     inputs,
		Options: []Argument{
			ArgCreate(archivePath),
			ArgRoot(root),
			ArgFormat(format),
			ArgQuiet(),
		},
	})
	if err != nil {
		return err
	}

	return runLogged(ctx, cmd)
}

func runLogged(ctx context.Context, cmd *Command) error {
	slog.Debug("Running Archive2", slog.String("command", cmd.String()))

	var output bytes.Buffer

	err := cmd.Run(ctx, &output, &output)
	if err != nil {
		return fmt.Errorf("%w: %s", err, lastLine(&output))
	}

	return nil
}

// lastLine returns the last non-empty output line for error context.
func lastLine(buf *bytes.Buffer) string {
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
