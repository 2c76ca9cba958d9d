// SPDX-FileCopyrightText: 2026 ba2pack contributors
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"ba2pack/internal/modpack"
)

// IO provides input and output details for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func run(ctx context.Context, flags *flags, cfg IO) error {
	err := flags.resolvePaths(ctx)
	if err != nil {
		return err
	}

	spec := flags.spec()

	err = Validate(ctx, spec)
	if err != nil {
		return err
	}

	result, err := modpack.Run(ctx, spec)
	if err != nil {
		return fmt.Errorf("repack: %w", err)
	}

	slog.Info("Packing finished",
		slog.Bool("strings", result.StringsCopied),
		slog.Bool("textures", result.TexturesPacked),
		slog.Bool("general", result.GeneralPacked))

	if spec.SaveShortcut {
		err := saveShortcut(spec)
		if err != nil {
			return err
		}
	}

	adviseConfig(ctx, spec, flags.interactive, cfg.Stdout)

	return nil
}

func saveShortcut(spec *modpack.Spec) error {
	executable, err := os.Executable()
	if err != nil {
		return fmt.Errorf("own executable path: %w", err)
	}

	path, err := modpack.WriteShortcut(spec, executable)
	if err != nil {
		return fmt.Errorf("save shortcut: %w", err)
	}

	slog.Info("Saved shortcut", slog.String("path", path))

	return nil
}

// adviseConfig inspects the game config and emits the missing settings
// block. Advisory only, so failures never fail the run.
func adviseConfig(
	ctx context.Context,
	spec *modpack.Spec,
	interactive bool,
	stdout io.Writer,
) {
	ok, err := modpack.AdviseConfig(spec, stdout)
	if err != nil {
		slog.Warn("Failed to check config file", slog.Any("error", err))
		return
	}

	if ok || !interactive {
		return
	}

	if !askOpenConfig(spec.ConfigFile()) {
		return
	}

	err = modpack.OpenConfig(ctx, spec)
	if err != nil {
		slog.Warn("Failed to open config file", slog.Any("error", err))
	}
}

func handleParseArgsError(err error) int {
	// [flag.ErrHelp] is returned when help or version output is
	// requested. So exit without error in this case.
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}

	// ParseArgs already prints errors, so we just exit without an error.
	if !errors.Is(err, &ParseArgsError{}) {
		slog.Error(err.Error())
	}

	return -1
}

func handleRunError(err error) int {
	if err == nil {
		return 0
	}

	slog.Error(err.Error())

	// Path and archiver validation failures have a defined exit code.
	if errors.Is(err, &ValidationError{}) {
		return 1
	}

	return -1
}

// Run is the main entry point for the CLI command.
func Run(ctx context.Context, args []string, cfg IO) int {
	setupLogging(cfg.Stderr, slog.LevelInfo)

	flags, err := parseArgs(args, cfg.Stderr)
	if err != nil {
		return handleParseArgsError(err)
	}

	setupLogging(cfg.Stderr, flags.logLevel())

	err = run(ctx, flags, cfg)

	return handleRunError(err)
}
