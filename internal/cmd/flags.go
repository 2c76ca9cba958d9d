// SPDX-FileCopyrightText: 2026 ba2pack contributors
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime/debug"

	"ba2pack/internal/modpack"
)

// Set on build.
var version = "dev"

type flags struct {
	name string

	archiverDir DirPath
	modsDir     DirPath
	gameDir     DirPath
	prefix      string

	saveShortcut bool
	cleanup      bool
	interactive  bool

	debugFlag   bool
	versionFlag bool

	flagSet *flag.FlagSet
}

func newFlags(name string, output io.Writer) *flags {
	flags := &flags{
		name:   name,
		prefix: modpack.DefaultPrefix,
	}

	flags.initFlagset(output)

	return flags
}

func (f *flags) initFlagset(output io.Writer) {
	fs := flag.NewFlagSet(f.name+" [flags...]", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.TextVar(
		&f.archiverDir,
		"archiver",
		&f.archiverDir,
		"directory holding the Archive2 executable",
	)

	fs.TextVar(
		&f.modsDir,
		"mods",
		&f.modsDir,
		"directory holding the mods to repack",
	)

	fs.TextVar(
		&f.gameDir,
		"game",
		&f.gameDir,
		"game install directory",
	)

	fs.StringVar(
		&f.prefix,
		"prefix",
		f.prefix,
		"base name of the built archives",
	)

	fs.BoolVar(
		&f.saveShortcut,
		"save-shortcut",
		f.saveShortcut,
		"write a launcher script with the resolved paths into the mods"+
			" directory",
	)

	fs.BoolVar(
		&f.cleanup,
		"cleanup",
		f.cleanup,
		"remove the staging directory after packing",
	)

	fs.BoolVar(
		&f.interactive,
		"interactive",
		f.interactive,
		"ask for all directories with folder pickers, even if flags are"+
			" given",
	)

	fs.BoolVar(
		&f.debugFlag,
		"debug",
		f.debugFlag,
		"enable debug output",
	)

	fs.BoolVar(
		&f.versionFlag,
		"version",
		f.versionFlag,
		"show version and exit",
	)

	f.flagSet = fs
}

func (f *flags) logLevel() slog.Level {
	if f.debugFlag {
		return slog.LevelDebug
	}

	return slog.LevelInfo
}

func (f *flags) printVersionInformation() {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	fmt.Fprintf(f.flagSet.Output(), "%s: %s\n\n", f.name, version)
	fmt.Fprintln(f.flagSet.Output(), buildInfo.String())
}

func (f *flags) parseArgs(args []string) error {
	if err := f.flagSet.Parse(args); err != nil {
		return &ParseArgsError{msg: "flag parse", err: err}
	}

	// With version flag, just print the version and exit. Using
	// [flag.ErrHelp] the main binary is supposed to return with a non
	// error exit code.
	if f.versionFlag {
		f.printVersionInformation()
		return &ParseArgsError{msg: "version requested", err: flag.ErrHelp}
	}

	return nil
}

// spec compiles the parsed flags into a [modpack.Spec]. All paths must
// have been resolved already.
func (f *flags) spec() *modpack.Spec {
	return &modpack.Spec{
		ArchiverDir:  string(f.archiverDir),
		ModsDir:      string(f.modsDir),
		GameDir:      string(f.gameDir),
		Prefix:       f.prefix,
		SaveShortcut: f.saveShortcut,
		Cleanup:      f.cleanup,
	}
}

func parseArgs(args []string, output io.Writer) (*flags, error) {
	flags := newFlags(filepath.Base(args[0]), output)

	err := flags.parseArgs(args[1:])
	if err != nil {
		return nil, err
	}

	return flags, nil
}
