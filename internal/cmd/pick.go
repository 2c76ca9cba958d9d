// SPDX-FileCopyrightText: 2026 ba2pack contributors
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/ncruces/zenity"
)

// resolvePaths fills directory flags with native folder pickers. A picker
// is shown for each path still unset after flag parsing, or for all of
// them in interactive mode. Cancelling a picker is a validation failure.
func (f *flags) resolvePaths(ctx context.Context) error {
	picks := []struct {
		target *DirPath
		what   string
		title  string
	}{
		{
			target: &f.archiverDir,
			what:   "archiver folder",
			title:  "Select the folder holding the Archive2 executable",
		},
		{
			target: &f.modsDir,
			what:   "mods folder",
			title:  "Select the mods folder",
		},
		{
			target: &f.gameDir,
			what:   "game folder",
			title:  "Select the game install folder",
		},
	}

	for _, pick := range picks {
		if *pick.target != "" && !f.interactive {
			continue
		}

		err := pickDir(ctx, pick.target, pick.title)
		if err != nil {
			return &ValidationError{What: pick.what, Err: err}
		}
	}

	return nil
}

func pickDir(ctx context.Context, target *DirPath, title string) error {
	opts := []zenity.Option{
		zenity.Directory(),
		zenity.Title(title),
		zenity.Context(ctx),
	}

	if *target != "" {
		opts = append(opts, zenity.Filename(string(*target)))
	}

	dir, err := zenity.SelectFile(opts...)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			err = errors.New("cancelled")
		}

		return fmt.Errorf("folder picker: %w", err)
	}

	return target.UnmarshalText([]byte(dir))
}

// askOpenConfig asks whether the config file should be opened in an
// editor. Only used in interactive mode.
func askOpenConfig(path string) bool {
	err := zenity.Question(
		"Open "+path+" in your editor now?",
		zenity.Title("Missing config settings"),
		zenity.OKLabel("Open"),
		zenity.CancelLabel("Later"),
	)

	return err == nil
}
