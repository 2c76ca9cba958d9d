// SPDX-FileCopyrightText: 2026 ba2pack contributors
//
// SPDX-License-Identifier: MIT

package modpack

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/fatih/color"
)

// ConfigFileName is the engine config file that must register loose file
// loading for the repacked content to be picked up.
const ConfigFileName = "Fallout4Custom.ini"

// requiredConfigSettings are scanned for as plain substrings, matching
// how the engine tolerates the surrounding file content.
var requiredConfigSettings = []string{
	"[Archive]",
	"bInvalidateOlderFiles=1",
	"sResourceDataDirsFinal=",
}

// ConfigBlock is the block to add to the config file if any required
// setting is missing.
const ConfigBlock = `[Archive]
bInvalidateOlderFiles=1
sResourceDataDirsFinal=
`

// ConfigFile returns the path of the engine config file for this spec.
func (s *Spec) ConfigFile() string {
	return filepath.Join(s.GameDir, ConfigFileName)
}

// CheckConfig scans the config file for the required settings and returns
// the missing ones. A missing file is not an error; all settings are
// reported missing then.
func CheckConfig(spec *Spec) ([]string, error) {
	content, err := os.ReadFile(spec.ConfigFile())
	if err != nil {
		if os.IsNotExist(err) {
			return requiredConfigSettings, nil
		}

		return nil, fmt.Errorf("read config: %w", err)
	}

	var missing []string

	for _, setting := range requiredConfigSettings {
		if !strings.Contains(string(content), setting) {
			missing = append(missing, setting)
		}
	}

	return missing, nil
}

// AdviseConfig checks the config file and, if any required setting is
// missing, prints the block to add and copies it to the clipboard. It
// returns true if the config is complete.
//
// Clipboard failures are only logged; on a headless system there is
// nothing to copy to.
func AdviseConfig(spec *Spec, stdout io.Writer) (bool, error) {
	missing, err := CheckConfig(spec)
	if err != nil {
		return false, err
	}

	if len(missing) == 0 {
		slog.Info("Config file has all required settings",
			slog.String("path", spec.ConfigFile()))

		return true, nil
	}

	slog.Warn("Config file is missing required settings",
		slog.String("path", spec.ConfigFile()),
		slog.Any("missing", missing))

	fmt.Fprintf(stdout, "Add the following block to %s:\n\n", spec.ConfigFile())
	color.New(color.FgYellow).Fprint(stdout, ConfigBlock)
	fmt.Fprintln(stdout)

	err = clipboard.WriteAll(ConfigBlock)
	if err != nil {
		slog.Warn("Failed to copy block to clipboard", slog.Any("error", err))
	} else {
		fmt.Fprintln(stdout, "The block has been copied to the clipboard.")
	}

	return false, nil
}

// OpenConfig opens the config file in the system's default editor. The
// file is created first if it does not exist, so the editor does not
// start on a phantom path.
func OpenConfig(ctx context.Context, spec *Spec) error {
	path := spec.ConfigFile()

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("ensure config file: %w", err)
	}

	_ = file.Close()

	err = exec.CommandContext(ctx, "xdg-open", path).Run()
	if err != nil {
		return fmt.Errorf("open editor: %w", err)
	}

	return nil
}
