// SPDX-FileCopyrightText: 2026 ba2pack contributors
//
// SPDX-License-Identifier: MIT

package archive2

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

// fakeToolScript emulates the Archive2 command line contract for tests.
//
// Fake archives are plain text files with one "relpath=content" line per
// entry. Extract mode materializes those entries below the target
// directory. Create mode writes a manifest with the format and the file
// list of all inputs, relative to the root directory, so tests can assert
// what went into an archive.
const fakeToolScript = `#!/bin/sh
set -e

extract=""
create=""
root=""
format=""
inputs=""

for arg in "$@"; do
	case "$arg" in
		-\?)
			echo "Archive2 1.1.0.4 - asset archive tool"
			echo "usage: Archive2 [input ...] [options]"
			exit 0
			;;
		-extract=*) extract="${arg#-extract=}" ;;
		-create=*) create="${arg#-create=}" ;;
		-root=*) root="${arg#-root=}" ;;
		-format=*) format="${arg#-format=}" ;;
		-q) ;;
		-*)
			echo "Archive2: unknown option: $arg" >&2
			exit 2
			;;
		*) inputs="$inputs $arg" ;;
	esac
done

if [ -n "$extract" ]; then
	for archive in $inputs; do
		while IFS='=' read -r path content; do
			[ -z "$path" ] && continue
			mkdir -p "$extract/$(dirname "$path")"
			printf '%s' "$content" > "$extract/$path"
		done < "$archive"
	done
	exit 0
fi

if [ -n "$create" ]; then
	{
		echo "format=$format"
		for input in $inputs; do
			find "$input" -type f | sort | while read -r f; do
				echo "${f#$root/}"
			done
		done
	} > "$create"
	exit 0
fi

echo "Archive2: no mode given" >&2
exit 2
`

// WriteFakeTool writes a shell script standing in for the Archive2 binary
// and returns its path.
func WriteFakeTool(tb testing.TB, dir string) string {
	tb.Helper()

	path := filepath.Join(dir, "Archive2")

	err := os.WriteFile(path, []byte(fakeToolScript), 0o755)
	if err != nil {
		tb.Fatalf("failed to write fake tool: %v", err)
	}

	return path
}

// WriteFakeArchive writes a fake archive file understood by the fake tool.
func WriteFakeArchive(tb testing.TB, path string, entries map[string]string) {
	tb.Helper()

	paths := make([]string, 0, len(entries))
	for p := range entries {
		paths = append(paths, p)
	}

	sort.Strings(paths)

	var buf strings.Builder
	for _, p := range paths {
		fmt.Fprintf(&buf, "%s=%s\n", p, entries[p])
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		tb.Fatalf("failed to create fake archive dir: %v", err)
	}

	err := os.WriteFile(path, []byte(buf.String()), 0o644)
	if err != nil {
		tb.Fatalf("failed to write fake archive: %v", err)
	}
}
