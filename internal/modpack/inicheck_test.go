// SPDX-FileCopyrightText: 2026 ba2pack contributors
//
// SPDX-License-Identifier: MIT

package modpack_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ba2pack/internal/modpack"
)

const completeConfig = `[Display]
iLocation X=0

[Archive]
bInvalidateOlderFiles=1
sResourceDataDirsFinal=
`

func TestCheckConfig(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		missing  bool
		expected []string
	}{
		{
			name:    "complete",
			content: completeConfig,
		},
		{
			name:    "missing file",
			missing: true,
			expected: []string{
				"[Archive]",
				"bInvalidateOlderFiles=1",
				"sResourceDataDirsFinal=",
			},
		},
		{
			name:    "partial",
			content: "[Archive]\nsResourceDataDirsFinal=\n",
			expected: []string{
				"bInvalidateOlderFiles=1",
			},
		},
		{
			name:    "empty",
			content: "",
			expected: []string{
				"[Archive]",
				"bInvalidateOlderFiles=1",
				"sResourceDataDirsFinal=",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := newTestSpec(t)

			if !tt.missing {
				writeFile(t, spec.ConfigFile(), tt.content)
			}

			missing, err := modpack.CheckConfig(spec)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, missing)
		})
	}
}

func TestAdviseConfig(t *testing.T) {
	t.Run("complete config", func(t *testing.T) {
		spec := newTestSpec(t)
		writeFile(t, spec.ConfigFile(), completeConfig)

		var out strings.Builder

		ok, err := modpack.AdviseConfig(spec, &out)
		require.NoError(t, err)

		assert.True(t, ok)
		assert.Empty(t, out.String())
	})

	t.Run("missing settings", func(t *testing.T) {
		spec := newTestSpec(t)

		var out strings.Builder

		ok, err := modpack.AdviseConfig(spec, &out)
		require.NoError(t, err)

		assert.False(t, ok)
		assert.Contains(t, out.String(), spec.ConfigFile())
		assert.Contains(t, out.String(), "bInvalidateOlderFiles=1")

		// Advisory output must not create or modify the config file.
		assert.NoFileExists(t, spec.ConfigFile())
	})
}

func TestConfigFile(t *testing.T) {
	spec := &modpack.Spec{GameDir: "/games/fallout4"}

	assert.Equal(t,
		filepath.Join("/games/fallout4", "Fallout4Custom.ini"),
		spec.ConfigFile())
}
