// SPDX-FileCopyrightText: 2026 ba2pack contributors
//
// SPDX-License-Identifier: MIT

package modpack

import (
	"context"
	"fmt"
	"log/slog"
)

// Run executes the repacking pipeline for the given [Spec]: stage,
// normalize, package, and optionally clean up.
//
// The caller is expected to have validated the spec's paths and the
// archiver binary beforehand. Failures of Archive2 invocations during the
// run abort it, leaving a possibly incomplete staging directory behind
// for inspection.
func Run(ctx context.Context, spec *Spec) (Result, error) {
	err := Stage(ctx, spec)
	if err != nil {
		return Result{}, fmt.Errorf("staging: %w", err)
	}

	err = Normalize(spec)
	if err != nil {
		return Result{}, fmt.Errorf("normalize: %w", err)
	}

	result, err := Package(ctx, spec)
	if err != nil {
		return result, fmt.Errorf("package: %w", err)
	}

	if spec.Cleanup {
		Cleanup(spec)
	} else {
		slog.Info("Keeping staging dir", slog.String("path", spec.StagingDir()))
	}

	return result, nil
}
