/*
 * @license
 * Copyright 2025 Dynatrace LLC
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package validate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/afero"

	"github.com/dynatrace/feature-toggles/internal/errutils"
	"github.com/dynatrace/feature-toggles/internal/files"
	"github.com/dynatrace/feature-toggles/internal/log"
	"github.com/dynatrace/feature-toggles/internal/multierror"
	"github.com/dynatrace/feature-toggles/pkg/validation"
)

// ErrValidationFailed is returned if the feature flag file is invalid. The details have already been printed.
var ErrValidationFailed = errors.New("feature flag validation failed")

func validateFile(fs afero.Fs, path string, out, errOut io.Writer) error {
	res, err := validation.Validate(fs, path)

	if len(res.Warnings) > 0 {
		fmt.Fprintln(errOut, "Feature flag warnings:")
		errutils.WriteList(errOut, res.Warnings)
	}

	if err != nil {
		fmt.Fprintln(errOut, "Feature flag validation failed:")
		errutils.WriteList(errOut, multierror.Flatten(err))
		return ErrValidationFailed
	}

	fmt.Fprintf(out, "Feature flags validation passed (%d flags validated)\n", res.Count())
	fmt.Fprintln(out, "Current feature flags:")
	for pair := res.Flags.Oldest(); pair != nil; pair = pair.Next() {
		fmt.Fprintf(out, "  - %s: %s\n", pair.Key, onOff(pair.Value))
	}
	return nil
}

// watchFile validates path and validates it again on every change until ctx is done. Validation failures are
// reported but do not stop watching.
func watchFile(ctx context.Context, fs afero.Fs, path string, out, errOut io.Writer) error {
	changes, err := files.Watch(ctx, path, files.DefaultDebounce)
	if err != nil {
		return err
	}

	_ = validateFile(fs, path, out, errOut)
	log.Info("Watching %q for changes. Press Ctrl+C to stop.", path)

	for range changes {
		fmt.Fprintf(out, "\n[%s] %s changed\n", time.Now().Format(time.TimeOnly), path)
		_ = validateFile(fs, path, out, errOut)
	}
	return nil
}

func onOff(enabled bool) string {
	if enabled {
		return "ON"
	}
	return "OFF"
}
