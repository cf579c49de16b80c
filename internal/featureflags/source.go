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

package featureflags

//go:generate mockgen -source=source.go -destination=source_mock.go -package=featureflags

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/afero"

	jsonutils "github.com/dynatrace/feature-toggles/internal/json"
)

// Source loads the feature flags a Provider serves.
type Source interface {
	Load(ctx context.Context) (FlagSet, error)
}

// ErrNotAnObject is returned by FileSource if the file does not hold a JSON object at its top level.
var ErrNotAnObject = errors.New("feature flags must be a JSON object")

// FileSource reads feature flags from a JSON file mapping flag names to booleans.
type FileSource struct {
	Fs   afero.Fs
	Path string
}

var _ Source = (*FileSource)(nil)

func (s FileSource) Load(ctx context.Context) (FlagSet, error) {
	if err := ctx.Err(); err != nil {
		return FlagSet{}, err
	}

	data, err := afero.ReadFile(s.Fs, s.Path)
	if err != nil {
		return FlagSet{}, fmt.Errorf("failed to read feature flags from %q: %w", s.Path, err)
	}

	var values map[string]bool
	if err := jsonutils.Unmarshal(data, s.Path, &values); err != nil {
		return FlagSet{}, err
	}

	if values == nil {
		return FlagSet{}, fmt.Errorf("%q: %w", s.Path, ErrNotAnObject)
	}

	return FlagSet{values: values}, nil
}

// StaticSource serves a fixed set of feature flags.
type StaticSource map[string]bool

var _ Source = (StaticSource)(nil)

func (s StaticSource) Load(ctx context.Context) (FlagSet, error) {
	if err := ctx.Err(); err != nil {
		return FlagSet{}, err
	}
	return NewFlagSet(s), nil
}
