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

// Package validation checks that a feature flag file is well-formed: a JSON object mapping flag names to booleans.
// Flag names are expected to be camelCase or kebab-case, violations of that convention are reported as warnings only.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"github.com/spf13/afero"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/dynatrace/feature-toggles/internal/files"
	jsonutils "github.com/dynatrace/feature-toggles/internal/json"
	"github.com/dynatrace/feature-toggles/internal/log"
	"github.com/dynatrace/feature-toggles/internal/log/attribute"
	"github.com/dynatrace/feature-toggles/internal/multierror"
)

var (
	camelCase = regexp.MustCompile(`^[a-z][a-zA-Z0-9]*$`)
	kebabCase = regexp.MustCompile(`^[a-z][a-z0-9-]*[a-z0-9]$`)
)

// Result is the outcome of a validation.
type Result struct {
	// Path is the validated file
	Path string
	// Flags holds the validated flags in file order. It is nil if validation failed.
	Flags *orderedmap.OrderedMap[string, bool]
	// Warnings holds a NamingConventionWarning for every flag name violating the naming convention.
	// Warnings are collected even if validation fails.
	Warnings []error
}

// Count returns the number of validated flags.
func (r Result) Count() int {
	if r.Flags == nil {
		return 0
	}
	return r.Flags.Len()
}

// FollowsNamingConvention reports whether name is camelCase or kebab-case.
func FollowsNamingConvention(name string) bool {
	return camelCase.MatchString(name) || kebabCase.MatchString(name)
}

// Validate reads and validates the feature flag file at path. It never modifies the file.
//
// The returned error is ErrFileNotFound (wrapped), an InvalidJSONError, a NotAnObjectError, or one or more
// InvalidValueTypeErrors grouped in a multierror.MultiError.
func Validate(fs afero.Fs, path string) (Result, error) {
	exists, err := files.DoesFileExist(fs, path)
	if err != nil {
		return Result{Path: path}, fmt.Errorf("failed to access feature flags file %q: %w", path, err)
	}
	if !exists {
		return Result{Path: path}, fmt.Errorf("%w at %q", ErrFileNotFound, path)
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Result{Path: path}, fmt.Errorf("failed to read feature flags file %q: %w", path, err)
	}

	return ValidateBytes(data, path)
}

// ValidateBytes validates the content of a feature flag file. path is only used for reporting.
func ValidateBytes(data []byte, path string) (Result, error) {
	result := Result{Path: path}

	var doc any
	if err := jsonutils.Unmarshal(data, path, &doc); err != nil {
		return result, asInvalidJSON(err)
	}

	if _, ok := doc.(map[string]any); !ok {
		return result, NotAnObjectError{Type: jsonType(doc)}
	}

	raw := orderedmap.New[string, any]()
	if err := json.Unmarshal(data, raw); err != nil {
		return result, asInvalidJSON(err)
	}

	flags := orderedmap.New[string, bool]()
	var errs []error
	for pair := raw.Oldest(); pair != nil; pair = pair.Next() {
		if !FollowsNamingConvention(pair.Key) {
			result.Warnings = append(result.Warnings, NamingConventionWarning{Key: pair.Key})
		}

		v, ok := pair.Value.(bool)
		if !ok {
			errs = append(errs, InvalidValueTypeError{Key: pair.Key, Type: jsonType(pair.Value)})
			continue
		}
		flags.Set(pair.Key, v)
	}

	if len(errs) > 0 {
		return result, multierror.New(errs...)
	}

	result.Flags = flags
	log.With(attribute.File(path)).Debug("Validated %d feature flags", flags.Len())
	return result, nil
}

func asInvalidJSON(err error) error {
	var jsonErr jsonutils.ValidationError
	if errors.As(err, &jsonErr) {
		return InvalidJSONError{ValidationError: jsonErr}
	}
	return err
}

// jsonType names the JSON type of a value decoded by encoding/json.
func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64, json.Number:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
