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

package validation

import (
	"errors"
	"fmt"

	jsonutils "github.com/dynatrace/feature-toggles/internal/json"
)

// ErrFileNotFound is returned if the feature flag file does not exist.
var ErrFileNotFound = errors.New("feature flags file not found")

// InvalidJSONError is returned if the feature flag file is no valid JSON document.
// It embeds the location of the syntax error and pretty-prints it.
type InvalidJSONError struct {
	jsonutils.ValidationError
}

// NotAnObjectError is returned if the top-level JSON value is not an object.
type NotAnObjectError struct {
	// Type is the JSON type that was found instead
	Type string `json:"type"`
}

func (e NotAnObjectError) Error() string {
	return fmt.Sprintf("feature flags must be an object, got %s", e.Type)
}

// InvalidValueTypeError is returned for every flag whose value is not a boolean.
type InvalidValueTypeError struct {
	// Key is the name of the offending flag
	Key string `json:"key"`
	// Type is the JSON type of its value
	Type string `json:"type"`
}

func (e InvalidValueTypeError) Error() string {
	return fmt.Sprintf("feature flag %q must have a boolean value, got %s", e.Key, e.Type)
}

// NamingConventionWarning is reported for flag names that are neither camelCase nor kebab-case.
// It never fails a validation.
type NamingConventionWarning struct {
	Key string `json:"key"`
}

func (w NamingConventionWarning) Error() string {
	return fmt.Sprintf("feature flag key %q should follow camelCase or kebab-case convention", w.Key)
}
