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

package json

import (
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/dynatrace/feature-toggles/internal/log"
)

// GenerateJSONSchemaString reflects the JSON schema of value's type and returns it indented.
// Properties are only required if tagged with `jsonschema:"required"`, and nested types are inlined.
func GenerateJSONSchemaString(value any) ([]byte, error) {
	log.Debug("Generating JSON schema for %T", value)

	b, err := ReflectJSONSchema(value).MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON schema of %T: %w", value, err)
	}
	return MarshalIndent(b), nil
}

func ReflectJSONSchema(value any) *jsonschema.Schema {
	r := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}
	return r.Reflect(value)
}
