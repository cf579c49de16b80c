//go:build unit

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

package json_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jsonutils "github.com/dynatrace/feature-toggles/internal/json"
)

func TestUnmarshal_Valid(t *testing.T) {
	var v map[string]bool
	err := jsonutils.Unmarshal([]byte(`{"newDashboard": true}`), "flags.json", &v)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"newDashboard": true}, v)
}

const syntaxErrorMisplacedContent = `{
	"key": true,
	sneakySyntaxError
}`

func TestUnmarshal_SyntaxErrorHasLineInformation(t *testing.T) {
	var v any
	err := jsonutils.Unmarshal([]byte(syntaxErrorMisplacedContent), "flags.json", &v)

	var jsonErr jsonutils.ValidationError
	require.ErrorAs(t, err, &jsonErr)
	assert.Equal(t, "flags.json", jsonErr.FilePath)
	assert.Equal(t, 3, jsonErr.LineNumber)
	assert.Equal(t, 2, jsonErr.CharacterNumberInLine)
	assert.Equal(t, "\tsneakySyntaxError", jsonErr.LineContent)
	assert.Equal(t, "\t\"key\": true,", jsonErr.PreviousLineContent)
	assert.True(t, jsonErr.ContainsLineInformation())

	var syntaxErr *json.SyntaxError
	assert.True(t, errors.As(err, &syntaxErr), "cause must stay accessible")

	assert.Contains(t, jsonErr.PrettyError(), "--> flags.json:3:2")
	assert.Contains(t, jsonErr.PrettyError(), "3 |  sneakySyntaxError")
}

func TestUnmarshal_TypeErrorHasLineInformation(t *testing.T) {
	var v map[string]bool
	err := jsonutils.Unmarshal([]byte("{\n\"a\": true,\n\"b\": \"yes\"\n}"), "flags.json", &v)

	var jsonErr jsonutils.ValidationError
	require.ErrorAs(t, err, &jsonErr)
	assert.Equal(t, 3, jsonErr.LineNumber)
}

func TestUnmarshal_EmptyInput(t *testing.T) {
	var v any
	err := jsonutils.Unmarshal([]byte(""), "flags.json", &v)

	var jsonErr jsonutils.ValidationError
	require.ErrorAs(t, err, &jsonErr)
	assert.False(t, jsonErr.ContainsLineInformation())
	assert.Equal(t, jsonErr.Error(), jsonErr.PrettyError())
}

func TestGenerateJSONSchemaString(t *testing.T) {
	type sample struct {
		Name string `json:"name" jsonschema:"required"`
	}

	b, err := jsonutils.GenerateJSONSchemaString(sample{})
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(b, &schema))
	assert.Equal(t, []any{"name"}, schema["required"])
}
