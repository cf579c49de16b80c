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

package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvValueInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"empty", "", 0},
		{"not an int", "NOT_AN_INT", 0},
		{"negative", "-3", 0},
		{"valid", "4", 4},
		{"surrounding whitespace", " 2 ", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(PRCheckParallelEnvKey, tt.value)

			assert.Equal(t, tt.want, GetEnvValueInt(PRCheckParallelEnvKey))
			assert.Equal(t, tt.want, GetEnvValueIntLog(PRCheckParallelEnvKey))
		})
	}
}

func TestGetEnvValueInt_Unknown(t *testing.T) {
	t.Setenv("TEST_ENV_VAR_GET_ENV_VALUE", "11")

	assert.Equal(t, 11, GetEnvValueInt("TEST_ENV_VAR_GET_ENV_VALUE"))
	assert.Equal(t, 0, GetEnvValueInt("TEST_ENV_VAR_GET_ENV_VALUE_UNSET"))
}

func TestGetEnvValueString(t *testing.T) {
	t.Setenv(FlagsFileEnvKey, "")
	assert.Equal(t, "flags/featureFlags.json", GetEnvValueString(FlagsFileEnvKey))

	t.Setenv(FlagsFileEnvKey, "other/flags.json")
	assert.Equal(t, "other/flags.json", GetEnvValueString(FlagsFileEnvKey))

	t.Setenv("TEST_ENV_VAR_UNKNOWN_STRING", "")
	assert.Equal(t, "", GetEnvValueString("TEST_ENV_VAR_UNKNOWN_STRING"))
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "PR check parallelism", describe(PRCheckParallelEnvKey))
	assert.Equal(t, "Environment variable SOME_VAR", describe("SOME_VAR"))
}
