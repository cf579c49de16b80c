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

package flags

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOverrides(t *testing.T) {
	got, err := parseOverrides([]string{"newDashboard=false", " betaUser = TRUE ", "x=1", "newDashboard=true"})

	require.NoError(t, err)
	assert.Equal(t, []override{
		{name: "newDashboard", value: false},
		{name: "betaUser", value: true},
		{name: "x", value: true},
		{name: "newDashboard", value: true},
	}, got)
}

func TestParseOverrides_Errors(t *testing.T) {
	_, err := parseOverrides([]string{"noValue", "=true", "a=yes", "ok=true"})

	assert.ErrorContains(t, err, `invalid override "noValue"`)
	assert.ErrorContains(t, err, `invalid override "=true"`)
	assert.ErrorContains(t, err, `invalid override "a=yes"`)
	assert.NotContains(t, err.Error(), "ok=true")
}

func TestParseOverrides_None(t *testing.T) {
	got, err := parseOverrides(nil)

	assert.NoError(t, err)
	assert.Empty(t, got)
}
