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

package files_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dynatrace/feature-toggles/internal/files"
)

func TestDoesFileExist(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "flags/featureFlags.json", []byte("{}"), 0644))

	exists, err := files.DoesFileExist(fs, "flags/featureFlags.json")
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = files.DoesFileExist(fs, "flags")
	assert.NoError(t, err)
	assert.False(t, exists, "directories are no files")

	exists, err = files.DoesFileExist(fs, "missing.json")
	assert.NoError(t, err)
	assert.False(t, exists)
}
