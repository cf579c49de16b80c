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

package featureflags_test

import (
	"context"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dynatrace/feature-toggles/internal/featureflags"
	jsonutils "github.com/dynatrace/feature-toggles/internal/json"
)

func TestFileSource_Load(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		want      map[string]bool
		assertErr func(t *testing.T, err error)
	}{
		{
			name:    "valid flags",
			content: `{ "newDashboard": true, "betaUser": false, "enableNotifications": false }`,
			want:    map[string]bool{"newDashboard": true, "betaUser": false, "enableNotifications": false},
		},
		{
			name:    "empty object",
			content: `{}`,
			want:    map[string]bool{},
		},
		{
			name:    "malformed json",
			content: `{ "newDashboard": true,, }`,
			assertErr: func(t *testing.T, err error) {
				var jsonErr jsonutils.ValidationError
				assert.ErrorAs(t, err, &jsonErr)
			},
		},
		{
			name:    "non boolean value",
			content: `{ "newDashboard": "yes" }`,
			assertErr: func(t *testing.T, err error) {
				var jsonErr jsonutils.ValidationError
				assert.ErrorAs(t, err, &jsonErr)
			},
		},
		{
			name:    "null",
			content: `null`,
			assertErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, featureflags.ErrNotAnObject)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, "featureFlags.json", []byte(tt.content), 0644))

			got, err := featureflags.FileSource{Fs: fs, Path: "featureFlags.json"}.Load(context.TODO())

			if tt.assertErr != nil {
				require.Error(t, err)
				tt.assertErr(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.ToMap())
		})
	}
}

func TestFileSource_Load_MissingFile(t *testing.T) {
	_, err := featureflags.FileSource{Fs: afero.NewMemMapFs(), Path: "missing.json"}.Load(context.TODO())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStaticSource_Load_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.TODO())
	cancel()

	_, err := featureflags.StaticSource{"a": true}.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
