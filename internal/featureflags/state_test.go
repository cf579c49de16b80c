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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dynatrace/feature-toggles/internal/featureflags"
)

func TestStateInfo_Unmodified(t *testing.T) {
	p := featureflags.NewProvider(featureflags.StaticSource{"newDashboard": true, "betaUser": false})
	p.Initialize(context.TODO())

	assert.Equal(t, "Feature Flags (Ready):\n\n"+
		" \tbetaUser: false (source:false)\n"+
		" \tnewDashboard: true (source:true)\n", p.StateInfo())
}

func TestStateInfo_MarksOverrides(t *testing.T) {
	p := featureflags.NewProvider(featureflags.StaticSource{"newDashboard": true, "betaUser": false})
	p.Initialize(context.TODO())

	p.Override("betaUser", true)
	p.Override("extra", false)

	assert.Equal(t, "Lines starting with '!' indicate that a flag has been overridden at runtime.\n\n"+
		"Feature Flags (Ready):\n\n"+
		"!\tbetaUser: true (source:false)\n"+
		"!\textra: false (source:<unset>)\n"+
		" \tnewDashboard: true (source:true)\n", p.StateInfo())
}

func TestStateInfo_Uninitialized(t *testing.T) {
	p := featureflags.NewProvider(featureflags.StaticSource{"newDashboard": true})

	assert.Equal(t, "Feature Flags (Uninitialized):\n\n", p.StateInfo())
}

func TestEnvSwitch(t *testing.T) {
	sw := featureflags.LogToFile() // any switch with false as default

	assert.False(t, sw.Enabled())

	for _, fv := range []string{"0", "f", "F", "FALSE", "false", "False", "fAlSe"} {
		t.Setenv(sw.EnvName(), fv)
		assert.False(t, sw.Enabled())
	}

	for _, tv := range []string{"1", "t", "T", "TRUE", "true", "tRuE", "True"} {
		t.Setenv(sw.EnvName(), tv)
		assert.True(t, sw.Enabled())
	}

	t.Setenv(sw.EnvName(), "othervalue")
	assert.False(t, sw.Enabled(), "unsupported values fall back to the default")
}

func TestColoredReport(t *testing.T) {
	sw := featureflags.ColoredReport()
	assert.True(t, sw.Enabled())
	t.Setenv(sw.EnvName(), "0")
	assert.False(t, sw.Enabled())
}
