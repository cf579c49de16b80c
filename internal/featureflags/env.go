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

import (
	"os"
	"strconv"
	"strings"

	"github.com/dynatrace/feature-toggles/internal/log"
)

// EnvSwitch is a switch of the toggles CLI itself, read from an environment variable.
// Unlike the flags served by a Provider these configure the tooling, not the application.
type EnvSwitch struct {
	// envName is the environment variable name
	// that is used to read the value from
	envName string
	// defaultEnabled states whether this switch
	// is enabled or disabled by default
	defaultEnabled bool
}

// Enabled evaluates the switch.
// Switches are considered to be "enabled" if their resp. environment variable
// is set to 1, t, T, TRUE, true or True.
// Switches are considered to be "disabled" if their resp. environment variable
// is set to 0, f, F, FALSE, false or False.
func (sw EnvSwitch) Enabled() bool {
	if val, ok := os.LookupEnv(sw.envName); ok {
		enabled, err := strconv.ParseBool(strings.ToLower(val))
		if err != nil {
			log.Warn("Unsupported value %q for environment variable %q. Using default value: %v", val, sw.envName, sw.defaultEnabled)
			return sw.defaultEnabled
		}
		return enabled
	}
	return sw.defaultEnabled
}

// EnvName gives back the environment variable name of the switch
func (sw EnvSwitch) EnvName() string {
	return sw.envName
}

// LogToFile returns the switch controlling whether log files are written to the .logs directory
func LogToFile() EnvSwitch {
	return EnvSwitch{
		envName:        "TOGGLES_LOG_FILE_ENABLED",
		defaultEnabled: false,
	}
}

// ColoredReport returns the switch controlling whether the PR check report is styled with colors
func ColoredReport() EnvSwitch {
	return EnvSwitch{
		envName:        "TOGGLES_REPORT_COLOR",
		defaultEnabled: true,
	}
}
