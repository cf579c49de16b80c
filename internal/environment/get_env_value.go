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
	"os"
	"strconv"
	"strings"

	"github.com/dynatrace/feature-toggles/internal/log"
)

const (
	// FlagsFileEnvKey overrides the location of the feature flag file
	FlagsFileEnvKey = "TOGGLES_FLAGS_FILE"
	// PRCheckParallelEnvKey limits how many PR checks run at once. 0 runs all checks at once.
	PRCheckParallelEnvKey = "TOGGLES_PRCHECK_PARALLEL"
)

type variable struct {
	description   string
	defaultInt    int
	defaultString string
}

// known holds the defaults of all environment variables the tool reads. Unknown variables default to zero values.
var known = map[string]variable{
	FlagsFileEnvKey:       {description: "Feature flag file", defaultString: "flags/featureFlags.json"},
	PRCheckParallelEnvKey: {description: "PR check parallelism"},
}

func describe(env string) string {
	if v, ok := known[env]; ok {
		return v.description
	}
	return "Environment variable " + env
}

// lookupInt returns the non-negative integer value of env, or its default and false if env is unset or invalid.
func lookupInt(env string) (int, bool) {
	val, ok := os.LookupEnv(env)
	if !ok {
		return known[env].defaultInt, false
	}

	n, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil || n < 0 {
		return known[env].defaultInt, false
	}
	return n, true
}

func GetEnvValueInt(env string) int {
	n, _ := lookupInt(env)
	return n
}

// GetEnvValueIntLog is GetEnvValueInt, additionally logging the value and where it came from on debug level.
func GetEnvValueIntLog(env string) int {
	n, fromEnv := lookupInt(env)
	if fromEnv {
		log.Debug("%s: %d, from '%s' environment variable", describe(env), n, env)
	} else {
		log.Debug("%s: %d, '%s' environment variable is NOT set or invalid, using default value", describe(env), n, env)
	}
	return n
}

// GetEnvValueString returns the value of the environment variable, or its registered default if it is unset or empty.
func GetEnvValueString(env string) string {
	if val, ok := os.LookupEnv(env); ok && val != "" {
		return val
	}
	return known[env].defaultString
}
