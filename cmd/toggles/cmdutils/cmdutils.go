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

package cmdutils

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dynatrace/feature-toggles/internal/environment"
)

// SilenceUsageCommand gives back a command that is just configured to skip printing of usage info.
// We use it as a PreRun hook to enforce the behavior of printing usage info when the command structure
// given by the user is faulty
func SilenceUsageCommand() func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		cmd.SilenceUsage = true
	}
}

// AddFlagsFileFlag registers the --file flag pointing to the feature flag file. Its default is read from the
// TOGGLES_FLAGS_FILE environment variable.
func AddFlagsFileFlag(flags *pflag.FlagSet, target *string) {
	flags.StringVarP(target, "file", "f", environment.GetEnvValueString(environment.FlagsFileEnvKey),
		"Feature flag file. Defaults to $"+environment.FlagsFileEnvKey+" if set")
}
