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

package validate

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dynatrace/feature-toggles/cmd/toggles/cmdutils"
)

func GetValidateCommand(fs afero.Fs) (validateCmd *cobra.Command) {
	var file string
	var watch bool

	validateCmd = &cobra.Command{
		Use:   "validate",
		Short: "Validate the feature flag file",
		Long: `Validate checks that the feature flag file is a JSON object mapping flag names to boolean values.

Flag names should be camelCase or kebab-case; other names are reported as warnings but do not fail the validation.`,
		Example: `toggles validate
toggles validate --file flags/featureFlags.json --watch`,
		Args:   cobra.NoArgs,
		PreRun: cmdutils.SilenceUsageCommand(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch {
				return watchFile(cmd.Context(), fs, file, cmd.OutOrStdout(), cmd.ErrOrStderr())
			}
			return validateFile(fs, file, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmdutils.AddFlagsFileFlag(validateCmd.Flags(), &file)
	validateCmd.Flags().BoolVarP(&watch, "watch", "w", false, "Validate again on every change of the file until interrupted")

	return validateCmd
}
