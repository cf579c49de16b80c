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

package generate

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dynatrace/feature-toggles/cmd/toggles/generate/schema"
)

func Command(fs afero.Fs) (cmd *cobra.Command) {

	cmd = &cobra.Command{
		Use:     "generate",
		Short:   "Generate offers several sub-commands to generate files - take a look at the sub-commands for usage",
		Example: "toggles generate schema -o prcheck.schema.json",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	cmd.AddCommand(schema.Command(fs))

	return cmd
}
