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

package schema

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dynatrace/feature-toggles/cmd/toggles/cmdutils"
	"github.com/dynatrace/feature-toggles/internal/log"
	"github.com/dynatrace/feature-toggles/internal/prcheck"
)

func Command(fs afero.Fs) (cmd *cobra.Command) {

	var output string

	cmd = &cobra.Command{
		Use:     "schema",
		Short:   "Generate the JSON schema of the PR check configuration file",
		Example: "toggles generate schema -o prcheck.schema.json",
		Args:    cobra.NoArgs,
		PreRun:  cmdutils.SilenceUsageCommand(),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := prcheck.GenerateJSONSchema()
			if err != nil {
				return fmt.Errorf("failed to generate PR check config schema: %w", err)
			}

			if output == "" {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), string(s))
				return err
			}
			return writeSchemaFile(fs, output, s)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "The file the generated schema should be written to. If not set, the schema is printed to stdout.")

	return cmd
}

func writeSchemaFile(fs afero.Fs, path string, schema []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0777); err != nil {
			return fmt.Errorf("failed to create output folder %q: %w", dir, err)
		}
	}

	if err := afero.WriteFile(fs, filepath.Clean(path), schema, 0664); err != nil {
		return fmt.Errorf("failed to create schema file %q: %w", path, err)
	}

	log.Info("Generated JSON schema %q", path)
	return nil
}
