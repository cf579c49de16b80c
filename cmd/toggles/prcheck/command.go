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

package prcheck

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dynatrace/feature-toggles/cmd/toggles/cmdutils"
	"github.com/dynatrace/feature-toggles/internal/environment"
	"github.com/dynatrace/feature-toggles/internal/featureflags"
	"github.com/dynatrace/feature-toggles/internal/prcheck"
)

// ErrChecksFailed is returned if at least one check failed. The details have already been printed.
var ErrChecksFailed = errors.New("PR checks failed")

func GetPRCheckCommand(fs afero.Fs, executor prcheck.Executor) (prcheckCmd *cobra.Command) {
	var configFile string
	var parallel int

	prcheckCmd = &cobra.Command{
		Use:   "prcheck",
		Short: "Run all checks a change has to pass before it can be merged",
		Long: `Runs all PR checks concurrently and prints a summary. Every check runs to completion, even if others fail.

Checks are read from --config, or from ` + prcheck.DefaultConfigFile + ` if it exists. Otherwise the default checks are run:
vet, golangci-lint, gofmt, unit tests, build and feature flag validation.`,
		Example: `toggles prcheck
toggles prcheck --config ci/checks.yaml --parallel 2`,
		Args:   cobra.NoArgs,
		PreRun: cmdutils.SilenceUsageCommand(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := prcheck.LoadConfig(fs, configFile)
			if err != nil {
				return err
			}

			// --parallel takes precedence over the environment, which takes precedence over the config file
			if !cmd.Flags().Changed("parallel") {
				parallel = environment.GetEnvValueIntLog(environment.PRCheckParallelEnvKey)
				if parallel == 0 {
					parallel = cfg.Parallel
				}
			}
			if parallel < 0 {
				return fmt.Errorf("--parallel must not be negative, got %d", parallel)
			}
			cfg.Parallel = parallel

			runner := prcheck.NewRunner(executor, cmd.OutOrStdout(), cmd.ErrOrStderr(), featureflags.ColoredReport().Enabled())
			if report := runner.Run(cmd.Context(), cfg); !report.AllPassed() {
				return ErrChecksFailed
			}
			return nil
		},
	}

	prcheckCmd.Flags().StringVarP(&configFile, "config", "c", "", "YAML file defining the checks. Defaults to "+prcheck.DefaultConfigFile+" if it exists")
	prcheckCmd.Flags().IntVarP(&parallel, "parallel", "p", 0,
		"Maximum number of checks running at once, 0 runs all at once. Defaults to $"+environment.PRCheckParallelEnvKey+" if set")

	return prcheckCmd
}
