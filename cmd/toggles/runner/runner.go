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

package runner

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dynatrace/feature-toggles/cmd/toggles/flags"
	"github.com/dynatrace/feature-toggles/cmd/toggles/generate"
	"github.com/dynatrace/feature-toggles/cmd/toggles/prcheck"
	"github.com/dynatrace/feature-toggles/cmd/toggles/validate"
	"github.com/dynatrace/feature-toggles/cmd/toggles/version"
	"github.com/dynatrace/feature-toggles/cmd/toggles/welcome"
	"github.com/dynatrace/feature-toggles/internal/featureflags"
	"github.com/dynatrace/feature-toggles/internal/log"
	checks "github.com/dynatrace/feature-toggles/internal/prcheck"
)

func Run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := BuildCli(afero.NewOsFs(), checks.ShellExecutor{})

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// details of failed validations and checks have already been printed
		if !errors.Is(err, validate.ErrValidationFailed) && !errors.Is(err, prcheck.ErrChecksFailed) {
			log.Error("%v", err)
		}
		return 1
	}

	return 0
}

func BuildCli(fs afero.Fs, executor checks.Executor) *cobra.Command {
	var verbose bool

	var rootCmd = &cobra.Command{
		Use:   "toggles <command>",
		Short: "Validates, inspects and guards the feature flags of an application.",
		Long: `Tool used to validate feature flag files and to run the checks every change has to pass

Examples:
  Validate the feature flag file
    toggles validate
  Show the flags with a temporary override
    toggles flags --set newDashboard=false
  Run all PR checks
    toggles prcheck`,

		PersistentPreRun: configureLogging(fs, &verbose),
		SilenceErrors:    true,
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	// global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	// commands
	rootCmd.AddCommand(validate.GetValidateCommand(fs))
	rootCmd.AddCommand(prcheck.GetPRCheckCommand(fs, executor))
	rootCmd.AddCommand(flags.GetFlagsCommand(fs))
	rootCmd.AddCommand(welcome.GetWelcomeCommand(fs))
	rootCmd.AddCommand(generate.Command(fs))
	rootCmd.AddCommand(version.GetVersionCommand())

	return rootCmd
}

func configureLogging(fs afero.Fs, verbose *bool) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		log.PrepareLogging(cmd.Context(), log.Options{
			Verbose:     *verbose,
			FileLogging: featureflags.LogToFile().Enabled(),
			Fs:          fs,
		})
	}
}
