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

package flags

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dynatrace/feature-toggles/cmd/toggles/cmdutils"
	"github.com/dynatrace/feature-toggles/internal/featureflags"
)

func GetFlagsCommand(fs afero.Fs) (flagsCmd *cobra.Command) {
	var file string
	var sets []string

	flagsCmd = &cobra.Command{
		Use:   "flags",
		Short: "Print the feature flags as the application sees them",
		Long: `Loads the feature flag file the same way the application does, applies the given overrides and prints the
resulting flags. Overridden flags are marked with '!'. Overrides only last for this invocation.`,
		Example: `toggles flags
toggles flags --set newDashboard=false --set betaUser=true`,
		Args:   cobra.NoArgs,
		PreRun: cmdutils.SilenceUsageCommand(),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides, err := parseOverrides(sets)
			if err != nil {
				return err
			}

			p := featureflags.NewProvider(featureflags.FileSource{Fs: fs, Path: file})
			p.Initialize(cmd.Context())
			if err := p.Err(); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Using no feature flags: %v\n", err)
			}

			for _, o := range overrides {
				p.Override(o.name, o.value)
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), p.StateInfo())
			return err
		},
	}

	cmdutils.AddFlagsFileFlag(flagsCmd.Flags(), &file)
	flagsCmd.Flags().StringArrayVarP(&sets, "set", "s", nil, "Override a flag for this invocation in the form name=true|false. Can be repeated")

	return flagsCmd
}

type override struct {
	name  string
	value bool
}

// parseOverrides parses name=value pairs. Values are parsed with strconv.ParseBool. Later overrides of the same
// name win.
func parseOverrides(sets []string) ([]override, error) {
	var overrides []override
	var errs []error
	for _, s := range sets {
		name, raw, found := strings.Cut(s, "=")
		name = strings.TrimSpace(name)
		if !found || name == "" {
			errs = append(errs, fmt.Errorf("invalid override %q: expected name=true|false", s))
			continue
		}

		value, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid override %q: value %q is not a boolean", s, raw))
			continue
		}
		overrides = append(overrides, override{name: name, value: value})
	}
	return overrides, errors.Join(errs...)
}
