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

package welcome

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dynatrace/feature-toggles/cmd/toggles/cmdutils"
	"github.com/dynatrace/feature-toggles/internal/featureflags"
)

// NewDashboardFlag switches the welcome screen to the new dashboard.
const NewDashboardFlag = "newDashboard"

func GetWelcomeCommand(fs afero.Fs) (welcomeCmd *cobra.Command) {
	var file string

	welcomeCmd = &cobra.Command{
		Use:     "welcome",
		Short:   "Show the welcome screen, which depends on the '" + NewDashboardFlag + "' feature flag",
		Example: "toggles welcome --file flags/featureFlags.json",
		Args:    cobra.NoArgs,
		PreRun:  cmdutils.SilenceUsageCommand(),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := featureflags.NewProvider(featureflags.FileSource{Fs: fs, Path: file})
			<-p.Start(cmd.Context())
			return render(cmd.OutOrStdout(), p)
		},
	}

	cmdutils.AddFlagsFileFlag(welcomeCmd.Flags(), &file)

	return welcomeCmd
}

func render(w io.Writer, flags featureflags.Reader) error {
	if _, err := fmt.Fprintln(w, "Welcome!"); err != nil {
		return err
	}

	if flags.IsEnabled(NewDashboardFlag) {
		_, err := fmt.Fprintln(w, "New Dashboard is available")
		return err
	}
	_, err := fmt.Fprintln(w, "Using old dashboard")
	return err
}
