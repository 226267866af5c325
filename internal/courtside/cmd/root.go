// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	courtside "laptudirm.com/x/courtside/pkg/common"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "courtside",
		Short: "Schedule rounds of tennis across the available courts",
		Long: heredoc.Doc(`courtside assigns the players of a tennis session to the
			available courts, one round at a time, keeping track of who
			has already played whom.

			Players and courts are kept in a roster shared by every
			session. Leftover players either rest or rotate into an
			American Doubles match with players already on court.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}

			courtside.Setup()
		},
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("version", "v", false, "Show Courtside's Version")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().StringP("session", "s", "", "Name of the session to use")

	versionStr := "v0.1.0\n"
	root.SetVersionTemplate(versionStr)
	root.Version = versionStr

	// Register the various commands.
	root.AddCommand(Players())
	root.AddCommand(Courts())
	root.AddCommand(Round())
	root.AddCommand(Schedule())
	root.AddCommand(Export())
	root.AddCommand(Play())
	root.AddCommand(Sessions())
	root.AddCommand(Completion())

	return root
}
