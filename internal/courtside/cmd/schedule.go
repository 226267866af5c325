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
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	courtside "laptudirm.com/x/courtside/pkg/common"
	"laptudirm.com/x/courtside/pkg/roster"
	"laptudirm.com/x/courtside/pkg/schedule"
)

// courtside schedule
func Schedule() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print a one-off schedule that gets every player on court once",
		Long: heredoc.Doc(`schedule prints as many rounds as it takes to get every
			player in the roster on court once. It keeps no pairing
			history and does not touch any session.

			With --leftover american-doubles, three leftover players
			take a free court of their own as an American Doubles match.
			Players who can't be placed at all are listed as resting.

			Courts can be given with --courts instead of the roster.`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := courtside.LoadConfig(courtside.ConfigFile)
			if err != nil {
				return err
			}

			format, policy, err := matchSettings(cmd, config)
			if err != nil {
				return err
			}

			r, err := roster.Load(courtside.RosterFile)
			if err != nil {
				return err
			}

			courts := r.Courts
			if flag := cmd.Flag("courts"); flag.Changed {
				if courts, err = roster.ParseList(flag.Value.String()); err != nil {
					return err
				}
			}

			if err := schedule.Validate(r.Players, courts); err != nil {
				return err
			}

			alloc := &schedule.Allocator{Random: schedule.NewRandom()}
			for i, round := range alloc.Batch(r.Players, courts, format, policy) {
				if i > 0 {
					fmt.Println()
				}

				printRound(os.Stdout, i+1, round)
			}

			return nil
		},
	}

	addMatchFlags(cmd)
	cmd.Flags().StringP("courts", "c", "", "Comma separated courts to use instead of the roster's")
	return cmd
}
