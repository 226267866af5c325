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
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	courtside "laptudirm.com/x/courtside/pkg/common"
	"laptudirm.com/x/courtside/pkg/roster"
)

// courtside round
func Round() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "round",
		Short: "Generate and browse the rounds of a session",
	}

	cmd.AddCommand(Generate())
	cmd.AddCommand(navigate("next", "Show the round after the current one", (*cliState).next))
	cmd.AddCommand(navigate("previous", "Show the round before the current one", (*cliState).previous))
	cmd.AddCommand(navigate("show", "Show the current round", func(*cliState) bool { return true }))
	cmd.AddCommand(ResetRounds())

	return cmd
}

// courtside round generate
func Generate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the next round from the roster",
		Long: heredoc.Doc(`generate shuffles the players in the roster and fills the
			courts, in the order they were added, with singles or
			doubles matches. The new round becomes the current round
			of the session.

			Players left over after the courts are filled rest, or,
			with --leftover american-doubles, a single leftover rotates
			into an American Doubles match with players already on
			court. Players who rotated last time are picked last.`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := openState(cmd)
			if err != nil {
				return err
			}

			format, policy, err := matchSettings(cmd, state.config)
			if err != nil {
				return err
			}

			r, err := roster.Load(courtside.RosterFile)
			if err != nil {
				return err
			}

			result, err := state.session.Generate(r.Players, r.Courts, format, policy)
			if err != nil {
				return err
			}

			for _, warning := range result.Warnings {
				logrus.Warn(warning)
			}

			if err := state.save(); err != nil {
				return err
			}

			current, _ := state.session.Round()
			printRound(os.Stdout, state.session.Number(), current)
			return nil
		},
	}

	addMatchFlags(cmd)
	return cmd
}

func (state *cliState) next() bool {
	return state.session.Next()
}

func (state *cliState) previous() bool {
	return state.session.Previous()
}

func navigate(use, short string, move func(*cliState) bool) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := openState(cmd)
			if err != nil {
				return err
			}

			if !move(state) {
				fmt.Println("\x1b[31mNo such round.\x1b[0m")
			}

			current, found := state.session.Round()
			if !found {
				fmt.Println("\x1b[31mNo rounds generated yet.\x1b[0m")
				return nil
			}

			if err := state.save(); err != nil {
				return err
			}

			printRound(os.Stdout, state.session.Number(), current)
			return nil
		},
	}
}

// courtside round reset
func ResetRounds() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear the rounds and pairing history of the session",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := openState(cmd)
			if err != nil {
				return err
			}

			state.session.Reset()
			if err := state.save(); err != nil {
				return err
			}

			fmt.Printf("\x1b[32mReset session:\x1b[0m %s\n", state.session.Name)
			return nil
		},
	}
}
