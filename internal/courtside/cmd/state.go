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
	"io"
	"strings"

	"github.com/spf13/cobra"

	courtside "laptudirm.com/x/courtside/pkg/common"
	"laptudirm.com/x/courtside/pkg/schedule"
	"laptudirm.com/x/courtside/pkg/session"
)

// cliState is what most commands need to get going: the default settings and
// the session picked by the --session flag.
type cliState struct {
	config  courtside.Config
	store   *session.Store
	session *session.Session
}

func openState(cmd *cobra.Command) (*cliState, error) {
	config, err := courtside.LoadConfig(courtside.ConfigFile)
	if err != nil {
		return nil, err
	}

	name := config.Session
	if flag := cmd.Flag("session"); flag != nil && flag.Changed {
		name = flag.Value.String()
	}

	store := session.NewStore(courtside.SessionDirectory)
	current, err := store.Open(name)
	if err != nil {
		return nil, err
	}

	return &cliState{config: config, store: store, session: current}, nil
}

func (state *cliState) save() error {
	return state.store.Save(state.session)
}

// addMatchFlags registers the flags which pick the match format and the
// leftover policy of the generated rounds.
func addMatchFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", "", "Match format: singles or doubles")
	cmd.Flags().StringP("leftover", "l", "", "Leftover players should: rest or american-doubles")
}

// matchSettings returns the match format and leftover policy given by the
// flags, falling back to the configured defaults.
func matchSettings(cmd *cobra.Command, config courtside.Config) (schedule.Format, schedule.Policy, error) {
	format, policy := config.Format, config.Leftover

	var err error
	if flag := cmd.Flag("format"); flag.Changed {
		if format, err = schedule.ParseFormat(flag.Value.String()); err != nil {
			return format, policy, err
		}
	}

	if flag := cmd.Flag("leftover"); flag.Changed {
		if policy, err = schedule.ParsePolicy(flag.Value.String()); err != nil {
			return format, policy, err
		}
	}

	return format, policy, nil
}

func printRound(out io.Writer, number int, round schedule.Round) {
	fmt.Fprintf(out, "\x1b[32mRound %d\x1b[0m:\n\n", number)

	for _, match := range round {
		joined := strings.Join(match.Players, " vs. ")
		if team1, team2, ok := match.Teams(); ok {
			joined = fmt.Sprintf("%s & %s vs. %s & %s", team1[0], team1[1], team2[0], team2[1])
		}

		slot := fmt.Sprintf("\x1b[34mCourt %s\x1b[0m:", match.Slot())
		fmt.Fprintf(out, "- %-25s %s \x1b[33m(%s)\x1b[0m\n", slot, joined, match.Kind)
	}
}
