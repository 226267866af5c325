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
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"laptudirm.com/x/courtside/pkg/timer"
)

// courtside play
func Play() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Show the current round and count down its match time",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := openState(cmd)
			if err != nil {
				return err
			}

			round, found := state.session.Round()
			if !found {
				return ErrNoRound
			}

			minutes := state.config.MatchMinutes
			if flag := cmd.Flag("minutes"); flag.Changed {
				minutes, _ = cmd.Flags().GetInt("minutes")
			}

			length, err := timer.Minutes(minutes)
			if err != nil {
				return fmt.Errorf("play: %w", err)
			}

			printRound(os.Stdout, state.session.Number(), round)
			fmt.Println()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			err = timer.Countdown(ctx, length, os.Stdout)
			if errors.Is(err, context.Canceled) {
				fmt.Println("\x1b[31mTimer stopped.\x1b[0m")
				return nil
			}

			return err
		},
	}

	cmd.Flags().IntP("minutes", "m", 0, fmt.Sprintf("Match time in minutes (%d to %d)", timer.MinMinutes, timer.MaxMinutes))
	return cmd
}
