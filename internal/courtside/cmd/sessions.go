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

	"github.com/spf13/cobra"

	courtside "laptudirm.com/x/courtside/pkg/common"
	"laptudirm.com/x/courtside/pkg/session"
)

// courtside sessions
func Sessions() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Manage the saved sessions",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Lists the saved sessions and their rounds",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			store := session.NewStore(courtside.SessionDirectory)
			names, err := store.List()
			if err != nil {
				return err
			}

			if len(names) == 0 {
				fmt.Println("\x1b[31mNo Sessions Saved.\x1b[0m")
				return nil
			}

			fmt.Print("\x1b[32mSaved Sessions\x1b[0m:\n\n")
			for _, name := range names {
				saved, err := store.Load(name)
				if err != nil {
					return err
				}

				label := fmt.Sprintf("\x1b[34m%s\x1b[0m:", name)
				fmt.Printf(
					"- %-20s round \x1b[33m%d\x1b[0m of %d, %d pairings\n",
					label, saved.Number(), len(saved.Rounds), saved.History.Len(),
				)
			}

			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete session",
		Short: "Delete the given session",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			store := session.NewStore(courtside.SessionDirectory)
			if err := store.Delete(args[0]); err != nil {
				return err
			}

			fmt.Printf("\x1b[32mDeleted Session:\x1b[0m %s\n", args[0])
			return nil
		},
	})

	return cmd
}
