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
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	courtside "laptudirm.com/x/courtside/pkg/common"
	"laptudirm.com/x/courtside/pkg/roster"
)

// rosterList describes one of the two lists kept in the roster.
type rosterList struct {
	name   string // singular name of an entry
	plural string

	add    func(*roster.Roster, string) error
	remove func(*roster.Roster, string) error
	list   func(*roster.Roster) []string
	reset  func(*roster.Roster)
}

var playerList = rosterList{
	name: "player", plural: "players",

	add:    (*roster.Roster).AddPlayer,
	remove: (*roster.Roster).RemovePlayer,
	list:   func(r *roster.Roster) []string { return r.Players },
	reset:  (*roster.Roster).ResetPlayers,
}

var courtList = rosterList{
	name: "court", plural: "courts",

	add:    (*roster.Roster).AddCourt,
	remove: (*roster.Roster).RemoveCourt,
	list:   (*roster.Roster).SortedCourts,
	reset:  (*roster.Roster).ResetCourts,
}

// courtside players
func Players() *cobra.Command {
	return rosterCommand(playerList)
}

// courtside courts
func Courts() *cobra.Command {
	return rosterCommand(courtList)
}

func rosterCommand(list rosterList) *cobra.Command {
	cmd := &cobra.Command{
		Use:   list.plural,
		Short: fmt.Sprintf("Manage the %s in the roster", list.plural),
	}

	cmd.AddCommand(&cobra.Command{
		Use:   fmt.Sprintf("add %s...", list.name),
		Short: fmt.Sprintf("Add %s to the roster", list.plural),
		Long: heredoc.Docf(`add adds the given %s to the roster. Every argument
			may hold a comma separated list of %s, like "1, 2, 17, 18".
			Use double quotes around an entry that contains a comma.

			Entries which are already in the roster are skipped.`, list.plural, list.plural),
		Args: cobra.MinimumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return editRoster(func(r *roster.Roster) error {
				for _, arg := range args {
					entries, err := roster.ParseList(arg)
					if err != nil {
						return err
					}

					for _, entry := range entries {
						err := list.add(r, entry)
						switch {
						case errors.Is(err, roster.ErrDuplicateEntry):
							logrus.Warn(err)
						case err != nil:
							return err
						default:
							fmt.Printf("\x1b[32mAdded %s:\x1b[0m %s\n", list.name, entry)
						}
					}
				}

				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   fmt.Sprintf("remove %s...", list.name),
		Short: fmt.Sprintf("Remove %s from the roster", list.plural),
		Args:  cobra.MinimumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return editRoster(func(r *roster.Roster) error {
				for _, arg := range args {
					if err := list.remove(r, arg); err != nil {
						return err
					}

					fmt.Printf("\x1b[32mRemoved %s:\x1b[0m %s\n", list.name, arg)
				}

				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List the %s in the roster", list.plural),
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := roster.Load(courtside.RosterFile)
			if err != nil {
				return err
			}

			entries := list.list(r)
			if len(entries) == 0 {
				fmt.Printf("\x1b[31mNo %s in the roster.\x1b[0m\n", list.plural)
				return nil
			}

			fmt.Printf("\x1b[32m%d %s\x1b[0m:\n\n", len(entries), list.plural)
			for _, entry := range entries {
				fmt.Printf("- %s\n", entry)
			}

			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: fmt.Sprintf("Remove every %s from the roster", list.name),
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return editRoster(func(r *roster.Roster) error {
				list.reset(r)
				fmt.Printf("\x1b[32mRemoved every %s.\x1b[0m\n", list.name)
				return nil
			})
		},
	})

	return cmd
}

// editRoster loads the roster, applies the given edit and saves the roster
// back if the edit succeeded.
func editRoster(edit func(*roster.Roster) error) error {
	r, err := roster.Load(courtside.RosterFile)
	if err != nil {
		return err
	}

	if err := edit(r); err != nil {
		return err
	}

	return r.Dump(courtside.RosterFile)
}
