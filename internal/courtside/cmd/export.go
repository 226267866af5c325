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
	"io"
	"os"

	"github.com/spf13/cobra"

	"laptudirm.com/x/courtside/pkg/export"
	"laptudirm.com/x/courtside/pkg/schedule"
)

var ErrNoRound = errors.New("no rounds generated yet")

// courtside export
func Export() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the current round of the session",
	}

	cmd.AddCommand(exporter("csv", "Export the current round as a CSV table",
		func(w io.Writer, _ int, round schedule.Round) error {
			return export.CSV(w, round)
		},
	))

	cmd.AddCommand(exporter("pdf", "Export the current round as a PDF document", export.PDF))

	return cmd
}

func exporter(format, short string, write func(io.Writer, int, schedule.Round) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   format,
		Short: short,
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

			path := cmd.Flag("out").Value.String()
			if path == "" {
				path = fmt.Sprintf("round_%d.%s", state.session.Number(), format)
			}

			file, err := os.Create(path)
			if err != nil {
				return err
			}

			if err := write(file, state.session.Number(), round); err != nil {
				_ = file.Close()
				return err
			}

			if err := file.Close(); err != nil {
				return err
			}

			fmt.Printf("\x1b[32mExported round %d:\x1b[0m %s\n", state.session.Number(), path)
			return nil
		},
	}

	cmd.Flags().StringP("out", "o", "", "File to write the round to")
	return cmd
}
