// Copyright 2018 The CUE Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ysthakur/paml"
)

func newFmtCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "reprint a document in canonical form",
		Long: `Fmt parses a document and reprints it canonically: insignificant
whitespace and comments are dropped, strings are double-quoted, and no
trailing comma is ever emitted.

Fmt reads from the given file, or from stdin if none or "-" is given.
It refuses to format a document that parses with validation errors
(duplicate keys, unrecognized string format tags); run "paml lint"
first to see them.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, text, err := readInput(args)
			if err != nil {
				return err
			}
			out, err := paml.Format(text)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			if write && len(args) == 1 && args[0] != "-" {
				return writeFile(args[0], out)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to the input file")
	return cmd
}
