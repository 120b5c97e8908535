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

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	"github.com/ysthakur/paml"
)

func newInspectCmd() *cobra.Command {
	var showTrivia bool

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "print the lossless concrete syntax tree of a document",
		Long: `Inspect parses a document and dumps its concrete syntax tree,
including spans and the whitespace and comments inside containers that
the canonical printer would discard. With --trivia it dumps the whole
parse result, adding the trivia before and after the document.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, text, err := readInput(args)
			if err != nil {
				return err
			}
			res, err := paml.Parse(text)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			if showTrivia {
				repr.Println(res)
			} else {
				repr.Println(res.Tree)
			}
			for _, v := range res.ValidationErrors {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: validation: %v\n", name, v)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showTrivia, "trivia", false, "include surrounding trivia and the full parse Result")
	return cmd
}
