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

func newLintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint [files...]",
		Short: "report parse and validation problems in one or more documents",
		Long: `Lint parses each file (or stdin, if none is given) and reports
any problems found. A tokenize or parse error is logged at error level
and fails the command; a validation error (duplicate key, unrecognized
string format tag) is logged at warning level and does not.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"-"}
			}
			failed := false
			for _, arg := range args {
				name, text, err := readInput([]string{arg})
				if err != nil {
					log.WithField("file", name).Error(err)
					failed = true
					continue
				}
				res, err := paml.Parse(text)
				if err != nil {
					log.WithField("file", name).Error(err)
					failed = true
					continue
				}
				for _, v := range res.ValidationErrors {
					log.WithField("file", name).Warn(v)
				}
			}
			if failed {
				return fmt.Errorf("lint found unparseable input")
			}
			return nil
		},
	}
	return cmd
}
