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
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "paml",
		Short:         "format, inspect, and lint paml documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug-level detail")

	cmd.AddCommand(newFmtCmd())
	cmd.AddCommand(newInspectCmd())
	cmd.AddCommand(newLintCmd())
	return cmd
}

func readInput(args []string) (name, text string, err error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := readAllStdin()
		return "<stdin>", string(b), err
	}
	b, err := readFile(args[0])
	return args[0], string(b), err
}
