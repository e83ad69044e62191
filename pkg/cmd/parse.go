// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse [flags] [file]",
	Short: "Parse an arithmetic expression and print its tree.",
	Long: `Parse an arithmetic expression and print the resulting tree, either as a fully
parenthesised expression or as YAML.`,
	Run: func(cmd *cobra.Command, args []string) {
		Configure(cmd)
		//
		var (
			srcfile     = ReadSource(cmd, args)
			format      = GetString(cmd, "format")
			compilation = CompileSource(srcfile)
		)
		//
		switch format {
		case "text":
			fmt.Println(compilation.Root.String())
		case "yaml":
			bytes, err := yaml.Marshal(compilation.Root)
			//
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			//
			fmt.Print(string(bytes))
		default:
			fmt.Fprintf(os.Stderr, "unknown format \"%s\"\n", format)
			os.Exit(2)
		}
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringP("expr", "e", "", "expression to parse")
	parseCmd.Flags().String("format", "text", "output format (text or yaml)")
}
