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

	"github.com/consensys/go-arithc/pkg/compiler/codegen"
	"github.com/consensys/go-arithc/pkg/util"
	"github.com/spf13/cobra"
)

// compileCmd represents the compile command
var compileCmd = &cobra.Command{
	Use:   "compile [flags] [file]",
	Short: "Compile an arithmetic expression into x86-64 assembly.",
	Long:  `Compile an arithmetic expression into x86-64 assembly for a stack machine.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			cfg     = Configure(cmd)
			srcfile = ReadSource(cmd, args)
			output  = GetString(cmd, "output")
			gencfg  = cfg.CodegenConfig()
			out     = os.Stdout
			err     error
		)
		//
		if entry := GetString(cmd, "entry"); entry != "" {
			gencfg.Entry = entry
		}
		//
		stats := util.NewPerfStats()
		compilation := CompileSource(srcfile)
		//
		if output != "" {
			if out, err = os.Create(output); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			//
			defer out.Close()
		}
		//
		if err = codegen.Write(out, compilation.Root, gencfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(3)
		}
		//
		stats.Log(fmt.Sprintf("compiling %s", srcfile.Filename()))
	},
}

func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().StringP("expr", "e", "", "expression to compile")
	compileCmd.Flags().StringP("output", "o", "", "output file (defaults to stdout)")
	compileCmd.Flags().String("entry", "", "name of the entry point symbol")
}
