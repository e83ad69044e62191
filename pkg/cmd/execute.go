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
	"slices"

	"github.com/consensys/go-arithc/pkg/compiler"
	"github.com/consensys/go-arithc/pkg/compiler/codegen"
	"github.com/consensys/go-arithc/pkg/machine"
	"github.com/consensys/go-arithc/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// executeCmd represents the execute command
var executeCmd = &cobra.Command{
	Use:   "execute [flags] [file]",
	Short: "Compile an arithmetic expression and execute it.",
	Long: `Compile an arithmetic expression into assembly, and then assemble and execute
that on a simple stack machine.  The value returned in rax is printed.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			cfg     = Configure(cmd)
			srcfile = ReadSource(cmd, args)
			gencfg  = cfg.CodegenConfig()
			mcfg    = cfg.MachineConfig()
		)
		//
		if steps := GetUint(cmd, "max-steps"); steps != 0 {
			mcfg.MaxSteps = steps
		}
		//
		compilation := CompileSource(srcfile)
		listing := slices.Collect(codegen.Listing(compilation.Root, gencfg))
		// Optionally show assembly
		if GetFlag(cmd, "asm") {
			for _, line := range listing {
				fmt.Println(line.Text)
			}
			//
			fmt.Println()
		}
		//
		stats := util.NewPerfStats()
		value, err := execute(listing, mcfg)
		//
		stats.Log("execution")
		//
		if err != nil {
			reportFault(compilation, listing, err)
			os.Exit(5)
		}
		//
		fmt.Println(value)
	},
}

// Assemble and run a given listing on a fresh machine.
func execute(listing []codegen.Line, cfg machine.Config) (int64, error) {
	m, value, err := machine.ExecuteListing(listing, cfg)
	//
	if m != nil {
		log.Debug(fmt.Sprintf("executed %d steps", m.Steps()))
	}
	//
	return value, err
}

// Report an error arising from execution.  Where a fault can be attributed to
// a subexpression, this is reported as an error against the original source.
func reportFault(compilation compiler.Compilation, listing []codegen.Line, err error) {
	if serr := machine.Diagnose(compilation.SourceMap, listing, err); serr != nil {
		printSyntaxError(os.Stderr, serr)
	} else {
		fmt.Fprintln(os.Stderr, err)
	}
}

func init() {
	rootCmd.AddCommand(executeCmd)
	executeCmd.Flags().StringP("expr", "e", "", "expression to execute")
	executeCmd.Flags().Bool("asm", false, "print generated assembly before executing")
	executeCmd.Flags().Uint("max-steps", 0, "maximum number of machine steps (0 uses configured limit)")
}
