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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/consensys/go-arithc/pkg/compiler"
	"github.com/consensys/go-arithc/pkg/compiler/codegen"
	"github.com/consensys/go-arithc/pkg/config"
	"github.com/consensys/go-arithc/pkg/machine"
	"github.com/consensys/go-arithc/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactively evaluate arithmetic expressions.",
	Long: `Read arithmetic expressions one line at a time, compiling and executing each
on the stack machine and printing the result.  Enter an empty line, or end of
input, to finish.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			cfg = Configure(cmd)
			asm = GetFlag(cmd, "asm")
			fd  = int(os.Stdin.Fd())
		)
		//
		if !term.IsTerminal(fd) {
			runRepl(bufioReader{bufio.NewScanner(os.Stdin)}, os.Stdout, termio.Painter{}, cfg, asm)
			return
		}
		// Interactive mode
		state, err := term.MakeRaw(fd)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(3)
		}
		//
		defer func() { _ = term.Restore(fd, state) }()
		//
		terminal := term.NewTerminal(stdio{}, "> ")
		runRepl(terminal, terminal, termio.NewPainter(os.Stdout), cfg, asm)
	},
}

// lineReader abstracts the source of input lines, which is either an
// interactive terminal or a plain stream.
type lineReader interface {
	ReadLine() (string, error)
}

type bufioReader struct {
	scanner *bufio.Scanner
}

func (p bufioReader) ReadLine() (string, error) {
	if p.scanner.Scan() {
		return p.scanner.Text(), nil
	} else if err := p.scanner.Err(); err != nil {
		return "", err
	}
	//
	return "", io.EOF
}

// stdio combines stdin and stdout for use by a terminal.
type stdio struct{}

func (stdio) Read(p []byte) (int, error) {
	return os.Stdin.Read(p)
}

func (stdio) Write(p []byte) (int, error) {
	return os.Stdout.Write(p)
}

// Read, compile and execute expressions until an empty line or end of input.
func runRepl(in lineReader, out io.Writer, painter termio.Painter, cfg *config.Config, asm bool) {
	for index := 1; ; index++ {
		line, err := in.ReadLine()
		//
		if errors.Is(err, io.EOF) {
			return
		} else if err != nil {
			fmt.Fprintln(out, err)
			return
		} else if strings.TrimSpace(line) == "" {
			return
		}
		//
		evalLine(fmt.Sprintf("<repl:%d>", index), line, out, painter, cfg, asm)
	}
}

// Compile and execute a single line of input, reporting the result (or any
// errors arising) on the given output.
func evalLine(name string, line string, out io.Writer, painter termio.Painter, cfg *config.Config,
	asm bool) {
	//
	compilation, errs := compiler.CompileString(name, line)
	//
	if len(errs) > 0 {
		for _, err := range errs {
			writeSyntaxError(out, painter, &err)
		}
		//
		return
	}
	//
	listing := slices.Collect(codegen.Listing(compilation.Root, cfg.CodegenConfig()))
	//
	if asm {
		for _, line := range listing {
			fmt.Fprintln(out, painter.Paint(termio.NewAnsiEscape().FgColour(termio.CYAN), line.Text))
		}
	}
	//
	value, err := execute(listing, cfg.MachineConfig())
	//
	if serr := machine.Diagnose(compilation.SourceMap, listing, err); serr != nil {
		writeSyntaxError(out, painter, serr)
	} else if err != nil {
		fmt.Fprintln(out, err)
	} else {
		fmt.Fprintln(out, painter.Paint(termio.NewAnsiEscape().FgColour(termio.GREEN), fmt.Sprint(value)))
	}
	//
	log.Debug(fmt.Sprintf("evaluated %s", compilation.Root.String()))
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().Bool("asm", false, "print generated assembly for each expression")
}
