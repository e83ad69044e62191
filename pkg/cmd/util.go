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
	"io"
	"os"
	"strings"

	"github.com/consensys/go-arithc/pkg/compiler"
	"github.com/consensys/go-arithc/pkg/util/source"
	"github.com/consensys/go-arithc/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer, or panic if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// ReadSource determines the expression to operate on.  This is given either
// directly with "--expr", or as a file argument or, failing both, is read from
// stdin.
func ReadSource(cmd *cobra.Command, args []string) *source.File {
	var (
		text     = GetString(cmd, "expr")
		filename string
		bytes    []byte
		err      error
	)
	//
	switch {
	case text != "" && len(args) > 0:
		fmt.Fprintln(os.Stderr, "cannot give both an expression and a file")
		os.Exit(2)
	case text != "":
		return source.NewSourceFile("<expr>", []byte(text))
	case len(args) == 1:
		filename = args[0]
		bytes, err = os.ReadFile(filename)
	case len(args) == 0:
		filename = "<stdin>"
		bytes, err = io.ReadAll(os.Stdin)
	default:
		fmt.Fprintln(os.Stderr, "expected at most one source file")
		os.Exit(2)
	}
	// Sanity check for errors
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(3)
	}
	//
	log.Debug(fmt.Sprintf("read source file %s (%d bytes)", filename, len(bytes)))
	//
	return source.NewSourceFile(filename, bytes)
}

// CompileSource compiles a given source file, or prints errors and exits.
func CompileSource(srcfile *source.File) compiler.Compilation {
	compilation, errors := compiler.Compile(*srcfile)
	// Check for errors
	if len(errors) != 0 {
		// Report errors
		for _, err := range errors {
			printSyntaxError(os.Stderr, &err)
		}
		// Fail
		os.Exit(4)
	}
	// Done
	return compilation
}

func printSyntaxError(out *os.File, err *source.SyntaxError) {
	writeSyntaxError(out, termio.NewPainter(out), err)
}

func writeSyntaxError(out io.Writer, painter termio.Painter, err *source.SyntaxError) {
	var (
		span       = err.Span()
		line       = err.FirstEnclosingLine()
		lineOffset = min(max(0, span.Start()-line.Start()), line.Length())
		// Calculate length (ensures don't overflow line), but always
		// highlight at least one character.
		length    = max(1, min(line.Length()-lineOffset, span.Length()))
		highlight = termio.BoldAnsiEscape().FgColour(termio.RED)
	)
	// Print error + line number
	fmt.Fprintf(out, "%s:%d:%d-%d %s\n", err.SourceFile().Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, painter.Paint(highlight, err.Message()))
	// Print separator line
	fmt.Fprintln(out)
	// Print line
	fmt.Fprintln(out, line.String())
	// Print indent (todo: account for tabs in the line)
	fmt.Fprint(out, strings.Repeat(" ", lineOffset))
	// Print highlight
	fmt.Fprintln(out, painter.Paint(highlight, strings.Repeat("^", length)))
}
