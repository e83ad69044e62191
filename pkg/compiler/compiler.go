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
package compiler

import (
	"fmt"

	"github.com/consensys/go-arithc/pkg/compiler/expr"
	"github.com/consensys/go-arithc/pkg/compiler/parser"
	"github.com/consensys/go-arithc/pkg/util/source"
	log "github.com/sirupsen/logrus"
)

// Compilation captures the result of successfully compiling a source file.
type Compilation struct {
	// Root of the expression tree.
	Root expr.Node
	// Mapping of every node in the tree back to the source file.
	SourceMap *source.Map[expr.Node]
}

// Compile a given source file into an expression tree, or produce one or more
// syntax errors.  Unlike the parser, this requires the entire source file to
// form exactly one expression: any tokens remaining after a complete
// expression are reported as an error.
func Compile(srcfile source.File) (Compilation, []source.SyntaxError) {
	var result Compilation
	// Convert source file into tokens
	tokens, errs := parser.Lex(srcfile)
	if len(errs) > 0 {
		return result, errs
	}
	//
	log.Debug(fmt.Sprintf("lexed %d tokens from %s", len(tokens), srcfile.Filename()))
	//
	p := parser.NewParser(&srcfile, tokens)
	// Parse expression
	root, errs := p.Parse()
	if len(errs) > 0 {
		return result, errs
	}
	// Check nothing is left over
	if p.Index() < len(tokens) && tokens[p.Index()].Kind != parser.END_OF {
		trailing := tokens[p.Index()]
		err := srcfile.SyntaxError(trailing.Span, "unexpected token")
		//
		return result, []source.SyntaxError{*err}
	}
	//
	log.Debug(fmt.Sprintf("parsed expression with %d nodes (depth %d)", expr.Size(root), expr.Depth(root)))
	//
	return Compilation{root, p.SourceMap()}, nil
}

// CompileString is a convenience which compiles an expression given directly
// as a string, using name as its filename for error reporting.
func CompileString(name string, text string) (Compilation, []source.SyntaxError) {
	return Compile(*source.NewSourceFile(name, []byte(text)))
}
