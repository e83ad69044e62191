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
package codegen

import (
	"bufio"
	"fmt"
	"io"
	"iter"

	"github.com/consensys/go-arithc/pkg/compiler/expr"
)

// SYNTAX_DIRECTIVE selects Intel assembly syntax without register prefixes.
const SYNTAX_DIRECTIVE = ".intel_syntax noprefix"

// Config determines the layout of the generated assembly.
type Config struct {
	// Entry is the (global) symbol naming the program's entry point.
	Entry string
	// Indent is prepended to every instruction line.
	Indent string
}

// DefaultConfig returns the default code generation configuration.
func DefaultConfig() Config {
	return Config{Entry: "main", Indent: "\t"}
}

// Line is a single line of generated assembly, along with the expression node
// responsible for it (or nil for lines belonging to the program preamble or
// epilogue).
type Line struct {
	Text   string
	Origin expr.Node
}

// Listing lazily generates the assembly for a given expression, line by line.
// The program consists of a preamble declaring the entry point, the body
// evaluating the expression on the stack, and an epilogue which pops the
// result into rax and returns.
func Listing(root expr.Node, cfg Config) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		gen := generator{cfg, yield}
		// Preamble
		if !gen.directive(SYNTAX_DIRECTIVE) ||
			!gen.directive(fmt.Sprintf(".global %s", cfg.Entry)) ||
			!gen.directive(fmt.Sprintf("%s:", cfg.Entry)) {
			return
		}
		// Body
		if !gen.generate(root) {
			return
		}
		// Epilogue.  The result is the one value remaining on the stack.
		if gen.emit(nil, "pop rax") {
			gen.emit(nil, "ret")
		}
	}
}

// Lines lazily generates the text of each line of assembly for a given
// expression.
func Lines(root expr.Node, cfg Config) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range Listing(root, cfg) {
			if !yield(line.Text) {
				return
			}
		}
	}
}

// Write the assembly for a given expression to a given writer, with one line
// per instruction or directive.
func Write(w io.Writer, root expr.Node, cfg Config) error {
	out := bufio.NewWriter(w)
	//
	for line := range Lines(root, cfg) {
		if _, err := out.WriteString(line); err != nil {
			return err
		} else if err := out.WriteByte('\n'); err != nil {
			return err
		}
	}
	//
	return out.Flush()
}

// ============================================================================
// Generator
// ============================================================================

type generator struct {
	cfg   Config
	yield func(Line) bool
}

// Generate code for a given node, returning false if the consumer stopped
// early.  On completion, exactly one additional value has been pushed onto the
// stack.
func (p *generator) generate(node expr.Node) bool {
	switch e := node.(type) {
	case *expr.Number:
		return p.emit(e, fmt.Sprintf("push %d", e.Value))
	case *expr.Binary:
		if !p.generate(e.Left) || !p.generate(e.Right) {
			return false
		}
		// The right operand was pushed last, hence is popped first.
		if !p.emit(e, "pop rdi") || !p.emit(e, "pop rax") {
			return false
		}
		//
		for _, insn := range instructions(e.Operator) {
			if !p.emit(e, insn) {
				return false
			}
		}
		//
		return p.emit(e, "push rax")
	default:
		panic("unknown expression encountered")
	}
}

// Determine the instructions which compute "rax := rax op rdi".
func instructions(op expr.Op) []string {
	switch op {
	case expr.ADD:
		return []string{"add rax, rdi"}
	case expr.SUB:
		return []string{"sub rax, rdi"}
	case expr.MUL:
		return []string{"imul rax, rdi"}
	case expr.DIV:
		// Sign extend rax into rdx:rax
		return []string{"cqo", "idiv rdi"}
	case expr.EQ:
		return comparison("sete")
	case expr.NEQ:
		return comparison("setne")
	case expr.LT:
		return comparison("setl")
	case expr.LTEQ:
		return comparison("setle")
	default:
		panic("unknown operator encountered")
	}
}

func comparison(set string) []string {
	return []string{"cmp rax, rdi", set + " al", "movzb rax, al"}
}

func (p *generator) directive(text string) bool {
	return p.yield(Line{text, nil})
}

func (p *generator) emit(origin expr.Node, insn string) bool {
	return p.yield(Line{p.cfg.Indent + insn, origin})
}
