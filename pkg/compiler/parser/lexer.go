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
package parser

import (
	"slices"

	"github.com/consensys/go-arithc/pkg/util/source"
	"github.com/consensys/go-arithc/pkg/util/source/lex"
)

// END_OF signals "end of file"
const END_OF uint = 0

// WHITESPACE signals whitespace
const WHITESPACE uint = 1

// COMMENT signals ";; ... \n"
const COMMENT uint = 2

// NUMBER signals an integer number
const NUMBER uint = 3

// LBRACE signals "("
const LBRACE uint = 10

// RBRACE signals ")"
const RBRACE uint = 11

// ADD signals "+"
const ADD uint = 12

// SUB signals "-"
const SUB uint = 13

// MUL signals "*"
const MUL uint = 14

// DIV signals "/"
const DIV uint = 15

// EQUALS_EQUALS signals "=="
const EQUALS_EQUALS uint = 16

// NOT_EQUALS signals "!="
const NOT_EQUALS uint = 17

// LESS_THAN signals "<"
const LESS_THAN uint = 18

// LESS_THAN_EQUALS signals "<="
const LESS_THAN_EQUALS uint = 19

// GREATER_THAN signals ">"
const GREATER_THAN uint = 20

// GREATER_THAN_EQUALS signals ">="
const GREATER_THAN_EQUALS uint = 21

// Rule for describing whitespace
var whitespace lex.Scanner[rune] = lex.Many(lex.Or(lex.Unit(' '), lex.Unit('\t'), lex.Unit('\r'), lex.Unit('\n')))

// Rule for describing (decimal) numbers
var number lex.Scanner[rune] = lex.Many(lex.Within('0', '9'))

// Comments start with ';;' and continue until a newline or EOF.
var comment lex.Scanner[rune] = lex.Optional(lex.Unit(';', ';'), lex.Until('\n'))

// lexing rules.  Note that two-character symbols must precede their
// one-character prefixes.
var rules []lex.LexRule[rune] = []lex.LexRule[rune]{
	lex.Rule(comment, COMMENT),
	lex.Rule(lex.Unit('('), LBRACE),
	lex.Rule(lex.Unit(')'), RBRACE),
	lex.Rule(lex.Unit('=', '='), EQUALS_EQUALS),
	lex.Rule(lex.Unit('!', '='), NOT_EQUALS),
	lex.Rule(lex.Unit('<', '='), LESS_THAN_EQUALS),
	lex.Rule(lex.Unit('>', '='), GREATER_THAN_EQUALS),
	lex.Rule(lex.Unit('<'), LESS_THAN),
	lex.Rule(lex.Unit('>'), GREATER_THAN),
	lex.Rule(lex.Unit('+'), ADD),
	lex.Rule(lex.Unit('-'), SUB),
	lex.Rule(lex.Unit('*'), MUL),
	lex.Rule(lex.Unit('/'), DIV),
	lex.Rule(whitespace, WHITESPACE),
	lex.Rule(number, NUMBER),
	lex.Rule(lex.Eof[rune](), END_OF),
}

// Lex a given source file into a sequence of zero or more tokens, along with
// any syntax errors arising.  On success, the final token is always END_OF.
func Lex(srcfile source.File) ([]lex.Token, []source.SyntaxError) {
	var (
		lexer = lex.NewLexer(srcfile.Contents(), rules...)
		// Lex as many tokens as possible
		tokens = lexer.Collect()
	)
	// Check whether anything was left (if so this is an error)
	if lexer.Remaining() != 0 {
		start, end := lexer.Index(), lexer.Index()+1
		err := srcfile.SyntaxError(source.NewSpan(int(start), int(end)), "unknown text encountered")
		// errors
		return nil, []source.SyntaxError{*err}
	}
	// Remove any whitespace and comments
	tokens = slices.DeleteFunc(tokens, func(t lex.Token) bool {
		return t.Kind == WHITESPACE || t.Kind == COMMENT
	})
	// Done
	return tokens, nil
}

// Symbol returns the textual form of a given reserved symbol kind, or the
// empty string if the kind does not denote a reserved symbol.
func Symbol(kind uint) string {
	switch kind {
	case LBRACE:
		return "("
	case RBRACE:
		return ")"
	case ADD:
		return "+"
	case SUB:
		return "-"
	case MUL:
		return "*"
	case DIV:
		return "/"
	case EQUALS_EQUALS:
		return "=="
	case NOT_EQUALS:
		return "!="
	case LESS_THAN:
		return "<"
	case LESS_THAN_EQUALS:
		return "<="
	case GREATER_THAN:
		return ">"
	case GREATER_THAN_EQUALS:
		return ">="
	default:
		return ""
	}
}
