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
package lex

import (
	"slices"
	"testing"

	"github.com/consensys/go-arithc/pkg/util/source"
	"github.com/stretchr/testify/assert"
)

func TestLexer_00(t *testing.T) {
	var tokens = []Token{
		{END_OF, source.NewSpan(0, 0)},
	}

	checkLexer(t, "", 0, tokens...)
}

func TestLexer_01(t *testing.T) {
	var tokens = []Token{
		{LBRACE, source.NewSpan(0, 1)},
		{END_OF, source.NewSpan(1, 1)},
	}

	checkLexer(t, "(", 0, tokens...)
}

func TestLexer_02(t *testing.T) {
	var tokens = []Token{
		{LBRACE, source.NewSpan(0, 1)},
		{RBRACE, source.NewSpan(1, 2)},
		{END_OF, source.NewSpan(2, 2)},
	}

	checkLexer(t, "()", 0, tokens...)
}

func TestLexer_03(t *testing.T) {
	checkLexer(t, "x", 1)
}

func TestLexer_04(t *testing.T) {
	var tokens = []Token{
		{LBRACE, source.NewSpan(0, 1)},
		{WSPACE, source.NewSpan(1, 3)},
		{RBRACE, source.NewSpan(3, 4)},
		{END_OF, source.NewSpan(4, 4)},
	}

	checkLexer(t, "(  )", 0, tokens...)
}

func TestLexer_05(t *testing.T) {
	var tokens = []Token{
		{NUMBER, source.NewSpan(0, 3)},
		{END_OF, source.NewSpan(3, 3)},
	}

	checkLexer(t, "123", 0, tokens...)
}

func TestLexer_06(t *testing.T) {
	var tokens = []Token{
		{LESS_EQ, source.NewSpan(0, 2)},
		{LESS, source.NewSpan(2, 3)},
		{END_OF, source.NewSpan(3, 3)},
	}
	// Longest rule must be tried first
	checkLexer(t, "<=<", 0, tokens...)
}

func TestLexer_07(t *testing.T) {
	var tokens = []Token{
		{LBRACE, source.NewSpan(0, 1)},
		{NUMBER, source.NewSpan(1, 3)},
		{RBRACE, source.NewSpan(3, 4)},
	}
	// Stops at the first unknown character
	checkLexer(t, "(90)?", 1, tokens...)
}

func TestLexer_08(t *testing.T) {
	var tokens = []Token{
		{COMMENT, source.NewSpan(0, 4)},
		{WSPACE, source.NewSpan(4, 5)},
		{NUMBER, source.NewSpan(5, 6)},
		{END_OF, source.NewSpan(6, 6)},
	}

	checkLexer(t, ";; x\n1", 0, tokens...)
}

func TestLexerSequence(t *testing.T) {
	rule := Sequence(
		Unit('a'),
		Unit('b'),
		Unit('c'),
	)
	assert.Equal(t, uint(3), rule([]rune{'a', 'b', 'c'}))
	assert.Equal(t, uint(0), rule([]rune{'a', 'c', 'c'}))
	assert.Equal(t, uint(0), rule([]rune{'a', 'b'}))
}

func TestLexerOptional(t *testing.T) {
	rule := Optional(Unit(';', ';'), Until('\n'))
	assert.Equal(t, uint(2), rule([]rune(";;")))
	assert.Equal(t, uint(5), rule([]rune(";; ab\ncd")))
	assert.Equal(t, uint(0), rule([]rune("; ab")))
}

// ==================================================================
// Framework
// ==================================================================

const END_OF uint = 0
const WSPACE uint = 1
const LBRACE uint = 2
const RBRACE uint = 3
const NUMBER uint = 4
const LESS uint = 5
const LESS_EQ uint = 6
const COMMENT uint = 7

// Rule for describing whitespace
var whitespace Scanner[rune] = Many(Or(Unit(' '), Unit('\t'), Unit('\n')))

// Rule for describing numbers
var number Scanner[rune] = Many(Within('0', '9'))

// Rule for describing comments
var comment Scanner[rune] = Optional(Unit(';', ';'), Until('\n'))

// lexing rules
var rules []LexRule[rune] = []LexRule[rune]{
	Rule(comment, COMMENT),
	Rule(Unit('('), LBRACE),
	Rule(Unit(')'), RBRACE),
	Rule(Unit('<', '='), LESS_EQ),
	Rule(Unit('<'), LESS),
	Rule(whitespace, WSPACE),
	Rule(number, NUMBER),
	Rule(Eof[rune](), END_OF),
}

func checkLexer(t *testing.T, input string, remainder uint, expected ...Token) {
	items := []rune(input)
	// Construct text lexer
	lexer := NewLexer[rune](items, rules...)
	// Apply lexer
	tokens := lexer.Collect()
	// Keep scanning
	if !slices.Equal(tokens, expected) {
		t.Errorf("got %v, expected %v", tokens, expected)
	} else if lexer.Remaining() != remainder {
		n := len(items) - int(lexer.Remaining())
		t.Errorf("unmatched items: %v", items[n:])
	}
}
