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
	"fmt"

	"github.com/consensys/go-arithc/pkg/util/source"
)

// Token is a tagged span of the input.  The meaning of each kind is
// determined by the rules used to produce it.
type Token struct {
	Kind uint
	Span source.Span
}

func (t Token) String() string {
	return fmt.Sprintf("%d@%s", t.Kind, t.Span.String())
}

// LexRule tags whatever a given scanner matches with a given token kind.
type LexRule[T any] struct {
	scanner Scanner[T]
	kind    uint
}

// Rule constructs a lexing rule producing tokens of a given kind.
func Rule[T any](scanner Scanner[T], kind uint) LexRule[T] {
	return LexRule[T]{scanner, kind}
}

// Lexer splits an input sequence into tokens.  At each position, the rules are
// tried in order and the first to match produces the next token.  Hence,
// where one rule's match is a prefix of another's, the longer must be given
// first.
type Lexer[T any] struct {
	items []T
	rules []LexRule[T]
	// Position of the next unconsumed item.
	index int
	// Token matched at the current position (if any).
	lookahead *Token
	// Set once the end of input has been tokenised.
	finished bool
}

// NewLexer constructs a lexer for a given input and set of rules.
func NewLexer[T any](items []T, rules ...LexRule[T]) *Lexer[T] {
	return &Lexer[T]{items: items, rules: rules}
}

// Index returns the position of the next unconsumed item.
func (p *Lexer[T]) Index() uint {
	return uint(min(p.index, len(p.items)))
}

// Remaining returns the number of input items not yet consumed.
func (p *Lexer[T]) Remaining() uint {
	return uint(len(p.items)) - p.Index()
}

// HasNext checks whether some rule matches at the current position.
func (p *Lexer[T]) HasNext() bool {
	return p.peek() != nil
}

// Next returns the next token and advances past it.  This should only be
// called when HasNext holds.
func (p *Lexer[T]) Next() Token {
	token := p.peek()
	//
	if token == nil {
		panic("no token available")
	}
	// Advance
	p.lookahead = nil
	p.index = token.Span.End()
	// A match at the end of input can only be the end of input itself.
	if token.Span.Start() == len(p.items) {
		p.finished = true
	}
	//
	return *token
}

// Collect tokenises as much of the remaining input as possible.
func (p *Lexer[T]) Collect() []Token {
	var tokens []Token
	//
	for p.HasNext() {
		tokens = append(tokens, p.Next())
	}
	//
	return tokens
}

// Determine the token at the current position, if any.
func (p *Lexer[T]) peek() *Token {
	if p.lookahead != nil || p.finished {
		return p.lookahead
	}
	//
	rest := p.items[p.index:]
	//
	for _, rule := range p.rules {
		if n := rule.scanner(rest); n != 0 {
			// Eof matches have length one, but cover nothing.
			end := min(len(p.items), p.index+int(n))
			p.lookahead = &Token{rule.kind, source.NewSpan(p.index, end)}
			//
			return p.lookahead
		}
	}
	//
	return nil
}
