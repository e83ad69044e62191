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
	"fmt"
	"slices"
	"strconv"

	"github.com/consensys/go-arithc/pkg/compiler/expr"
	"github.com/consensys/go-arithc/pkg/util/source"
	"github.com/consensys/go-arithc/pkg/util/source/lex"
)

// EQUALITY_OPS captures the operators parsed at the equality level.
var EQUALITY_OPS = []uint{EQUALS_EQUALS, NOT_EQUALS}

// RELATIONAL_OPS captures the operators parsed at the relational level.
var RELATIONAL_OPS = []uint{LESS_THAN, LESS_THAN_EQUALS, GREATER_THAN, GREATER_THAN_EQUALS}

// ADDITIVE_OPS captures the operators parsed at the additive level.
var ADDITIVE_OPS = []uint{ADD, SUB}

// MULTIPLICATIVE_OPS captures the operators parsed at the multiplicative level.
var MULTIPLICATIVE_OPS = []uint{MUL, DIV}

// Parse a sequence of tokens (as produced by Lex) for a given source file into
// a single expression tree.  Parsing stops as soon as a complete expression
// has been recognised, hence any tokens which follow are left unchecked.  The
// first malformed token encountered terminates parsing with a syntax error.
func Parse(srcfile *source.File, tokens []lex.Token) (expr.Node, []source.SyntaxError) {
	parser := NewParser(srcfile, tokens)
	//
	return parser.Parse()
}

// ============================================================================
// Parser
// ============================================================================

// Parser is a recursive-descent parser for arithmetic expressions, which uses
// a single token of lookahead.
type Parser struct {
	srcfile *source.File
	tokens  []lex.Token
	// Source mapping
	srcmap *source.Map[expr.Node]
	// Position within the tokens
	index int
}

// NewParser constructs a new parser for a given source file and its tokens.
func NewParser(srcfile *source.File, tokens []lex.Token) *Parser {
	// Construct (initially empty) source mapping
	srcmap := source.NewSourceMap[expr.Node](*srcfile)
	//
	return &Parser{srcfile, tokens, srcmap, 0}
}

// Parse a single expression starting from the current position.
func (p *Parser) Parse() (expr.Node, []source.SyntaxError) {
	return p.parseExpr()
}

// SourceMap returns the mapping from each parsed node to the span of source
// text it was parsed from.
func (p *Parser) SourceMap() *source.Map[expr.Node] {
	return p.srcmap
}

// Index returns the position of the next unconsumed token.
func (p *Parser) Index() int {
	return p.index
}

func (p *Parser) parseExpr() (expr.Node, []source.SyntaxError) {
	return p.parseEquality()
}

func (p *Parser) parseEquality() (expr.Node, []source.SyntaxError) {
	var (
		start     = p.index
		lhs, errs = p.parseRelational()
		rhs       expr.Node
	)
	//
	for len(errs) == 0 && p.follows(EQUALITY_OPS...) {
		op := p.next().Kind
		//
		if rhs, errs = p.parseRelational(); len(errs) > 0 {
			return nil, errs
		}
		//
		switch op {
		case EQUALS_EQUALS:
			lhs = expr.NewEq(lhs, rhs)
		case NOT_EQUALS:
			lhs = expr.NewNeq(lhs, rhs)
		}
		//
		p.srcmap.Put(lhs, p.spanOf(start, p.index-1))
	}
	//
	return lhs, errs
}

func (p *Parser) parseRelational() (expr.Node, []source.SyntaxError) {
	var (
		start     = p.index
		lhs, errs = p.parseAdditive()
		rhs       expr.Node
	)
	//
	for len(errs) == 0 && p.follows(RELATIONAL_OPS...) {
		op := p.next().Kind
		//
		if rhs, errs = p.parseAdditive(); len(errs) > 0 {
			return nil, errs
		}
		// Greater-than comparisons are normalised by swapping operands.
		switch op {
		case LESS_THAN:
			lhs = expr.NewLt(lhs, rhs)
		case LESS_THAN_EQUALS:
			lhs = expr.NewLtEq(lhs, rhs)
		case GREATER_THAN:
			lhs = expr.NewLt(rhs, lhs)
		case GREATER_THAN_EQUALS:
			lhs = expr.NewLtEq(rhs, lhs)
		}
		//
		p.srcmap.Put(lhs, p.spanOf(start, p.index-1))
	}
	//
	return lhs, errs
}

func (p *Parser) parseAdditive() (expr.Node, []source.SyntaxError) {
	var (
		start     = p.index
		lhs, errs = p.parseTerm()
		rhs       expr.Node
	)
	//
	for len(errs) == 0 && p.follows(ADDITIVE_OPS...) {
		op := p.next().Kind
		//
		if rhs, errs = p.parseTerm(); len(errs) > 0 {
			return nil, errs
		}
		//
		switch op {
		case ADD:
			lhs = expr.NewAdd(lhs, rhs)
		case SUB:
			lhs = expr.NewSub(lhs, rhs)
		}
		//
		p.srcmap.Put(lhs, p.spanOf(start, p.index-1))
	}
	//
	return lhs, errs
}

func (p *Parser) parseTerm() (expr.Node, []source.SyntaxError) {
	var (
		start     = p.index
		lhs, errs = p.parseUnary()
		rhs       expr.Node
	)
	//
	for len(errs) == 0 && p.follows(MULTIPLICATIVE_OPS...) {
		op := p.next().Kind
		//
		if rhs, errs = p.parseUnary(); len(errs) > 0 {
			return nil, errs
		}
		//
		switch op {
		case MUL:
			lhs = expr.NewMul(lhs, rhs)
		case DIV:
			lhs = expr.NewDiv(lhs, rhs)
		}
		//
		p.srcmap.Put(lhs, p.spanOf(start, p.index-1))
	}
	//
	return lhs, errs
}

func (p *Parser) parseUnary() (expr.Node, []source.SyntaxError) {
	var start = p.index
	// Unary plus is simply dropped.
	if p.match(ADD) {
		return p.parsePrimary()
	} else if p.match(SUB) {
		operand, errs := p.parsePrimary()
		//
		if len(errs) > 0 {
			return nil, errs
		}
		// Negation is normalised to subtraction from zero.
		zero := expr.NewNumber(0)
		node := expr.NewSub(zero, operand)
		//
		p.srcmap.Put(zero, p.spanOf(start, start))
		p.srcmap.Put(node, p.spanOf(start, p.index-1))
		//
		return node, nil
	}
	//
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (expr.Node, []source.SyntaxError) {
	if p.match(LBRACE) {
		node, errs := p.parseExpr()
		//
		if len(errs) > 0 {
			return nil, errs
		} else if _, errs = p.expect(RBRACE); len(errs) > 0 {
			return nil, errs
		}
		// Don't add to source map, since it will already have been added.
		return node, nil
	}
	//
	return p.parseNumber()
}

func (p *Parser) parseNumber() (expr.Node, []source.SyntaxError) {
	var start = p.index
	//
	token, errs := p.expectNumber()
	if len(errs) > 0 {
		return nil, errs
	}
	// Literals are unsigned 32-bit values
	val, err := strconv.ParseUint(p.string(token), 10, 32)
	if err != nil {
		return nil, p.syntaxErrors(token, "number out of range")
	}
	//
	node := expr.NewNumber(uint32(val))
	p.srcmap.Put(node, p.spanOf(start, start))
	//
	return node, nil
}

// Get the text representing the given token as a string.
func (p *Parser) string(token lex.Token) string {
	return p.srcfile.Text(token.Span)
}

// Lookahead returns the next token.  This normally exists because EOF is always
// appended at the end of the token stream.  Should the stream be exhausted
// regardless, an EOF token is synthesised at the end of the last token.
func (p *Parser) lookahead() lex.Token {
	if p.index < len(p.tokens) {
		return p.tokens[p.index]
	}
	//
	end := 0
	//
	if n := len(p.tokens); n > 0 {
		end = p.tokens[n-1].Span.End()
	}
	//
	return lex.Token{Kind: END_OF, Span: source.NewSpan(end, end)}
}

// Next returns the next token and advances past it, unless the end of the
// token stream has been reached.
func (p *Parser) next() lex.Token {
	lookahead := p.lookahead()
	//
	if lookahead.Kind != END_OF {
		p.index++
	}
	//
	return lookahead
}

// Expect returns an error if the next token is not what was expected.
func (p *Parser) expect(kind uint) (lex.Token, []source.SyntaxError) {
	lookahead := p.lookahead()
	//
	if lookahead.Kind != kind {
		errs := p.syntaxErrors(lookahead, fmt.Sprintf("expected \"%s\"", Symbol(kind)))
		return lookahead, errs
	}
	//
	p.index++
	//
	return lookahead, nil
}

// ExpectNumber consumes the next token, which must be a number.
func (p *Parser) expectNumber() (lex.Token, []source.SyntaxError) {
	token := p.next()
	//
	if token.Kind == END_OF {
		return token, p.syntaxErrors(token, "unexpected end of input")
	} else if token.Kind != NUMBER {
		return token, p.syntaxErrors(token, "expected number")
	}
	//
	return token, nil
}

// Match attempts to match the given token.
func (p *Parser) match(kind uint) bool {
	if p.lookahead().Kind == kind {
		p.index++
		return true
	}
	//
	return false
}

// Follows checks whether one of the given token kinds is next.
func (p *Parser) follows(options ...uint) bool {
	return slices.Contains(options, p.lookahead().Kind)
}

// Determine the span covering a given (inclusive) range of tokens.
func (p *Parser) spanOf(firstToken, lastToken int) source.Span {
	return p.tokens[firstToken].Span.Join(p.tokens[lastToken].Span)
}

func (p *Parser) syntaxErrors(token lex.Token, msg string) []source.SyntaxError {
	return []source.SyntaxError{*p.srcfile.SyntaxError(token.Span, msg)}
}
