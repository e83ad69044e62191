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
	"testing"

	"github.com/consensys/go-arithc/pkg/compiler/expr"
	"github.com/consensys/go-arithc/pkg/util/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func num(v uint32) expr.Node {
	return expr.NewNumber(v)
}

// ============================================================================
// Valid
// ============================================================================

func Test_Parse_Number_01(t *testing.T) {
	checkParse(t, "42", num(42))
}

func Test_Parse_Number_02(t *testing.T) {
	checkParse(t, "4294967295", num(4294967295))
}

func Test_Parse_Number_03(t *testing.T) {
	checkParse(t, "007", num(7))
}

func Test_Parse_Precedence_01(t *testing.T) {
	checkParse(t, "2+3*4", expr.NewAdd(num(2), expr.NewMul(num(3), num(4))))
}

func Test_Parse_Precedence_02(t *testing.T) {
	checkParse(t, "2*3+4", expr.NewAdd(expr.NewMul(num(2), num(3)), num(4)))
}

func Test_Parse_Precedence_03(t *testing.T) {
	checkParse(t, "1+2<3*4", expr.NewLt(expr.NewAdd(num(1), num(2)), expr.NewMul(num(3), num(4))))
}

func Test_Parse_Precedence_04(t *testing.T) {
	checkParse(t, "1<2==3<=4", expr.NewEq(expr.NewLt(num(1), num(2)), expr.NewLtEq(num(3), num(4))))
}

func Test_Parse_Associativity_01(t *testing.T) {
	checkParse(t, "8-4-2", expr.NewSub(expr.NewSub(num(8), num(4)), num(2)))
}

func Test_Parse_Associativity_02(t *testing.T) {
	checkParse(t, "8/4/2", expr.NewDiv(expr.NewDiv(num(8), num(4)), num(2)))
}

func Test_Parse_Associativity_03(t *testing.T) {
	checkParse(t, "1==2!=3", expr.NewNeq(expr.NewEq(num(1), num(2)), num(3)))
}

func Test_Parse_Associativity_04(t *testing.T) {
	checkParse(t, "1<2<3", expr.NewLt(expr.NewLt(num(1), num(2)), num(3)))
}

func Test_Parse_Parens_01(t *testing.T) {
	checkParse(t, "(2+3)*4", expr.NewMul(expr.NewAdd(num(2), num(3)), num(4)))
}

func Test_Parse_Parens_02(t *testing.T) {
	checkParse(t, "((((1))))", num(1))
}

func Test_Parse_Parens_03(t *testing.T) {
	checkParse(t, "8-(4-2)", expr.NewSub(num(8), expr.NewSub(num(4), num(2))))
}

func Test_Parse_Unary_01(t *testing.T) {
	checkParse(t, "-5+3", expr.NewAdd(expr.NewSub(num(0), num(5)), num(3)))
}

func Test_Parse_Unary_02(t *testing.T) {
	checkParse(t, "+5", num(5))
}

func Test_Parse_Unary_03(t *testing.T) {
	checkParse(t, "-(1+2)", expr.NewSub(num(0), expr.NewAdd(num(1), num(2))))
}

func Test_Parse_Unary_04(t *testing.T) {
	checkParse(t, "2*-3", expr.NewMul(num(2), expr.NewSub(num(0), num(3))))
}

func Test_Parse_Greater_01(t *testing.T) {
	checkParse(t, "5>3", expr.NewLt(num(3), num(5)))
	checkParse(t, "3<5", expr.NewLt(num(3), num(5)))
}

func Test_Parse_Greater_02(t *testing.T) {
	checkParse(t, "5>=3", expr.NewLtEq(num(3), num(5)))
}

func Test_Parse_Greater_03(t *testing.T) {
	checkParse(t, "1+1>2*3", expr.NewLt(expr.NewMul(num(2), num(3)), expr.NewAdd(num(1), num(1))))
}

func Test_Parse_Whitespace_01(t *testing.T) {
	checkParse(t, " 1 +\t2\n* 3 ", expr.NewAdd(num(1), expr.NewMul(num(2), num(3))))
}

func Test_Parse_Comment_01(t *testing.T) {
	checkParse(t, ";; a comment\n1 + ;; another\n2", expr.NewAdd(num(1), num(2)))
}

func Test_Parse_Trailing_01(t *testing.T) {
	// The parser itself does not check for trailing tokens.
	checkParse(t, "1 2", num(1))
	checkParse(t, "(1+2))", expr.NewAdd(num(1), num(2)))
}

func Test_Parse_RoundTrip_01(t *testing.T) {
	for _, input := range []string{"2+3*4", "-5+3", "8-4-2", "5>3", "1<=2==0", "(1+2)*3-4", "10/-2"} {
		first := parse(t, input)
		second := parse(t, first.String())
		//
		assert.True(t, first.Equals(second), "%s reparsed as %s", first.String(), second.String())
	}
}

func Test_Parse_SourceMap_01(t *testing.T) {
	srcfile := source.NewSourceFile("test", []byte("1 + 2 * 3"))
	tokens, errs := Lex(*srcfile)
	require.Empty(t, errs)
	//
	p := NewParser(srcfile, tokens)
	root, errs := p.Parse()
	require.Empty(t, errs)
	//
	add := root.(*expr.Binary)
	mul := add.Right.(*expr.Binary)
	//
	assert.Equal(t, source.NewSpan(0, 9), p.SourceMap().Get(add))
	assert.Equal(t, source.NewSpan(4, 9), p.SourceMap().Get(mul))
	assert.Equal(t, source.NewSpan(8, 9), p.SourceMap().Get(mul.Right))
}

// ============================================================================
// Invalid
// ============================================================================

func Test_Parse_Invalid_01(t *testing.T) {
	checkParseError(t, "(1+2", "expected \")\"", 4, 4)
}

func Test_Parse_Invalid_02(t *testing.T) {
	checkParseError(t, "1+", "unexpected end of input", 2, 2)
}

func Test_Parse_Invalid_03(t *testing.T) {
	checkParseError(t, "", "unexpected end of input", 0, 0)
}

func Test_Parse_Invalid_04(t *testing.T) {
	checkParseError(t, "1+*2", "expected number", 2, 3)
}

func Test_Parse_Invalid_05(t *testing.T) {
	checkParseError(t, ")", "expected number", 0, 1)
}

func Test_Parse_Invalid_06(t *testing.T) {
	checkParseError(t, "4294967296", "number out of range", 0, 10)
}

func Test_Parse_Invalid_07(t *testing.T) {
	checkParseError(t, "--1", "expected number", 1, 2)
}

func Test_Parse_Invalid_08(t *testing.T) {
	checkParseError(t, "(1+2]", "unknown text encountered", 4, 5)
}

func Test_Parse_Invalid_09(t *testing.T) {
	checkParseError(t, "1 = 2", "unknown text encountered", 2, 3)
}

// ============================================================================
// Helpers
// ============================================================================

func parse(t *testing.T, input string) expr.Node {
	srcfile := source.NewSourceFile("test", []byte(input))
	//
	tokens, errs := Lex(*srcfile)
	require.Empty(t, errs)
	//
	node, errs := Parse(srcfile, tokens)
	require.Empty(t, errs, "failed parsing %s", input)
	//
	return node
}

func checkParse(t *testing.T, input string, expected expr.Node) {
	actual := parse(t, input)
	//
	assert.True(t, expected.Equals(actual), "expected %s, got %s", expected.String(), actual.String())
}

func checkParseError(t *testing.T, input string, msg string, start int, end int) {
	var (
		srcfile      = source.NewSourceFile("test", []byte(input))
		tokens, errs = Lex(*srcfile)
	)
	//
	if len(errs) == 0 {
		_, errs = Parse(srcfile, tokens)
	}
	//
	require.Len(t, errs, 1)
	assert.Equal(t, msg, errs[0].Message())
	assert.Equal(t, source.NewSpan(start, end), errs[0].Span())
}
