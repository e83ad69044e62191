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
package expr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func n(v uint32) Node {
	return NewNumber(v)
}

func Test_Expr_String_01(t *testing.T) {
	assert.Equal(t, "42", n(42).String())
	assert.Equal(t, "(2 + (3 * 4))", NewAdd(n(2), NewMul(n(3), n(4))).String())
	assert.Equal(t, "((8 - 4) - 2)", NewSub(NewSub(n(8), n(4)), n(2)).String())
	assert.Equal(t, "(3 <= 5)", NewLtEq(n(3), n(5)).String())
	assert.Equal(t, "((1 == 2) != 0)", NewNeq(NewEq(n(1), n(2)), n(0)).String())
}

func Test_Expr_Equals_01(t *testing.T) {
	assert.True(t, NewAdd(n(1), n(2)).Equals(NewAdd(n(1), n(2))))
	assert.False(t, NewAdd(n(1), n(2)).Equals(NewAdd(n(2), n(1))))
	assert.False(t, NewAdd(n(1), n(2)).Equals(NewSub(n(1), n(2))))
	assert.False(t, NewAdd(n(1), n(2)).Equals(n(3)))
	assert.False(t, n(3).Equals(NewAdd(n(1), n(2))))
	assert.True(t, n(3).Equals(n(3)))
}

func Test_Expr_Metrics_01(t *testing.T) {
	e := NewAdd(n(1), NewMul(n(2), NewSub(n(3), n(4))))
	//
	assert.Equal(t, uint(4), Depth(e))
	assert.Equal(t, uint(7), Size(e))
	assert.Equal(t, uint(1), Depth(n(1)))
	assert.Equal(t, uint(1), Size(n(1)))
}

func Test_Expr_Op_01(t *testing.T) {
	for _, op := range []Op{ADD, SUB, MUL, DIV} {
		assert.False(t, op.IsComparison(), op.Name())
	}
	//
	for _, op := range []Op{EQ, NEQ, LT, LTEQ} {
		assert.True(t, op.IsComparison(), op.Name())
	}
}

func Test_Expr_Eval_01(t *testing.T) {
	checkEval(t, NewAdd(n(2), NewMul(n(3), n(4))), 14)
	checkEval(t, NewSub(NewSub(n(8), n(4)), n(2)), 2)
	checkEval(t, NewSub(NewMul(NewAdd(n(1), n(2)), n(3)), n(4)), 5)
}

func Test_Expr_Eval_02(t *testing.T) {
	// Division truncates toward zero
	checkEval(t, NewDiv(n(7), n(2)), 3)
	checkEval(t, NewDiv(NewSub(n(0), n(7)), n(2)), -3)
	checkEval(t, NewDiv(n(7), NewSub(n(0), n(2))), -3)
}

func Test_Expr_Eval_03(t *testing.T) {
	checkEval(t, NewEq(n(1), n(1)), 1)
	checkEval(t, NewNeq(n(1), n(1)), 0)
	checkEval(t, NewLt(n(3), n(5)), 1)
	checkEval(t, NewLt(n(5), n(5)), 0)
	checkEval(t, NewLtEq(n(5), n(5)), 1)
	// Comparisons are signed
	checkEval(t, NewLt(NewSub(n(0), n(1)), n(0)), 1)
}

func Test_Expr_Eval_04(t *testing.T) {
	// Literals are sign-extended 32-bit immediates
	checkEval(t, n(2147483647), math.MaxInt32)
	checkEval(t, n(2147483648), math.MinInt32)
	checkEval(t, n(4294967295), -1)
}

func Test_Expr_Eval_05(t *testing.T) {
	// Arithmetic wraps at 64 bits
	big := NewMul(n(2147483647), n(2147483647))
	checkEval(t, big, 4611686014132420609)
	checkEval(t, NewMul(big, n(4)), -17179869180)
}

func Test_Expr_Eval_06(t *testing.T) {
	_, err := Eval(NewDiv(n(1), n(0)))
	assert.ErrorIs(t, err, ErrDivideByZero)
	//
	_, err = Eval(NewAdd(n(1), NewDiv(n(1), NewSub(n(1), n(1)))))
	assert.ErrorIs(t, err, ErrDivideByZero)
}

func Test_Expr_Eval_07(t *testing.T) {
	_, err := Apply(DIV, math.MinInt64, -1)
	assert.ErrorIs(t, err, ErrDivideOverflow)
}

func Test_Expr_Yaml_01(t *testing.T) {
	var decoded any
	//
	bytes, err := yaml.Marshal(NewAdd(n(1), NewMul(n(2), n(3))))
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal(bytes, &decoded))
	//
	expected := map[string]any{
		"add": []any{1, map[string]any{"mul": []any{2, 3}}},
	}
	//
	assert.Equal(t, expected, decoded)
}

func Test_Expr_Yaml_02(t *testing.T) {
	bytes, err := yaml.Marshal(n(7))
	require.NoError(t, err)
	assert.Equal(t, "7\n", string(bytes))
}

func checkEval(t *testing.T, e Node, expected int64) {
	actual, err := Eval(e)
	//
	require.NoError(t, err)
	assert.Equal(t, expected, actual, e.String())
}
