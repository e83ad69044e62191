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
	"errors"
	"math"
)

// ErrDivideByZero is returned when evaluating a division whose divisor is zero.
var ErrDivideByZero = errors.New("division by zero")

// ErrDivideOverflow is returned when evaluating a division whose quotient
// cannot be represented (i.e. the minimum value divided by -1).
var ErrDivideOverflow = errors.New("division overflow")

// Eval evaluates an expression directly, using the same numeric semantics as
// the generated code.  That is, literals are 32-bit immediates sign-extended to
// 64 bits; arithmetic wraps in 64-bit two's complement; division truncates
// toward zero and faults where the machine would trap; and comparisons are
// signed, producing 1 or 0.
func Eval(e Node) (int64, error) {
	switch e := e.(type) {
	case *Number:
		return Immediate(e.Value), nil
	case *Binary:
		lhs, err := Eval(e.Left)
		if err != nil {
			return 0, err
		}
		//
		rhs, err := Eval(e.Right)
		if err != nil {
			return 0, err
		}
		//
		return Apply(e.Operator, lhs, rhs)
	default:
		panic("unknown expression encountered")
	}
}

// Immediate determines the 64-bit value obtained when pushing a given literal
// as a 32-bit immediate.
func Immediate(value uint32) int64 {
	return int64(int32(value))
}

// Apply a given operator to a pair of 64-bit operands.
func Apply(op Op, lhs int64, rhs int64) (int64, error) {
	switch op {
	case ADD:
		return lhs + rhs, nil
	case SUB:
		return lhs - rhs, nil
	case MUL:
		return lhs * rhs, nil
	case DIV:
		if rhs == 0 {
			return 0, ErrDivideByZero
		} else if lhs == math.MinInt64 && rhs == -1 {
			return 0, ErrDivideOverflow
		}
		//
		return lhs / rhs, nil
	case EQ:
		return boolean(lhs == rhs), nil
	case NEQ:
		return boolean(lhs != rhs), nil
	case LT:
		return boolean(lhs < rhs), nil
	case LTEQ:
		return boolean(lhs <= rhs), nil
	default:
		panic("unknown operator encountered")
	}
}

func boolean(b bool) int64 {
	if b {
		return 1
	}
	//
	return 0
}
