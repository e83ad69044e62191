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

import "fmt"

const (
	// ADD indicates addition
	ADD Op = 0
	// SUB indicates subtraction
	SUB Op = 1
	// MUL indicates (signed) multiplication
	MUL Op = 2
	// DIV indicates (signed) division, truncating toward zero.
	DIV Op = 3
	// EQ indicates an equality comparison
	EQ Op = 4
	// NEQ indicates a non-equality comparison
	NEQ Op = 5
	// LT indicates a (signed) less-than comparison
	LT Op = 6
	// LTEQ indicates a (signed) less-than-or-equals comparison
	LTEQ Op = 7
)

// Op identifies the operator of a binary expression.  There are no
// greater-than operators: "a > b" is represented as "b < a", and "a >= b" as
// "b <= a".
type Op uint8

// Symbol returns the source syntax of this operator.
func (op Op) Symbol() string {
	switch op {
	case ADD:
		return "+"
	case SUB:
		return "-"
	case MUL:
		return "*"
	case DIV:
		return "/"
	case EQ:
		return "=="
	case NEQ:
		return "!="
	case LT:
		return "<"
	case LTEQ:
		return "<="
	default:
		panic("unknown operator encountered")
	}
}

// Name returns a short identifier for this operator.
func (op Op) Name() string {
	switch op {
	case ADD:
		return "add"
	case SUB:
		return "sub"
	case MUL:
		return "mul"
	case DIV:
		return "div"
	case EQ:
		return "eq"
	case NEQ:
		return "neq"
	case LT:
		return "lt"
	case LTEQ:
		return "lte"
	default:
		panic("unknown operator encountered")
	}
}

// IsComparison checks whether this operator produces a boolean (0 or 1).
func (op Op) IsComparison() bool {
	return op >= EQ
}

// Binary represents an operator applied to two operands.
type Binary struct {
	// Operator being applied
	Operator Op
	// Left-hand side
	Left Node
	// Right-hand side
	Right Node
}

// NewBinary constructs a binary expression for a given operator.
func NewBinary(op Op, lhs Node, rhs Node) Node {
	if lhs == nil || rhs == nil {
		panic("binary expression requires two operands")
	}
	//
	return &Binary{op, lhs, rhs}
}

// NewAdd constructs an expression representing lhs + rhs.
func NewAdd(lhs Node, rhs Node) Node {
	return NewBinary(ADD, lhs, rhs)
}

// NewSub constructs an expression representing lhs - rhs.
func NewSub(lhs Node, rhs Node) Node {
	return NewBinary(SUB, lhs, rhs)
}

// NewMul constructs an expression representing lhs * rhs.
func NewMul(lhs Node, rhs Node) Node {
	return NewBinary(MUL, lhs, rhs)
}

// NewDiv constructs an expression representing lhs / rhs.
func NewDiv(lhs Node, rhs Node) Node {
	return NewBinary(DIV, lhs, rhs)
}

// NewEq constructs an expression representing lhs == rhs.
func NewEq(lhs Node, rhs Node) Node {
	return NewBinary(EQ, lhs, rhs)
}

// NewNeq constructs an expression representing lhs != rhs.
func NewNeq(lhs Node, rhs Node) Node {
	return NewBinary(NEQ, lhs, rhs)
}

// NewLt constructs an expression representing lhs < rhs.
func NewLt(lhs Node, rhs Node) Node {
	return NewBinary(LT, lhs, rhs)
}

// NewLtEq constructs an expression representing lhs <= rhs.
func NewLtEq(lhs Node, rhs Node) Node {
	return NewBinary(LTEQ, lhs, rhs)
}

// Equals implementation for the Node interface.
func (p *Binary) Equals(e Node) bool {
	if e, ok := e.(*Binary); ok {
		return p.Operator == e.Operator && p.Left.Equals(e.Left) && p.Right.Equals(e.Right)
	}
	//
	return false
}

func (p *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", p.Left.String(), p.Operator.Symbol(), p.Right.String())
}

func (p *Binary) node() {}
