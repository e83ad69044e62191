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
package machine

import (
	"fmt"
	"strings"
)

const (
	// PUSH pushes a register or (sign-extended 32-bit) immediate.
	PUSH Opcode = iota
	// POP pops the top of the stack into a register.
	POP
	// ADD computes dst := dst + src.
	ADD
	// SUB computes dst := dst - src.
	SUB
	// IMUL computes dst := dst * src (signed, truncated to 64 bits).
	IMUL
	// CQO sign extends rax into rdx:rax.
	CQO
	// IDIV divides rdx:rax by src, with quotient in rax and remainder in rdx.
	IDIV
	// CMP compares dst against src, setting the flags.
	CMP
	// SETE sets a byte register to 1 if the last comparison was equal.
	SETE
	// SETNE sets a byte register to 1 if the last comparison was not equal.
	SETNE
	// SETL sets a byte register to 1 if the last comparison was (signed) less.
	SETL
	// SETLE sets a byte register to 1 if the last comparison was (signed) less
	// or equal.
	SETLE
	// MOVZB zero extends a byte register into a full register.
	MOVZB
	// RET returns to the caller.
	RET
)

// Opcode identifies the operation performed by an instruction.
type Opcode uint8

var mnemonics = []string{"push", "pop", "add", "sub", "imul", "cqo", "idiv", "cmp", "sete", "setne", "setl", "setle",
	"movzb", "ret"}

func (op Opcode) String() string {
	return mnemonics[op]
}

const (
	// RAX is the accumulator, and holds the return value.
	RAX Register = iota
	// RDI holds the right-hand operand of binary operations.
	RDI
	// RDX holds the upper half of the dividend, and the remainder.
	RDX
	// AL is the lowest byte of RAX.
	AL
)

// Register identifies a machine register.
type Register uint8

var registers = []string{"rax", "rdi", "rdx", "al"}

func (r Register) String() string {
	return registers[r]
}

// Operand is either a register or an immediate value.
type Operand struct {
	// Register being accessed (unless this is an immediate).
	Register Register
	// Immediate value (if applicable).
	Immediate int64
	// Indicates whether or not this is an immediate.
	IsImmediate bool
}

func (p Operand) String() string {
	if p.IsImmediate {
		return fmt.Sprintf("%d", p.Immediate)
	}
	//
	return p.Register.String()
}

// Instruction represents a single machine instruction, along with the line of
// the assembly it originated from.
type Instruction struct {
	Opcode   Opcode
	Operands []Operand
	// Index of the line (counting from 0) in the assembly text.
	Line int
}

func (p *Instruction) String() string {
	var builder strings.Builder
	//
	builder.WriteString(p.Opcode.String())
	//
	for i, o := range p.Operands {
		if i == 0 {
			builder.WriteString(" ")
		} else {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(o.String())
	}
	//
	return builder.String()
}
