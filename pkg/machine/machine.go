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
	"math"
	"math/big"

	"github.com/consensys/go-arithc/pkg/util/collection/stack"
)

// RETURN_ADDRESS is the value pushed by the (notional) caller of the entry
// point, which is popped by the final "ret".
const RETURN_ADDRESS int64 = -1

// Config determines the resource limits of a machine.
type Config struct {
	// MaxSteps is the maximum number of instructions executed before faulting
	// (or 0 for no limit).
	MaxSteps uint
	// StackLimit is the maximum number of values on the stack (or 0 for no
	// limit).
	StackLimit uint
}

// DefaultConfig returns the default resource limits.
func DefaultConfig() Config {
	return Config{MaxSteps: 1 << 20, StackLimit: 1 << 16}
}

// Machine is a simple x86-64 stack machine, capable of executing the
// instructions emitted by the code generator.  It has three general purpose
// registers (rax, rdi and rdx), a flags register written by "cmp" and a stack
// of 64-bit values.
type Machine struct {
	program *Program
	config  Config
	// General purpose registers (rax, rdi, rdx)
	registers [3]int64
	// Operands of the most recent comparison.
	flags [2]int64
	// Value stack
	stack *stack.Stack[int64]
	// Program counter
	pc uint
	// Number of instructions executed so far.
	steps uint
	// Indicates whether or not the entry point has returned.
	halted bool
}

// New constructs a machine ready to execute a given program from its entry
// point.
func New(program *Program, config Config) *Machine {
	m := &Machine{program: program, config: config, stack: stack.NewBoundedStack[int64](config.StackLimit)}
	// Simulate the call to the entry point
	m.stack.Push(RETURN_ADDRESS)
	m.pc = program.EntryPoint()
	//
	return m
}

// Run the machine until the entry point returns, producing the value of rax
// at that point, or a fault.
func (p *Machine) Run() (int64, error) {
	for !p.halted {
		if err := p.Step(); err != nil {
			return 0, err
		}
	}
	//
	return p.Register(RAX), nil
}

// Halted determines whether or not the entry point has returned.
func (p *Machine) Halted() bool {
	return p.halted
}

// Steps returns the number of instructions executed so far.
func (p *Machine) Steps() uint {
	return p.steps
}

// Depth returns the number of values currently on the stack (including the
// return address).
func (p *Machine) Depth() uint {
	return p.stack.Len()
}

// Register returns the current value of a given register.
func (p *Machine) Register(reg Register) int64 {
	if reg == AL {
		return p.registers[RAX] & 0xff
	}
	//
	return p.registers[reg]
}

// Step executes exactly one instruction.
func (p *Machine) Step() error {
	if p.halted {
		return nil
	} else if p.pc >= uint(len(p.program.Code)) {
		return &Fault{END_OF_CODE, p.pc, -1, ""}
	} else if p.config.MaxSteps != 0 && p.steps >= p.config.MaxSteps {
		return p.fault(STEP_LIMIT)
	}
	//
	var (
		insn = &p.program.Code[p.pc]
		args = insn.Operands
	)
	//
	switch insn.Opcode {
	case PUSH:
		if !p.stack.Push(p.read(args[0])) {
			return p.fault(STACK_OVERFLOW)
		}
	case POP:
		value, ok := p.stack.Pop()
		//
		if !ok {
			return p.fault(STACK_UNDERFLOW)
		}
		//
		p.write(args[0].Register, value)
	case ADD:
		p.write(args[0].Register, p.read(args[0])+p.read(args[1]))
	case SUB:
		p.write(args[0].Register, p.read(args[0])-p.read(args[1]))
	case IMUL:
		p.write(args[0].Register, p.read(args[0])*p.read(args[1]))
	case CQO:
		p.registers[RDX] = p.registers[RAX] >> 63
	case IDIV:
		quotient, remainder, ok := divide(p.registers[RDX], p.registers[RAX], p.read(args[0]))
		//
		if !ok {
			return p.fault(DIVIDE_ERROR)
		}
		//
		p.registers[RAX], p.registers[RDX] = quotient, remainder
	case CMP:
		p.flags = [2]int64{p.read(args[0]), p.read(args[1])}
	case SETE:
		p.setByte(p.flags[0] == p.flags[1])
	case SETNE:
		p.setByte(p.flags[0] != p.flags[1])
	case SETL:
		p.setByte(p.flags[0] < p.flags[1])
	case SETLE:
		p.setByte(p.flags[0] <= p.flags[1])
	case MOVZB:
		p.write(args[0].Register, p.read(args[1]))
	case RET:
		if p.stack.IsEmpty() {
			return p.fault(STACK_UNDERFLOW)
		} else if p.stack.Len() != 1 || p.stack.Peek(0) != RETURN_ADDRESS {
			return p.fault(BAD_RETURN)
		}
		//
		p.stack.Pop()
		//
		p.halted = true
	default:
		panic("unknown instruction encountered")
	}
	//
	p.pc++
	p.steps++
	//
	return nil
}

func (p *Machine) read(operand Operand) int64 {
	if operand.IsImmediate {
		return operand.Immediate
	}
	//
	return p.Register(operand.Register)
}

func (p *Machine) write(reg Register, value int64) {
	if reg == AL {
		p.registers[RAX] = (p.registers[RAX] &^ 0xff) | (value & 0xff)
	} else {
		p.registers[reg] = value
	}
}

// Set the byte register (al) to 1 or 0.
func (p *Machine) setByte(flag bool) {
	if flag {
		p.write(AL, 1)
	} else {
		p.write(AL, 0)
	}
}

func (p *Machine) fault(kind FaultKind) *Fault {
	insn := &p.program.Code[p.pc]
	return &Fault{kind, p.pc, insn.Line, insn.String()}
}

// Divide the 128-bit value hi:lo by a given divisor, producing the quotient and
// remainder (truncating toward zero).  This fails if the divisor is zero, or
// the quotient does not fit into 64 bits.
func divide(hi int64, lo int64, divisor int64) (int64, int64, bool) {
	if divisor == 0 {
		return 0, 0, false
	} else if hi == lo>>63 {
		// Dividend fits in 64 bits
		if lo == math.MinInt64 && divisor == -1 {
			return 0, 0, false
		}
		//
		return lo / divisor, lo % divisor, true
	}
	// General case
	var (
		dividend, quotient, remainder big.Int
		low                           big.Int
	)
	//
	dividend.Lsh(big.NewInt(hi), 64)
	dividend.Add(&dividend, low.SetUint64(uint64(lo)))
	quotient.QuoRem(&dividend, big.NewInt(divisor), &remainder)
	//
	if !quotient.IsInt64() {
		return 0, 0, false
	}
	//
	return quotient.Int64(), remainder.Int64(), true
}
