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

import "fmt"

const (
	// DIVIDE_ERROR indicates division by zero, or a quotient which does not fit
	// in 64 bits (e.g. the minimum value divided by -1).
	DIVIDE_ERROR FaultKind = iota
	// STACK_UNDERFLOW indicates a pop from an empty stack.
	STACK_UNDERFLOW
	// STACK_OVERFLOW indicates the stack limit was exceeded.
	STACK_OVERFLOW
	// BAD_RETURN indicates a return to something other than the caller, which
	// arises when the stack is unbalanced at the point of return.
	BAD_RETURN
	// END_OF_CODE indicates execution ran past the last instruction.
	END_OF_CODE
	// STEP_LIMIT indicates the maximum number of steps was exceeded.
	STEP_LIMIT
)

// FaultKind identifies the reason a machine faulted.
type FaultKind uint8

func (k FaultKind) String() string {
	switch k {
	case DIVIDE_ERROR:
		return "divide error"
	case STACK_UNDERFLOW:
		return "stack underflow"
	case STACK_OVERFLOW:
		return "stack overflow"
	case BAD_RETURN:
		return "bad return address"
	case END_OF_CODE:
		return "end of code"
	case STEP_LIMIT:
		return "step limit exceeded"
	default:
		return "unknown fault"
	}
}

// Fault is raised when the machine cannot continue executing.
type Fault struct {
	Kind FaultKind
	// Program counter of the faulting instruction.
	PC uint
	// Line of assembly of the faulting instruction (counting from 0), or -1
	// if there was no such instruction.
	Line int
	// Faulting instruction, or empty if there was none.
	Insn string
}

// Error implements the error interface.
func (p *Fault) Error() string {
	if p.Insn == "" {
		return fmt.Sprintf("%s (pc %d)", p.Kind.String(), p.PC)
	}
	//
	return fmt.Sprintf("%s at line %d (%s)", p.Kind.String(), p.Line+1, p.Insn)
}
