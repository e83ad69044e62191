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
	"iter"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Program is an assembled sequence of instructions with a designated entry
// point.
type Program struct {
	// Name of the global symbol used as the entry point.
	Entry string
	// Instructions making up the program.
	Code []Instruction
	// Label definitions, mapping each to its pc.
	Labels map[string]uint
}

// EntryPoint returns the pc of the program's entry point.
func (p *Program) EntryPoint() uint {
	return p.Labels[p.Entry]
}

// AssemblyError reports a line of assembly which could not be understood.
type AssemblyError struct {
	// Index of the offending line (counting from 0).
	Line int
	// Text of the offending line.
	Text string
	// Message being reported.
	Msg string
}

// Error implements the error interface.
func (p *AssemblyError) Error() string {
	return fmt.Sprintf("line %d: %s (\"%s\")", p.Line+1, p.Msg, strings.TrimSpace(p.Text))
}

// Operand shapes accepted by instructions.
const (
	reg64 = iota
	reg8
	reg64OrImm
)

// signatures gives the operand shapes for each opcode.
var signatures = [][]uint{
	PUSH:  {reg64OrImm},
	POP:   {reg64},
	ADD:   {reg64, reg64},
	SUB:   {reg64, reg64},
	IMUL:  {reg64, reg64},
	CQO:   {},
	IDIV:  {reg64},
	CMP:   {reg64, reg64},
	SETE:  {reg8},
	SETNE: {reg8},
	SETL:  {reg8},
	SETLE: {reg8},
	MOVZB: {reg64, reg8},
	RET:   {},
}

// Assemble a sequence of lines of (Intel syntax) assembly into a program.  The
// program must declare exactly one global symbol, which must be defined as a
// label and determines the entry point.
func Assemble(lines iter.Seq[string]) (*Program, error) {
	var (
		program = Program{Labels: make(map[string]uint)}
		index   = 0
		syntax  = false
	)
	//
	for line := range lines {
		var (
			text = strings.TrimSpace(line)
			err  error
		)
		//
		switch {
		case text == "" || strings.HasPrefix(text, "#"):
			// skip blank lines and comments
		case strings.HasPrefix(text, ".intel_syntax"):
			if text != ".intel_syntax noprefix" {
				err = &AssemblyError{index, line, "unsupported syntax"}
			}
			//
			syntax = true
		case strings.HasPrefix(text, ".global"):
			name := strings.TrimSpace(strings.TrimPrefix(text, ".global"))
			//
			if program.Entry != "" {
				err = &AssemblyError{index, line, "multiple global symbols"}
			} else if !isIdentifier(name) {
				err = &AssemblyError{index, line, "invalid symbol"}
			}
			//
			program.Entry = name
		case strings.HasSuffix(text, ":"):
			name := strings.TrimSuffix(text, ":")
			//
			if !isIdentifier(name) {
				err = &AssemblyError{index, line, "invalid label"}
			} else if _, ok := program.Labels[name]; ok {
				err = &AssemblyError{index, line, "duplicate label"}
			}
			//
			program.Labels[name] = uint(len(program.Code))
		case strings.HasPrefix(text, "."):
			err = &AssemblyError{index, line, "unknown directive"}
		default:
			var insn Instruction
			//
			if insn, err = assembleInstruction(index, line, text); err == nil {
				program.Code = append(program.Code, insn)
			}
		}
		//
		if err != nil {
			return nil, err
		}
		//
		index++
	}
	// Sanity checks
	if !syntax {
		return nil, &AssemblyError{0, "", "missing syntax directive"}
	} else if program.Entry == "" {
		return nil, &AssemblyError{0, "", "missing global entry point"}
	} else if _, ok := program.Labels[program.Entry]; !ok {
		return nil, &AssemblyError{0, "", fmt.Sprintf("undefined entry point \"%s\"", program.Entry)}
	}
	//
	return &program, nil
}

func assembleInstruction(index int, line, text string) (Instruction, error) {
	var (
		insn              = Instruction{Line: index}
		mnemonic, rest, _ = strings.Cut(strings.ReplaceAll(text, "\t", " "), " ")
		opcode            = slices.Index(mnemonics, mnemonic)
		args              []string
	)
	//
	if opcode < 0 {
		return insn, &AssemblyError{index, line, "unknown instruction"}
	}
	// Split operands
	if rest = strings.TrimSpace(rest); rest != "" {
		args = strings.Split(rest, ",")
	}
	//
	insn.Opcode = Opcode(opcode)
	signature := signatures[opcode]
	//
	if len(args) != len(signature) {
		msg := fmt.Sprintf("%s expects %d operand(s)", mnemonic, len(signature))
		return insn, &AssemblyError{index, line, msg}
	}
	//
	for i, arg := range args {
		operand, ok := parseOperand(strings.TrimSpace(arg), signature[i])
		//
		if !ok {
			return insn, &AssemblyError{index, line, fmt.Sprintf("invalid operand \"%s\"", strings.TrimSpace(arg))}
		}
		//
		insn.Operands = append(insn.Operands, operand)
	}
	//
	return insn, nil
}

func parseOperand(arg string, shape uint) (Operand, bool) {
	var reg = slices.Index(registers, arg)
	//
	switch {
	case reg >= 0 && Register(reg) == AL:
		return Operand{Register: AL}, shape == reg8
	case reg >= 0:
		return Operand{Register: Register(reg)}, shape == reg64 || shape == reg64OrImm
	case shape != reg64OrImm:
		return Operand{}, false
	}
	// Must be an immediate, which is encoded in 32 bits and sign extended.
	val, err := strconv.ParseInt(arg, 0, 64)
	if err != nil || val < math.MinInt32 || val > math.MaxUint32 {
		return Operand{}, false
	}
	//
	return Operand{Immediate: int64(int32(uint32(val))), IsImmediate: true}, true
}

func isIdentifier(name string) bool {
	if name == "" {
		return false
	}
	//
	for i, c := range name {
		switch {
		case c == '_' || c == '.' || c == '$':
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case i > 0 && '0' <= c && c <= '9':
		default:
			return false
		}
	}
	//
	return true
}
