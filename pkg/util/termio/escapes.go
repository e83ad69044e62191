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
package termio

import (
	"strconv"
	"strings"
)

// Colour identifies one of the standard terminal colours.
type Colour uint

const (
	// RED for errors.
	RED Colour = 1
	// GREEN for results.
	GREEN Colour = 2
	// YELLOW for warnings.
	YELLOW Colour = 3
	// CYAN for generated code.
	CYAN Colour = 6
)

// AnsiEscape represents an ANSI "select graphic rendition" escape, built up
// from zero or more codes.
type AnsiEscape struct {
	codes []uint
}

// NewAnsiEscape construct an empty escape
func NewAnsiEscape() AnsiEscape {
	return AnsiEscape{nil}
}

// ResetAnsiEscape constructs a reset term.
func ResetAnsiEscape() AnsiEscape {
	return AnsiEscape{[]uint{0}}
}

// BoldAnsiEscape constructs a bold term.
func BoldAnsiEscape() AnsiEscape {
	return AnsiEscape{[]uint{1}}
}

// FgColour sets the foreground colour
func (p AnsiEscape) FgColour(col Colour) AnsiEscape {
	codes := append(append([]uint(nil), p.codes...), 30+uint(col))
	//
	return AnsiEscape{codes}
}

// Build constructs the final escape
func (p AnsiEscape) Build() string {
	var builder strings.Builder
	//
	builder.WriteString("\033[")
	//
	for i, code := range p.codes {
		if i != 0 {
			builder.WriteString(";")
		}
		//
		builder.WriteString(strconv.FormatUint(uint64(code), 10))
	}
	//
	builder.WriteString("m")
	//
	return builder.String()
}
