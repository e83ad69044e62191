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
	"os"

	"golang.org/x/term"
)

// Painter decorates text with ANSI escapes, but only when writing to a
// terminal.  Otherwise, text is left untouched.
type Painter struct {
	enabled bool
}

// NewPainter constructs a painter for a given output file, which is enabled
// only if that file is a terminal.
func NewPainter(file *os.File) Painter {
	return Painter{term.IsTerminal(int(file.Fd()))}
}

// Enabled determines whether or not this painter actually decorates text.
func (p Painter) Enabled() bool {
	return p.enabled
}

// Paint wraps some text in a given escape, followed by a reset.
func (p Painter) Paint(escape AnsiEscape, text string) string {
	if !p.enabled || text == "" {
		return text
	}
	//
	return escape.Build() + text + ResetAnsiEscape().Build()
}
