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
package source

// File is a named body of source text, such as a file read from disk or an
// expression given on the command line.  Contents are held as runes, so that
// spans index characters rather than bytes.
type File struct {
	filename string
	contents []rune
}

// NewSourceFile constructs a source file from its (UTF-8 encoded) bytes.
func NewSourceFile(filename string, bytes []byte) *File {
	return &File{filename, []rune(string(bytes))}
}

// Filename returns the name of this source file.
func (s *File) Filename() string {
	return s.filename
}

// Contents returns the characters of this source file.
func (s *File) Contents() []rune {
	return s.contents
}

// Text returns the characters covered by a given span of this file.
func (s *File) Text(span Span) string {
	return string(s.contents[span.start:span.end])
}

// SyntaxError constructs an error over a given span of this file.
func (s *File) SyntaxError(span Span, msg string) *SyntaxError {
	return &SyntaxError{s, span, msg}
}

// Lines splits this file into its physical lines, excluding their terminating
// newlines.  There is always at least one line and, when a file ends with a
// newline, the last line is empty.
func (s *File) Lines() []Line {
	var (
		lines []Line
		start int
	)
	//
	for i, c := range s.contents {
		if c == '\n' {
			lines = append(lines, Line{s.contents, Span{start, i}, len(lines) + 1})
			start = i + 1
		}
	}
	//
	return append(lines, Line{s.contents, Span{start, len(s.contents)}, len(lines) + 1})
}

// FindFirstEnclosingLine determines the line containing the start of a given
// span.  A span starting beyond the end of the file (or at the very end)
// belongs to the last line.  Observe the line need not enclose the whole span,
// since spans can cross lines.
func (s *File) FindFirstEnclosingLine(span Span) Line {
	lines := s.Lines()
	//
	for _, line := range lines {
		if span.start <= line.span.end {
			return line
		}
	}
	//
	return lines[len(lines)-1]
}

// Line is a single physical line of a source file.
type Line struct {
	text   []rune
	span   Span
	number int
}

// String returns the text of this line.
func (p *Line) String() string {
	return string(p.text[p.span.start:p.span.end])
}

// Number returns the line number, counting from 1.
func (p *Line) Number() int {
	return p.number
}

// Start returns the index within the file of this line's first character.
func (p *Line) Start() int {
	return p.span.start
}

// Length returns the number of characters in this line.
func (p *Line) Length() int {
	return p.span.Length()
}
