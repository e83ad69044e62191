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

import "fmt"

// Map records, for each node of a syntax tree, the span of source text it was
// parsed from.  This allows errors discovered after parsing to be reported
// against the original text.
type Map[T comparable] struct {
	srcfile File
	spans   map[T]Span
}

// NewSourceMap constructs an empty source map over a given file.
func NewSourceMap[T comparable](srcfile File) *Map[T] {
	return &Map[T]{srcfile, make(map[T]Span)}
}

// Source returns the file on which this map operates.
func (p *Map[T]) Source() File {
	return p.srcfile
}

// Put records the span for a given node, which must not already have one.
func (p *Map[T]) Put(node T, span Span) {
	if _, ok := p.spans[node]; ok {
		panic(fmt.Sprintf("node already mapped: %v", node))
	}
	//
	p.spans[node] = span
}

// Has checks whether a given node has a recorded span.
func (p *Map[T]) Has(node T) bool {
	_, ok := p.spans[node]
	//
	return ok
}

// Get returns the recorded span for a given node, which must exist.
func (p *Map[T]) Get(node T) Span {
	span, ok := p.spans[node]
	//
	if !ok {
		panic(fmt.Sprintf("node not mapped: %v", node))
	}
	//
	return span
}

// SyntaxError constructs an error reported against the span of a given node.
func (p *Map[T]) SyntaxError(node T, msg string) *SyntaxError {
	return p.srcfile.SyntaxError(p.Get(node), msg)
}
