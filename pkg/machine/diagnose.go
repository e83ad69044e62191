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
	"errors"

	"github.com/consensys/go-arithc/pkg/compiler/codegen"
	"github.com/consensys/go-arithc/pkg/compiler/expr"
	"github.com/consensys/go-arithc/pkg/util/source"
)

// Diagnose maps a fault arising from executing a given listing back to the
// subexpression whose code raised it, producing an error against the original
// source.  This returns nil if the error is not a fault, or the fault cannot
// be attributed to any subexpression (e.g. it arose in the epilogue).
func Diagnose(srcmap *source.Map[expr.Node], listing []codegen.Line, err error) *source.SyntaxError {
	var fault *Fault
	//
	if !errors.As(err, &fault) || fault.Line < 0 || fault.Line >= len(listing) {
		return nil
	}
	//
	origin := listing[fault.Line].Origin
	//
	if origin == nil || !srcmap.Has(origin) {
		return nil
	}
	//
	return srcmap.SyntaxError(origin, fault.Kind.String())
}

// ExecuteListing assembles a given listing and runs it to completion on a
// fresh machine, returning the machine itself so its final state can be
// examined.
func ExecuteListing(listing []codegen.Line, config Config) (*Machine, int64, error) {
	lines := func(yield func(string) bool) {
		for _, line := range listing {
			if !yield(line.Text) {
				return
			}
		}
	}
	//
	program, err := Assemble(lines)
	if err != nil {
		return nil, 0, err
	}
	//
	m := New(program, config)
	value, err := m.Run()
	//
	return m, value, err
}
