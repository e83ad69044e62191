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

import "strconv"

// Number represents an integer literal within an expression.
type Number struct {
	Value uint32
}

// NewNumber constructs an expression representing a literal value.
func NewNumber(value uint32) Node {
	return &Number{value}
}

// Equals implementation for the Node interface.
func (p *Number) Equals(e Node) bool {
	if e, ok := e.(*Number); ok {
		return p.Value == e.Value
	}
	//
	return false
}

func (p *Number) String() string {
	return strconv.FormatUint(uint64(p.Value), 10)
}

func (p *Number) node() {}
