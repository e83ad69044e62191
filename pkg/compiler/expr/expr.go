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

// Node represents an expression tree.  This is a closed set of variants: a
// node is either a *Number (a leaf) or a *Binary (an operator with exactly two
// operands).  Each node exclusively owns its children and no node is ever
// modified after construction.
type Node interface {
	// Equals checks whether two expressions are structurally identical.
	Equals(e Node) bool
	// String returns a fully parenthesised (and hence re-parseable) rendering
	// of this expression.
	String() string
	// Prevent implementations outside this package.
	node()
}

// Depth returns the height of a given expression tree, where a leaf has depth
// 1.
func Depth(e Node) uint {
	switch e := e.(type) {
	case *Number:
		return 1
	case *Binary:
		return 1 + max(Depth(e.Left), Depth(e.Right))
	default:
		panic("unknown expression encountered")
	}
}

// Size returns the total number of nodes in a given expression tree.
func Size(e Node) uint {
	switch e := e.(type) {
	case *Number:
		return 1
	case *Binary:
		return 1 + Size(e.Left) + Size(e.Right)
	default:
		panic("unknown expression encountered")
	}
}
