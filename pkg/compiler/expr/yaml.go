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

// MarshalYAML encodes a literal as a plain integer.
func (p *Number) MarshalYAML() (any, error) {
	return p.Value, nil
}

// MarshalYAML encodes a binary expression as a single-entry mapping from the
// operator name to its (ordered) operands, for example:
//
//	add:
//	  - 1
//	  - mul:
//	      - 2
//	      - 3
func (p *Binary) MarshalYAML() (any, error) {
	return map[string][]Node{
		p.Operator.Name(): {p.Left, p.Right},
	}, nil
}
