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
	"github.com/consensys/go-arithc/pkg/compiler/codegen"
	"github.com/consensys/go-arithc/pkg/compiler/expr"
)

// Execute generates the assembly for a given expression, assembles it and then
// runs it to completion.
func Execute(root expr.Node, gen codegen.Config, config Config) (int64, error) {
	program, err := Assemble(codegen.Lines(root, gen))
	//
	if err != nil {
		return 0, err
	}
	//
	return New(program, config).Run()
}
