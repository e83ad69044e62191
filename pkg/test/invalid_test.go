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
package test

import (
	"testing"

	"github.com/consensys/go-arithc/pkg/test/util"
)

// ===================================================================
// Divoverflow
// ===================================================================

func Test_Invalid_Divoverflow_01(t *testing.T) {
	checkInvalid(t, "divoverflow_01")
}

// ===================================================================
// Divzero
// ===================================================================

func Test_Invalid_Divzero_01(t *testing.T) {
	checkInvalid(t, "divzero_01")
}

func Test_Invalid_Divzero_02(t *testing.T) {
	checkInvalid(t, "divzero_02")
}

// ===================================================================
// Lexer
// ===================================================================

func Test_Invalid_Lexer_01(t *testing.T) {
	checkInvalid(t, "lexer_01")
}

func Test_Invalid_Lexer_02(t *testing.T) {
	checkInvalid(t, "lexer_02")
}

// ===================================================================
// Number
// ===================================================================

func Test_Invalid_Number_01(t *testing.T) {
	checkInvalid(t, "number_01")
}

// ===================================================================
// Operand
// ===================================================================

func Test_Invalid_Operand_01(t *testing.T) {
	checkInvalid(t, "operand_01")
}

func Test_Invalid_Operand_02(t *testing.T) {
	checkInvalid(t, "operand_02")
}

func Test_Invalid_Operand_03(t *testing.T) {
	checkInvalid(t, "operand_03")
}

func Test_Invalid_Operand_04(t *testing.T) {
	checkInvalid(t, "operand_04")
}

// ===================================================================
// Paren
// ===================================================================

func Test_Invalid_Paren_01(t *testing.T) {
	checkInvalid(t, "paren_01")
}

func Test_Invalid_Paren_02(t *testing.T) {
	checkInvalid(t, "paren_02")
}

// ===================================================================
// Trailing
// ===================================================================

func Test_Invalid_Trailing_01(t *testing.T) {
	checkInvalid(t, "trailing_01")
}

func Test_Invalid_Trailing_02(t *testing.T) {
	checkInvalid(t, "trailing_02")
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkInvalid(t *testing.T, test string) {
	util.CheckInvalid(t, "invalid/"+test)
}
