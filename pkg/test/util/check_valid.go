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
package util

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/consensys/go-arithc/pkg/compiler"
	"github.com/consensys/go-arithc/pkg/compiler/codegen"
	"github.com/consensys/go-arithc/pkg/compiler/expr"
	"github.com/consensys/go-arithc/pkg/machine"
	"github.com/consensys/go-arithc/pkg/util/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDir determines the (relative) location of the test directory.  That is
// where the expression files (expr), their expected assembly (s) and the
// randomly generated corpus are found.
const TestDir = "../../testdata"

// SOURCE_EXT is the extension of expression files.
const SOURCE_EXT = "expr"

// ASSEMBLY_EXT is the extension of expected assembly files.
const ASSEMBLY_EXT = "s"

// CheckValid checks that a given expression file compiles, and that executing
// the generated code produces the value given by its ";;value:N" attribute.
// This is also checked against the reference evaluator and, where an assembly
// file of the same name exists, the generated code must match it exactly.
func CheckValid(t *testing.T, test string) {
	var filename = fmt.Sprintf("%s/%s.%s", TestDir, test, SOURCE_EXT)
	// Enable testing each file in parallel
	t.Parallel()
	//
	srcfile := readSourceFile(t, filename)
	// Extract expected value
	values, errs := ExtractAttributes(srcfile, extractValue)
	if len(errs) > 0 {
		t.Fatal(errors.Join(errs...))
	} else if len(values) != 1 {
		t.Fatalf("%s should have exactly one value attribute (found %d)", filename, len(values))
	}
	// Compile source file
	compilation, serrs := compiler.Compile(*srcfile)
	if len(serrs) > 0 {
		t.Fatalf("%s failed to compile: %s", filename, errorToString(serrs[0]))
	}
	// Check reference evaluation
	expected := values[0]
	actual, err := expr.Eval(compilation.Root)
	require.NoError(t, err, filename)
	assert.Equal(t, expected, actual, "%s evaluated incorrectly", filename)
	// Check execution
	actual, err = machine.Execute(compilation.Root, codegen.DefaultConfig(), machine.DefaultConfig())
	require.NoError(t, err, filename)
	assert.Equal(t, expected, actual, "%s executed incorrectly", filename)
	// Check rendering is re-parseable
	reparsed, serrs := compiler.CompileString(filename, compilation.Root.String())
	require.Empty(t, serrs, filename)
	assert.True(t, compilation.Root.Equals(reparsed.Root), "%s rendered as %s", filename, compilation.Root.String())
	// Check generated assembly (if applicable)
	checkAssembly(t, test, compilation.Root)
}

// Check the generated assembly against the expected assembly file, provided
// one exists.
func checkAssembly(t *testing.T, test string, root expr.Node) {
	var (
		filename = fmt.Sprintf("%s/%s.%s", TestDir, test, ASSEMBLY_EXT)
		actual   strings.Builder
	)
	//
	bytes, err := os.ReadFile(filename)
	//
	if errors.Is(err, os.ErrNotExist) {
		return
	}
	//
	require.NoError(t, err)
	require.NoError(t, codegen.Write(&actual, root, codegen.DefaultConfig()))
	assert.Equal(t, string(bytes), actual.String(), "%s does not match", filename)
}

func readSourceFile(t *testing.T, filename string) *source.File {
	// Read expression file
	bytes, err := os.ReadFile(filename)
	// Check test file read ok
	if err != nil {
		t.Fatal(err)
	}
	// Package up as source file
	return source.NewSourceFile(filename, bytes)
}
