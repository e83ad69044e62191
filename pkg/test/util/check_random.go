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
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/consensys/go-arithc/pkg/compiler"
	"github.com/consensys/go-arithc/pkg/compiler/codegen"
	"github.com/consensys/go-arithc/pkg/machine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RandomCase is a single randomly generated expression, along with its
// expected value.
type RandomCase struct {
	Line  int
	Value int64
	Text  string
}

// ReadRandomCases reads a corpus of randomly generated expressions, with one
// per line given as an expected value and expression separated by a tab.
func ReadRandomCases(filename string) ([]RandomCase, error) {
	var cases []RandomCase
	//
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	//
	defer file.Close()
	//
	scanner := bufio.NewScanner(file)
	//
	for lineno := 1; scanner.Scan(); lineno++ {
		line := scanner.Text()
		//
		if strings.TrimSpace(line) == "" {
			continue
		}
		//
		value, text, found := strings.Cut(line, "\t")
		if !found {
			return nil, fmt.Errorf("%s:%d: missing tab separator", filename, lineno)
		}
		//
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: invalid value \"%s\"", filename, lineno, value)
		}
		//
		cases = append(cases, RandomCase{lineno, n, text})
	}
	//
	return cases, scanner.Err()
}

// CheckRandom checks every expression in a randomly generated corpus compiles
// and executes to produce its expected value.
func CheckRandom(t *testing.T, test string) {
	var filename = fmt.Sprintf("%s/%s", TestDir, test)
	//
	cases, err := ReadRandomCases(filename)
	require.NoError(t, err)
	require.NotEmpty(t, cases, filename)
	//
	for _, c := range cases {
		name := fmt.Sprintf("%s:%d", filename, c.Line)
		//
		compilation, errs := compiler.CompileString(name, c.Text)
		if len(errs) > 0 {
			t.Fatalf("%s failed to compile: %s", name, errorToString(errs[0]))
		}
		//
		actual, err := machine.Execute(compilation.Root, codegen.DefaultConfig(), machine.DefaultConfig())
		require.NoError(t, err, name)
		assert.Equal(t, c.Value, actual, "%s: %s", name, c.Text)
	}
}
