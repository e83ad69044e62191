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
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"github.com/consensys/bavard"
)

const copyrightHolder = "Consensys Software Inc."

// Location of the test data, relative to this directory.
const testDir = "../../testdata"

// Location of the end-to-end test package, relative to this directory.
const testPkgDir = "../../pkg/test"

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "arithc")
	// Determine the valid tests
	tests, err := findTests(filepath.Join(testDir, "valid"), ".expr")
	assertNoError(err, "reading valid tests")
	//
	cfg := testConfig{Dir: "valid", Tests: tests}
	//
	assertNoError(bgen.Generate(cfg, "test", "templates",
		bavard.Entry{
			File:      filepath.Join(testPkgDir, "valid_gen_test.go"),
			Templates: []string{"valid.test.go.tmpl"},
		},
	), "generating valid tests")
	// run gofmt on the generated file
	runCmd("gofmt", "-w", filepath.Join(testPkgDir, "valid_gen_test.go"))
}

type testConfig struct {
	// Directory (within testdata) holding the tests.
	Dir   string
	Tests []testSpec
}

type testSpec struct {
	// Name of the test file (without extension).
	Name string
	// Suffix of the generated test function.
	Func string
}

// Find all tests in a given directory with a given extension, sorted by name.
func findTests(dir string, ext string) ([]testSpec, error) {
	var tests []testSpec
	//
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	//
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ext {
			continue
		}
		//
		name := strings.TrimSuffix(entry.Name(), ext)
		tests = append(tests, testSpec{name, funcName(name)})
	}
	//
	slices.SortFunc(tests, func(l, r testSpec) int {
		return strings.Compare(l.Name, r.Name)
	})
	//
	return tests, nil
}

// Convert a test name such as "compare_01" into the function suffix
// "Compare_01".
func funcName(name string) string {
	if name == "" {
		return name
	}
	//
	return strings.ToUpper(name[:1]) + name[1:]
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run(), "")
}

func assertNoError(err error, contextAndArgs ...any) {
	if err != nil {
		msg := err.Error()

		if len(contextAndArgs) > 0 {
			allArgs := append(slices.Clone(contextAndArgs[1:]), err)
			msg = fmt.Sprintf(contextAndArgs[0].(string)+": %v", allArgs...)
		}

		fmt.Println(msg)
		os.Exit(1)
	}
}
