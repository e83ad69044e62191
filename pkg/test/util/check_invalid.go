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
	"slices"
	"testing"

	"github.com/consensys/go-arithc/pkg/compiler"
	"github.com/consensys/go-arithc/pkg/compiler/codegen"
	"github.com/consensys/go-arithc/pkg/machine"
	"github.com/consensys/go-arithc/pkg/util/source"
)

// CheckInvalid checks that a given expression file either fails to compile,
// or faults when executed, with exactly the errors given by its ";;error"
// attributes.
func CheckInvalid(t *testing.T, test string) {
	var filename = fmt.Sprintf("%s/%s.%s", TestDir, test, SOURCE_EXT)
	// Enable testing each file in parallel
	t.Parallel()
	//
	srcfile := readSourceFile(t, filename)
	// Compile (and potentially execute) source file to produce errors
	actual := compileAndExecute(t, *srcfile)
	// Extract expected errors for comparison
	expected, errs := ExtractAttributes(srcfile, extractSyntaxError)
	if len(errs) > 0 {
		// Report any errors encountered parsing the attributes themselves.
		t.Fatal(errors.Join(errs...))
	}
	// Check program did not compile!
	checkExpectedErrors(t, srcfile, actual, expected)
}

// Compile a source file and, if successful, execute it.  Any fault arising is
// reported as an error against the source.
func compileAndExecute(t *testing.T, srcfile source.File) []source.SyntaxError {
	compilation, errs := compiler.Compile(srcfile)
	//
	if len(errs) > 0 {
		return errs
	}
	//
	listing := slices.Collect(codegen.Listing(compilation.Root, codegen.DefaultConfig()))
	//
	if _, _, err := machine.ExecuteListing(listing, machine.DefaultConfig()); err == nil {
		return nil
	} else if serr := machine.Diagnose(compilation.SourceMap, listing, err); serr != nil {
		return []source.SyntaxError{*serr}
	} else {
		t.Fatalf("%s failed unexpectedly: %s", srcfile.Filename(), err.Error())
	}
	//
	return nil
}

func checkExpectedErrors(t *testing.T, srcfile *source.File, actual, expected []source.SyntaxError) {
	if len(actual) == 0 {
		t.Fatalf("Error %s should not have compiled\n", srcfile.Filename())
	}
	//
	var (
		failed = false
		// Construct initial message
		msg = fmt.Sprintf("Error %s\n", srcfile.Filename())
	)
	//
	for i := range max(len(actual), len(expected)) {
		if i < len(actual) && i < len(expected) &&
			expected[i].Message() == actual[i].Message() && expected[i].Span() == actual[i].Span() {
			continue
		}
		//
		failed = true
		//
		if i < len(actual) {
			msg = fmt.Sprintf("%s unexpected error %s", msg, errorToString(actual[i]))
		}
		//
		if i < len(expected) {
			msg = fmt.Sprintf("%s   expected error %s", msg, errorToString(expected[i]))
		}
	}
	//
	if failed {
		t.Fatal(msg)
	}
}

// Convert a span into a useful human readable string.
func errorToString(err source.SyntaxError) string {
	span := err.Span()
	line := err.FirstEnclosingLine()
	lineOffset := span.Start() - line.Start()
	// Calculate length (ensures don't overflow line)
	length := min(line.Length()-lineOffset, span.Length())
	// Print error + line number
	return fmt.Sprintf("%s:%d:%d-%d %s\n", err.SourceFile().Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, err.Message())
}
