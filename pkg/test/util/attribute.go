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
	"fmt"
	"strconv"
	"strings"

	"github.com/consensys/go-arithc/pkg/util/source"
)

// Attribute provides a generic mechanism for extract attributes from the
// beginning of a file.  Each attribute parses a given line, indicating whether
// or not it matched, and producing an item and, potentially, an error.
type Attribute[T any] func(int, []source.Line, *source.File) (bool, T, error)

// ExtractAttributes extracts any matching attributes at the beginning of a
// source file.  Scanning stops at the first line which no attribute matches.
func ExtractAttributes[T any](srcfile *source.File, attributes ...Attribute[T]) ([]T, []error) {
	var (
		lines = srcfile.Lines()
		// Items extracted so far
		items []T
		//
		errors []error
		//
		matched = true
	)
	// scan file line-by-line until no more attributes found
	for i := 0; i < len(lines) && matched; i++ {
		matched = false
		//
		for _, attribute := range attributes {
			m, item, err := attribute(i, lines, srcfile)
			//
			if err != nil {
				errors = append(errors, err)
			} else if m {
				items = append(items, item)
			}
			//
			matched = matched || m
		}
	}
	//
	return items, errors
}

// Extract the expected value from a line of the form ";;value:N", where N is a
// signed 64-bit integer.
func extractValue(lineno int, lines []source.Line, _ *source.File) (bool, int64, error) {
	var (
		line     = lines[lineno]
		contents = strings.TrimSpace(line.String())
	)
	//
	if !strings.HasPrefix(contents, ";;value:") {
		return false, 0, nil
	}
	//
	value, err := strconv.ParseInt(strings.TrimPrefix(contents, ";;value:"), 10, 64)
	//
	if err != nil {
		return true, 0, fmt.Errorf("malformed expected value \"%s\", should be e.g. \";;value:42\"", contents)
	}
	//
	return true, value, nil
}
