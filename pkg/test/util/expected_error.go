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

// Extract an expected error from a line of the form ";;error:L:S-E:msg", where
// L is the line number and S-E the (exclusive) column range, both counting
// from 1.
func extractSyntaxError(lineno int, lines []source.Line, srcfile *source.File) (bool, source.SyntaxError, error) {
	var contents = strings.TrimSpace(lines[lineno].String())
	//
	if !strings.HasPrefix(contents, ";;error:") {
		return false, source.SyntaxError{}, nil
	}
	//
	line, start, end, msg, err := parseExpectedError(contents)
	if err != nil {
		return true, source.SyntaxError{}, err
	}
	//
	span, err := determineFileSpan(line, start, end, lines)
	if err != nil {
		return true, source.SyntaxError{}, err
	}
	//
	return true, *srcfile.SyntaxError(span, msg), nil
}

func parseExpectedError(contents string) (line, start, end int, msg string, err error) {
	var splits = strings.SplitN(contents, ":", 4)
	//
	if len(splits) < 4 {
		return 0, 0, 0, "", fmt.Errorf("malformed expected error \"%s\", should be e.g. \";;error:1:2-3:msg\"", contents)
	} else if line, err = strconv.Atoi(splits[1]); err != nil || line < 1 {
		return 0, 0, 0, "", fmt.Errorf("invalid line \"%s\" (lines numbered from 1)", splits[1])
	}
	//
	from, to, found := strings.Cut(splits[2], "-")
	//
	if !found {
		return 0, 0, 0, "", fmt.Errorf("invalid span \"%s\" (malformed, should be X-Y)", splits[2])
	} else if start, err = strconv.Atoi(from); err != nil || start < 1 {
		return 0, 0, 0, "", fmt.Errorf("invalid span \"%s\" (columns numbered from 1)", splits[2])
	} else if end, err = strconv.Atoi(to); err != nil {
		return 0, 0, 0, "", fmt.Errorf("invalid span \"%s\" (%s)", splits[2], err.Error())
	}
	//
	return line, start, end, splits[3], nil
}

// Determine the span within the file that a given line and column range
// corresponds to.  Errors at the end of input have a zero-width span just
// beyond the last character of the line.
func determineFileSpan(lineno, start, end int, lines []source.Line) (source.Span, error) {
	if lineno > len(lines) {
		return source.Span{}, fmt.Errorf("invalid span \"%d:%d-%d\" (non-existent line)", lineno, start, end)
	}
	//
	line := lines[lineno-1]
	// Columns are numbered from 1
	start, end = start-1, end-1
	//
	if start > line.Length() || end > line.Length() || end < start {
		return source.Span{}, fmt.Errorf("invalid span \"%d:%d-%d\" (outside of line)", lineno, start+1, end+1)
	}
	//
	return source.NewSpan(line.Start()+start, line.Start()+end), nil
}
