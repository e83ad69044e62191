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
package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Lines_01(t *testing.T) {
	srcfile := NewSourceFile("test", []byte("1 +\n2\n\n* 3"))
	lines := srcfile.Lines()
	//
	require.Len(t, lines, 4)
	assert.Equal(t, "1 +", lines[0].String())
	assert.Equal(t, "2", lines[1].String())
	assert.Equal(t, "", lines[2].String())
	assert.Equal(t, "* 3", lines[3].String())
	assert.Equal(t, 4, lines[3].Number())
	assert.Equal(t, 7, lines[3].Start())
	assert.Equal(t, 3, lines[3].Length())
}

func Test_Lines_02(t *testing.T) {
	lines := NewSourceFile("test", []byte("1\n")).Lines()
	//
	require.Len(t, lines, 2)
	assert.Equal(t, "1", lines[0].String())
	assert.Equal(t, "", lines[1].String())
}

func Test_EnclosingLine_01(t *testing.T) {
	srcfile := NewSourceFile("test", []byte("1 +\n2 * 3"))
	line := srcfile.FindFirstEnclosingLine(NewSpan(6, 7))
	//
	assert.Equal(t, 2, line.Number())
	assert.Equal(t, "2 * 3", line.String())
}

func Test_EnclosingLine_02(t *testing.T) {
	// Spans at the end of the file belong to the last line
	srcfile := NewSourceFile("test", []byte("(1 +\n2"))
	line := srcfile.FindFirstEnclosingLine(NewSpan(6, 6))
	//
	assert.Equal(t, 2, line.Number())
	assert.Equal(t, "2", line.String())
}

func Test_Text_01(t *testing.T) {
	srcfile := NewSourceFile("test", []byte("12 + 345"))
	//
	assert.Equal(t, "345", srcfile.Text(NewSpan(5, 8)))
	assert.Equal(t, "", srcfile.Text(NewSpan(8, 8)))
}

func Test_SourceMap_01(t *testing.T) {
	var (
		srcfile = NewSourceFile("test", []byte("1 + 2"))
		srcmap  = NewSourceMap[string](*srcfile)
	)
	//
	srcmap.Put("add", NewSpan(0, 5))
	//
	assert.True(t, srcmap.Has("add"))
	assert.False(t, srcmap.Has("sub"))
	assert.Equal(t, NewSpan(0, 5), srcmap.Get("add"))
	//
	err := srcmap.SyntaxError("add", "divide error")
	assert.Equal(t, "divide error", err.Message())
	assert.Equal(t, "0:5:divide error", err.Error())
	assert.Equal(t, "0-5", err.Span().String())
}

func Test_SourceMap_02(t *testing.T) {
	srcmap := NewSourceMap[string](*NewSourceFile("test", nil))
	//
	assert.Panics(t, func() { srcmap.Get("missing") })
}

func Test_Span_01(t *testing.T) {
	var (
		lhs = NewSpan(2, 5)
		rhs = NewSpan(7, 9)
	)
	//
	assert.Equal(t, NewSpan(2, 9), lhs.Join(rhs))
	assert.Equal(t, NewSpan(2, 9), rhs.Join(lhs))
	assert.Equal(t, 3, lhs.Length())
	assert.Panics(t, func() { NewSpan(3, 2) })
}
