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
package termio

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Escape_01(t *testing.T) {
	assert.Equal(t, "\033[m", NewAnsiEscape().Build())
	assert.Equal(t, "\033[0m", ResetAnsiEscape().Build())
	assert.Equal(t, "\033[1;31m", BoldAnsiEscape().FgColour(RED).Build())
	assert.Equal(t, "\033[32m", NewAnsiEscape().FgColour(GREEN).Build())
}

func Test_Escape_02(t *testing.T) {
	// Escapes are values
	bold := BoldAnsiEscape()
	red := bold.FgColour(RED)
	cyan := bold.FgColour(CYAN)
	//
	assert.Equal(t, "\033[1m", bold.Build())
	assert.Equal(t, "\033[1;31m", red.Build())
	assert.Equal(t, "\033[1;36m", cyan.Build())
}

func Test_Painter_01(t *testing.T) {
	var painter Painter
	//
	assert.False(t, painter.Enabled())
	assert.Equal(t, "text", painter.Paint(BoldAnsiEscape(), "text"))
}

func Test_Painter_02(t *testing.T) {
	// Regular files are not terminals
	file, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	//
	defer file.Close()
	//
	painter := NewPainter(file)
	assert.False(t, painter.Enabled())
}

func Test_Painter_03(t *testing.T) {
	painter := Painter{enabled: true}
	//
	assert.Equal(t, "\033[32m5\033[0m", painter.Paint(NewAnsiEscape().FgColour(GREEN), "5"))
	assert.Equal(t, "", painter.Paint(BoldAnsiEscape(), ""))
}
