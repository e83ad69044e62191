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
	"bufio"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/consensys/go-arithc/pkg/cmd"
	"github.com/consensys/go-arithc/pkg/compiler/expr"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Uint64("seed", 1, "seed for the random number generator")
	rootCmd.Flags().Uint("count", 200, "number of expressions to generate")
	rootCmd.Flags().Uint("max-depth", 5, "maximum depth of generated expressions")
	rootCmd.Flags().StringP("output", "o", filepath.Join("testdata", "random.auto.txt"), "output file")
	rootCmd.Flags().BoolP("verbose", "v", false, "increase logging verbosity")
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "testgen",
	Short: "Test generation utility for arithc.",
	Long: `Generate random arithmetic expressions, along with their expected values, for
use in differential testing of the compiler against the reference evaluator.`,
	Run: func(c *cobra.Command, args []string) {
		var cfg TestGenConfig
		//
		if cmd.GetFlag(c, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		seed, err := c.Flags().GetUint64("seed")
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		cfg.rng = rand.New(rand.NewPCG(seed, seed))
		cfg.count = cmd.GetUint(c, "count")
		cfg.maxDepth = cmd.GetUint(c, "max-depth")
		// Generate and write
		cases := generateTestCases(cfg)
		//
		if err := writeTestCases(cmd.GetString(c, "output"), cases); err != nil {
			fmt.Println(err)
			os.Exit(3)
		}
	},
}

// TestGenConfig encapsulates configuration related to test generation.
type TestGenConfig struct {
	rng      *rand.Rand
	count    uint
	maxDepth uint
}

// TestCase is a generated expression along with its expected value.
type TestCase struct {
	Value int64
	Text  string
}

// Generate the requested number of test cases.  Expressions whose evaluation
// faults (e.g. division by zero) are discarded.
func generateTestCases(cfg TestGenConfig) []TestCase {
	var (
		cases   []TestCase
		skipped uint
	)
	//
	for uint(len(cases)) < cfg.count {
		e := generateExpr(cfg, 1+cfg.rng.UintN(max(1, cfg.maxDepth)))
		value, err := expr.Eval(e)
		//
		if errors.Is(err, expr.ErrDivideByZero) || errors.Is(err, expr.ErrDivideOverflow) {
			skipped++
			continue
		}
		//
		text, _ := render(cfg, e)
		cases = append(cases, TestCase{value, text})
	}
	//
	log.Debug(fmt.Sprintf("generated %d test cases (skipped %d)", len(cases), skipped))
	//
	return cases
}

var operators = []expr.Op{expr.ADD, expr.SUB, expr.MUL, expr.DIV, expr.EQ, expr.NEQ, expr.LT, expr.LTEQ}

// Generate a random expression of at most a given depth.
func generateExpr(cfg TestGenConfig, depth uint) expr.Node {
	if depth <= 1 || cfg.rng.UintN(4) == 0 {
		return expr.NewNumber(generateNumber(cfg))
	}
	//
	var (
		op  = operators[cfg.rng.IntN(len(operators))]
		lhs = generateExpr(cfg, depth-1)
		rhs = generateExpr(cfg, depth-1)
	)
	//
	return expr.NewBinary(op, lhs, rhs)
}

// Generate a random literal, which is usually small but occasionally spans the
// full unsigned 32-bit range.
func generateNumber(cfg TestGenConfig) uint32 {
	switch cfg.rng.UintN(10) {
	case 0:
		return cfg.rng.Uint32()
	case 1:
		return uint32(cfg.rng.UintN(100000))
	default:
		return uint32(cfg.rng.UintN(20))
	}
}

// Precedence levels, from loosest to tightest binding.
const (
	equalityLevel = iota
	relationalLevel
	additiveLevel
	termLevel
	unaryLevel
	primaryLevel
)

// Render an expression using as few brackets as possible, whilst randomly
// choosing between equivalent forms (e.g. "a > b" for "b < a", or "-a" for
// "0 - a").  This returns the rendering along with its precedence level.
func render(cfg TestGenConfig, e expr.Node) (string, uint) {
	switch e := e.(type) {
	case *expr.Number:
		return fmt.Sprintf("%d", e.Value), primaryLevel
	case *expr.Binary:
		if zero, ok := e.Left.(*expr.Number); ok && zero.Value == 0 && e.Operator == expr.SUB && cfg.rng.IntN(2) == 0 {
			return "-" + renderAt(cfg, e.Right, primaryLevel), unaryLevel
		}
		//
		var (
			level = precedence(e.Operator)
			op    = e.Operator.Symbol()
			lhs   = e.Left
			rhs   = e.Right
		)
		// Greater-than forms swap their operands
		if e.Operator.IsComparison() && !isEquality(e.Operator) && cfg.rng.IntN(2) == 0 {
			lhs, rhs = rhs, lhs
			//
			if e.Operator == expr.LT {
				op = ">"
			} else {
				op = ">="
			}
		}
		//
		text := fmt.Sprintf("%s%s%s%s%s", renderAt(cfg, lhs, level), space(cfg), op, space(cfg),
			renderAt(cfg, rhs, level+1))
		//
		return text, level
	default:
		panic("unknown expression encountered")
	}
}

// Render an expression which must bind at least as tightly as a given level.
func renderAt(cfg TestGenConfig, e expr.Node, level uint) string {
	text, actual := render(cfg, e)
	//
	if actual < level {
		return "(" + text + ")"
	}
	//
	return text
}

func precedence(op expr.Op) uint {
	switch op {
	case expr.EQ, expr.NEQ:
		return equalityLevel
	case expr.LT, expr.LTEQ:
		return relationalLevel
	case expr.ADD, expr.SUB:
		return additiveLevel
	default:
		return termLevel
	}
}

func isEquality(op expr.Op) bool {
	return op == expr.EQ || op == expr.NEQ
}

func space(cfg TestGenConfig) string {
	if cfg.rng.IntN(3) == 0 {
		return ""
	}
	//
	return " "
}

// Write test cases to a given file, one per line as the value and expression
// separated by a tab.
func writeTestCases(filename string, cases []TestCase) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	//
	defer file.Close()
	//
	out := bufio.NewWriter(file)
	//
	for _, c := range cases {
		if _, err := fmt.Fprintf(out, "%d\t%s\n", c.Value, c.Text); err != nil {
			return err
		}
	}
	//
	log.Info(fmt.Sprintf("wrote %d test cases to %s", len(cases), filename))
	//
	return out.Flush()
}
