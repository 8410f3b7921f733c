// Command kmapper is a terminal front-end for the kmap minimization
// engine. It accepts a truth table as a pattern string ("1010", "10X1")
// or a minterm list ("0,1,3") and prints the minimal sum-of-products
// expression, optionally with the Gray-code map layout and solution
// statistics.
//
// The command is thin glue: all semantics live in pkg/kmap.
package main

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gitrdm/gokmap/pkg/kmap"
)

var (
	visualize bool
	explain   bool
	benchmark bool
	capacity  int
)

func main() {
	cmd := &cobra.Command{
		Use:   "kmapper [truth-table]",
		Short: "Minimize a Boolean truth table into a sum-of-products expression",
		Long: `kmapper minimizes a partially-specified Boolean function given as a
truth table and prints a compact sum-of-products expression.

Input grammars:
  pattern string   "1010", "10X1"   one symbol per cell, X/x/- = don't care
  minterm list     "0,1,3"          comma-separated cell indices`,
		Example: `  kmapper "1010"
  kmapper --visualize "11110000"
  kmapper --explain "0,1,3,5"`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	cmd.Flags().BoolVarP(&visualize, "visualize", "v", false, "show the Gray-code K-map grid")
	cmd.Flags().BoolVarP(&explain, "explain", "e", false, "show term and literal statistics")
	cmd.Flags().BoolVar(&benchmark, "benchmark", false, "time the solver over canned inputs")
	cmd.Flags().IntVar(&capacity, "capacity", kmap.MaxExpressionLen, "maximum expression length in bytes")

	if err := cmd.Execute(); err != nil {
		log.WithError(err).Fatal("kmapper failed")
	}
}

func run(cmd *cobra.Command, args []string) error {
	if benchmark {
		return runBenchmark()
	}
	if len(args) == 0 {
		return cmd.Help()
	}
	input := args[0]

	if visualize {
		table, err := kmap.Parse(input)
		if err != nil {
			return err
		}
		grid, err := kmap.RenderGrid(table)
		if err != nil {
			return err
		}
		fmt.Println(grid)
		fmt.Println()
	}

	start := time.Now()
	expr, err := kmap.SolveWithCapacity(input, capacity)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("Minimal Expression: %s\n", expr)

	if explain {
		table, err := kmap.Parse(input)
		if err != nil {
			return err
		}
		sol, err := kmap.FindPrimeImplicants(table)
		if err != nil {
			return err
		}
		fmt.Printf("\nSolved in %s\n", elapsed)
		fmt.Printf("Variables: %d\n", table.NumVars)
		fmt.Printf("Required minterms: %d\n", table.MintermCount)
		fmt.Printf("Terms: %d, literals: %d\n", sol.TermCount, sol.LiteralCount)
	}
	return nil
}

// runBenchmark times the solver over a fixed set of inputs, mirroring
// the sizes a terminal user actually works with.
func runBenchmark() error {
	cases := []struct {
		name  string
		input string
	}{
		{"2 vars", "1010"},
		{"3 vars", "10110100"},
		{"4 vars", "1111000011110000"},
		{"3 vars (minterm)", "0,1,3,5"},
		{"4 vars (complex)", "0,1,2,3,8,9,10,11"},
	}

	const rounds = 100
	for _, c := range cases {
		var total, fastest, slowest time.Duration
		var expr string
		for i := 0; i < rounds; i++ {
			start := time.Now()
			result, err := kmap.Solve(c.input)
			elapsed := time.Since(start)
			if err != nil {
				return fmt.Errorf("benchmark %s: %w", c.name, err)
			}
			expr = result
			total += elapsed
			if i == 0 || elapsed < fastest {
				fastest = elapsed
			}
			if elapsed > slowest {
				slowest = elapsed
			}
		}
		fmt.Printf("%-18s | avg %-10s | min %-10s | max %-10s\n", c.name, total/rounds, fastest, slowest)
		fmt.Printf("%-18s | result: %s\n\n", "", expr)
	}
	return nil
}
