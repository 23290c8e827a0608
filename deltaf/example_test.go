// SPDX-License-Identifier: MIT

package deltaf_test

import (
	"fmt"

	"github.com/katalvlaran/fesdiff/deltaf"
	"github.com/katalvlaran/fesdiff/fes"
)

// ExampleCompute reduces a four-bin surface with the default 300 K setup:
// two bins fall in state A = [0.200, 0.359], two in state B = [0.361, 0.800].
func ExampleCompute() {
	tbl := fes.NewTable([]fes.Row{
		{CV: 0.25, FES: 0.0},
		{CV: 0.30, FES: 1.0},
		{CV: 0.50, FES: 0.0},
		{CV: 0.70, FES: 2.0},
	})

	res, err := deltaf.Compute(tbl, deltaf.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("A=%d B=%d dF=%.6f kJ/mol\n", res.CountA, res.CountB, res.DeltaF)
	// Output:
	// A=2 B=2 dF=-0.354479 kJ/mol
}

// ExampleCompute_fallback shows the zero sentinel when state B is unpopulated.
func ExampleCompute_fallback() {
	tbl := fes.NewTable([]fes.Row{{CV: 0.25, FES: 0.0}, {CV: 0.30, FES: 1.0}})

	res, _ := deltaf.Compute(tbl, deltaf.DefaultOptions())
	fmt.Println(res.DeltaF, res.Fallback)
	// Output:
	// 0 true
}
