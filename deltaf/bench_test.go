// SPDX-License-Identifier: MIT

package deltaf_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fesdiff/deltaf"
	"github.com/katalvlaran/fesdiff/fes"
)

// benchmarkCompute reduces an n-bin double-well surface on [0, 1].
func benchmarkCompute(b *testing.B, n int) {
	rows := make([]fes.Row, n)
	for i := range rows {
		s := float64(i) / float64(n-1)
		rows[i] = fes.Row{CV: s, FES: 40 * (s - 0.28) * (s - 0.28) * (s - 0.6) * (s - 0.6) * 100}
	}
	tbl := fes.NewTable(rows)
	opts := deltaf.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res, err := deltaf.Compute(tbl, opts)
		if err != nil || math.IsNaN(res.DeltaF) {
			b.Fatalf("Compute failed: %v (dF=%v)", err, res.DeltaF)
		}
	}
}

// BenchmarkCompute_Grid500 benchmarks a typical sum_hills grid.
func BenchmarkCompute_Grid500(b *testing.B) { benchmarkCompute(b, 500) }

// BenchmarkCompute_Grid50k benchmarks a fine grid.
func BenchmarkCompute_Grid50k(b *testing.B) { benchmarkCompute(b, 50000) }
