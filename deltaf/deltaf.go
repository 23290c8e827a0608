// SPDX-License-Identifier: MIT

package deltaf

import (
	"math"

	"github.com/katalvlaran/fesdiff/fes"
)

// Compute reduces one FES table to its free-energy difference ΔF_AB.
//
// Stage 1 (Validate): t non-nil, options valid.
// Stage 2 (Normalize): subtract min(FES); empty tables skip to the fallback.
// Stage 3 (Accumulate): partition rows A-then-B, sum exp(-β·F).
// Stage 4 (Finalize): log-ratio, or the 0 sentinel when a sum is zero.
//
// Errors:
//   - ErrNilTable, ErrBadKBT, ErrBadInterval.
//
// Complexity: O(n) time, O(n) memory.
func Compute(t *fes.Table, opts Options) (Result, error) {
	if t == nil {
		return Result{}, ErrNilTable
	}
	if err := ValidateOptions(opts); err != nil {
		return Result{}, err
	}

	res := Result{Rows: t.Len()}
	if res.Rows == 0 {
		res.Fallback = true
		return res, nil
	}

	minFES, err := t.MinFES()
	if err != nil {
		return Result{}, err
	}
	res.MinFES = minFES

	shifted := t.Shifted()
	cv, fe := shifted.CV(), shifted.FES()
	beta := opts.Beta()
	for k := range cv {
		switch {
		case opts.StateA.Contains(cv[k]):
			res.SumA += math.Exp(-beta * fe[k])
			res.CountA++
		case opts.StateB.Contains(cv[k]):
			res.SumB += math.Exp(-beta * fe[k])
			res.CountB++
		default:
			res.Excluded++
		}
	}

	res.DeltaF, res.Fallback = Difference(res.SumA, res.SumB, opts.KBT)
	return res, nil
}

// Difference returns -kBT·ln(sumA/sumB) when both sums are positive;
// otherwise (0, true).
func Difference(sumA, sumB, kbt float64) (float64, bool) {
	if sumA > 0.0 && sumB > 0.0 {
		return -kbt * math.Log(sumA/sumB), false
	}
	return 0.0, true
}
