// SPDX-License-Identifier: MIT

// Package sweep drives the free-energy-difference reduction over a numbered
// series of FES files (fes_0.dat, fes_1.dat, …), typically the strided output
// of a metadynamics run, to follow ΔF_AB as the simulation converges.
//
// Contract:
//   - indices 0..Total-1 are processed and emitted in strictly increasing order
//   - each file is loaded, reduced and discarded independently
//   - the first load/parse failure aborts the run; every record with a smaller
//     index has already been emitted
//
// With Options.Workers > 1 files are loaded and reduced concurrently on a
// bounded pool, but records are still emitted in index order and the
// observable output is identical to the sequential run.
//
// ⚙️ Usage:
//
//	r, err := sweep.New(sweep.DefaultOptions())
//	err = r.Run(ctx, func(rec sweep.Record) error {
//	  fmt.Println(rec.Index, rec.Result.DeltaF)
//	  return nil
//	})
package sweep
