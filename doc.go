// SPDX-License-Identifier: MIT

// Package fesdiff computes free energy differences between two collective
// variable (CV) states from a series of free energy surface files.
//
// 🚀 What is fesdiff?
//
//	A small toolkit around one reduction, applied to fes_0.dat … fes_<N-1>.dat:
//		• Loading: whitespace tables of (CV, FES, extra...) rows, # comments
//		• Reduction: shift FES to its minimum, Boltzmann-sum rows inside
//		  states A and B, ΔF = -kBT·ln(SumA/SumB)
//		• Sweep: ordered per-file driver, sequential or on a bounded pool
//		• Binary: layered config, klog logging, Prometheus textfile metrics
//
// ✨ Guarantees
//
//   - Deterministic – same input, bit-identical ΔF
//   - Total – an empty state or empty file yields ΔF = 0.0, never NaN
//   - Ordered – output lines follow the file index, whatever the worker count
//
// Packages:
//
//	fes/             — Table and the .dat reader
//	deltaf/          — Options, Interval, Compute, Difference
//	sweep/           — Runner over the numbered file series
//	internal/config  — Defaults → YAML → FESDIFF_* env → flags, Validate
//	internal/diag    — logging, error classes and exit codes, metrics
//	internal/report  — "<index> <value>" line rendering
//	cmd/fesdiff      — the command-line tool
//
// Quick example:
//
//	tbl, _ := fes.ReadFile("fes_0.dat")
//	res, _ := deltaf.Compute(tbl, deltaf.DefaultOptions())
//	fmt.Println(res.DeltaF)
package fesdiff
