// SPDX-License-Identifier: MIT

// Package fes loads and normalizes one-dimensional free-energy-surface tables.
//
// 🚀 What is an FES table?
//
//	Enhanced-sampling codes (PLUMED sum_hills, metadynamics reweighting, …)
//	write the free energy F(s) tabulated over a collective variable s as a
//	plain text table:
//
//	  #! FIELDS cv file.free der_cv
//	  0.200   12.31   -4.02
//	  0.205   11.97   -3.88
//	  ...
//
//	Column 0 is the CV value, column 1 the free energy. Any further columns
//	are accepted and ignored.
//
// ✨ Key features:
//   - whitespace-delimited parsing, comment lines and trailing comments skipped
//   - strict column count (ErrColumnCount); nan/inf kept unless WithRejectNonFinite
//   - row-major two-column storage, read-only after construction
//   - shift-to-zero normalization: Shifted() returns F(s) - min F
//
// ⚙️ Usage:
//
//	t, err := fes.ReadFile("fes_0.dat")
//	if err != nil {
//	  // *fs.PathError, ErrParse, ErrColumnCount or ErrLineTooLong
//	}
//	norm := t.Shifted() // min(norm.FES()) == 0 when the minimum is finite
//
// Performance:
//
//   - Read:    O(n) time, O(n) memory
//   - Shifted: O(n) time, O(n) memory (new table; receiver untouched)
package fes
