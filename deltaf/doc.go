// SPDX-License-Identifier: MIT

// Package deltaf computes the free-energy difference between two regions of
// a one-dimensional collective-variable space from a free-energy surface.
//
// 🚀 What is ΔF_AB?
//
//	Given F(s) tabulated on a grid, the population of a region R is
//	proportional to Σ_{s∈R} exp(-β·F(s)) with β = 1/kBT. The free-energy
//	difference between state A and state B is then
//
//	  ΔF_AB = -kBT · ln( Σ_A / Σ_B )
//
//	Negative values mean A is more stable than B.
//
// Algorithm Outline:
//  1. Shift F so that min F = 0 (keeps exp() away from overflow).
//  2. For each row in input order:
//     cv ∈ A        → Σ_A += exp(-β·F)
//     else cv ∈ B   → Σ_B += exp(-β·F)
//     else          → excluded
//  3. If Σ_A > 0 and Σ_B > 0: ΔF = -kBT·ln(Σ_A/Σ_B); otherwise ΔF = 0.
//
// Policies:
//   - A is tested before B: a CV value inside both (overlapping intervals)
//     counts toward A only.
//   - An empty state, or an empty table, yields ΔF = 0 with Result.Fallback
//     set; this is not an error.
//
// ⚙️ Usage:
//
//	opts := deltaf.DefaultOptions() // kBT = 2.494353 kJ/mol (300 K)
//	res, err := deltaf.Compute(table, opts)
//	fmt.Println(res.DeltaF)
//
// Complexity: O(n) time, O(n) memory for n rows.
package deltaf
