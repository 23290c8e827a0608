// SPDX-License-Identifier: MIT
// Package: fes
//
// Purpose:
//   - Hold a (cv, fes) table in a flat row-major buffer: data[2i]=cv, data[2i+1]=fes.
//   - Provide column copies, the FES minimum and shift-to-zero normalization.
//
// Determinism:
//   - Row order is the input order; no sorting, no deduplication.
//   - A Table is never mutated after construction; all transforms return copies.

package fes

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Table is an immutable sequence of (cv, fes) rows.
type Table struct {
	n    int       // number of rows
	data []float64 // row-major, len == n*width
}

// NewTable builds a table from rows, preserving their order.
// Complexity: O(n).
func NewTable(rows []Row) *Table {
	data := make([]float64, 0, len(rows)*width)
	for _, r := range rows {
		data = append(data, r.CV, r.FES)
	}
	return &Table{n: len(rows), data: data}
}

// FromColumns builds a table from parallel CV and FES columns.
// Returns ErrLengthMismatch if the columns differ in length.
// Complexity: O(n).
func FromColumns(cv, fes []float64) (*Table, error) {
	if len(cv) != len(fes) {
		return nil, fmt.Errorf("FromColumns(%d,%d): %w", len(cv), len(fes), ErrLengthMismatch)
	}
	data := make([]float64, len(cv)*width)
	for i := range cv {
		data[i*width] = cv[i]
		data[i*width+1] = fes[i]
	}
	return &Table{n: len(cv), data: data}, nil
}

// Len returns the number of rows. A nil table has zero rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return t.n
}

// At returns row i or ErrOutOfRange.
func (t *Table) At(i int) (Row, error) {
	if i < 0 || i >= t.Len() {
		return Row{}, fmt.Errorf("At(%d): %w", i, ErrOutOfRange)
	}
	base := i * width
	return Row{CV: t.data[base], FES: t.data[base+1]}, nil
}

// CV returns a copy of column 0.
func (t *Table) CV() []float64 { return t.column(0) }

// FES returns a copy of column 1.
func (t *Table) FES() []float64 { return t.column(1) }

func (t *Table) column(j int) []float64 {
	n := t.Len()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = t.data[i*width+j]
	}
	return out
}

// MinFES returns min(FES) or ErrEmpty for a table without rows.
// A NaN anywhere in the column makes the minimum NaN.
// Complexity: O(n).
func (t *Table) MinFES() (float64, error) {
	if t.Len() == 0 {
		return 0, ErrEmpty
	}
	return minPropagateNaN(t.FES()), nil
}

// minPropagateNaN is floats.Min except that any NaN wins.
func minPropagateNaN(xs []float64) float64 {
	m := xs[0]
	for _, v := range xs[1:] {
		if math.IsNaN(v) {
			return v
		}
		if v < m {
			m = v
		}
	}
	return m
}

// Shifted returns a new table whose FES column is fes[k] - min(fes).
// With a finite minimum that row maps to exactly 0 and +Inf rows stay +Inf;
// a NaN minimum turns the whole column NaN. An empty table yields an empty table.
//
// Complexity: O(n) time and memory.
func (t *Table) Shifted() *Table {
	if t.Len() == 0 {
		return &Table{}
	}
	fes := t.FES()
	floats.AddConst(-minPropagateNaN(fes), fes)

	// Columns come from the same table, lengths always agree.
	out, _ := FromColumns(t.CV(), fes)
	return out
}
