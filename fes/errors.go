// SPDX-License-Identifier: MIT
// Package fes: sentinel error set.
// Every message is prefixed with "fes: ..." for easy grepping. Loaders wrap
// these with file/line context via fmt.Errorf("...: %w"); callers match with
// errors.Is.

package fes

import "errors"

var (
	// ErrEmpty is returned by operations that need at least one row (MinFES).
	ErrEmpty = errors.New("fes: table has no rows")

	// ErrOutOfRange indicates a row index outside [0, Len()).
	ErrOutOfRange = errors.New("fes: row index out of range")

	// ErrLengthMismatch indicates CV and FES columns of different length.
	ErrLengthMismatch = errors.New("fes: column lengths differ")

	// ErrParse indicates a token that is not a valid float64.
	ErrParse = errors.New("fes: malformed numeric value")

	// ErrColumnCount indicates a data row with fewer than two columns, or a
	// row whose column count differs from the first data row.
	ErrColumnCount = errors.New("fes: unexpected column count")

	// ErrNonFinite signals NaN or ±Inf in the CV or FES column when the
	// reader was built WithRejectNonFinite.
	ErrNonFinite = errors.New("fes: NaN or Inf encountered")

	// ErrLineTooLong indicates an input line above the reader's line limit.
	ErrLineTooLong = errors.New("fes: line too long")
)
