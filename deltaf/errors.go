// SPDX-License-Identifier: MIT

package deltaf

import "errors"

var (
	// ErrNilTable indicates a nil *fes.Table argument.
	ErrNilTable = errors.New("deltaf: table is nil")

	// ErrBadKBT indicates a thermal energy that is not finite and > 0.
	ErrBadKBT = errors.New("deltaf: kBT must be finite and > 0")

	// ErrBadInterval indicates an interval with non-finite bounds or Min > Max.
	ErrBadInterval = errors.New("deltaf: interval bounds must be finite with min <= max")
)
