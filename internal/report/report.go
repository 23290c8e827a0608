// SPDX-License-Identifier: MIT

// Package report renders result lines "<index> <value>".
package report

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"
)

// ReprPrecision selects shortest round-trip rendering in FormatFloat.
const ReprPrecision = -1

// Writer emits one line per record and flushes after each line, so lines
// written before a fatal error are never lost.
type Writer struct {
	w         *bufio.Writer
	precision int
}

// NewWriter wraps w. precision < 0 selects Repr, otherwise fixed notation
// with that many decimals.
func NewWriter(w io.Writer, precision int) *Writer {
	return &Writer{w: bufio.NewWriter(w), precision: precision}
}

// Write emits "<index> <value>\n".
func (w *Writer) Write(index int, v float64) error {
	var buf [64]byte
	b := strconv.AppendInt(buf[:0], int64(index), 10)
	b = append(b, ' ')
	b = append(b, FormatFloat(v, w.precision)...)
	b = append(b, '\n')
	if _, err := w.w.Write(b); err != nil {
		return err
	}
	return w.w.Flush()
}

// FormatFloat renders v with Repr when precision < 0, otherwise as %.<precision>f.
func FormatFloat(v float64, precision int) string {
	if precision < 0 {
		return Repr(v)
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// Repr renders v as the shortest string that round-trips, in the layout
// used by the tutorial scripts' output files:
//
//	0.0, -0.35447853224238796, 1e-05, 1.5e+16, nan, inf, -inf
//
// Fixed notation (always with a fractional part) is used when the decimal
// exponent lies in [-4, 16); exponent notation otherwise.
func Repr(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	e := strconv.FormatFloat(v, 'e', -1, 64)
	exp, _ := strconv.Atoi(e[strings.LastIndexByte(e, 'e')+1:])
	if exp < -4 || exp >= 16 {
		return e
	}

	f := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(f, '.') {
		f += ".0"
	}
	return f
}
