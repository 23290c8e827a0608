// SPDX-License-Identifier: MIT

package fes

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Read parses a whitespace-delimited numeric table from r.
//
// Rules:
//   - blank lines are skipped; text from the comment marker to end of line is dropped
//   - the first data row fixes the column count (≥ 2); every later row must match
//   - every token must parse as float64 (ErrParse); nan, inf and out-of-range
//     literals are values (1e400 reads as +Inf, 1e-400 as 0)
//   - columns 0 and 1 must be finite only under WithRejectNonFinite (ErrNonFinite)
//   - a line longer than 1 MiB is ErrLineTooLong
//
// An input without data rows yields an empty table, not an error.
// Errors carry the 1-based line number.
func Read(r io.Reader, opts ...Option) (*Table, error) {
	o := gatherOptions(opts)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		data []float64
		cols int
		line int
	)
	for sc.Scan() {
		line++
		text := sc.Text()
		if o.comment != "" {
			if k := strings.Index(text, o.comment); k >= 0 {
				text = text[:k]
			}
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		switch {
		case cols == 0 && len(fields) < width:
			return nil, fmt.Errorf("line %d: %d column(s), need at least %d: %w", line, len(fields), width, ErrColumnCount)
		case cols == 0:
			cols = len(fields)
		case len(fields) != cols:
			return nil, fmt.Errorf("line %d: %d columns, want %d: %w", line, len(fields), cols, ErrColumnCount)
		}

		var row [width]float64
		for j, tok := range fields {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil && !errors.Is(err, strconv.ErrRange) {
				return nil, fmt.Errorf("line %d column %d: %q: %w", line, j+1, tok, ErrParse)
			}
			if j >= width {
				continue
			}
			if o.rejectNonFinite && (math.IsNaN(v) || math.IsInf(v, 0)) {
				return nil, fmt.Errorf("line %d column %d: %q: %w", line, j+1, tok, ErrNonFinite)
			}
			row[j] = v
		}
		data = append(data, row[:]...)
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("line %d: longer than %d bytes: %w", line+1, maxLineBytes, ErrLineTooLong)
		}
		return nil, fmt.Errorf("line %d: %w", line+1, err)
	}

	return &Table{n: len(data) / width, data: data}, nil
}

// ReadFile opens path, parses it with Read and closes it regardless of outcome.
// A missing or unreadable file returns the *fs.PathError from os.Open.
func ReadFile(path string, opts ...Option) (t *Table, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			t, err = nil, cerr
		}
	}()

	t, err = Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
