// SPDX-License-Identifier: MIT

// Package diag holds the run-level plumbing of the fesdiff binary: klog
// backed logging, error classification to exit codes, and Prometheus
// metrics exported as a textfile.
package diag

import (
	"context"
	"errors"
	"io/fs"

	"github.com/katalvlaran/fesdiff/deltaf"
	"github.com/katalvlaran/fesdiff/fes"
	"github.com/katalvlaran/fesdiff/internal/config"
	"github.com/katalvlaran/fesdiff/sweep"
)

// Code is a coarse error class, used for logs, metrics and exit codes.
type Code string

const (
	CodeOK      Code = "ok"
	CodeUnknown Code = "unknown"
	CodeConfig  Code = "config"
	CodeIO      Code = "io"
	CodeParse   Code = "parse"
	CodeCancel  Code = "cancel"
)

// Classify maps err to a Code using sentinels and error types only.
func Classify(err error) Code {
	if err == nil {
		return CodeOK
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return CodeCancel
	}
	if errors.Is(err, config.ErrInvalidConfig) ||
		errors.Is(err, deltaf.ErrBadKBT) ||
		errors.Is(err, deltaf.ErrBadInterval) ||
		errors.Is(err, sweep.ErrBadTotal) ||
		errors.Is(err, sweep.ErrBadWorkers) {
		return CodeConfig
	}
	if errors.Is(err, fes.ErrParse) ||
		errors.Is(err, fes.ErrColumnCount) ||
		errors.Is(err, fes.ErrNonFinite) ||
		errors.Is(err, fes.ErrLineTooLong) {
		return CodeParse
	}
	var perr *fs.PathError
	if errors.As(err, &perr) {
		return CodeIO
	}
	return CodeUnknown
}

// ExitCode returns the process exit status for c.
func ExitCode(c Code) int {
	switch c {
	case CodeOK:
		return 0
	case CodeConfig:
		return 2
	case CodeIO:
		return 3
	case CodeParse:
		return 4
	default:
		return 1
	}
}
