// SPDX-License-Identifier: MIT

package sweep

import (
	"errors"
	"time"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/fesdiff/deltaf"
	"github.com/katalvlaran/fesdiff/fes"
)

// Defaults.
const (
	// DefaultTotal is the number of files of the tutorial series.
	DefaultTotal = 201

	// DefaultDir resolves files against the working directory.
	DefaultDir = "."

	// DefaultWorkers keeps the run strictly sequential.
	DefaultWorkers = 1
)

var (
	// ErrBadTotal indicates a negative file count.
	ErrBadTotal = errors.New("sweep: total must be >= 0")

	// ErrBadWorkers indicates a worker count below 1.
	ErrBadWorkers = errors.New("sweep: workers must be >= 1")
)

// Observer receives every record Run emitted, after emit returned nil, with
// the time spent loading and reducing it. Calls come from the goroutine
// running Run, in index order; records computed ahead of a failure are never
// observed.
type Observer interface {
	Observe(rec Record, elapsed time.Duration)
}

// Options configures a Runner.
//
// Fields:
//   - Dir      — directory holding fes_<i>.dat.
//   - Total    — number of files; indices [0, Total).
//   - Workers  — concurrent loads; 1 means sequential.
//   - Calc     — kBT and state intervals.
//   - Read     — loader options forwarded to fes.ReadFile.
//   - Logger   — structured logger; zero value discards.
//   - Observer — optional per-record hook (metrics).
type Options struct {
	Dir      string
	Total    int
	Workers  int
	Calc     deltaf.Options
	Read     []fes.Option
	Logger   logr.Logger
	Observer Observer
}

// DefaultOptions returns the tutorial setup: 201 files in the working directory.
func DefaultOptions() Options {
	return Options{
		Dir:     DefaultDir,
		Total:   DefaultTotal,
		Workers: DefaultWorkers,
		Calc:    deltaf.DefaultOptions(),
	}
}

// Record is the emitted outcome for one file index.
type Record struct {
	Index  int
	Path   string
	Result deltaf.Result
}

// EmitFunc consumes records in index order. A non-nil error stops the run.
type EmitFunc func(rec Record) error
