// SPDX-License-Identifier: MIT

package fes

// Row is a single (cv, fes) sample of a table.
type Row struct {
	CV  float64 // collective-variable value
	FES float64 // free energy at CV
}

// width is the number of stored columns per row (cv, fes).
const width = 2

// Loader defaults.
const (
	// DefaultComment starts a comment anywhere on a line. Matches the
	// convention of PLUMED headers ("#! FIELDS ...") and numpy.genfromtxt.
	DefaultComment = "#"

	// DefaultRejectNonFinite is off: NaN and ±Inf are ordinary values.
	DefaultRejectNonFinite = false

	// maxLineBytes bounds a single input line.
	maxLineBytes = 1 << 20
)

// Option configures Read/ReadFile.
type Option func(*options)

type options struct {
	comment         string
	rejectNonFinite bool
}

// WithComment sets the comment marker. Everything from the marker to the end
// of a line is ignored. Panics on an empty marker (programmer error); use
// WithoutComments to disable comment handling.
func WithComment(marker string) Option {
	if marker == "" {
		panic("fes: WithComment requires a non-empty marker")
	}
	return func(o *options) { o.comment = marker }
}

// WithoutComments disables comment stripping; every non-blank line is data.
func WithoutComments() Option {
	return func(o *options) { o.comment = "" }
}

// WithRejectNonFinite makes NaN and ±Inf in the CV or FES column an
// ErrNonFinite error, including out-of-range literals such as 1e400.
func WithRejectNonFinite() Option {
	return func(o *options) { o.rejectNonFinite = true }
}

func gatherOptions(opts []Option) options {
	o := options{
		comment:         DefaultComment,
		rejectNonFinite: DefaultRejectNonFinite,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
