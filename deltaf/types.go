// SPDX-License-Identifier: MIT

package deltaf

// Defaults reproduce the tutorial setup: 300 K, states split at cv = 0.360.
const (
	// DefaultKBT is kBT in kJ/mol at 300 K.
	DefaultKBT = 2.494353

	DefaultStateAMin = 0.200
	DefaultStateAMax = 0.359
	DefaultStateBMin = 0.361
	DefaultStateBMax = 0.800
)

// Interval is the closed real interval [Min, Max].
type Interval struct {
	Min float64
	Max float64
}

// Contains reports whether Min <= x <= Max.
func (iv Interval) Contains(x float64) bool {
	return iv.Min <= x && x <= iv.Max
}

// Overlaps reports whether iv and o share at least one point.
func (iv Interval) Overlaps(o Interval) bool {
	return iv.Min <= o.Max && o.Min <= iv.Max
}

// Options configures Compute.
//
// Fields:
//   - KBT    — thermal energy, same unit as the FES column; β = 1/KBT.
//   - StateA — CV interval of state A; tested first.
//   - StateB — CV interval of state B; tested only when StateA does not match.
type Options struct {
	KBT    float64
	StateA Interval
	StateB Interval
}

// DefaultOptions returns the reference configuration.
func DefaultOptions() Options {
	return Options{
		KBT:    DefaultKBT,
		StateA: Interval{Min: DefaultStateAMin, Max: DefaultStateAMax},
		StateB: Interval{Min: DefaultStateBMin, Max: DefaultStateBMax},
	}
}

// Beta returns 1/KBT.
func (o Options) Beta() float64 { return 1.0 / o.KBT }

// Result is the outcome of Compute for one table.
type Result struct {
	// DeltaF is -kBT·ln(SumA/SumB), or 0 when Fallback is set.
	DeltaF float64

	// SumA and SumB are the Boltzmann-weight sums of each state.
	SumA float64
	SumB float64

	// CountA, CountB and Excluded partition the rows.
	CountA   int
	CountB   int
	Excluded int

	// Rows is the table length.
	Rows int

	// MinFES is the minimum subtracted during normalization (0 for an empty table).
	MinFES float64

	// Fallback reports that a state carried no weight and DeltaF is the 0 sentinel.
	Fallback bool
}
