// SPDX-License-Identifier: MIT

package deltaf

import (
	"fmt"
	"math"
)

// ValidateOptions checks KBT and both intervals. Overlapping intervals are
// legal; see Options.
func ValidateOptions(o Options) error {
	if math.IsNaN(o.KBT) || math.IsInf(o.KBT, 0) || o.KBT <= 0 {
		return fmt.Errorf("kbt=%v: %w", o.KBT, ErrBadKBT)
	}
	if err := validateInterval(o.StateA); err != nil {
		return fmt.Errorf("state A: %w", err)
	}
	if err := validateInterval(o.StateB); err != nil {
		return fmt.Errorf("state B: %w", err)
	}
	return nil
}

func validateInterval(iv Interval) error {
	for _, v := range [2]float64{iv.Min, iv.Max} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("[%v, %v]: %w", iv.Min, iv.Max, ErrBadInterval)
		}
	}
	if iv.Min > iv.Max {
		return fmt.Errorf("[%v, %v]: %w", iv.Min, iv.Max, ErrBadInterval)
	}
	return nil
}
