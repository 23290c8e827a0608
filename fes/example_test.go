// SPDX-License-Identifier: MIT

package fes_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/fesdiff/fes"
)

// ExampleTable_Shifted parses a small table with a negative minimum and
// normalizes it so the lowest free energy becomes zero.
func ExampleTable_Shifted() {
	src := `#! FIELDS cv file.free
0.10  -5.0
0.20  -3.0
0.30   0.0
`
	tbl, err := fes.Read(strings.NewReader(src))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(tbl.Shifted().FES())
	// Output:
	// [0 2 5]
}
