// SPDX-License-Identifier: MIT

package sweep

import (
	"path/filepath"
	"strconv"
)

// File-name pattern: fes_<i>.dat, index in plain base 10.
const (
	FilePrefix = "fes_"
	FileSuffix = ".dat"
)

// FileName maps index i to "fes_<i>.dat".
func FileName(i int) string {
	return FilePrefix + strconv.Itoa(i) + FileSuffix
}

// Path joins dir and FileName(i).
func Path(dir string, i int) string {
	return filepath.Join(dir, FileName(i))
}
