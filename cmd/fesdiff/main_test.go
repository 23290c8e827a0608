// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fesdiff/sweep"
)

const referenceTable = "#! FIELDS cv file.free\n0.25 0.0\n0.30 1.0\n0.50 0.0\n0.70 2.0\n"

func writeFiles(t *testing.T, dir string, bodies ...string) {
	t.Helper()
	for i, body := range bodies {
		require.NoError(t, os.WriteFile(sweep.Path(dir, i), []byte(body), 0o644))
	}
}

func runCLI(t *testing.T, args []string, environ ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, environ, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

// TestRun_ReferenceSeries prints one line per file in index order.
func TestRun_ReferenceSeries(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, referenceTable, "0.21 3\n0.25 1\n", "")

	code, out, _ := runCLI(t, []string{"--dir", dir, "--total-files", "3", "--precision", "6"})
	require.Equal(t, 0, code)
	assert.Equal(t, "0 -0.354479\n1 0.000000\n2 0.000000\n", out)
}

// TestRun_ReprOutput uses the shortest round-trip rendering by default.
func TestRun_ReprOutput(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "", "0.21 3\n")

	code, out, _ := runCLI(t, []string{"--dir", dir, "--total-files", "2"})
	require.Equal(t, 0, code)
	assert.Equal(t, "0 0.0\n1 0.0\n", out)
}

// TestRun_InfiniteBins prints a finite value for a file with unvisited bins.
func TestRun_InfiniteBins(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "0.25 0.0\n0.30 inf\n0.50 0.0\n0.70 2.0\n", "0.25 0\n0.50 nan\n")

	code, out, _ := runCLI(t, []string{"--dir", dir, "--total-files", "2", "--precision", "3"})
	require.Equal(t, 0, code)
	assert.Equal(t, "0 0.924\n1 0.000\n", out)
}

// TestRun_LongLineIsMalformedInput exits with the parse status.
func TestRun_LongLineIsMalformedInput(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "0.25 "+strings.Repeat("0", 2<<20)+"\n")

	code, _, _ := runCLI(t, []string{"--dir", dir, "--total-files", "1"})
	assert.Equal(t, 4, code)
}

// TestRun_MissingFileKeepsEarlierLines stops at the gap with the I/O status.
func TestRun_MissingFileKeepsEarlierLines(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, referenceTable, referenceTable)

	code, out, errOut := runCLI(t, []string{"--dir", dir, "--total-files", "4", "--precision", "3"})
	assert.Equal(t, 3, code)
	assert.Equal(t, "0 -0.354\n1 -0.354\n", out)
	assert.Contains(t, errOut, "fes_2.dat")
}

// TestRun_ParseError exits with the malformed-input status.
func TestRun_ParseError(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "0.25 abc\n")

	code, out, _ := runCLI(t, []string{"--dir", dir, "--total-files", "1"})
	assert.Equal(t, 4, code)
	assert.Empty(t, out)
}

// TestRun_InvalidConfig rejects bad values before touching any file.
func TestRun_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	cases := [][]string{
		{"--dir", dir, "--kbt", "0"},
		{"--dir", dir, "--state-a", "0.4,0.2"},
		{"--dir", dir, "--state-b", "0.5"},
		{"--dir", dir, "--workers", "0"},
		{"--dir", dir, "--total-files", "-1"},
		{"--no-such-flag"},
		{"stray"},
	}
	for _, args := range cases {
		code, out, _ := runCLI(t, args)
		assert.Equal(t, 2, code, "%v", args)
		assert.Empty(t, out)
	}

	code, _, _ := runCLI(t, []string{"--dir", dir}, "FESDIFF_WORKERS=none")
	assert.Equal(t, 2, code)

	code, _, _ = runCLI(t, []string{"--config", filepath.Join(dir, "absent.yaml")})
	assert.Equal(t, 2, code)
}

// TestRun_Help exits cleanly.
func TestRun_Help(t *testing.T) {
	code, out, errOut := runCLI(t, []string{"--help"})
	assert.Equal(t, 0, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "--total-files")
}

// TestRun_Layering applies file, then environment, then flags.
func TestRun_Layering(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, referenceTable, referenceTable, referenceTable)
	cfgPath := filepath.Join(t.TempDir(), "fesdiff.yaml")
	yaml := fmt.Sprintf("dir: %q\ntotal_files: 3\nprecision: 2\n", dir)
	require.NoError(t, os.WriteFile(cfgPath, []byte(yaml), 0o644))

	code, out, _ := runCLI(t, nil, "FESDIFF_CONFIG="+cfgPath, "FESDIFF_TOTAL_FILES=2")
	require.Equal(t, 0, code)
	assert.Equal(t, "0 -0.35\n1 -0.35\n", out)

	code, out, _ = runCLI(t, []string{"--config", cfgPath, "--total-files", "1"}, "FESDIFF_TOTAL_FILES=2")
	require.Equal(t, 0, code)
	assert.Equal(t, "0 -0.35\n", out)
}

// TestRun_ParallelMatchesSequential produces identical output with workers.
func TestRun_ParallelMatchesSequential(t *testing.T) {
	dir := t.TempDir()
	bodies := make([]string, 12)
	for i := range bodies {
		bodies[i] = fmt.Sprintf("0.25 0\n0.30 1\n0.50 %g\n0.70 2\n", 0.25*float64(i))
	}
	writeFiles(t, dir, bodies...)

	args := []string{"--dir", dir, "--total-files", "12"}
	code, seq, _ := runCLI(t, args)
	require.Equal(t, 0, code)
	code, par, _ := runCLI(t, append(args, "--workers", "4"))
	require.Equal(t, 0, code)
	assert.Equal(t, seq, par)
	assert.Len(t, strings.Split(strings.TrimSpace(seq), "\n"), 12)
}

// TestRun_MetricsFile writes the textfile on success and on failure.
func TestRun_MetricsFile(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, referenceTable, "")
	prom := filepath.Join(t.TempDir(), "fesdiff.prom")

	code, _, _ := runCLI(t, []string{"--dir", dir, "--total-files", "2", "--metrics-file", prom})
	require.Equal(t, 0, code)
	raw, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "fesdiff_files_processed_total 2")
	assert.Contains(t, string(raw), "fesdiff_fallback_total 1")

	code, _, _ = runCLI(t, []string{"--dir", dir, "--total-files", "3", "--metrics-file", prom})
	assert.Equal(t, 3, code)
	raw, err = os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `fesdiff_errors_total{code="io"} 1`)
}

// TestRun_Verbose logs per-file details to stderr at -v=2.
func TestRun_Verbose(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, referenceTable)

	code, _, errOut := runCLI(t, []string{"--dir", dir, "--total-files", "1", "-v=2"})
	require.Equal(t, 0, code)
	assert.Contains(t, errOut, "file reduced")
	assert.Contains(t, errOut, "run")

	code, _, errOut = runCLI(t, []string{"--dir", dir, "--total-files", "1", "-v=0"})
	require.Equal(t, 0, code)
	assert.NotContains(t, errOut, "file reduced")
}

// TestLookupEnv returns the last assignment of a key.
func TestLookupEnv(t *testing.T) {
	env := []string{"FESDIFF_CONFIG=a.yaml", "OTHER=1", "FESDIFF_CONFIG= b.yaml "}
	assert.Equal(t, "b.yaml", lookupEnv(env, "FESDIFF_CONFIG"))
	assert.Equal(t, "", lookupEnv(env, "MISSING"))
}
