// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fesdiff/deltaf"
	"github.com/katalvlaran/fesdiff/internal/report"
	"github.com/katalvlaran/fesdiff/sweep"
)

// Defaults returns the reference constants of the tutorial run.
func Defaults() Config {
	def := deltaf.DefaultOptions()
	return Config{
		KBT:        def.KBT,
		TotalFiles: sweep.DefaultTotal,
		Dir:        sweep.DefaultDir,
		Workers:    sweep.DefaultWorkers,
		StateA:     Interval{Min: def.StateA.Min, Max: def.StateA.Max},
		StateB:     Interval{Min: def.StateB.Min, Max: def.StateB.Max},
		Precision:  report.ReprPrecision,
	}
}

// LoadYAML parses an overlay from raw YAML when raw is non-empty, otherwise
// from the file at path. Unknown keys are rejected. An empty document is an
// empty overlay.
func LoadYAML(path string, raw []byte) (Overlay, error) {
	var over Overlay
	var r io.Reader
	switch {
	case len(raw) > 0:
		r = bytes.NewReader(raw)
	case path != "":
		f, err := os.Open(path)
		if err != nil {
			return over, err
		}
		defer f.Close()
		r = f
	default:
		return over, fmt.Errorf("no config source provided: %w", ErrInvalidConfig)
	}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&over); err != nil && !errors.Is(err, io.EOF) {
		return Overlay{}, fmt.Errorf("%s: %v: %w", sourceName(path, raw), err, ErrInvalidConfig)
	}
	return over, nil
}

func sourceName(path string, raw []byte) string {
	if len(raw) > 0 || path == "" {
		return "yaml"
	}
	return path
}

// EnvOverlay builds an overlay from FESDIFF_* variables:
//
//	FESDIFF_KBT, FESDIFF_TOTAL_FILES, FESDIFF_DIR, FESDIFF_WORKERS,
//	FESDIFF_STATE_A="min,max", FESDIFF_STATE_B="min,max",
//	FESDIFF_PRECISION, FESDIFF_METRICS_FILE, FESDIFF_VERBOSITY
//
// Other FESDIFF_* keys are ignored. Unparseable values are errors.
func EnvOverlay(environ []string) (Overlay, error) {
	var over Overlay
	for _, kv := range environ {
		if !strings.HasPrefix(kv, EnvPrefix) {
			continue
		}
		eq := strings.IndexByte(kv, '=')
		if eq <= len(EnvPrefix) {
			continue
		}
		key, val := kv[len(EnvPrefix):eq], strings.TrimSpace(kv[eq+1:])

		var err error
		switch key {
		case "KBT":
			over.KBT, err = parseFloatPtr(val)
		case "TOTAL_FILES":
			over.TotalFiles, err = parseIntPtr(val)
		case "DIR":
			over.Dir = &val
		case "WORKERS":
			over.Workers, err = parseIntPtr(val)
		case "STATE_A":
			over.StateA, err = parsePatch(val)
		case "STATE_B":
			over.StateB, err = parsePatch(val)
		case "PRECISION":
			over.Precision, err = parseIntPtr(val)
		case "METRICS_FILE":
			over.MetricsFile = &val
		case "VERBOSITY":
			var v *int
			v, err = parseIntPtr(val)
			over.Log = &LoggingOverlay{Verbosity: v}
		default:
			continue
		}
		switch {
		case errors.Is(err, ErrInvalidConfig):
			return Overlay{}, fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
		case err != nil:
			return Overlay{}, fmt.Errorf("%s%s=%q: %v: %w", EnvPrefix, key, val, err, ErrInvalidConfig)
		}
	}
	return over, nil
}

// ParseInterval parses "min,max".
func ParseInterval(s string) (Interval, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Interval{}, fmt.Errorf("interval %q: want \"min,max\": %w", s, ErrInvalidConfig)
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Interval{}, fmt.Errorf("interval %q: %v: %w", s, err, ErrInvalidConfig)
	}
	hi, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Interval{}, fmt.Errorf("interval %q: %v: %w", s, err, ErrInvalidConfig)
	}
	return Interval{Min: lo, Max: hi}, nil
}

// Patch returns an IntervalPatch setting both bounds.
func (iv Interval) Patch() *IntervalPatch {
	lo, hi := iv.Min, iv.Max
	return &IntervalPatch{Min: &lo, Max: &hi}
}

// Merge applies every field set in over on top of base.
func Merge(base Config, over Overlay) Config {
	out := base
	if over.KBT != nil {
		out.KBT = *over.KBT
	}
	if over.TotalFiles != nil {
		out.TotalFiles = *over.TotalFiles
	}
	if over.Dir != nil {
		out.Dir = *over.Dir
	}
	if over.Workers != nil {
		out.Workers = *over.Workers
	}
	out.StateA = over.StateA.apply(out.StateA)
	out.StateB = over.StateB.apply(out.StateB)
	if over.Precision != nil {
		out.Precision = *over.Precision
	}
	if over.MetricsFile != nil {
		out.MetricsFile = *over.MetricsFile
	}
	if over.Log != nil && over.Log.Verbosity != nil {
		out.Log.Verbosity = *over.Log.Verbosity
	}
	return out
}

func (p *IntervalPatch) apply(iv Interval) Interval {
	if p == nil {
		return iv
	}
	if p.Min != nil {
		iv.Min = *p.Min
	}
	if p.Max != nil {
		iv.Max = *p.Max
	}
	return iv
}

// Validate checks the merged configuration. The calculator bounds are
// checked by deltaf.ValidateOptions; the rest here.
func Validate(cfg Config) error {
	if err := deltaf.ValidateOptions(cfg.CalcOptions()); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch {
	case cfg.TotalFiles < 0:
		return fmt.Errorf("total_files=%d must be >= 0: %w", cfg.TotalFiles, ErrInvalidConfig)
	case cfg.Workers < 1:
		return fmt.Errorf("workers=%d must be >= 1: %w", cfg.Workers, ErrInvalidConfig)
	case strings.TrimSpace(cfg.Dir) == "":
		return fmt.Errorf("dir must not be empty: %w", ErrInvalidConfig)
	case cfg.Precision < report.ReprPrecision:
		return fmt.Errorf("precision=%d must be >= %d: %w", cfg.Precision, report.ReprPrecision, ErrInvalidConfig)
	case cfg.Log.Verbosity < 0:
		return fmt.Errorf("log.verbosity=%d must be >= 0: %w", cfg.Log.Verbosity, ErrInvalidConfig)
	}
	return nil
}

func parseFloatPtr(s string) (*float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, errors.New("not finite")
	}
	return &v, nil
}

func parseIntPtr(s string) (*int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parsePatch(s string) (*IntervalPatch, error) {
	iv, err := ParseInterval(s)
	if err != nil {
		return nil, err
	}
	return iv.Patch(), nil
}
