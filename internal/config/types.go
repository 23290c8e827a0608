// SPDX-License-Identifier: MIT

// Package config layers run configuration: Defaults → YAML file → ENV → CLI,
// then Validate. Later layers override earlier ones field by field.
package config

import (
	"errors"

	"github.com/katalvlaran/fesdiff/deltaf"
)

// ErrInvalidConfig wraps every configuration problem (bad YAML, bad ENV value,
// failed validation).
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix prefixes every recognized environment variable.
const EnvPrefix = "FESDIFF_"

// Interval is a closed CV interval.
type Interval struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Logging holds log settings.
type Logging struct {
	// Verbosity is the klog V level; 2 logs per-file sums and counts.
	Verbosity int `yaml:"verbosity"`
}

// Config is the effective run configuration.
type Config struct {
	KBT         float64  `yaml:"kbt"`
	TotalFiles  int      `yaml:"total_files"`
	Dir         string   `yaml:"dir"`
	Workers     int      `yaml:"workers"`
	StateA      Interval `yaml:"state_a"`
	StateB      Interval `yaml:"state_b"`
	Precision   int      `yaml:"precision"`
	MetricsFile string   `yaml:"metrics_file"`
	Log         Logging  `yaml:"log"`
}

// Overlay carries only the fields a layer sets; nil means "not set".
// Zero values are meaningful (precision 0, total_files 0), hence pointers.
type Overlay struct {
	KBT         *float64        `yaml:"kbt"`
	TotalFiles  *int            `yaml:"total_files"`
	Dir         *string         `yaml:"dir"`
	Workers     *int            `yaml:"workers"`
	StateA      *IntervalPatch  `yaml:"state_a"`
	StateB      *IntervalPatch  `yaml:"state_b"`
	Precision   *int            `yaml:"precision"`
	MetricsFile *string         `yaml:"metrics_file"`
	Log         *LoggingOverlay `yaml:"log"`
}

// IntervalPatch overrides one or both bounds.
type IntervalPatch struct {
	Min *float64 `yaml:"min"`
	Max *float64 `yaml:"max"`
}

// LoggingOverlay overrides log settings.
type LoggingOverlay struct {
	Verbosity *int `yaml:"verbosity"`
}

// CalcOptions converts the configuration to calculator options.
func (c Config) CalcOptions() deltaf.Options {
	return deltaf.Options{
		KBT:    c.KBT,
		StateA: deltaf.Interval{Min: c.StateA.Min, Max: c.StateA.Max},
		StateB: deltaf.Interval{Min: c.StateB.Min, Max: c.StateB.Max},
	}
}
