// SPDX-License-Identifier: MIT

// Command fesdiff prints the free energy difference between two CV states for
// every file fes_0.dat … fes_<N-1>.dat, one "<index> <ΔF>" line per file.
//
// Configuration layers, later wins: built-in defaults, a YAML file
// (--config or FESDIFF_CONFIG), FESDIFF_* environment variables, flags.
//
// Exit status: 0 success, 2 invalid configuration, 3 I/O error,
// 4 malformed input, 1 anything else.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/fesdiff/internal/config"
	"github.com/katalvlaran/fesdiff/internal/diag"
	"github.com/katalvlaran/fesdiff/internal/report"
	"github.com/katalvlaran/fesdiff/sweep"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Environ(), os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type cliFlags struct {
	config      string
	kbt         float64
	totalFiles  int
	dir         string
	workers     int
	stateA      []float64
	stateB      []float64
	precision   int
	metricsFile string
}

func run(ctx context.Context, args, environ []string, stdout, stderr io.Writer) int {
	start := time.Now()

	fs := pflag.NewFlagSet("fesdiff", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	logging := diag.NewLogging(fs)
	logging.Redirect(stderr)
	defer logging.Flush()

	def := config.Defaults()
	var f cliFlags
	fs.StringVar(&f.config, "config", "", "YAML config file (default $FESDIFF_CONFIG)")
	fs.Float64Var(&f.kbt, "kbt", def.KBT, "thermal energy kB*T in kJ/mol")
	fs.IntVar(&f.totalFiles, "total-files", def.TotalFiles, "number of files fes_0.dat … fes_<N-1>.dat")
	fs.StringVar(&f.dir, "dir", def.Dir, "directory holding the FES files")
	fs.IntVar(&f.workers, "workers", def.Workers, "files loaded concurrently; output order is unchanged")
	fs.Float64SliceVar(&f.stateA, "state-a", []float64{def.StateA.Min, def.StateA.Max}, "state A CV interval min,max")
	fs.Float64SliceVar(&f.stateB, "state-b", []float64{def.StateB.Min, def.StateB.Max}, "state B CV interval min,max")
	fs.IntVar(&f.precision, "precision", def.Precision, "decimals in output; -1 prints the shortest round-trip value")
	fs.StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics in text format to this path")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return diag.ExitCode(diag.CodeConfig)
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "fesdiff: unexpected arguments %q\n", fs.Args())
		return diag.ExitCode(diag.CodeConfig)
	}

	cfg, err := loadConfig(fs, f, environ)
	if err != nil {
		fmt.Fprintf(stderr, "fesdiff: %v\n", err)
		return diag.ExitCode(diag.Classify(err))
	}
	if err := logging.SetVerbosity(cfg.Log.Verbosity); err != nil {
		fmt.Fprintf(stderr, "fesdiff: %v\n", err)
		return diag.ExitCode(diag.CodeConfig)
	}

	runID := uuid.NewString()
	log := diag.NewLogger(runID)
	metrics := diag.NewMetrics()

	runner, err := sweep.New(sweep.Options{
		Dir:      cfg.Dir,
		Total:    cfg.TotalFiles,
		Workers:  cfg.Workers,
		Calc:     cfg.CalcOptions(),
		Logger:   log,
		Observer: metrics,
	})
	if err != nil {
		fmt.Fprintf(stderr, "fesdiff: %v\n", err)
		return diag.ExitCode(diag.Classify(err))
	}

	out := report.NewWriter(stdout, cfg.Precision)
	err = runner.Run(ctx, func(rec sweep.Record) error {
		return out.Write(rec.Index, rec.Result.DeltaF)
	})

	code := diag.Classify(err)
	if err != nil {
		metrics.IncError(code)
		log.Error(err, "run failed", "code", code)
		fmt.Fprintf(stderr, "fesdiff: %v\n", err)
	}
	if cfg.MetricsFile != "" {
		if werr := metrics.WriteTextfile(cfg.MetricsFile); werr != nil {
			log.Error(werr, "writing metrics textfile", "path", cfg.MetricsFile)
			if err == nil {
				code = diag.CodeIO
			}
		}
	}
	log.V(1).Info("run finished", "code", code, "elapsed", time.Since(start))
	return diag.ExitCode(code)
}

// loadConfig merges defaults, the YAML file, the environment and the flags
// the user actually set, then validates the result.
func loadConfig(fs *pflag.FlagSet, f cliFlags, environ []string) (config.Config, error) {
	cfg := config.Defaults()

	path := f.config
	if path == "" {
		path = lookupEnv(environ, "FESDIFF_CONFIG")
	}
	if path != "" {
		over, err := config.LoadYAML(path, nil)
		if err != nil {
			if errors.Is(err, config.ErrInvalidConfig) {
				return cfg, err
			}
			return cfg, fmt.Errorf("config %s: %w: %w", path, config.ErrInvalidConfig, err)
		}
		cfg = config.Merge(cfg, over)
	}

	env, err := config.EnvOverlay(environ)
	if err != nil {
		return cfg, err
	}
	cfg = config.Merge(cfg, env)

	cli, err := flagOverlay(fs, f)
	if err != nil {
		return cfg, err
	}
	cfg = config.Merge(cfg, cli)

	return cfg, config.Validate(cfg)
}

func flagOverlay(fs *pflag.FlagSet, f cliFlags) (config.Overlay, error) {
	var over config.Overlay
	if fs.Changed("kbt") {
		over.KBT = &f.kbt
	}
	if fs.Changed("total-files") {
		over.TotalFiles = &f.totalFiles
	}
	if fs.Changed("dir") {
		over.Dir = &f.dir
	}
	if fs.Changed("workers") {
		over.Workers = &f.workers
	}
	if fs.Changed("precision") {
		over.Precision = &f.precision
	}
	if fs.Changed("metrics-file") {
		over.MetricsFile = &f.metricsFile
	}
	for _, s := range []struct {
		name string
		val  []float64
		dst  **config.IntervalPatch
	}{
		{"state-a", f.stateA, &over.StateA},
		{"state-b", f.stateB, &over.StateB},
	} {
		if !fs.Changed(s.name) {
			continue
		}
		if len(s.val) != 2 {
			return over, fmt.Errorf("--%s wants min,max, got %d values: %w", s.name, len(s.val), config.ErrInvalidConfig)
		}
		*s.dst = config.Interval{Min: s.val[0], Max: s.val[1]}.Patch()
	}
	return over, nil
}

func lookupEnv(environ []string, key string) string {
	prefix := key + "="
	for i := len(environ) - 1; i >= 0; i-- {
		if strings.HasPrefix(environ[i], prefix) {
			return strings.TrimSpace(environ[i][len(prefix):])
		}
	}
	return ""
}
