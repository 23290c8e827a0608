// SPDX-License-Identifier: MIT

package sweep

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/fesdiff/deltaf"
	"github.com/katalvlaran/fesdiff/fes"
)

// Runner maps file indices to records. Safe for concurrent use.
type Runner struct {
	opts Options
	log  logr.Logger
}

// New validates opts and returns a Runner.
//
// Errors:
//   - ErrBadTotal, ErrBadWorkers.
//   - deltaf.ErrBadKBT, deltaf.ErrBadInterval from opts.Calc.
func New(opts Options) (*Runner, error) {
	if opts.Total < 0 {
		return nil, fmt.Errorf("total=%d: %w", opts.Total, ErrBadTotal)
	}
	if opts.Workers < 1 {
		return nil, fmt.Errorf("workers=%d: %w", opts.Workers, ErrBadWorkers)
	}
	if err := deltaf.ValidateOptions(opts.Calc); err != nil {
		return nil, err
	}
	if opts.Dir == "" {
		opts.Dir = DefaultDir
	}

	log := opts.Logger
	if log.GetSink() == nil {
		log = logr.Discard()
	}
	if opts.Calc.StateA.Overlaps(opts.Calc.StateB) {
		// A-first tie-break is kept; warn only.
		log.Info("state intervals overlap, shared CV values count toward state A only",
			"stateA", opts.Calc.StateA, "stateB", opts.Calc.StateB)
	}
	return &Runner{opts: opts, log: log}, nil
}

// Compute loads fes_<i>.dat and reduces it. The Observer is not called;
// only Run reports records to it.
func (r *Runner) Compute(ctx context.Context, i int) (Record, error) {
	rec, _, err := r.compute(ctx, i)
	return rec, err
}

func (r *Runner) compute(ctx context.Context, i int) (Record, time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, 0, err
	}

	start := time.Now()
	path := Path(r.opts.Dir, i)
	tbl, err := fes.ReadFile(path, r.opts.Read...)
	if err != nil {
		return Record{}, 0, fmt.Errorf("index %d: %w", i, err)
	}
	res, err := deltaf.Compute(tbl, r.opts.Calc)
	if err != nil {
		return Record{}, 0, fmt.Errorf("index %d: %s: %w", i, path, err)
	}
	rec := Record{Index: i, Path: path, Result: res}
	elapsed := time.Since(start)

	if res.Rows == 0 {
		r.log.Info("empty table, emitting fallback", "index", i, "path", path)
	}
	r.log.V(2).Info("file reduced",
		"index", i,
		"path", path,
		"rows", res.Rows,
		"countA", res.CountA,
		"countB", res.CountB,
		"excluded", res.Excluded,
		"sumA", res.SumA,
		"sumB", res.SumB,
		"minFES", res.MinFES,
		"fallback", res.Fallback,
		"deltaF", res.DeltaF,
		"elapsed", elapsed)
	return rec, elapsed, nil
}

// deliver emits rec and, once the consumer accepted it, reports it to the Observer.
func (r *Runner) deliver(emit EmitFunc, rec Record, elapsed time.Duration) error {
	if err := emit(rec); err != nil {
		return err
	}
	if r.opts.Observer != nil {
		r.opts.Observer.Observe(rec, elapsed)
	}
	return nil
}

// Run computes every index in [0, Total) and passes records to emit in
// strictly increasing index order. It stops at the first failure.
func (r *Runner) Run(ctx context.Context, emit EmitFunc) error {
	r.log.V(1).Info("sweep started", "dir", r.opts.Dir, "total", r.opts.Total, "workers", r.opts.Workers)
	if r.opts.Workers == 1 || r.opts.Total < 2 {
		return r.runSequential(ctx, emit)
	}
	return r.runOrdered(ctx, emit)
}

func (r *Runner) runSequential(ctx context.Context, emit EmitFunc) error {
	for i := 0; i < r.opts.Total; i++ {
		rec, elapsed, err := r.compute(ctx, i)
		if err != nil {
			return err
		}
		if err := r.deliver(emit, rec, elapsed); err != nil {
			return err
		}
	}
	return nil
}

type outcome struct {
	rec     Record
	elapsed time.Duration
	err     error
}

// runOrdered overlaps loads on a bounded pool and emits in index order.
//
// Every slot receives exactly one outcome, so the consumer never blocks on
// an index that will not be produced. Workers do not cancel each other: a
// failure at index j must not turn an in-flight index i < j into a
// cancellation. Only the consumer cancels, after emitting everything before
// the first failing index.
func (r *Runner) runOrdered(ctx context.Context, emit EmitFunc) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	slots := make([]chan outcome, r.opts.Total)
	for i := range slots {
		slots[i] = make(chan outcome, 1)
	}

	var g errgroup.Group
	g.SetLimit(r.opts.Workers)

	dispatched := make(chan struct{})
	go func() {
		defer close(dispatched)
		for i := range slots {
			if err := ctx.Err(); err != nil {
				slots[i] <- outcome{err: err}
				continue
			}
			i := i
			g.Go(func() error {
				rec, elapsed, err := r.compute(ctx, i)
				slots[i] <- outcome{rec: rec, elapsed: elapsed, err: err}
				return nil
			})
		}
	}()

	var first error
	for i := range slots {
		out := <-slots[i]
		if out.err != nil {
			first = out.err
			break
		}
		if err := r.deliver(emit, out.rec, out.elapsed); err != nil {
			first = err
			break
		}
	}

	cancel()
	<-dispatched
	_ = g.Wait()
	return first
}
