// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package complexity provides a harness for empirically validating the
// asymptotic complexity of an operation. An Operation is timed over a
// sweep of problem sizes, with the duration for each size averaged over
// repeated trials. The resulting Samples may then be scored against a
// theoretical Model of growth.
//
// Typical usage is:
//
//	h := complexity.New()
//	samples, err := h.Measure(ctx, op, []int{1000, 2000, 4000}, 50)
//	...
//	report := complexity.Score(samples, complexity.Linear)
//
// A Report's Mean close to 1.0 indicates that the observed growth matches
// the model. It is a diagnostic only; callers must choose their own
// tolerance.
package complexity

import (
	"context"
	"fmt"
	"math"
	"time"

	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/sync/errgroup"
	"github.com/jacobsa/timeutil"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrInvalidTrials is returned when the number of trials is not positive.
	ErrInvalidTrials = errors.New("number of trials must be positive")
	// ErrInvalidSize is returned for any problem size that is not positive.
	ErrInvalidSize = errors.New("problem size must be positive")
)

// Trial represents a single timed execution of an operation. Run is timed,
// Reset, if non-nil, is called before every call of Run to restore the
// input to its initial state and is not timed.
type Trial struct {
	Reset func()
	Run   func()
}

// Operation represents an operation whose complexity is to be measured.
// Prepare is called once per problem size to construct the input for that
// size and is not timed.
type Operation struct {
	Name    string
	Prepare func(n int) (Trial, error)
}

// Sample represents the mean duration of an operation for a given
// problem size.
type Sample struct {
	Size   int           `yaml:"size"`
	Mean   time.Duration `yaml:"mean"`
	StdDev time.Duration `yaml:"stddev"`
	Trials int           `yaml:"trials"`
}

// Seconds returns the mean duration in seconds.
func (s Sample) Seconds() float64 {
	return s.Mean.Seconds()
}

// Harness measures the running time of operations.
type Harness struct {
	clock       timeutil.Clock
	concurrency int
}

// New returns a new Harness. By default it uses the real clock, whose
// readings include Go's monotonic clock, and measures one problem size
// at a time.
func New(opts ...Option) *Harness {
	o := options{
		clock:       timeutil.RealClock(),
		concurrency: 1,
	}
	for _, fn := range opts {
		fn(&o)
	}
	return &Harness{clock: o.clock, concurrency: o.concurrency}
}

// Measure times op for every size in sizes, running trials back-to-back
// executions for each size. It returns one Sample per size, in the order
// given by sizes. A failure for one size, including a panic in the
// operation, does not prevent the remaining sizes from being measured;
// the samples that were obtained are returned along with an error that
// describes all of the failures.
func (h *Harness) Measure(ctx context.Context, op Operation, sizes []int, trials int) ([]Sample, error) {
	if trials <= 0 {
		return nil, fmt.Errorf("%v: %w: %v", op.Name, ErrInvalidTrials, trials)
	}
	if op.Prepare == nil {
		return nil, fmt.Errorf("%v: no Prepare function", op.Name)
	}
	results := make([]*Sample, len(sizes))
	var err error
	if h.concurrency <= 1 {
		err = h.sequential(ctx, op, sizes, trials, results)
	} else {
		err = h.parallel(ctx, op, sizes, trials, results)
	}
	samples := make([]Sample, 0, len(sizes))
	for _, s := range results {
		if s != nil {
			samples = append(samples, *s)
		}
	}
	return samples, err
}

func (h *Harness) sequential(ctx context.Context, op Operation, sizes []int, trials int, results []*Sample) error {
	errs := &errors.M{}
	for i, n := range sizes {
		if err := ctx.Err(); err != nil {
			errs.Append(err)
			break
		}
		s, err := h.measureSize(ctx, op, n, trials)
		if err != nil {
			errs.Append(err)
			continue
		}
		results[i] = &s
	}
	return errs.Err()
}

func (h *Harness) parallel(ctx context.Context, op Operation, sizes []int, trials int, results []*Sample) error {
	var g errgroup.T
	sem := make(chan struct{}, h.concurrency)
	for i, n := range sizes {
		g.Go(func() error {
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				return ctx.Err()
			}
			defer func() { <-sem }()
			s, err := h.measureSize(ctx, op, n, trials)
			if err != nil {
				return err
			}
			results[i] = &s
			return nil
		})
	}
	return g.Wait()
}

func (h *Harness) measureSize(ctx context.Context, op Operation, n, trials int) (sample Sample, err error) {
	if n <= 0 {
		return Sample{}, fmt.Errorf("%v: size %v: %w", op.Name, n, ErrInvalidSize)
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v: size %v: panic: %v", op.Name, n, r)
		}
	}()
	trial, err := op.Prepare(n)
	if err != nil {
		return Sample{}, fmt.Errorf("%v: size %v: %w", op.Name, n, err)
	}
	if trial.Run == nil {
		return Sample{}, fmt.Errorf("%v: size %v: no Run function", op.Name, n)
	}
	durations := make([]float64, trials)
	for i := range durations {
		if err := ctx.Err(); err != nil {
			return Sample{}, fmt.Errorf("%v: size %v: %w", op.Name, n, err)
		}
		if trial.Reset != nil {
			trial.Reset()
		}
		start := h.clock.Now()
		trial.Run()
		durations[i] = float64(max(h.clock.Now().Sub(start), 0))
	}
	mean, std := stat.MeanStdDev(durations, nil)
	if math.IsNaN(std) {
		std = 0
	}
	sample = Sample{
		Size:   n,
		Mean:   time.Duration(math.Round(mean)),
		StdDev: time.Duration(math.Round(std)),
		Trials: trials,
	}
	ctxlog.Logger(ctx).Debug("measured", "operation", op.Name, "size", n, "trials", trials, "mean", sample.Mean, "stddev", sample.StdDev)
	return sample, nil
}
