// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/algolab/complexity"
	"cloudeng.io/algolab/complexity/ops"
	"cloudeng.io/algolab/exercises"
	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/flags"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

var (
	// DefaultTrials is the number of trials for each problem size used
	// when none is specified on the command line or in a config file.
	DefaultTrials = 50
	// DefaultSearchSizes are the array sizes used by the search command.
	DefaultSearchSizes = []int{1000, 2000, 5000, 10000, 20000, 50000, 100000, 200000, 500000, 1000000}
	// DefaultListSizes are the number of operations performed by the lists
	// command.
	DefaultListSizes = []int{100, 200, 300, 400, 500, 600, 700, 800, 900, 1000}
)

type CommonFlags struct {
	cmdutil.LoggingFlags
	Format string `subcmd:"format,text,'output format: text or yaml'"`
}

type MeasureFlags struct {
	CommonFlags
	Sizes       flags.Commas `subcmd:"sizes,,'comma separated list of problem sizes, overrides the defaults for the command'"`
	Trials      int          `subcmd:"trials,0,'number of trials for each problem size, 0 selects the default for the command'"`
	Seed        int64        `subcmd:"seed,0,'seed used to generate inputs, 0 selects a random seed'"`
	Concurrency int          `subcmd:"concurrency,1,number of problem sizes to measure concurrently"`
}

type searchFlags struct {
	MeasureFlags
}

type listsFlags struct {
	MeasureFlags
}

type runFlags struct {
	CommonFlags
	Concurrency int `subcmd:"concurrency,1,number of problem sizes to measure concurrently"`
}

type exercisesFlags struct {
	CommonFlags
}

func parseSizes(values []string) ([]int, error) {
	sizes := make([]int, 0, len(values))
	for _, v := range values {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %w", v, err)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

func (mf *MeasureFlags) sizes(defaults []int) ([]int, error) {
	if len(mf.Sizes.Values) == 0 {
		return defaults, nil
	}
	return parseSizes(mf.Sizes.Values)
}

func (mf *MeasureFlags) trials(def int) int {
	if mf.Trials <= 0 {
		return def
	}
	return mf.Trials
}

func newInputs(seed int64) *ops.Inputs {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return ops.NewInputs(rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1))) // #nosec: G404
}

type commands struct {
	out io.Writer
}

func (c *commands) stdout() io.Writer {
	if c.out == nil {
		return os.Stdout
	}
	return c.out
}

// setup validates the common flags and returns a context carrying the
// logger they configure.
func setup(ctx context.Context, cf *CommonFlags) (context.Context, *cmdutil.Logger, error) {
	if err := flags.OneOf(cf.Format).Validate("text", "yaml"); err != nil {
		return ctx, nil, err
	}
	logger, err := cf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, nil, err
	}
	return ctxlog.WithLogger(ctx, logger.Logger), logger, nil
}

func (c *commands) measure(ctx context.Context, mf *MeasureFlags, exps []experiment, defaultSizes []int, defaultTrials int) error {
	ctx, logger, err := setup(ctx, &mf.CommonFlags)
	if err != nil {
		return err
	}
	defer logger.Close()
	sizes, err := mf.sizes(defaultSizes)
	if err != nil {
		return err
	}
	for i := range exps {
		exps[i].sizes = sizes
		exps[i].trials = mf.trials(defaultTrials)
	}
	h := complexity.New(complexity.WithConcurrency(mf.Concurrency))
	results, err := runExperiments(ctx, h, exps)
	if werr := writeResults(c.stdout(), mf.Format, results); werr != nil {
		return werr
	}
	return err
}

func (c *commands) search(ctx context.Context, values any, _ []string) error {
	fv := values.(*searchFlags)
	in := newInputs(fv.Seed)
	exps := []experiment{
		{op: ops.LinearSearch(in), models: []complexity.Model{complexity.Linear}},
		{op: ops.BinarySearch(in), models: []complexity.Model{complexity.Logarithmic}},
	}
	return c.measure(ctx, &fv.MeasureFlags, exps, DefaultSearchSizes, DefaultTrials)
}

func (c *commands) lists(ctx context.Context, values any, _ []string) error {
	fv := values.(*listsFlags)
	// Each operation is repeated n times for a problem of size n, hence
	// an O(1) operation is expected to grow linearly and an O(n) one
	// quadratically.
	exps := []experiment{
		{op: ops.ListPushFront(), models: []complexity.Model{complexity.Linear}},
		{op: ops.SlicePushFront(), models: []complexity.Model{complexity.Quadratic, complexity.Linear}},
		{op: ops.SlicePopFront(), models: []complexity.Model{complexity.Quadratic, complexity.Linear}},
		{op: ops.DequePopFront(), models: []complexity.Model{complexity.Linear}},
	}
	return c.measure(ctx, &fv.MeasureFlags, exps, DefaultListSizes, DefaultTrials)
}

func (c *commands) run(ctx context.Context, values any, args []string) error {
	fv := values.(*runFlags)
	ctx, logger, err := setup(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer logger.Close()
	cfg, err := loadConfig(ctx, args[0])
	if err != nil {
		return err
	}
	exps, err := cfg.experiments(newInputs(cfg.Seed))
	if err != nil {
		return err
	}
	h := complexity.New(complexity.WithConcurrency(fv.Concurrency))
	results, err := runExperiments(ctx, h, exps)
	if werr := writeResults(c.stdout(), fv.Format, results); werr != nil {
		return werr
	}
	return err
}

type exerciseResults struct {
	Brackets   map[string]bool `yaml:"brackets"`
	PrintQueue []string        `yaml:"print_queue"`
	Palindrome map[string]bool `yaml:"palindrome"`
}

func (c *commands) runExercises(ctx context.Context, values any, _ []string) error {
	fv := values.(*exercisesFlags)
	_, logger, err := setup(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer logger.Close()
	exprs := []string{"{[()()]}", "{[(])}"}
	jobs := []string{"doc1.pdf", "photo.jpg", "report.docx"}
	words := []string{"Анна", "hello"}
	res := exerciseResults{
		Brackets:   map[string]bool{},
		PrintQueue: exercises.PrintQueue(jobs),
		Palindrome: map[string]bool{},
	}
	for _, e := range exprs {
		res.Brackets[e] = exercises.Balanced(e)
	}
	for _, w := range words {
		res.Palindrome[w] = exercises.IsPalindrome(w)
	}
	out := c.stdout()
	if fv.Format == "yaml" {
		return writeYAML(out, res)
	}
	for _, e := range exprs {
		fmt.Fprintf(out, "%q balanced: %v\n", e, res.Brackets[e])
	}
	fmt.Fprintf(out, "print queue: %v\n", strings.Join(res.PrintQueue, ", "))
	for _, w := range words {
		fmt.Fprintf(out, "%q palindrome: %v\n", w, res.Palindrome[w])
	}
	return nil
}

// experiment is a single operation to be measured and the models to
// score it against.
type experiment struct {
	op     complexity.Operation
	models []complexity.Model
	sizes  []int
	trials int
}

type result struct {
	Operation string              `yaml:"operation"`
	Trials    int                 `yaml:"trials"`
	Samples   []complexity.Sample `yaml:"samples"`
	Reports   []complexity.Report `yaml:"reports"`
	Exponent  *float64            `yaml:"exponent,omitempty"`
	Error     string              `yaml:"error,omitempty"`
}

// runExperiments runs every experiment, a failure in one does not
// prevent the others from being run.
func runExperiments(ctx context.Context, h *complexity.Harness, exps []experiment) ([]result, error) {
	logger := ctxlog.Logger(ctx)
	errs := &errors.M{}
	results := make([]result, 0, len(exps))
	for _, exp := range exps {
		if ctx.Err() != nil {
			errs.Append(ctx.Err())
			break
		}
		start := time.Now()
		logger.Info("measuring", "operation", exp.op.Name, "sizes", len(exp.sizes), "trials", exp.trials)
		samples, err := h.Measure(ctx, exp.op, exp.sizes, exp.trials)
		r := result{
			Operation: exp.op.Name,
			Trials:    exp.trials,
			Samples:   samples,
		}
		if err != nil {
			logger.Error("measurement failed", "operation", exp.op.Name, "error", err)
			r.Error = err.Error()
			errs.Append(err)
		}
		for _, m := range exp.models {
			r.Reports = append(r.Reports, complexity.Score(samples, m))
		}
		if k, ok := complexity.EstimateExponent(samples); ok {
			r.Exponent = &k
		}
		logger.Info("measured", "operation", exp.op.Name, "samples", len(samples), "elapsed", time.Since(start))
		results = append(results, r)
	}
	return results, errs.Err()
}
