// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strings"

	"cloudeng.io/algolab/complexity"
	"cloudeng.io/algolab/complexity/ops"
	"cloudeng.io/cmdutil/cmdyaml"
)

// Config represents a set of experiments to be run by the run command,
// for example:
//
//	seed: 42
//	trials: 50
//	experiments:
//	  - operation: linear-search
//	    models: [linear]
//	    sizes: [1000, 2000, 5000]
//	  - operation: binary-search
//	    models: [logarithmic]
//	    sizes: [1000, 2000, 5000]
//	    trials: 100
type Config struct {
	Seed        int64              `yaml:"seed"`
	Trials      int                `yaml:"trials"`
	Experiments []ExperimentConfig `yaml:"experiments"`
}

// ExperimentConfig represents a single experiment. Trials, if non-zero,
// overrides the Config's Trials.
type ExperimentConfig struct {
	Operation string   `yaml:"operation"`
	Models    []string `yaml:"models"`
	Sizes     []int    `yaml:"sizes"`
	Trials    int      `yaml:"trials"`
}

func loadConfig(ctx context.Context, filename string) (Config, error) {
	var cfg Config
	if err := cmdyaml.ParseConfigFile(ctx, filename, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func parseConfig(spec string) (Config, error) {
	var cfg Config
	if err := cmdyaml.ParseConfigString(spec, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// experiments returns the configured experiments, the search operations
// all draw their inputs from in.
func (c Config) experiments(in *ops.Inputs) ([]experiment, error) {
	if len(c.Experiments) == 0 {
		return nil, fmt.Errorf("no experiments are configured")
	}
	exps := make([]experiment, 0, len(c.Experiments))
	for i, ec := range c.Experiments {
		op, ok := ops.ByName(ec.Operation, in)
		if !ok {
			return nil, fmt.Errorf("experiment %v: unknown operation %q, must be one of: %v", i, ec.Operation, strings.Join(ops.Names(), ", "))
		}
		if len(ec.Sizes) == 0 {
			return nil, fmt.Errorf("experiment %v: %v: no sizes specified", i, ec.Operation)
		}
		exp := experiment{
			op:     op,
			sizes:  ec.Sizes,
			trials: c.Trials,
		}
		if ec.Trials != 0 {
			exp.trials = ec.Trials
		}
		if exp.trials <= 0 {
			exp.trials = DefaultTrials
		}
		for _, name := range ec.Models {
			m, ok := complexity.ModelByName(name)
			if !ok {
				return nil, fmt.Errorf("experiment %v: %v: unknown model %q", i, ec.Operation, name)
			}
			exp.models = append(exp.models, m)
		}
		exps = append(exps, exp)
	}
	return exps, nil
}
