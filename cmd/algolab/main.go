// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command algolab measures the running time of search and list operations
// over a range of problem sizes and compares the observed growth with the
// theoretical complexity of each operation.
package main

import (
	"context"

	"cloudeng.io/cmdutil/subcmd"
)

const spec = `name: algolab
summary: measure and validate the complexity of search and list operations
commands:
  - name: search
    summary: compare linear and binary search over sorted arrays
  - name: lists
    summary: compare front insertion and removal for lists, slices and deques
  - name: run
    summary: run the experiments described in a yaml configuration file
    arguments:
      - <config.yaml>
  - name: exercises
    summary: run the bracket matching, print queue and palindrome exercises
`

func cli() *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(spec)
	c := &commands{}
	cmdSet.Set("search").MustRunnerAndFlags(c.search,
		subcmd.MustRegisterFlagStruct(&searchFlags{}, nil, nil))
	cmdSet.Set("lists").MustRunnerAndFlags(c.lists,
		subcmd.MustRegisterFlagStruct(&listsFlags{}, nil, nil))
	cmdSet.Set("run").MustRunnerAndFlags(c.run,
		subcmd.MustRegisterFlagStruct(&runFlags{}, nil, nil))
	cmdSet.Set("exercises").MustRunnerAndFlags(c.runExercises,
		subcmd.MustRegisterFlagStruct(&exercisesFlags{}, nil, nil))
	return cmdSet
}

func main() {
	subcmd.Dispatch(context.Background(), cli())
}
