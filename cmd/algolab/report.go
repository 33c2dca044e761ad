// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

func writeYAML(out io.Writer, v any) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func writeResults(out io.Writer, format string, results []result) error {
	if format == "yaml" {
		return writeYAML(out, results)
	}
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(out)
		}
		if err := writeText(out, r); err != nil {
			return err
		}
	}
	return nil
}

func writeText(out io.Writer, r result) error {
	fmt.Fprintf(out, "%v (%v trials)\n", r.Operation, r.Trials)
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "\tsize\tmean (s)\tstddev (s)\t\n")
	for _, s := range r.Samples {
		fmt.Fprintf(tw, "\t%d\t%.8f\t%.8f\t\n", s.Size, s.Seconds(), s.StdDev.Seconds())
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	for _, rep := range r.Reports {
		fmt.Fprintf(out, "%v:\n", rep.Model)
		for _, f := range rep.Steps {
			fmt.Fprintf(out, "  %v -> %v: grew %.2fx, expected %.2fx, score %.2f\n", f.From, f.To, f.Observed, f.Expected, f.Score)
		}
		fmt.Fprintf(out, "  mean score: %.2f", rep.Mean)
		if rep.Skipped > 0 {
			fmt.Fprintf(out, " (%v steps skipped)", rep.Skipped)
		}
		fmt.Fprintln(out)
	}
	if r.Exponent != nil {
		fmt.Fprintf(out, "estimated exponent: %.2f\n", *r.Exponent)
	}
	if len(r.Error) > 0 {
		fmt.Fprintf(out, "errors:\n%v\n", r.Error)
	}
	return nil
}
