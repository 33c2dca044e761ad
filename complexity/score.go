// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package complexity

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Fit compares the observed growth in duration between two consecutive
// samples with the growth expected by a model.
type Fit struct {
	From     int     `yaml:"from"`
	To       int     `yaml:"to"`
	Observed float64 `yaml:"observed"`
	Expected float64 `yaml:"expected"`
	// Score is Observed/Expected, 1.0 is a perfect match.
	Score float64 `yaml:"score"`
}

// Report contains the Fits for every consecutive pair of samples for
// which a ratio could be computed.
type Report struct {
	Model string `yaml:"model"`
	Steps []Fit  `yaml:"steps"`
	// Mean is the arithmetic mean of the Scores of all Steps and is zero
	// if there are no Steps.
	Mean float64 `yaml:"mean"`
	// Skipped is the number of steps for which no ratio could be computed,
	// typically because of a zero duration.
	Skipped int `yaml:"skipped"`
}

func usable(v float64) bool {
	return v != 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Score compares every consecutive pair of samples against model. Steps
// whose earlier sample has a zero duration, or for which the model's
// expected ratio is zero or undefined (eg. log2(1) is zero), are skipped.
// Fewer than two samples result in a Report with no Steps.
func Score(samples []Sample, model Model) Report {
	r := Report{Model: model.Name}
	if len(samples) < 2 {
		return r
	}
	scores := make([]float64, 0, len(samples)-1)
	for i := 1; i < len(samples); i++ {
		prev, cur := samples[i-1], samples[i]
		if prev.Mean <= 0 {
			r.Skipped++
			continue
		}
		observed := float64(cur.Mean) / float64(prev.Mean)
		prevModel := model.F(float64(prev.Size))
		if !usable(prevModel) {
			r.Skipped++
			continue
		}
		expected := model.F(float64(cur.Size)) / prevModel
		if !usable(expected) {
			r.Skipped++
			continue
		}
		f := Fit{
			From:     prev.Size,
			To:       cur.Size,
			Observed: observed,
			Expected: expected,
			Score:    observed / expected,
		}
		r.Steps = append(r.Steps, f)
		scores = append(scores, f.Score)
	}
	if len(scores) > 0 {
		r.Mean = stat.Mean(scores, nil)
	}
	return r
}

// EstimateExponent estimates k such that duration grows as size^k by
// fitting a straight line to log(duration) against log(size). Linear
// operations yield values close to 1, logarithmic and constant time ones
// values close to 0. Samples with a zero duration are ignored and false
// is returned if fewer than two distinct sizes remain.
func EstimateExponent(samples []Sample) (float64, bool) {
	xs := make([]float64, 0, len(samples))
	ys := make([]float64, 0, len(samples))
	sizes := map[int]struct{}{}
	for _, s := range samples {
		if s.Mean <= 0 || s.Size <= 0 {
			continue
		}
		xs = append(xs, math.Log(float64(s.Size)))
		ys = append(ys, math.Log(float64(s.Mean)))
		sizes[s.Size] = struct{}{}
	}
	if len(sizes) < 2 {
		return 0, false
	}
	_, slope := stat.LinearRegression(xs, ys, nil, false)
	return slope, true
}
