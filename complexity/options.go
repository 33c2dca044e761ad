// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package complexity

import "github.com/jacobsa/timeutil"

type options struct {
	clock       timeutil.Clock
	concurrency int
}

// Option represents an option that can be passed to New.
type Option func(*options)

// WithClock sets the clock used to time each trial. It is intended
// primarily for testing with a timeutil.SimulatedClock.
func WithClock(clock timeutil.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithConcurrency sets the number of problem sizes that may be measured
// concurrently. Trials for a single size are always run sequentially.
// Note that concurrent measurements compete for the same CPUs and memory
// bandwidth and hence are noisier than sequential ones.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = max(n, 1)
	}
}
