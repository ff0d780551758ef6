// Copyright 2026 The Benchreport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import "github.com/aclements/go-moremath/stats"

// minCompareSamples is the smallest sample size on each side for which
// Compare runs the test at all.
const minCompareSamples = 3

// significanceLevel is the only level Compare decides at.
const significanceLevel = 0.05

// A Significance is the outcome of a two-sided Mann-Whitney U test
// between two samples. Available is false when the test was not run:
// the engine is in reduced mode, a sample has fewer than three
// observations, or the samples are too degenerate to rank.
type Significance struct {
	Available   bool
	U           float64 // Mann-Whitney U statistic
	P           float64 // two-sided p-value
	Significant bool    // P < 0.05
}

// Compare runs a two-sided Mann-Whitney U test on samples a and b.
func (e Engine) Compare(a, b []float64) Significance {
	if !e.Full || len(a) < minCompareSamples || len(b) < minCompareSamples {
		return Significance{}
	}
	res, err := stats.MannWhitneyUTest(a, b, stats.LocationDiffers)
	if err != nil {
		// Samples whose values are all equal cannot be ranked.
		return Significance{}
	}
	return Significance{
		Available:   true,
		U:           res.U,
		P:           res.P,
		Significant: res.P < significanceLevel,
	}
}
