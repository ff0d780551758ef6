// Copyright 2026 The Benchreport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchstat computes descriptive statistics and a significance
// test for benchmark samples.
//
// The report pipeline renders pre-aggregated metrics and does not need
// this package; it exists for ad hoc comparisons of raw sample sets,
// such as the compare subcommand of cmd/benchreport.
package benchstat

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// A Summary holds descriptive statistics for one sample.
type Summary struct {
	Mean   float64
	Median float64

	// Std is the population standard deviation. P50, P95 and P99
	// are percentiles computed by linear interpolation between the
	// two closest ranks. These fields are only populated when Full
	// is set.
	Std           float64
	P50, P95, P99 float64

	Min float64
	Max float64
	N   int

	// Full reports whether Std and the percentile fields are
	// populated.
	Full bool
}

// An Engine computes sample statistics. Full selects the complete
// summary and enables Compare; the zero value computes a reduced
// summary (mean, median, min, max, count) and never reports
// significance. Callers resolve the mode once at startup.
type Engine struct {
	Full bool
}

// Summarize computes the summary statistics of xs. It reports ok=false
// for an empty sample; that is the only failure mode.
func (e Engine) Summarize(xs []float64) (Summary, bool) {
	if len(xs) == 0 {
		return Summary{}, false
	}

	samp := stats.Sample{Xs: append([]float64(nil), xs...)}
	samp.Sort()
	sorted := samp.Xs

	min, max := samp.Bounds()
	s := Summary{
		Mean: samp.Mean(),
		Min:  min,
		Max:  max,
		N:    len(sorted),
	}

	if !e.Full {
		// The reduced median is the upper-middle element for
		// even-length samples, not the average of the two
		// middle elements.
		s.Median = sorted[len(sorted)/2]
		return s, true
	}

	s.Full = true
	s.P50 = percentile(sorted, 50)
	s.Median = s.P50
	s.P95 = percentile(sorted, 95)
	s.P99 = percentile(sorted, 99)
	s.Std = popStdDev(sorted, s.Mean)
	return s, true
}

// percentile returns the p'th percentile of the ascending-sorted
// sample using linear interpolation between the two closest ranks.
func percentile(sorted []float64, p float64) float64 {
	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// popStdDev returns the population standard deviation (no Bessel
// correction) of xs about mean.
func popStdDev(xs []float64, mean float64) float64 {
	var sum float64
	for _, x := range xs {
		d := x - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(xs)))
}
