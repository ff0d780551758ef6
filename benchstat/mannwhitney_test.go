// Copyright 2026 The Benchreport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareRequiresThreeSamplesPerSide(t *testing.T) {
	engine := Engine{Full: true}
	big := []float64{1, 2, 3, 4, 5}

	for _, small := range [][]float64{nil, {1}, {1, 2}} {
		assert.False(t, engine.Compare(small, big).Available)
		assert.False(t, engine.Compare(big, small).Available)
	}
}

func TestCompareUnavailableInReducedMode(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{10, 11, 12, 13, 14}
	assert.False(t, Engine{}.Compare(a, b).Available)
}

func TestCompareDegenerateSamples(t *testing.T) {
	// Samples whose values are all equal cannot be ranked.
	a := []float64{5, 5, 5, 5}
	b := []float64{5, 5, 5, 5}
	assert.False(t, Engine{Full: true}.Compare(a, b).Available)
}

func TestCompareSeparatedSamples(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{10, 11, 12, 13, 14}

	sig := Engine{Full: true}.Compare(a, b)
	require.True(t, sig.Available)
	assert.True(t, sig.Significant)
	assert.Greater(t, sig.P, 0.0)
	assert.Less(t, sig.P, 0.05)
}

func TestCompareSimilarSamples(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	b := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	sig := Engine{Full: true}.Compare(a, b)
	require.True(t, sig.Available)
	assert.False(t, sig.Significant)
	assert.Greater(t, sig.P, 0.05)
}
