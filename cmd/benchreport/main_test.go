// Copyright 2026 The Benchreport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execRoot(t *testing.T, args ...string) error {
	t.Helper()
	root := newRootCmd()
	root.SetArgs(args)
	return root.Execute()
}

func TestRunMissingDirectory(t *testing.T) {
	err := execRoot(t,
		"--results-dir", filepath.Join(t.TempDir(), "nope"),
		"--output", filepath.Join(t.TempDir(), "report.md"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "results directory not found")
}

func TestRunNoRecognizedResults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "foo.json"), []byte("{}"), 0o644))

	out := filepath.Join(t.TempDir(), "report.md")
	err := execRoot(t, "--results-dir", dir, "--output", out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no results found")

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "no report should be written")
}

func TestRunMalformedResultAborts(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "memory_go.json"),
		[]byte(`{"runtime": "go"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "coldstart_go.json"),
		[]byte(`{"runtime"`), 0o644))

	out := filepath.Join(t.TempDir(), "report.md")
	err := execRoot(t, "--results-dir", dir, "--output", out)
	require.Error(t, err)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "no partial report should be written")
}

func TestRunWritesReport(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "coldstart_rust.json"),
		[]byte(`{"runtime": "rust", "metrics": {"mean_us": 100, "median_us": 90, "p95_us": 150, "p99_us": 200}}`), 0o644))

	out := filepath.Join(t.TempDir(), "report.md")
	require.NoError(t, execRoot(t, "--results-dir", dir, "--output", out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Benchmark Results")
	assert.Contains(t, string(data), "| rust | 100us | 90us | 150us | 200us |")
}

func TestRunFilterRemovingEverythingFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "memory_go.json"),
		[]byte(`{"runtime": "go"}`), 0o644))

	err := execRoot(t,
		"--results-dir", dir,
		"--output", filepath.Join(t.TempDir(), "report.md"),
		"--filter", "runtime:rust")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no results found")
}

func TestRunWithChartsAndValidate(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "memory_go.json"),
		[]byte(`{"runtime": "go", "metrics": {"baseline_kb": "low"}}`), 0o644))

	out := filepath.Join(t.TempDir(), "report.md")
	charts := filepath.Join(t.TempDir(), "charts.html")
	require.NoError(t, execRoot(t,
		"--results-dir", dir, "--output", out,
		"--charts", charts, "--validate"))

	for _, path := range []string{out, charts} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestReadSamples(t *testing.T) {
	dir := t.TempDir()

	arrPath := filepath.Join(dir, "arr.json")
	require.NoError(t, os.WriteFile(arrPath, []byte(`[1, 2, 3.5]`), 0o644))
	xs, err := readSamples(arrPath)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3.5}, xs)

	objPath := filepath.Join(dir, "obj.json")
	require.NoError(t, os.WriteFile(objPath, []byte(`{"samples": [4, 5]}`), 0o644))
	xs, err = readSamples(objPath)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5}, xs)

	badPath := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(badPath, []byte(`{"samples": [1, "two"]}`), 0o644))
	_, err = readSamples(badPath)
	require.Error(t, err)

	scalarPath := filepath.Join(dir, "scalar.json")
	require.NoError(t, os.WriteFile(scalarPath, []byte(`42`), 0o644))
	_, err = readSamples(scalarPath)
	require.Error(t, err)
}

func TestCompareCommand(t *testing.T) {
	dir := t.TempDir()
	aPath := filepath.Join(dir, "a.json")
	bPath := filepath.Join(dir, "b.json")
	require.NoError(t, os.WriteFile(aPath, []byte(`[1, 2, 3, 4, 5]`), 0o644))
	require.NoError(t, os.WriteFile(bPath, []byte(`[10, 11, 12, 13, 14]`), 0o644))

	cmd := newCompareCmd()
	cmd.SetArgs([]string{aPath, bPath})
	require.NoError(t, cmd.Execute())

	cmd = newCompareCmd()
	cmd.SetArgs([]string{aPath, bPath, "--basic"})
	require.NoError(t, cmd.Execute())
}
