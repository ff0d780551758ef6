// Copyright 2026 The Benchreport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchjson

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadClassifiesResults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "versions.json", `{"go": "1.24"}`)
	writeFile(t, dir, "system_info.json", `{"os": "linux", "cpu_cores": 8}`)
	writeFile(t, dir, "http_go_users.json",
		`{"runtime": "go", "endpoint": "/users", "metrics": {"requests_per_second": 12345}}`)
	writeFile(t, dir, "microbench_go.json", `{"runtime": "go", "benchmarks": {}}`)
	writeFile(t, dir, "coldstart_rust.json", `{"runtime": "rust", "metrics": {}}`)
	writeFile(t, dir, "memory_go.json", `{"runtime": "go", "metrics": {}}`)

	rs, err := Load(dir)
	require.NoError(t, err)

	assert.False(t, rs.Empty())
	assert.Equal(t, "1.24", rs.Versions.Str("go", ""))
	assert.Equal(t, "linux", rs.System.Str("os", ""))
	assert.Contains(t, rs.HTTP, "go__users")
	assert.Contains(t, rs.Microbench, "go")
	assert.Contains(t, rs.ColdStart, "rust")
	assert.Contains(t, rs.Memory, "go")
}

func TestLoadKeyFallbacks(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "http_x.json", `{"metrics": {}}`)
	writeFile(t, dir, "microbench_x.json", `{"benchmarks": {}}`)

	rs, err := Load(dir)
	require.NoError(t, err)

	// Missing runtime falls back to "unknown"; a missing endpoint
	// contributes an empty string to the HTTP key.
	assert.Contains(t, rs.HTTP, "unknown_")
	assert.Contains(t, rs.Microbench, "unknown")
}

func TestLoadIgnoresUnrecognizedFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "notes.txt", "not json at all")
	writeFile(t, dir, "foo.json", `{"runtime": "go"}`)
	writeFile(t, dir, "http_results.txt", `{"runtime": "go"}`)

	rs, err := Load(dir)
	require.NoError(t, err)
	assert.True(t, rs.Empty())
}

func TestLoadMalformedJSONIsFatal(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "coldstart_go.json", `{"runtime": "go"}`)
	writeFile(t, dir, "http_bad.json", `{"runtime": `)

	rs, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http_bad.json")
	assert.Nil(t, rs)
}

func TestLoadMissingDirectory(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
}

func TestLoadLaterFileWinsOnKeyCollision(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "memory_a.json", `{"runtime": "go", "metrics": {"peak_kb": 1}}`)
	writeFile(t, dir, "memory_b.json", `{"runtime": "go", "metrics": {"peak_kb": 2}}`)

	rs, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, rs.Memory, 1)
	assert.Equal(t, 2.0, rs.Memory["go"].Sub("metrics").Num("peak_kb", 0))
}

func TestEmptyResultSet(t *testing.T) {
	assert.True(t, new(ResultSet).Empty())

	rs := &ResultSet{Versions: Document{}}
	assert.False(t, rs.Empty())
}
