// Copyright 2026 The Benchreport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchmd renders a ResultSet as a markdown report.
//
// The report starts with a title and generation timestamp, followed by
// one section per non-empty category in fixed order: system
// information, HTTP benchmarks, microbenchmarks, cold starts, memory
// usage, and a trailing methodology link. Missing document fields
// render as documented defaults ("unknown", 0 or an empty string), so
// rendering never fails on incomplete input.
package benchmd

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/benchkit/benchreport/benchjson"
)

// DefaultTitle is the report title used when Options.Title is empty.
const DefaultTitle = "Benchmark Results"

// Options configure report rendering.
type Options struct {
	// Title is the top-level heading. Defaults to DefaultTitle.
	Title string

	// Now supplies the generation timestamp. Defaults to time.Now.
	Now func() time.Time
}

// WriteFile renders rs and writes the report to path, replacing any
// existing file.
func WriteFile(path string, rs *benchjson.ResultSet, opts Options) error {
	return os.WriteFile(path, Render(rs, opts), 0o644)
}

// Render produces the markdown report for rs.
func Render(rs *benchjson.ResultSet, opts Options) []byte {
	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	w := new(bytes.Buffer)
	fmt.Fprintf(w, "# %s\n\n", title)
	fmt.Fprintf(w, "**Generated:** %s\n\n", now().Format("2006-01-02 15:04:05"))

	if rs.System != nil {
		systemSection(w, rs.System)
	}
	if len(rs.HTTP) > 0 {
		httpSection(w, rs.HTTP)
	}
	if len(rs.Microbench) > 0 {
		microbenchSection(w, rs.Microbench)
	}
	if len(rs.ColdStart) > 0 {
		coldStartSection(w, rs.ColdStart)
	}
	if len(rs.Memory) > 0 {
		memorySection(w, rs.Memory)
	}

	fmt.Fprintf(w, "## Methodology\n\n")
	fmt.Fprintf(w, "See [methodology.md](../methodology.md) for detailed test methodology.\n")
	return w.Bytes()
}

func systemSection(w *bytes.Buffer, sys benchjson.Document) {
	fmt.Fprintf(w, "## System Information\n\n")
	fmt.Fprintf(w, "- **OS:** %s %s\n", sys.Str("os", "unknown"), sys.Str("os_version", ""))
	fmt.Fprintf(w, "- **CPU:** %s\n", sys.Str("cpu_model", "unknown"))
	fmt.Fprintf(w, "- **Cores:** %s\n", sys.Field("cpu_cores", "unknown"))
	fmt.Fprintf(w, "- **RAM:** %s GB\n", sys.Field("ram_gb", "unknown"))
	fmt.Fprintln(w)

	runtimes := sys.Sub("runtimes")
	if len(runtimes) == 0 {
		return
	}
	fmt.Fprintf(w, "### Runtime Versions\n\n")
	for _, rt := range runtimes.Keys() {
		fmt.Fprintf(w, "- **%s:** %s\n", rt, runtimes.Field(rt, "unknown"))
	}
	fmt.Fprintln(w)
}

func httpSection(w *bytes.Buffer, m map[string]benchjson.Document) {
	fmt.Fprintf(w, "## HTTP Benchmark Results\n\n")
	fmt.Fprintf(w, "| Runtime | Endpoint | RPS | p99 Latency |\n")
	fmt.Fprintf(w, "|---------|----------|-----|-------------|\n")
	for _, key := range sortedKeys(m) {
		doc := m[key]
		metrics := doc.Sub("metrics")
		fmt.Fprintf(w, "| %s | %s | %s | %ss |\n",
			doc.Str("runtime", "unknown"),
			doc.Str("endpoint", "unknown"),
			comma(metrics.Num("requests_per_second", 0), 0),
			strconv.FormatFloat(metrics.Num("latency_p99_secs", 0), 'f', 4, 64))
	}
	fmt.Fprintln(w)
}

func microbenchSection(w *bytes.Buffer, m map[string]benchjson.Document) {
	fmt.Fprintf(w, "## Microbenchmark Results\n\n")

	// Benchmark rows are the union of the benchmark names reported
	// by any runtime.
	nameSet := make(map[string]bool)
	for _, doc := range m {
		for _, name := range doc.Sub("benchmarks").Keys() {
			nameSet[name] = true
		}
	}
	if len(nameSet) == 0 {
		return
	}
	names := make([]string, 0, len(nameSet))
	for name := range nameSet {
		names = append(names, name)
	}
	sort.Strings(names)

	runtimes := sortedKeys(m)
	fmt.Fprintf(w, "| Benchmark |")
	for _, rt := range runtimes {
		fmt.Fprintf(w, " %s |", rt)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "|")
	for i := 0; i < len(runtimes)+1; i++ {
		fmt.Fprintf(w, "---|")
	}
	fmt.Fprintln(w)

	for _, name := range names {
		fmt.Fprintf(w, "| %s |", name)
		for _, rt := range runtimes {
			benchmarks := m[rt].Sub("benchmarks")
			if benchmarks.Has(name) {
				ops := benchmarks.Sub(name).Num("ops_per_sec", 0)
				fmt.Fprintf(w, " %s ops/s |", comma(ops, 2))
			} else {
				fmt.Fprintf(w, " - |")
			}
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}

func coldStartSection(w *bytes.Buffer, m map[string]benchjson.Document) {
	fmt.Fprintf(w, "## Cold Start Results\n\n")
	fmt.Fprintf(w, "| Runtime | Mean | Median | p95 | p99 |\n")
	fmt.Fprintf(w, "|---------|------|--------|-----|-----|\n")
	for _, runtime := range sortedKeys(m) {
		metrics := m[runtime].Sub("metrics")
		fmt.Fprintf(w, "| %s | %sus | %sus | %sus | %sus |\n",
			runtime,
			commaInt(metrics.Num("mean_us", 0)),
			commaInt(metrics.Num("median_us", 0)),
			commaInt(metrics.Num("p95_us", 0)),
			commaInt(metrics.Num("p99_us", 0)))
	}
	fmt.Fprintln(w)
}

func memorySection(w *bytes.Buffer, m map[string]benchjson.Document) {
	fmt.Fprintf(w, "## Memory Usage\n\n")
	fmt.Fprintf(w, "| Runtime | Baseline | Peak | Avg |\n")
	fmt.Fprintf(w, "|---------|----------|------|-----|\n")
	for _, runtime := range sortedKeys(m) {
		metrics := m[runtime].Sub("metrics")
		fmt.Fprintf(w, "| %s | %s KB | %s KB | %s KB |\n",
			runtime,
			commaInt(metrics.Num("baseline_kb", 0)),
			commaInt(metrics.Num("peak_kb", 0)),
			commaInt(metrics.Num("avg_kb", 0)))
	}
	fmt.Fprintln(w)
}

func sortedKeys(m map[string]benchjson.Document) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
