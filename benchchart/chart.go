// Copyright 2026 The Benchreport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchchart renders a ResultSet as an HTML page of bar
// charts, one chart per tabular category. It is a companion to the
// markdown report, not a replacement for it.
package benchchart

import (
	"fmt"
	"os"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/benchkit/benchreport/benchjson"
)

// WriteHTML renders one chart per non-empty tabular category of rs
// into a single HTML page at path, replacing any existing file.
func WriteHTML(path string, rs *benchjson.ResultSet, title string) (err error) {
	page := components.NewPage()
	page.SetPageTitle(title)
	page.SetLayout("flex")
	for _, c := range build(rs) {
		page.AddCharts(c)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart page: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := page.Render(f); err != nil {
		return fmt.Errorf("rendering chart page: %w", err)
	}
	return nil
}

func build(rs *benchjson.ResultSet) []components.Charter {
	var out []components.Charter
	if len(rs.HTTP) > 0 {
		out = append(out, httpChart(rs.HTTP))
	}
	if len(rs.Microbench) > 0 {
		if c := microbenchChart(rs.Microbench); c != nil {
			out = append(out, c)
		}
	}
	if len(rs.ColdStart) > 0 {
		out = append(out, metricsChart("Cold start (us)", rs.ColdStart, []series{
			{"mean", "mean_us"},
			{"median", "median_us"},
			{"p95", "p95_us"},
			{"p99", "p99_us"},
		}))
	}
	if len(rs.Memory) > 0 {
		out = append(out, metricsChart("Memory usage (KB)", rs.Memory, []series{
			{"baseline", "baseline_kb"},
			{"peak", "peak_kb"},
			{"avg", "avg_kb"},
		}))
	}
	return out
}

func newBar(title string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithAnimation(false))
	return bar
}

func httpChart(m map[string]benchjson.Document) *charts.Bar {
	keys := sortedKeys(m)
	data := make([]opts.BarData, len(keys))
	for i, key := range keys {
		data[i] = opts.BarData{Value: m[key].Sub("metrics").Num("requests_per_second", 0)}
	}
	bar := newBar("HTTP requests per second")
	bar.SetXAxis(keys).AddSeries("req/s", data)
	return bar
}

// microbenchChart plots ops/s per benchmark with one series per
// runtime. Benchmarks a runtime did not report are left as gaps.
func microbenchChart(m map[string]benchjson.Document) *charts.Bar {
	nameSet := make(map[string]bool)
	for _, doc := range m {
		for _, name := range doc.Sub("benchmarks").Keys() {
			nameSet[name] = true
		}
	}
	if len(nameSet) == 0 {
		return nil
	}
	names := make([]string, 0, len(nameSet))
	for name := range nameSet {
		names = append(names, name)
	}
	sort.Strings(names)

	bar := newBar("Microbenchmarks (ops/s)")
	bar.SetXAxis(names)
	for _, rt := range sortedKeys(m) {
		benchmarks := m[rt].Sub("benchmarks")
		data := make([]opts.BarData, len(names))
		for i, name := range names {
			if benchmarks.Has(name) {
				data[i] = opts.BarData{Value: benchmarks.Sub(name).Num("ops_per_sec", 0)}
			} else {
				data[i] = opts.BarData{Value: nil}
			}
		}
		bar.AddSeries(rt, data)
	}
	return bar
}

// series names one metric plotted from each document's metrics object.
type series struct {
	name  string
	field string
}

func metricsChart(title string, m map[string]benchjson.Document, fields []series) *charts.Bar {
	runtimes := sortedKeys(m)
	bar := newBar(title)
	bar.SetXAxis(runtimes)
	for _, s := range fields {
		data := make([]opts.BarData, len(runtimes))
		for i, rt := range runtimes {
			data[i] = opts.BarData{Value: m[rt].Sub("metrics").Num(s.field, 0)}
		}
		bar.AddSeries(s.name, data)
	}
	return bar
}

func sortedKeys(m map[string]benchjson.Document) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
