// Copyright 2026 The Benchreport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/benchkit/benchreport/benchstat"
)

func newCompareCmd() *cobra.Command {
	var basic bool

	cmd := &cobra.Command{
		Use:   "compare <samples-a.json> <samples-b.json>",
		Short: "Compare two raw sample files with a Mann-Whitney U test",
		Long: `Compare reads two sample files, prints summary statistics for each,
and runs a two-sided Mann-Whitney U test between them. Each file is
either a JSON array of numbers or an object with a "samples" array.

The test needs at least three observations on each side; with fewer it
is reported as unavailable.`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := benchstat.Engine{Full: !basic}
			if basic {
				pterm.Warning.Println("reduced statistics: standard deviation, percentiles and significance test disabled")
			}
			a, err := readSamples(args[0])
			if err != nil {
				return err
			}
			b, err := readSamples(args[1])
			if err != nil {
				return err
			}
			return printComparison(engine, args[0], args[1], a, b)
		},
	}

	cmd.Flags().BoolVar(&basic, "basic", false, "compute the reduced summary only")
	return cmd
}

// readSamples loads one sample file: a JSON array of numbers, or an
// object with a "samples" array of numbers.
func readSamples(path string) ([]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	arr, ok := raw.([]any)
	if !ok {
		if obj, isObj := raw.(map[string]any); isObj {
			arr, ok = obj["samples"].([]any)
		}
	}
	if !ok {
		return nil, fmt.Errorf(`%s: expected a JSON array of numbers or an object with a "samples" array`, path)
	}

	samples := make([]float64, len(arr))
	for i, v := range arr {
		n, isNum := v.(float64)
		if !isNum {
			return nil, fmt.Errorf("%s: sample %d is not a number", path, i)
		}
		samples[i] = n
	}
	return samples, nil
}

func printComparison(engine benchstat.Engine, nameA, nameB string, a, b []float64) error {
	sa, okA := engine.Summarize(a)
	sb, okB := engine.Summarize(b)

	cell := func(ok bool, v float64) string {
		if !ok {
			return "-"
		}
		return strconv.FormatFloat(v, 'g', 6, 64)
	}
	data := pterm.TableData{{"", nameA, nameB}}
	row := func(label string, va, vb float64) {
		data = append(data, []string{label, cell(okA, va), cell(okB, vb)})
	}
	row("n", float64(sa.N), float64(sb.N))
	row("mean", sa.Mean, sb.Mean)
	row("median", sa.Median, sb.Median)
	if engine.Full {
		row("std", sa.Std, sb.Std)
		row("p50", sa.P50, sb.P50)
		row("p95", sa.P95, sb.P95)
		row("p99", sa.P99, sb.P99)
	}
	row("min", sa.Min, sb.Min)
	row("max", sa.Max, sb.Max)
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}

	sig := engine.Compare(a, b)
	if !sig.Available {
		pterm.Info.Println("significance test unavailable (needs full statistics and at least 3 samples per side)")
		return nil
	}
	pterm.Info.Printfln("Mann-Whitney U=%g, two-sided p=%g (significant at 0.05: %v)",
		sig.U, sig.P, sig.Significant)
	return nil
}
