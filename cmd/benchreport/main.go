// Copyright 2026 The Benchreport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command benchreport aggregates benchmark result files into a
// markdown report.
//
// The root command scans a results directory for recognized JSON
// result files (versions.json, system_info.json, and files prefixed
// http_, microbench_, coldstart_ or memory_), classifies them, and
// writes a markdown report with one section per category:
//
//	benchreport --results-dir results/ --output report.md
//
// The process exits with status 1 when the directory does not exist,
// when it contains no recognized result files, or when a recognized
// file is not valid JSON; a single malformed file aborts the whole run
// and no report is written.
//
// Optional flags: --filter narrows the report to matching results
// (see benchjson.Query for the syntax), --charts additionally writes
// an HTML page of bar charts, --validate warns about result documents
// that do not match their expected shape, and --title overrides the
// report heading.
//
// The compare subcommand runs the statistics engine on two raw sample
// files; see its help text.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/benchkit/benchreport/benchchart"
	"github.com/benchkit/benchreport/benchjson"
	"github.com/benchkit/benchreport/benchmd"
)

func main() {
	root := newRootCmd()
	root.AddCommand(newCompareCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		resultsDir string
		output     string
		filter     string
		chartsPath string
		title      string
		validate   bool
	)

	cmd := &cobra.Command{
		Use:          "benchreport",
		Short:        "Aggregate benchmark result files into a markdown report",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(resultsDir, output, filter, chartsPath, title, validate)
		},
	}

	cmd.Flags().StringVar(&resultsDir, "results-dir", "", "directory containing result JSON files")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output markdown file path")
	cmd.Flags().StringVar(&filter, "filter", "", "only report results matching this query (e.g. 'category:http runtime:go')")
	cmd.Flags().StringVar(&chartsPath, "charts", "", "also write an HTML chart page to this path")
	cmd.Flags().StringVar(&title, "title", benchmd.DefaultTitle, "report title")
	cmd.Flags().BoolVar(&validate, "validate", false, "warn about result files that do not match their expected shape")
	cobra.CheckErr(cmd.MarkFlagRequired("results-dir"))
	cobra.CheckErr(cmd.MarkFlagRequired("output"))
	return cmd
}

func run(resultsDir, output, filter, chartsPath, title string, validate bool) error {
	info, err := os.Stat(resultsDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("results directory not found: %s", resultsDir)
	}

	rs, err := benchjson.Load(resultsDir)
	if err != nil {
		return err
	}

	if validate {
		for _, verr := range rs.Validate() {
			pterm.Warning.Println(verr)
		}
	}

	if filter != "" {
		q, err := benchjson.ParseQuery(filter)
		if err != nil {
			return err
		}
		rs = rs.Filter(q)
	}

	if rs.Empty() {
		return errors.New("no results found")
	}

	if chartsPath != "" {
		if err := benchchart.WriteHTML(chartsPath, rs, title); err != nil {
			return err
		}
		pterm.Success.Printfln("Charts written to: %s", chartsPath)
	}

	if err := benchmd.WriteFile(output, rs, benchmd.Options{Title: title}); err != nil {
		return err
	}
	pterm.Success.Printfln("Report written to: %s", output)
	return nil
}
