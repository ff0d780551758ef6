// Copyright 2026 The Benchreport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchjson loads benchmark result files produced by the
// benchmark runners.
//
// A results directory contains flat JSON documents whose filenames
// identify what they measure: "versions.json" and "system_info.json"
// describe the environment, while files prefixed "http_",
// "microbench_", "coldstart_" and "memory_" carry one result document
// each. Load classifies every recognized file into a ResultSet; files
// with other names are ignored.
//
// Result documents are loosely typed. Consumers access fields through
// Document, which substitutes defaults for missing or mistyped fields
// so that an incomplete result never fails to render.
package benchjson

// A Category names one class of benchmark result.
type Category string

const (
	CategoryVersions   Category = "versions"
	CategorySystem     Category = "system"
	CategoryHTTP       Category = "http"
	CategoryMicrobench Category = "microbench"
	CategoryColdStart  Category = "coldstart"
	CategoryMemory     Category = "memory"
)

// A ResultSet holds every recognized result document from one results
// directory, grouped by category. The tabular categories are keyed by
// an identifier derived from the document (the runtime name, combined
// with the endpoint for HTTP results). A ResultSet is built once by
// Load and not modified afterwards.
type ResultSet struct {
	// Versions and System are singleton documents from
	// versions.json and system_info.json. They are nil when the
	// corresponding file is absent.
	Versions Document
	System   Document

	HTTP       map[string]Document
	Microbench map[string]Document
	ColdStart  map[string]Document
	Memory     map[string]Document
}

// Empty reports whether rs contains no result documents at all.
func (rs *ResultSet) Empty() bool {
	return rs.Versions == nil && rs.System == nil &&
		len(rs.HTTP) == 0 && len(rs.Microbench) == 0 &&
		len(rs.ColdStart) == 0 && len(rs.Memory) == 0
}
