// Copyright 2026 The Benchreport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchjson

import (
	"fmt"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Per-category schemas for the recognized result shapes. Every field
// is optional, matching the tolerant loading contract, but a field
// that is present must have the expected type.
var categorySchemas = map[Category]string{
	CategoryVersions: `{
		"type": "object",
		"additionalProperties": {"type": "string"}
	}`,
	CategorySystem: `{
		"type": "object",
		"properties": {
			"os": {"type": "string"},
			"os_version": {"type": "string"},
			"cpu_model": {"type": "string"},
			"cpu_cores": {"type": "number"},
			"ram_gb": {"type": "number"},
			"runtimes": {
				"type": "object",
				"additionalProperties": {"type": "string"}
			}
		}
	}`,
	CategoryHTTP: `{
		"type": "object",
		"properties": {
			"runtime": {"type": "string"},
			"endpoint": {"type": "string"},
			"metrics": {
				"type": "object",
				"properties": {
					"requests_per_second": {"type": "number"},
					"latency_p99_secs": {"type": "number"}
				}
			}
		}
	}`,
	CategoryMicrobench: `{
		"type": "object",
		"properties": {
			"runtime": {"type": "string"},
			"benchmarks": {
				"type": "object",
				"additionalProperties": {
					"type": "object",
					"properties": {
						"ops_per_sec": {"type": "number"}
					}
				}
			}
		}
	}`,
	CategoryColdStart: `{
		"type": "object",
		"properties": {
			"runtime": {"type": "string"},
			"metrics": {
				"type": "object",
				"properties": {
					"mean_us": {"type": "number"},
					"median_us": {"type": "number"},
					"p95_us": {"type": "number"},
					"p99_us": {"type": "number"}
				}
			}
		}
	}`,
	CategoryMemory: `{
		"type": "object",
		"properties": {
			"runtime": {"type": "string"},
			"metrics": {
				"type": "object",
				"properties": {
					"baseline_kb": {"type": "number"},
					"peak_kb": {"type": "number"},
					"avg_kb": {"type": "number"}
				}
			}
		}
	}`,
}

// Validate checks every document in rs against the schema for its
// category and returns one error per mismatching document, ordered by
// category and key. Mismatches are advisory: the report renderer
// tolerates them by substituting defaults.
func (rs *ResultSet) Validate() []error {
	var errs []error
	compiled := make(map[Category]*jsonschema.Schema)
	check := func(cat Category, key string, doc Document) {
		sch, ok := compiled[cat]
		if !ok {
			var err error
			sch, err = compileSchema(cat)
			if err != nil {
				errs = append(errs, err)
				return
			}
			compiled[cat] = sch
		}
		if err := sch.Validate(map[string]any(doc)); err != nil {
			if key != "" {
				errs = append(errs, fmt.Errorf("%s result %q: %v", cat, key, err))
			} else {
				errs = append(errs, fmt.Errorf("%s result: %v", cat, err))
			}
		}
	}

	if rs.Versions != nil {
		check(CategoryVersions, "", rs.Versions)
	}
	if rs.System != nil {
		check(CategorySystem, "", rs.System)
	}
	for _, tab := range []struct {
		cat Category
		m   map[string]Document
	}{
		{CategoryHTTP, rs.HTTP},
		{CategoryMicrobench, rs.Microbench},
		{CategoryColdStart, rs.ColdStart},
		{CategoryMemory, rs.Memory},
	} {
		keys := make([]string, 0, len(tab.m))
		for key := range tab.m {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			check(tab.cat, key, tab.m[key])
		}
	}
	return errs
}

func compileSchema(cat Category) (*jsonschema.Schema, error) {
	src, ok := categorySchemas[cat]
	if !ok {
		return nil, fmt.Errorf("no schema for category %q", cat)
	}
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("decoding %s schema: %w", cat, err)
	}
	name := string(cat) + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(name, doc); err != nil {
		return nil, fmt.Errorf("loading %s schema: %w", cat, err)
	}
	sch, err := c.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("compiling %s schema: %w", cat, err)
	}
	return sch, nil
}
