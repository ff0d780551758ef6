// Copyright 2026 The Benchreport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchjson

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads every recognized result file directly inside dir and
// returns the classified ResultSet. The scan is non-recursive and
// considers only files with a ".json" extension; recognized names are
// "versions.json", "system_info.json", and files prefixed "http_",
// "microbench_", "coldstart_" or "memory_". Anything else is silently
// ignored.
//
// Directory entries are visited in lexical filename order, so when two
// files map to the same category key the lexically later one wins.
//
// A malformed JSON document in a recognized file is an error and no
// ResultSet is returned. A directory with no recognized files yields a
// ResultSet for which Empty reports true; it is the caller's job to
// treat that as a failure.
func Load(dir string) (*ResultSet, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading results directory: %w", err)
	}

	rs := new(ResultSet)
	for _, ent := range entries {
		name := ent.Name()
		if ent.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}

		load := func() (Document, error) {
			return readDocument(filepath.Join(dir, name))
		}
		switch {
		case name == "versions.json":
			if rs.Versions, err = load(); err != nil {
				return nil, err
			}
		case name == "system_info.json":
			if rs.System, err = load(); err != nil {
				return nil, err
			}
		case strings.HasPrefix(name, "http_"):
			doc, err := load()
			if err != nil {
				return nil, err
			}
			if rs.HTTP == nil {
				rs.HTTP = make(map[string]Document)
			}
			rs.HTTP[httpKey(doc)] = doc
		case strings.HasPrefix(name, "microbench_"):
			if err := addRuntimeKeyed(&rs.Microbench, load); err != nil {
				return nil, err
			}
		case strings.HasPrefix(name, "coldstart_"):
			if err := addRuntimeKeyed(&rs.ColdStart, load); err != nil {
				return nil, err
			}
		case strings.HasPrefix(name, "memory_"):
			if err := addRuntimeKeyed(&rs.Memory, load); err != nil {
				return nil, err
			}
		}
	}
	return rs, nil
}

// httpKey derives the ResultSet key of an HTTP result: the runtime
// name and the endpoint with every "/" replaced by "_". A missing
// runtime falls back to "unknown" and a missing endpoint to the empty
// string.
func httpKey(doc Document) string {
	runtime := doc.Str("runtime", "unknown")
	endpoint := strings.ReplaceAll(doc.Str("endpoint", ""), "/", "_")
	return runtime + "_" + endpoint
}

// addRuntimeKeyed loads one document into m, keyed by its runtime
// field (or "unknown").
func addRuntimeKeyed(m *map[string]Document, load func() (Document, error)) error {
	doc, err := load()
	if err != nil {
		return err
	}
	if *m == nil {
		*m = make(map[string]Document)
	}
	(*m)[doc.Str("runtime", "unknown")] = doc
	return nil
}

func readDocument(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return doc, nil
}
