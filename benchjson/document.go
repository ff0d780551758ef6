// Copyright 2026 The Benchreport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchjson

import (
	"sort"
	"strconv"
)

// A Document is a loosely typed JSON object. All accessors take a
// default that is returned when the field is missing or has an
// unexpected type, so callers never need to distinguish an incomplete
// document from a complete one. Accessors are safe on a nil Document.
type Document map[string]any

// Str returns the string field key, or def if it is absent or not a
// string.
func (d Document) Str(key, def string) string {
	if s, ok := d[key].(string); ok {
		return s
	}
	return def
}

// Num returns the numeric field key, or def if it is absent or not a
// number.
func (d Document) Num(key string, def float64) float64 {
	if v, ok := d[key].(float64); ok {
		return v
	}
	return def
}

// Field returns the field key rendered as display text: strings are
// returned as-is and numbers are formatted with the fewest digits that
// represent them exactly. It returns def for missing fields and fields
// of any other type.
func (d Document) Field(key, def string) string {
	switch v := d[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return def
}

// Sub returns the object field key as a Document, or nil if it is
// absent or not an object.
func (d Document) Sub(key string) Document {
	if m, ok := d[key].(map[string]any); ok {
		return Document(m)
	}
	return nil
}

// Has reports whether the field key is present.
func (d Document) Has(key string) bool {
	_, ok := d[key]
	return ok
}

// Keys returns the field names of d in ascending order.
func (d Document) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
