// Copyright 2026 The Benchreport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchjson

import (
	"fmt"
	"regexp"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// A Query selects result documents from the tabular categories of a
// ResultSet. Parse a query string with ParseQuery and apply it with
// ResultSet.Filter.
//
// Syntax:
//
//	expr  = and {"OR" and} .
//	and   = match {["AND"] match} .   adjacent matches are ANDed
//	match = "(" expr ")"
//	      | "-" match            negation
//	      | "*"                  matches everything
//	      | key ":" regexp .
//	word  = [^ ():]* | "\"" [^"]* "\"" .
//
// Keys are "category" (the category name: http, microbench, coldstart
// or memory), "runtime" (the document's runtime field, "unknown" when
// missing) and "endpoint" (HTTP results only; other categories have an
// empty endpoint). Regexps are anchored at both ends, so a plain word
// must match the whole value.
type Query interface {
	match(e entry) bool
}

// An entry is one tabular result document paired with the category it
// was classified into.
type entry struct {
	category Category
	doc      Document
}

// matchQuery is a leaf that tests one entry attribute against an
// anchored regexp.
type matchQuery struct {
	key string
	re  *regexp.Regexp
}

func (q *matchQuery) match(e entry) bool {
	var val string
	switch q.key {
	case "category":
		val = string(e.category)
	case "runtime":
		val = e.doc.Str("runtime", "unknown")
	case "endpoint":
		val = e.doc.Str("endpoint", "")
	}
	return q.re.MatchString(val)
}

// opQuery is a boolean operator node. Negation ('!') has exactly one
// child; AND ('&') and OR ('|') have zero or more. An AND with no
// children matches everything.
type opQuery struct {
	op    rune // '&', '|' or '!'
	exprs []Query
}

func (q *opQuery) match(e entry) bool {
	switch q.op {
	case '!':
		return !q.exprs[0].match(e)
	case '|':
		for _, sub := range q.exprs {
			if sub.match(e) {
				return true
			}
		}
		return false
	}
	for _, sub := range q.exprs {
		if !sub.match(e) {
			return false
		}
	}
	return true
}

// Filter returns a copy of rs containing only the tabular entries
// matched by q. The versions and system documents always pass through
// unchanged. If a whole category is filtered out, its map is nil in
// the result.
func (rs *ResultSet) Filter(q Query) *ResultSet {
	filtered := &ResultSet{Versions: rs.Versions, System: rs.System}
	filtered.HTTP = filterCategory(CategoryHTTP, rs.HTTP, q)
	filtered.Microbench = filterCategory(CategoryMicrobench, rs.Microbench, q)
	filtered.ColdStart = filterCategory(CategoryColdStart, rs.ColdStart, q)
	filtered.Memory = filterCategory(CategoryMemory, rs.Memory, q)
	return filtered
}

func filterCategory(cat Category, m map[string]Document, q Query) map[string]Document {
	var out map[string]Document
	for key, doc := range m {
		if !q.match(entry{cat, doc}) {
			continue
		}
		if out == nil {
			out = make(map[string]Document)
		}
		out[key] = doc
	}
	return out
}

// SyntaxError is an error produced by parsing a malformed query
// string.
type SyntaxError struct {
	Query string // the query string
	Off   int    // byte offset of the error in Query
	Msg   string // error message
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %s\n\t%s\n\t%*s^", e.Msg, e.Query, e.Off, "")
}

// ParseQuery parses a query string into a Query tree.
func ParseQuery(q string) (Query, error) {
	toks, err := tokenize(q)
	if err != nil {
		return nil, err
	}
	p := &parser{q: q, toks: toks}
	expr, i := p.expr(0)
	if p.toks[i].kind != 0 {
		p.error(i, "unexpected "+strconv.Quote(p.toks[i].tok))
	}
	if p.err != nil {
		return nil, p.err
	}
	return expr, nil
}

// queryKeys are the entry attributes a match may test.
var queryKeys = map[string]bool{
	"category": true,
	"runtime":  true,
	"endpoint": true,
}

// A token is a word or a single-character operator. kind is 'w' for a
// word, the operator character for an operator, or 0 for end of input.
type token struct {
	kind byte
	off  int
	tok  string
}

// tokenize splits q into words and operators. Words may be enclosed in
// double quotes; "-" and "*" act as operators only at the start of a
// token so names like "go-wasm" stay whole.
func tokenize(q string) ([]token, error) {
	isOp := func(r rune) bool {
		return r == '(' || r == ')' || r == ':'
	}

	var toks []token
	pos := 0
	for pos < len(q) {
		r, size := utf8.DecodeRuneInString(q[pos:])
		switch {
		case unicode.IsSpace(r):
			pos += size
		case isOp(r) || r == '-' || r == '*':
			toks = append(toks, token{q[pos], pos, q[pos : pos+1]})
			pos += size
		case r == '"':
			end := pos + 1
			for end < len(q) && q[end] != '"' {
				end++
			}
			if end == len(q) {
				return nil, &SyntaxError{q, pos, "missing end quote"}
			}
			toks = append(toks, token{'w', pos, q[pos+1 : end]})
			pos = end + 1
		default:
			end := pos
			for end < len(q) {
				r, size := utf8.DecodeRuneInString(q[end:])
				if unicode.IsSpace(r) || isOp(r) || r == '"' {
					break
				}
				end += size
			}
			toks = append(toks, token{'w', pos, q[pos:end]})
			pos = end
		}
	}
	// End-of-input token, so the parser needs no bounds checks.
	toks = append(toks, token{0, len(q), ""})
	return toks, nil
}

type parser struct {
	q    string
	toks []token
	err  *SyntaxError
}

// error records the parse error closest to the start of the query and
// returns the index of the end token so parsing unwinds quickly.
func (p *parser) error(i int, msg string) (Query, int) {
	off := p.toks[i].off
	if p.err == nil || off < p.err.Off {
		p.err = &SyntaxError{p.q, off, msg}
	}
	return nil, len(p.toks) - 1
}

func (p *parser) expr(i int) (Query, int) {
	var q Query
	q, i = p.andExpr(i)
	if !p.isWord(i, "OR") {
		return q, i
	}
	terms := []Query{q}
	for p.isWord(i, "OR") {
		q, i = p.andExpr(i + 1)
		terms = append(terms, q)
	}
	return &opQuery{'|', terms}, i
}

func (p *parser) andExpr(i int) (Query, int) {
	var q Query
	var terms []Query
loop:
	for {
		switch {
		case p.isWord(i, "OR"):
			break loop
		case p.isWord(i, "AND"):
			// Adjacency already means AND; the keyword is
			// allowed for readability but must be followed
			// by a match.
			if len(terms) == 0 {
				return p.error(i, "nothing to match")
			}
			i++
			if p.toks[i].kind == ')' || p.toks[i].kind == 0 || p.isWord(i, "OR") {
				return p.error(i, "expected match after AND")
			}
		case p.toks[i].kind == '(' || p.toks[i].kind == '-' ||
			p.toks[i].kind == '*' || p.toks[i].kind == 'w':
			q, i = p.match(i)
			terms = append(terms, q)
		case p.toks[i].kind == ')' || p.toks[i].kind == 0:
			break loop
		default:
			return p.error(i, "unexpected "+strconv.Quote(p.toks[i].tok))
		}
	}
	if len(terms) == 0 {
		return p.error(i, "nothing to match")
	}
	if len(terms) == 1 {
		return terms[0], i
	}
	return &opQuery{'&', terms}, i
}

func (p *parser) match(i int) (Query, int) {
	switch p.toks[i].kind {
	case '(':
		q, i := p.expr(i + 1)
		if p.toks[i].kind != ')' {
			return p.error(i, `missing ")"`)
		}
		return q, i + 1
	case '-':
		q, i := p.match(i + 1)
		return &opQuery{'!', []Query{q}}, i
	case '*':
		return &opQuery{'&', nil}, i + 1
	case 'w':
		key := p.toks[i].tok
		if !queryKeys[key] {
			return p.error(i, "unknown key "+strconv.Quote(key))
		}
		if p.toks[i+1].kind != ':' || p.toks[i+2].kind != 'w' {
			return p.error(i, "expected key:value")
		}
		re, err := regexp.Compile("^(?:" + p.toks[i+2].tok + ")$")
		if err != nil {
			return p.error(i+2, err.Error())
		}
		return &matchQuery{key, re}, i + 3
	}
	return p.error(i, "expected key:value or subexpression")
}

// isWord reports whether token i is the unquoted word w.
func (p *parser) isWord(i int, w string) bool {
	return p.toks[i].kind == 'w' && p.toks[i].tok == w
}
