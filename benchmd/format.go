// Copyright 2026 The Benchreport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmd

import (
	"math"
	"strconv"
	"strings"
)

// comma formats v in fixed-point notation with prec digits after the
// decimal point and a comma between each group of three digits in the
// integer part: comma(12345.6, 0) is "12,346".
func comma(v float64, prec int) string {
	s := strconv.FormatFloat(v, 'f', prec, 64)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s, frac = s[:i], s[i:]
	}

	if len(s) <= 3 {
		return sign + s + frac
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(s[:lead])
	for i := lead; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	return sign + b.String() + frac
}

// commaInt truncates v toward zero and formats it with thousands
// separators.
func commaInt(v float64) string {
	return comma(math.Trunc(v), 0)
}
