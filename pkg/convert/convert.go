// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert provides lenient conversions for dataset cells.

Dataset exports are produced by dataframe tools: integers often arrive as
"1889.0", gaps arrive as empty cells and free text sneaks into numeric
columns. The helpers here report a missing value instead of an error so
callers can store NULL and keep going.

Do not use this package for request input; there a malformed value must be
rejected, not silently dropped.
*/
package convert

import (
	"math"
	"strconv"
	"strings"
)

// NullableString trims s and returns nil when nothing is left.
func NullableString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// ToFloat64 parses s as a float. ok is false for empty, malformed, NaN and
// infinite values.
func ToFloat64(s string) (value float64, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}

// ToInt parses s as a number and truncates it toward zero, so "1889.0" and
// "1889" both yield 1889.
func ToInt(s string) (value int, ok bool) {
	number, ok := ToFloat64(s)
	if !ok || number > math.MaxInt32 || number < math.MinInt32 {
		return 0, false
	}
	return int(number), true
}

// ToIntPtr is [ToInt] returning nil for a missing value.
//
// Example:
//
//	convert.ToIntPtr("1889.0")   // 1889
//	convert.ToIntPtr("c. 1500")  // nil
func ToIntPtr(s string) *int {
	value, ok := ToInt(s)
	if !ok {
		return nil
	}
	return &value
}
