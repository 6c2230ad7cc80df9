// Package numeric parses and formats human-entered numbers: thousands
// separators, decimals, and shorthand magnitude suffixes (10K, 3.2B).
package numeric

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrNotANumber is returned when the input is not a recognized numeric
// form. Callers must re-prompt instead of falling back to a default.
var ErrNotANumber = errors.New("not a recognized number")

// Parse converts a human-entered string into a float64. Accepted forms:
//
//	"40,000,000", "40.5", "40,000,000.25", ".5", "42."
//	shorthand: "10K", "10M", "3.2B", "1.2T" (case-insensitive)
//
// Spaces and underscores are treated as separators and stripped.
// Thousands commas must follow standard grouping ("12,34" is rejected).
func Parse(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "_", "")
	if s == "" {
		return 0, ErrNotANumber
	}

	multiplier := 1.0
	if m, ok := magnitude(s[len(s)-1]); ok {
		multiplier = m
		s = s[:len(s)-1]
		if s == "" {
			return 0, ErrNotANumber
		}
	}

	negative := false
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		negative = true
		s = s[1:]
	}
	if s == "" {
		return 0, ErrNotANumber
	}

	// Normalize a bare leading or trailing decimal point (".5", "42.").
	if s[0] == '.' {
		s = "0" + s
	}
	if strings.HasSuffix(s, ".") && strings.Count(s, ".") == 1 {
		s = strings.TrimSuffix(s, ".")
	}

	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	if hasFrac && strings.ContainsAny(fracPart, ".,") {
		return 0, ErrNotANumber
	}
	if strings.Contains(intPart, ",") {
		if !validGrouping(intPart) {
			return 0, ErrNotANumber
		}
		intPart = strings.ReplaceAll(intPart, ",", "")
	}
	if !allDigits(intPart) || (hasFrac && !allDigits(fracPart)) {
		return 0, ErrNotANumber
	}

	literal := intPart
	if hasFrac {
		literal += "." + fracPart
	}
	v, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return 0, ErrNotANumber
	}
	v *= multiplier
	if negative {
		v = -v
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, ErrNotANumber
	}
	return v, nil
}

// magnitude maps a shorthand suffix letter to its multiplier.
func magnitude(c byte) (float64, bool) {
	switch c {
	case 'k', 'K':
		return 1e3, true
	case 'm', 'M':
		return 1e6, true
	case 'b', 'B':
		return 1e9, true
	case 't', 'T':
		return 1e12, true
	}
	return 0, false
}

// validGrouping reports whether a comma-separated integer part follows
// standard thousands grouping: a 1-3 digit leading group, then groups
// of exactly three digits.
func validGrouping(s string) bool {
	groups := strings.Split(s, ",")
	for i, g := range groups {
		if i == 0 {
			if len(g) < 1 || len(g) > 3 {
				return false
			}
		} else if len(g) != 3 {
			return false
		}
		if !allDigits(g) {
			return false
		}
	}
	return true
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
