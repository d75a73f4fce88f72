package codec

import (
	"math"
	"strconv"
	"strings"
)

// Token parsing is lenient: leading whitespace is skipped, the longest numeric
// prefix is used and anything that does not start with a number reads as 0.

func trimLeadingSpace(s string) string {
	return strings.TrimLeft(s, " \t\n\v\f\r")
}

// splitSign strips an optional sign and reports whether it was negative.
func splitSign(s string) (string, bool) {
	if s == "" {
		return s, false
	}
	switch s[0] {
	case '-':
		return s[1:], true
	case '+':
		return s[1:], false
	}
	return s, false
}

func leadingDigits(s string) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i]
}

// parseInteger reads a signed decimal prefix, saturating at the int64 range.
func parseInteger(token string) int64 {
	s, negative := splitSign(trimLeadingSpace(token))
	digits := leadingDigits(s)
	if digits == "" {
		return 0
	}

	u, err := strconv.ParseUint(digits, 10, 64)
	switch {
	case negative && (err != nil || u > math.MaxInt64+1):
		return math.MinInt64
	case negative:
		return -int64(u-1) - 1
	case err != nil || u > math.MaxInt64:
		return math.MaxInt64
	}
	return int64(u)
}

// parseUnsigned reads an unsigned decimal prefix. A leading minus negates the
// value modulo 2^64 and overflow saturates at math.MaxUint64.
func parseUnsigned(token string) uint64 {
	s, negative := splitSign(trimLeadingSpace(token))
	digits := leadingDigits(s)
	if digits == "" {
		return 0
	}

	u, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return math.MaxUint64
	}
	if negative {
		return -u
	}
	return u
}

// parseFloat reads a decimal floating point prefix such as "-1.5e3".
// Out of range values become ±Inf.
func parseFloat(token string) float64 {
	s := trimLeadingSpace(token)
	if f, err := strconv.ParseFloat(s, 64); err == nil || isRangeErr(err) {
		return f
	}

	end := floatPrefixLen(s)
	if end == 0 {
		return 0
	}
	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil && !isRangeErr(err) {
		return 0
	}
	return f
}

func isRangeErr(err error) bool {
	numErr, ok := err.(*strconv.NumError)
	return ok && numErr.Err == strconv.ErrRange
}

func floatPrefixLen(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	mantissa := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		mantissa++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			mantissa++
		}
	}
	if mantissa == 0 {
		return 0
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		start := j
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		if j > start {
			i = j
		}
	}
	return i
}
