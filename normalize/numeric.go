package normalize

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// currencyGlyphs are stripped before numeric parsing, along with whitespace.
const currencyGlyphs = "$%€£¥₹¢₩₽"

// ParseNumber converts a raw broker cell into a float64. It tolerates currency
// symbols, thousands separators (US and European conventions), accounting-style
// parenthesized negatives and trailing minus signs.
//
// Failure is reported through ErrNotANumber so callers can tell "unusable cell"
// apart from a legitimate zero.
func ParseNumber(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, ErrNotANumber
	}

	// Sign detection runs on the raw string, before any stripping. The three
	// forms are checked in a fixed order: (X) / ($X) / $(X), then "500-",
	// then "-500".
	neg := false
	if inner, ok := parenInner(s); ok {
		neg = true
		s = inner
	} else if strings.HasSuffix(s, "-") {
		neg = true
		s = strings.TrimSuffix(s, "-")
	} else if strings.HasPrefix(s, "-") {
		neg = true
		s = strings.TrimPrefix(s, "-")
	}

	s = stripCurrency(s)
	s = resolveSeparators(s)
	if s == "" || s == "." {
		return 0, ErrNotANumber
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, ErrNotANumber
	}
	if neg {
		v = -math.Abs(v)
	}
	return v, nil
}

func parenInner(s string) (string, bool) {
	t := strings.TrimSpace(strings.TrimPrefix(s, "$"))
	if len(t) >= 2 && t[0] == '(' && t[len(t)-1] == ')' {
		return t[1 : len(t)-1], true
	}
	return "", false
}

func stripCurrency(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || strings.ContainsRune(currencyGlyphs, r) {
			return -1
		}
		return r
	}, s)
}

// resolveSeparators decides which of '.' and ',' is the decimal separator and
// rewrites s into a plain decimal string. The rules form an ordered contract:
//
//  1. no commas, at most one period: period (if any) is the decimal point
//  2. commas only: a last comma followed by <=3 digits is the decimal
//     separator, otherwise all commas are thousands separators
//  3. both present: whichever separator appears later is the decimal
//     separator, the other is a thousands separator
//  4. multiple periods, no commas: only the last period survives
//
// Anything that is not a digit or the chosen decimal point is dropped.
func resolveSeparators(s string) string {
	commas := strings.Count(s, ",")
	periods := strings.Count(s, ".")
	lastComma := strings.LastIndex(s, ",")
	lastPeriod := strings.LastIndex(s, ".")

	switch {
	case commas == 0 && periods <= 1:
		return digitsWithPoint(s, lastPeriod)
	case periods == 0:
		if digitsAfter(s, lastComma) <= 3 {
			return digitsWithPoint(s, lastComma)
		}
		return digitsWithPoint(s, -1)
	case commas > 0 && periods > 0:
		if lastComma > lastPeriod {
			return digitsWithPoint(s, lastComma)
		}
		return digitsWithPoint(s, lastPeriod)
	default: // multiple periods, no commas
		return digitsWithPoint(s, lastPeriod)
	}
}

// digitsWithPoint keeps only ASCII digits from s, emitting a decimal point in
// place of the byte at index point (-1 for none).
func digitsWithPoint(s string, point int) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
			b.WriteByte(s[i])
		case i == point:
			b.WriteByte('.')
		}
	}
	return b.String()
}

func digitsAfter(s string, i int) int {
	n := 0
	for j := i + 1; j < len(s); j++ {
		if s[j] >= '0' && s[j] <= '9' {
			n++
		}
	}
	return n
}
