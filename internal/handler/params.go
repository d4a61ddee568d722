package handler

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// errNotNumeric is returned by parseIDParam when the raw value does not
// coerce to a number at all.
var errNotNumeric = errors.New("not numeric")

// decimalLiteral matches the decimal forms accepted by numeric coercion:
// optional sign, digits with optional fraction, optional exponent.
var decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// IDParam is a coerced :id path segment. Valid is false when the input is
// numeric but has no leading integer (".5", "Infinity", blank), which can
// never match a show_id.
type IDParam struct {
	ID    int64
	Valid bool
}

// YearParam is a coerced :year path segment. Valid is false for NaN,
// infinities and fractions, none of which match an integer release_year.
type YearParam struct {
	Year  int
	Valid bool
}

// PageParam carries the skip derived from a 1-based :page segment.
type PageParam struct {
	Skip int64
}

// parseIDParam rejects values that are not numeric and otherwise takes the
// leading integer, so " 12 " is 12, "1.9" is 1 and "0x1A" is 26.
func parseIDParam(raw string) (IDParam, error) {
	if math.IsNaN(toNumber(raw)) {
		return IDParam{}, errNotNumeric
	}
	id, ok := parseIntPrefix(raw)
	return IDParam{ID: id, Valid: ok}, nil
}

func parseYearParam(raw string) YearParam {
	v := toNumber(raw)
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) || v > math.MaxInt32 || v < math.MinInt32 {
		return YearParam{}
	}
	return YearParam{Year: int(v), Valid: true}
}

// parsePageParam computes (page-1)*perPage without bounds checks. A NaN
// page means no skip; a page <= 0 yields a negative skip the store rejects.
func parsePageParam(raw string, perPage int64) PageParam {
	v := toNumber(raw)
	if math.IsNaN(v) {
		return PageParam{}
	}
	skip := math.Trunc((v - 1) * float64(perPage))
	switch {
	case skip >= math.MaxInt64:
		return PageParam{Skip: math.MaxInt64}
	case skip <= math.MinInt64:
		return PageParam{Skip: math.MinInt64}
	}
	return PageParam{Skip: int64(skip)}
}

// toNumber coerces a string the way a loosely typed runtime would: blank is
// zero, Infinity and radix-prefixed integers are accepted, anything else
// that is not a decimal literal is NaN.
func toNumber(s string) float64 {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			n, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return math.NaN()
			}
			return float64(n)
		}
	}
	if !decimalLiteral.MatchString(s) {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return f
		}
		return math.NaN()
	}
	return f
}

// parseIntPrefix reads an optionally signed integer from the start of s,
// after leading whitespace, honouring a 0x prefix.
func parseIntPrefix(s string) (int64, bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	base := 10
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}
	end := 0
	for end < len(s) && isDigit(s[end], base) {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.ParseInt(s[:end], base, 64)
	if err != nil {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}

func isDigit(b byte, base int) bool {
	switch {
	case b >= '0' && b <= '9':
		return true
	case base == 16 && ((b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')):
		return true
	}
	return false
}
