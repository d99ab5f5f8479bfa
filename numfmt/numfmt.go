// Package numfmt renders numbers with thousands separators for readability,
// so 1234567.89 prints as "1,234,567.89".
//
// Grouping behaviour is an explicit Options value passed to each call; there
// is no process-wide locale state to configure or tear down.
package numfmt

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Options controls how digits are grouped.
type Options struct {
	// Separator is inserted between digit groups. Defaults to ",".
	Separator string
	// GroupSize is the number of digits per group. Defaults to 3.
	GroupSize int
}

// DefaultOptions groups the integer part in threes separated by commas.
var DefaultOptions = Options{Separator: ",", GroupSize: 3}

func (o Options) normalized() Options {
	if o.Separator == "" {
		o.Separator = DefaultOptions.Separator
	}

	if o.GroupSize <= 0 {
		o.GroupSize = DefaultOptions.GroupSize
	}

	return o
}

// Group inserts separators into the decimal numeral in s. The input may
// carry a leading sign and a fractional part; only the integer digits are
// grouped:
//
//	Group("-1234567.25", DefaultOptions) == "-1,234,567.25"
//
// Strings that do not look like decimal numerals are returned unchanged
// apart from grouping of whatever leading digit run is found.
func Group(s string, opts Options) string {
	opts = opts.normalized()

	sign := ""
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		sign, s = s[:1], s[1:]
	}

	intPart, rest := s, ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, rest = s[:dot], s[dot:]
	}

	return sign + groupDigits(intPart, opts) + rest
}

// GroupInt formats n with digit grouping.
func GroupInt(n int64, opts Options) string {
	return Group(strconv.FormatInt(n, 10), opts)
}

// GroupUint formats n with digit grouping.
func GroupUint(n uint64, opts Options) string {
	return Group(strconv.FormatUint(n, 10), opts)
}

// GroupFloat formats f to prec decimal places with digit grouping of the
// integer part. A negative prec uses the shortest representation that
// round-trips.
func GroupFloat(f float64, prec int, opts Options) string {
	return Group(strconv.FormatFloat(f, 'f', prec, 64), opts)
}

// GroupDecimal formats an arbitrary-precision decimal with digit grouping of
// the integer part.
func GroupDecimal(d decimal.Decimal, opts Options) string {
	return Group(d.String(), opts)
}

// groupDigits inserts separators right-to-left into a run of digits.
// Non-digit inputs shorter than one group are passed through untouched.
func groupDigits(digits string, opts Options) string {
	n := len(digits)
	if n <= opts.GroupSize {
		return digits
	}

	var sb strings.Builder
	sb.Grow(n + (n-1)/opts.GroupSize*len(opts.Separator))

	lead := n % opts.GroupSize
	if lead > 0 {
		sb.WriteString(digits[:lead])
	}

	for i := lead; i < n; i += opts.GroupSize {
		if i > 0 {
			sb.WriteString(opts.Separator)
		}

		sb.WriteString(digits[i : i+opts.GroupSize])
	}

	return sb.String()
}
