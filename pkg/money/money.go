package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Package money converts between the decimal-dollar strings users type and
// the integer minor units (cents) every entity stores. All arithmetic on
// prices happens in cents; floats never touch persisted amounts.

var ErrInvalidAmount = errors.New("invalid monetary amount")

// ParseDecimalToCents parses a user-supplied decimal string into integer
// cents.
//
// Accepts common user-formatted strings like:
//   - "2999"
//   - "2,999.00"
//   - "$ 2,999.5"
//   - "-120.255" (rounded half away from zero => -12026)
//
// Currency symbols, commas and surrounding spaces are stripped. Any other
// non-numeric residue rejects the whole input; callers keep their previous
// state and surface a validation message.
func ParseDecimalToCents(input string) (int64, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, ErrInvalidAmount
	}

	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, "USD", "")
	s = strings.ReplaceAll(s, "usd", "")
	s = strings.TrimSpace(s)

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = strings.TrimSpace(strings.TrimPrefix(s, "-"))
	}
	if s == "" {
		return 0, ErrInvalidAmount
	}

	dots := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '.':
			dots++
			if dots > 1 {
				return 0, ErrInvalidAmount
			}
		default:
			return 0, ErrInvalidAmount
		}
	}

	if neg {
		s = "-" + s
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	// Shift into cents, then round half away from zero to the nearest cent.
	return d.Shift(2).Round(0).IntPart(), nil
}

// FormatCentsToDecimal renders integer cents as a plain decimal string with
// exactly two decimal places, e.g. 299900 => "2999.00".
//
// ParseDecimalToCents(FormatCentsToDecimal(c)) == c for every int64 c.
func FormatCentsToDecimal(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}
