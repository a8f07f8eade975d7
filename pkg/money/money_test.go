package money

import (
	"errors"
	"testing"
)

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in       string
		expected int64
	}{
		{"2999", 299900},
		{"2999.00", 299900},
		{"2,999.00", 299900},
		{"$ 2,999.00", 299900},
		{"USD 2999", 299900},
		{"0.01", 1},
		{"0", 0},
		{"83.315", 8332},  // half rounds away from zero
		{"83.314", 8331},
		{"-120.255", -12026},
		{"  49.99  ", 4999},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToCents(tc.in)
		if err != nil {
			t.Fatalf("ParseDecimalToCents(%q) error: %v", tc.in, err)
		}
		if got != tc.expected {
			t.Fatalf("ParseDecimalToCents(%q) expected %d, got %d", tc.in, tc.expected, got)
		}
	}
}

func TestParseDecimalToCents_RejectsResidue(t *testing.T) {
	for _, in := range []string{"", "   ", "abc", "12x", "1.2.3", "--5", "-", "$", "12 34"} {
		if _, err := ParseDecimalToCents(in); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("ParseDecimalToCents(%q) expected ErrInvalidAmount, got %v", in, err)
		}
	}
}

func TestFormatCentsToDecimal(t *testing.T) {
	cases := []struct {
		in       int64
		expected string
	}{
		{299900, "2999.00"},
		{1, "0.01"},
		{0, "0.00"},
		{12496, "124.96"},
		{-12026, "-120.26"},
	}
	for _, tc := range cases {
		if got := FormatCentsToDecimal(tc.in); got != tc.expected {
			t.Fatalf("FormatCentsToDecimal(%d) expected %q, got %q", tc.in, tc.expected, got)
		}
	}
}

func TestMoneyRoundTrip(t *testing.T) {
	// Round-trip law: parse(format(c)) == c.
	samples := []int64{0, 1, -1, 99, 100, 101, 12496, 299900, 299916, 399888, 1<<40 + 7, -(1<<40 + 7)}
	for _, c := range samples {
		got, err := ParseDecimalToCents(FormatCentsToDecimal(c))
		if err != nil {
			t.Fatalf("round trip %d error: %v", c, err)
		}
		if got != c {
			t.Fatalf("round trip %d => %d", c, got)
		}
	}
	for c := int64(-250); c <= 250; c++ {
		got, err := ParseDecimalToCents(FormatCentsToDecimal(c))
		if err != nil || got != c {
			t.Fatalf("round trip %d => %d (err=%v)", c, got, err)
		}
	}
}
