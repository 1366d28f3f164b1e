package bigdec

import "fmt"

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(dec string) Decimal {
	d, err := Parse(dec)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", dec, err))
	}
	return d
}

// MustNew is like [New] but panics if the result is NaN.
func MustNew(v any) Decimal {
	d := New(v)
	if d.IsNaN() {
		panic(fmt.Sprintf("MustNew(%v) failed: %T: %v", v, v, ErrInvalidDecimal))
	}
	return d
}

// MustParseRoundingMode is like [ParseRoundingMode] but panics if the mode
// is unknown.
func MustParseRoundingMode(s string) RoundingMode {
	m, err := ParseRoundingMode(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseRoundingMode(%q) failed: %v", s, err))
	}
	return m
}
