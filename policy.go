package bigdec

import (
	"errors"
	"fmt"
	"strings"
)

// RoundingMode selects how the last retained digit is adjusted when
// digits have to be discarded.
type RoundingMode uint8

const (
	// RoundHalfUp rounds to the nearest value, ties away from zero.
	// This is the default mode.
	RoundHalfUp RoundingMode = iota
	// RoundTrunc rounds towards zero.
	RoundTrunc
	// RoundFloor rounds towards negative infinity.
	RoundFloor
	// RoundCeil rounds towards positive infinity.
	RoundCeil
)

// DefaultMaxPrecision is the number of digits kept by [DefaultOverflow]
// once a result has a fractional part.
const DefaultMaxPrecision = 20

var errRoundingMode = errors.New("unknown rounding mode")

func (m RoundingMode) String() string {
	switch m {
	case RoundHalfUp:
		return "round"
	case RoundTrunc:
		return "trunc"
	case RoundFloor:
		return "floor"
	case RoundCeil:
		return "ceil"
	}
	return fmt.Sprintf("RoundingMode(%d)", uint8(m))
}

func (m RoundingMode) valid() bool {
	return m <= RoundCeil
}

// ParseRoundingMode converts one of "round", "trunc", "floor" or "ceil"
// (case-insensitive) to a [RoundingMode].
func ParseRoundingMode(s string) (RoundingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "round", "halfup", "half-up":
		return RoundHalfUp, nil
	case "trunc", "down":
		return RoundTrunc, nil
	case "floor":
		return RoundFloor, nil
	case "ceil", "ceiling":
		return RoundCeil, nil
	}
	return 0, fmt.Errorf("%q: %w", s, errRoundingMode)
}

// increment reports whether a magnitude whose discarded part starts with
// digit first should be moved one unit away from zero.
// sticky is true if any digit after first, or any undivided remainder,
// is nonzero.
func (m RoundingMode) increment(neg bool, first uint8, sticky bool) bool {
	inexact := first != 0 || sticky
	switch m {
	case RoundTrunc:
		return false
	case RoundHalfUp:
		return first >= 5
	case RoundFloor:
		return neg && inexact
	case RoundCeil:
		return !neg && inexact
	}
	panic(fmt.Sprintf("%v.increment(%v, %v, %v) failed: %v", m, neg, first, sticky, errRoundingMode))
}

// OverflowFunc decides whether digit production has to stop for a value
// with the given scale (digits after the decimal point) and precision
// (digits of the coefficient, counting leading zeros after the point).
type OverflowFunc func(scale, prec int) bool

// DefaultOverflow stops digit production once a value has a fractional
// part and more than [DefaultMaxPrecision] digits.
func DefaultOverflow(scale, prec int) bool {
	return scale > 0 && prec > DefaultMaxPrecision
}

// MaxDp returns an [OverflowFunc] that keeps at most n digits
// after the decimal point.
func MaxDp(n int) OverflowFunc {
	return func(scale, _ int) bool {
		return scale > n
	}
}

// MaxDecimalPrecision returns an [OverflowFunc] that keeps at most p digits
// once a value has a fractional part. Integer digits are never dropped.
func MaxDecimalPrecision(p int) OverflowFunc {
	return func(scale, prec int) bool {
		return scale > 0 && prec > p
	}
}

// config is the effective policy of a single operation.
type config struct {
	overflow OverflowFunc
	rounding RoundingMode
}

// Option configures the overflow and rounding policy of an operation.
type Option func(c *config)

// WithOverflow sets an arbitrary overflow predicate.
// A predicate that never reports overflow makes non-terminating
// divisions and irrational roots run forever.
func WithOverflow(fn OverflowFunc) Option {
	return func(c *config) {
		if fn != nil {
			c.overflow = fn
		}
	}
}

// WithRounding sets the rounding mode.
func WithRounding(mode RoundingMode) Option {
	return func(c *config) {
		c.rounding = mode
	}
}

// WithMaxDp is a shorthand for WithOverflow(MaxDp(n)).
func WithMaxDp(n int) Option {
	return WithOverflow(MaxDp(n))
}

// WithMaxDecimalPrecision is a shorthand for WithOverflow(MaxDecimalPrecision(p)).
func WithMaxDecimalPrecision(p int) Option {
	return WithOverflow(MaxDecimalPrecision(p))
}

// newConfig resolves options into a single policy.
// newConfig panics if the resulting rounding mode is unknown.
func newConfig(opts []Option) config {
	c := config{
		overflow: DefaultOverflow,
		rounding: RoundHalfUp,
	}
	for _, o := range opts {
		if o != nil {
			o(&c)
		}
	}
	if !c.rounding.valid() {
		panic(fmt.Sprintf("newConfig(%v) failed: %v", c.rounding, errRoundingMode))
	}
	return c
}

// truncating returns a copy of c that never rounds away from zero.
func (c config) truncating() config {
	c.rounding = RoundTrunc
	return c
}

// precOf returns the precision of coef * 10^exp as used by [OverflowFunc]:
// the number of coefficient digits, or the scale if the coefficient has
// fewer digits than the scale.
func precOf(coef *bint, exp int) int {
	p := coef.prec()
	if -exp > p {
		return -exp
	}
	return p
}
