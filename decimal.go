package bigdec

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Decimal type is a representation of an arbitrary-precision decimal number.
// The zero value is the numeric value of 0.
// It is immutable and safe for concurrent use by multiple goroutines.
//
// A decimal is one of:
//
//   - a finite value: an arbitrary-precision coefficient scaled by a power of ten;
//   - a signed infinity, produced by dividing a nonzero value by zero;
//   - NaN, the result of an undefined operation or of malformed input.
//
// Finite values are kept in canonical form: there are no trailing zeros after
// the decimal point, so 1, 1.0 and 1.00 have the same representation.
//
// Results that cannot be represented exactly, such as 1/3 or the square root
// of 2, are rounded according to an overflow policy and a [RoundingMode].
// Such results remember the exact rational value they were rounded from,
// which allows later operations to cancel exactly:
// 1 / 3 * 3 is exactly 1.
//
// NaN is absorbing: any operation with a NaN operand returns NaN.
type Decimal struct {
	form form
	inf  infinity // valid if form == infinite
	fin  scaled   // valid if form == finite
}

type form uint8

const (
	finite form = iota
	infinite
	nan
)

// Unordered is returned by [Decimal.Cmp] and [Decimal.Sign] when a NaN is
// involved. It is neither negative nor zero, so callers that need to order
// NaN must check for it explicitly.
const Unordered = 2

// maxExponent is the largest absolute value of an exponent accepted by [Parse].
const maxExponent = 1 << 20

var (
	// ErrInvalidDecimal is wrapped by every error returned from parsing.
	ErrInvalidDecimal = errors.New("invalid decimal")
	errExponentRange  = errors.New("exponent out of range")
	errNonFinite      = errors.New("non-finite decimal")
	errUnsupported    = errors.New("unsupported type")
)

var (
	// Zero is the zero value of Decimal.
	Zero = Decimal{}
	// One is the decimal 1.
	One = NewFromInt64(1)
	// Two is the decimal 2.
	Two = NewFromInt64(2)
	// Ten is the decimal 10.
	Ten = NewFromInt64(10)
	// NaN is the result of undefined operations, such as 0 / 0.
	NaN = Decimal{form: nan}
	// PosInf is positive infinity.
	PosInf = Decimal{form: infinite}
	// NegInf is negative infinity.
	NegInf = Decimal{form: infinite, inf: infinity{neg: true}}
)

func newDecimal(x scaled) Decimal {
	return Decimal{fin: x}
}

// New converts v to a decimal.
// The following types are supported: string, bool, all signed and unsigned
// integer types, float32, float64, *big.Int, big.Int, *big.Rat and Decimal.
// Strings are converted with [Parse], booleans become 0 or 1 and rationals
// are converted with [NewFromRat] under the default policy.
// Unsupported types and malformed strings produce NaN.
func New(v any) Decimal {
	switch v := v.(type) {
	case Decimal:
		return v
	case *Decimal:
		if v == nil {
			return NaN
		}
		return *v
	case string:
		d, _ := Parse(v)
		return d
	case bool:
		return NewFromBool(v)
	case int:
		return NewFromInt(v)
	case int8:
		return NewFromInt(v)
	case int16:
		return NewFromInt(v)
	case int32:
		return NewFromInt(v)
	case int64:
		return NewFromInt(v)
	case uint:
		return NewFromInt(v)
	case uint8:
		return NewFromInt(v)
	case uint16:
		return NewFromInt(v)
	case uint32:
		return NewFromInt(v)
	case uint64:
		return NewFromInt(v)
	case float32:
		return newFromFloat(float64(v), 32)
	case float64:
		return NewFromFloat64(v)
	case *big.Int:
		if v == nil {
			return NaN
		}
		return NewFromBigInt(v)
	case big.Int:
		return NewFromBigInt(&v)
	case *big.Rat:
		if v == nil {
			return NaN
		}
		return NewFromRat(v)
	}
	return NaN
}

// NewFromInt64 converts an integer to a decimal.
func NewFromInt64(v int64) Decimal {
	return newDecimal(newScaledFromInt64(v))
}

// NewFromInt converts an integer of any width or signedness to a decimal.
func NewFromInt[T constraints.Integer](v T) Decimal {
	if v < 0 {
		return NewFromInt64(int64(v))
	}
	z := new(big.Int).SetUint64(uint64(v))
	return newDecimal(newScaled((*bint)(z), 0))
}

// NewFromBigInt converts a big integer to a decimal.
// The argument is copied.
func NewFromBigInt(v *big.Int) Decimal {
	return newDecimal(newScaled(newBintFromBig(v), 0))
}

// NewFromBool returns 1 for true and 0 for false.
func NewFromBool(v bool) Decimal {
	if v {
		return One
	}
	return Zero
}

// maxSafeInt is the largest integer n such that every integer in [-n, n]
// is exactly representable as a float64.
const maxSafeInt = 1<<53 - 1

// NewFromFloat64 converts a float to a decimal.
// The result is the shortest decimal that rounds to v, as produced by
// [strconv.FormatFloat] with precision -1.
// NaN becomes NaN and infinities become the infinity of the same sign.
func NewFromFloat64(v float64) Decimal {
	return newFromFloat(v, 64)
}

func newFromFloat(v float64, bitSize int) Decimal {
	switch {
	case math.IsNaN(v):
		return NaN
	case math.IsInf(v, 1):
		return PosInf
	case math.IsInf(v, -1):
		return NegInf
	case v == math.Trunc(v) && math.Abs(v) <= maxSafeInt:
		return NewFromInt64(int64(v))
	}
	d, err := Parse(strconv.FormatFloat(v, 'e', -1, bitSize))
	if err != nil {
		panic(fmt.Sprintf("NewFromFloat64(%v) failed: %v", v, err))
	}
	return d
}

// NewFromRat converts a rational number to a decimal.
// Non-terminating values are rounded under the given options and keep
// the exact value for later operations.
func NewFromRat(v *big.Rat, opts ...Option) Decimal {
	c := newConfig(opts)
	f := newFraction(newBintFromBig(v.Num()), newBintFromBig(v.Denom()))
	return newDecimal(f.resolve(c))
}

// Parse converts a string to a decimal.
// The input must conform to the following grammar:
//
//	sign           ::= '+' | '-'
//	digit          ::= '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9'
//	nonzero        ::= '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9'
//	integer        ::= nonzero { digit } | '0'
//	fraction       ::= '.' digit { digit }
//	exponent       ::= ('e' | 'E') [sign] digit { digit }
//	numeric-string ::= [sign] ( integer [fraction] | fraction ) [exponent]
//
// Parse returns NaN and an error wrapping [ErrInvalidDecimal]:
//   - if the string does not conform to the grammar;
//   - if the absolute value of the exponent is greater than 2^20.
//
// The returned value is always usable, so callers that treat malformed input
// as NaN may ignore the error.
func Parse(dec string) (Decimal, error) {
	var (
		pos     int
		width   int
		neg     bool
		digits  []byte
		scale   int
		hascoef bool
		eneg    bool
		exp     int
		hasexp  bool
		hasesym bool
	)

	width = len(dec)
	digits = make([]byte, 0, width)

	// Sign
	switch {
	case pos == width:
		// skip
	case dec[pos] == '-':
		neg = true
		pos++
	case dec[pos] == '+':
		pos++
	}

	// Integer
	switch {
	case pos == width:
		// skip
	case dec[pos] == '0':
		hascoef = true
		pos++
		if pos < width && dec[pos] >= '0' && dec[pos] <= '9' {
			return NaN, fmt.Errorf("leading zero in %q: %w", dec, ErrInvalidDecimal)
		}
	default:
		for pos < width && dec[pos] >= '0' && dec[pos] <= '9' {
			hascoef = true
			digits = append(digits, dec[pos])
			pos++
		}
	}

	// Fraction
	if pos < width && dec[pos] == '.' {
		pos++
		hasfrac := false
		for pos < width && dec[pos] >= '0' && dec[pos] <= '9' {
			hasfrac = true
			digits = append(digits, dec[pos])
			scale++
			pos++
		}
		if !hasfrac {
			return NaN, fmt.Errorf("no fractional digits in %q: %w", dec, ErrInvalidDecimal)
		}
		hascoef = true
	}

	// Exponential part
	if pos < width && (dec[pos] == 'e' || dec[pos] == 'E') {
		hasesym = true
		pos++
		// Sign
		switch {
		case pos == width:
			// skip
		case dec[pos] == '-':
			eneg = true
			pos++
		case dec[pos] == '+':
			pos++
		}
		// Integer
		for pos < width && dec[pos] >= '0' && dec[pos] <= '9' {
			exp = exp*10 + int(dec[pos]-'0')
			if exp > maxExponent {
				return NaN, fmt.Errorf("%q: %w: %w", dec, errExponentRange, ErrInvalidDecimal)
			}
			hasexp = true
			pos++
		}
	}

	if pos != width {
		return NaN, fmt.Errorf("invalid character %q: %w", dec[pos], ErrInvalidDecimal)
	}
	if !hascoef {
		return NaN, fmt.Errorf("no coefficient in %q: %w", dec, ErrInvalidDecimal)
	}
	if hasesym && !hasexp {
		return NaN, fmt.Errorf("no exponent in %q: %w", dec, ErrInvalidDecimal)
	}

	if eneg {
		exp = -exp
	}
	if len(digits) == 0 {
		return Zero, nil
	}
	coef, _ := new(big.Int).SetString(string(digits), 10)
	if neg {
		coef.Neg(coef)
	}
	return newDecimal(newScaled((*bint)(coef), exp-scale)), nil
}

// String implements the [fmt.Stringer] interface and returns
// a string representation of a decimal value.
// The returned string does not use scientific or engineering notation and is
// formatted according to the following formal EBNF grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | digits
//	numeric-string ::= [sign] significand | 'NaN' | [sign] 'Infinity'
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	switch d.form {
	case nan:
		return "NaN"
	case infinite:
		if d.inf.neg {
			return "-Infinity"
		}
		return "Infinity"
	}
	return string(appendScaled(nil, d.fin, d.fin.scale()))
}

// appendScaled appends the plain representation of x, padded with trailing
// zeros to the given number of digits after the decimal point.
// scale must not be less than x.scale().
func appendScaled(buf []byte, x scaled, scale int) []byte {
	if x.sign() < 0 {
		buf = append(buf, '-')
	}
	digits := new(big.Int).Abs(x.c().big()).Append(nil, 10)
	fracdigs := x.scale()
	intdigs := len(digits) - fracdigs

	// Integer part
	if intdigs > 0 {
		buf = append(buf, digits[:intdigs]...)
	} else {
		buf = append(buf, '0')
	}

	// Fractional part
	if scale > 0 {
		buf = append(buf, '.')
		if intdigs < 0 {
			buf = append(buf, make0s(-intdigs)...)
			intdigs = 0
		}
		buf = append(buf, digits[intdigs:]...)
		buf = append(buf, make0s(scale-fracdigs)...)
	}
	return buf
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%f, %s, %v: -123.456
//	%q:        "-123.456"
//
// The following format flags can be used with all verbs: '+', ' ', '0', '-'.
// The '0' flag is ignored for NaN and infinities.
//
// Precision is only supported for the %f verb.
// It rounds the decimal half away from zero and pads it with trailing zeros.
// By default, the actual scale of the decimal is used.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (d Decimal) Format(state fmt.State, verb rune) {

	// Rescaling
	var body []byte
	switch {
	case d.form != finite:
		body = []byte(d.String())
	case verb == 'f' || verb == 'F':
		scale := d.fin.scale()
		if p, ok := state.Precision(); ok {
			scale = max(p, 0)
		}
		x := d.fin.roundTo(scale, RoundHalfUp)
		body = appendScaled(nil, x, max(scale, x.scale()))
	default:
		body = appendScaled(nil, d.fin, d.fin.scale())
	}

	// Arithmetic sign
	neg := len(body) > 0 && body[0] == '-'
	if neg {
		body = body[1:]
	}
	var sign []byte
	switch {
	case neg:
		sign = []byte{'-'}
	case d.form == nan:
		// NaN has no sign
	case state.Flag('+'):
		sign = []byte{'+'}
	case state.Flag(' '):
		sign = []byte{' '}
	}

	// Quotes
	quote := verb == 'q' || verb == 'Q'

	// Padding
	width := len(sign) + len(body)
	if quote {
		width += 2
	}
	lspaces, tspaces, lzeroes := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0') && d.form == finite:
			lzeroes = w - width
		default:
			lspaces = w - width
		}
	}

	// Writing buffer
	buf := make([]byte, 0, width+lspaces+tspaces+lzeroes)
	for i := 0; i < lspaces; i++ {
		buf = append(buf, ' ')
	}
	if quote {
		buf = append(buf, '"')
	}
	buf = append(buf, sign...)
	buf = append(buf, make0s(lzeroes)...)
	buf = append(buf, body...)
	if quote {
		buf = append(buf, '"')
	}
	for i := 0; i < tspaces; i++ {
		buf = append(buf, ' ')
	}

	// Writing result
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(bigdec.Decimal="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

// IsNaN reports whether d is NaN.
func (d Decimal) IsNaN() bool {
	return d.form == nan
}

// IsInf reports whether d is an infinity.
// If sign > 0, IsInf reports whether d is positive infinity.
// If sign < 0, IsInf reports whether d is negative infinity.
// If sign == 0, IsInf reports whether d is either infinity.
func (d Decimal) IsInf(sign int) bool {
	if d.form != infinite {
		return false
	}
	return sign == 0 || sign > 0 && !d.inf.neg || sign < 0 && d.inf.neg
}

// IsFinite reports whether d is neither NaN nor an infinity.
func (d Decimal) IsFinite() bool {
	return d.form == finite
}

// IsZero reports whether d == 0.
func (d Decimal) IsZero() bool {
	return d.form == finite && d.fin.isZero()
}

// IsInt reports whether d is a finite value without a fractional part.
func (d Decimal) IsInt() bool {
	return d.form == finite && d.fin.isInt()
}

// isOddInt reports whether d is an odd integer.
func (d Decimal) isOddInt() bool {
	return d.IsInt() && d.fin.c().isOdd()
}

// smallInt returns d as an int if d is an integer that fits into 32 bits.
func (d Decimal) smallInt() (int, bool) {
	if !d.IsInt() {
		return 0, false
	}
	b := d.fin.c().big()
	if !b.IsInt64() {
		return 0, false
	}
	n := b.Int64()
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, false
	}
	return int(n), true
}

// Scale returns the number of digits after the decimal point.
// Scale returns 0 for NaN and infinities.
func (d Decimal) Scale() int {
	if d.form != finite {
		return 0
	}
	return d.fin.scale()
}

// Prec returns the number of digits in the coefficient.
// Prec returns 0 for NaN and infinities.
func (d Decimal) Prec() int {
	if d.form != finite {
		return 0
	}
	return d.fin.c().prec()
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d == 0
//	+1 if d > 0
//
// and [Unordered] if d is NaN.
func (d Decimal) Sign() int {
	switch d.form {
	case nan:
		return Unordered
	case infinite:
		return d.inf.sign()
	}
	return d.fin.sign()
}

// Neg returns -d.
func (d Decimal) Neg() Decimal {
	switch d.form {
	case nan:
		return NaN
	case infinite:
		return d.inf.flip().decimal()
	}
	return newDecimal(d.fin.neg())
}

// Abs returns the absolute value of d.
func (d Decimal) Abs() Decimal {
	switch d.form {
	case nan:
		return NaN
	case infinite:
		return PosInf
	}
	return newDecimal(d.fin.abs())
}

// RoundTo rounds d to the given number of digits after the decimal point
// using the given rounding mode.
// A negative scale rounds to tens, hundreds, and so on.
// NaN and infinities are returned unchanged.
// RoundTo panics if mode is not a valid [RoundingMode].
func (d Decimal) RoundTo(scale int, mode RoundingMode) Decimal {
	if !mode.valid() {
		panic(fmt.Sprintf("RoundTo(%v, %v) failed: %v", scale, mode, errRoundingMode))
	}
	if d.form != finite {
		return d
	}
	return newDecimal(d.fin.roundTo(scale, mode))
}

// Trunc returns the integer part of d, rounded towards zero.
func (d Decimal) Trunc() Decimal {
	return d.RoundTo(0, RoundTrunc)
}

// Round returns d rounded to the nearest integer, with halves rounded away
// from zero: 0.5 becomes 1 and -0.5 becomes -1.
func (d Decimal) Round() Decimal {
	return d.RoundTo(0, RoundHalfUp)
}

// Floor returns the greatest integer not greater than d.
func (d Decimal) Floor() Decimal {
	return d.RoundTo(0, RoundFloor)
}

// Ceil returns the least integer not less than d.
func (d Decimal) Ceil() Decimal {
	return d.RoundTo(0, RoundCeil)
}

// Add returns the sum d + e.
// The sum of two finite values is exact, unless both of them are rounded
// results, in which case their exact sum is rounded under the given options.
func (d Decimal) Add(e Decimal, opts ...Option) Decimal {
	c := newConfig(opts)
	switch {
	case d.form == nan || e.form == nan:
		return NaN
	case d.form == infinite:
		return d.inf.add(e)
	case e.form == infinite:
		return e.inf.add(d)
	}
	return newDecimal(d.fin.add(e.fin, c))
}

// Sub returns the difference d - e.
// See [Decimal.Add] for details.
func (d Decimal) Sub(e Decimal, opts ...Option) Decimal {
	return d.Add(e.Neg(), opts...)
}

// Mul returns the product d * e.
// The product of two finite values is exact, unless one of them is a rounded
// result, in which case the exact product is rounded under the given options.
func (d Decimal) Mul(e Decimal, opts ...Option) Decimal {
	c := newConfig(opts)
	switch {
	case d.form == nan || e.form == nan:
		return NaN
	case d.form == infinite:
		return d.inf.mul(e)
	case e.form == infinite:
		return e.inf.mul(d)
	}
	return newDecimal(d.fin.mul(e.fin, c))
}

// Quo returns the quotient d / e.
// Non-terminating quotients are rounded under the given options.
//
// Division of a nonzero value by zero returns an infinity with the sign of d,
// 0 / 0 returns NaN and division of a finite value by an infinity returns 0.
func (d Decimal) Quo(e Decimal, opts ...Option) Decimal {
	c := newConfig(opts)
	switch {
	case d.form == nan || e.form == nan:
		return NaN
	case d.form == infinite:
		return d.inf.quo(e)
	case e.form == infinite:
		return Zero
	case e.fin.isZero():
		if d.fin.isZero() {
			return NaN
		}
		return infinity{neg: d.fin.sign() < 0}.decimal()
	}
	return newDecimal(d.fin.quo(e.fin, c))
}

// Rem returns the remainder d - e * trunc(d / e).
// The sign of the remainder matches the sign of d.
//
// Rem returns NaN if d is an infinity or e is zero,
// and d itself if e is an infinity.
func (d Decimal) Rem(e Decimal, opts ...Option) Decimal {
	c := newConfig(opts)
	switch {
	case d.form != finite || e.form == nan:
		return NaN
	case e.form == infinite:
		return d
	case e.fin.isZero():
		return NaN
	}
	return newDecimal(d.fin.rem(e.fin, c))
}

// Pow returns d raised to the power of e.
// The exponent may be fractional: d^(p/q) is computed as the q-th root of
// d^p, which is rounded once under the given options.
//
// Pow returns NaN if d is negative and e is not an integer, or if the
// reduced denominator q of e exceeds 2^14. Pow returns 1 if e is 0.
func (d Decimal) Pow(e Decimal, opts ...Option) Decimal {
	c := newConfig(opts)
	switch {
	case d.form == nan || e.form == nan:
		return NaN
	case e.IsZero():
		return One
	case d.form == infinite:
		return d.inf.pow(e)
	case e.form == infinite:
		return powInf(d.fin, e.inf.neg)
	case d.fin.isZero():
		if e.fin.sign() < 0 {
			return PosInf
		}
		return Zero
	}
	z, ok := d.fin.pow(e.fin, c)
	if !ok {
		return NaN
	}
	return newDecimal(z)
}

// ScaleByPow10 returns d * 10^n.
// For an integer n this is exact and only moves the decimal point;
// otherwise it is computed as d * 10^n using [Decimal.Pow].
// Zero and infinities are returned unchanged for any finite n.
func (d Decimal) ScaleByPow10(n Decimal, opts ...Option) Decimal {
	switch {
	case d.form == nan || n.form == nan:
		return NaN
	case n.form == finite && (d.form == infinite || d.fin.isZero()):
		// 10^n is finite and positive
		return d
	}
	if k, ok := n.smallInt(); ok {
		return newDecimal(d.fin.shift(k))
	}
	return d.Mul(Ten.Pow(n, opts...), opts...)
}

// Root returns the n-th root of d.
// For an integer n the root is extracted directly: odd roots of negative
// values are negative, even roots of negative values are NaN.
// Negative n returns the reciprocal of the root.
// Indexes above 2^14 in absolute value give NaN, except for d = 0, 1 or -1.
// For other values of n, Root returns d^(1/n), see [Decimal.Pow].
func (d Decimal) Root(n Decimal, opts ...Option) Decimal {
	c := newConfig(opts)
	switch {
	case d.form == nan || n.form == nan:
		return NaN
	case n.form == infinite:
		// d^(1/±∞) = d^0
		return One
	}
	k, ok := n.smallInt()
	if !ok || k == 0 {
		return d.Pow(One.Quo(n, opts...), opts...)
	}
	odd := k&1 != 0
	var z Decimal
	switch {
	case d.form == infinite:
		z = d.inf.root(odd)
	case d.fin.sign() < 0 && !odd:
		return NaN
	case abs(k) > maxRootIndex && !d.fin.isZero() && (d.fin.frac != nil || !d.fin.isOne()):
		return NaN
	case d.fin.sign() < 0:
		r, _ := d.fin.neg().root(abs(k), c)
		z = newDecimal(r.neg())
	default:
		r, _ := d.fin.root(abs(k), c)
		z = newDecimal(r)
	}
	if k < 0 {
		return One.Quo(z, opts...)
	}
	return z
}

// Sqrt returns the square root of d.
// Sqrt returns NaN if d is negative.
func (d Decimal) Sqrt(opts ...Option) Decimal {
	return d.Root(Two, opts...)
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
//
// and [Unordered] if d or e is NaN.
// Negative infinity is less than any finite value, and positive infinity
// is greater than any finite value.
func (d Decimal) Cmp(e Decimal) int {
	switch {
	case d.form == nan || e.form == nan:
		return Unordered
	case d.form == infinite:
		return d.inf.cmp(e)
	case e.form == infinite:
		return -e.inf.cmp(d)
	}
	return d.fin.cmp(e.fin)
}

// Equal reports whether d == e.
// Equal returns false if d or e is NaN.
func (d Decimal) Equal(e Decimal) bool {
	return d.Cmp(e) == 0
}

// Less reports whether d < e.
// Less returns false if d or e is NaN.
func (d Decimal) Less(e Decimal) bool {
	return d.Cmp(e) == -1
}

// Rat returns the exact rational value of d.
// For a rounded result, this is the exact value it was rounded from.
// Rat returns false if d is NaN or an infinity.
func (d Decimal) Rat() (*big.Rat, bool) {
	if d.form != finite {
		return nil, false
	}
	return d.fin.rat(), true
}

// Float64 returns the nearest float64 value for d and a boolean
// indicating whether the conversion is exact.
// NaN and infinities are converted to their float64 counterparts.
func (d Decimal) Float64() (float64, bool) {
	switch d.form {
	case nan:
		return math.NaN(), true
	case infinite:
		return math.Inf(d.inf.sign()), true
	}
	return d.fin.rat().Float64()
}
