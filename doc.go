/*
Package bigdec implements immutable arbitrary-precision decimal numbers.
It computes exactly wherever an exact decimal result exists,
so 0.1 + 0.2 is exactly 0.3, and rounds only when a result has
no finite decimal expansion.

# Representation

A finite [Decimal] is a pair of an arbitrary-precision integer coefficient
and a power of ten:

	value = Coefficient * 10^-Scale

The representation is canonical: the scale is never negative and a
fractional coefficient never ends with a zero, so 1, 1.0 and 1.00 are
indistinguishable.

Besides finite values, a decimal can hold positive or negative infinity
and NaN. Infinities are the result of dividing a nonzero value by zero;
NaN is the result of undefined operations, such as 0 / 0, ∞ - ∞ or the
square root of a negative number, and of parsing malformed input.
NaN is absorbing: every operation involving NaN returns NaN and every
comparison with NaN reports [Unordered].

# Exactness

Addition, subtraction and multiplication of finite values are always exact.
Division is exact whenever the denominator of the reduced quotient is a
product of powers of 2 and 5.
Other quotients, as well as irrational roots, are approximated under an
overflow policy (see below).

An approximated result keeps a reference to the exact rational value it was
rounded from. Multiplication, division and powers of such values, and the
sum of two such values, are carried out on the exact rationals, so that
1 / 3 * 3 is exactly 1. Comparison and formatting always use the digits
that were actually produced.

# Overflow and Rounding

Inexact results are produced digit by digit. After every digit an
[OverflowFunc] is consulted with the scale and the precision of the digits
collected so far. Once it reports overflow, trailing digits are dropped
until it no longer does, and the result is rounded according to a
[RoundingMode]:

  - [RoundHalfUp]: to the nearest value, ties away from zero (default);
  - [RoundTrunc]: towards zero;
  - [RoundFloor]: towards negative infinity;
  - [RoundCeil]: towards positive infinity.

The precision of a value is the number of digits of its coefficient, or its
scale if that is larger, so leading zeros after the decimal point count.
The default policy, [DefaultOverflow], keeps up to [DefaultMaxPrecision]
digits once a result has a fractional part:

	4 / 10^20 = 0.00000000000000000004
	4 / 10^21 = 0

The policy of a single operation can be changed with options:

	d.Quo(e, bigdec.WithMaxDp(2), bigdec.WithRounding(bigdec.RoundFloor))

An overflow function that never reports overflow makes the computation of
a non-terminating quotient or an irrational root run forever.

# Infinity

Operations on infinities follow the conventions of the extended real line:

	∞ + x = ∞           ∞ - ∞ = NaN
	∞ * x = ±∞ (x ≠ 0)   ∞ * 0 = NaN
	x / ∞ = 0           ∞ / ∞ = NaN
	x % ∞ = x           ∞ % x = NaN
	x^0   = 1           0^∞   = 0,  0^-∞ = ∞
	1^∞   = NaN         (-∞)^3 = -∞, (-∞)^2 = ∞

# Conversions

The package provides methods for converting decimals:

  - from/to string:
    [Parse], [Decimal.String], [Decimal.Format].
  - from/to float64:
    [NewFromFloat64], [Decimal.Float64].
  - from/to integers:
    [NewFromInt64], [NewFromInt], [NewFromBigInt].
  - from/to rationals:
    [NewFromRat], [Decimal.Rat].
  - from anything of the above:
    [New].

Decimals also implement [encoding.TextMarshaler], [encoding/json.Marshaler],
[database/sql.Scanner] and [database/sql/driver.Valuer], together with their
counterparts.

# Errors

Arithmetic never fails: undefined results are NaN, and division of a nonzero
value by zero is an infinity. [Parse] returns an error wrapping
[ErrInvalidDecimal] together with NaN. The only panics are caused by invalid
arguments, such as an unknown [RoundingMode].
*/
package bigdec
