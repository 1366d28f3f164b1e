package bigdec

import "math/big"

// scaled is a finite number coef * 10^exp.
//
// In canonical form exp <= 0, a fractional coefficient has no trailing
// zeros, and zero is represented as (0, 0).
// frac, if set, is the exact value that coef * 10^exp was rounded from.
// It is used to recover exactness in later operations, never for
// comparison or formatting.
type scaled struct {
	coef *bint // nil means 0
	exp  int
	frac *fraction
}

var bzero = newBint(0)

// newScaled returns the canonical form of coef * 10^exp.
// newScaled takes ownership of coef.
func newScaled(coef *bint, exp int) scaled {
	switch {
	case coef == nil || coef.sign() == 0:
		return scaled{}
	case exp > 0:
		return scaled{coef: new(bint).lsh(coef, exp)}
	case exp < 0:
		if z := min(coef.ntz(), -exp); z > 0 {
			coef = new(bint).rshDown(coef, z)
			exp += z
		}
	}
	return scaled{coef: coef, exp: exp}
}

func newScaledFromInt64(x int64) scaled {
	return newScaled(newBint(x), 0)
}

// c returns the coefficient, which is never nil.
func (x scaled) c() *bint {
	if x.coef == nil {
		return bzero
	}
	return x.coef
}

func (x scaled) sign() int {
	return x.c().sign()
}

func (x scaled) isZero() bool {
	return x.sign() == 0
}

// scale returns the number of digits after the decimal point.
func (x scaled) scale() int {
	return -x.exp
}

// prec returns the precision in the sense of [OverflowFunc].
func (x scaled) prec() int {
	return precOf(x.c(), x.exp)
}

func (x scaled) isInt() bool {
	return x.exp == 0
}

// isOne reports whether |x| == 1.
func (x scaled) isOne() bool {
	return x.exp == 0 && x.c().cmpAbs(bpow10[0]) == 0
}

// toFraction returns the exact value x stands for.
func (x scaled) toFraction() fraction {
	if x.frac != nil {
		return *x.frac
	}
	return newFraction(x.c(), new(bint).pow10(-x.exp))
}

func (x scaled) neg() scaled {
	z := scaled{coef: new(bint).neg(x.c()), exp: x.exp}
	if x.frac != nil {
		f := x.frac.neg()
		z.frac = &f
	}
	return z
}

func (x scaled) abs() scaled {
	if x.sign() < 0 {
		return x.neg()
	}
	return x
}

// align returns the coefficients of x and y scaled to the smaller exponent.
func align(x, y scaled) (a, b *bint, exp int) {
	exp = min(x.exp, y.exp)
	a = new(bint).lsh(x.c(), x.exp-exp)
	b = new(bint).lsh(y.c(), y.exp-exp)
	return a, b, exp
}

func (x scaled) add(y scaled, c config) scaled {
	if x.frac != nil && y.frac != nil {
		return x.frac.add(*y.frac).resolve(c)
	}
	a, b, exp := align(x, y)
	return newScaled(a.add(a, b), exp)
}

func (x scaled) sub(y scaled, c config) scaled {
	return x.add(y.neg(), c)
}

func (x scaled) mul(y scaled, c config) scaled {
	if x.frac != nil || y.frac != nil {
		return x.toFraction().mul(y.toFraction()).resolve(c)
	}
	coef := new(bint).mul(x.c(), y.c())
	return newScaled(coef, x.exp+y.exp)
}

// quo returns x / y.
// y must not be zero.
func (x scaled) quo(y scaled, c config) scaled {
	return x.toFraction().quo(y.toFraction()).resolve(c)
}

// rem returns x - y * trunc(x / y).
// y must not be zero.
func (x scaled) rem(y scaled, c config) scaled {
	f, g := x.toFraction(), y.toFraction()
	q := newFraction(f.quo(g).trunc(), bpow10[0])
	if x.frac != nil || y.frac != nil {
		return f.sub(g.mul(q)).resolve(c)
	}
	p := y.mul(newScaled(q.num, 0), c)
	return x.sub(p, c)
}

// powInt returns x^k for k >= 0 using repeated squaring.
func (x scaled) powInt(k int, c config) scaled {
	if x.frac != nil {
		return x.frac.pow(k).resolve(c)
	}
	var (
		coef = newBint(1)
		exp  = 0
		base = new(bint).setBint(x.c())
		bexp = x.exp
	)
	for k > 0 {
		if k&1 == 1 {
			coef.mul(coef, base)
			exp += bexp
		}
		k >>= 1
		if k > 0 {
			base.mul(base, base)
			bexp *= 2
		}
	}
	return newScaled(coef, exp)
}

// pow returns x^n.
// It reports false if the result is undefined, that is, when x is
// negative and n is not an integer, or if n is out of range.
// x must not be zero.
func (x scaled) pow(n scaled, c config) (scaled, bool) {
	f := n.toFraction()
	ip := f.trunc()
	rem := new(bint).mul(ip, f.den)
	rem.sub(f.num, rem)
	if rem.sign() != 0 && x.sign() < 0 {
		return scaled{}, false
	}
	if !ip.big().IsInt64() || ip.big().Int64() > 1<<31 || ip.big().Int64() < -1<<31 {
		return x.powHuge(ip, rem)
	}
	if rem.sign() != 0 {
		return x.powFrac(f, c)
	}
	z := x.powInt(abs(int(ip.big().Int64())), c)
	if n.sign() < 0 {
		return newScaledFromInt64(1).quo(z, c), true
	}
	return z, true
}

// powFrac returns x^(p/q) for x > 0 as the single root (x^p)^(1/q) of an
// exact rational, so the result is rounded once.
func (x scaled) powFrac(f fraction, c config) (scaled, bool) {
	if !f.den.big().IsInt64() || f.den.big().Int64() > maxRootIndex {
		return scaled{}, false
	}
	p := int(f.num.big().Int64())
	r := x.toFraction().pow(abs(p))
	if p < 0 {
		r = r.inv()
	}
	z, _ := collect(newNewtonRootDigits(r.num, r.den, int(f.den.big().Int64())), false, c)
	return z, true
}

// powHuge handles exponents whose integer part does not fit into an int.
// Only bases with |x| == 1 have a representable result.
func (x scaled) powHuge(ip, rem *bint) (scaled, bool) {
	if !x.isOne() || rem.sign() != 0 {
		return scaled{}, false
	}
	if x.sign() < 0 && ip.isOdd() {
		return newScaledFromInt64(-1), true
	}
	return newScaledFromInt64(1), true
}

// root returns the k-th root of x, where x >= 0 and k >= 1, and reports
// whether the result is exact.
func (x scaled) root(k int, c config) (scaled, bool) {
	switch {
	case k == 1 || x.isZero() || x.frac == nil && x.isOne():
		return x, true
	case x.frac != nil:
		if r, ok := x.frac.root(k); ok {
			z := r.resolve(c)
			return z, z.frac == nil
		}
	}
	return collect(newRootSource(x.c(), x.exp, k), false, c)
}

// shift returns x * 10^n.
func (x scaled) shift(n int) scaled {
	z := newScaled(new(bint).setBint(x.c()), x.exp+n)
	if x.frac != nil {
		p := newFraction(new(bint).pow10(abs(n)), bpow10[0])
		var f fraction
		if n >= 0 {
			f = x.frac.mul(p)
		} else {
			f = x.frac.quo(p)
		}
		z.frac = &f
	}
	return z
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// roundTo rounds x to the given number of digits after the decimal point.
// A negative scale rounds to tens, hundreds, and so on.
func (x scaled) roundTo(scale int, mode RoundingMode) scaled {
	k := x.scale() - scale
	if k <= 0 {
		return x
	}
	var (
		neg  = x.sign() < 0
		q    = new(bint)
		r    = new(bint)
		unit = new(bint).pow10(k - 1)
		mag  = new(bint).abs(x.c())
	)
	q.quoRem(mag, unit, r)
	sticky := r.sign() != 0
	first := new(bint)
	q = new(bint).quoRem(q, bpow10[1], first)
	if mode.increment(neg, uint8(first.big().Uint64()), sticky) {
		q.inc(q)
	}
	if neg {
		q.neg(q)
	}
	return newScaled(q, -scale)
}

// cmp compares the digits of x and y; attached fractions are ignored.
func (x scaled) cmp(y scaled) int {
	switch xs, ys := x.sign(), y.sign(); {
	case xs < ys:
		return -1
	case xs > ys:
		return 1
	case xs == 0:
		return 0
	}
	if x.exp == y.exp {
		return x.c().cmp(y.c())
	}
	a, b, _ := align(x, y)
	return a.cmp(b)
}

func (x scaled) rat() *big.Rat {
	return x.toFraction().rat()
}
