package bigdec

import "math/big"

// fraction is an exact rational number num / den.
// It is always reduced and the sign is carried by num.
// A zero den encodes a signed infinity (or an indeterminate value if
// num is also zero).
type fraction struct {
	num *bint
	den *bint
}

// newFraction returns the reduced form of num / den.
// The arguments are not modified.
func newFraction(num, den *bint) fraction {
	n := new(bint).setBint(num)
	d := new(bint).setBint(den)
	switch {
	case d.sign() == 0:
		n.setInt64(int64(n.sign()))
		return fraction{num: n, den: d}
	case n.sign() == 0:
		return fraction{num: n, den: d.setInt64(1)}
	case d.sign() < 0:
		n.neg(n)
		d.neg(d)
	}
	g := new(bint).gcd(n, d)
	if g.cmp(bpow10[0]) != 0 {
		n.quo(n, g)
		d.quo(d, g)
	}
	return fraction{num: n, den: d}
}

func (f fraction) sign() int {
	return f.num.sign()
}

func (f fraction) isInf() bool {
	return f.den.sign() == 0 && f.num.sign() != 0
}

func (f fraction) isInt() bool {
	return f.den.cmp(bpow10[0]) == 0
}

// isTerminating reports whether f has a finite decimal expansion.
func (f fraction) isTerminating() bool {
	return f.den.isPow2x5()
}

func (f fraction) neg() fraction {
	return fraction{num: new(bint).neg(f.num), den: f.den}
}

func (f fraction) inv() fraction {
	return newFraction(f.den, f.num)
}

func (f fraction) add(g fraction) fraction {
	// a/b + c/d = (ad + cb) / bd
	n := new(bint).mul(f.num, g.den)
	m := new(bint).mul(g.num, f.den)
	n.add(n, m)
	d := new(bint).mul(f.den, g.den)
	return newFraction(n, d)
}

func (f fraction) sub(g fraction) fraction {
	return f.add(g.neg())
}

func (f fraction) mul(g fraction) fraction {
	n := new(bint).mul(f.num, g.num)
	d := new(bint).mul(f.den, g.den)
	return newFraction(n, d)
}

func (f fraction) quo(g fraction) fraction {
	return f.mul(g.inv())
}

// pow returns f^k for k >= 0.
func (f fraction) pow(k int) fraction {
	n := new(bint).exp(f.num, k)
	d := new(bint).exp(f.den, k)
	return fraction{num: n, den: d} // powers of coprime integers stay coprime
}

// trunc returns the integer part of f, rounded towards zero.
func (f fraction) trunc() *bint {
	return new(bint).quo(f.num, f.den)
}

// root returns the exact k-th root of f, if both num and den are perfect
// k-th powers.
func (f fraction) root(k int) (fraction, bool) {
	if f.sign() < 0 {
		return fraction{}, false
	}
	n, ok := intRoot(f.num, k)
	if !ok {
		return fraction{}, false
	}
	d, ok := intRoot(f.den, k)
	if !ok {
		return fraction{}, false
	}
	return fraction{num: n, den: d}, true
}

// terminate returns the exact decimal expansion of a terminating fraction.
func (f fraction) terminate() scaled {
	// den = 2^a * 5^b, so num / den = num * 2^(m-a) * 5^(m-b) / 10^m
	d := new(big.Int).Set(f.den.big())
	a := int(d.TrailingZeroBits())
	d.Rsh(d, uint(a))
	b := 0
	five := big.NewInt(5)
	for d.Cmp(bpow10[0].big()) != 0 {
		d.Quo(d, five)
		b++
	}
	m := max(a, b)
	coef := new(bint).setBint(f.num)
	if m > a {
		p := new(bint).exp(newBint(2), m-a)
		coef.mul(coef, p)
	}
	if m > b {
		p := new(bint).exp(newBint(5), m-b)
		coef.mul(coef, p)
	}
	return newScaled(coef, -m)
}

// resolve converts f to a scaled value under the policy c.
// If the conversion is inexact, f is attached to the result so that
// later operations can recover the exact value.
func (f fraction) resolve(c config) scaled {
	if f.isInt() {
		return newScaled(f.num, 0)
	}
	if f.isTerminating() {
		s := f.terminate()
		if !c.overflow(s.scale(), s.prec()) {
			return s
		}
	}
	s, exact := collect(newQuotientDigits(f.num, f.den), f.sign() < 0, c)
	if !exact {
		s.frac = &f
	}
	return s
}

func (f fraction) rat() *big.Rat {
	return new(big.Rat).SetFrac(f.num.big(), f.den.big())
}

// intRoot returns the k-th root of n >= 0 if n is a perfect k-th power.
func intRoot(n *bint, k int) (*bint, bool) {
	if n.sign() == 0 {
		return new(bint), true
	}
	src := newRootSource(n, 0, k)
	r, _ := collect(src, false, newConfig([]Option{WithMaxDp(0)}).truncating())
	if !src.done() {
		return nil, false
	}
	return r.c(), true
}
