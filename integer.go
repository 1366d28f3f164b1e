package bigdec

import (
	"math/big"
	"sync"
)

// bint (Big INTeger) is a wrapper around big.Int.
// Values of type *bint reachable from a Decimal are never mutated;
// every operation writes into a freshly allocated or pooled receiver.
type bint big.Int

// bpow10 is a cache of powers of 10, where bpow10[x] = 10^x.
// Entries are shared and must never be used as a receiver.
var bpow10 = func() [100]*bint {
	var p [100]*bint
	ten := big.NewInt(10)
	acc := big.NewInt(1)
	for i := range p {
		p[i] = (*bint)(new(big.Int).Set(acc))
		acc.Mul(acc, ten)
	}
	return p
}()

func newBint(x int64) *bint {
	return (*bint)(big.NewInt(x))
}

func newBintFromBig(x *big.Int) *bint {
	return (*bint)(new(big.Int).Set(x))
}

// big returns the underlying *big.Int without copying.
func (z *bint) big() *big.Int {
	return (*big.Int)(z)
}

func (z *bint) sign() int {
	return z.big().Sign()
}

func (z *bint) isZero() bool {
	return z == nil || z.big().Sign() == 0
}

func (z *bint) cmp(x *bint) int {
	return z.big().Cmp(x.big())
}

// cmpAbs compares |z| and |x|.
func (z *bint) cmpAbs(x *bint) int {
	return z.big().CmpAbs(x.big())
}

func (z *bint) string() string {
	return z.big().String()
}

func (z *bint) setBint(x *bint) *bint {
	z.big().Set(x.big())
	return z
}

func (z *bint) setInt64(x int64) *bint {
	z.big().SetInt64(x)
	return z
}

// add calculates z = x + y.
func (z *bint) add(x, y *bint) *bint {
	z.big().Add(x.big(), y.big())
	return z
}

// inc calculates z = x + 1 if x is non-negative and z = x - 1 otherwise,
// that is, it moves x one unit away from zero.
func (z *bint) inc(x *bint) *bint {
	if x.sign() < 0 {
		return z.sub(x, bpow10[0])
	}
	return z.add(x, bpow10[0])
}

// sub calculates z = x - y.
func (z *bint) sub(x, y *bint) *bint {
	z.big().Sub(x.big(), y.big())
	return z
}

func (z *bint) neg(x *bint) *bint {
	z.big().Neg(x.big())
	return z
}

func (z *bint) abs(x *bint) *bint {
	z.big().Abs(x.big())
	return z
}

// mul calculates z = x * y.
func (z *bint) mul(x, y *bint) *bint {
	z.big().Mul(x.big(), y.big())
	return z
}

// exp calculates z = x^y.
// If y is negative, the result is 1.
func (z *bint) exp(x *bint, y int) *bint {
	if y <= 0 {
		return z.setInt64(1)
	}
	z.big().Exp(x.big(), big.NewInt(int64(y)), nil)
	return z
}

// pow10 calculates z = 10^power.
// If power is negative, the result is unpredictable.
func (z *bint) pow10(power int) *bint {
	if power < len(bpow10) {
		return z.setBint(bpow10[power])
	}
	x := getBint()
	defer putBint(x)
	x.setInt64(10)
	return z.exp(x, power)
}

// quo calculates z = x / y, truncated towards zero.
func (z *bint) quo(x, y *bint) *bint {
	z.big().Quo(x.big(), y.big())
	return z
}

// quoRem calculates z and r such that x = z * y + r, truncated towards zero.
func (z *bint) quoRem(x, y, r *bint) *bint {
	z.big().QuoRem(x.big(), y.big(), r.big())
	return z
}

// gcd calculates z = gcd(|x|, |y|).
func (z *bint) gcd(x, y *bint) *bint {
	a := new(big.Int).Abs(x.big())
	b := new(big.Int).Abs(y.big())
	z.big().GCD(nil, nil, a, b)
	return z
}

func (z *bint) isOdd() bool {
	return z.big().Bit(0) != 0
}

// lsh (Left Shift) calculates z = x * 10^shift.
func (z *bint) lsh(x *bint, shift int) *bint {
	switch {
	case shift <= 0:
		return z.setBint(x)
	case shift < len(bpow10):
		return z.mul(x, bpow10[shift])
	}
	y := getBint()
	defer putBint(y)
	y.pow10(shift)
	return z.mul(x, y)
}

// rshDown (Right Shift) calculates z = x / 10^shift and rounds
// result towards zero.
func (z *bint) rshDown(x *bint, shift int) *bint {
	switch {
	case x.sign() == 0:
		return z.setInt64(0)
	case shift <= 0:
		return z.setBint(x)
	case shift < len(bpow10):
		return z.quo(x, bpow10[shift])
	}
	y := getBint()
	defer putBint(y)
	y.pow10(shift)
	return z.quo(x, y)
}

// prec returns length of |z| in decimal digits.
// prec assumes that 0 has no digits.
//
// z.prec() is significantly faster than len(z.string()),
// if z has less than len(bpow10) digits.
func (z *bint) prec() int {
	if z.isZero() {
		return 0
	}
	// Special case
	if z.cmpAbs(bpow10[len(bpow10)-1]) >= 0 {
		s := z.string()
		if z.sign() < 0 {
			return len(s) - 1
		}
		return len(s)
	}
	// General case
	left, right := 0, len(bpow10)
	for left < right {
		mid := (left + right) / 2
		if z.cmpAbs(bpow10[mid]) < 0 {
			right = mid
		} else {
			left = mid + 1
		}
	}
	return left
}

// ntz returns number of trailing zeros in z.
// ntz assumes that 0 has no trailing zeros.
func (z *bint) ntz() int {
	if z.isZero() {
		return 0
	}
	q := getBint()
	defer putBint(q)
	r := getBint()
	defer putBint(r)
	q.setBint(z)
	n := 0
	for {
		q.quoRem(q, bpow10[1], r)
		if r.sign() != 0 {
			return n
		}
		n++
	}
}

// isPow2x5 reports whether z is a product of powers of 2 and 5 only.
// Such denominators are exactly those with a terminating decimal expansion.
func (z *bint) isPow2x5() bool {
	if z.isZero() {
		return false
	}
	x := new(big.Int).Abs(z.big())
	x.Rsh(x, x.TrailingZeroBits())
	five := big.NewInt(5)
	r := new(big.Int)
	for x.Cmp(bpow10[0].big()) != 0 {
		q, _ := new(big.Int).QuoRem(x, five, r)
		if r.Sign() != 0 {
			return false
		}
		x = q
	}
	return true
}

// pool is a cache of reusable *big.Int instances.
var pool = sync.Pool{
	New: func() any {
		return (*bint)(new(big.Int))
	},
}

// getBint obtains a *big.Int from the pool.
func getBint() *bint {
	return pool.Get().(*bint)
}

// putBint returns the *big.Int into the pool.
func putBint(b *bint) {
	pool.Put(b)
}
