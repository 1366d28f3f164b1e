package bigdec

import (
	"math"
	"math/big"
	"strings"
)

// digitSource produces the decimal digits of a non-negative number,
// most significant first.
// Once the number is exhausted, done reports true and next keeps
// returning zeros.
type digitSource interface {
	// next returns the digit at position exp() and advances by one position.
	next() uint8
	// done reports whether all remaining digits are zero.
	done() bool
	// exp returns the exponent of the digit that next will return.
	exp() int
}

// quotientDigits is a long division of |n| by |d|.
type quotientDigits struct {
	rem *bint // remainder, aligned so that rem / den is the next digit
	den *bint
	e   int
}

// newQuotientDigits returns the digits of |n| / |d|.
// d must not be zero.
func newQuotientDigits(n, d *bint) *quotientDigits {
	num := new(bint).abs(n)
	den := new(bint).abs(d)
	if num.sign() == 0 {
		return &quotientDigits{rem: num, den: den}
	}
	e := num.prec() - den.prec()
	if e >= 0 {
		den.lsh(den, e)
	} else {
		num.lsh(num, -e)
	}
	// Leading digit must be nonzero
	if num.cmp(den) < 0 {
		num.lsh(num, 1)
		e--
	}
	return &quotientDigits{rem: num, den: den, e: e}
}

func (q *quotientDigits) exp() int {
	return q.e
}

func (q *quotientDigits) done() bool {
	return q.rem.sign() == 0
}

// next performs one long-division step: it finds the largest digit such
// that digit * den <= rem and carries the remainder to the next position.
func (q *quotientDigits) next() uint8 {
	q.e--
	if q.rem.sign() == 0 {
		return 0
	}
	digit, r := new(bint), new(bint)
	digit.quoRem(q.rem, q.den, r)
	q.rem = r.lsh(r, 1)
	return uint8(digit.big().Uint64())
}

// rootDigits extracts the k-th root of an integer radicand, one digit at
// a time, using the shifting n-th root algorithm.
// The radicand is consumed in groups of k digits.
type rootDigits struct {
	k      int
	groups []*bint // k-digit groups of the radicand, most significant first
	binom  []*bint // binom[j] = C(k, j)
	base   *bint   // 10^k
	y      *bint   // root extracted so far
	r      *bint   // remainder
	e      int
	pos    int // index of the next group
}

// newRootDigits returns the digits of the k-th root of m * 10^exp,
// where m > 0 and k >= 2.
func newRootDigits(m *bint, exp, k int) *rootDigits {
	// Make the exponent a multiple of k
	s := exp % k
	if s < 0 {
		s += k
	}
	radicand := new(bint).lsh(m, s)
	exp -= s

	digits := radicand.string()
	if pad := len(digits) % k; pad != 0 {
		digits = string(make0s(k-pad)) + digits
	}
	groups := make([]*bint, 0, len(digits)/k)
	for i := 0; i < len(digits); i += k {
		g, _ := new(big.Int).SetString(digits[i:i+k], 10)
		groups = append(groups, (*bint)(g))
	}

	return &rootDigits{
		k:      k,
		groups: groups,
		binom:  pascalRow(k),
		base:   new(bint).pow10(k),
		y:      new(bint),
		r:      new(bint),
		e:      len(groups) - 1 + exp/k,
	}
}

func make0s(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = '0'
	}
	return b
}

// pascalRow returns C(k, 0), ..., C(k, k).
func pascalRow(k int) []*bint {
	row := make([]*bint, k+1)
	for j := range row {
		row[j] = (*bint)(new(big.Int).Binomial(int64(k), int64(j)))
	}
	return row
}

func (x *rootDigits) exp() int {
	return x.e
}

func (x *rootDigits) done() bool {
	return x.pos >= len(x.groups) && x.r.sign() == 0
}

// next appends the largest digit b such that (10y + b)^k - (10y)^k does
// not exceed the remainder carried to the next group.
func (x *rootDigits) next() uint8 {
	x.e--
	alpha := new(bint)
	if x.pos < len(x.groups) {
		alpha = x.groups[x.pos]
	}
	x.pos++

	// c = r * 10^k + alpha
	c := new(bint).mul(x.r, x.base)
	c.add(c, alpha)

	t := new(bint).lsh(x.y, 1) // t = 10y
	var (
		digit uint8
		delta *bint
	)
	if x.k == 2 {
		digit, delta = x.nextSquare(t, c)
	} else {
		digit, delta = x.nextPower(t, c)
	}

	x.r = c.sub(c, delta)
	x.y = t.add(t, newBint(int64(digit)))
	return digit
}

// nextSquare solves (2t + b) * b <= c for the largest b.
func (x *rootDigits) nextSquare(t, c *bint) (uint8, *bint) {
	t2 := new(bint).add(t, t)
	for b := int64(9); b > 0; b-- {
		bb := newBint(b)
		delta := new(bint).add(t2, bb)
		delta.mul(delta, bb)
		if delta.cmp(c) <= 0 {
			return uint8(b), delta
		}
	}
	return 0, new(bint)
}

// nextPower solves sum C(k, j) t^(k-j) b^j <= c, j = 1..k, for the largest b.
func (x *rootDigits) nextPower(t, c *bint) (uint8, *bint) {
	// tp[i] = t^i
	tp := make([]*bint, x.k)
	tp[0] = newBint(1)
	for i := 1; i < x.k; i++ {
		tp[i] = new(bint).mul(tp[i-1], t)
	}
	for b := int64(9); b > 0; b-- {
		bb := newBint(b)
		bj := newBint(1)
		delta := new(bint)
		term := new(bint)
		for j := 1; j <= x.k; j++ {
			bj.mul(bj, bb)
			term.mul(x.binom[j], tp[x.k-j])
			term.mul(term, bj)
			delta.add(delta, term)
		}
		if delta.cmp(c) <= 0 {
			return uint8(b), delta
		}
	}
	return 0, new(bint)
}

// maxShiftingRoot is the largest index served by [rootDigits].
// Each of its digits costs O(k) multiplications of numbers with O(k)
// digits, so larger indexes use [newtonRootDigits].
const maxShiftingRoot = 8

// maxRootIndex is the largest root index accepted by [Decimal.Root] and
// the largest exponent denominator accepted by [Decimal.Pow].
const maxRootIndex = 1 << 14

// rootGuardDigits is the number of digits a [newtonRootDigits] computes
// up front.
const rootGuardDigits = 24

// newRootSource returns the digits of the k-th root of m * 10^exp,
// where m > 0 and k >= 2.
func newRootSource(m *bint, exp, k int) digitSource {
	if k <= maxShiftingRoot {
		return newRootDigits(m, exp, k)
	}
	if exp >= 0 {
		return newNewtonRootDigits(new(bint).lsh(m, exp), bpow10[0], k)
	}
	return newNewtonRootDigits(m, new(bint).pow10(-exp), k)
}

// newtonRootDigits produces the digits of the k-th root of a / b.
// It computes y = floor(root(a / b) * 10^g) with integer Newton
// iterations and hands out the digits of y; once they run out, g is
// doubled and y recomputed, starting from the previous result.
type newtonRootDigits struct {
	k      int
	a, b   *big.Int
	g      int
	y      *big.Int
	digits string
	nz     int  // index past the last nonzero digit
	exact  bool // y^k * b == a * 10^(k*g)
	pos    int
	e      int
}

// newNewtonRootDigits returns the digits of the k-th root of a / b,
// where a > 0, b > 0 and k >= 2.
func newNewtonRootDigits(a, b *bint, k int) *newtonRootDigits {
	x := &newtonRootDigits{k: k, a: a.big(), b: b.big()}
	d := a.prec() - b.prec()
	g := rootGuardDigits + 1 - d/k
	if d < 0 {
		g++
	}
	x.g = max(g, 1)
	x.compute(nil)
	for x.y.Sign() == 0 {
		x.g += rootGuardDigits
		x.compute(nil)
	}
	x.e = len(x.digits) - 1 - x.g
	return x
}

// compute sets y for the current g.
// guess, if not nil, must not be less than the result.
func (x *newtonRootDigits) compute(guess *big.Int) {
	n := new(big.Int).Mul(x.a, new(bint).pow10(x.k*x.g).big())
	r := new(big.Int)
	n.QuoRem(n, x.b, r)
	x.y = floorRoot(n, x.k, guess)
	p := new(big.Int).Exp(x.y, big.NewInt(int64(x.k)), nil)
	x.exact = r.Sign() == 0 && p.Cmp(n) == 0
	x.digits = x.y.String()
	x.nz = len(strings.TrimRight(x.digits, "0"))
}

func (x *newtonRootDigits) exp() int {
	return x.e
}

func (x *newtonRootDigits) done() bool {
	return x.exact && x.pos >= x.nz
}

func (x *newtonRootDigits) next() uint8 {
	x.e--
	if x.pos >= len(x.digits) {
		if x.exact {
			x.pos++
			return 0
		}
		// floor(v * 10^g) is a prefix of floor(v * 10^2g)
		g := 2 * x.g
		guess := new(big.Int).Add(x.y, big.NewInt(1))
		guess.Mul(guess, new(bint).pow10(g-x.g).big())
		x.g = g
		x.compute(guess)
	}
	d := x.digits[x.pos] - '0'
	x.pos++
	return d
}

// floorRoot returns floor(n^(1/k)) for n >= 0 and k >= 2.
// guess, if not nil, must not be less than the result.
func floorRoot(n *big.Int, k int, guess *big.Int) *big.Int {
	switch {
	case n.Sign() == 0:
		return new(big.Int)
	case k == 2:
		return new(big.Int).Sqrt(n)
	}
	y := guess
	if y == nil {
		y = rootEstimate(n, k)
	}
	var (
		kk = big.NewInt(int64(k))
		k1 = big.NewInt(int64(k - 1))
	)
	// y decreases strictly until it reaches the root
	for {
		t := new(big.Int).Exp(y, k1, nil)
		t.Quo(n, t)
		t.Add(t, new(big.Int).Mul(y, k1))
		t.Quo(t, kk)
		if t.Cmp(y) >= 0 {
			return y
		}
		y = t
	}
}

// rootEstimate returns an upper bound of floor(n^(1/k)) within a relative
// error of about 1e-9.
func rootEstimate(n *big.Int, k int) *big.Int {
	shift := max(n.BitLen()-64, 0)
	top, _ := new(big.Float).SetInt(new(big.Int).Rsh(n, uint(shift))).Float64()
	lg := (math.Log2(top) + float64(shift)) / float64(k)
	ip := math.Floor(lg)
	m := new(big.Float).SetFloat64(math.Exp2(lg-ip) * (1 + 1e-9))
	y, _ := m.SetMantExp(m, int(ip)).Int(nil)
	y.Add(y, big.NewInt(1))
	kk := big.NewInt(int64(k))
	for new(big.Int).Exp(y, kk, nil).Cmp(n) < 0 {
		y.Lsh(y, 1)
	}
	return y
}

// collect drives src into a scaled value with the given sign.
// Digits are produced until src is exhausted or the overflow predicate
// reports overflow; in the latter case trailing digits are dropped until
// the predicate is satisfied and the result is rounded.
// collect also reports whether the result is exact.
func collect(src digitSource, neg bool, c config) (scaled, bool) {
	var (
		coef    = new(bint)
		first   = src.exp()
		pos     = first // exponent of the next digit
		e       int     // exponent of the last appended digit
		ten     = bpow10[1]
		digit   = new(bint)
		dropped bool
	)
	for {
		if src.done() && pos < 0 {
			break
		}
		d := src.next()
		coef.mul(coef, ten)
		coef.add(coef, digit.setInt64(int64(d)))
		e = pos
		pos--
		if c.overflow(-e, precOf(coef, e)) {
			dropped = true
			break
		}
	}
	if !dropped {
		if neg {
			coef.neg(coef)
		}
		return newScaled(coef, e), true
	}

	// Overflow: shrink until the predicate holds
	var (
		last   uint8
		sticky = !src.done()
		r      = new(bint)
	)
	for c.overflow(-e, precOf(coef, e)) {
		if coef.sign() == 0 {
			// Only the position of the rounding unit changes from here on
			sticky = sticky || last != 0
			last = 0
			for e < first+maxExponent && c.overflow(-e, precOf(coef, e)) {
				e++
			}
			break
		}
		coef = new(bint).quoRem(coef, ten, r)
		sticky = sticky || last != 0
		last = uint8(r.big().Uint64())
		e++
	}
	exact := last == 0 && !sticky
	if c.rounding.increment(neg, last, sticky) {
		coef.inc(coef)
	}
	if neg {
		coef.neg(coef)
	}
	return newScaled(coef, e), exact
}
