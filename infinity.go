package bigdec

// infinity is a signed infinite value.
// Every operation on it is total; undefined results are NaN.
type infinity struct {
	neg bool
}

func (i infinity) sign() int {
	if i.neg {
		return -1
	}
	return 1
}

func (i infinity) decimal() Decimal {
	return Decimal{form: infinite, inf: i}
}

func (i infinity) flip() infinity {
	return infinity{neg: !i.neg}
}

// add returns ∞ + e.
//
//	±∞ + finite = ±∞
//	±∞ + ±∞     = ±∞
//	±∞ + ∓∞     = NaN
func (i infinity) add(e Decimal) Decimal {
	switch e.form {
	case finite:
		return i.decimal()
	case infinite:
		if e.inf.neg == i.neg {
			return i.decimal()
		}
	}
	return NaN
}

// mul returns ∞ * e.
//
//	∞ * 0        = NaN
//	∞ * finite   = ∞, signed by the product of signs
//	∞ * ∞        = ∞, signed by the product of signs
func (i infinity) mul(e Decimal) Decimal {
	switch e.form {
	case finite:
		if e.fin.isZero() {
			return NaN
		}
		return infinity{neg: i.neg != (e.fin.sign() < 0)}.decimal()
	case infinite:
		return infinity{neg: i.neg != e.inf.neg}.decimal()
	}
	return NaN
}

// quo returns ∞ / e.
//
//	∞ / ∞      = NaN
//	∞ / 0      = ∞, sign unchanged
//	∞ / finite = ∞, signed by the product of signs
func (i infinity) quo(e Decimal) Decimal {
	if e.form != finite {
		return NaN
	}
	if e.fin.isZero() {
		return i.decimal()
	}
	return infinity{neg: i.neg != (e.fin.sign() < 0)}.decimal()
}

// pow returns ∞^e.
//
//	±∞^0                       = 1
//	+∞^y, y > 0                = +∞
//	-∞^y, y positive odd int   = -∞
//	-∞^y, other y > 0          = +∞
//	±∞^y, y < 0                = 0
//	±∞^+∞                      = +∞
//	±∞^-∞                      = 0
func (i infinity) pow(e Decimal) Decimal {
	switch e.form {
	case finite:
		switch e.fin.sign() {
		case 0:
			return One
		case -1:
			return Zero
		}
		if i.neg && e.isOddInt() {
			return NegInf
		}
		return PosInf
	case infinite:
		if e.inf.neg {
			return Zero
		}
		return PosInf
	}
	return NaN
}

// root returns the k-th root of ∞ for a positive integer k.
// Even roots of -∞ are undefined.
func (i infinity) root(odd bool) Decimal {
	if i.neg && !odd {
		return NaN
	}
	return i.decimal()
}

// cmp compares ∞ with e, which must not be NaN.
func (i infinity) cmp(e Decimal) int {
	if e.form == infinite {
		switch {
		case i.neg == e.inf.neg:
			return 0
		case i.neg:
			return -1
		default:
			return 1
		}
	}
	return i.sign()
}

// powInf returns x^∞ (or x^-∞ if neg) for a finite x.
//
//	0^+∞          = 0
//	0^-∞          = +∞
//	(±1)^±∞       = NaN
//	|x| > 1: x^+∞ = +∞, x^-∞ = 0
//	|x| < 1: x^+∞ = 0,  x^-∞ = +∞
func powInf(x scaled, neg bool) Decimal {
	if x.isZero() {
		if neg {
			return PosInf
		}
		return Zero
	}
	switch x.abs().cmp(newScaledFromInt64(1)) {
	case 0:
		return NaN
	case 1:
		if neg {
			return Zero
		}
		return PosInf
	default:
		if neg {
			return PosInf
		}
		return Zero
	}
}
