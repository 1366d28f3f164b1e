package bigdec

import (
	"math/big"
	"testing"
)

func takeDigits(src digitSource, n int) []uint8 {
	digits := make([]uint8, n)
	for i := range digits {
		digits[i] = src.next()
	}
	return digits
}

func equalDigits(a, b []uint8) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestQuotientDigits(t *testing.T) {
	tests := []struct {
		n, d   int64
		exp    int
		digits []uint8
		done   bool
	}{
		{1, 8, -1, []uint8{1, 2, 5, 0, 0}, true},
		{22, 7, 0, []uint8{3, 1, 4, 2, 8, 5, 7}, false},
		{-1, 3, -1, []uint8{3, 3, 3, 3}, false},
		{100, 4, 1, []uint8{2, 5, 0}, true},
		{7, 1, 0, []uint8{7, 0}, true},
		{1, 1000, -3, []uint8{1, 0}, true},
	}
	for _, tt := range tests {
		src := newQuotientDigits(newBint(tt.n), newBint(tt.d))
		if got := src.exp(); got != tt.exp {
			t.Errorf("newQuotientDigits(%v, %v).exp() = %v, want %v", tt.n, tt.d, got, tt.exp)
		}
		got := takeDigits(src, len(tt.digits))
		if !equalDigits(got, tt.digits) {
			t.Errorf("newQuotientDigits(%v, %v) digits = %v, want %v", tt.n, tt.d, got, tt.digits)
		}
		if src.done() != tt.done {
			t.Errorf("newQuotientDigits(%v, %v).done() = %v, want %v", tt.n, tt.d, src.done(), tt.done)
		}
		if want := tt.exp - len(tt.digits); src.exp() != want {
			t.Errorf("newQuotientDigits(%v, %v).exp() = %v after %v digits, want %v", tt.n, tt.d, src.exp(), len(tt.digits), want)
		}
	}
}

func TestRootDigits(t *testing.T) {
	tests := []struct {
		m      int64
		exp, k int
		first  int
		digits []uint8
		done   bool
	}{
		{2, 0, 2, 0, []uint8{1, 4, 1, 4, 2, 1, 3, 5, 6, 2}, false},
		{4, 0, 2, 0, []uint8{2, 0}, true},
		{100, 0, 2, 1, []uint8{1, 0, 0}, true},
		{25, -2, 2, -1, []uint8{5, 0}, true},
		{5, -1, 2, -1, []uint8{7, 0, 7, 1, 0, 6, 7, 8}, false},
		{27, 0, 3, 0, []uint8{3, 0}, true},
		{2, 0, 3, 0, []uint8{1, 2, 5, 9, 9, 2, 1, 0}, false},
		{1000000, 0, 3, 2, []uint8{1, 0, 0}, true},
		{16, 0, 4, 0, []uint8{2}, true},
		{3, 0, 5, 0, []uint8{1, 2, 4, 5, 7, 3}, false},
	}
	for _, tt := range tests {
		src := newRootDigits(newBint(tt.m), tt.exp, tt.k)
		if got := src.exp(); got != tt.first {
			t.Errorf("newRootDigits(%v, %v, %v).exp() = %v, want %v", tt.m, tt.exp, tt.k, got, tt.first)
		}
		got := takeDigits(src, len(tt.digits))
		if !equalDigits(got, tt.digits) {
			t.Errorf("newRootDigits(%v, %v, %v) digits = %v, want %v", tt.m, tt.exp, tt.k, got, tt.digits)
		}
		if src.done() != tt.done {
			t.Errorf("newRootDigits(%v, %v, %v).done() = %v, want %v", tt.m, tt.exp, tt.k, src.done(), tt.done)
		}
	}
}

func TestPascalRow(t *testing.T) {
	row := pascalRow(4)
	want := []int64{1, 4, 6, 4, 1}
	for i, w := range want {
		if row[i].cmp(newBint(w)) != 0 {
			t.Errorf("pascalRow(4)[%v] = %v, want %v", i, row[i].string(), w)
		}
	}
}

func TestCollect(t *testing.T) {
	tests := []struct {
		name  string
		n, d  *bint
		neg   bool
		opts  []Option
		want  string
		exact bool
	}{
		{"terminating", newBint(1), newBint(8), false, nil, "0.125", true},
		{"default", newBint(1), newBint(3), false, nil, "0.33333333333333333333", false},
		{"round up", newBint(2), newBint(3), false, []Option{WithMaxDp(2)}, "0.67", false},
		{"trunc", newBint(2), newBint(3), false, []Option{WithMaxDp(2), WithRounding(RoundTrunc)}, "0.66", false},
		{"floor", newBint(2), newBint(3), true, []Option{WithMaxDp(1), WithRounding(RoundFloor)}, "-0.7", false},
		{"ceil negative", newBint(2), newBint(3), true, []Option{WithMaxDp(1), WithRounding(RoundCeil)}, "-0.6", false},
		{"to integer", newBint(2), newBint(3), false, []Option{WithMaxDp(0)}, "1", false},
		{"to hundreds", newBint(1), newBint(3), false, []Option{WithMaxDp(-2), WithRounding(RoundCeil)}, "100", false},
		{"exact boundary", newBint(1), newBint(4), false, []Option{WithMaxDp(1)}, "0.3", false},
		{"underflow round", newBint(6), new(bint).pow10(21), false, nil, "0.00000000000000000001", false},
		{"underflow drop", newBint(6), new(bint).pow10(22), false, nil, "0", false},
		{"underflow ceil", newBint(6), new(bint).pow10(22), false, []Option{WithRounding(RoundCeil)}, "0.00000000000000000001", false},
		{"underflow floor", newBint(6), new(bint).pow10(30), true, []Option{WithRounding(RoundFloor)}, "-0.00000000000000000001", false},
		{"integer digits kept", newBint(1000000), newBint(3), false, []Option{WithMaxDecimalPrecision(3)}, "333333", false},
	}
	for _, tt := range tests {
		got, exact := collect(newQuotientDigits(tt.n, tt.d), tt.neg, newConfig(tt.opts))
		if s := string(appendScaled(nil, got, got.scale())); s != tt.want || exact != tt.exact {
			t.Errorf("%v: collect() = (%v, %v), want (%v, %v)", tt.name, s, exact, tt.want, tt.exact)
		}
	}
}

func TestNewtonRootDigits(t *testing.T) {
	tests := []struct {
		a, b   *bint
		k      int
		first  int
		digits []uint8
		done   bool
	}{
		{newBint(2), newBint(1), 2, 0, []uint8{1, 4, 1, 4, 2, 1, 3, 5, 6, 2, 3, 7, 3, 0, 9, 5, 0, 4, 8, 8, 0, 1, 6, 8, 8, 7, 2, 4, 2, 0, 9, 6, 9, 8, 0, 7, 8, 5, 6, 9}, false},
		{newBint(4), newBint(1), 2, 0, []uint8{2, 0}, true},
		{newBint(1), newBint(4), 2, -1, []uint8{5, 0}, true},
		{newBint(1), newBint(3), 3, -1, []uint8{6, 9, 3, 3, 6, 1, 2, 7, 4, 3, 5, 0, 6, 3, 4, 7, 0, 4, 8, 4, 3, 3, 5, 2, 2, 7, 4, 7, 8, 5, 9, 6, 1, 7, 9, 5, 4, 4, 5, 9}, false},
		{newBint(27), newBint(1000), 3, -1, []uint8{3}, true},
		{newBint(2), newBint(1), 10, 0, []uint8{1, 0, 7, 1, 7, 7, 3, 4, 6, 2, 5, 3, 6, 2, 9, 3, 1, 6, 4, 2, 1, 3, 0, 0, 6, 3, 2, 5, 0, 2}, false},
		{newBint(1024), newBint(1), 10, 0, []uint8{2, 0}, true},
		{newBint(1), new(bint).pow10(40), 20, -2, []uint8{1, 0}, true},
	}
	for _, tt := range tests {
		src := newNewtonRootDigits(tt.a, tt.b, tt.k)
		if got := src.exp(); got != tt.first {
			t.Errorf("newNewtonRootDigits(%v, %v, %v).exp() = %v, want %v", tt.a.string(), tt.b.string(), tt.k, got, tt.first)
		}
		got := takeDigits(src, len(tt.digits))
		if !equalDigits(got, tt.digits) {
			t.Errorf("newNewtonRootDigits(%v, %v, %v) digits = %v, want %v", tt.a.string(), tt.b.string(), tt.k, got, tt.digits)
		}
		if src.done() != tt.done {
			t.Errorf("newNewtonRootDigits(%v, %v, %v).done() = %v, want %v", tt.a.string(), tt.b.string(), tt.k, src.done(), tt.done)
		}
		if want := tt.first - len(tt.digits); src.exp() != want {
			t.Errorf("newNewtonRootDigits(%v, %v, %v).exp() = %v after %v digits, want %v", tt.a.string(), tt.b.string(), tt.k, src.exp(), len(tt.digits), want)
		}
	}
}

func TestFloorRoot(t *testing.T) {
	tests := []struct {
		n     *bint
		k     int
		guess *bint
		want  string
	}{
		{newBint(0), 3, nil, "0"},
		{newBint(1), 5, nil, "1"},
		{newBint(26), 3, nil, "2"},
		{newBint(27), 3, nil, "3"},
		{new(bint).pow10(20), 2, nil, "10000000000"},
		{new(bint).pow10(300), 100, nil, "1000"},
		{new(bint).sub(new(bint).pow10(300), newBint(1)), 100, nil, "999"},
		{newBint(1 << 62), 31, nil, "4"},
		{new(bint).pow10(60), 3, new(bint).pow10(25), "100000000000000000000"},
		{newBint(1000), 3, new(bint).pow10(30), "10"},
	}
	for _, tt := range tests {
		var guess *big.Int
		if tt.guess != nil {
			guess = tt.guess.big()
		}
		got := floorRoot(tt.n.big(), tt.k, guess)
		if got.String() != tt.want {
			t.Errorf("floorRoot(%v, %v) = %v, want %v", tt.n.string(), tt.k, got, tt.want)
		}
	}
}

func TestNewRootSource(t *testing.T) {
	if _, ok := newRootSource(newBint(2), 0, maxShiftingRoot).(*rootDigits); !ok {
		t.Errorf("newRootSource(2, 0, %v) is not a shifting root", maxShiftingRoot)
	}
	src := newRootSource(newBint(5), -1, maxShiftingRoot+1)
	if _, ok := src.(*newtonRootDigits); !ok {
		t.Errorf("newRootSource(5, -1, %v) is not a Newton root", maxShiftingRoot+1)
	}
	// 0.5^(1/9) = 0.92587471...
	want := []uint8{9, 2, 5, 8, 7, 4, 7, 1}
	if src.exp() != -1 {
		t.Errorf("newRootSource(5, -1, 9).exp() = %v, want -1", src.exp())
	}
	if got := takeDigits(src, len(want)); !equalDigits(got, want) {
		t.Errorf("newRootSource(5, -1, 9) digits = %v, want %v", got, want)
	}
}
