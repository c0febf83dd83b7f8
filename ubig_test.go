// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import "testing"

func mustUBig(t *testing.T, s string) UBig {
	t.Helper()
	v, err := ParseUBigRadix(s, 10)
	if err != nil {
		t.Fatalf("ParseUBigRadix(%q): %v", s, err)
	}
	return v
}

func mustUBigHex(t *testing.T, s string) UBig {
	t.Helper()
	v, err := ParseUBigRadix(s, 16)
	if err != nil {
		t.Fatalf("ParseUBigRadix(%q, 16): %v", s, err)
	}
	return v
}

func TestUBigAddHexCarry(t *testing.T) {
	a := mustUBigHex(t, "ffffffffffffffff")
	b := mustUBigHex(t, "1")
	got := a.Add(b)
	want := mustUBigHex(t, "10000000000000000")
	if !got.Equal(want) {
		t.Errorf("ffff...ff + 1 = %s, want %s", got.String(), want.String())
	}
}

func TestUBigAddSubInverse(t *testing.T) {
	a := mustUBig(t, "123456789012345678901234567890")
	b := mustUBig(t, "98765432109876543210")
	sum := a.Add(b)
	back := sum.Sub(b)
	if !back.Equal(a) {
		t.Errorf("(a+b)-b = %s, want %s", back.String(), a.String())
	}
}

func TestUBigSubUnderflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic subtracting a larger value")
		}
	}()
	mustUBig(t, "1").Sub(mustUBig(t, "2"))
}

func TestUBigSubChecked(t *testing.T) {
	a := mustUBig(t, "5")
	b := mustUBig(t, "10")
	if _, ok := a.SubChecked(b); ok {
		t.Errorf("5 - 10 should not succeed unsigned")
	}
	v, ok := b.SubChecked(a)
	if !ok || !v.Equal(mustUBig(t, "5")) {
		t.Errorf("10 - 5 = %v, ok=%v, want 5, true", v, ok)
	}
}

func TestUBigCmp(t *testing.T) {
	a := mustUBig(t, "1000000000000000000000000000000")
	b := mustUBig(t, "999999999999999999999999999999")
	if a.Cmp(b) <= 0 {
		t.Errorf("expected a > b")
	}
	if b.Cmp(a) >= 0 {
		t.Errorf("expected b < a")
	}
	if a.Cmp(a) != 0 {
		t.Errorf("expected a == a")
	}
}

func TestUBigNormalizationNoTrailingZeroWord(t *testing.T) {
	a := mustUBigHex(t, "10000000000000000")
	b := mustUBigHex(t, "ffffffffffffffff")
	got := a.Sub(b)
	if !got.IsOne() {
		t.Errorf("2^64 - (2^64-1) = %s, want 1", got.String())
	}
	if got.Len() != 1 {
		t.Errorf("normalized result should collapse to a single word, got Len()=%d", got.Len())
	}
}

func TestUBigMulAlgorithmsAgree(t *testing.T) {
	// Force each size tier: schoolbook, Karatsuba, Toom-3.
	sizes := []int{8, 64, 300}
	for _, n := range sizes {
		x := make([]Word, n)
		y := make([]Word, n)
		for i := range x {
			x[i] = Word(i*2654435761 + 1)
			y[i] = Word(i*40503 + 7)
		}
		xu := fromWords(append([]Word(nil), x...))
		yu := fromWords(append([]Word(nil), y...))

		viaSchool := fromWords(mulSimple(x, y))
		viaKaratsuba := fromWords(karatsubaMul(x, y))
		viaToom3 := fromWords(toomCook3Mul(x, y))
		viaDispatch := xu.Mul(yu)

		if !viaKaratsuba.Equal(viaSchool) {
			t.Errorf("size %d: karatsuba disagrees with schoolbook", n)
		}
		if !viaToom3.Equal(viaSchool) {
			t.Errorf("size %d: toom-3 disagrees with schoolbook", n)
		}
		if !viaDispatch.Equal(viaSchool) {
			t.Errorf("size %d: dispatcher disagrees with schoolbook", n)
		}
	}
}

func TestUBigDivRemIdentity(t *testing.T) {
	u := mustUBig(t, "123456789012345678901234567890123456789012345678901234567890")
	v := mustUBig(t, "987654321098765432109876543210")
	q, r := u.DivRem(v)
	back := q.Mul(v).Add(r)
	if !back.Equal(u) {
		t.Errorf("q*v+r = %s, want %s", back.String(), u.String())
	}
	if r.Cmp(v) >= 0 {
		t.Errorf("remainder %s should be < divisor %s", r.String(), v.String())
	}
}

func TestUBigDivRemAlgorithmsAgree(t *testing.T) {
	// u, v sized to force divRemDC's threshold.
	uw := make([]Word, 400)
	vw := make([]Word, 150)
	for i := range uw {
		uw[i] = Word(i*2654435761 + 3)
	}
	for i := range vw {
		vw[i] = Word(i*40503 + 11)
	}
	vw[len(vw)-1] |= 1 // ensure nonzero top word
	u := fromWords(uw)
	v := fromWords(vw)

	qSimple, rSimple := divRemSimple(u, v)
	qDC, rDC := divRemDC(u, v)
	if !qSimple.Equal(qDC) {
		t.Errorf("quotient disagreement: simple=%s dc=%s", qSimple.String(), qDC.String())
	}
	if !rSimple.Equal(rDC) {
		t.Errorf("remainder disagreement: simple=%s dc=%s", rSimple.String(), rDC.String())
	}
}

func TestUBigDivByZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic dividing by zero")
		}
	}()
	mustUBig(t, "5").DivRem(UBig{})
}

func TestUBigGcdExample(t *testing.T) {
	a := mustUBigHex(t, "123456789abcdef")
	b := mustUBigHex(t, "fedcba9876543210")
	g := a.Gcd(b)
	if !a.Rem(g).IsZero() {
		t.Errorf("gcd %s does not divide a %s", g.String(), a.String())
	}
	if !b.Rem(g).IsZero() {
		t.Errorf("gcd %s does not divide b %s", g.String(), b.String())
	}
}

func TestUBigGcdZeroZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for gcd(0,0)")
		}
	}()
	UBig{}.Gcd(UBig{})
}

func TestUBigExtendedGcdBezout(t *testing.T) {
	a := mustUBig(t, "240")
	b := mustUBig(t, "46")
	g, x, y := a.ExtendedGcd(b)
	lhs := x.Mul(NewIBigFromUBig(Positive, a)).Add(y.Mul(NewIBigFromUBig(Positive, b)))
	if !lhs.Equal(NewIBigFromUBig(Positive, g)) {
		t.Errorf("x*a+y*b = %s, want gcd %s", lhs.String(), g.String())
	}
}

func TestUBigPowExamples(t *testing.T) {
	cases := []struct {
		base string
		exp  int
		want string
	}{
		{"2", 10, "1024"},
		{"3", 0, "1"},
		{"5", 1, "5"},
		{"10", 20, "100000000000000000000"},
	}
	for _, c := range cases {
		got := mustUBig(t, c.base).Pow(c.exp)
		want := mustUBig(t, c.want)
		if !got.Equal(want) {
			t.Errorf("%s^%d = %s, want %s", c.base, c.exp, got.String(), c.want)
		}
	}
}

func TestUBigPowAdditivity(t *testing.T) {
	base := mustUBig(t, "7")
	lhs := base.Pow(5).Mul(base.Pow(3))
	rhs := base.Pow(8)
	if !lhs.Equal(rhs) {
		t.Errorf("base^5 * base^3 = %s, want base^8 = %s", lhs.String(), rhs.String())
	}
}

func TestUBigFactorial20(t *testing.T) {
	f := One
	for i := Word(1); i <= 20; i++ {
		f = f.MulWord(i)
	}
	want := mustUBig(t, "2432902008176640000")
	if !f.Equal(want) {
		t.Errorf("20! = %s, want %s", f.String(), want.String())
	}
}

func TestUBigBitOps(t *testing.T) {
	a := mustUBigHex(t, "a5")
	if !a.Bit(0) || a.Bit(1) {
		t.Errorf("0xa5 bit0=%v bit1=%v, want true,false", a.Bit(0), a.Bit(1))
	}
	shifted := a.Shl(8)
	want := mustUBigHex(t, "a500")
	if !shifted.Equal(want) {
		t.Errorf("0xa5 << 8 = %s, want %s", shifted.String(), want.String())
	}
	back := shifted.Shr(8)
	if !back.Equal(a) {
		t.Errorf("(a<<8)>>8 = %s, want %s", back.String(), a.String())
	}
}

func TestUBigShlNegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for negative shift")
		}
	}()
	mustUBig(t, "1").Shl(-1)
}
