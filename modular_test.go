// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import "testing"

func TestModuloRingZeroModulusPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic constructing a ring with zero modulus")
		}
	}()
	NewModuloRing(UBig{})
}

func TestModuloSubResidueExample(t *testing.T) {
	ring := NewModuloRing(mustUBig(t, "10000"))
	x := ring.FromUBig(mustUBig(t, "12345"))
	y := ring.FromUBig(mustUBig(t, "55443"))
	got := x.Sub(y).Residue()
	want := mustUBig(t, "6902")
	if !got.Equal(want) {
		t.Errorf("(12345 - 55443) mod 10000 = %s, want %s", got.String(), want.String())
	}
}

func TestModuloNegativeFromIBig(t *testing.T) {
	ring := NewModuloRing(mustUBig(t, "100"))
	x := ring.FromIBig(mustIBig(t, "-1234"))
	y := ring.FromUBig(mustUBig(t, "3366"))
	if !x.Equal(y) {
		t.Errorf("ring.from(-1234) = %s, want %s", x.Residue().String(), y.Residue().String())
	}
}

func TestModuloCrossRingPanics(t *testing.T) {
	r1 := NewModuloRing(mustUBig(t, "10"))
	r2 := NewModuloRing(mustUBig(t, "10"))
	a := r1.FromWord(3)
	b := r2.FromWord(4)
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic mixing values from different rings, even with equal moduli")
		}
	}()
	a.Add(b)
}

func TestModuloDistributivity(t *testing.T) {
	ring := NewModuloRing(mustUBig(t, "1000000007"))
	a := ring.FromWord(123456789)
	b := ring.FromWord(987654321)
	c := ring.FromWord(42)
	lhs := a.Add(b).Mul(c)
	rhs := a.Mul(c).Add(b.Mul(c))
	if !lhs.Equal(rhs) {
		t.Errorf("(a+b)*c = %s, want (a*c)+(b*c) = %s", lhs.Residue().String(), rhs.Residue().String())
	}
}

func TestModuloFermatLittleTheoremMersennePrime(t *testing.T) {
	// p = 2^607 - 1, a Mersenne prime.
	p := One.Shl(607).Sub(One)
	ring := NewModuloRing(p)
	a := ring.FromWord(123)

	pMinus1, err := IBigFromInt64(-1).Add(NewIBigFromUBig(Positive, p)).ToUBig()
	if err != nil {
		t.Fatalf("p-1: %v", err)
	}
	lhs := a.Pow(pMinus1)
	rhs := ring.FromWord(1)
	if !lhs.Equal(rhs) {
		t.Errorf("a^(p-1) mod p = %s, want 1", lhs.Residue().String())
	}

	pMinus2, err := IBigFromInt64(-2).Add(NewIBigFromUBig(Positive, p)).ToUBig()
	if err != nil {
		t.Fatalf("p-2: %v", err)
	}
	inv, ok := a.Inverse()
	if !ok {
		t.Fatalf("expected a to be invertible mod a prime")
	}
	viaPow := a.Pow(pMinus2)
	if !inv.Equal(viaPow) {
		t.Errorf("a.inverse() = %s, want a^(p-2) = %s", inv.Residue().String(), viaPow.Residue().String())
	}
}

func TestModuloInverseNonInvertible(t *testing.T) {
	ring := NewModuloRing(mustUBig(t, "10"))
	x := ring.FromWord(4) // gcd(4, 10) = 2
	if _, ok := x.Inverse(); ok {
		t.Errorf("4 should not be invertible mod 10")
	}
}

func TestModuloDivPanicsWhenNotInvertible(t *testing.T) {
	ring := NewModuloRing(mustUBig(t, "10"))
	x := ring.FromWord(1)
	y := ring.FromWord(4)
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic dividing by a non-invertible value")
		}
	}()
	x.Div(y)
}
