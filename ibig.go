// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

// Sign is the sign of a signed integer.
type Sign int8

const (
	Positive Sign = 1
	Negative Sign = -1
)

func (s Sign) negate() Sign {
	if s == Positive {
		return Negative
	}
	return Positive
}

// IBig is an arbitrary-precision signed integer: a sign paired with a
// UBig magnitude. The invariant magnitude == 0 => sign == Positive holds at
// every boundary (no negative zero), per spec.md §3.
type IBig struct {
	sign Sign
	mag  UBig
}

// IZero is the additive identity.
var IZero = IBig{sign: Positive}

// NewIBigFromUBig builds an IBig from an explicit sign and magnitude,
// normalizing away negative zero.
func NewIBigFromUBig(s Sign, mag UBig) IBig {
	if mag.IsZero() {
		return IBig{sign: Positive}
	}
	return IBig{sign: s, mag: mag}
}

// NewIBigFromWord builds a non-negative IBig from a machine word.
func NewIBigFromWord(w Word) IBig {
	return IBig{sign: Positive, mag: UBig{small: w}}
}

// Sign returns the sign of i (Positive for zero).
func (i IBig) Sign() Sign { return i.sign }

// Magnitude returns |i| as a UBig.
func (i IBig) Magnitude() UBig { return i.mag }

// IsZero reports whether i == 0.
func (i IBig) IsZero() bool { return i.mag.IsZero() }

// IsNegative reports whether i < 0.
func (i IBig) IsNegative() bool { return i.sign == Negative && !i.mag.IsZero() }

// Neg returns -i. Involutive and preserves canonical zero, per spec.md
// §4.K.
func (i IBig) Neg() IBig {
	if i.mag.IsZero() {
		return i
	}
	return IBig{sign: i.sign.negate(), mag: i.mag}
}

// Cmp compares i and j, returning -1, 0, or +1.
func (i IBig) Cmp(j IBig) int {
	if i.IsZero() && j.IsZero() {
		return 0
	}
	if i.sign != j.sign {
		if i.sign == Negative {
			return -1
		}
		return 1
	}
	c := i.mag.Cmp(j.mag)
	if i.sign == Negative {
		return -c
	}
	return c
}

// Equal reports whether i == j.
func (i IBig) Equal(j IBig) bool { return i.Cmp(j) == 0 }

// Add returns i+j.
func (i IBig) Add(j IBig) IBig {
	if i.sign == j.sign {
		return NewIBigFromUBig(i.sign, i.mag.Add(j.mag))
	}
	if mag, ok := i.mag.subChecked(j.mag); ok {
		return NewIBigFromUBig(i.sign, mag)
	}
	mag, _ := j.mag.subChecked(i.mag)
	return NewIBigFromUBig(j.sign, mag)
}

// Sub returns i-j.
func (i IBig) Sub(j IBig) IBig { return i.Add(j.Neg()) }

// Mul returns i*j.
func (i IBig) Mul(j IBig) IBig {
	s := Positive
	if i.sign != j.sign {
		s = Negative
	}
	return NewIBigFromUBig(s, i.mag.Mul(j.mag))
}

// Shl returns i << shift.
func (i IBig) Shl(shift int) IBig {
	return NewIBigFromUBig(i.sign, i.mag.Shl(shift))
}

// Shr returns i >> shift, rounding toward negative infinity (arithmetic
// shift), consistent with floor division by a power of two.
func (i IBig) Shr(shift int) IBig {
	if i.sign == Positive || i.mag.IsZero() {
		return NewIBigFromUBig(i.sign, i.mag.Shr(shift))
	}
	// Negative: floor(i / 2^shift) = -ceil(mag / 2^shift).
	q := i.mag.Shr(shift)
	rest := i.mag.Sub(q.Shl(shift))
	if !rest.IsZero() {
		q = q.AddWord(1)
	}
	return NewIBigFromUBig(Negative, q)
}

// DivRem computes truncating division: q truncates toward zero, r shares
// the sign of the dividend (or is zero), with |r| < |j|, per spec.md §4.K.
// Panics on division by zero.
func (i IBig) DivRem(j IBig) (q, r IBig) {
	if j.IsZero() {
		panicDivideByZero("IBig::div_rem")
	}
	qm, rm := i.mag.DivRem(j.mag)
	qs := Positive
	if i.sign != j.sign {
		qs = Negative
	}
	return NewIBigFromUBig(qs, qm), NewIBigFromUBig(i.sign, rm)
}

// Div returns the truncating quotient of i/j.
func (i IBig) Div(j IBig) IBig { q, _ := i.DivRem(j); return q }

// Rem returns the truncating remainder of i/j.
func (i IBig) Rem(j IBig) IBig { _, r := i.DivRem(j); return r }

// DivRemEuclid computes Euclidean division: 0 <= r < |j|, and
// i == q*j + r. This is the later, complete definition spec.md §4.K/§9
// calls for (superseding any truncating-only variant).
func (i IBig) DivRemEuclid(j IBig) (q, r IBig) {
	q, r = i.DivRem(j)
	if r.IsNegative() {
		if j.sign == Negative {
			q = q.Add(NewIBigFromWord(1))
		} else {
			q = q.Sub(NewIBigFromWord(1))
		}
		r = r.Add(IBig{sign: Positive, mag: j.mag})
	}
	return q, r
}

// ToUBig converts i to UBig, failing with ErrOutOfBounds if i is negative.
func (i IBig) ToUBig() (UBig, error) {
	if i.IsNegative() {
		return UBig{}, &OutOfBoundsError{Op: "IBig::to_ubig"}
	}
	return i.mag, nil
}

// Abs returns |i| as an IBig (always non-negative).
func (i IBig) Abs() IBig { return IBig{sign: Positive, mag: i.mag} }
