// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

// Pow returns u raised to the exp-th power, per spec.md §4.J: special
// cases for exp in {0,1,2} and base in {0,1,2}, then left-to-right
// square-and-multiply.
func (u UBig) Pow(exp int) UBig {
	if exp < 0 {
		panic("bignum: UBig::pow: negative exponent")
	}
	switch exp {
	case 0:
		return One
	case 1:
		return u
	case 2:
		return u.Mul(u)
	}
	if u.isSmall() {
		switch u.small {
		case 0:
			return UBig{}
		case 1:
			return One
		case 2:
			return One.Shl(exp)
		}
	}
	result := One
	for i := bitLenExp(exp) - 1; i >= 0; i-- {
		result = result.Mul(result)
		if (exp>>uint(i))&1 != 0 {
			result = result.Mul(u)
		}
	}
	return result
}

func bitLenExp(exp int) int {
	n := 0
	for exp > 0 {
		exp >>= 1
		n++
	}
	return n
}

// Pow returns i raised to the exp-th power, negating the sign iff i is
// negative and exp is odd, per spec.md §4.J.
func (i IBig) Pow(exp int) IBig {
	mag := i.mag.Pow(exp)
	s := Positive
	if i.sign == Negative && exp%2 == 1 {
		s = Negative
	}
	return NewIBigFromUBig(s, mag)
}
