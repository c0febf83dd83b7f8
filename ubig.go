// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

// UBig is an arbitrary-precision unsigned integer. The zero value is the
// number 0. UBig is represented as either a single inline Word (the common
// case — no heap traffic) or a normalized heap buffer (length >= 2, top
// word non-zero), per spec.md §3. large == nil means the Small form is
// active; small is ignored otherwise.
type UBig struct {
	small Word
	large []Word
}

// Zero is the additive identity.
var Zero = UBig{}

// One is the multiplicative identity.
var One = UBig{small: 1}

// words returns a read-only view of u's digits, least-significant word
// first. For Small(0) it returns an empty slice.
func (u UBig) words() []Word {
	if u.large != nil {
		return u.large
	}
	if u.small == 0 {
		return nil
	}
	return []Word{u.small}
}

// isSmall reports whether u fits the inline representation.
func (u UBig) isSmall() bool { return u.large == nil }

// fromWords normalizes a raw little-endian digit slice into a UBig,
// trimming leading (high) zero words and collapsing to Small when
// possible. The slice is not retained as-is if it collapses to Large with
// excess capacity (it is copied down by buffer.shrink semantics).
func fromWords(w []Word) UBig {
	n := len(w)
	for n > 0 && w[n-1] == 0 {
		n--
	}
	switch n {
	case 0:
		return UBig{}
	case 1:
		return UBig{small: w[0]}
	default:
		b := &buffer{w: w[:n]}
		if cap(w) > maxCompactCapacity(n) {
			b.shrink()
		}
		return UBig{large: b.w}
	}
}

// UBigFromWord constructs a UBig from a single machine word.
func UBigFromWord(w Word) UBig { return UBig{small: w} }

// IsZero reports whether u == 0.
func (u UBig) IsZero() bool { return u.large == nil && u.small == 0 }

// IsOne reports whether u == 1.
func (u UBig) IsOne() bool { return u.large == nil && u.small == 1 }

// BitLen returns floor(log2(u))+1, or 0 for u == 0 (spec.md §4.C).
func (u UBig) BitLen() int {
	w := u.words()
	if len(w) == 0 {
		return 0
	}
	return (len(w)-1)*wordBits + bitLenWord(w[len(w)-1])
}

// Len returns the number of words in u's digit representation (0 for 0).
func (u UBig) Len() int { return len(u.words()) }

// Cmp compares u and v, returning -1, 0, or +1.
func (u UBig) Cmp(v UBig) int {
	a, b := u.words(), v.words()
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Equal reports whether u == v.
func (u UBig) Equal(v UBig) bool { return u.Cmp(v) == 0 }

// Clone returns an independent copy of u (UBig's Large form shares no
// mutable state with any operator's scratch buffer, so Clone is a plain
// value copy that also copies the backing slice to keep ownership
// single-writer, per spec.md §5).
func (u UBig) Clone() UBig {
	if u.large == nil {
		return u
	}
	cp := make([]Word, len(u.large))
	copy(cp, u.large)
	return UBig{large: cp}
}
