// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

// Division kernels: fast word-divide, Knuth's Algorithm D ("simple"), and a
// recursive divide-and-conquer reduction, per spec.md §4.G. Grounded on
// bford-go's math/big nat.go divLarge/divW and on
// original_source/src/div/simple.rs + div/divide_conquer.rs for the
// correction-step shape.

// fastDivideNormalized is the precomputed-reciprocal divisor spec.md §3
// describes. On this host, math/bits already exposes a hardware 128/64
// division primitive (bits.Div64) that computes exactly the quotient this
// type promises in O(1) without a software Granlund-Möller reciprocal, so
// fastDivideNormalized is a thin named wrapper over it rather than a
// separate magic-multiplier precomputation — see DESIGN.md.
type fastDivideNormalized struct {
	divisor Word
}

func newFastDivideNormalized(divisor Word) fastDivideNormalized {
	return fastDivideNormalized{divisor: divisor}
}

// divRem divides the double-word (hi, lo) by the divisor, requiring
// hi < divisor so the quotient fits one word.
func (f fastDivideNormalized) divRem(hi, lo Word) (q, r Word) {
	return wideDiv(hi, lo, f.divisor)
}

func isPowerOfTwoWord(w Word) bool { return w != 0 && w&(w-1) == 0 }

// divByWordInPlace divides words (little-endian, modified in place) by a
// single non-zero word rhs, returning the remainder.
func divByWordInPlace(words []Word, rhs Word) Word {
	if rhs == 0 {
		panicDivideByZero("UBig::div_by_word")
	}
	if len(words) == 0 {
		return 0
	}
	if isPowerOfTwoWord(rhs) {
		shift := trailingZerosWord(rhs)
		rem := shrInPlace(words, shift)
		return rem
	}
	var r Word
	fd := newFastDivideNormalized(rhs)
	for i := len(words) - 1; i >= 0; i-- {
		words[i], r = fd.divRem(r, words[i])
	}
	return r
}

// remByWord is the read-only analog of divByWordInPlace.
func remByWord(words []Word, rhs Word) Word {
	if rhs == 0 {
		panicDivideByZero("UBig::rem_by_word")
	}
	if len(words) == 0 {
		return 0
	}
	if isPowerOfTwoWord(rhs) {
		return words[0] & (rhs - 1)
	}
	var r Word
	for i := len(words) - 1; i >= 0; i-- {
		_, r = wideDiv(r, words[i], rhs)
	}
	return r
}

// knuthDiv implements Knuth's Algorithm D (TAOCP vol 2, §4.3.1) on raw
// little-endian word slices: u has length >= n, v has length n >= 2. u and
// v are not modified (the algorithm works on shifted copies); the
// remainder is returned separately from the quotient.
func knuthDiv(u, v []Word) (q, r []Word) {
	n := len(v)
	m := len(u) - n

	shift := leadingZerosWord(v[n-1])
	vn := make([]Word, n)
	copy(vn, v)
	shlInPlace(vn, shift)

	un := make([]Word, len(u)+1)
	copy(un, u)
	un[len(u)] = shlInPlace(un[:len(u)], shift)

	q = make([]Word, m+1)
	d := vn[n-1]

	for j := m; j >= 0; j-- {
		hi := un[j+n]
		lo := un[j+n-1]

		var qhat, rhat Word
		var overflowed bool
		if hi == d {
			qhat = wordMaxWord
			var c Word
			rhat, c = addWithCarry(lo, d, 0)
			overflowed = c != 0
		} else {
			qhat, rhat = wideDiv(hi, lo, d)
		}

		for !overflowed {
			hi1, lo1 := wideMul(qhat, vn[n-2])
			if hi1 < rhat || (hi1 == rhat && lo1 <= un[j+n-2]) {
				break
			}
			qhat--
			var c Word
			rhat, c = addWithCarry(rhat, d, 0)
			overflowed = c != 0
		}

		borrow := subMulWordSameLenInPlace(un[j:j+n], vn, qhat)
		top, b := subWithBorrow(un[j+n], borrow, 0)
		un[j+n] = top
		if b != 0 {
			qhat--
			c := addSameLenInPlace(un[j:j+n], vn)
			un[j+n] += c
		}
		q[j] = qhat
	}

	r = make([]Word, n)
	copy(r, un[:n])
	shrInPlace(r, shift)
	return q, r
}

// divRemSimple dispatches to the single-word fast path or to knuthDiv,
// returning normalized UBig results.
func divRemSimple(u, v UBig) (q, r UBig) {
	vw := v.words()
	if len(vw) == 1 {
		uw := append([]Word(nil), u.words()...)
		rem := divByWordInPlace(uw, vw[0])
		return fromWords(uw), UBig{small: rem}
	}
	uw := u.words()
	qw, rw := knuthDiv(uw, vw)
	return fromWords(qw), fromWords(rw)
}

// divRemGeneric computes floor(u/v) and u mod v for an arbitrary non-zero
// v, dispatching to the single-word fast path or Knuth's algorithm. It is
// both divRemDC's base case and the fallback the recursive reduction below
// uses whenever a sub-block degenerates below the reduction's even-split
// precondition (e.g. an odd block length, or a window shorter than its
// divisor after high words cancel to zero).
func divRemGeneric(u, v UBig) (q, r UBig) {
	if u.Cmp(v) < 0 {
		return UBig{}, u
	}
	return divRemSimple(u, v)
}

// allOnesWords returns base^h - 1 (h words, each all bits set).
func allOnesWords(h int) UBig {
	w := make([]Word, h)
	for i := range w {
		w[i] = wordMaxWord
	}
	return fromWords(w)
}

// d3n2n divides a (at most 3h words) by b (exactly 2h words, normalized:
// the top bit of b's top word is set) via one level of Burnikel-Ziegler
// reduction: split b into its top and bottom h-word halves, recursively
// solve the top two-thirds of a against the top half alone (a 2h/h
// subproblem via d2n1n), then correct the combined remainder against the
// bottom half and the full divisor. Per spec.md §4.G / original_source's
// div/divide_conquer.rs, the correction against the full divisor is
// bounded to a small constant number of iterations (the literature bound
// is 2; the guard below allows a little headroom) — never the unbounded
// loop a single high/high quotient estimate would need.
func d3n2n(a, b UBig, h int) (q, r UBig) {
	if h <= maxLenSimple || b.Len() < 2*h {
		return divRemGeneric(a, b)
	}
	shiftH := h * wordBits

	b1 := b.Shr(shiftH)
	b0 := b.Sub(b1.Shl(shiftH))

	top2 := a.Shr(shiftH)                 // top two h-word blocks of a
	aLow := a.Sub(top2.Shl(shiftH))       // bottom h-word block of a
	a1 := top2.Shr(shiftH)                 // topmost h-word block of a

	var qApprox, r1 UBig
	if a1.Cmp(b1) < 0 {
		qApprox, r1 = d2n1n(top2, b1, h)
	} else {
		// a1 >= b1 can only happen when a1 is within one h-word digit of
		// b1's range; base^h - 1 is then the largest possible quotient
		// for this block, and r1 = top2 - qApprox*b1 stays non-negative
		// since top2 = a1*base^h + a2 >= b1*base^h = qApprox*b1 + b1.
		qApprox = allOnesWords(h)
		r1 = top2.Sub(qApprox.Mul(b1))
	}

	cand := NewIBigFromUBig(Positive, r1.Shl(shiftH).Add(aLow)).
		Sub(NewIBigFromUBig(Positive, qApprox).Mul(NewIBigFromUBig(Positive, b0)))
	qi := NewIBigFromUBig(Positive, qApprox)
	bi := NewIBigFromUBig(Positive, b)

	guard := 0
	for cand.IsNegative() {
		cand = cand.Add(bi)
		qi = qi.Sub(NewIBigFromWord(1))
		guard++
		if guard > 4 {
			panic("bignum: divide-and-conquer: correction loop exceeded proven bound (unreachable)")
		}
		if qi.IsNegative() {
			panic("bignum: divide-and-conquer: quotient underflow (unreachable)")
		}
	}

	qu, err := qi.ToUBig()
	if err != nil {
		panic("bignum: divide-and-conquer: negative quotient (unreachable)")
	}
	ru, err := cand.ToUBig()
	if err != nil {
		panic("bignum: divide-and-conquer: negative remainder (unreachable)")
	}
	return qu, ru
}

// d2n1n divides a (at most 2n words) by b (exactly n words, normalized)
// via Burnikel-Ziegler's recursive reduction to two (3n/2)/n subproblems
// (d3n2n), each within the same bounded correction, rather than a single
// full-length high/high quotient estimate whose error grows with the
// operand size (see DESIGN.md). Falls back to Knuth's algorithm when n is
// too small to halve further or is odd (the symmetric quarter-split below
// needs n even); that fallback is still exact, just not recursive.
func d2n1n(a, b UBig, n int) (q, r UBig) {
	if n <= maxLenSimple || n%2 != 0 || b.Len() < n {
		return divRemGeneric(a, b)
	}
	n2 := n / 2
	shiftN2 := n2 * wordBits

	a0 := a.Sub(a.Shr(shiftN2).Shl(shiftN2)) // bottom n2 words of a
	topThree := a.Shr(shiftN2)               // top 3*n2 words of a

	q1, r1 := d3n2n(topThree, b, n2)
	window0 := r1.Shl(shiftN2).Add(a0)
	q0, r0 := d3n2n(window0, b, n2)

	return q1.Shl(shiftN2).Add(q0), r0
}

// splitIntoBlocks splits u into fixed-width n-word blocks, most
// significant first; the leading block may be shorter than n (it holds
// whatever is left over once the lower blocks are peeled off).
func splitIntoBlocks(u UBig, n int) []UBig {
	numBlocks := (u.Len() + n - 1) / n
	if numBlocks < 1 {
		numBlocks = 1
	}
	shiftN := n * wordBits
	blocks := make([]UBig, numBlocks)
	rem := u
	for i := numBlocks - 1; i >= 1; i-- {
		lo := rem.Sub(rem.Shr(shiftN).Shl(shiftN))
		blocks[i] = lo
		rem = rem.Shr(shiftN)
	}
	blocks[0] = rem
	return blocks
}

// divRemDC implements the recursive divide-and-conquer reduction spec.md
// §4.G describes: the dividend is processed in n-word blocks (n =
// v.Len()), each combined with the running remainder into a 2n-word
// window and reduced via d2n1n, the Burnikel-Ziegler recursion that
// bounds every correction step to at most a couple of additions of the
// divisor — grounded on original_source's div/divide_conquer.rs (the
// "top-half quotient approximation, then correct downward" shape spec.md
// §4.G paraphrases) rather than the single high/high estimate that can
// need an unbounded number of corrections.
func divRemDC(u, v UBig) (q, r UBig) {
	n := v.Len()
	if n <= maxLenSimple {
		return divRemSimple(u, v)
	}

	shift := leadingZerosWord(v.words()[n-1])
	vn := v.Shl(shift)
	un := u.Shl(shift)

	blocks := splitIntoBlocks(un, n)
	z := blocks[0]

	topBit := UBig{}
	if z.Cmp(vn) >= 0 {
		z = z.Sub(vn)
		topBit = UBig{small: 1}
	}

	qShift := n * wordBits
	qTotal := topBit
	for i := 1; i < len(blocks); i++ {
		window := z.Shl(qShift).Add(blocks[i])
		qi, ri := d2n1n(window, vn, n)
		qTotal = qTotal.Shl(qShift).Add(qi)
		z = ri
	}

	return qTotal, z.Shr(shift)
}

// DivRem computes floor(u/v) and u mod v. Panics on division by zero.
func (u UBig) DivRem(v UBig) (q, r UBig) {
	if v.IsZero() {
		panicDivideByZero("UBig::div_rem")
	}
	if u.Cmp(v) < 0 {
		return UBig{}, u
	}
	if v.Len() > maxLenSimple && u.Len()-v.Len() > maxLenSimple {
		return divRemDC(u, v)
	}
	return divRemSimple(u, v)
}

// Div returns floor(u/v).
func (u UBig) Div(v UBig) UBig { q, _ := u.DivRem(v); return q }

// Rem returns u mod v.
func (u UBig) Rem(v UBig) UBig { _, r := u.DivRem(v); return r }
