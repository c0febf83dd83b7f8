// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import (
	"fmt"
	"math/bits"
)

// Word is the machine word the core operates on. The module fixes a single
// 64-bit word rather than a build-time 16/32/64 choice (see SPEC_FULL.md
// §1); double-word (D) quantities are represented as an explicit (hi, lo)
// pair rather than a native 128-bit type, following the same approach as
// math/bits itself.
type Word = uint64

const (
	wordBits    = 64
	wordMaxWord = Word(1<<wordBits - 1)
)

// addWithCarry returns a+b+carryIn and the carry out of the top bit.
// carryIn and the returned carryOut are always 0 or 1.
func addWithCarry(a, b, carryIn Word) (sum, carryOut Word) {
	sum, carryOut = bits.Add64(a, b, carryIn)
	return
}

// subWithBorrow returns a-b-borrowIn and the borrow out of the top bit.
func subWithBorrow(a, b, borrowIn Word) (diff, borrowOut Word) {
	diff, borrowOut = bits.Sub64(a, b, borrowIn)
	return
}

// wideMul returns the full 128-bit product of a and b as (hi, lo).
func wideMul(a, b Word) (hi, lo Word) {
	hi, lo = bits.Mul64(a, b)
	return
}

// wideDiv divides the double-word (hi, lo) by y and returns quotient and
// remainder. Panics (via the host's divide-by-zero panic, not recovered
// here) if y == 0 or if the quotient would overflow a single word; callers
// are responsible for satisfying hi < y beforehand, as spec.md §3's
// FastDivideNormalized contract requires.
func wideDiv(hi, lo, y Word) (q, r Word) {
	q, r = bits.Div64(hi, lo, y)
	return
}

// bitLenWord returns the number of bits required to represent w, 0 for w==0.
func bitLenWord(w Word) int {
	return bits.Len64(w)
}

// trailingZerosWord returns the number of trailing zero bits of w.
// Undefined (64) for w==0; callers must special-case zero themselves per
// spec.md §4.C ("None for 0").
func trailingZerosWord(w Word) int {
	return bits.TrailingZeros64(w)
}

// leadingZerosWord returns the number of leading zero bits of w.
func leadingZerosWord(w Word) int {
	return bits.LeadingZeros64(w)
}

// WordOpsDiagnostic reports the detected word-arithmetic architecture and
// whether the fast-path CPU features are present, for cmd/bignumcli's diag
// mode.
func WordOpsDiagnostic() string {
	return fmt.Sprintf("arch=%s fast_word_ops=%t", wordOpsArch, hasFastWordOps())
}
