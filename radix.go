// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

// Radix table properties shared by parsing and formatting, per spec.md
// §4.I. Grounded on original_source/src/parse/mod.rs and fmt/mod.rs for
// the digits-per-word / range-per-word shape; this module always uses the
// chunked (digits-per-word grouped Horner) method rather than the
// bisection scheme original_source reserves for very long inputs — see
// DESIGN.md. Chunking still makes every size correct, just without the
// divide-and-conquer speedup on inputs of tens of thousands of digits.
const minRadix = 2
const maxRadix = 36

func validRadix(radix int) bool { return radix >= minRadix && radix <= maxRadix }

// isPowerOfTwoRadix reports whether radix is a power of two (2,4,8,16,32).
func isPowerOfTwoRadix(radix int) bool {
	return radix != 0 && radix&(radix-1) == 0
}

// log2OfRadix returns log2(radix) for a power-of-two radix.
func log2OfRadix(radix int) int {
	l := 0
	for r := radix; r > 1; r >>= 1 {
		l++
	}
	return l
}

// digitsPerWord returns the largest k with radix^k <= 2^wordBits for a
// non-power-of-two radix (the power-of-two case is handled directly via
// log2OfRadix in the packing code, per spec.md §4.I).
func digitsPerWord(radix int) int {
	if isPowerOfTwoRadix(radix) {
		return wordBits / log2OfRadix(radix)
	}
	k := 0
	var v Word = 1
	for {
		nv := v * Word(radix)
		if nv/Word(radix) != v { // would overflow
			break
		}
		v = nv
		k++
	}
	return k
}

// rangePerWord returns radix^digitsPerWord(radix) for a non-power-of-two
// radix.
func rangePerWord(radix int) Word {
	k := digitsPerWord(radix)
	var v Word = 1
	for i := 0; i < k; i++ {
		v *= Word(radix)
	}
	return v
}

// digitValue maps an ASCII byte to its digit value, case-insensitively,
// returning ok=false for bytes that are not alphanumeric digit characters
// at all (the caller still must range-check against the radix).
func digitValue(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}

// digitChar renders a digit value 0..35 as an ASCII character, per
// spec.md §4.I's "add offset, then add '0'" parallel-bit-trick rationale
// (expressed here as a direct branch since Go has no SIMD-friendly 8-wide
// byte trick to exercise without unsafe).
func digitChar(v int, upper bool) byte {
	if v < 10 {
		return byte('0' + v)
	}
	if upper {
		return byte('A' + v - 10)
	}
	return byte('a' + v - 10)
}
