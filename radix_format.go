// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import (
	"fmt"
	"strings"
)

// FormatRadix renders u in the given radix (2..=36), using uppercase
// letters for digit values >= 10 iff upper is true, per spec.md §4.I. The
// chunked inverse of parseNonPowerOfTwo/parsePowerOfTwo: repeated division
// by rangePerWord(radix) for non-power-of-two radixes, direct bit-group
// extraction for power-of-two radixes.
func (u UBig) FormatRadix(radix int, upper bool) string {
	if !validRadix(radix) {
		panic("bignum: UBig::in_radix: radix out of range [2,36]")
	}
	if u.IsZero() {
		return "0"
	}
	if isPowerOfTwoRadix(radix) {
		return formatPowerOfTwo(u, radix, upper)
	}
	return formatNonPowerOfTwo(u, radix, upper)
}

// formatPowerOfTwo extracts log2(radix)-bit groups from the most
// significant end down to the least, per spec.md §4.I.
func formatPowerOfTwo(u UBig, radix int, upper bool) string {
	bitsPerDigit := log2OfRadix(radix)
	bitLen := u.BitLen()
	nDigits := (bitLen + bitsPerDigit - 1) / bitsPerDigit
	if nDigits == 0 {
		nDigits = 1
	}
	mask := radix - 1
	var sb strings.Builder
	sb.Grow(nDigits)
	for i := nDigits - 1; i >= 0; i-- {
		v := 0
		base := i * bitsPerDigit
		for b := 0; b < bitsPerDigit; b++ {
			if u.Bit(base + b) {
				v |= 1 << b
			}
		}
		sb.WriteByte(digitChar(v&mask, upper))
	}
	return sb.String()
}

// formatNonPowerOfTwo repeatedly divides by rangePerWord(radix), peeling
// off digitsPerWord(radix) characters per iteration (zero-padded, except
// for the final, most-significant chunk), then reverses the chunk order.
func formatNonPowerOfTwo(u UBig, radix int, upper bool) string {
	dpw := digitsPerWord(radix)
	rpw := rangePerWord(radix)

	var chunks []string
	rem := u
	for !rem.IsZero() {
		var rUBig UBig
		rem, rUBig = rem.DivRem(UBig{small: rpw})
		r := rUBig.small
		if rem.IsZero() {
			chunks = append(chunks, formatWordChunk(r, radix, 0, upper))
		} else {
			chunks = append(chunks, formatWordChunk(r, radix, dpw, upper))
		}
	}
	var sb strings.Builder
	for i := len(chunks) - 1; i >= 0; i-- {
		sb.WriteString(chunks[i])
	}
	return sb.String()
}

// formatWordChunk renders v in the given radix, left-padding with '0' to
// width digits (width == 0 means "no padding, shortest form").
func formatWordChunk(v Word, radix, width int, upper bool) string {
	var buf [64]byte
	i := len(buf)
	if v == 0 {
		i--
		buf[i] = '0'
	}
	for v > 0 {
		i--
		buf[i] = digitChar(int(v%Word(radix)), upper)
		v /= Word(radix)
	}
	s := string(buf[i:])
	if width > len(s) {
		return strings.Repeat("0", width-len(s)) + s
	}
	return s
}

// String renders u in decimal, satisfying fmt.Stringer.
func (u UBig) String() string { return u.FormatRadix(10, false) }

// FormatRadix renders i in the given radix, with a leading '-' for
// negative values, per spec.md §4.I.
func (i IBig) FormatRadix(radix int, upper bool) string {
	s := i.mag.FormatRadix(radix, upper)
	if i.sign == Negative {
		return "-" + s
	}
	return s
}

// String renders i in decimal, satisfying fmt.Stringer.
func (i IBig) String() string { return i.FormatRadix(10, false) }

// Format implements fmt.Formatter for UBig, supporting %d (decimal),
// %b (binary), %o (octal), %x/%X (hex), and the standard width, '0'
// zero-pad, and '+' sign flags, mirroring how the standard library's
// math/big.Int implements fmt.Formatter. This is plain stdlib formatting
// plumbing with no ecosystem equivalent in the example pack worth
// reaching for.
func (u UBig) Format(f fmt.State, verb rune) {
	formatValue(f, verb, Positive, u)
}

// Format implements fmt.Formatter for IBig, analogous to UBig.Format.
func (i IBig) Format(f fmt.State, verb rune) {
	formatValue(f, verb, i.sign, i.mag)
}

// formatValue is the shared Format implementation for UBig and IBig.
func formatValue(f fmt.State, verb rune, sign Sign, mag UBig) {
	var radix int
	upper := false
	switch verb {
	case 'd', 's', 'v':
		radix = 10
	case 'b':
		radix = 2
	case 'o':
		radix = 8
	case 'x':
		radix = 16
	case 'X':
		radix = 16
		upper = true
	default:
		fmt.Fprintf(f, "%%!%c(bignum: unsupported verb)", verb)
		return
	}

	digits := mag.FormatRadix(radix, upper)

	signStr := ""
	switch {
	case sign == Negative:
		signStr = "-"
	case f.Flag('+'):
		signStr = "+"
	case f.Flag(' '):
		signStr = " "
	}

	body := signStr + digits
	if width, ok := f.Width(); ok && width > len(body) {
		pad := width - len(body)
		if f.Flag('-') {
			fmt.Fprint(f, body, strings.Repeat(" ", pad))
			return
		}
		if f.Flag('0') {
			fmt.Fprint(f, signStr, strings.Repeat("0", pad), digits)
			return
		}
		fmt.Fprint(f, strings.Repeat(" ", pad), body)
		return
	}
	fmt.Fprint(f, body)
}
