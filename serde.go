// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import "encoding/binary"

// Binary (de)serialization, per spec.md §1/§4.Q. Grounded on
// original_source/src/serde.rs's wire shape: a length-prefixed sequence of
// 64-bit little-endian words (WORDS_PER_U64 collapses to 1 here since Word
// is fixed at 64 bits, see word.go), with IBig adding a leading sign byte.
// Uses encoding/binary (stdlib) rather than a third-party codec: no
// serialization library appears anywhere in the retrieved pack, so there is
// nothing to ground a dependency choice on.

// MarshalBinary encodes u as a 4-byte little-endian word count followed by
// that many 8-byte little-endian words, least-significant word first.
func (u UBig) MarshalBinary() ([]byte, error) {
	w := u.words()
	out := make([]byte, 4+8*len(w))
	binary.LittleEndian.PutUint32(out, uint32(len(w)))
	for i, word := range w {
		binary.LittleEndian.PutUint64(out[4+8*i:], uint64(word))
	}
	return out, nil
}

// UnmarshalBinary decodes a UBig encoded by MarshalBinary.
func (u *UBig) UnmarshalBinary(data []byte) error {
	if len(data) < 4 {
		return &bignumError{Op: "UBig::unmarshal_binary", Err: ErrNoDigits}
	}
	n := int(binary.LittleEndian.Uint32(data))
	if len(data) != 4+8*n {
		return &bignumError{Op: "UBig::unmarshal_binary", Err: ErrInvalidDigit}
	}
	words := make([]Word, n)
	for i := 0; i < n; i++ {
		words[i] = Word(binary.LittleEndian.Uint64(data[4+8*i:]))
	}
	*u = fromWords(words)
	return nil
}

// MarshalBinary encodes i as a single sign byte (0 for non-negative, 1 for
// negative) followed by its magnitude's MarshalBinary encoding.
func (i IBig) MarshalBinary() ([]byte, error) {
	magBytes, _ := i.mag.MarshalBinary()
	out := make([]byte, 1+len(magBytes))
	if i.sign == Negative {
		out[0] = 1
	}
	copy(out[1:], magBytes)
	return out, nil
}

// UnmarshalBinary decodes an IBig encoded by MarshalBinary.
func (i *IBig) UnmarshalBinary(data []byte) error {
	if len(data) < 1 {
		return &bignumError{Op: "IBig::unmarshal_binary", Err: ErrNoDigits}
	}
	var mag UBig
	if err := mag.UnmarshalBinary(data[1:]); err != nil {
		return err
	}
	sign := Positive
	if data[0] == 1 {
		sign = Negative
	}
	*i = NewIBigFromUBig(sign, mag)
	return nil
}
