// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

// Fixed-width conversions and byte-sequence I/O, per spec.md §6. Grounded
// on bford-go's math/big nat.go setUint64/bytes for the packing shape.

// UBigFromUint64 constructs a UBig from a uint64, infallibly.
func UBigFromUint64(x uint64) UBig { return UBig{small: Word(x)} }

// UBigFromUint32, UBigFromUint16, UBigFromUint8 are narrower infallible
// unsigned constructors.
func UBigFromUint32(x uint32) UBig { return UBig{small: Word(x)} }
func UBigFromUint16(x uint16) UBig { return UBig{small: Word(x)} }
func UBigFromUint8(x uint8) UBig   { return UBig{small: Word(x)} }

// UBigFromBool constructs 0 or 1.
func UBigFromBool(b bool) UBig {
	if b {
		return One
	}
	return UBig{}
}

// UBigFromInt64 constructs a UBig from an int64, failing with
// ErrOutOfBounds if x is negative.
func UBigFromInt64(x int64) (UBig, error) {
	if x < 0 {
		return UBig{}, &OutOfBoundsError{Op: "UBig::from_i64"}
	}
	return UBig{small: Word(x)}, nil
}

func UBigFromInt32(x int32) (UBig, error) { return UBigFromInt64(int64(x)) }
func UBigFromInt16(x int16) (UBig, error) { return UBigFromInt64(int64(x)) }
func UBigFromInt8(x int8) (UBig, error)   { return UBigFromInt64(int64(x)) }

// ToUint64 converts u to a uint64, failing with ErrOutOfBounds if u does
// not fit.
func (u UBig) ToUint64() (uint64, error) {
	if u.Len() > 1 {
		return 0, &OutOfBoundsError{Op: "UBig::to_u64"}
	}
	return uint64(u.small), nil
}

// ToUint32 converts u to a uint32, failing if it does not fit.
func (u UBig) ToUint32() (uint32, error) {
	v, err := u.ToUint64()
	if err != nil || v > 0xFFFFFFFF {
		return 0, &OutOfBoundsError{Op: "UBig::to_u32"}
	}
	return uint32(v), nil
}

// IBigFromInt64 constructs an IBig from an int64, infallibly.
func IBigFromInt64(x int64) IBig {
	if x >= 0 {
		return IBig{sign: Positive, mag: UBig{small: Word(x)}}
	}
	// Avoid overflow negating math.MinInt64 by working in uint64.
	mag := uint64(-(x + 1)) + 1
	return IBig{sign: Negative, mag: UBig{small: Word(mag)}}
}

func IBigFromInt32(x int32) IBig { return IBigFromInt64(int64(x)) }
func IBigFromInt16(x int16) IBig { return IBigFromInt64(int64(x)) }
func IBigFromInt8(x int8) IBig   { return IBigFromInt64(int64(x)) }

// IBigFromUint64 constructs a non-negative IBig from a uint64.
func IBigFromUint64(x uint64) IBig { return NewIBigFromWord(Word(x)) }

// ToInt64 converts i to an int64, failing with ErrOutOfBounds if it does
// not fit.
func (i IBig) ToInt64() (int64, error) {
	v, err := i.mag.ToUint64()
	if err != nil {
		return 0, &OutOfBoundsError{Op: "IBig::to_i64"}
	}
	if i.sign == Positive {
		if v > 1<<63-1 {
			return 0, &OutOfBoundsError{Op: "IBig::to_i64"}
		}
		return int64(v), nil
	}
	if v > 1<<63 {
		return 0, &OutOfBoundsError{Op: "IBig::to_i64"}
	}
	if v == 1<<63 {
		return -1 << 63, nil
	}
	return -int64(v), nil
}

// ToLEBytes returns the shortest little-endian byte representation of u,
// with no leading (high) zero bytes. Zero yields the empty slice.
func (u UBig) ToLEBytes() []byte {
	w := u.words()
	if len(w) == 0 {
		return nil
	}
	out := make([]byte, 0, len(w)*8)
	for _, word := range w {
		for i := 0; i < 8; i++ {
			out = append(out, byte(word>>(8*i)))
		}
	}
	for len(out) > 0 && out[len(out)-1] == 0 {
		out = out[:len(out)-1]
	}
	return out
}

// ToBEBytes returns the shortest big-endian byte representation of u.
func (u UBig) ToBEBytes() []byte {
	le := u.ToLEBytes()
	out := make([]byte, len(le))
	for i, b := range le {
		out[len(le)-1-i] = b
	}
	return out
}

// UBigFromLEBytes constructs a UBig from a little-endian byte slice. An
// empty slice yields 0; leading/trailing zero bytes are tolerated.
func UBigFromLEBytes(b []byte) UBig {
	n := (len(b) + 7) / 8
	words := make([]Word, n)
	for i, bt := range b {
		words[i/8] |= Word(bt) << (8 * (i % 8))
	}
	return fromWords(words)
}

// UBigFromBEBytes constructs a UBig from a big-endian byte slice.
func UBigFromBEBytes(b []byte) UBig {
	le := make([]byte, len(b))
	for i, bt := range b {
		le[len(b)-1-i] = bt
	}
	return UBigFromLEBytes(le)
}
