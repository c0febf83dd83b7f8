// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import "math/rand/v2"

// Source is the randomness collaborator this module asks for uniform
// samples, per spec.md §1 (randomness is treated as an external
// dependency, not implemented as a core module). Any *rand.Rand from
// math/rand/v2 satisfies this via its Uint64 method.
type Source interface {
	Uint64() uint64
}

// UniformUBig draws a value uniformly from [0, bound) using rejection
// sampling over the top word, per original_source/tests/random.rs's
// Uniform<UBig> semantics. Panics if bound is zero.
func UniformUBig(src Source, bound UBig) UBig {
	if bound.IsZero() {
		panic("bignum: UniformUBig: empty range")
	}
	if bound.isSmall() {
		return UBig{small: uniformWord(src, bound.small)}
	}
	words := bound.words()
	n := len(words)
	top := words[n-1]
	for {
		out := make([]Word, n)
		for i := 0; i < n-1; i++ {
			out[i] = src.Uint64()
		}
		out[n-1] = uniformWord(src, top+1)
		candidate := fromWords(out)
		if candidate.Cmp(bound) < 0 {
			return candidate
		}
	}
}

// uniformWord draws a value uniformly from [0, bound) by rejecting draws
// at or above the largest multiple of bound that fits a word and reducing
// the rest modulo bound. bound == 0 returns an unconstrained random word
// (the "no constraint on this word" case used internally above, where a
// fully free top word is bound == 0 meaning "any of 2^64 values").
func uniformWord(src Source, bound Word) Word {
	if bound == 0 {
		return src.Uint64()
	}
	if isPowerOfTwoWord(bound) {
		return src.Uint64() & (bound - 1)
	}
	limit := wordMaxWord - wordMaxWord%bound
	for {
		v := src.Uint64()
		if v < limit {
			return v % bound
		}
	}
}

// UniformUBigRange draws a value uniformly from [lo, hi).
func UniformUBigRange(src Source, lo, hi UBig) UBig {
	span := hi.Sub(lo)
	return lo.Add(UniformUBig(src, span))
}

// UniformIBigRange draws a value uniformly from [lo, hi).
func UniformIBigRange(src Source, lo, hi IBig) IBig {
	span, err := hi.Sub(lo).ToUBig()
	if err != nil {
		panic("bignum: UniformIBigRange: empty or inverted range")
	}
	return lo.Add(NewIBigFromUBig(Positive, UniformUBig(src, span)))
}

// DefaultSource wraps math/rand/v2's top-level generator as a Source.
type defaultSource struct{}

func (defaultSource) Uint64() uint64 { return rand.Uint64() }

// DefaultSource is the package-level Source backed by math/rand/v2's
// auto-seeded global generator.
var DefaultSource Source = defaultSource{}

// NewPCGSource returns a deterministic, seedable Source backed by
// math/rand/v2's PCG generator, for reproducible property tests (mirroring
// original_source/tests/random.rs's StdRng::seed_from_u64 usage).
func NewPCGSource(seed1, seed2 uint64) Source {
	return rand.New(rand.NewPCG(seed1, seed2))
}
