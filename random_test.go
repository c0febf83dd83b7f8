// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import "testing"

func TestUniformUBigWithinBounds(t *testing.T) {
	src := NewPCGSource(1, 2)
	bound := mustUBig(t, "7")
	seenMin, seenMax := bound, UBig{}
	for i := 0; i < 1000; i++ {
		v := UniformUBig(src, bound)
		if v.Cmp(bound) >= 0 {
			t.Fatalf("sample %s out of bounds [0, %s)", v.String(), bound.String())
		}
		if v.Cmp(seenMin) < 0 {
			seenMin = v
		}
		if v.Cmp(seenMax) > 0 {
			seenMax = v
		}
	}
	if !seenMax.Equal(mustUBig(t, "6")) {
		t.Errorf("expected to observe the max value 6 in 1000 draws from [0,7), saw max %s", seenMax.String())
	}
}

func TestUniformUBigLargeRange(t *testing.T) {
	src := NewPCGSource(3, 4)
	lo := UBig{small: 0b100}.Shl(128)
	hi := UBig{small: 0b1000}.Shl(128)
	for i := 0; i < 200; i++ {
		v := UniformUBigRange(src, lo, hi)
		if v.Cmp(lo) < 0 || v.Cmp(hi) >= 0 {
			t.Fatalf("sample %s outside [%s, %s)", v.String(), lo.String(), hi.String())
		}
	}
}

func TestUniformUBigZeroBoundPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic sampling from an empty range")
		}
	}()
	UniformUBig(NewPCGSource(1, 1), UBig{})
}

func TestUniformIBigRange(t *testing.T) {
	src := NewPCGSource(5, 6)
	lo := mustIBig(t, "-7")
	hi := mustIBig(t, "3")
	for i := 0; i < 200; i++ {
		v := UniformIBigRange(src, lo, hi)
		if v.Cmp(lo) < 0 || v.Cmp(hi) >= 0 {
			t.Fatalf("sample %s outside [%s, %s)", v.String(), lo.String(), hi.String())
		}
	}
}
