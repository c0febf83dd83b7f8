// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import "testing"

func TestTrailingZerosOfZeroIsFalse(t *testing.T) {
	if _, ok := (UBig{}).TrailingZeros(); ok {
		t.Errorf("TrailingZeros of 0 should report ok=false")
	}
}

func TestSetBitClearBit(t *testing.T) {
	u := UBig{}
	u = u.SetBit(70) // forces a Large representation
	if !u.Bit(70) {
		t.Errorf("bit 70 should be set")
	}
	u = u.ClearBit(70)
	if u.Bit(70) {
		t.Errorf("bit 70 should be cleared")
	}
	if !u.IsZero() {
		t.Errorf("clearing the only set bit should yield zero, got %s", u.String())
	}
}

func TestShlNumberTooLargePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for a shift that would exceed the maximum length")
		}
	}()
	One.Shl(maxLen * wordBits)
}
