// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

// maxLen bounds the number of words a UBig may ever hold. It is chosen
// comfortably below host int range so that bit-length arithmetic
// (maxLen * wordBits) never overflows an int, per spec.md §3.
const maxLen = 1 << 40

// maxCapacity leaves four words of scratch headroom on the largest
// possible number, per spec.md §3.
const maxCapacity = maxLen + 4

// buffer is a growable []Word with the over-allocation/shrink policy
// spec.md §3-4.B describes. Its zero value is not valid; construct with
// allocateBuffer. Mirrors the teacher's pool-reuse discipline
// (memory_pools.go's cap() thresholds before recycling a slice) applied to
// a single-owner growable vector instead of a sync.Pool, since buffers here
// are per-operation, not long-lived shared objects.
type buffer struct {
	w []Word
}

// defaultCapacity computes the allocation teacher for a freshly-allocated
// buffer meant to hold n words, per spec.md §3: reserve n + n/8 + 2,
// capped at maxCapacity.
func defaultCapacity(n int) int {
	c := n + n/8 + 2
	if c > maxCapacity || c < n {
		c = maxCapacity
	}
	return c
}

// maxCompactCapacity is the largest capacity a *normalized* buffer of the
// given length is allowed to retain, per spec.md §3.
func maxCompactCapacity(length int) int {
	c := length + length/4 + 4
	if c > maxCapacity || c < length {
		c = maxCapacity
	}
	return c
}

// allocateBuffer returns an empty buffer sized to eventually hold n words.
// Panics with the number-too-large contract violation if n exceeds
// maxCapacity.
func allocateBuffer(n int) *buffer {
	if n > maxCapacity {
		panicNumberTooLarge("Buffer::allocate")
	}
	cap := defaultCapacity(n)
	return &buffer{w: make([]Word, 0, cap)}
}

func (b *buffer) len() int { return len(b.w) }
func (b *buffer) cap() int { return cap(b.w) }

// push appends w, requiring len < cap (spec.md §4.B contract).
func (b *buffer) push(w Word) {
	if len(b.w) >= cap(b.w) {
		panic("bignum: Buffer::push: buffer is full")
	}
	b.w = append(b.w, w)
}

// pushMayReallocate appends w, growing the backing array if necessary.
func (b *buffer) pushMayReallocate(w Word) {
	if len(b.w) >= cap(b.w) {
		b.ensureCapacity(len(b.w) + 1)
	}
	b.w = append(b.w, w)
}

// pushZeros appends k zero words.
func (b *buffer) pushZeros(k int) {
	b.ensureCapacity(len(b.w) + k)
	for i := 0; i < k; i++ {
		b.w = append(b.w, 0)
	}
}

// pushZerosFront prepends k zero words; O(len).
func (b *buffer) pushZerosFront(k int) {
	if k == 0 {
		return
	}
	b.ensureCapacity(len(b.w) + k)
	b.w = b.w[:len(b.w)+k]
	copy(b.w[k:], b.w[:len(b.w)-k])
	for i := 0; i < k; i++ {
		b.w[i] = 0
	}
}

// pop removes and returns the last word. Panics if empty.
func (b *buffer) pop() Word {
	n := len(b.w)
	w := b.w[n-1]
	b.w = b.w[:n-1]
	return w
}

// popLeadingZeros removes trailing (most-significant) zero words.
func (b *buffer) popLeadingZeros() {
	n := len(b.w)
	for n > 0 && b.w[n-1] == 0 {
		n--
	}
	b.w = b.w[:n]
}

// truncate shortens the buffer to length, which must be <= current length.
func (b *buffer) truncate(length int) {
	b.w = b.w[:length]
}

// eraseFront removes the first k words, shifting the rest down.
func (b *buffer) eraseFront(k int) {
	if k == 0 {
		return
	}
	copy(b.w, b.w[k:])
	b.w = b.w[:len(b.w)-k]
}

// ensureCapacity grows the backing array, if needed, to hold at least n
// words, following the same default-capacity growth policy as a fresh
// allocation.
func (b *buffer) ensureCapacity(n int) {
	if cap(b.w) >= n {
		return
	}
	if n > maxCapacity {
		panicNumberTooLarge("Buffer::ensureCapacity")
	}
	newCap := defaultCapacity(n)
	if newCap < n {
		newCap = n
	}
	nw := make([]Word, len(b.w), newCap)
	copy(nw, b.w)
	b.w = nw
}

// shrink reallocates down to exactly the compact capacity for the current
// length, if the current capacity exceeds it.
func (b *buffer) shrink() {
	compact := maxCompactCapacity(len(b.w))
	if cap(b.w) <= compact {
		return
	}
	nw := make([]Word, len(b.w), compact)
	copy(nw, b.w)
	b.w = nw
}

// resizingCloneFrom copies src's words into b, reusing b's backing array
// when its capacity falls within [len(src), maxCompactCapacity(len(src))]
// (spec.md §4.B), otherwise reallocating.
func (b *buffer) resizingCloneFrom(src []Word) {
	lo, hi := len(src), maxCompactCapacity(len(src))
	if cap(b.w) < lo || cap(b.w) > hi {
		b.w = make([]Word, len(src), defaultCapacity(len(src)))
	} else {
		b.w = b.w[:len(src)]
	}
	copy(b.w, src)
}

// intoUBig consumes the buffer and converts it into a normalized UBig, per
// spec.md §4.B: pop leading zeros, collapse to Small(0)/Small(w) when it
// fits one word, shrink an over-large backing array before wrapping as
// Large.
func (b *buffer) intoUBig() UBig {
	b.popLeadingZeros()
	switch len(b.w) {
	case 0:
		return UBig{}
	case 1:
		return UBig{small: b.w[0]}
	default:
		b.shrink()
		return UBig{large: b.w}
	}
}
