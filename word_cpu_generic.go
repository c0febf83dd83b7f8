// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !amd64

package bignum

// hasFastWordOps reports whether the host exposes architecture-specific
// wide-arithmetic intrinsics. Non-amd64 targets always use the generic
// math/bits fallback (spec.md §4.A).
func hasFastWordOps() bool { return false }

const wordOpsArch = "generic"
