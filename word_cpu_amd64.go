// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build amd64

package bignum

import "golang.org/x/sys/cpu"

// hasFastWordOps reports whether the host CPU exposes the ADX/BMI2
// extensions that make chained add-with-carry and wide multiply cheap.
// math/bits already lowers addWithCarry/wideMul to the best instruction the
// Go compiler knows how to emit; this probe exists so callers that care
// (notably cmd/bignumcli's diag command) can report which path is active,
// the same way the teacher's simsys_amd64.go gates its AVX2 kernels on
// cpu.X86.HasAVX2.
func hasFastWordOps() bool {
	return cpu.X86.HasADX && cpu.X86.HasBMI2
}

const wordOpsArch = "amd64"
