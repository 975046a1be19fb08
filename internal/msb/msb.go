// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package msb computes the most-significant-bit index of a positive
// integer, the quantity the msb-MST, component tree, and visit procedure
// all bucket by.
package msb

import "math/bits"

// Of returns floor(log2(w)) for w > 0. Callers never pass w <= 0: edge
// weights are positive.
func Of(w int) int {
	return bits.Len(uint(w)) - 1
}

// Max is msb(math.MaxInt), the sentinel level used for a tree root's
// "parent level" in the visit procedure.
var Max = Of(int(^uint(0) >> 1))
