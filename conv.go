// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dxtex

package dxtex

import "math/bits"

const (
	maxInt    = int(^uint(0) >> 1)
	maxInt32  = int(^uint32(0) >> 1)
	maxUint32 = uint64(^uint32(0))
)

// mulSize multiplies two non-negative sizes, failing on overflow.
func mulSize(a, b int) (int, error) {
	if a < 0 || b < 0 {
		return 0, ErrArithmeticOverflow
	}

	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > uint64(maxInt) {
		return 0, ErrArithmeticOverflow
	}

	return int(lo), nil
}

// addSize adds two non-negative sizes, failing on overflow.
func addSize(a, b int) (int, error) {
	if a < 0 || b < 0 || a > maxInt-b {
		return 0, ErrArithmeticOverflow
	}

	return a + b, nil
}

// i32FromInt converts an int to an int32.
func i32FromInt(n int) (int32, error) {
	if n < 0 || n > maxInt32 {
		return 0, ErrArithmeticOverflow
	}

	return int32(n), nil
}

// u32FromInt converts an int to a uint32.
func u32FromInt(n int) (uint32, error) {
	if n < 0 || uint64(n) > maxUint32 {
		return 0, ErrArithmeticOverflow
	}

	// #nosec G115 -- bounds checked above.
	return uint32(n), nil
}
