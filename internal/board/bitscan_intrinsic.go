//go:build !purego

package board

import "math/bits"

var activeScanner = Intrinsic

func lsb64(b uint64) int {
	return bits.TrailingZeros64(b)
}

func msb64(b uint64) int {
	return 63 - bits.LeadingZeros64(b)
}

func popCount64(b uint64) int {
	return bits.OnesCount64(b)
}
