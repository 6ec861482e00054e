package ut

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// AlignPow2 rounds x up to the nearest power of two. Zero and values that
// already are powers of two (including 1) are returned unchanged. When the
// next power of two does not fit in U the result is 0.
func AlignPow2[U constraints.Unsigned](x U) U {
	if IsPow2(x) {
		return x
	}
	shift := bits.Len64(uint64(x))
	if shift >= bitWidth[U]() {
		return 0
	}
	return U(1) << shift
}

// IsPow2 reports whether x is zero or a power of two.
func IsPow2[U constraints.Unsigned](x U) bool {
	return x&(x-1) == 0
}

// CapacityFor returns the slot count for n elements: AlignPow2(n), but never
// less than floor.
func CapacityFor(n, floor int) int {
	if n < 0 {
		n = 0
	}
	c := int(AlignPow2(uint(n)))
	if n > 0 && (c <= 0 || c < n) {
		panic("ut: capacity overflow")
	}
	if c < floor {
		c = floor
	}
	return c
}

func bitWidth[U constraints.Unsigned]() int {
	return bits.Len64(uint64(^U(0)))
}
