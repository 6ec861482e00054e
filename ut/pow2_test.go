package ut

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlignPow2(t *testing.T) {
	cases := []struct {
		in   uint
		want uint
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 4},
		{5, 8},
		{8, 8},
		{9, 16},
		{1000, 1024},
		{1 << 20, 1 << 20},
		{1<<20 + 1, 1 << 21},
	}
	for _, tc := range cases {
		if got := AlignPow2(tc.in); got != tc.want {
			t.Fatalf("AlignPow2(%d)=%d want %d", tc.in, got, tc.want)
		}
	}
}

func TestAlignPow2Overflow(t *testing.T) {
	assert.Equal(t, uint8(128), AlignPow2(uint8(100)))
	assert.Equal(t, uint8(0), AlignPow2(uint8(129)))
	assert.Equal(t, uint16(0), AlignPow2(uint16(math.MaxUint16)))
	assert.Equal(t, uint64(1)<<63, AlignPow2(uint64(1)<<63))
}

func TestIsPow2(t *testing.T) {
	for _, x := range []uint32{0, 1, 2, 4, 1 << 31} {
		assert.True(t, IsPow2(x), "x=%d", x)
	}
	for _, x := range []uint32{3, 6, 12, math.MaxUint32} {
		assert.False(t, IsPow2(x), "x=%d", x)
	}
}

func TestCapacityFor(t *testing.T) {
	cases := []struct {
		n, floor, want int
	}{
		{-3, 8, 8},
		{0, 8, 8},
		{1, 8, 8},
		{8, 8, 8},
		{9, 8, 16},
		{17, 8, 32},
		{3, 0, 4},
		{0, 0, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CapacityFor(tc.n, tc.floor), "n=%d floor=%d", tc.n, tc.floor)
	}
}

func TestCapacityForOverflow(t *testing.T) {
	assert.Panics(t, func() { CapacityFor(math.MaxInt, 8) })
}
