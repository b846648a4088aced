package rbrief

import "math/bits"

// Descriptor is a 128-bit rBRIEF descriptor, one bit per TestPair in a
// TestSet.
type Descriptor [2]uint64

// setBit sets bit i (0 <= i < 128) to 1.
func (d *Descriptor) setBit(i int) {
	d[i/64] |= 1 << uint(i%64)
}

// Popcount returns the number of set bits.
func (d Descriptor) Popcount() int {
	return bits.OnesCount64(d[0]) + bits.OnesCount64(d[1])
}

// HammingDistance returns the number of bit positions at which d and other
// differ.
func (d Descriptor) HammingDistance(other Descriptor) int {
	return bits.OnesCount64(d[0]^other[0]) + bits.OnesCount64(d[1]^other[1])
}

// Bit returns the value of bit i.
func (d Descriptor) Bit(i int) bool {
	return d[i/64]&(1<<uint(i%64)) != 0
}
