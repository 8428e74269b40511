package bits

// Integer primitives used by the othello move generator

// Returns x with only its most significant set bit left, 0 for x == 0
func HighBit(x uint64) uint64 {
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16
	x |= x >> 32
	return x &^ (x >> 1)
}

// Returns 1 if x has any bit set, 0 otherwise
func NonZero(x uint64) uint64 {
	// (x | -x) has the sign bit set for every x != 0
	return (x | -x) >> 63
}
