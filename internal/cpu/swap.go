package cpu

// swap the upper and lower nibbles of a byte
//
//	SWAP n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) swap(n uint8) uint8 {
	c.setFlags(n == 0, false, false, false)
	return n<<4 | n>>4
}
