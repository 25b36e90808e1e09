package cpu

import "github.com/thelolagemann/disco/internal/types"

// testBit tests bit b of the given value, which is left unmodified.
//
//	BIT b, r
//	b = 0-7
//	r = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if bit b of r is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(value uint8, b uint8) {
	c.setFlags(value&types.Bit(b) == 0, false, true, c.TestFlags(FlagCarry))
}

// resetBit clears bit b of the given value. No flags are affected.
//
//	RES b, r
func resetBit(value uint8, b uint8) uint8 {
	return value &^ types.Bit(b)
}

// setBit sets bit b of the given value. No flags are affected.
//
//	SET b, r
func setBit(value uint8, b uint8) uint8 {
	return value | types.Bit(b)
}
