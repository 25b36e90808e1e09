package cpu

import "github.com/thelolagemann/disco/internal/types"

// rotateLeft rotates n left by 1 bit, bit 7 wrapping around to
// bit 0 and into the carry flag.
//
//	RLC n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeft(n uint8) uint8 {
	result := n<<1 | n>>7
	c.setFlags(result == 0, false, false, n&types.Bit7 != 0)
	return result
}

// rotateRight rotates n right by 1 bit, bit 0 wrapping around to
// bit 7 and into the carry flag.
//
//	RRC n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRight(n uint8) uint8 {
	result := n>>1 | n<<7
	c.setFlags(result == 0, false, false, n&types.Bit0 != 0)
	return result
}

// rotateLeftThroughCarry rotates n left by 1 bit, shifting the
// previous carry flag into bit 0.
//
//	RL n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftThroughCarry(n uint8) uint8 {
	result := n<<1 | c.carryBit()
	c.setFlags(result == 0, false, false, n&types.Bit7 != 0)
	return result
}

// rotateRightThroughCarry rotates n right by 1 bit, shifting the
// previous carry flag into bit 7.
//
//	RR n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightThroughCarry(n uint8) uint8 {
	result := n>>1 | c.carryBit()<<7
	c.setFlags(result == 0, false, false, n&types.Bit0 != 0)
	return result
}

// rotateAccumulator applies one of the rotate operations to the
// A Register. Unlike the CB prefixed forms, the zero flag is
// always reset.
//
//	RLCA, RRCA, RLA, RRA
func (c *CPU) rotateAccumulator(rotate func(*CPU, uint8) uint8) {
	c.A = rotate(c, c.A)
	c.ResetFlags(FlagZero)
}
