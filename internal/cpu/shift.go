package cpu

import "github.com/thelolagemann/disco/internal/types"

// shiftLeftArithmetic shifts n left into the carry flag, bit 0
// is reset.
//
//	SLA n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) shiftLeftArithmetic(n uint8) uint8 {
	result := n << 1
	c.setFlags(result == 0, false, false, n&types.Bit7 != 0)
	return result
}

// shiftRightArithmetic shifts n right into the carry flag, bit 7
// keeps its value.
//
//	SRA n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) shiftRightArithmetic(n uint8) uint8 {
	result := n&types.Bit7 | n>>1
	c.setFlags(result == 0, false, false, n&types.Bit0 != 0)
	return result
}

// shiftRightLogical shifts n right into the carry flag, bit 7
// is reset.
//
//	SRL n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) shiftRightLogical(n uint8) uint8 {
	result := n >> 1
	c.setFlags(result == 0, false, false, n&types.Bit0 != 0)
	return result
}
