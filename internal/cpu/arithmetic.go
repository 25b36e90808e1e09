package cpu

// increment n by 1 and set the flags accordingly.
//
//	INC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(n uint8) uint8 {
	incremented := n + 1
	c.setFlags(incremented == 0, false, n&0x0F == 0x0F, c.TestFlags(FlagCarry))
	return incremented
}

// decrement n by 1 and set the flags accordingly.
//
//	DEC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(n uint8) uint8 {
	decremented := n - 1
	c.setFlags(decremented == 0, true, n&0x0F == 0x00, c.TestFlags(FlagCarry))
	return decremented
}

// add n (and the carry flag, for ADC) to the A Register.
//
//	ADD A, n
//	ADC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(n uint8, withCarry bool) {
	var carry uint8
	if withCarry {
		carry = c.carryBit()
	}
	sum := uint16(c.A) + uint16(n) + uint16(carry)
	c.setFlags(uint8(sum) == 0, false, (c.A&0x0F)+(n&0x0F)+carry > 0x0F, sum > 0xFF)
	c.A = uint8(sum)
}

// sub subtracts n (and the carry flag, for SBC) from the A Register.
//
//	SUB n
//	SBC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(n uint8, withCarry bool) {
	var carry uint8
	if withCarry {
		carry = c.carryBit()
	}
	result := c.A - n - carry
	c.setFlags(result == 0, true, c.A&0x0F < (n&0x0F)+carry, uint16(n)+uint16(carry) > uint16(c.A))
	c.A = result
}

// addHL adds nn to the HL register pair.
//
//	ADD HL, nn
//	nn = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addHL(nn uint16) {
	hl := c.Pair(PairHL)
	sum := uint32(hl) + uint32(nn)
	c.setFlags(c.TestFlags(FlagZero), false, (hl&0x0FFF)+(nn&0x0FFF) > 0x0FFF, sum > 0xFFFF)
	c.SetPair(PairHL, uint16(sum))
}

// addSPSigned returns SP plus the signed offset e. The carries
// are computed on the low byte, treating e as unsigned.
//
//	ADD SP, e
//	LD HL, SP+e
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSPSigned(e uint8) uint16 {
	sp := c.SP
	c.setFlags(false, false, (sp&0x0F)+uint16(e&0x0F) > 0x0F, (sp&0xFF)+uint16(e) > 0xFF)
	return sp + uint16(int8(e))
}

// decimalAdjust adjusts the A Register to a binary coded decimal
// after an addition or subtraction.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if register A is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set or reset according to operation.
func (c *CPU) decimalAdjust() {
	var adjust uint8
	carry := c.TestFlags(FlagCarry)
	subtract := c.TestFlags(FlagSubtract)
	if subtract {
		if c.TestFlags(FlagHalfCarry) {
			adjust |= 0x06
		}
		if carry {
			adjust |= 0x60
		}
		c.A -= adjust
	} else {
		if c.TestFlags(FlagHalfCarry) || c.A&0x0F > 0x09 {
			adjust |= 0x06
		}
		if carry || c.A > 0x99 {
			adjust |= 0x60
			carry = true
		}
		c.A += adjust
	}
	c.setFlags(c.A == 0, subtract, false, carry)
}
