package cpu

import "fmt"

// jumpRelative reads a signed offset and adds it to PC, which
// already points past the offset, if cond holds.
//
//	JR e
//	JR cc, e
func (c *CPU) jumpRelative(m Memory, cond bool) uint8 {
	offset := int8(c.fetch(m))
	if !cond {
		return 8
	}
	c.PC += uint16(offset)
	return 12
}

// jumpAbsolute reads a 16-bit address and jumps to it if
// cond holds.
//
//	JP nn
//	JP cc, nn
func (c *CPU) jumpAbsolute(m Memory, cond bool) uint8 {
	address := c.fetch16(m)
	if !cond {
		return 12
	}
	c.PC = address
	return 16
}

// call reads a 16-bit address, and if cond holds, pushes the
// address of the next instruction and jumps to it.
//
//	CALL nn
//	CALL cc, nn
func (c *CPU) call(m Memory, cond bool) uint8 {
	address := c.fetch16(m)
	if !cond {
		return 12
	}
	c.push(m, c.PC)
	c.PC = address
	return 24
}

// ret pops the return address off the stack into PC.
//
//	RET
func (c *CPU) ret(m Memory) uint8 {
	c.PC = c.pop(m)
	return 16
}

// retConditional returns if cond holds.
//
//	RET cc
func (c *CPU) retConditional(m Memory, cond bool) uint8 {
	if !cond {
		return 8
	}
	c.PC = c.pop(m)
	return 20
}

// restart pushes PC and jumps to one of the fixed vectors
// 0x00, 0x08, ... 0x38.
//
//	RST n
func (c *CPU) restart(m Memory, vector uint16) uint8 {
	c.push(m, c.PC)
	c.PC = vector
	return 16
}

// generateJumpInstructions defines the conditional jumps, calls
// and returns, and the RST instructions.
func generateJumpInstructions() {
	for cc := uint8(0); cc < 4; cc++ {
		cc := cc
		cond := conditionNames[cc]

		// 0x20, 0x28, 0x30, 0x38 - JR cc, r8
		defineMem(0x20|cc<<3, "JR "+cond+", r8", func(c *CPU, m Memory) uint8 {
			return c.jumpRelative(m, c.condition(cc))
		})
		// 0xC0, 0xC8, 0xD0, 0xD8 - RET cc
		defineMem(0xC0|cc<<3, "RET "+cond, func(c *CPU, m Memory) uint8 {
			return c.retConditional(m, c.condition(cc))
		})
		// 0xC2, 0xCA, 0xD2, 0xDA - JP cc, a16
		defineMem(0xC2|cc<<3, "JP "+cond+", a16", func(c *CPU, m Memory) uint8 {
			return c.jumpAbsolute(m, c.condition(cc))
		})
		// 0xC4, 0xCC, 0xD4, 0xDC - CALL cc, a16
		defineMem(0xC4|cc<<3, "CALL "+cond+", a16", func(c *CPU, m Memory) uint8 {
			return c.call(m, c.condition(cc))
		})
	}

	// 0xC7, 0xCF, ... 0xFF - RST n
	for n := uint8(0); n < 8; n++ {
		vector := uint16(n) << 3
		defineMem(0xC7|n<<3, fmt.Sprintf("RST %02XH", vector), func(c *CPU, m Memory) uint8 {
			return c.restart(m, vector)
		})
	}
}
