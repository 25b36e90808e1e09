package cpu

import "github.com/thelolagemann/disco/internal/types"

// fetch reads the next byte of the instruction stream.
func (c *CPU) fetch(m Memory) uint8 {
	value := m.Read(c.PC)
	c.PC++
	return value
}

// fetch16 reads the next two bytes of the instruction stream as
// a little-endian value, the low byte coming first.
func (c *CPU) fetch16(m Memory) uint16 {
	low := c.fetch(m)
	high := c.fetch(m)
	return types.Join(high, low)
}

// push pushes value onto the stack. The high byte is written
// first, to the higher address, leaving the low byte on top.
func (c *CPU) push(m Memory, value uint16) {
	high, low := types.Split(value)
	c.SP--
	m.Write(c.SP, high)
	c.SP--
	m.Write(c.SP, low)
}

// pop pops a 16-bit value off the stack, the low byte being read
// first from the lower address.
func (c *CPU) pop(m Memory) uint16 {
	low := m.Read(c.SP)
	c.SP++
	high := m.Read(c.SP)
	c.SP++
	return types.Join(high, low)
}

// ioAddress returns the address of the IO page register at offset.
// 0xFF00 + 0xFF never leaves the address space.
func ioAddress(offset uint8) uint16 {
	return types.IOBase + uint16(offset)
}

// generateLoadInstructions defines the 8-bit and 16-bit load,
// increment and decrement instructions of the 0x00-0x3F and
// 0x40-0x7F blocks, and PUSH/POP.
func generateLoadInstructions() {
	for p := uint8(0); p < 4; p++ {
		p := p

		// 0x01, 0x11, 0x21, 0x31 - LD nn, d16
		defineMem(p<<4|0x01, "LD "+registerPairs[p]+", d16", func(c *CPU, m Memory) uint8 {
			c.setRegisterPair(p, c.fetch16(m))
			return 12
		})
		// 0x03, 0x13, 0x23, 0x33 - INC nn
		define(p<<4|0x03, "INC "+registerPairs[p], func(c *CPU) uint8 {
			c.setRegisterPair(p, c.registerPair(p)+1)
			return 8
		})
		// 0x0B, 0x1B, 0x2B, 0x3B - DEC nn
		define(p<<4|0x0B, "DEC "+registerPairs[p], func(c *CPU) uint8 {
			c.setRegisterPair(p, c.registerPair(p)-1)
			return 8
		})
		// 0x09, 0x19, 0x29, 0x39 - ADD HL, nn
		define(p<<4|0x09, "ADD HL, "+registerPairs[p], func(c *CPU) uint8 {
			c.addHL(c.registerPair(p))
			return 8
		})
		// 0xC1, 0xD1, 0xE1, 0xF1 - POP nn
		defineMem(0xC1|p<<4, "POP "+stackPairs[p], func(c *CPU, m Memory) uint8 {
			c.SetPair(stackPair(p), c.pop(m))
			return 12
		})
		// 0xC5, 0xD5, 0xE5, 0xF5 - PUSH nn
		defineMem(0xC5|p<<4, "PUSH "+stackPairs[p], func(c *CPU, m Memory) uint8 {
			c.push(m, c.Pair(stackPair(p)))
			return 16
		})
	}

	for r := uint8(0); r < 8; r++ {
		r := r
		name := registerNames[r]

		if r == indirectHL {
			// 0x34 - INC (HL)
			defineMem(0x34, "INC (HL)", func(c *CPU, m Memory) uint8 {
				hl := c.Pair(PairHL)
				m.Write(hl, c.increment(m.Read(hl)))
				return 12
			})
			// 0x35 - DEC (HL)
			defineMem(0x35, "DEC (HL)", func(c *CPU, m Memory) uint8 {
				hl := c.Pair(PairHL)
				m.Write(hl, c.decrement(m.Read(hl)))
				return 12
			})
			// 0x36 - LD (HL), d8
			defineMem(0x36, "LD (HL), d8", func(c *CPU, m Memory) uint8 {
				m.Write(c.Pair(PairHL), c.fetch(m))
				return 12
			})
		} else {
			// 0x04, 0x0C, ... 0x3C - INC r
			define(r<<3|0x04, "INC "+name, func(c *CPU) uint8 {
				reg := c.registerIndex(r)
				*reg = c.increment(*reg)
				return 4
			})
			// 0x05, 0x0D, ... 0x3D - DEC r
			define(r<<3|0x05, "DEC "+name, func(c *CPU) uint8 {
				reg := c.registerIndex(r)
				*reg = c.decrement(*reg)
				return 4
			})
			// 0x06, 0x0E, ... 0x3E - LD r, d8
			defineMem(r<<3|0x06, "LD "+name+", d8", func(c *CPU, m Memory) uint8 {
				*c.registerIndex(r) = c.fetch(m)
				return 8
			})
		}

		// 0x40 - 0x7F - LD r, r'
		for src := uint8(0); src < 8; src++ {
			src := src
			opcode := 0x40 | r<<3 | src
			ld := "LD " + name + ", " + registerNames[src]

			switch {
			case r == indirectHL && src == indirectHL:
				// 0x76 is HALT
			case r == indirectHL:
				defineMem(opcode, ld, func(c *CPU, m Memory) uint8 {
					m.Write(c.Pair(PairHL), *c.registerIndex(src))
					return 8
				})
			case src == indirectHL:
				defineMem(opcode, ld, func(c *CPU, m Memory) uint8 {
					*c.registerIndex(r) = m.Read(c.Pair(PairHL))
					return 8
				})
			default:
				define(opcode, ld, func(c *CPU) uint8 {
					*c.registerIndex(r) = *c.registerIndex(src)
					return 4
				})
			}
		}
	}
}
