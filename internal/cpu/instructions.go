package cpu

import "github.com/thelolagemann/disco/internal/types"

func init() {
	generateLoadInstructions()
	generateALUInstructions()
	generateJumpInstructions()

	// 0x00 - NOP
	define(0x00, "NOP", func(c *CPU) uint8 { return 4 })

	// 0x02, 0x12, 0x22, 0x32 - LD (nn), A
	defineMem(0x02, "LD (BC), A", func(c *CPU, m Memory) uint8 {
		m.Write(c.Pair(PairBC), c.A)
		return 8
	})
	defineMem(0x12, "LD (DE), A", func(c *CPU, m Memory) uint8 {
		m.Write(c.Pair(PairDE), c.A)
		return 8
	})
	defineMem(0x22, "LD (HL+), A", func(c *CPU, m Memory) uint8 {
		hl := c.Pair(PairHL)
		m.Write(hl, c.A)
		c.SetPair(PairHL, hl+1)
		return 8
	})
	defineMem(0x32, "LD (HL-), A", func(c *CPU, m Memory) uint8 {
		hl := c.Pair(PairHL)
		m.Write(hl, c.A)
		c.SetPair(PairHL, hl-1)
		return 8
	})

	// 0x0A, 0x1A, 0x2A, 0x3A - LD A, (nn)
	defineMem(0x0A, "LD A, (BC)", func(c *CPU, m Memory) uint8 {
		c.A = m.Read(c.Pair(PairBC))
		return 8
	})
	defineMem(0x1A, "LD A, (DE)", func(c *CPU, m Memory) uint8 {
		c.A = m.Read(c.Pair(PairDE))
		return 8
	})
	defineMem(0x2A, "LD A, (HL+)", func(c *CPU, m Memory) uint8 {
		hl := c.Pair(PairHL)
		c.A = m.Read(hl)
		c.SetPair(PairHL, hl+1)
		return 8
	})
	defineMem(0x3A, "LD A, (HL-)", func(c *CPU, m Memory) uint8 {
		hl := c.Pair(PairHL)
		c.A = m.Read(hl)
		c.SetPair(PairHL, hl-1)
		return 8
	})

	// 0x07, 0x0F, 0x17, 0x1F - accumulator rotates
	define(0x07, "RLCA", func(c *CPU) uint8 {
		c.rotateAccumulator((*CPU).rotateLeft)
		return 4
	})
	define(0x0F, "RRCA", func(c *CPU) uint8 {
		c.rotateAccumulator((*CPU).rotateRight)
		return 4
	})
	define(0x17, "RLA", func(c *CPU) uint8 {
		c.rotateAccumulator((*CPU).rotateLeftThroughCarry)
		return 4
	})
	define(0x1F, "RRA", func(c *CPU) uint8 {
		c.rotateAccumulator((*CPU).rotateRightThroughCarry)
		return 4
	})

	// 0x08 - LD (a16), SP
	defineMem(0x08, "LD (a16), SP", func(c *CPU, m Memory) uint8 {
		address := c.fetch16(m)
		high, low := types.Split(c.SP)
		m.Write(address, low)
		m.Write(address+1, high)
		return 20
	})

	// 0x10 - STOP
	defineMem(0x10, "STOP", func(c *CPU, m Memory) uint8 {
		c.PC++ // STOP is followed by a padding byte
		c.resetDivider()
		c.mode = ModeStop
		return 4
	})

	// 0x18 - JR r8
	defineMem(0x18, "JR r8", func(c *CPU, m Memory) uint8 {
		return c.jumpRelative(m, true)
	})

	// 0x27, 0x2F, 0x37, 0x3F - flag and accumulator ops
	define(0x27, "DAA", func(c *CPU) uint8 {
		c.decimalAdjust()
		return 4
	})
	define(0x2F, "CPL", func(c *CPU) uint8 {
		c.complement()
		return 4
	})
	define(0x37, "SCF", func(c *CPU) uint8 {
		c.setCarry()
		return 4
	})
	define(0x3F, "CCF", func(c *CPU) uint8 {
		c.complementCarry()
		return 4
	})

	// 0x76 - HALT
	defineMem(0x76, "HALT", func(c *CPU, m Memory) uint8 {
		if !c.IME && c.irq.HasPending() {
			// with IME disabled and an interrupt already pending, HALT
			// exits immediately and the next opcode is read twice
			c.mode = ModeHaltBug
		} else {
			c.mode = ModeHalt
		}
		return 4
	})

	// 0xC3 - JP a16
	defineMem(0xC3, "JP a16", func(c *CPU, m Memory) uint8 {
		return c.jumpAbsolute(m, true)
	})
	// 0xC9 - RET
	defineMem(0xC9, "RET", func(c *CPU, m Memory) uint8 {
		return c.ret(m)
	})
	// 0xCD - CALL a16
	defineMem(0xCD, "CALL a16", func(c *CPU, m Memory) uint8 {
		return c.call(m, true)
	})
	// 0xD9 - RETI
	defineMem(0xD9, "RETI", func(c *CPU, m Memory) uint8 {
		c.IME = true
		return c.ret(m)
	})

	// 0xE0, 0xE2, 0xF0, 0xF2 - IO page loads
	defineMem(0xE0, "LDH (a8), A", func(c *CPU, m Memory) uint8 {
		m.Write(ioAddress(c.fetch(m)), c.A)
		return 12
	})
	defineMem(0xE2, "LD (C), A", func(c *CPU, m Memory) uint8 {
		m.Write(ioAddress(c.C), c.A)
		return 8
	})
	defineMem(0xF0, "LDH A, (a8)", func(c *CPU, m Memory) uint8 {
		c.A = m.Read(ioAddress(c.fetch(m)))
		return 12
	})
	defineMem(0xF2, "LD A, (C)", func(c *CPU, m Memory) uint8 {
		c.A = m.Read(ioAddress(c.C))
		return 8
	})

	// 0xE8 - ADD SP, r8
	defineMem(0xE8, "ADD SP, r8", func(c *CPU, m Memory) uint8 {
		c.SP = c.addSPSigned(c.fetch(m))
		return 16
	})
	// 0xF8 - LD HL, SP+r8
	defineMem(0xF8, "LD HL, SP+r8", func(c *CPU, m Memory) uint8 {
		c.SetPair(PairHL, c.addSPSigned(c.fetch(m)))
		return 12
	})
	// 0xF9 - LD SP, HL
	define(0xF9, "LD SP, HL", func(c *CPU) uint8 {
		c.SP = c.Pair(PairHL)
		return 8
	})
	// 0xE9 - JP HL
	define(0xE9, "JP HL", func(c *CPU) uint8 {
		c.PC = c.Pair(PairHL)
		return 4
	})

	// 0xEA, 0xFA - absolute loads
	defineMem(0xEA, "LD (a16), A", func(c *CPU, m Memory) uint8 {
		m.Write(c.fetch16(m), c.A)
		return 16
	})
	defineMem(0xFA, "LD A, (a16)", func(c *CPU, m Memory) uint8 {
		c.A = m.Read(c.fetch16(m))
		return 16
	})

	// 0xF3 - DI
	define(0xF3, "DI", func(c *CPU) uint8 {
		c.IME = false
		c.eiPending = false
		return 4
	})
	// 0xFB - EI, takes effect after the next instruction
	define(0xFB, "EI", func(c *CPU) uint8 {
		c.eiPending = true
		return 4
	})
}
