package cpu

import "fmt"

// cbOperations are the rotate and shift operations of the
// 0xCB 0x00-0x3F block, selected by bits 3-5 of the opcode.
var cbOperations = [8]struct {
	name string
	fn   func(*CPU, uint8) uint8
}{
	{"RLC", (*CPU).rotateLeft},
	{"RRC", (*CPU).rotateRight},
	{"RL", (*CPU).rotateLeftThroughCarry},
	{"RR", (*CPU).rotateRightThroughCarry},
	{"SLA", (*CPU).shiftLeftArithmetic},
	{"SRA", (*CPU).shiftRightArithmetic},
	{"SWAP", (*CPU).swap},
	{"SRL", (*CPU).shiftRightLogical},
}

func init() {
	generateRotateInstructions()
	generateBitInstructions()
}

// defineCBOperation defines opcode as op applied to the operand
// selected by index, writing the result back. The returned cycles
// exclude the 4 spent fetching the prefix.
func defineCBOperation(opcode uint8, name string, index uint8, op func(*CPU, uint8) uint8) {
	if index == indirectHL {
		defineMemCB(opcode, name, func(c *CPU, m Memory) uint8 {
			hl := c.Pair(PairHL)
			m.Write(hl, op(c, m.Read(hl)))
			return 12
		})
		return
	}
	defineCB(opcode, name, func(c *CPU) uint8 {
		reg := c.registerIndex(index)
		*reg = op(c, *reg)
		return 4
	})
}

// generateRotateInstructions defines RLC, RRC, RL, RR, SLA, SRA,
// SWAP and SRL for each register (B, C, D, E, H, L, (HL), A).
func generateRotateInstructions() {
	for op := uint8(0); op < 8; op++ {
		for j := uint8(0); j < 8; j++ {
			defineCBOperation(op<<3|j, cbOperations[op].name+" "+registerNames[j], j, cbOperations[op].fn)
		}
	}
}

// generateBitInstructions defines BIT, RES and SET for each bit
// of each register (B, C, D, E, H, L, (HL), A).
func generateBitInstructions() {
	for b := uint8(0); b < 8; b++ {
		b := b
		for j := uint8(0); j < 8; j++ {
			j := j
			operand := fmt.Sprintf("%d, %s", b, registerNames[j])

			// 0x40 - 0x7F - BIT b, r
			if j == indirectHL {
				defineMemCB(0x40|b<<3|j, "BIT "+operand, func(c *CPU, m Memory) uint8 {
					c.testBit(m.Read(c.Pair(PairHL)), b)
					return 8
				})
			} else {
				defineCB(0x40|b<<3|j, "BIT "+operand, func(c *CPU) uint8 {
					c.testBit(*c.registerIndex(j), b)
					return 4
				})
			}

			// 0x80 - 0xBF - RES b, r
			defineCBOperation(0x80|b<<3|j, "RES "+operand, j, func(_ *CPU, v uint8) uint8 {
				return resetBit(v, b)
			})
			// 0xC0 - 0xFF - SET b, r
			defineCBOperation(0xC0|b<<3|j, "SET "+operand, j, func(_ *CPU, v uint8) uint8 {
				return setBit(v, b)
			})
		}
	}
}
