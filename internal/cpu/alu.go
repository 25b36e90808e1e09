package cpu

// aluOperations are the eight A Register operations selected by
// bits 3-5 of the 0x80-0xBF and 0xC6-0xFE opcodes.
var aluOperations = [8]struct {
	name string
	fn   func(*CPU, uint8)
}{
	{"ADD A,", func(c *CPU, n uint8) { c.add(n, false) }},
	{"ADC A,", func(c *CPU, n uint8) { c.add(n, true) }},
	{"SUB", func(c *CPU, n uint8) { c.sub(n, false) }},
	{"SBC A,", func(c *CPU, n uint8) { c.sub(n, true) }},
	{"AND", (*CPU).and},
	{"XOR", (*CPU).xor},
	{"OR", (*CPU).or},
	{"CP", (*CPU).compare},
}

// generateALUInstructions defines the register, (HL) and
// immediate forms of every ALU operation.
func generateALUInstructions() {
	for op := uint8(0); op < 8; op++ {
		op := op
		alu := aluOperations[op]

		// 0xC6, 0xCE, ... 0xFE - op d8
		defineMem(0xC6+op<<3, alu.name+" d8", func(c *CPU, m Memory) uint8 {
			alu.fn(c, c.fetch(m))
			return 8
		})

		for src := uint8(0); src < 8; src++ {
			src := src
			opcode := 0x80 | op<<3 | src
			name := alu.name + " " + registerNames[src]

			if src == indirectHL {
				defineMem(opcode, name, func(c *CPU, m Memory) uint8 {
					alu.fn(c, m.Read(c.Pair(PairHL)))
					return 8
				})
				continue
			}
			define(opcode, name, func(c *CPU) uint8 {
				alu.fn(c, *c.registerIndex(src))
				return 4
			})
		}
	}
}
