package cpu

// The opcode tables are generated from the regular encoding of
// the instruction set:
//
//	00 000 000
//	^^ ^^^ ^^^
//	x  y   z
//
// where y and z select an 8-bit operand (B, C, D, E, H, L, (HL), A),
// y>>1 selects a register pair and y&3 a branch condition.

// indirectHL is the operand index of (HL).
const indirectHL = 6

var (
	registerNames  = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}
	registerPairs  = [4]string{"BC", "DE", "HL", "SP"}
	stackPairs     = [4]string{"BC", "DE", "HL", "AF"}
	conditionNames = [4]string{"NZ", "Z", "NC", "C"}
	registerOrder  = [8]Reg{RegB, RegC, RegD, RegE, RegH, RegL, 0, RegA}
)

// registerIndex returns a Register pointer for the given operand
// index. Index 6 is (HL) and has no register.
func (c *CPU) registerIndex(index uint8) *Register {
	if index == indirectHL {
		panic("(HL) is not a register")
	}
	return c.pointer(registerOrder[index&7])
}

// registerPair returns the value of the pair selected by index
// (BC, DE, HL, SP).
func (c *CPU) registerPair(index uint8) uint16 {
	switch index & 3 {
	case 0:
		return c.Pair(PairBC)
	case 1:
		return c.Pair(PairDE)
	case 2:
		return c.Pair(PairHL)
	}
	return c.SP
}

// setRegisterPair sets the pair selected by index (BC, DE, HL, SP).
func (c *CPU) setRegisterPair(index uint8, value uint16) {
	switch index & 3 {
	case 0:
		c.SetPair(PairBC, value)
	case 1:
		c.SetPair(PairDE, value)
	case 2:
		c.SetPair(PairHL, value)
	default:
		c.SP = value
	}
}

// stackPair returns the pair selected by index for PUSH and POP,
// where AF takes the place of SP.
func stackPair(index uint8) Pair {
	return [4]Pair{PairBC, PairDE, PairHL, PairAF}[index&3]
}

// condition reports whether the branch condition selected by
// index (NZ, Z, NC, C) holds.
func (c *CPU) condition(index uint8) bool {
	switch index & 3 {
	case 0:
		return !c.TestFlags(FlagZero)
	case 1:
		return c.TestFlags(FlagZero)
	case 2:
		return !c.TestFlags(FlagCarry)
	}
	return c.TestFlags(FlagCarry)
}
