package cpu

import "fmt"

// Access describes which parts of the machine an instruction
// operates on, and so which handler it carries.
type Access uint8

const (
	// AccessRegisters instructions only touch the register file.
	AccessRegisters Access = iota
	// AccessMemory instructions fetch operands or read and
	// write memory as well as the register file.
	AccessMemory
)

func (a Access) String() string {
	switch a {
	case AccessRegisters:
		return "registers"
	case AccessMemory:
		return "memory"
	}
	return fmt.Sprintf("Access(%d)", uint8(a))
}

// Instruction represents a single instruction of the CPU. Each
// handler returns the number of T-cycles the instruction took.
type Instruction struct {
	name   string
	access Access
	fn     func(*CPU) uint8         // AccessRegisters
	memFn  func(*CPU, Memory) uint8 // AccessMemory
}

// Name returns the mnemonic of the instruction.
func (i Instruction) Name() string {
	return i.name
}

// Access returns what the instruction operates on.
func (i Instruction) Access() Access {
	return i.access
}

func (i Instruction) defined() bool {
	return i.fn != nil || i.memFn != nil
}

func (i Instruction) execute(c *CPU, m Memory) uint8 {
	if i.access == AccessMemory {
		return i.memFn(c, m)
	}
	return i.fn(c)
}

// PrefixCB is the opcode that selects the extended instruction set.
const PrefixCB uint8 = 0xCB

var (
	// instructionSet holds the base 256 opcodes, instructionSetCB
	// the opcodes following PrefixCB. Both are filled once in init.
	instructionSet   [256]Instruction
	instructionSetCB [256]Instruction
)

// Decode returns the instruction for opcode in the base set. The
// prefix byte itself and the undefined opcodes have no entry.
func Decode(opcode uint8) (Instruction, bool) {
	i := instructionSet[opcode]
	return i, i.defined()
}

// DecodeCB returns the instruction for opcode in the extended set.
func DecodeCB(opcode uint8) (Instruction, bool) {
	i := instructionSetCB[opcode]
	return i, i.defined()
}

func define(opcode uint8, name string, fn func(*CPU) uint8) {
	instructionSet[opcode] = Instruction{name: name, access: AccessRegisters, fn: fn}
}

func defineMem(opcode uint8, name string, fn func(*CPU, Memory) uint8) {
	instructionSet[opcode] = Instruction{name: name, access: AccessMemory, memFn: fn}
}

func defineCB(opcode uint8, name string, fn func(*CPU) uint8) {
	instructionSetCB[opcode] = Instruction{name: name, access: AccessRegisters, fn: fn}
}

func defineMemCB(opcode uint8, name string, fn func(*CPU, Memory) uint8) {
	instructionSetCB[opcode] = Instruction{name: name, access: AccessMemory, memFn: fn}
}
