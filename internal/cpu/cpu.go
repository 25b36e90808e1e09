package cpu

import (
	"context"

	"github.com/thelolagemann/disco/internal/interrupts"
	"github.com/thelolagemann/disco/internal/types"
	"github.com/thelolagemann/disco/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the CPU in T-cycles per second.
	ClockSpeed = 4194304
	// DividerPeriod is the number of T-cycles between two
	// increments of the types.DIV register.
	DividerPeriod = 256
)

// Memory is the byte addressable bus the CPU executes from.
// Both operations are total over the 16-bit address space.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

type mode = uint8

const (
	// ModeNormal is the normal CPU mode.
	ModeNormal mode = iota
	// ModeHalt is the halt CPU mode, left once an interrupt
	// is pending.
	ModeHalt
	// ModeStop is the stop CPU mode, left once an interrupt
	// is pending. The divider does not advance while stopped.
	ModeStop
	// ModeHaltBug is entered by HALT with IME disabled and an
	// interrupt pending: the next opcode is fetched without
	// advancing PC.
	ModeHaltBug
)

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// IME is the interrupt master enable.
	IME bool
	// Registers contains the 8-bit registers and the flags.
	Registers

	bus Memory
	irq *interrupts.Controller
	log log.Logger

	debug     bool
	mode      mode
	eiPending bool // EI executed, IME is set before the next instruction

	divCycles uint16 // T-cycles since DIV last ticked
	cycles    uint64
}

// NewCPU creates a new CPU executing from bus, with every register
// zeroed, PC and SP at 0 and IME disabled.
func NewCPU(bus Memory, opts ...Opt) *CPU {
	c := &CPU{
		bus: bus,
		irq: interrupts.NewController(bus),
		log: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Mode returns the current CPU mode.
func (c *CPU) Mode() uint8 {
	return c.mode
}

// Cycles returns the number of T-cycles executed so far.
func (c *CPU) Cycles() uint64 {
	return c.cycles
}

// Step executes a single instruction, followed by the divider
// update and the interrupt check, and returns the number of
// T-cycles that were spent. While halted or stopped, a step idles
// for 4 T-cycles instead.
//
// An opcode with no instruction is returned as an
// *UnimplementedOpcodeError, and leaves the CPU untouched.
func (c *CPU) Step() (uint8, error) {
	var cycles uint8

	switch c.mode {
	case ModeHalt, ModeStop:
		cycles = 4
		if c.irq.HasPending() {
			c.mode = ModeNormal
		}
	default:
		pc := c.PC
		instruction, prefix, err := c.decode()
		if err != nil {
			return 0, err
		}
		if c.mode == ModeHaltBug {
			c.mode = ModeNormal
		}
		if c.eiPending {
			c.IME = true
			c.eiPending = false
		}

		cycles = prefix + instruction.execute(c, c.bus)
		if c.debug {
			c.trace(pc, instruction, cycles)
		}
	}

	if c.mode != ModeStop {
		c.tick(cycles)
	}

	if c.IME {
		if irq, ok := c.irq.Pending(); ok {
			dispatch := c.executeInterrupt(irq)
			c.tick(dispatch)
			cycles += dispatch
		}
	}

	return cycles, nil
}

// Run steps the CPU until ctx is done or an instruction fails.
func (c *CPU) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := c.Step(); err != nil {
			return err
		}
	}
}

// decode fetches the next opcode, and the extended opcode following
// PrefixCB, returning its instruction and the cycles spent on the
// prefix. PC is restored if the opcode is undefined.
func (c *CPU) decode() (Instruction, uint8, error) {
	pc := c.PC
	opcode := c.fetch(c.bus)
	if c.mode == ModeHaltBug {
		c.PC--
	}

	if opcode != PrefixCB {
		instruction, ok := Decode(opcode)
		if !ok {
			c.PC = pc
			return Instruction{}, 0, &UnimplementedOpcodeError{Opcode: opcode, PC: pc}
		}
		return instruction, 0, nil
	}

	opcode = c.fetch(c.bus)
	instruction, ok := DecodeCB(opcode)
	if !ok {
		c.PC = pc
		return Instruction{}, 0, &UnimplementedOpcodeError{Opcode: opcode, Prefixed: true, PC: pc}
	}
	return instruction, 4, nil
}

// tick accumulates cycles, incrementing the divider register once
// for every DividerPeriod T-cycles.
func (c *CPU) tick(cycles uint8) {
	c.cycles += uint64(cycles)
	c.divCycles += uint16(cycles)
	for c.divCycles >= DividerPeriod {
		c.divCycles -= DividerPeriod
		c.bus.Write(types.DIV, c.bus.Read(types.DIV)+1)
	}
}

// resetDivider clears the divider register and its accumulator.
func (c *CPU) resetDivider() {
	c.divCycles = 0
	c.bus.Write(types.DIV, 0)
}

func (c *CPU) trace(pc uint16, instruction Instruction, cycles uint8) {
	c.log.Debugf("%04X %-14s A:%02X F:%02X B:%02X C:%02X D:%02X E:%02X H:%02X L:%02X SP:%04X (%d cycles)",
		pc, instruction.Name(), c.A, c.F, c.B, c.C, c.D, c.E, c.H, c.L, c.SP, cycles)
}
