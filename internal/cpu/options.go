package cpu

import "github.com/thelolagemann/disco/pkg/log"

// Opt is a function that modifies a CPU instance.
type Opt func(c *CPU)

// Debug traces every executed instruction to the logger.
func Debug() Opt {
	return func(c *CPU) {
		c.debug = true
	}
}

// WithLogger sets the logger used for tracing.
func WithLogger(l log.Logger) Opt {
	return func(c *CPU) {
		c.log = l
	}
}

// WithPC sets the initial program counter.
func WithPC(pc uint16) Opt {
	return func(c *CPU) {
		c.PC = pc
	}
}

// WithSP sets the initial stack pointer.
func WithSP(sp uint16) Opt {
	return func(c *CPU) {
		c.SP = sp
	}
}

// WithIME sets the initial state of the interrupt master enable.
func WithIME(enabled bool) Opt {
	return func(c *CPU) {
		c.IME = enabled
	}
}
