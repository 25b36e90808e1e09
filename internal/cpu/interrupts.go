package cpu

import "github.com/thelolagemann/disco/internal/interrupts"

// interruptCycles is the cost of dispatching an interrupt, 5 M-cycles.
const interruptCycles = 20

// executeInterrupt services irq: IME is disabled, the request is
// cleared from IF, PC is pushed like CALL does and execution
// continues at the interrupt vector.
func (c *CPU) executeInterrupt(irq interrupts.Interrupt) uint8 {
	c.IME = false
	c.irq.Acknowledge(irq)
	c.push(c.bus, c.PC)
	c.PC = irq.Vector()

	c.mode = ModeNormal
	if c.debug {
		c.log.Debugf("servicing %s interrupt, jumping to %04X", irq, c.PC)
	}
	return interruptCycles
}

// Interrupts returns the controller used to request interrupts.
func (c *CPU) Interrupts() *interrupts.Controller {
	return c.irq
}
