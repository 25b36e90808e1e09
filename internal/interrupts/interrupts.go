package interrupts

import (
	"fmt"

	"github.com/thelolagemann/disco/internal/types"
)

// Interrupt identifies an interrupt source by its bit
// number in the types.IF and types.IE registers. A lower
// bit number is a higher priority.
type Interrupt uint8

const (
	// VBlank is requested every time the PPU enters
	// VBlank mode.
	VBlank Interrupt = iota
	// LCD is requested by the LCD STAT register when
	// certain conditions are met.
	LCD
	// Timer is requested when the timer overflows.
	Timer
	// Serial is requested when a serial transfer is
	// completed.
	Serial
	// Joypad is requested when any of the selected
	// joypad lines go from high to low.
	Joypad
)

const (
	// VBlankFlag is the VBlank interrupt flag (bit 0).
	VBlankFlag = types.Bit0
	// LCDFlag is the LCD interrupt flag (bit 1).
	LCDFlag = types.Bit1
	// TimerFlag is the Timer interrupt flag (bit 2).
	TimerFlag = types.Bit2
	// SerialFlag is the Serial interrupt flag (bit 3).
	SerialFlag = types.Bit3
	// JoypadFlag is the Joypad interrupt Flag (bit 4).
	JoypadFlag = types.Bit4

	// mask covers the five interrupt sources, the upper
	// 3 bits of IF and IE are never serviced.
	mask = VBlankFlag | LCDFlag | TimerFlag | SerialFlag | JoypadFlag
)

var names = [...]string{"V-Blank", "LCD-STAT", "Timer", "Serial", "Joypad"}

// Flag returns the bit mask of the interrupt.
func (i Interrupt) Flag() uint8 {
	return 1 << i
}

// Vector returns the fixed address the CPU jumps to when
// servicing the interrupt.
func (i Interrupt) Vector() uint16 {
	return 0x0040 + uint16(i)*8
}

func (i Interrupt) String() string {
	if int(i) < len(names) {
		return names[i]
	}
	return fmt.Sprintf("Interrupt(%d)", uint8(i))
}

// Bus is the memory the IF and IE registers are read from
// and written to.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// Controller is used to request interrupts and to determine
// which interrupt should be serviced next.
//
// When an interrupt is requested, the corresponding bit
// in the IF register is set. When an interrupt is
// enabled, the corresponding bit in the IE register
// is set. When an interrupt is requested and enabled,
// and the IME is set, the CPU will jump to the interrupt
// vector, and the corresponding bit in IF will be cleared.
type Controller struct {
	bus Bus
}

// NewController returns a Controller backed by the IF and
// IE registers of bus.
func NewController(bus Bus) *Controller {
	return &Controller{bus: bus}
}

// HasPending returns true if there are any interrupts
// that are requested and enabled.
func (c *Controller) HasPending() bool {
	return c.bus.Read(types.IF)&c.bus.Read(types.IE)&mask != 0
}

// Pending returns the highest priority interrupt that is both
// requested and enabled.
//
// Only one interrupt is serviced at a time, and they are
// serviced in the order of priority:
//
//   - VBlank
//   - LCD
//   - Timer
//   - Serial
//   - Joypad
func (c *Controller) Pending() (Interrupt, bool) {
	pending := c.bus.Read(types.IF) & c.bus.Read(types.IE) & mask
	if pending == 0 {
		return 0, false
	}
	for i := VBlank; i <= Joypad; i++ {
		if pending&i.Flag() != 0 {
			return i, true
		}
	}
	return 0, false
}

// Request requests the specified interrupt, by setting
// the corresponding bit in the IF register.
func (c *Controller) Request(i Interrupt) {
	c.bus.Write(types.IF, c.bus.Read(types.IF)|i.Flag())
}

// Acknowledge clears the request for the specified interrupt,
// leaving every other bit of IF untouched.
func (c *Controller) Acknowledge(i Interrupt) {
	c.bus.Write(types.IF, c.bus.Read(types.IF)&^i.Flag())
}
