package cpu

import "github.com/thelolagemann/disco/internal/types"

// Flag is a bit mask over the F register.
type Flag = uint8

const (
	// FlagZero is set when the result of an operation is zero.
	FlagZero Flag = types.Bit7
	// FlagSubtract is set when the last operation was a subtraction.
	FlagSubtract Flag = types.Bit6
	// FlagHalfCarry is set on a carry or borrow between bit 3 and 4.
	FlagHalfCarry Flag = types.Bit5
	// FlagCarry is set on a carry out of bit 7, or a borrow.
	FlagCarry Flag = types.Bit4

	flagMask = FlagZero | FlagSubtract | FlagHalfCarry | FlagCarry
)

// TestFlags returns true if all the given flags are set.
func (r *Registers) TestFlags(flags Flag) bool {
	return r.F&flags == flags
}

// SetFlags sets the given flags, leaving the others untouched.
func (r *Registers) SetFlags(flags Flag) {
	r.F = (r.F | flags) & flagMask
}

// ResetFlags clears the given flags, leaving the others untouched.
func (r *Registers) ResetFlags(flags Flag) {
	r.F &^= flags
}

// setFlags replaces all four flags at once.
func (r *Registers) setFlags(zero, subtract, halfCarry, carry bool) {
	r.F = 0
	if zero {
		r.F |= FlagZero
	}
	if subtract {
		r.F |= FlagSubtract
	}
	if halfCarry {
		r.F |= FlagHalfCarry
	}
	if carry {
		r.F |= FlagCarry
	}
}

// carryBit returns the carry flag as 0 or 1.
func (r *Registers) carryBit() uint8 {
	return (r.F & FlagCarry) >> 4
}
