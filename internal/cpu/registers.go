package cpu

import (
	"fmt"

	"github.com/thelolagemann/disco/internal/types"
)

// Register is an 8-bit CPU register.
type Register = types.Register

// Reg names one of the eight 8-bit registers.
type Reg uint8

const (
	RegA Reg = iota
	RegF
	RegB
	RegC
	RegD
	RegE
	RegH
	RegL
)

var regNames = [...]string{"A", "F", "B", "C", "D", "E", "H", "L"}

func (r Reg) String() string {
	if int(r) < len(regNames) {
		return regNames[r]
	}
	return fmt.Sprintf("Reg(%d)", uint8(r))
}

// Pair names one of the four 16-bit register pairs. The first
// named register of a pair holds the high byte.
type Pair uint8

const (
	PairAF Pair = iota
	PairBC
	PairDE
	PairHL
)

var pairNames = [...]string{"AF", "BC", "DE", "HL"}

func (p Pair) String() string {
	if int(p) < len(pairNames) {
		return pairNames[p]
	}
	return fmt.Sprintf("Pair(%d)", uint8(p))
}

// Registers contains the 8-bit registers of the CPU. The low
// nibble of F is always zero, only the flag bits 7-4 are kept.
type Registers struct {
	A Register
	F Register
	B Register
	C Register
	D Register
	E Register
	H Register
	L Register
}

// Get returns the value of the 8-bit register r.
func (r *Registers) Get(reg Reg) uint8 {
	return *r.pointer(reg)
}

// Set sets the 8-bit register r to value. Writes to F only
// retain the flag bits.
func (r *Registers) Set(reg Reg, value uint8) {
	if reg == RegF {
		value &= flagMask
	}
	*r.pointer(reg) = value
}

// Pair returns the 16-bit value of the register pair p.
func (r *Registers) Pair(p Pair) uint16 {
	high, low := r.pairPointers(p)
	return types.Join(*high, *low)
}

// SetPair sets the register pair p to value, the high byte going
// to the first named register and the low byte to the second.
func (r *Registers) SetPair(p Pair, value uint16) {
	high, low := r.pairPointers(p)
	*high, *low = types.Split(value)
	r.F &= flagMask
}

func (r *Registers) pointer(reg Reg) *Register {
	switch reg {
	case RegA:
		return &r.A
	case RegF:
		return &r.F
	case RegB:
		return &r.B
	case RegC:
		return &r.C
	case RegD:
		return &r.D
	case RegE:
		return &r.E
	case RegH:
		return &r.H
	case RegL:
		return &r.L
	}
	panic(fmt.Sprintf("invalid register: %d", reg))
}

func (r *Registers) pairPointers(p Pair) (*Register, *Register) {
	switch p {
	case PairAF:
		return &r.A, &r.F
	case PairBC:
		return &r.B, &r.C
	case PairDE:
		return &r.D, &r.E
	case PairHL:
		return &r.H, &r.L
	}
	panic(fmt.Sprintf("invalid register pair: %d", p))
}
