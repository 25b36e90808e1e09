package cpu

import (
	"errors"
	"fmt"
)

// ErrUnimplementedOpcode is matched by every UnimplementedOpcodeError.
var ErrUnimplementedOpcode = errors.New("unimplemented opcode")

// UnimplementedOpcodeError is returned when the CPU fetches an
// opcode with no entry in the instruction tables. The CPU state
// is left as it was before the fetch.
type UnimplementedOpcodeError struct {
	Opcode   uint8
	Prefixed bool   // Opcode was read after the 0xCB prefix
	PC       uint16 // address of the first byte of the instruction
}

func (e *UnimplementedOpcodeError) Error() string {
	if e.Prefixed {
		return fmt.Sprintf("unimplemented opcode CB %02X at %04X", e.Opcode, e.PC)
	}
	return fmt.Sprintf("unimplemented opcode %02X at %04X", e.Opcode, e.PC)
}

func (e *UnimplementedOpcodeError) Unwrap() error {
	return ErrUnimplementedOpcode
}
