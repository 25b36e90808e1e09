package cpu

import (
	"strings"
	"testing"
)

// timings contains the M-cycle cost of every base opcode, with
// conditional branches not taken. Zero marks opcodes without a
// fixed cost: STOP, HALT, the prefix and the undefined opcodes.
var timings = []uint8{
	1, 3, 2, 2, 1, 1, 2, 1, 5, 2, 2, 2, 1, 1, 2, 1,
	0, 3, 2, 2, 1, 1, 2, 1, 3, 2, 2, 2, 1, 1, 2, 1,
	2, 3, 2, 2, 1, 1, 2, 1, 2, 2, 2, 2, 1, 1, 2, 1,
	2, 3, 2, 2, 3, 3, 3, 1, 2, 2, 2, 2, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	2, 2, 2, 2, 2, 2, 0, 2, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	2, 3, 3, 4, 3, 4, 2, 4, 2, 4, 3, 0, 3, 6, 2, 4,
	2, 3, 3, 0, 3, 4, 2, 4, 2, 4, 3, 0, 3, 0, 2, 4,
	3, 3, 2, 0, 0, 4, 2, 4, 4, 1, 4, 0, 0, 0, 2, 4,
	3, 3, 2, 1, 0, 4, 2, 4, 3, 2, 4, 1, 0, 0, 2, 4,
}

// cbTimings contains the M-cycle cost of every CB prefixed
// opcode, including the prefix itself.
var cbTimings = []uint8{
	2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
	2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
	2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
	2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
	2, 2, 2, 2, 2, 2, 3, 2, 2, 2, 2, 2, 2, 2, 3, 2,
	2, 2, 2, 2, 2, 2, 3, 2, 2, 2, 2, 2, 2, 2, 3, 2,
	2, 2, 2, 2, 2, 2, 3, 2, 2, 2, 2, 2, 2, 2, 3, 2,
	2, 2, 2, 2, 2, 2, 3, 2, 2, 2, 2, 2, 2, 2, 3, 2,
	2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
	2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
	2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
	2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
	2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
	2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
	2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
	2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
}

// conditional reports whether opcode is a conditional branch,
// returning the flags under which its condition fails.
func conditional(opcode uint8) (Flag, bool) {
	switch opcode & 0xE7 {
	case 0x20, 0xC0, 0xC2, 0xC4: // JR cc, RET cc, JP cc, CALL cc
	default:
		return 0, false
	}
	switch (opcode >> 3) & 3 {
	case 0, 2: // NZ, NC
		return FlagZero | FlagCarry, true
	}
	return 0, true // Z, C
}

func TestInstruction_Timing(t *testing.T) {
	for i, timing := range timings {
		opcode := uint8(i)
		if timing == 0 {
			continue
		}
		instruction, ok := Decode(opcode)
		if !ok {
			t.Errorf("expected opcode %02X to be defined", opcode)
			continue
		}
		t.Run(instruction.Name(), func(t *testing.T) {
			c, _ := newTestCPU(t, opcode, 0x00, 0x00)
			c.SetPair(PairHL, 0xC000)
			if flags, ok := conditional(opcode); ok {
				c.F = flags
			}
			if cycles := step(t, c); cycles != timing*4 {
				t.Errorf("%02X: expected %d cycles, got %d", opcode, timing*4, cycles)
			}
		})
	}

	for i, timing := range cbTimings {
		opcode := uint8(i)
		instruction, ok := DecodeCB(opcode)
		if !ok {
			t.Errorf("expected opcode CB %02X to be defined", opcode)
			continue
		}
		t.Run(instruction.Name(), func(t *testing.T) {
			c, _ := newTestCPU(t, PrefixCB, opcode)
			c.SetPair(PairHL, 0xC000)
			if cycles := step(t, c); cycles != timing*4 {
				t.Errorf("CB %02X: expected %d cycles, got %d", opcode, timing*4, cycles)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	t.Run("undefined", func(t *testing.T) {
		undefined := map[uint8]bool{
			0xCB: true, 0xD3: true, 0xDB: true, 0xDD: true, 0xE3: true, 0xE4: true,
			0xEB: true, 0xEC: true, 0xED: true, 0xF4: true, 0xFC: true, 0xFD: true,
		}
		for i := 0; i < 256; i++ {
			opcode := uint8(i)
			instruction, ok := Decode(opcode)
			if ok == undefined[opcode] {
				t.Errorf("%02X: expected defined to be %v", opcode, !undefined[opcode])
			}
			if ok && instruction.Name() == "" {
				t.Errorf("%02X: expected a name", opcode)
			}
			if _, ok := DecodeCB(opcode); !ok {
				t.Errorf("CB %02X: expected every extended opcode to be defined", opcode)
			}
		}
	})
	t.Run("names", func(t *testing.T) {
		tests := []struct {
			opcode uint8
			cb     bool
			name   string
		}{
			{0x00, false, "NOP"},
			{0x21, false, "LD HL, d16"},
			{0x41, false, "LD B, C"},
			{0x7E, false, "LD A, (HL)"},
			{0x9E, false, "SBC A, (HL)"},
			{0xC5, false, "PUSH BC"},
			{0xF1, false, "POP AF"},
			{0x20, false, "JR NZ, r8"},
			{0xFF, false, "RST 38H"},
			{0x11, true, "RL C"},
			{0x7C, true, "BIT 7, H"},
			{0xFE, true, "SET 7, (HL)"},
		}
		for _, tt := range tests {
			decode := Decode
			if tt.cb {
				decode = DecodeCB
			}
			instruction, _ := decode(tt.opcode)
			if instruction.Name() != tt.name {
				t.Errorf("%02X: expected %q, got %q", tt.opcode, tt.name, instruction.Name())
			}
		}
	})
	t.Run("access", func(t *testing.T) {
		for i := 0; i < 256; i++ {
			instruction, ok := Decode(uint8(i))
			if !ok {
				continue
			}
			// every instruction reading an operand or going through (HL)
			// must carry the memory handler
			name := instruction.Name()
			needsMemory := strings.Contains(name, "(") || strings.Contains(name, "d8") ||
				strings.Contains(name, "d16") || strings.Contains(name, "a16") || strings.Contains(name, "r8")
			if needsMemory && instruction.Access() != AccessMemory {
				t.Errorf("%02X %s: expected memory access, got %s", i, name, instruction.Access())
			}
		}
	})
}
