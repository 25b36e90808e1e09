package cpu

import "testing"

func TestInstruction_JumpRelative(t *testing.T) {
	tests := []struct {
		name     string
		pc       uint16
		offset   uint8
		expected uint16
	}{
		{"backwards", 0x0100, 0xFE, 0x0100},
		{"forwards", 0x0100, 0x05, 0x0107},
		{"zero", 0x0100, 0x00, 0x0102},
		{"minimum", 0x0100, 0x80, 0x0082},
		{"wraps", 0xFFF0, 0x7F, 0x0071},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, b := newTestCPU(t)
			c.PC = tt.pc
			b.Write(tt.pc, 0x18)
			b.Write(tt.pc+1, tt.offset)
			if cycles := step(t, c); cycles != 12 {
				t.Errorf("expected 12 cycles, got %d", cycles)
			}
			if c.PC != tt.expected {
				t.Errorf("expected PC=0x%04X, got 0x%04X", tt.expected, c.PC)
			}
		})
	}
}

func TestInstruction_Conditional(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint8
		flags  Flag
		cycles uint8
		pc     uint16
	}{
		{"JR NZ taken", 0x20, 0, 12, 0x0107},
		{"JR NZ not taken", 0x20, FlagZero, 8, 0x0102},
		{"JR C taken", 0x38, FlagCarry, 12, 0x0107},
		{"JP Z taken", 0xCA, FlagZero, 16, 0x0005},
		{"JP NC not taken", 0xD2, FlagCarry, 12, 0x0103},
		{"CALL NZ taken", 0xC4, 0, 24, 0x0005},
		{"CALL C not taken", 0xDC, 0, 12, 0x0103},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestCPU(t, tt.opcode, 0x05, 0x00)
			c.F = tt.flags
			if cycles := step(t, c); cycles != tt.cycles {
				t.Errorf("expected %d cycles, got %d", tt.cycles, cycles)
			}
			if c.PC != tt.pc {
				t.Errorf("expected PC=0x%04X, got 0x%04X", tt.pc, c.PC)
			}
		})
	}
}

func TestInstruction_CallReturn(t *testing.T) {
	t.Run("CALL RET", func(t *testing.T) {
		c, b := newTestCPU(t)
		c.PC = 0x0200
		b.Write(0x0200, 0xCD)
		b.Write(0x0201, 0x50)
		b.Write(0x0202, 0x01)
		b.Write(0x0150, 0xC9)

		if cycles := step(t, c); cycles != 24 {
			t.Errorf("expected 24 cycles, got %d", cycles)
		}
		if c.PC != 0x0150 || c.SP != 0xFFFC {
			t.Errorf("expected PC=0x0150 SP=0xFFFC, got PC=0x%04X SP=0x%04X", c.PC, c.SP)
		}
		if b.Read(0xFFFD) != 0x02 || b.Read(0xFFFC) != 0x03 {
			t.Errorf("expected 0x0203 on the stack, got %02X%02X", b.Read(0xFFFD), b.Read(0xFFFC))
		}
		if cycles := step(t, c); cycles != 16 {
			t.Errorf("expected 16 cycles, got %d", cycles)
		}
		if c.PC != 0x0203 || c.SP != 0xFFFE {
			t.Errorf("expected PC=0x0203 SP=0xFFFE, got PC=0x%04X SP=0x%04X", c.PC, c.SP)
		}
	})
	t.Run("RET cc", func(t *testing.T) {
		c, b := newTestCPU(t, 0xC8, 0xC0) // RET Z; RET NZ
		c.SP = 0xFFFC
		b.Write(0xFFFC, 0x00)
		b.Write(0xFFFD, 0x40)
		if cycles := step(t, c); cycles != 8 {
			t.Errorf("expected 8 cycles, got %d", cycles)
		}
		if cycles := step(t, c); cycles != 20 {
			t.Errorf("expected 20 cycles, got %d", cycles)
		}
		if c.PC != 0x4000 {
			t.Errorf("expected PC=0x4000, got 0x%04X", c.PC)
		}
	})
	t.Run("RST", func(t *testing.T) {
		for n := uint8(0); n < 8; n++ {
			c, b := newTestCPU(t, 0xC7|n<<3)
			if cycles := step(t, c); cycles != 16 {
				t.Errorf("expected 16 cycles, got %d", cycles)
			}
			if c.PC != uint16(n)*8 {
				t.Errorf("expected PC=0x%04X, got 0x%04X", uint16(n)*8, c.PC)
			}
			if b.Read(0xFFFC) != 0x01 || b.Read(0xFFFD) != 0x01 {
				t.Errorf("expected 0x0101 on the stack")
			}
		}
	})
	t.Run("JP HL", func(t *testing.T) {
		c, _ := newTestCPU(t, 0xE9)
		c.SetPair(PairHL, 0x1234)
		if cycles := step(t, c); cycles != 4 {
			t.Errorf("expected 4 cycles, got %d", cycles)
		}
		if c.PC != 0x1234 {
			t.Errorf("expected PC=0x1234, got 0x%04X", c.PC)
		}
	})
}
