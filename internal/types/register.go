package types

// Register represents a GB Register which is used to hold an 8-bit value.
// The CPU has 8 registers: A, B, C, D, E, H, L, and F. The F register is
// special in that it is used to hold the flags.
type Register = uint8

// Join composes a 16-bit value from a high and a low Register,
// as the CPU does for its register pairs and for little-endian
// operands fetched from memory.
func Join(high, low Register) uint16 {
	return uint16(high)<<8 | uint16(low)
}

// Split decomposes a 16-bit value into its high and low bytes.
func Split(value uint16) (high, low Register) {
	return uint8(value >> 8), uint8(value)
}
