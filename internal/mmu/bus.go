// Package mmu provides a flat 64KiB memory bus for the CPU.
package mmu

import (
	"fmt"

	"github.com/cespare/xxhash"
)

// Bus is a flat, byte addressable view over the full 16-bit
// address space. Every address is backed by plain storage,
// except for those reserved with ReserveAddress.
type Bus struct {
	data [0x10000]byte

	writeHandlers map[uint16]WriteHandler
}

// WriteHandler is a function that handles writing to a memory address.
// It should return the new value to be written back to the memory address.
type WriteHandler func(byte) byte

// NewBus returns a new Bus with every address zeroed.
func NewBus() *Bus {
	return &Bus{
		writeHandlers: make(map[uint16]WriteHandler),
	}
}

// ReserveAddress reserves a memory address on the bus, routing
// every Write to addr through handler.
func (b *Bus) ReserveAddress(addr uint16, handler WriteHandler) {
	// check to make sure address hasn't already been reserved
	if _, ok := b.writeHandlers[addr]; ok {
		panic(fmt.Sprintf("address %04X has already been reserved", addr))
	}
	b.writeHandlers[addr] = handler
}

// Read returns the value at the given address.
func (b *Bus) Read(addr uint16) byte {
	return b.data[addr]
}

// Write writes the value to the given address, passing it
// through the write handler if one has been reserved.
func (b *Bus) Write(addr uint16, value byte) {
	if handler, ok := b.writeHandlers[addr]; ok {
		value = handler(value)
	}
	b.data[addr] = value
}

// Get gets the value at the specified memory address.
func (b *Bus) Get(addr uint16) byte {
	return b.data[addr]
}

// Set sets the value at the specified memory address. This function
// ignores the write handler and just sets the value.
func (b *Bus) Set(addr uint16, value byte) {
	b.data[addr] = value
}

// SetBit sets the bit at the specified memory address.
func (b *Bus) SetBit(addr uint16, bit byte) {
	b.data[addr] |= bit
}

// ClearBit clears the bit at the specified memory address.
func (b *Bus) ClearBit(addr uint16, bit byte) {
	b.data[addr] &^= bit
}

// TestBit tests the bit at the specified memory address.
func (b *Bus) TestBit(addr uint16, bit byte) bool {
	return b.data[addr]&bit != 0
}

// Load copies data onto the bus starting at offset, bypassing
// any write handlers. Data that would run past 0xFFFF is an error.
func (b *Bus) Load(offset uint16, data []byte) error {
	if int(offset)+len(data) > len(b.data) {
		return fmt.Errorf("mmu: %d bytes at %04X overflow the address space", len(data), offset)
	}
	copy(b.data[offset:], data)
	return nil
}

// Checksum returns the xxhash of the entire address space, used
// to fingerprint the memory image after a run.
func (b *Bus) Checksum() uint64 {
	return xxhash.Sum64(b.data[:])
}
