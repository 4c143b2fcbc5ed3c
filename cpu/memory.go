package cpu

import (
	"fmt"
	"io"
	"strings"

	"github.com/cespare/xxhash"
)

const (
	MEMORY_SIZE = 0x10000 // Size of the address space, in bytes.
)

// Address is a location in the 16-bit address space.
// All arithmetic on an Address wraps modulo MEMORY_SIZE.
type Address uint16

// Memory is the flat memory image spanning the whole address space.
type Memory [MEMORY_SIZE]uint8

// Read a byte.
func (mem *Memory) Read(addr Address) uint8 {
	return mem[addr]
}

// Write a byte.
func (mem *Memory) Write(addr Address, value uint8) {
	mem[addr] = value
}

// Cell returns a reference to the byte at addr.
func (mem *Memory) Cell(addr Address) *uint8 {
	return &mem[addr]
}

// ReadWord reads a little-endian 16-bit word.
func (mem *Memory) ReadWord(addr Address) uint16 {
	return uint16(mem[addr]) | (uint16(mem[addr+1]) << 8)
}

// WriteWord writes a little-endian 16-bit word.
func (mem *Memory) WriteWord(addr Address, value uint16) {
	mem[addr] = uint8(value & 0xff)
	mem[addr+1] = uint8(value >> 8)
}

// Load copies an image into memory at base.
// Images that would run past the end of the address space are rejected.
func (mem *Memory) Load(base Address, image []byte) (err error) {
	if int(base)+len(image) > MEMORY_SIZE {
		err = ErrImageSize
		return
	}

	copy(mem[base:], image)

	return
}

// Checksum returns the xxhash of the entire memory image.
func (mem *Memory) Checksum() uint64 {
	return xxhash.Sum64(mem[:])
}

// Dump writes a hexdump of length bytes starting at start, width bytes per row.
func (mem *Memory) Dump(w io.Writer, start Address, length int, width int) (err error) {
	if width <= 0 {
		width = 16
	}

	for row := 0; row < length; row += width {
		var line strings.Builder
		fmt.Fprintf(&line, "%04x ", uint16(start)+uint16(row))
		for n := 0; n < width && row+n < length; n++ {
			fmt.Fprintf(&line, " %02x", mem.Read(start+Address(row+n)))
		}
		line.WriteString("\n")
		_, err = io.WriteString(w, line.String())
		if err != nil {
			return
		}
	}

	return
}
