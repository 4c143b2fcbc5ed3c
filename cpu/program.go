package cpu

import (
	"iter"
)

// Link is a label reference to be patched into an opcode's bytes.
type Link struct {
	Offset int    // Offset into Opcode.Bytes.
	Size   int    // Width of the reference, 1 or 2 bytes.
	Label  string // Label to resolve.
}

// Opcode is a single assembled line.
type Opcode struct {
	LineNo int      // Source line number.
	Pc     Address  // Address of the first byte.
	Words  []string // Source words, after equate substitution.
	Bytes  []byte   // Encoded bytes.
	Links  []Link   // Label references, resolved at the end of assembly.
}

// Program is the output of the assembler.
type Program struct {
	Opcodes []Opcode
}

// Debug locates the opcode that encodes the byte at pc.
type Debug struct {
	*Opcode
	Index int // Offset of pc into Opcode.Bytes.
}

// Debug returns the opcode covering pc. If no opcode covers pc,
// the returned Debug has a nil Opcode.
func (prog *Program) Debug(pc Address) (dbg Debug) {
	for n, op := range prog.Opcodes {
		start := int(op.Pc)
		if int(pc) >= start && int(pc) < start+len(op.Bytes) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  int(pc) - start,
			}
			break
		}
	}

	return
}

// Bytes iterates over every assembled byte, in source order.
func (prog *Program) Bytes() iter.Seq2[Address, uint8] {
	return func(yield func(pc Address, value uint8) bool) {
		for _, op := range prog.Opcodes {
			for n, value := range op.Bytes {
				if !yield(op.Pc+Address(n), value) {
					return
				}
			}
		}
	}
}

// Binary returns the memory image spanning the lowest to highest
// assembled address. Gaps between .org regions are zero filled.
func (prog *Program) Binary() (base Address, image []byte) {
	low := MEMORY_SIZE
	high := 0
	for _, op := range prog.Opcodes {
		if len(op.Bytes) == 0 {
			continue
		}
		low = min(low, int(op.Pc))
		high = max(high, int(op.Pc)+len(op.Bytes))
	}

	if high <= low {
		return
	}

	base = Address(low)
	image = make([]byte, high-low)
	for _, op := range prog.Opcodes {
		if len(op.Bytes) == 0 {
			continue
		}
		copy(image[int(op.Pc)-low:], op.Bytes)
	}

	return
}

// NewImage returns a program holding a raw memory image at base.
// The program carries no source lines.
func NewImage(base Address, image []byte) (prog *Program) {
	prog = &Program{
		Opcodes: []Opcode{
			{Pc: base, Bytes: image},
		},
	}

	return
}
