// Package disasm renders 8080 machine code as assembly text.
package disasm

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/ezrec/i8080/cpu"
)

// Policy selects how reserved opcode bytes are rendered.
type Policy int

//go:generate go tool stringer -linecomment -type=Policy
const (
	POLICY_ERROR = Policy(0) // error
	POLICY_NOP   = Policy(1) // nop
)

// Disassembler decodes instructions using cpu.InstructionSet.
type Disassembler struct {
	Verbose bool   // If set, log each decoded instruction.
	Policy  Policy // Rendering of reserved opcodes.
}

// Disassemble decodes the instruction at code[offset].
//
// The text is the mnemonic padded to seven columns, followed by the operand
// prefix and any data as $xx or $xxxx. Operand-less opcodes are the bare
// mnemonic. Size is the encoded length, clipped to the end of code for a
// truncated instruction.
func (dis *Disassembler) Disassemble(code []byte, offset int) (text string, size int, err error) {
	if offset < 0 || offset >= len(code) {
		err = ErrOffsetRange
		return
	}

	opcode := code[offset]
	inst := &cpu.InstructionSet[opcode]
	size = inst.Size

	if inst.Kind == cpu.OP_RESERVED {
		switch dis.Policy {
		case POLICY_NOP:
			text = "NOP"
		default:
			text = "-"
			err = ErrOpcodeUnknown
		}
		return
	}

	text = fmt.Sprintf("%-7s%s", inst.Mnemonic, inst.Args)

	remain := len(code) - offset
	if size > remain {
		size = remain
		text = strings.TrimRight(text, " ")
		err = ErrTruncated
		return
	}

	switch size {
	case 1:
		text = strings.TrimRight(text, " ")
	case 2:
		text += fmt.Sprintf("$%02x", code[offset+1])
	case 3:
		text += fmt.Sprintf("$%02x%02x", code[offset+2], code[offset+1])
	}

	if dis.Verbose {
		log.Printf("disasm: %04x: %v", offset, text)
	}

	return
}

// Listing writes one line per instruction in code, as
//
//	addr | bytes    | text
//
// where addr is base plus the offset of the instruction. Reserved opcodes do
// not stop the listing; a truncated final instruction returns ErrTruncated
// after its line is written.
func (dis *Disassembler) Listing(w io.Writer, code []byte, base uint16) (err error) {
	for offset := 0; offset < len(code); {
		text, size, derr := dis.Disassemble(code, offset)
		if derr != nil && !errors.Is(derr, ErrOpcodeUnknown) && !errors.Is(derr, ErrTruncated) {
			err = derr
			return
		}

		var hex strings.Builder
		for _, value := range code[offset : offset+size] {
			fmt.Fprintf(&hex, "%02x ", value)
		}

		_, err = fmt.Fprintf(w, "%04x | %-9s| %s\n", base+uint16(offset), hex.String(), text)
		if err != nil {
			return
		}

		if errors.Is(derr, ErrTruncated) {
			err = derr
			return
		}

		offset += size
	}

	return
}
