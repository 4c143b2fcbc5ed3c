package disasm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/i8080/cpu"
)

func TestDisassemble(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		code []byte
		text string
	}){
		{[]byte{0x00}, "NOP"},
		{[]byte{0x41}, "MOV    B, C"},
		{[]byte{0x7e}, "MOV    A, M"},
		{[]byte{0x06, 0x2a}, "MVI    B, #$2a"},
		{[]byte{0x01, 0x34, 0x12}, "LXI    B, #$1234"},
		{[]byte{0x31, 0xff, 0x00}, "LXI    SP, #$00ff"},
		{[]byte{0xc3, 0xcd, 0xab}, "JMP    $abcd"},
		{[]byte{0x32, 0x00, 0x40}, "STA    $4000"},
		{[]byte{0xc6, 0x01}, "ADI    #$01"},
		{[]byte{0xd3, 0x10}, "OUT    #$10"},
		{[]byte{0xf5}, "PUSH   PSW"},
		{[]byte{0xdf}, "RST    3"},
		{[]byte{0x76}, "HLT"},
		{[]byte{0xeb}, "XCHG"},
	}

	dis := &Disassembler{}
	for _, entry := range table {
		text, size, err := dis.Disassemble(entry.code, 0)
		assert.NoError(err)
		assert.Equal(entry.text, text)
		assert.Equal(len(entry.code), size)
	}
}

func TestDisassemble_Sizes(t *testing.T) {
	assert := assert.New(t)

	dis := &Disassembler{Policy: POLICY_NOP}
	for code := range 256 {
		buf := []byte{uint8(code), 0x00, 0x00}
		_, size, err := dis.Disassemble(buf, 0)
		assert.NoError(err)
		assert.Equal(cpu.InstructionSet[code].Size, size, "0x%02x", code)
	}
}

func TestDisassemble_Policy(t *testing.T) {
	assert := assert.New(t)

	dis := &Disassembler{}

	text, size, err := dis.Disassemble([]byte{0x08}, 0)
	assert.ErrorIs(err, ErrOpcodeUnknown)
	assert.Equal("-", text)
	assert.Equal(1, size)

	dis.Policy = POLICY_NOP
	text, size, err = dis.Disassemble([]byte{0xdd}, 0)
	assert.NoError(err)
	assert.Equal("NOP", text)
	assert.Equal(1, size)
}

func TestDisassemble_Bounds(t *testing.T) {
	assert := assert.New(t)

	dis := &Disassembler{}

	text, size, err := dis.Disassemble([]byte{0x00, 0xc3, 0x00}, 1)
	assert.ErrorIs(err, ErrTruncated)
	assert.Equal("JMP", text)
	assert.Equal(2, size)

	_, _, err = dis.Disassemble([]byte{0x00}, 1)
	assert.ErrorIs(err, ErrOffsetRange)

	_, _, err = dis.Disassemble([]byte{0x00}, -1)
	assert.ErrorIs(err, ErrOffsetRange)
}

func TestListing(t *testing.T) {
	assert := assert.New(t)

	code := []byte{
		0x06, 0x00, // MVI B, 0
		0x08,             // reserved
		0xc2, 0x04, 0x01, // JNZ 0104
		0x76, // HLT
	}

	buf := &bytes.Buffer{}
	dis := &Disassembler{}
	err := dis.Listing(buf, code, 0x100)
	assert.NoError(err)
	assert.Equal(""+
		"0100 | 06 00    | MVI    B, #$00\n"+
		"0102 | 08       | -\n"+
		"0103 | c2 04 01 | JNZ    $0104\n"+
		"0106 | 76       | HLT\n",
		buf.String())

	buf.Reset()
	err = dis.Listing(buf, []byte{0x00, 0xcd, 0x00}, 0)
	assert.ErrorIs(err, ErrTruncated)
	assert.Equal(""+
		"0000 | 00       | NOP\n"+
		"0001 | cd 00    | CALL\n",
		buf.String())
}
