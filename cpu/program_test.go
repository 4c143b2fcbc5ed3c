package cpu

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{
			{LineNo: 1, Pc: 0x100, Words: []string{"MVI", "A", "1"}, Bytes: []byte{0x3e, 0x01}},
			{LineNo: 2, Pc: 0x102, Words: []string{"HLT"}, Bytes: []byte{0x76}},
		},
	}

	dbg := prog.Debug(0x101)
	if assert.NotNil(dbg.Opcode) {
		assert.Equal(1, dbg.LineNo)
		assert.Equal(1, dbg.Index)
	}

	dbg = prog.Debug(0x102)
	if assert.NotNil(dbg.Opcode) {
		assert.Equal(2, dbg.LineNo)
		assert.Equal(0, dbg.Index)
	}

	dbg = prog.Debug(0x103)
	assert.Nil(dbg.Opcode)

	dbg = prog.Debug(0x0ff)
	assert.Nil(dbg.Opcode)
}

func TestProgram_Bytes(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{
			{Pc: 0x200, Bytes: []byte{0xc3, 0x00, 0x01}},
			{Pc: 0x100, Bytes: []byte{0x76}},
		},
	}

	bytes := maps.Collect(prog.Bytes())
	assert.Equal(map[Address]uint8{
		0x200: 0xc3,
		0x201: 0x00,
		0x202: 0x01,
		0x100: 0x76,
	}, bytes)

	// Early termination.
	count := 0
	for range prog.Bytes() {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(2, count)
}

func TestProgram_Binary(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{
			{Pc: 0x104, Bytes: []byte{0x76}},
			{Pc: 0x100, Bytes: []byte{0x00, 0x00}},
			{Pc: 0x200, Bytes: nil},
			{Pc: 0x000, Bytes: []byte{}},
		},
	}

	base, image := prog.Binary()
	assert.Equal(Address(0x100), base)
	assert.Equal([]byte{0x00, 0x00, 0x00, 0x00, 0x76}, image)

	prog = &Program{
		Opcodes: []Opcode{
			{Pc: 0xfffe, Bytes: []byte{0x12, 0x34}},
		},
	}
	base, image = prog.Binary()
	assert.Equal(Address(0xfffe), base)
	assert.Equal([]byte{0x12, 0x34}, image)
}

func TestProgram_NewImage(t *testing.T) {
	assert := assert.New(t)

	prog := NewImage(0x100, countdown)

	base, image := prog.Binary()
	assert.Equal(Address(0x100), base)
	assert.Equal(countdown, image)

	dbg := prog.Debug(0x104)
	if assert.NotNil(dbg.Opcode) {
		assert.Equal(0, dbg.LineNo)
		assert.Equal(4, dbg.Index)
	}
}
