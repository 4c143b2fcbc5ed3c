package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// testCpu returns a CPU with code at 0x0100, SP at 0x2000, and HL at 0x3000.
func testCpu(code ...byte) (cpu *Cpu) {
	cpu = NewCpu()
	cpu.Sp = 0x2000
	cpu.SetHL(0x3000)
	err := cpu.Load(0x100, code)
	if err != nil {
		panic(err)
	}
	return
}

// step executes one instruction, expecting it to succeed.
func step(t *testing.T, cpu *Cpu) {
	status, err := cpu.Step()
	assert.NoError(t, err)
	assert.Equal(t, STATUS_RUNNING, status)
}

func TestExecute_Alu(t *testing.T) {
	assert := assert.New(t)

	kinds := []Kind{OP_ADD, OP_ADC, OP_SUB, OP_SBB, OP_ANA, OP_XRA, OP_ORA, OP_CMP}

	table := [](struct {
		kind     Kind
		a        uint8
		value    uint8
		cy       bool
		expected uint8
		flags    Flags
	}){
		{OP_ADD, 0x14, 0x42, false, 0x56, Flags{P: true}},
		{OP_ADD, 0xff, 0x01, false, 0x00, Flags{Z: true, P: true, CY: true, AC: true}},
		{OP_ADD, 0x0f, 0x01, false, 0x10, Flags{AC: true}},
		{OP_ADD, 0x0e, 0x01, false, 0x0f, Flags{P: true}},
		{OP_ADD, 0x0e, 0x01, true, 0x0f, Flags{P: true}},
		{OP_ADC, 0x3d, 0x42, true, 0x80, Flags{S: true, AC: true}},
		{OP_ADC, 0x0e, 0x01, true, 0x10, Flags{AC: true}},
		{OP_ADC, 0xff, 0x00, true, 0x00, Flags{Z: true, P: true, CY: true, AC: true}},
		{OP_SUB, 0x3e, 0x3e, false, 0x00, Flags{Z: true, P: true}},
		{OP_SUB, 0x01, 0x02, false, 0xff, Flags{S: true, P: true, CY: true}},
		{OP_SUB, 0x10, 0x01, true, 0x0f, Flags{P: true}},
		{OP_SBB, 0x04, 0x02, true, 0x01, Flags{}},
		{OP_SBB, 0x00, 0xff, true, 0x00, Flags{Z: true, P: true, CY: true}},
		{OP_ANA, 0xfc, 0x0f, true, 0x0c, Flags{P: true}},
		{OP_XRA, 0x5c, 0x5c, true, 0x00, Flags{Z: true, P: true}},
		{OP_ORA, 0x33, 0x0f, true, 0x3f, Flags{P: true}},
		{OP_CMP, 0x0a, 0x05, true, 0x0a, Flags{P: true}},
		{OP_CMP, 0x02, 0x05, false, 0x02, Flags{S: true, CY: true}},
		{OP_CMP, 0x42, 0x42, true, 0x42, Flags{Z: true, P: true}},
	}

	for _, entry := range table {
		index := 0
		for n, kind := range kinds {
			if kind == entry.kind {
				index = n
			}
		}

		// Register source (B), memory source (M), and immediate source.
		reg := uint8(0x80 | index<<3 | int(REG_B))
		mem := uint8(0x80 | index<<3 | int(REG_M))
		imm := uint8(0xc6 | index<<3)

		for _, code := range [][]byte{{reg}, {mem}, {imm, entry.value}} {
			cpu := testCpu(code...)
			cpu.A = entry.a
			cpu.B = entry.value
			cpu.Memory.Write(0x3000, entry.value)
			cpu.Flags.CY = entry.cy

			step(t, cpu)
			assert.Equal(entry.expected, cpu.A, "%v 0x%02x", entry.kind, code[0])
			assert.Equal(entry.flags, cpu.Flags, "%v 0x%02x", entry.kind, code[0])
			assert.Equal(Address(0x100+len(code)), cpu.Pc)
		}
	}
}

func TestExecute_IncrementDecrement(t *testing.T) {
	assert := assert.New(t)

	for reg := REG_B; reg <= REG_A; reg++ {
		inr := uint8(0x04 | int(reg)<<3)
		dcr := uint8(0x05 | int(reg)<<3)

		for _, cy := range []bool{false, true} {
			cpu := testCpu(inr, dcr, dcr, inr)
			cpu.Flags.CY = cy
			*cpu.operand(reg) = 0x0f

			step(t, cpu)
			assert.Equal(uint8(0x10), *cpu.operand(reg), "%v", reg)
			assert.True(cpu.Flags.AC, "%v", reg)
			assert.Equal(cy, cpu.Flags.CY)

			step(t, cpu)
			assert.Equal(uint8(0x0f), *cpu.operand(reg), "%v", reg)
			assert.False(cpu.Flags.AC, "%v", reg)
			assert.Equal(cy, cpu.Flags.CY)

			*cpu.operand(reg) = 0x00
			step(t, cpu)
			assert.Equal(uint8(0xff), *cpu.operand(reg), "%v", reg)
			assert.Equal(Flags{S: true, P: true, CY: cy}, cpu.Flags)

			step(t, cpu)
			assert.Equal(uint8(0x00), *cpu.operand(reg), "%v", reg)
			assert.Equal(Flags{Z: true, P: true, CY: cy, AC: true}, cpu.Flags)
		}
	}
}

func TestExecute_PairIncrementDecrement(t *testing.T) {
	assert := assert.New(t)

	for pair := PAIR_BC; pair <= PAIR_SP; pair++ {
		inx := uint8(0x03 | int(pair)<<4)
		dcx := uint8(0x0b | int(pair)<<4)

		cpu := testCpu(inx, dcx, dcx, inx)
		flags := Flags{S: true, CY: true, AC: true}
		cpu.Flags = flags

		cpu.SetPair(pair, 0xffff)
		step(t, cpu)
		assert.Equal(uint16(0x0000), cpu.GetPair(pair), "%v", pair)
		assert.Equal(flags, cpu.Flags)

		step(t, cpu)
		assert.Equal(uint16(0xffff), cpu.GetPair(pair), "%v", pair)
		assert.Equal(flags, cpu.Flags)

		cpu.SetPair(pair, 0x1234)
		step(t, cpu)
		step(t, cpu)
		assert.Equal(uint16(0x1234), cpu.GetPair(pair), "%v", pair)
		assert.Equal(flags, cpu.Flags)
	}
}

func TestExecute_DoubleAdd(t *testing.T) {
	assert := assert.New(t)

	// DAD B
	cpu := testCpu(0x09)
	cpu.SetHL(0xffff)
	cpu.SetBC(0x0001)
	cpu.Flags.Z = true
	step(t, cpu)
	assert.Equal(uint16(0x0000), cpu.HL())
	assert.Equal(Flags{Z: true, CY: true}, cpu.Flags)

	// DAD H
	cpu = testCpu(0x29)
	cpu.SetHL(0x1234)
	cpu.Flags.CY = true
	step(t, cpu)
	assert.Equal(uint16(0x2468), cpu.HL())
	assert.False(cpu.Flags.CY)

	// DAD SP
	cpu = testCpu(0x39)
	cpu.SetHL(0x0100)
	step(t, cpu)
	assert.Equal(uint16(0x2100), cpu.HL())
}

func TestExecute_Rotate(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		code     uint8
		a        uint8
		cy       bool
		expected uint8
		carry    bool
	}){
		{0x07, 0xf2, false, 0xe5, true}, // RLC
		{0x07, 0x01, true, 0x02, false}, // RLC
		{0x0f, 0xf2, true, 0x79, false}, // RRC
		{0x0f, 0x01, false, 0x80, true}, // RRC
		{0x17, 0xb5, false, 0x6a, true}, // RAL
		{0x17, 0x00, true, 0x01, false}, // RAL
		{0x1f, 0x6a, true, 0xb5, false}, // RAR
		{0x1f, 0x01, false, 0x00, true}, // RAR
	}

	for _, entry := range table {
		cpu := testCpu(entry.code)
		cpu.A = entry.a
		cpu.Flags.CY = entry.cy
		cpu.Flags.Z = true

		step(t, cpu)
		assert.Equal(entry.expected, cpu.A, "0x%02x", entry.code)
		assert.Equal(entry.carry, cpu.Flags.CY, "0x%02x", entry.code)
		assert.True(cpu.Flags.Z)
	}
}

func TestExecute_DecimalAdjust(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		a        uint8
		flags    Flags
		expected uint8
		result   Flags
	}){
		{0x9b, Flags{}, 0x01, Flags{CY: true, AC: true}},
		{0x15, Flags{}, 0x15, Flags{}},
		{0x0a, Flags{}, 0x10, Flags{AC: true}},
		{0x12, Flags{AC: true}, 0x18, Flags{P: true}},
		{0x20, Flags{CY: true}, 0x80, Flags{S: true, CY: true}},
	}

	for _, entry := range table {
		cpu := testCpu(0x27)
		cpu.A = entry.a
		cpu.Flags = entry.flags

		step(t, cpu)
		assert.Equal(entry.expected, cpu.A, "0x%02x", entry.a)
		assert.Equal(entry.result, cpu.Flags, "0x%02x", entry.a)
	}
}

func TestExecute_Accumulator(t *testing.T) {
	assert := assert.New(t)

	// CMA, STC, CMC, CMC
	cpu := testCpu(0x2f, 0x37, 0x3f, 0x3f)
	cpu.A = 0x51

	step(t, cpu)
	assert.Equal(uint8(0xae), cpu.A)
	assert.Equal(Flags{}, cpu.Flags)

	step(t, cpu)
	assert.True(cpu.Flags.CY)
	step(t, cpu)
	assert.False(cpu.Flags.CY)
	step(t, cpu)
	assert.True(cpu.Flags.CY)
}

func TestExecute_Move(t *testing.T) {
	assert := assert.New(t)

	cpu := testCpu(
		0x3e, 0x42, // MVI A, 0x42
		0x77,       // MOV M, A
		0x46,       // MOV B, M
		0x48,       // MOV C, B
		0x36, 0x99, // MVI M, 0x99
		0x7e, // MOV A, M
		0x40, // MOV B, B
	)

	step(t, cpu)
	assert.Equal(uint8(0x42), cpu.A)
	step(t, cpu)
	assert.Equal(uint8(0x42), cpu.Memory.Read(0x3000))
	step(t, cpu)
	assert.Equal(uint8(0x42), cpu.B)
	step(t, cpu)
	assert.Equal(uint8(0x42), cpu.C)
	step(t, cpu)
	assert.Equal(uint8(0x99), cpu.Memory.Read(0x3000))
	step(t, cpu)
	assert.Equal(uint8(0x99), cpu.A)
	step(t, cpu)
	assert.Equal(uint8(0x42), cpu.B)

	assert.Equal(Flags{}, cpu.Flags)
	assert.Equal(Address(0x109), cpu.Pc)
}

func TestExecute_LoadStore(t *testing.T) {
	assert := assert.New(t)

	cpu := testCpu(
		0x01, 0x00, 0x40, // LXI B, 0x4000
		0x11, 0x01, 0x40, // LXI D, 0x4001
		0x21, 0xcd, 0xab, // LXI H, 0xabcd
		0x31, 0x00, 0x30, // LXI SP, 0x3000
		0x22, 0x00, 0x40, // SHLD 0x4000
		0x0a,             // LDAX B
		0x1a,             // LDAX D
		0x32, 0x10, 0x40, // STA 0x4010
		0x02,             // STAX B
		0x3a, 0x01, 0x40, // LDA 0x4001
		0x12,             // STAX D
		0x2a, 0x00, 0x40, // LHLD 0x4000
	)

	step(t, cpu)
	assert.Equal(uint16(0x4000), cpu.BC())
	step(t, cpu)
	assert.Equal(uint16(0x4001), cpu.DE())
	step(t, cpu)
	assert.Equal(uint16(0xabcd), cpu.HL())
	step(t, cpu)
	assert.Equal(Address(0x3000), cpu.Sp)

	step(t, cpu)
	assert.Equal(uint8(0xcd), cpu.Memory.Read(0x4000))
	assert.Equal(uint8(0xab), cpu.Memory.Read(0x4001))

	step(t, cpu)
	assert.Equal(uint8(0xcd), cpu.A)
	step(t, cpu)
	assert.Equal(uint8(0xab), cpu.A)

	step(t, cpu)
	assert.Equal(uint8(0xab), cpu.Memory.Read(0x4010))
	step(t, cpu)
	assert.Equal(uint8(0xab), cpu.Memory.Read(0x4000))

	step(t, cpu)
	assert.Equal(uint8(0xab), cpu.A)
	cpu.A = 0x12
	step(t, cpu)
	assert.Equal(uint8(0x12), cpu.Memory.Read(0x4001))

	step(t, cpu)
	assert.Equal(uint16(0x12ab), cpu.HL())

	assert.Equal(Flags{}, cpu.Flags)
}

func TestExecute_Exchange(t *testing.T) {
	assert := assert.New(t)

	// XCHG, XTHL
	cpu := testCpu(0xeb, 0xe3)
	cpu.SetHL(0x1111)
	cpu.SetDE(0x2222)
	cpu.Memory.WriteWord(0x2000, 0x3333)

	step(t, cpu)
	assert.Equal(uint16(0x2222), cpu.HL())
	assert.Equal(uint16(0x1111), cpu.DE())

	step(t, cpu)
	assert.Equal(uint16(0x3333), cpu.HL())
	assert.Equal(uint16(0x2222), cpu.Memory.ReadWord(0x2000))
	assert.Equal(Address(0x2000), cpu.Sp)
}

func TestExecute_PushPop(t *testing.T) {
	assert := assert.New(t)

	for _, pair := range []Pair{PAIR_BC, PAIR_DE, PAIR_HL, PAIR_PSW} {
		index := int(pair)
		if pair == PAIR_PSW {
			index = 3
		}
		push := uint8(0xc5 | index<<4)
		pop := uint8(0xc1 | index<<4)

		cpu := testCpu(push, pop)
		value := uint16(0xa51f)
		cpu.SetPair(pair, value)

		step(t, cpu)
		assert.Equal(Address(0x1ffe), cpu.Sp)
		assert.Equal(value, cpu.Peek(), "%v", pair)

		cpu.SetPair(pair, 0)
		step(t, cpu)
		assert.Equal(value, cpu.GetPair(pair), "%v", pair)
		assert.Equal(Address(0x2000), cpu.Sp)
	}
}

func TestExecute_ProgramStatusWord(t *testing.T) {
	assert := assert.New(t)

	// PUSH PSW, POP PSW
	cpu := testCpu(0xf5, 0xf1)
	cpu.A = 0x5a
	cpu.Flags = Flags{Z: true, CY: true, AC: true}

	step(t, cpu)
	assert.Equal(FLAG_Z|FLAG_CY|FLAG_AC, cpu.Memory.Read(0x1ffe))
	assert.Equal(uint8(0x5a), cpu.Memory.Read(0x1fff))

	cpu.A = 0
	cpu.Flags = Flags{S: true, P: true}

	step(t, cpu)
	assert.Equal(uint8(0x5a), cpu.A)
	assert.Equal(Flags{Z: true, CY: true, AC: true}, cpu.Flags)
	assert.Equal(Address(0x2000), cpu.Sp)
}

func TestExecute_CallReturn(t *testing.T) {
	assert := assert.New(t)

	// CALL 0x0200
	cpu := testCpu(0xcd, 0x00, 0x02)
	// RET
	cpu.Memory.Write(0x200, 0xc9)

	step(t, cpu)
	assert.Equal(Address(0x200), cpu.Pc)
	assert.Equal(Address(0x1ffe), cpu.Sp)
	assert.Equal(uint16(0x103), cpu.Peek())

	step(t, cpu)
	assert.Equal(Address(0x103), cpu.Pc)
	assert.Equal(Address(0x2000), cpu.Sp)
}

func TestExecute_Conditional(t *testing.T) {
	assert := assert.New(t)

	conds := []struct {
		cond  Cond
		index int
		taken Flags
		not   Flags
	}{
		{COND_NZ, 0, Flags{}, Flags{Z: true}},
		{COND_Z, 1, Flags{Z: true}, Flags{}},
		{COND_NC, 2, Flags{}, Flags{CY: true}},
		{COND_C, 3, Flags{CY: true}, Flags{}},
		{COND_PO, 4, Flags{}, Flags{P: true}},
		{COND_PE, 5, Flags{P: true}, Flags{}},
		{COND_P, 6, Flags{}, Flags{S: true}},
		{COND_M, 7, Flags{S: true}, Flags{}},
	}

	for _, entry := range conds {
		jump := uint8(0xc2 | entry.index<<3)
		call := uint8(0xc4 | entry.index<<3)
		ret := uint8(0xc0 | entry.index<<3)

		assert.Equal(entry.cond, InstructionSet[jump].Cond)
		assert.Equal(entry.cond, InstructionSet[call].Cond)
		assert.Equal(entry.cond, InstructionSet[ret].Cond)

		// Not taken: operands consumed, stack untouched.
		cpu := testCpu(jump, 0x00, 0x02, call, 0x00, 0x02, ret)
		cpu.Flags = entry.not
		step(t, cpu)
		assert.Equal(Address(0x103), cpu.Pc, "%v", entry.cond)
		step(t, cpu)
		assert.Equal(Address(0x106), cpu.Pc, "%v", entry.cond)
		assert.Equal(Address(0x2000), cpu.Sp)
		step(t, cpu)
		assert.Equal(Address(0x107), cpu.Pc, "%v", entry.cond)
		assert.Equal(Address(0x2000), cpu.Sp)

		// Taken jump.
		cpu = testCpu(jump, 0x00, 0x02)
		cpu.Flags = entry.taken
		step(t, cpu)
		assert.Equal(Address(0x200), cpu.Pc, "%v", entry.cond)
		assert.Equal(Address(0x2000), cpu.Sp)

		// Taken call, then taken return.
		cpu = testCpu(call, 0x00, 0x02)
		cpu.Memory.Write(0x200, ret)
		cpu.Flags = entry.taken
		step(t, cpu)
		assert.Equal(Address(0x200), cpu.Pc, "%v", entry.cond)
		assert.Equal(Address(0x1ffe), cpu.Sp)
		assert.Equal(uint16(0x103), cpu.Peek())
		step(t, cpu)
		assert.Equal(Address(0x103), cpu.Pc, "%v", entry.cond)
		assert.Equal(Address(0x2000), cpu.Sp)
	}
}

func TestExecute_Restart(t *testing.T) {
	assert := assert.New(t)

	for n := range 8 {
		cpu := testCpu(uint8(0xc7 | n<<3))
		step(t, cpu)
		assert.Equal(Address(n*8), cpu.Pc)
		assert.Equal(Address(0x1ffe), cpu.Sp)
		assert.Equal(uint16(0x101), cpu.Peek())
	}
}

func TestExecute_Indirect(t *testing.T) {
	assert := assert.New(t)

	// SPHL, PCHL
	cpu := testCpu(0xf9, 0xe9)
	cpu.SetHL(0x4000)

	step(t, cpu)
	assert.Equal(Address(0x4000), cpu.Sp)

	step(t, cpu)
	assert.Equal(Address(0x4000), cpu.Pc)
}

func TestExecute_Control(t *testing.T) {
	assert := assert.New(t)

	// EI, OUT 0x10, IN 0x20, DI, NOP, HLT
	cpu := testCpu(0xfb, 0xd3, 0x10, 0xdb, 0x20, 0xf3, 0x00, 0x76)
	cpu.A = 0x77

	step(t, cpu)
	assert.True(cpu.InterruptEnable)
	step(t, cpu)
	assert.Equal(Address(0x103), cpu.Pc)
	step(t, cpu)
	assert.Equal(Address(0x105), cpu.Pc)
	assert.Equal(uint8(0x77), cpu.A)
	step(t, cpu)
	assert.False(cpu.InterruptEnable)
	step(t, cpu)
	assert.Equal(Address(0x107), cpu.Pc)

	status, err := cpu.Step()
	assert.NoError(err)
	assert.Equal(STATUS_HALTED, status)
	assert.Equal(Address(0x108), cpu.Pc)
	assert.Equal(Flags{}, cpu.Flags)
}

func TestExecute_Wrap(t *testing.T) {
	assert := assert.New(t)

	// NOP at the top of memory wraps PC to zero.
	cpu := NewCpu()
	cpu.Pc = 0xffff
	step(t, cpu)
	assert.Equal(Address(0x0000), cpu.Pc)

	// An address operand straddling the top of memory wraps.
	cpu = NewCpu()
	cpu.Pc = 0xfffe
	cpu.Memory.Write(0xfffe, 0xc3) // JMP
	cpu.Memory.Write(0xffff, 0x34)
	cpu.Memory.Write(0x0000, 0x12)
	step(t, cpu)
	assert.Equal(Address(0x1234), cpu.Pc)
}
