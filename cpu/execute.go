package cpu

import (
	"log"
)

// Execute executes the opcode at PC, including any operand bytes that follow it.
//
// On success PC is advanced past the instruction, or set to the target of a
// taken branch. A reserved opcode under RESERVED_TRAP leaves all state
// untouched and returns an *ErrOpcode.
func (cpu *Cpu) Execute(opcode uint8) (err error) {
	inst := &InstructionSet[opcode]

	pc := cpu.Pc
	next_pc := pc + Address(inst.Size)

	var data8 uint8
	var data16 uint16
	switch inst.Size {
	case 2:
		data8 = cpu.Memory.Read(pc + 1)
	case 3:
		data16 = cpu.Memory.ReadWord(pc + 1)
	}

	if cpu.Verbose {
		switch inst.Size {
		case 2:
			log.Printf("%04x: %02x %02x    %v", uint16(pc), opcode, data8, inst)
		case 3:
			log.Printf("%04x: %02x %02x %02x %v", uint16(pc), opcode, data16&0xff, data16>>8, inst)
		default:
			log.Printf("%04x: %02x       %v", uint16(pc), opcode, inst)
		}
	}

	switch inst.Kind {
	case OP_RESERVED:
		if cpu.Reserved != RESERVED_NOP {
			err = &ErrOpcode{Opcode: opcode, Pc: pc}
			return
		}
		if cpu.Verbose {
			log.Printf("cpu: reserved opcode 0x%02x ignored", opcode)
		}
	case OP_NOP:
		// pass
	case OP_LXI:
		cpu.SetPair(inst.Pair, data16)
	case OP_STAX:
		cpu.Memory.Write(Address(cpu.GetPair(inst.Pair)), cpu.A)
	case OP_LDAX:
		cpu.A = cpu.Memory.Read(Address(cpu.GetPair(inst.Pair)))
	case OP_INX:
		cpu.SetPair(inst.Pair, cpu.GetPair(inst.Pair)+1)
	case OP_DCX:
		cpu.SetPair(inst.Pair, cpu.GetPair(inst.Pair)-1)
	case OP_INR:
		ref := cpu.operand(inst.Dst)
		*ref = cpu.inr(*ref)
	case OP_DCR:
		ref := cpu.operand(inst.Dst)
		*ref = cpu.dcr(*ref)
	case OP_MOV:
		value := cpu.source(inst, data8)
		*cpu.operand(inst.Dst) = value
	case OP_RLC, OP_RRC, OP_RAL, OP_RAR:
		cpu.rotate(inst.Kind)
	case OP_DAD:
		cpu.dad(cpu.GetPair(inst.Pair))
	case OP_SHLD:
		cpu.Memory.WriteWord(Address(data16), cpu.HL())
	case OP_LHLD:
		cpu.SetHL(cpu.Memory.ReadWord(Address(data16)))
	case OP_STA:
		cpu.Memory.Write(Address(data16), cpu.A)
	case OP_LDA:
		cpu.A = cpu.Memory.Read(Address(data16))
	case OP_DAA:
		cpu.daa()
	case OP_CMA:
		cpu.A = ^cpu.A
	case OP_STC:
		cpu.Flags.CY = true
	case OP_CMC:
		cpu.Flags.CY = !cpu.Flags.CY
	case OP_HLT:
		cpu.status = STATUS_HALTED
	case OP_ADD, OP_ADC, OP_SUB, OP_SBB, OP_ANA, OP_XRA, OP_ORA, OP_CMP:
		cpu.alu(inst.Kind, cpu.source(inst, data8))
	case OP_JMP:
		if cpu.Flags.Test(inst.Cond) {
			next_pc = Address(data16)
		}
	case OP_CALL:
		if cpu.Flags.Test(inst.Cond) {
			cpu.Push(uint16(next_pc))
			next_pc = Address(data16)
		}
	case OP_RET:
		if cpu.Flags.Test(inst.Cond) {
			next_pc = Address(cpu.Pop())
		}
	case OP_RST:
		cpu.Push(uint16(next_pc))
		next_pc = inst.Vector
	case OP_PUSH:
		cpu.Push(cpu.GetPair(inst.Pair))
	case OP_POP:
		cpu.SetPair(inst.Pair, cpu.Pop())
	case OP_XTHL:
		hl := cpu.HL()
		cpu.SetHL(cpu.Peek())
		cpu.Memory.WriteWord(cpu.Sp, hl)
	case OP_XCHG:
		hl := cpu.HL()
		cpu.SetHL(cpu.DE())
		cpu.SetDE(hl)
	case OP_PCHL:
		next_pc = Address(cpu.HL())
	case OP_SPHL:
		cpu.Sp = Address(cpu.HL())
	case OP_OUT, OP_IN:
		// No devices are attached; the port operand is consumed.
		if cpu.Verbose {
			log.Printf("cpu: %v port 0x%02x ignored", inst.Kind, data8)
		}
	case OP_DI:
		cpu.InterruptEnable = false
	case OP_EI:
		cpu.InterruptEnable = true
	}

	cpu.Pc = next_pc
	cpu.Ticks++

	return
}

// source returns the 8-bit source operand: the immediate byte for the
// two byte forms, otherwise the Src register.
func (cpu *Cpu) source(inst *Instruction, data8 uint8) uint8 {
	if inst.Size == 2 {
		return data8
	}

	return *cpu.operand(inst.Src)
}

func (cpu *Cpu) inr(value uint8) (res uint8) {
	res = value + 1
	cpu.Flags.zsp(uint16(res))
	cpu.Flags.AC = AuxCarry(value, 1, 0)
	return
}

func (cpu *Cpu) dcr(value uint8) (res uint8) {
	res = value - 1
	cpu.Flags.zsp(uint16(res))
	cpu.Flags.AC = false
	return
}

// alu performs an accumulator operation.
func (cpu *Cpu) alu(kind Kind, value uint8) {
	a := cpu.A

	var carry uint8
	if cpu.Flags.CY && (kind == OP_ADC || kind == OP_SBB) {
		carry = 1
	}

	switch kind {
	case OP_ADD, OP_ADC:
		res := uint16(a) + uint16(value) + uint16(carry)
		cpu.Flags.arith(res)
		cpu.Flags.AC = AuxCarry(a, value, carry)
		cpu.A = uint8(res)
	case OP_SUB, OP_SBB:
		res := uint16(a) - uint16(value) - uint16(carry)
		cpu.Flags.arith(res)
		cpu.Flags.AC = false
		cpu.A = uint8(res)
	case OP_ANA:
		cpu.A = a & value
		cpu.Flags.logic(cpu.A)
	case OP_XRA:
		cpu.A = a ^ value
		cpu.Flags.logic(cpu.A)
	case OP_ORA:
		cpu.A = a | value
		cpu.Flags.logic(cpu.A)
	case OP_CMP:
		res := uint16(a) - uint16(value)
		cpu.Flags.zsp(res)
		cpu.Flags.CY = a < value
		cpu.Flags.AC = false
	}
}

// rotate the accumulator. Only CY is affected.
func (cpu *Cpu) rotate(kind Kind) {
	a := cpu.A

	var cy uint8
	if cpu.Flags.CY {
		cy = 1
	}

	switch kind {
	case OP_RLC:
		cpu.A = (a << 1) | (a >> 7)
		cpu.Flags.CY = (a & 0x80) != 0
	case OP_RRC:
		cpu.A = (a >> 1) | (a << 7)
		cpu.Flags.CY = (a & 0x01) != 0
	case OP_RAL:
		cpu.A = (a << 1) | cy
		cpu.Flags.CY = (a & 0x80) != 0
	case OP_RAR:
		cpu.A = (a >> 1) | (cy << 7)
		cpu.Flags.CY = (a & 0x01) != 0
	}
}

// dad adds a pair to HL. Only CY is affected.
func (cpu *Cpu) dad(value uint16) {
	res := uint32(cpu.HL()) + uint32(value)
	cpu.Flags.CY = CarryWord(res)
	cpu.SetHL(uint16(res))
}

// daa adjusts the accumulator to packed BCD after an addition.
func (cpu *Cpu) daa() {
	a := cpu.A
	lsb := a & 0x0f
	msb := a >> 4

	cy := cpu.Flags.CY
	var correction uint8
	if cpu.Flags.AC || lsb > 9 {
		correction |= 0x06
	}
	if cpu.Flags.CY || msb > 9 || (msb >= 9 && lsb > 9) {
		correction |= 0x60
		cy = true
	}

	res := uint16(a) + uint16(correction)
	cpu.Flags.zsp(res)
	cpu.Flags.AC = AuxCarry(a, correction, 0)
	cpu.Flags.CY = cy
	cpu.A = uint8(res)
}
