package cpu

import (
	"fmt"
	"strings"
)

// Kind is the operation performed by an instruction.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	OP_RESERVED = Kind(0)  // reserved
	OP_NOP      = Kind(1)  // nop
	OP_LXI      = Kind(2)  // lxi
	OP_STAX     = Kind(3)  // stax
	OP_LDAX     = Kind(4)  // ldax
	OP_INX      = Kind(5)  // inx
	OP_DCX      = Kind(6)  // dcx
	OP_INR      = Kind(7)  // inr
	OP_DCR      = Kind(8)  // dcr
	OP_MOV      = Kind(9)  // mov
	OP_RLC      = Kind(10) // rlc
	OP_RRC      = Kind(11) // rrc
	OP_RAL      = Kind(12) // ral
	OP_RAR      = Kind(13) // rar
	OP_DAD      = Kind(14) // dad
	OP_SHLD     = Kind(15) // shld
	OP_LHLD     = Kind(16) // lhld
	OP_STA      = Kind(17) // sta
	OP_LDA      = Kind(18) // lda
	OP_DAA      = Kind(19) // daa
	OP_CMA      = Kind(20) // cma
	OP_STC      = Kind(21) // stc
	OP_CMC      = Kind(22) // cmc
	OP_HLT      = Kind(23) // hlt
	OP_ADD      = Kind(24) // add
	OP_ADC      = Kind(25) // adc
	OP_SUB      = Kind(26) // sub
	OP_SBB      = Kind(27) // sbb
	OP_ANA      = Kind(28) // ana
	OP_XRA      = Kind(29) // xra
	OP_ORA      = Kind(30) // ora
	OP_CMP      = Kind(31) // cmp
	OP_JMP      = Kind(32) // jmp
	OP_CALL     = Kind(33) // call
	OP_RET      = Kind(34) // ret
	OP_RST      = Kind(35) // rst
	OP_PUSH     = Kind(36) // push
	OP_POP      = Kind(37) // pop
	OP_XTHL     = Kind(38) // xthl
	OP_XCHG     = Kind(39) // xchg
	OP_PCHL     = Kind(40) // pchl
	OP_SPHL     = Kind(41) // sphl
	OP_OUT      = Kind(42) // out
	OP_IN       = Kind(43) // in
	OP_DI       = Kind(44) // di
	OP_EI       = Kind(45) // ei
)

// Instruction describes the decode of a single opcode byte.
//
// Register and immediate forms of the same operation share a Kind; a Size of 2
// on an 8-bit operation (MVI, ADI, ACI, ...) selects the immediate byte as the
// source operand.
type Instruction struct {
	Kind     Kind     // Operation performed.
	Size     int      // Encoded length, in bytes.
	Dst      Register // Destination register.
	Src      Register // Source register.
	Pair     Pair     // Register pair operand.
	Cond     Cond     // Branch condition.
	Vector   Address  // Restart vector.
	Mnemonic string   // Assembly mnemonic.
	Args     string   // Assembly operands, '#' marking immediate data.
}

// Operands returns the register operands, as written in assembly.
func (inst *Instruction) Operands() (ops []string) {
	args := strings.TrimSpace(strings.TrimSuffix(inst.Args, "#"))
	args = strings.TrimSuffix(args, ",")
	if len(args) == 0 {
		return
	}

	for _, op := range strings.Split(args, ",") {
		ops = append(ops, strings.TrimSpace(op))
	}

	return
}

// String returns the assembly language template of the instruction.
func (inst *Instruction) String() string {
	text := inst.Mnemonic
	if len(inst.Args) != 0 {
		text = fmt.Sprintf("%-7s%s", text, inst.Args)
	}
	switch inst.Size {
	case 2:
		text += "$nn"
	case 3:
		if len(inst.Args) == 0 {
			text = fmt.Sprintf("%-7s", text)
		}
		text += "$nnnn"
	}
	return text
}

// InstructionSet decodes every opcode byte.
var InstructionSet = [256]Instruction{
	0x00: {OP_NOP, 1, 0, 0, 0, COND_ALWAYS, 0, "NOP", ""},
	0x01: {OP_LXI, 3, 0, 0, PAIR_BC, COND_ALWAYS, 0, "LXI", "B, #"},
	0x02: {OP_STAX, 1, 0, 0, PAIR_BC, COND_ALWAYS, 0, "STAX", "B"},
	0x03: {OP_INX, 1, 0, 0, PAIR_BC, COND_ALWAYS, 0, "INX", "B"},
	0x04: {OP_INR, 1, REG_B, 0, 0, COND_ALWAYS, 0, "INR", "B"},
	0x05: {OP_DCR, 1, REG_B, 0, 0, COND_ALWAYS, 0, "DCR", "B"},
	0x06: {OP_MOV, 2, REG_B, 0, 0, COND_ALWAYS, 0, "MVI", "B, #"},
	0x07: {OP_RLC, 1, 0, 0, 0, COND_ALWAYS, 0, "RLC", ""},
	0x08: {OP_RESERVED, 1, 0, 0, 0, COND_ALWAYS, 0, "-", ""},
	0x09: {OP_DAD, 1, 0, 0, PAIR_BC, COND_ALWAYS, 0, "DAD", "B"},
	0x0A: {OP_LDAX, 1, 0, 0, PAIR_BC, COND_ALWAYS, 0, "LDAX", "B"},
	0x0B: {OP_DCX, 1, 0, 0, PAIR_BC, COND_ALWAYS, 0, "DCX", "B"},
	0x0C: {OP_INR, 1, REG_C, 0, 0, COND_ALWAYS, 0, "INR", "C"},
	0x0D: {OP_DCR, 1, REG_C, 0, 0, COND_ALWAYS, 0, "DCR", "C"},
	0x0E: {OP_MOV, 2, REG_C, 0, 0, COND_ALWAYS, 0, "MVI", "C, #"},
	0x0F: {OP_RRC, 1, 0, 0, 0, COND_ALWAYS, 0, "RRC", ""},
	0x10: {OP_RESERVED, 1, 0, 0, 0, COND_ALWAYS, 0, "-", ""},
	0x11: {OP_LXI, 3, 0, 0, PAIR_DE, COND_ALWAYS, 0, "LXI", "D, #"},
	0x12: {OP_STAX, 1, 0, 0, PAIR_DE, COND_ALWAYS, 0, "STAX", "D"},
	0x13: {OP_INX, 1, 0, 0, PAIR_DE, COND_ALWAYS, 0, "INX", "D"},
	0x14: {OP_INR, 1, REG_D, 0, 0, COND_ALWAYS, 0, "INR", "D"},
	0x15: {OP_DCR, 1, REG_D, 0, 0, COND_ALWAYS, 0, "DCR", "D"},
	0x16: {OP_MOV, 2, REG_D, 0, 0, COND_ALWAYS, 0, "MVI", "D, #"},
	0x17: {OP_RAL, 1, 0, 0, 0, COND_ALWAYS, 0, "RAL", ""},
	0x18: {OP_RESERVED, 1, 0, 0, 0, COND_ALWAYS, 0, "-", ""},
	0x19: {OP_DAD, 1, 0, 0, PAIR_DE, COND_ALWAYS, 0, "DAD", "D"},
	0x1A: {OP_LDAX, 1, 0, 0, PAIR_DE, COND_ALWAYS, 0, "LDAX", "D"},
	0x1B: {OP_DCX, 1, 0, 0, PAIR_DE, COND_ALWAYS, 0, "DCX", "D"},
	0x1C: {OP_INR, 1, REG_E, 0, 0, COND_ALWAYS, 0, "INR", "E"},
	0x1D: {OP_DCR, 1, REG_E, 0, 0, COND_ALWAYS, 0, "DCR", "E"},
	0x1E: {OP_MOV, 2, REG_E, 0, 0, COND_ALWAYS, 0, "MVI", "E, #"},
	0x1F: {OP_RAR, 1, 0, 0, 0, COND_ALWAYS, 0, "RAR", ""},
	0x20: {OP_RESERVED, 1, 0, 0, 0, COND_ALWAYS, 0, "-", ""},
	0x21: {OP_LXI, 3, 0, 0, PAIR_HL, COND_ALWAYS, 0, "LXI", "H, #"},
	0x22: {OP_SHLD, 3, 0, 0, 0, COND_ALWAYS, 0, "SHLD", ""},
	0x23: {OP_INX, 1, 0, 0, PAIR_HL, COND_ALWAYS, 0, "INX", "H"},
	0x24: {OP_INR, 1, REG_H, 0, 0, COND_ALWAYS, 0, "INR", "H"},
	0x25: {OP_DCR, 1, REG_H, 0, 0, COND_ALWAYS, 0, "DCR", "H"},
	0x26: {OP_MOV, 2, REG_H, 0, 0, COND_ALWAYS, 0, "MVI", "H, #"},
	0x27: {OP_DAA, 1, 0, 0, 0, COND_ALWAYS, 0, "DAA", ""},
	0x28: {OP_RESERVED, 1, 0, 0, 0, COND_ALWAYS, 0, "-", ""},
	0x29: {OP_DAD, 1, 0, 0, PAIR_HL, COND_ALWAYS, 0, "DAD", "H"},
	0x2A: {OP_LHLD, 3, 0, 0, 0, COND_ALWAYS, 0, "LHLD", ""},
	0x2B: {OP_DCX, 1, 0, 0, PAIR_HL, COND_ALWAYS, 0, "DCX", "H"},
	0x2C: {OP_INR, 1, REG_L, 0, 0, COND_ALWAYS, 0, "INR", "L"},
	0x2D: {OP_DCR, 1, REG_L, 0, 0, COND_ALWAYS, 0, "DCR", "L"},
	0x2E: {OP_MOV, 2, REG_L, 0, 0, COND_ALWAYS, 0, "MVI", "L, #"},
	0x2F: {OP_CMA, 1, 0, 0, 0, COND_ALWAYS, 0, "CMA", ""},
	0x30: {OP_RESERVED, 1, 0, 0, 0, COND_ALWAYS, 0, "-", ""},
	0x31: {OP_LXI, 3, 0, 0, PAIR_SP, COND_ALWAYS, 0, "LXI", "SP, #"},
	0x32: {OP_STA, 3, 0, 0, 0, COND_ALWAYS, 0, "STA", ""},
	0x33: {OP_INX, 1, 0, 0, PAIR_SP, COND_ALWAYS, 0, "INX", "SP"},
	0x34: {OP_INR, 1, REG_M, 0, 0, COND_ALWAYS, 0, "INR", "M"},
	0x35: {OP_DCR, 1, REG_M, 0, 0, COND_ALWAYS, 0, "DCR", "M"},
	0x36: {OP_MOV, 2, REG_M, 0, 0, COND_ALWAYS, 0, "MVI", "M, #"},
	0x37: {OP_STC, 1, 0, 0, 0, COND_ALWAYS, 0, "STC", ""},
	0x38: {OP_RESERVED, 1, 0, 0, 0, COND_ALWAYS, 0, "-", ""},
	0x39: {OP_DAD, 1, 0, 0, PAIR_SP, COND_ALWAYS, 0, "DAD", "SP"},
	0x3A: {OP_LDA, 3, 0, 0, 0, COND_ALWAYS, 0, "LDA", ""},
	0x3B: {OP_DCX, 1, 0, 0, PAIR_SP, COND_ALWAYS, 0, "DCX", "SP"},
	0x3C: {OP_INR, 1, REG_A, 0, 0, COND_ALWAYS, 0, "INR", "A"},
	0x3D: {OP_DCR, 1, REG_A, 0, 0, COND_ALWAYS, 0, "DCR", "A"},
	0x3E: {OP_MOV, 2, REG_A, 0, 0, COND_ALWAYS, 0, "MVI", "A, #"},
	0x3F: {OP_CMC, 1, 0, 0, 0, COND_ALWAYS, 0, "CMC", ""},
	0x40: {OP_MOV, 1, REG_B, REG_B, 0, COND_ALWAYS, 0, "MOV", "B, B"},
	0x41: {OP_MOV, 1, REG_B, REG_C, 0, COND_ALWAYS, 0, "MOV", "B, C"},
	0x42: {OP_MOV, 1, REG_B, REG_D, 0, COND_ALWAYS, 0, "MOV", "B, D"},
	0x43: {OP_MOV, 1, REG_B, REG_E, 0, COND_ALWAYS, 0, "MOV", "B, E"},
	0x44: {OP_MOV, 1, REG_B, REG_H, 0, COND_ALWAYS, 0, "MOV", "B, H"},
	0x45: {OP_MOV, 1, REG_B, REG_L, 0, COND_ALWAYS, 0, "MOV", "B, L"},
	0x46: {OP_MOV, 1, REG_B, REG_M, 0, COND_ALWAYS, 0, "MOV", "B, M"},
	0x47: {OP_MOV, 1, REG_B, REG_A, 0, COND_ALWAYS, 0, "MOV", "B, A"},
	0x48: {OP_MOV, 1, REG_C, REG_B, 0, COND_ALWAYS, 0, "MOV", "C, B"},
	0x49: {OP_MOV, 1, REG_C, REG_C, 0, COND_ALWAYS, 0, "MOV", "C, C"},
	0x4A: {OP_MOV, 1, REG_C, REG_D, 0, COND_ALWAYS, 0, "MOV", "C, D"},
	0x4B: {OP_MOV, 1, REG_C, REG_E, 0, COND_ALWAYS, 0, "MOV", "C, E"},
	0x4C: {OP_MOV, 1, REG_C, REG_H, 0, COND_ALWAYS, 0, "MOV", "C, H"},
	0x4D: {OP_MOV, 1, REG_C, REG_L, 0, COND_ALWAYS, 0, "MOV", "C, L"},
	0x4E: {OP_MOV, 1, REG_C, REG_M, 0, COND_ALWAYS, 0, "MOV", "C, M"},
	0x4F: {OP_MOV, 1, REG_C, REG_A, 0, COND_ALWAYS, 0, "MOV", "C, A"},
	0x50: {OP_MOV, 1, REG_D, REG_B, 0, COND_ALWAYS, 0, "MOV", "D, B"},
	0x51: {OP_MOV, 1, REG_D, REG_C, 0, COND_ALWAYS, 0, "MOV", "D, C"},
	0x52: {OP_MOV, 1, REG_D, REG_D, 0, COND_ALWAYS, 0, "MOV", "D, D"},
	0x53: {OP_MOV, 1, REG_D, REG_E, 0, COND_ALWAYS, 0, "MOV", "D, E"},
	0x54: {OP_MOV, 1, REG_D, REG_H, 0, COND_ALWAYS, 0, "MOV", "D, H"},
	0x55: {OP_MOV, 1, REG_D, REG_L, 0, COND_ALWAYS, 0, "MOV", "D, L"},
	0x56: {OP_MOV, 1, REG_D, REG_M, 0, COND_ALWAYS, 0, "MOV", "D, M"},
	0x57: {OP_MOV, 1, REG_D, REG_A, 0, COND_ALWAYS, 0, "MOV", "D, A"},
	0x58: {OP_MOV, 1, REG_E, REG_B, 0, COND_ALWAYS, 0, "MOV", "E, B"},
	0x59: {OP_MOV, 1, REG_E, REG_C, 0, COND_ALWAYS, 0, "MOV", "E, C"},
	0x5A: {OP_MOV, 1, REG_E, REG_D, 0, COND_ALWAYS, 0, "MOV", "E, D"},
	0x5B: {OP_MOV, 1, REG_E, REG_E, 0, COND_ALWAYS, 0, "MOV", "E, E"},
	0x5C: {OP_MOV, 1, REG_E, REG_H, 0, COND_ALWAYS, 0, "MOV", "E, H"},
	0x5D: {OP_MOV, 1, REG_E, REG_L, 0, COND_ALWAYS, 0, "MOV", "E, L"},
	0x5E: {OP_MOV, 1, REG_E, REG_M, 0, COND_ALWAYS, 0, "MOV", "E, M"},
	0x5F: {OP_MOV, 1, REG_E, REG_A, 0, COND_ALWAYS, 0, "MOV", "E, A"},
	0x60: {OP_MOV, 1, REG_H, REG_B, 0, COND_ALWAYS, 0, "MOV", "H, B"},
	0x61: {OP_MOV, 1, REG_H, REG_C, 0, COND_ALWAYS, 0, "MOV", "H, C"},
	0x62: {OP_MOV, 1, REG_H, REG_D, 0, COND_ALWAYS, 0, "MOV", "H, D"},
	0x63: {OP_MOV, 1, REG_H, REG_E, 0, COND_ALWAYS, 0, "MOV", "H, E"},
	0x64: {OP_MOV, 1, REG_H, REG_H, 0, COND_ALWAYS, 0, "MOV", "H, H"},
	0x65: {OP_MOV, 1, REG_H, REG_L, 0, COND_ALWAYS, 0, "MOV", "H, L"},
	0x66: {OP_MOV, 1, REG_H, REG_M, 0, COND_ALWAYS, 0, "MOV", "H, M"},
	0x67: {OP_MOV, 1, REG_H, REG_A, 0, COND_ALWAYS, 0, "MOV", "H, A"},
	0x68: {OP_MOV, 1, REG_L, REG_B, 0, COND_ALWAYS, 0, "MOV", "L, B"},
	0x69: {OP_MOV, 1, REG_L, REG_C, 0, COND_ALWAYS, 0, "MOV", "L, C"},
	0x6A: {OP_MOV, 1, REG_L, REG_D, 0, COND_ALWAYS, 0, "MOV", "L, D"},
	0x6B: {OP_MOV, 1, REG_L, REG_E, 0, COND_ALWAYS, 0, "MOV", "L, E"},
	0x6C: {OP_MOV, 1, REG_L, REG_H, 0, COND_ALWAYS, 0, "MOV", "L, H"},
	0x6D: {OP_MOV, 1, REG_L, REG_L, 0, COND_ALWAYS, 0, "MOV", "L, L"},
	0x6E: {OP_MOV, 1, REG_L, REG_M, 0, COND_ALWAYS, 0, "MOV", "L, M"},
	0x6F: {OP_MOV, 1, REG_L, REG_A, 0, COND_ALWAYS, 0, "MOV", "L, A"},
	0x70: {OP_MOV, 1, REG_M, REG_B, 0, COND_ALWAYS, 0, "MOV", "M, B"},
	0x71: {OP_MOV, 1, REG_M, REG_C, 0, COND_ALWAYS, 0, "MOV", "M, C"},
	0x72: {OP_MOV, 1, REG_M, REG_D, 0, COND_ALWAYS, 0, "MOV", "M, D"},
	0x73: {OP_MOV, 1, REG_M, REG_E, 0, COND_ALWAYS, 0, "MOV", "M, E"},
	0x74: {OP_MOV, 1, REG_M, REG_H, 0, COND_ALWAYS, 0, "MOV", "M, H"},
	0x75: {OP_MOV, 1, REG_M, REG_L, 0, COND_ALWAYS, 0, "MOV", "M, L"},
	0x76: {OP_HLT, 1, 0, 0, 0, COND_ALWAYS, 0, "HLT", ""},
	0x77: {OP_MOV, 1, REG_M, REG_A, 0, COND_ALWAYS, 0, "MOV", "M, A"},
	0x78: {OP_MOV, 1, REG_A, REG_B, 0, COND_ALWAYS, 0, "MOV", "A, B"},
	0x79: {OP_MOV, 1, REG_A, REG_C, 0, COND_ALWAYS, 0, "MOV", "A, C"},
	0x7A: {OP_MOV, 1, REG_A, REG_D, 0, COND_ALWAYS, 0, "MOV", "A, D"},
	0x7B: {OP_MOV, 1, REG_A, REG_E, 0, COND_ALWAYS, 0, "MOV", "A, E"},
	0x7C: {OP_MOV, 1, REG_A, REG_H, 0, COND_ALWAYS, 0, "MOV", "A, H"},
	0x7D: {OP_MOV, 1, REG_A, REG_L, 0, COND_ALWAYS, 0, "MOV", "A, L"},
	0x7E: {OP_MOV, 1, REG_A, REG_M, 0, COND_ALWAYS, 0, "MOV", "A, M"},
	0x7F: {OP_MOV, 1, REG_A, REG_A, 0, COND_ALWAYS, 0, "MOV", "A, A"},
	0x80: {OP_ADD, 1, 0, REG_B, 0, COND_ALWAYS, 0, "ADD", "B"},
	0x81: {OP_ADD, 1, 0, REG_C, 0, COND_ALWAYS, 0, "ADD", "C"},
	0x82: {OP_ADD, 1, 0, REG_D, 0, COND_ALWAYS, 0, "ADD", "D"},
	0x83: {OP_ADD, 1, 0, REG_E, 0, COND_ALWAYS, 0, "ADD", "E"},
	0x84: {OP_ADD, 1, 0, REG_H, 0, COND_ALWAYS, 0, "ADD", "H"},
	0x85: {OP_ADD, 1, 0, REG_L, 0, COND_ALWAYS, 0, "ADD", "L"},
	0x86: {OP_ADD, 1, 0, REG_M, 0, COND_ALWAYS, 0, "ADD", "M"},
	0x87: {OP_ADD, 1, 0, REG_A, 0, COND_ALWAYS, 0, "ADD", "A"},
	0x88: {OP_ADC, 1, 0, REG_B, 0, COND_ALWAYS, 0, "ADC", "B"},
	0x89: {OP_ADC, 1, 0, REG_C, 0, COND_ALWAYS, 0, "ADC", "C"},
	0x8A: {OP_ADC, 1, 0, REG_D, 0, COND_ALWAYS, 0, "ADC", "D"},
	0x8B: {OP_ADC, 1, 0, REG_E, 0, COND_ALWAYS, 0, "ADC", "E"},
	0x8C: {OP_ADC, 1, 0, REG_H, 0, COND_ALWAYS, 0, "ADC", "H"},
	0x8D: {OP_ADC, 1, 0, REG_L, 0, COND_ALWAYS, 0, "ADC", "L"},
	0x8E: {OP_ADC, 1, 0, REG_M, 0, COND_ALWAYS, 0, "ADC", "M"},
	0x8F: {OP_ADC, 1, 0, REG_A, 0, COND_ALWAYS, 0, "ADC", "A"},
	0x90: {OP_SUB, 1, 0, REG_B, 0, COND_ALWAYS, 0, "SUB", "B"},
	0x91: {OP_SUB, 1, 0, REG_C, 0, COND_ALWAYS, 0, "SUB", "C"},
	0x92: {OP_SUB, 1, 0, REG_D, 0, COND_ALWAYS, 0, "SUB", "D"},
	0x93: {OP_SUB, 1, 0, REG_E, 0, COND_ALWAYS, 0, "SUB", "E"},
	0x94: {OP_SUB, 1, 0, REG_H, 0, COND_ALWAYS, 0, "SUB", "H"},
	0x95: {OP_SUB, 1, 0, REG_L, 0, COND_ALWAYS, 0, "SUB", "L"},
	0x96: {OP_SUB, 1, 0, REG_M, 0, COND_ALWAYS, 0, "SUB", "M"},
	0x97: {OP_SUB, 1, 0, REG_A, 0, COND_ALWAYS, 0, "SUB", "A"},
	0x98: {OP_SBB, 1, 0, REG_B, 0, COND_ALWAYS, 0, "SBB", "B"},
	0x99: {OP_SBB, 1, 0, REG_C, 0, COND_ALWAYS, 0, "SBB", "C"},
	0x9A: {OP_SBB, 1, 0, REG_D, 0, COND_ALWAYS, 0, "SBB", "D"},
	0x9B: {OP_SBB, 1, 0, REG_E, 0, COND_ALWAYS, 0, "SBB", "E"},
	0x9C: {OP_SBB, 1, 0, REG_H, 0, COND_ALWAYS, 0, "SBB", "H"},
	0x9D: {OP_SBB, 1, 0, REG_L, 0, COND_ALWAYS, 0, "SBB", "L"},
	0x9E: {OP_SBB, 1, 0, REG_M, 0, COND_ALWAYS, 0, "SBB", "M"},
	0x9F: {OP_SBB, 1, 0, REG_A, 0, COND_ALWAYS, 0, "SBB", "A"},
	0xA0: {OP_ANA, 1, 0, REG_B, 0, COND_ALWAYS, 0, "ANA", "B"},
	0xA1: {OP_ANA, 1, 0, REG_C, 0, COND_ALWAYS, 0, "ANA", "C"},
	0xA2: {OP_ANA, 1, 0, REG_D, 0, COND_ALWAYS, 0, "ANA", "D"},
	0xA3: {OP_ANA, 1, 0, REG_E, 0, COND_ALWAYS, 0, "ANA", "E"},
	0xA4: {OP_ANA, 1, 0, REG_H, 0, COND_ALWAYS, 0, "ANA", "H"},
	0xA5: {OP_ANA, 1, 0, REG_L, 0, COND_ALWAYS, 0, "ANA", "L"},
	0xA6: {OP_ANA, 1, 0, REG_M, 0, COND_ALWAYS, 0, "ANA", "M"},
	0xA7: {OP_ANA, 1, 0, REG_A, 0, COND_ALWAYS, 0, "ANA", "A"},
	0xA8: {OP_XRA, 1, 0, REG_B, 0, COND_ALWAYS, 0, "XRA", "B"},
	0xA9: {OP_XRA, 1, 0, REG_C, 0, COND_ALWAYS, 0, "XRA", "C"},
	0xAA: {OP_XRA, 1, 0, REG_D, 0, COND_ALWAYS, 0, "XRA", "D"},
	0xAB: {OP_XRA, 1, 0, REG_E, 0, COND_ALWAYS, 0, "XRA", "E"},
	0xAC: {OP_XRA, 1, 0, REG_H, 0, COND_ALWAYS, 0, "XRA", "H"},
	0xAD: {OP_XRA, 1, 0, REG_L, 0, COND_ALWAYS, 0, "XRA", "L"},
	0xAE: {OP_XRA, 1, 0, REG_M, 0, COND_ALWAYS, 0, "XRA", "M"},
	0xAF: {OP_XRA, 1, 0, REG_A, 0, COND_ALWAYS, 0, "XRA", "A"},
	0xB0: {OP_ORA, 1, 0, REG_B, 0, COND_ALWAYS, 0, "ORA", "B"},
	0xB1: {OP_ORA, 1, 0, REG_C, 0, COND_ALWAYS, 0, "ORA", "C"},
	0xB2: {OP_ORA, 1, 0, REG_D, 0, COND_ALWAYS, 0, "ORA", "D"},
	0xB3: {OP_ORA, 1, 0, REG_E, 0, COND_ALWAYS, 0, "ORA", "E"},
	0xB4: {OP_ORA, 1, 0, REG_H, 0, COND_ALWAYS, 0, "ORA", "H"},
	0xB5: {OP_ORA, 1, 0, REG_L, 0, COND_ALWAYS, 0, "ORA", "L"},
	0xB6: {OP_ORA, 1, 0, REG_M, 0, COND_ALWAYS, 0, "ORA", "M"},
	0xB7: {OP_ORA, 1, 0, REG_A, 0, COND_ALWAYS, 0, "ORA", "A"},
	0xB8: {OP_CMP, 1, 0, REG_B, 0, COND_ALWAYS, 0, "CMP", "B"},
	0xB9: {OP_CMP, 1, 0, REG_C, 0, COND_ALWAYS, 0, "CMP", "C"},
	0xBA: {OP_CMP, 1, 0, REG_D, 0, COND_ALWAYS, 0, "CMP", "D"},
	0xBB: {OP_CMP, 1, 0, REG_E, 0, COND_ALWAYS, 0, "CMP", "E"},
	0xBC: {OP_CMP, 1, 0, REG_H, 0, COND_ALWAYS, 0, "CMP", "H"},
	0xBD: {OP_CMP, 1, 0, REG_L, 0, COND_ALWAYS, 0, "CMP", "L"},
	0xBE: {OP_CMP, 1, 0, REG_M, 0, COND_ALWAYS, 0, "CMP", "M"},
	0xBF: {OP_CMP, 1, 0, REG_A, 0, COND_ALWAYS, 0, "CMP", "A"},
	0xC0: {OP_RET, 1, 0, 0, 0, COND_NZ, 0, "RNZ", ""},
	0xC1: {OP_POP, 1, 0, 0, PAIR_BC, COND_ALWAYS, 0, "POP", "B"},
	0xC2: {OP_JMP, 3, 0, 0, 0, COND_NZ, 0, "JNZ", ""},
	0xC3: {OP_JMP, 3, 0, 0, 0, COND_ALWAYS, 0, "JMP", ""},
	0xC4: {OP_CALL, 3, 0, 0, 0, COND_NZ, 0, "CNZ", ""},
	0xC5: {OP_PUSH, 1, 0, 0, PAIR_BC, COND_ALWAYS, 0, "PUSH", "B"},
	0xC6: {OP_ADD, 2, 0, 0, 0, COND_ALWAYS, 0, "ADI", "#"},
	0xC7: {OP_RST, 1, 0, 0, 0, COND_ALWAYS, 0x00, "RST", "0"},
	0xC8: {OP_RET, 1, 0, 0, 0, COND_Z, 0, "RZ", ""},
	0xC9: {OP_RET, 1, 0, 0, 0, COND_ALWAYS, 0, "RET", ""},
	0xCA: {OP_JMP, 3, 0, 0, 0, COND_Z, 0, "JZ", ""},
	0xCB: {OP_RESERVED, 1, 0, 0, 0, COND_ALWAYS, 0, "-", ""},
	0xCC: {OP_CALL, 3, 0, 0, 0, COND_Z, 0, "CZ", ""},
	0xCD: {OP_CALL, 3, 0, 0, 0, COND_ALWAYS, 0, "CALL", ""},
	0xCE: {OP_ADC, 2, 0, 0, 0, COND_ALWAYS, 0, "ACI", "#"},
	0xCF: {OP_RST, 1, 0, 0, 0, COND_ALWAYS, 0x08, "RST", "1"},
	0xD0: {OP_RET, 1, 0, 0, 0, COND_NC, 0, "RNC", ""},
	0xD1: {OP_POP, 1, 0, 0, PAIR_DE, COND_ALWAYS, 0, "POP", "D"},
	0xD2: {OP_JMP, 3, 0, 0, 0, COND_NC, 0, "JNC", ""},
	0xD3: {OP_OUT, 2, 0, 0, 0, COND_ALWAYS, 0, "OUT", "#"},
	0xD4: {OP_CALL, 3, 0, 0, 0, COND_NC, 0, "CNC", ""},
	0xD5: {OP_PUSH, 1, 0, 0, PAIR_DE, COND_ALWAYS, 0, "PUSH", "D"},
	0xD6: {OP_SUB, 2, 0, 0, 0, COND_ALWAYS, 0, "SUI", "#"},
	0xD7: {OP_RST, 1, 0, 0, 0, COND_ALWAYS, 0x10, "RST", "2"},
	0xD8: {OP_RET, 1, 0, 0, 0, COND_C, 0, "RC", ""},
	0xD9: {OP_RESERVED, 1, 0, 0, 0, COND_ALWAYS, 0, "-", ""},
	0xDA: {OP_JMP, 3, 0, 0, 0, COND_C, 0, "JC", ""},
	0xDB: {OP_IN, 2, 0, 0, 0, COND_ALWAYS, 0, "IN", "#"},
	0xDC: {OP_CALL, 3, 0, 0, 0, COND_C, 0, "CC", ""},
	0xDD: {OP_RESERVED, 1, 0, 0, 0, COND_ALWAYS, 0, "-", ""},
	0xDE: {OP_SBB, 2, 0, 0, 0, COND_ALWAYS, 0, "SBI", "#"},
	0xDF: {OP_RST, 1, 0, 0, 0, COND_ALWAYS, 0x18, "RST", "3"},
	0xE0: {OP_RET, 1, 0, 0, 0, COND_PO, 0, "RPO", ""},
	0xE1: {OP_POP, 1, 0, 0, PAIR_HL, COND_ALWAYS, 0, "POP", "H"},
	0xE2: {OP_JMP, 3, 0, 0, 0, COND_PO, 0, "JPO", ""},
	0xE3: {OP_XTHL, 1, 0, 0, 0, COND_ALWAYS, 0, "XTHL", ""},
	0xE4: {OP_CALL, 3, 0, 0, 0, COND_PO, 0, "CPO", ""},
	0xE5: {OP_PUSH, 1, 0, 0, PAIR_HL, COND_ALWAYS, 0, "PUSH", "H"},
	0xE6: {OP_ANA, 2, 0, 0, 0, COND_ALWAYS, 0, "ANI", "#"},
	0xE7: {OP_RST, 1, 0, 0, 0, COND_ALWAYS, 0x20, "RST", "4"},
	0xE8: {OP_RET, 1, 0, 0, 0, COND_PE, 0, "RPE", ""},
	0xE9: {OP_PCHL, 1, 0, 0, 0, COND_ALWAYS, 0, "PCHL", ""},
	0xEA: {OP_JMP, 3, 0, 0, 0, COND_PE, 0, "JPE", ""},
	0xEB: {OP_XCHG, 1, 0, 0, 0, COND_ALWAYS, 0, "XCHG", ""},
	0xEC: {OP_CALL, 3, 0, 0, 0, COND_PE, 0, "CPE", ""},
	0xED: {OP_RESERVED, 1, 0, 0, 0, COND_ALWAYS, 0, "-", ""},
	0xEE: {OP_XRA, 2, 0, 0, 0, COND_ALWAYS, 0, "XRI", "#"},
	0xEF: {OP_RST, 1, 0, 0, 0, COND_ALWAYS, 0x28, "RST", "5"},
	0xF0: {OP_RET, 1, 0, 0, 0, COND_P, 0, "RP", ""},
	0xF1: {OP_POP, 1, 0, 0, PAIR_PSW, COND_ALWAYS, 0, "POP", "PSW"},
	0xF2: {OP_JMP, 3, 0, 0, 0, COND_P, 0, "JP", ""},
	0xF3: {OP_DI, 1, 0, 0, 0, COND_ALWAYS, 0, "DI", ""},
	0xF4: {OP_CALL, 3, 0, 0, 0, COND_P, 0, "CP", ""},
	0xF5: {OP_PUSH, 1, 0, 0, PAIR_PSW, COND_ALWAYS, 0, "PUSH", "PSW"},
	0xF6: {OP_ORA, 2, 0, 0, 0, COND_ALWAYS, 0, "ORI", "#"},
	0xF7: {OP_RST, 1, 0, 0, 0, COND_ALWAYS, 0x30, "RST", "6"},
	0xF8: {OP_RET, 1, 0, 0, 0, COND_M, 0, "RM", ""},
	0xF9: {OP_SPHL, 1, 0, 0, 0, COND_ALWAYS, 0, "SPHL", ""},
	0xFA: {OP_JMP, 3, 0, 0, 0, COND_M, 0, "JM", ""},
	0xFB: {OP_EI, 1, 0, 0, 0, COND_ALWAYS, 0, "EI", ""},
	0xFC: {OP_CALL, 3, 0, 0, 0, COND_M, 0, "CM", ""},
	0xFD: {OP_RESERVED, 1, 0, 0, 0, COND_ALWAYS, 0, "-", ""},
	0xFE: {OP_CMP, 2, 0, 0, 0, COND_ALWAYS, 0, "CPI", "#"},
	0xFF: {OP_RST, 1, 0, 0, 0, COND_ALWAYS, 0x38, "RST", "7"},
}
