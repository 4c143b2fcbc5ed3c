package cpu

import (
	"math/bits"
)

// Program status word flag bits.
const (
	FLAG_Z   = uint8(0b0000_0001) // Zero
	FLAG_S   = uint8(0b0000_0010) // Sign
	FLAG_P   = uint8(0b0000_0100) // Parity (even)
	FLAG_CY  = uint8(0b0000_1000) // Carry
	FLAG_AC  = uint8(0b0001_0000) // Auxiliary carry
	FLAG_ALL = uint8(0b0001_1111) // Mask of all defined flags.
)

// Flags holds the five condition flags.
type Flags struct {
	Z  bool // Zero
	S  bool // Sign
	P  bool // Parity (even)
	CY bool // Carry
	AC bool // Auxiliary carry, out of bit 3
}

// Byte packs the flags into the low five bits of the program status word.
func (fl Flags) Byte() (psw uint8) {
	for _, bit := range []struct {
		set  bool
		mask uint8
	}{
		{fl.Z, FLAG_Z},
		{fl.S, FLAG_S},
		{fl.P, FLAG_P},
		{fl.CY, FLAG_CY},
		{fl.AC, FLAG_AC},
	} {
		if bit.set {
			psw |= bit.mask
		}
	}

	return
}

// SetByte unpacks a program status word. Bits 5-7 are ignored.
func (fl *Flags) SetByte(psw uint8) {
	fl.Z = (psw & FLAG_Z) != 0
	fl.S = (psw & FLAG_S) != 0
	fl.P = (psw & FLAG_P) != 0
	fl.CY = (psw & FLAG_CY) != 0
	fl.AC = (psw & FLAG_AC) != 0
}

// Test evaluates a branch condition.
func (fl Flags) Test(cond Cond) bool {
	switch cond {
	case COND_NZ:
		return !fl.Z
	case COND_Z:
		return fl.Z
	case COND_NC:
		return !fl.CY
	case COND_C:
		return fl.CY
	case COND_PO:
		return !fl.P
	case COND_PE:
		return fl.P
	case COND_P:
		return !fl.S
	case COND_M:
		return fl.S
	}

	return true
}

// String renders set flags as letters, clear flags as '-'.
func (fl Flags) String() string {
	out := []byte("-----")
	for n, bit := range []struct {
		set    bool
		letter byte
	}{
		{fl.S, 'S'},
		{fl.Z, 'Z'},
		{fl.AC, 'A'},
		{fl.P, 'P'},
		{fl.CY, 'C'},
	} {
		if bit.set {
			out[n] = bit.letter
		}
	}
	return string(out)
}

// Zero is set when the low 8 bits of a result are zero.
func Zero(res uint16) bool {
	return (res & 0xff) == 0
}

// Sign is bit 7 of a result.
func Sign(res uint16) bool {
	return (res & 0x80) != 0
}

// Parity is set when the low 8 bits of a result have an even number of set bits.
func Parity(res uint16) bool {
	return (bits.OnesCount8(uint8(res)) & 1) == 0
}

// Carry is set when an 8-bit result does not fit in 8 bits.
// Subtractions computed in 16 bits wrap, so a borrow also sets it.
func Carry(res uint16) bool {
	return res > 0xff
}

// CarryWord is set when a 16-bit result does not fit in 16 bits.
func CarryWord(res uint32) bool {
	return res > 0xffff
}

// AuxCarry is set when the low nibbles of an addition, plus carry in, carry into bit 4.
func AuxCarry(a, b uint8, carry uint8) bool {
	return (a&0xf)+(b&0xf)+carry > 0xf
}

// zsp sets Zero, Sign and Parity from a result.
func (fl *Flags) zsp(res uint16) {
	fl.Z = Zero(res)
	fl.S = Sign(res)
	fl.P = Parity(res)
}

// arith sets Zero, Sign, Parity and Carry from a result.
func (fl *Flags) arith(res uint16) {
	fl.zsp(res)
	fl.CY = Carry(res)
}

// logic sets Zero, Sign and Parity from a result, and clears both carries.
func (fl *Flags) logic(res uint8) {
	fl.zsp(uint16(res))
	fl.CY = false
	fl.AC = false
}
