package cpu

// Register is an 8-bit operand, numbered as in the instruction encoding.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_B = Register(0) // B
	REG_C = Register(1) // C
	REG_D = Register(2) // D
	REG_E = Register(3) // E
	REG_H = Register(4) // H
	REG_L = Register(5) // L
	REG_M = Register(6) // M
	REG_A = Register(7) // A
)

// Pair is a 16-bit register pair operand.
type Pair int

//go:generate go tool stringer -linecomment -type=Pair
const (
	PAIR_BC  = Pair(0) // B
	PAIR_DE  = Pair(1) // D
	PAIR_HL  = Pair(2) // H
	PAIR_SP  = Pair(3) // SP
	PAIR_PSW = Pair(4) // PSW
)

// Cond is a branch condition.
type Cond int

//go:generate go tool stringer -linecomment -type=Cond
const (
	COND_ALWAYS = Cond(0) // .
	COND_NZ     = Cond(1) // NZ
	COND_Z      = Cond(2) // Z
	COND_NC     = Cond(3) // NC
	COND_C      = Cond(4) // C
	COND_PO     = Cond(5) // PO
	COND_PE     = Cond(6) // PE
	COND_P      = Cond(7) // P
	COND_M      = Cond(8) // M
)

// Registers is the 8-bit register file.
type Registers struct {
	A uint8 // Accumulator.
	B uint8
	C uint8
	D uint8
	E uint8
	H uint8
	L uint8
}

// BC returns the BC pair.
func (r *Registers) BC() uint16 {
	return (uint16(r.B) << 8) | uint16(r.C)
}

// DE returns the DE pair.
func (r *Registers) DE() uint16 {
	return (uint16(r.D) << 8) | uint16(r.E)
}

// HL returns the HL pair.
func (r *Registers) HL() uint16 {
	return (uint16(r.H) << 8) | uint16(r.L)
}

// SetBC sets the BC pair.
func (r *Registers) SetBC(value uint16) {
	r.B, r.C = uint8(value>>8), uint8(value&0xff)
}

// SetDE sets the DE pair.
func (r *Registers) SetDE(value uint16) {
	r.D, r.E = uint8(value>>8), uint8(value&0xff)
}

// SetHL sets the HL pair.
func (r *Registers) SetHL(value uint16) {
	r.H, r.L = uint8(value>>8), uint8(value&0xff)
}

// reference returns the storage of an 8-bit register.
// REG_M has no register storage; see Cpu.operand.
func (r *Registers) reference(reg Register) *uint8 {
	switch reg {
	case REG_B:
		return &r.B
	case REG_C:
		return &r.C
	case REG_D:
		return &r.D
	case REG_E:
		return &r.E
	case REG_H:
		return &r.H
	case REG_L:
		return &r.L
	case REG_A:
		return &r.A
	}

	return nil
}

// operand resolves an 8-bit operand, including the HL addressed memory cell,
// to storage that can be both read and written.
func (cpu *Cpu) operand(reg Register) *uint8 {
	if reg == REG_M {
		return cpu.Memory.Cell(Address(cpu.HL()))
	}

	return cpu.Registers.reference(reg)
}

// GetPair reads a register pair. PAIR_PSW is the accumulator and packed flags.
func (cpu *Cpu) GetPair(pair Pair) (value uint16) {
	switch pair {
	case PAIR_BC:
		value = cpu.BC()
	case PAIR_DE:
		value = cpu.DE()
	case PAIR_HL:
		value = cpu.HL()
	case PAIR_SP:
		value = uint16(cpu.Sp)
	case PAIR_PSW:
		value = (uint16(cpu.A) << 8) | uint16(cpu.Flags.Byte())
	}

	return
}

// SetPair writes a register pair.
func (cpu *Cpu) SetPair(pair Pair, value uint16) {
	switch pair {
	case PAIR_BC:
		cpu.SetBC(value)
	case PAIR_DE:
		cpu.SetDE(value)
	case PAIR_HL:
		cpu.SetHL(value)
	case PAIR_SP:
		cpu.Sp = Address(value)
	case PAIR_PSW:
		cpu.A = uint8(value >> 8)
		cpu.Flags.SetByte(uint8(value & 0xff))
	}
}
