package cpu

// The stack lives in memory and grows downward. Sp addresses the low byte of
// the most recently pushed word; words are stored little-endian.

// Push a word onto the stack.
func (cpu *Cpu) Push(value uint16) {
	cpu.Sp -= 2
	cpu.Memory.WriteWord(cpu.Sp, value)
}

// Pop a word from the stack.
func (cpu *Cpu) Pop() (value uint16) {
	value = cpu.Peek()
	cpu.Sp += 2
	return
}

// Peek at the word on the top of the stack.
func (cpu *Cpu) Peek() uint16 {
	return cpu.Memory.ReadWord(cpu.Sp)
}
