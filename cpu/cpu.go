package cpu

import (
	"context"
	"fmt"
	"iter"
	"log"
	"maps"
)

// Status is the state of the dispatch loop after a step.
type Status int

//go:generate go tool stringer -linecomment -type=Status
const (
	STATUS_RUNNING = Status(0) // running
	STATUS_HALTED  = Status(1) // halted
	STATUS_FAULTED = Status(2) // faulted
)

// ReservedPolicy selects how reserved opcode bytes are handled.
type ReservedPolicy int

//go:generate go tool stringer -linecomment -type=ReservedPolicy
const (
	RESERVED_TRAP = ReservedPolicy(0) // trap
	RESERVED_NOP  = ReservedPolicy(1) // nop
)

var _cpu_defines = map[string]string{
	"MEMORY_SIZE": fmt.Sprintf("0x%x", MEMORY_SIZE),
	"RST0":        "0x00",
	"RST1":        "0x08",
	"RST2":        "0x10",
	"RST3":        "0x18",
	"RST4":        "0x20",
	"RST5":        "0x28",
	"RST6":        "0x30",
	"RST7":        "0x38",
}

// Cpu is the simulation context for the 8080 processor.
type Cpu struct {
	Verbose  bool           // Set to enable verbose logging.
	Reserved ReservedPolicy // Handling of reserved opcodes.

	Registers               // Register file.
	Flags           Flags   // Condition flags.
	Pc              Address // Program counter.
	Sp              Address // Stack pointer.
	InterruptEnable bool    // Interrupt enable latch.
	Memory          Memory  // Memory image.

	Ticks int // Instructions executed since reset.

	status Status // Dispatch loop state.
	fault  error  // Fault that stopped the dispatch loop.
}

// NewCpu creates a new CPU in the reset state.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}

	cpu.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset the CPU state.
// - Clears the registers, flags, and memory.
// - Zeros PC, SP, and the tick counter.
// - Disables interrupts.
// - Returns the dispatch loop to running.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Registers = Registers{}
	cpu.Flags = Flags{}
	cpu.Pc = 0
	cpu.Sp = 0
	cpu.InterruptEnable = false
	clear(cpu.Memory[:])

	cpu.Ticks = 0
	cpu.status = STATUS_RUNNING
	cpu.fault = nil
}

// Load an image into memory at base, and set the PC to base.
func (cpu *Cpu) Load(base Address, image []byte) (err error) {
	err = cpu.Memory.Load(base, image)
	if err != nil {
		return
	}

	cpu.Pc = base

	if cpu.Verbose {
		log.Printf("cpu: loaded %v bytes at 0x%04x", len(image), uint16(base))
	}

	return
}

// Status returns the current dispatch loop state.
func (cpu *Cpu) Status() Status {
	return cpu.status
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{
		"pc", "sp",
		"a", "bc", "de", "hl",
		"flags", "ie",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%04X", uint16(cpu.Pc))
		case "sp":
			strval = fmt.Sprintf("%04X", uint16(cpu.Sp))
		case "a":
			strval = fmt.Sprintf("%02X", cpu.A)
		case "bc":
			strval = fmt.Sprintf("%04X", cpu.BC())
		case "de":
			strval = fmt.Sprintf("%04X", cpu.DE())
		case "hl":
			strval = fmt.Sprintf("%04X", cpu.HL())
		case "flags":
			strval = cpu.Flags.String()
		case "ie":
			strval = "false"
			if cpu.InterruptEnable {
				strval = "true"
			}
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// Step executes the instruction at PC.
//
// Halted and faulted are terminal; stepping a CPU in either state does
// nothing and reports the same status (and fault) again.
func (cpu *Cpu) Step() (status Status, err error) {
	if cpu.status != STATUS_RUNNING {
		return cpu.status, cpu.fault
	}

	err = cpu.Execute(cpu.Memory.Read(cpu.Pc))
	if err != nil {
		cpu.status = STATUS_FAULTED
		cpu.fault = err
	}

	status = cpu.status

	if cpu.Verbose && status != STATUS_RUNNING {
		log.Printf("cpu: %v at 0x%04x", status, uint16(cpu.Pc))
	}

	return
}

// Run steps the CPU until it halts or faults, or ctx is done.
// ctx is only checked between instructions.
func (cpu *Cpu) Run(ctx context.Context) (status Status, err error) {
	for {
		err = ctx.Err()
		if err != nil {
			status = cpu.status
			return
		}

		status, err = cpu.Step()
		if status != STATUS_RUNNING {
			return
		}
	}
}
