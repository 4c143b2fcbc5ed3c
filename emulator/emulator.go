// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator runs an assembled program on the 8080 CPU.
package emulator

import (
	"context"
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/i8080/cpu"
	"github.com/ezrec/i8080/internal"
)

const (
	STACK_TOP = 0x0000 // Default initial SP; the first push lands at 0xfffe.
)

var _emulator_defines = map[string]string{
	"STACK_TOP": fmt.Sprintf("0x%04x", STACK_TOP),
}

// Emulator state. CPU plus the program loaded into it.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	Entry    int         // Initial PC. If negative, the program's base address.
	Stack    cpu.Address // Initial SP.
	MaxTicks int         // If positive, Run stops after this many instructions.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
		Entry:   -1,
		Stack:   STACK_TOP,
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.MergeDefines(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// Reset the CPU, and load the program into memory.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	emu.Cpu.Reset()

	base, image := emu.Program.Binary()
	err = emu.Cpu.Load(base, image)
	if err != nil {
		return
	}

	if emu.Entry >= 0 {
		emu.Cpu.Pc = cpu.Address(emu.Entry)
	}
	emu.Cpu.Sp = emu.Stack

	if emu.Verbose {
		log.Printf("emulator: entry 0x%04x, stack 0x%04x", uint16(emu.Cpu.Pc), uint16(emu.Cpu.Sp))
	}

	return
}

// LineNo returns the current line number for the executing opcode.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Cpu.Pc)
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.LineNo
}

// Checksum returns a hash of the entire memory image.
func (emu *Emulator) Checksum() uint64 {
	return emu.Cpu.Memory.Checksum()
}

// Tick executes a single instruction. done is set once the CPU has
// halted or faulted.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	pc := emu.Cpu.Pc
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Pc: uint16(pc), Err: err}
		}
	}()

	status, err := emu.Cpu.Step()
	done = status != cpu.STATUS_RUNNING

	return
}

// Run ticks the emulator until the CPU halts or faults, ctx is done,
// or MaxTicks instructions have executed.
func (emu *Emulator) Run(ctx context.Context) (err error) {
	for {
		err = ctx.Err()
		if err != nil {
			return
		}

		if emu.MaxTicks > 0 && emu.Cpu.Ticks >= emu.MaxTicks {
			err = &ErrRuntime{LineNo: emu.LineNo(), Pc: uint16(emu.Cpu.Pc), Err: ErrTickLimit}
			return
		}

		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			return
		}
	}
}
