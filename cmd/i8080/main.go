// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"

	"golang.org/x/term"

	"github.com/ezrec/i8080/cpu"
	"github.com/ezrec/i8080/disasm"
	"github.com/ezrec/i8080/emulator"
)

// addressFlag is a 16-bit address flag, in any Go integer syntax.
type addressFlag struct {
	value cpu.Address
	set   bool
}

func (af *addressFlag) String() string {
	return fmt.Sprintf("0x%04x", uint16(af.value))
}

func (af *addressFlag) Set(text string) (err error) {
	value, err := strconv.ParseUint(text, 0, 16)
	if err != nil {
		return
	}
	af.value = cpu.Address(value)
	af.set = true
	return
}

// policyFlag selects the reserved opcode policy by name.
type policyFlag cpu.ReservedPolicy

func (pf *policyFlag) String() string {
	return cpu.ReservedPolicy(*pf).String()
}

func (pf *policyFlag) Set(text string) (err error) {
	for _, policy := range []cpu.ReservedPolicy{cpu.RESERVED_TRAP, cpu.RESERVED_NOP} {
		if policy.String() == text {
			*pf = policyFlag(policy)
			return
		}
	}
	err = fmt.Errorf("unknown policy %q", text)
	return
}

// dumpWidth returns the hexdump row width that fits in cols columns.
// Rows are a multiple of 8 bytes, at least 8 and at most 32.
// Zero columns (not a terminal) returns 0, the Dump default.
func dumpWidth(cols int) (width int) {
	if cols <= 0 {
		return
	}

	width = ((cols - 5) / 3) &^ 7
	width = min(max(width, 8), 32)
	return
}

// terminalWidth returns the width of stdout, or 0 if it is not a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	cols, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return cols
}

func main() {
	var compile string
	var binary string
	var base addressFlag
	var entry addressFlag
	var listing bool
	var save bool
	var output string
	var max_ticks int
	var reserved policyFlag
	var hexdump bool
	var verbose bool

	flag.StringVar(&compile, "c", "", ".asm file to assemble")
	flag.StringVar(&binary, "b", "", "raw binary image to load")
	flag.Var(&base, "base", "load address of a raw binary image")
	flag.Var(&entry, "pc", "initial PC (default: load address)")
	flag.BoolVar(&listing, "d", false, "Disassemble the image, do not execute")
	flag.BoolVar(&save, "s", false, "Save the image to -o, do not execute")
	flag.StringVar(&output, "o", "", "Output file for -s")
	flag.IntVar(&max_ticks, "n", 0, "Maximum instructions to execute (0 is unlimited)")
	flag.Var(&reserved, "u", "Reserved opcode policy: trap or nop")
	flag.BoolVar(&hexdump, "x", false, "Hexdump the image span after execution")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(compile) != 0 && len(binary) != 0 {
		log.Fatalf("%v: -c and -b are exclusive", os.Args[0])
	}

	if len(compile) == 0 && len(binary) == 0 {
		log.Fatalf("%v: one of -c or -b is required", os.Args[0])
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.Cpu.Reserved = cpu.ReservedPolicy(reserved)
	emu.MaxTicks = max_ticks
	if entry.set {
		emu.Entry = int(entry.value)
	}

	prog := &cpu.Program{}

	// Assemble a new program.
	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: verbose}
		for name, value := range emu.Defines() {
			asm.Predefine(name, value)
		}
		prog, err = asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	}

	// Load a raw image.
	if len(binary) != 0 {
		image, err := os.ReadFile(binary)
		if err != nil {
			log.Fatalf("%v: %v", binary, err)
		}
		prog = cpu.NewImage(base.value, image)
	}

	emu.Program = prog
	load, image := prog.Binary()

	if save {
		if len(output) == 0 {
			log.Fatalf("%v: -s requires -o", os.Args[0])
		}
		err := os.WriteFile(output, image, 0o644)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		return
	}

	if listing {
		dis := &disasm.Disassembler{Verbose: verbose}
		if emu.Cpu.Reserved == cpu.RESERVED_NOP {
			dis.Policy = disasm.POLICY_NOP
		}
		err := dis.Listing(os.Stdout, image, uint16(load))
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	err := emu.Reset()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = emu.Run(ctx)

	fmt.Print(emu.Cpu.String())
	if verbose {
		log.Printf("%v after %v instructions", emu.Cpu.Status(), emu.Cpu.Ticks)
	}

	if hexdump {
		derr := emu.Cpu.Memory.Dump(os.Stdout, load, len(image), dumpWidth(terminalWidth()))
		if derr != nil {
			log.Fatal(derr)
		}
	}

	if err != nil {
		log.Fatal(err)
	}
}
