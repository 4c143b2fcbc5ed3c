// Package cpu implements the microprocessor and assembler for an 8080-family
// 8-bit CPU.
//
// The CPU consists of seven 8-bit registers (A, B, C, D, E, H, L) usable as
// the 16-bit pairs BC, DE and HL, a 16-bit stack pointer and program counter,
// five condition flags (Z, S, P, CY, AC), an interrupt-enable latch, and a
// flat 64K byte memory image. Execution is driven one instruction at a time
// by Step, which reports whether the CPU is still running, has halted, or has
// faulted on a reserved opcode.
//
// The assembler provides a classic 8080 assembly language, supporting macros,
// labels, equates, and compile-time expression evaluation.
package cpu
