// Package asm implements a two-pass assembler translating line-oriented
// instruction listings into the dense binary encoding consumed by the
// micro-program execution engine.
//
// The first pass records label addresses and assembler directives while
// tracking the program address. The second pass resolves every operand
// (immediate value, direct address, or label-relative branch offset),
// maps each instruction through the instruction mapping table, and emits
// one byte per opcode target or operand. Source lines may contain
// assembly-time $() expression evaluations.
package asm
