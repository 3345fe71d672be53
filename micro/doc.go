// Package micro models the instruction encoding for a microcoded processor
// realized in logic hardware.
//
// Every instruction is identified by a 32-bit code packing its mnemonic and
// operand-type signature, and a Map relates each code to the micro-program
// counter (MPC) address emitted for the instruction's opcode byte. A built-in
// instruction set is always present; additional instructions are merged in
// from a TOML configuration document.
package micro
