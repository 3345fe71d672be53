package micro

import (
	"maps"
)

// Map relates instruction codes to the micro-program counter address of the
// micro-routine implementing each instruction.
type Map map[Code]byte

// builtin is the fixed default instruction set, available even when no
// configuration document is present.
var builtin = Map{
	0x484C5400: 0x03, // HLT
	0x4D4F5621: 0x04, // MOV A, X
	0x41444421: 0x0B, // ADD A, X
	0x4A4D5010: 0x50, // JMP X
	0x42520010: 0x80, // BR X
}

// NewMap returns a Map preloaded with the built-in instruction set.
func NewMap() Map {
	return maps.Clone(builtin)
}

// Lookup returns the MPC address mapped to an instruction code.
func (m Map) Lookup(code Code) (mpc byte, ok bool) {
	mpc, ok = m[code]
	return
}
