package asm

import (
	"github.com/microcode/asm92/micro"
)

// DefaultCarryAdjust compensates for the carry the target hardware's ALU
// propagates when a two's-complement negative displacement is added to the
// program counter. Hardware feeding the PSW carry-out directly into the ALU
// carry-in wants 1 instead.
const DefaultCarryAdjust = 2

// resolveTarget interprets a jump or branch operand, preferring a known
// label over the literal reading of the same text. Relative branches (the
// mnemonics starting with 'B') convert a label's absolute address into a
// signed displacement from the current program address; JMP and JSR use the
// address as is.
func (asm *Assembler) resolveTarget(mnemonic, raw string, addr int) (value byte, err error) {
	if target, ok := asm.Labels[raw]; ok {
		value = target
		if mnemonic[0] != 'B' {
			return
		}

		adjust := asm.CarryAdjust
		if adjust == 0 {
			adjust = DefaultCarryAdjust
		}

		// The +1 on a forward branch accounts for the program counter
		// pointing at the operand byte, not the opcode byte, when the
		// displacement is added during execution.
		offset := int(int8(target))
		if int(target) < addr {
			offset -= addr + adjust
		} else {
			offset -= addr + 1
		}
		value = byte(offset)
		return
	}

	if len(raw) > 2 {
		err = ErrBranchTarget
		return
	}
	value, err = micro.ParseHexByte(raw)
	if err != nil {
		err = ErrBranchTarget
		return
	}
	value += asm.Directives["base_addr"]

	return
}
