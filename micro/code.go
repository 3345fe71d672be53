package micro

// OperandType classifies an instruction argument.
type OperandType int

//go:generate stringer -linecomment -type=OperandType
const (
	OPERAND_NONE      = OperandType(0) // none
	OPERAND_IMMEDIATE = OperandType(1) // immediate
	OPERAND_DIRECT    = OperandType(2) // direct
)

// Code is a 32-bit instruction lookup key. The mnemonic's ASCII characters
// occupy the three most significant bytes (unused slots are zero) and the two
// operand-type nibbles the least significant byte. Two instructions with the
// same mnemonic and operand-type signature share a Code; operand values never
// participate.
type Code uint32

// MakeCode packs a mnemonic of up to three characters and two operand types
// into a Code.
func MakeCode(mnemonic string, op1, op2 OperandType) (code Code, err error) {
	if len(mnemonic) > 3 {
		err = ErrMnemonicInvalid
		return
	}

	for n := 0; n < len(mnemonic); n++ {
		code |= Code(mnemonic[n]) << (8 * (3 - n))
	}
	code |= Code(op1&0xf)<<4 | Code(op2&0xf)

	return
}
