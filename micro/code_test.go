package micro

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeCode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		mnemonic string
		op1, op2 OperandType
		code     Code
	}){
		{"HLT", OPERAND_NONE, OPERAND_NONE, 0x484C5400},
		{"MOV", OPERAND_DIRECT, OPERAND_IMMEDIATE, 0x4D4F5621},
		{"ADD", OPERAND_DIRECT, OPERAND_IMMEDIATE, 0x41444421},
		{"JMP", OPERAND_IMMEDIATE, OPERAND_NONE, 0x4A4D5010},
		{"BR", OPERAND_IMMEDIATE, OPERAND_NONE, 0x42520010},
		{"OR", OPERAND_DIRECT, OPERAND_DIRECT, 0x4F520022},
		{"A", OPERAND_NONE, OPERAND_NONE, 0x41000000},
	}

	for _, entry := range table {
		code, err := MakeCode(entry.mnemonic, entry.op1, entry.op2)
		assert.NoError(err, entry.mnemonic)
		assert.Equal(entry.code, code, entry.mnemonic)
	}
}

func TestMakeCodeMnemonicTooLong(t *testing.T) {
	assert := assert.New(t)

	_, err := MakeCode("HALT", OPERAND_NONE, OPERAND_NONE)
	assert.ErrorIs(err, ErrMnemonicInvalid)
}

func TestOperandTypeString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("none", OPERAND_NONE.String())
	assert.Equal("immediate", OPERAND_IMMEDIATE.String())
	assert.Equal("direct", OPERAND_DIRECT.String())
	assert.Equal("OperandType(9)", OperandType(9).String())
}
