package micro

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMapBuiltins(t *testing.T) {
	assert := assert.New(t)

	m := NewMap()

	table := [](struct {
		code Code
		mpc  byte
	}){
		{0x484C5400, 0x03}, // HLT
		{0x4D4F5621, 0x04}, // MOV A, X
		{0x41444421, 0x0B}, // ADD A, X
		{0x4A4D5010, 0x50}, // JMP X
		{0x42520010, 0x80}, // BR X
	}

	for _, entry := range table {
		mpc, ok := m.Lookup(entry.code)
		assert.True(ok)
		assert.Equal(entry.mpc, mpc)
	}
}

func TestNewMapClones(t *testing.T) {
	assert := assert.New(t)

	m := NewMap()
	m[0x484C5400] = 0x7F

	fresh := NewMap()
	mpc, ok := fresh.Lookup(0x484C5400)
	assert.True(ok)
	assert.Equal(byte(0x03), mpc)
}

func TestLookupMissing(t *testing.T) {
	assert := assert.New(t)

	m := NewMap()
	_, ok := m.Lookup(0x53554221) // SUB A, X is not built in
	assert.False(ok)
}
