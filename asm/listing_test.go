package asm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListingBytes(t *testing.T) {
	assert := assert.New(t)

	listing := &Listing{
		Entries: []Entry{
			{Addr: 0, Byte: 0x0B, LineNo: 1, Text: "ADD $04, 5"},
			{Addr: 1, Byte: 0x04, LineNo: 1},
			{Addr: 2, Byte: 0x05, LineNo: 1},
		},
	}

	assert.Equal([]byte{0x0B, 0x04, 0x05}, listing.Bytes())
	assert.Equal(3, listing.Size())
}

func TestListingAt(t *testing.T) {
	assert := assert.New(t)

	listing := &Listing{
		Base: 0x10,
		Entries: []Entry{
			{Addr: 0x10, Byte: 0x03, LineNo: 2, Text: "HLT"},
		},
	}

	entry := listing.At(0x10)
	assert.NotNil(entry)
	assert.Equal(byte(0x03), entry.Byte)
	assert.Equal(2, entry.LineNo)

	assert.Nil(listing.At(0x11))
}

func TestListingWriteTo(t *testing.T) {
	assert := assert.New(t)

	listing := &Listing{
		Entries: []Entry{
			{Addr: 0, Byte: 0x50},
			{Addr: 1, Byte: 0x02},
		},
	}

	var buf bytes.Buffer
	n, err := listing.WriteTo(&buf)
	assert.NoError(err)
	assert.Equal(int64(2), n)
	assert.Equal([]byte{0x50, 0x02}, buf.Bytes())
}
