package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegister_ReadWrite(t *testing.T) {
	assert := assert.New(t)

	r := &Register{}
	assert.Equal(uint16(0), r.Read())

	r.Write(0x1234)
	assert.Equal(uint16(0x1234), r.Read())

	r.Write(0xFFFF)
	assert.Equal(uint16(0xFFFF), r.Read())

	// A register holds anything; there is no address validation here,
	// even for values past the end of memory.
	r.Write(0xFFFE)
	assert.Equal(uint16(0xFFFE), r.Read())

	r.Write(0)
	assert.Equal(uint16(0), r.Read())
}
