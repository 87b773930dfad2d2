package mem

import (
	"fmt"
	"iter"
	"maps"
)

const (
	// Size is the number of addressable cells.
	Size = 4096
)

var _mem_defines = map[string]string{
	"MEM_SIZE": fmt.Sprintf("%#x", Size),
}

// Memory is the machine's store: Size eight-bit cells, all zero at
// construction. It is created once per run by the driver and lent by
// reference to the execution engine; it is never resized or copied.
type Memory struct {
	cell [Size]byte
}

// NewMemory creates a zeroed Memory.
func NewMemory() (m *Memory) {
	m = &Memory{}

	return
}

// Defines for the memory, used as assembler predefines.
func (m *Memory) Defines() iter.Seq2[string, string] {
	return maps.All(_mem_defines)
}

// Reset zeroes every cell.
func (m *Memory) Reset() {
	clear(m.cell[:])
}

// ReadWord returns the big-endian combination of the cells at addr (high
// byte) and addr+1 (low byte). Both cells must be in range, so addr may be
// at most Size-2.
func (m *Memory) ReadWord(addr int) (value uint16, err error) {
	if addr < 0 || addr >= Size-1 {
		err = ErrAddress(addr)
		return
	}

	value = uint16(m.cell[addr])<<8 | uint16(m.cell[addr+1])

	return
}

// WriteWord splits value into its high and low bytes and stores them at
// addr and addr+1 respectively. Same bounds rule as ReadWord.
func (m *Memory) WriteWord(addr int, value uint16) (err error) {
	if addr < 0 || addr >= Size-1 {
		err = ErrAddress(addr)
		return
	}

	m.cell[addr] = byte(value >> 8)
	m.cell[addr+1] = byte(value)

	return
}
