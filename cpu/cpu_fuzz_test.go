package cpu

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Coldlapse/16bit-SIC/mem"
)

func FuzzCpu(f *testing.F) {
	f.Add(uint16(0xF00A), uint16(0))
	f.Add(uint16(0x4000), uint16(7))
	f.Add(uint16(0x6123), uint16(0))
	f.Add(uint16(0x0FFF), uint16(0x5555))
	f.Add(uint16(0x1FFF), uint16(0x5555))
	f.Add(uint16(0x0000), uint16(0))
	f.Add(uint16(0xFFFF), uint16(0xFFFF))

	f.Fuzz(func(t *testing.T, word uint16, ac uint16) {
		assert := assert.New(t)

		m := mem.NewMemory()
		cpu := NewCpu(m)

		err := m.WriteWord(0, word)
		assert.NoError(err)

		cpu.AC.Write(ac)

		pre, err := m.Dump(0, mem.Size-1, mem.FormatHex)
		assert.NoError(err)

		err = cpu.Step()

		state := fmt.Sprintf("word=%#04x ac=%#04x err=%v", word, ac, err)

		// The fetch at address zero always succeeds, so PC has advanced
		// one word and IR holds the instruction no matter what the
		// execute did.
		assert.Equal(uint16(WORD_SIZE), cpu.PC.Read(), state)
		assert.Equal(word, cpu.IR.Read(), state)

		in := Instruction(word)
		op := in.Opcode()
		operand := in.Operand()

		post, dump_err := m.Dump(0, mem.Size-1, mem.FormatHex)
		assert.NoError(dump_err)

		if !op.Valid() {
			assert.ErrorIs(err, ErrOpcodeUnknown, state)
			assert.Equal(ac, cpu.AC.Read(), state)
			assert.Equal(pre, post, state)
			return
		}

		// The only failure modes are the three runtime errors; any
		// other error kind is a decode or dispatch defect.
		if err != nil {
			ok := errors.Is(err, ErrOpcodeUnknown) ||
				errors.Is(err, ErrDivideByZero) ||
				errors.Is(err, mem.ErrAddressRange)
			assert.True(ok, state)
		}

		if op.Kind() == OPERAND_IMMEDIATE {
			// Immediate opcodes never touch memory.
			assert.Equal(pre, post, state)
		}

		switch op {
		case OP_LDA:
			if int(operand) >= mem.Size-1 {
				assert.ErrorIs(err, mem.ErrAddressRange, state)
				assert.Equal(ac, cpu.AC.Read(), state)
				return
			}
			assert.NoError(err, state)
			var expected uint16
			switch operand {
			case 0:
				expected = word
			case 1:
				// Overlapping read: the word's low cell in the high
				// position, a zero cell in the low.
				expected = word << 8
			default:
				expected = 0
			}
			assert.Equal(expected, cpu.AC.Read(), state)
		case OP_STA:
			if int(operand) >= mem.Size-1 {
				assert.ErrorIs(err, mem.ErrAddressRange, state)
				assert.Equal(pre, post, state)
				return
			}
			assert.NoError(err, state)
			assert.Equal(ac, cpu.AC.Read(), state)
			value, read_err := m.ReadWord(int(operand))
			assert.NoError(read_err, state)
			assert.Equal(ac, value, state)
		case OP_ADD:
			assert.NoError(err, state)
			assert.Equal(ac+operand, cpu.AC.Read(), state)
		case OP_MUL:
			assert.NoError(err, state)
			assert.Equal(ac*operand, cpu.AC.Read(), state)
		case OP_DIV:
			if operand == 0 {
				assert.ErrorIs(err, ErrDivideByZero, state)
				assert.Equal(ac, cpu.AC.Read(), state)
				return
			}
			assert.NoError(err, state)
			assert.Equal(ac/operand, cpu.AC.Read(), state)
		case OP_MOD:
			if operand == 0 {
				assert.ErrorIs(err, ErrDivideByZero, state)
				assert.Equal(ac, cpu.AC.Read(), state)
				return
			}
			assert.NoError(err, state)
			assert.Equal(ac%operand, cpu.AC.Read(), state)
		case OP_SEA:
			assert.NoError(err, state)
			assert.Equal(operand, cpu.AC.Read(), state)
		}
	})
}
