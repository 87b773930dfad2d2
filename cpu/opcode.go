package cpu

import (
	"fmt"
)

// Opcode is the 4-bit instruction selector held in the high nibble of an
// instruction word.
type Opcode uint16

const (
	OP_LDA = Opcode(0x0) // Load AC from a memory address.
	OP_STA = Opcode(0x1) // Store AC to a memory address.
	OP_ADD = Opcode(0x2) // Add an immediate to AC.
	OP_MUL = Opcode(0x3) // Multiply AC by an immediate.
	OP_DIV = Opcode(0x4) // Divide AC by an immediate.
	OP_MOD = Opcode(0x5) // Reduce AC modulo an immediate.
	OP_SEA = Opcode(0xF) // Set AC to an immediate.
)

// OperandKind tells how an opcode interprets its 12-bit operand.
type OperandKind int

const (
	OPERAND_ADDRESS   = OperandKind(0) // Operand is a memory address.
	OPERAND_IMMEDIATE = OperandKind(1) // Operand is a literal value.
)

// opcodeInfo describes one instruction set entry.
type opcodeInfo struct {
	Mnemonic string
	Operand  OperandKind
}

// opcodeTable is the single source for the instruction set: encoding,
// mnemonic and operand interpretation per opcode. The address/immediate
// split is part of the contract: the load/store group references memory,
// the arithmetic group and OP_SEA consume the operand as a literal.
var opcodeTable = map[Opcode]opcodeInfo{
	OP_LDA: {"LDA", OPERAND_ADDRESS},
	OP_STA: {"STA", OPERAND_ADDRESS},
	OP_ADD: {"ADD", OPERAND_IMMEDIATE},
	OP_MUL: {"MUL", OPERAND_IMMEDIATE},
	OP_DIV: {"DIV", OPERAND_IMMEDIATE},
	OP_MOD: {"MOD", OPERAND_IMMEDIATE},
	OP_SEA: {"SEA", OPERAND_IMMEDIATE},
}

// mnemonicMap maps assembly mnemonics back to opcodes, derived from
// opcodeTable so the two can never drift apart.
var mnemonicMap = func() map[string]Opcode {
	mm := make(map[string]Opcode, len(opcodeTable))
	for op, info := range opcodeTable {
		mm[info.Mnemonic] = op
	}
	return mm
}()

// Valid reports whether the opcode is defined by the instruction set.
func (op Opcode) Valid() bool {
	_, ok := opcodeTable[op]
	return ok
}

// Kind returns the operand interpretation of the opcode. Only meaningful
// for valid opcodes.
func (op Opcode) Kind() OperandKind {
	return opcodeTable[op].Operand
}

// String returns the mnemonic, or the raw nibble for an undefined opcode.
func (op Opcode) String() string {
	info, ok := opcodeTable[op]
	if !ok {
		return fmt.Sprintf("OP_%X", uint16(op))
	}

	return info.Mnemonic
}

// Lookup finds the opcode for an assembly mnemonic.
func Lookup(mnemonic string) (op Opcode, ok bool) {
	op, ok = mnemonicMap[mnemonic]
	return
}

// Instruction is one 16-bit instruction word: a 4-bit opcode in the high
// nibble and a 12-bit operand in the low bits.
type Instruction uint16

// Encode packs an opcode and operand into an instruction word. The
// operand is truncated to 12 bits.
func Encode(op Opcode, operand uint16) Instruction {
	return Instruction(uint16(op)<<12 | operand&0x0fff)
}

// Opcode returns the high nibble.
func (in Instruction) Opcode() Opcode {
	return Opcode(uint16(in) >> 12)
}

// Operand returns the low 12 bits.
func (in Instruction) Operand() uint16 {
	return uint16(in) & 0x0fff
}

// String returns the assembly form of the instruction.
func (in Instruction) String() string {
	return fmt.Sprintf("%v %03X", in.Opcode(), in.Operand())
}
