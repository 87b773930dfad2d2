package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/Coldlapse/16bit-SIC/mem"
)

// WORD_SIZE is the width of one instruction, in memory cells.
const WORD_SIZE = 2

var _cpu_defines = map[string]string{
	"WORD_SIZE": fmt.Sprintf("%#x", WORD_SIZE),
}

// Cpu is the execution engine: three registers, an arithmetic unit, and a
// reference to the machine memory. The engine is fully self-contained;
// several engines may run side by side over distinct memories.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	PC Register // Program counter, the address of the next instruction.
	IR Register // Instruction register, the word being executed.
	AC Register // Accumulator, the load/store and arithmetic target.

	Alu Alu         // Arithmetic unit.
	Mem *mem.Memory // Reference to the machine memory.
}

// NewCpu creates a CPU bound to a memory. The engine only borrows the
// memory; the caller stays its owner.
func NewCpu(m *mem.Memory) (cpu *Cpu) {
	cpu = &Cpu{
		Mem: m,
	}

	return
}

// Defines for the cpu, used as assembler predefines.
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset zeroes the registers. Memory is not touched.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.PC.Write(0)
	cpu.IR.Write(0)
	cpu.AC.Write(0)
}

// String returns the register view, one register per line, values as four
// uppercase hex digits.
func (cpu *Cpu) String() (text string) {
	regs := []struct {
		name string
		reg  *Register
	}{
		{"PC", &cpu.PC},
		{"IR", &cpu.IR},
		{"AC", &cpu.AC},
	}
	for _, r := range regs {
		text += fmt.Sprintf("%v: %04X\n", r.name, r.reg.Read())
	}

	return
}

// Fetch reads the instruction word at PC into IR, then advances PC by one
// word. On a bounds failure IR and PC are left untouched.
func (cpu *Cpu) Fetch() (err error) {
	addr := cpu.PC.Read()

	word, err := cpu.Mem.ReadWord(int(addr))
	if err != nil {
		return
	}

	cpu.IR.Write(word)
	cpu.PC.Write(addr + WORD_SIZE)

	return
}

// Execute decodes IR and dispatches it. A failure aborts the cycle where
// it is raised: mutations already applied stay applied, and PC keeps the
// advance done by Fetch. There is no rollback.
func (cpu *Cpu) Execute() (err error) {
	in := Instruction(cpu.IR.Read())

	op := in.Opcode()
	operand := in.Operand()

	if !op.Valid() {
		err = ErrInstruction(in)
		return
	}

	if cpu.Verbose {
		log.Printf("cpu: %04x: %v ac=%04x", cpu.PC.Read()-WORD_SIZE, in, cpu.AC.Read())
	}

	switch op {
	case OP_LDA:
		var value uint16
		value, err = cpu.Mem.ReadWord(int(operand))
		if err != nil {
			return
		}
		cpu.AC.Write(value)
	case OP_STA:
		err = cpu.Mem.WriteWord(int(operand), cpu.AC.Read())
	case OP_ADD:
		cpu.AC.Write(cpu.Alu.Add(cpu.AC.Read(), operand))
	case OP_MUL:
		cpu.AC.Write(cpu.Alu.Mul(cpu.AC.Read(), operand))
	case OP_DIV:
		var value uint16
		value, err = cpu.Alu.Div(cpu.AC.Read(), operand)
		if err != nil {
			return
		}
		cpu.AC.Write(value)
	case OP_MOD:
		var value uint16
		value, err = cpu.Alu.Mod(cpu.AC.Read(), operand)
		if err != nil {
			return
		}
		cpu.AC.Write(value)
	case OP_SEA:
		cpu.AC.Write(operand)
	}

	return
}

// Step runs one complete fetch and execute cycle. There is no partial
// state carried between steps: a failed step ends where the failure
// occurred, and the next Step starts a fresh fetch at the current PC.
func (cpu *Cpu) Step() (err error) {
	err = cpu.Fetch()
	if err != nil {
		return
	}

	err = cpu.Execute()

	return
}
