package emulator

import (
	"fmt"
	"iter"
	"maps"

	"github.com/Coldlapse/16bit-SIC/cpu"
	"github.com/Coldlapse/16bit-SIC/internal"
	"github.com/Coldlapse/16bit-SIC/mem"
)

const (
	PROG_BASE = 0 // Address the program image is loaded at.
)

var _emulator_defines = map[string]string{
	"PROG_BASE": fmt.Sprintf("%#x", PROG_BASE),
}

// Emulator state. Memory + CPU + the loaded program listing.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	Mem      *mem.Memory  // The machine memory, owned here.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently loaded program listing.
}

// NewEmulator creates a new emulator with a fresh memory and a CPU bound
// to it.
func NewEmulator() (emu *Emulator) {
	m := mem.NewMemory()

	emu = &Emulator{
		Mem:     m,
		Cpu:     cpu.NewCpu(m),
		Program: &cpu.Program{},
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
		emu.Mem.Defines(),
	)
}

// Reset zeroes the machine and rewrites the loaded program image into
// memory, one word per statement from PROG_BASE upward.
func (emu *Emulator) Reset() (err error) {
	emu.Mem.Reset()
	emu.Cpu.Reset()

	for addr, code := range emu.Program.Words() {
		err = emu.Mem.WriteWord(PROG_BASE+addr, uint16(code))
		if err != nil {
			return
		}
	}

	return
}

// Load sets the program listing and resets the machine with its image.
func (emu *Emulator) Load(prog *cpu.Program) (err error) {
	emu.Program = prog

	err = emu.Reset()

	return
}

// LineNo returns the source line of the statement PC points at, or zero
// when the listing has no statement there.
func (emu *Emulator) LineNo() int {
	st := emu.Program.Debug(int(emu.Cpu.PC.Read()))
	if st == nil {
		return 0
	}

	return st.LineNo
}

// Step performs a single fetch and execute cycle of the emulator. A
// failure carries the address, and when the listing covers it the source
// line, of the faulting instruction.
func (emu *Emulator) Step() (err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	addr := int(emu.Cpu.PC.Read())
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Addr: addr, LineNo: lineno, Err: err}
		}
	}()

	err = emu.Cpu.Step()

	return
}

// Run steps the machine until a step fails, and returns that failure.
// The instruction set has no halt, so every run ends this way; the
// caller decides which failures are expected.
func (emu *Emulator) Run() (err error) {
	for err == nil {
		err = emu.Step()
	}

	return
}
