package cpu

import (
	"iter"
)

// Statement is one assembled source line: its location, the tokenized
// text, and the instruction word it produced.
type Statement struct {
	LineNo    int
	Addr      int
	Words     []string
	Code      Instruction
	LinkLabel string
}

// Program is an assembled image: instruction words packed one per
// statement from address zero, with no gaps, plus the source map.
type Program struct {
	Statements []Statement
}

// Size returns the image size in memory cells.
func (prog *Program) Size() int {
	return len(prog.Statements) * WORD_SIZE
}

// Words yields (address, word) pairs in image order.
func (prog *Program) Words() iter.Seq2[int, Instruction] {
	return func(yield func(addr int, code Instruction) bool) {
		for _, st := range prog.Statements {
			if !yield(st.Addr, st.Code) {
				return
			}
		}
	}
}

// Debug finds the statement whose word occupies addr, or nil.
func (prog *Program) Debug(addr int) (st *Statement) {
	for n := range prog.Statements {
		if prog.Statements[n].Addr == addr {
			st = &prog.Statements[n]
			break
		}
	}

	return
}
