package cpu

import (
	"errors"

	"github.com/Coldlapse/16bit-SIC/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrDivideByZero  = errors.New(f("division by zero"))
	ErrOpcodeUnknown = errors.New(f("opcode unknown"))

	// Assembler errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrWordSyntax      = errors.New(f(".word syntax"))
	ErrLabelDuplicate  = errors.New(f("label duplicated"))
	ErrMnemonicUnknown = errors.New(f("mnemonic unknown"))
	ErrOperandMissing  = errors.New(f("operand missing"))
	ErrOperandExtra    = errors.New(f("excessive operands"))
)

// ErrInstruction is an instruction word whose opcode nibble is not in the
// instruction set.
type ErrInstruction Instruction

func (err ErrInstruction) Error() string {
	return f("bad instruction %#04x %v", uint16(err), Instruction(err).String())
}

func (err ErrInstruction) Unwrap() error {
	return ErrOpcodeUnknown
}

type ErrLabelMissing string

func (err ErrLabelMissing) Error() string {
	return f("label %v missing", string(err))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a base 16 number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
