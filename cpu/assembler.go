package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

// Assembler is a single pass assembler for the SIC-16 program format.
//
// One statement per line: `MNEMONIC OPERAND`, the operand a base 16
// literal, a label reference or an equate. A `;` starts a comment, blank
// lines are skipped. `.equ NAME VALUE` defines an equate, `NAME:`
// prefixes define labels, `.word VALUE` emits a raw data word, and
// `$(...)` evaluates a compile-time expression over the numeric equates.
// Label references resolve in a final link pass, so forward references
// are fine. A label whose name parses as a base 16 number cannot be
// referenced; the numeric reading wins.
type Assembler struct {
	Verbose   bool        // If set, verbosely logs the assembler actions.
	Statement []Statement // List of generated statements.

	predefine map[string]string // Predefines
	Label     map[string]int    // Map of labels to image addresses.
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// identRe matches words that can be label references.
var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// valueOf returns the value of a numeric word. Operands are base 16 per
// the program format; a 0x prefix is tolerated so equates and $()
// substitutions round-trip.
func (asm *Assembler) valueOf(word string) (value uint16, err error) {
	text := strings.TrimPrefix(strings.ToLower(word), "0x")

	v64, err := strconv.ParseUint(text, 16, 16)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value = uint16(v64)

	return
}

// operandOf resolves an operand word: a numeric word encodes immediately,
// an identifier is a label reference linked after the parse.
func (asm *Assembler) operandOf(word string) (value uint16, label string, err error) {
	value, err = asm.valueOf(word)
	if err == nil {
		return
	}

	if identRe.MatchString(word) {
		err = nil
		label = word
	}

	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value uint16, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var value16 uint16
		value16, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-numeric equates. They may be labels
			// or something else.
			err = nil
			continue
		}
		pred[key] = starlark.MakeInt(int(value16))
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = uint16(st_int64)
	return
}

// parseLine expands a single line into statement words.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%#x", lineno)

	// Do $() evaluations
	re := regexp.MustCompile(`\$\([^\$]*\)`)
	line = re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%#x", value)
	})
	if err != nil {
		return
	}

	words = strings.Fields(line)

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		// Check for equate next
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	for strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		if asm.Label == nil {
			asm.Label = make(map[string]int, 16)
		}
		asm.Label[label] = asm.currentAddr()
		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	return
}

// currentAddr gets the image address of the next statement.
func (asm *Assembler) currentAddr() int {
	return len(asm.Statement) * WORD_SIZE
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	clear(asm.Label)
	asm.Statement = asm.Statement[:0]
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	// Final linking of label references.
	for n := range asm.Statement {
		st := &asm.Statement[n]

		if len(st.LinkLabel) == 0 {
			continue
		}
		addr, ok := asm.Label[st.LinkLabel]
		if !ok {
			lineno = st.LineNo
			line = strings.Join(st.Words, " ")
			err = ErrLabelMissing(st.LinkLabel)
			return
		}
		if st.Words[0] == ".word" {
			st.Code = Instruction(uint16(addr))
		} else {
			st.Code = Encode(st.Code.Opcode(), uint16(addr))
		}
	}

	prog = &Program{
		Statements: slices.Clone(asm.Statement),
	}

	return
}

// parseWords evaluates the words in a line of program text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	// no-op
	if len(words) == 0 {
		return
	}

	var code Instruction
	var label string

	initial_words := words

	defer func() {
		if err != nil {
			return
		}
		st := Statement{LineNo: lineno, Addr: asm.currentAddr(), Words: initial_words, Code: code, LinkLabel: label}
		asm.Statement = append(asm.Statement, st)
	}()

	// .word VALUE
	if words[0] == ".word" {
		if len(words) < 2 {
			err = ErrWordSyntax
			return
		}
		if len(words) > 2 {
			err = ErrOperandExtra
			return
		}
		var value uint16
		value, label, err = asm.operandOf(words[1])
		if err != nil {
			return
		}
		code = Instruction(value)
		return
	}

	// MNEMONIC OPERAND
	op, ok := Lookup(words[0])
	if !ok {
		err = ErrMnemonicUnknown
		return
	}
	if len(words) < 2 {
		err = ErrOperandMissing
		return
	}
	if len(words) > 2 {
		err = ErrOperandExtra
		return
	}

	var operand uint16
	operand, label, err = asm.operandOf(words[1])
	if err != nil {
		return
	}

	code = Encode(op, operand)

	return
}
