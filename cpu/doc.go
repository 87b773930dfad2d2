// Package cpu implements the SIC-16 processor and its assembler.
//
// The processor is a single-accumulator machine: a program counter (PC),
// an instruction register (IR) and an accumulator (AC), each a 16-bit
// register, plus an arithmetic unit. An instruction is one 16-bit word, a
// 4-bit opcode in the high nibble and a 12-bit operand whose meaning
// depends on the opcode: an address for the load/store group, a literal
// for the arithmetic group. Execution is a synchronous fetch and execute
// cycle over a borrowed mem.Memory. There is no halt instruction; a run
// ends when a step fails or the driver stops stepping.
//
// The assembler translates the one-instruction-per-line program format
// into a Program image, supporting comments, labels, equates, a raw data
// directive and compile-time expression evaluation.
package cpu
