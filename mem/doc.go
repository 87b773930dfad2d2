// Package mem implements the byte-addressable memory of the SIC-16 machine.
//
// Memory is a fixed store of 4096 eight-bit cells, addressed individually,
// with word accessors that combine two consecutive cells big-endian (high
// byte first). A word access is valid only when both cells lie inside the
// store, so word addresses run from 0 to Size-2.
//
// The package also provides the diagnostic dump view: a formatted,
// read-only rendering of an inclusive cell range in hexadecimal or binary.
package mem
