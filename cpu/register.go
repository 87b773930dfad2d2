package cpu

// Register is a single 16-bit storage cell. The processor owns three, one
// per role: program counter, instruction register, accumulator. A register
// holds whatever it is given; it has no arithmetic and no failure modes.
type Register struct {
	value uint16
}

// Read returns the current value.
func (r *Register) Read() uint16 {
	return r.value
}

// Write sets the value unconditionally.
func (r *Register) Write(value uint16) {
	r.value = value
}
