package cpu

// Alu performs the machine's integer arithmetic. It is stateless. Add and
// Mul wrap silently at 16 bits, which is machine-width arithmetic and not
// a failure; Div and Mod fail on a zero divisor.
type Alu struct{}

// Add returns a+b mod 2^16.
func (Alu) Add(a, b uint16) uint16 {
	return a + b
}

// Mul returns a*b mod 2^16.
func (Alu) Mul(a, b uint16) uint16 {
	return a * b
}

// Div returns a/b, truncated, or ErrDivideByZero when b is zero.
func (Alu) Div(a, b uint16) (value uint16, err error) {
	if b == 0 {
		err = ErrDivideByZero
		return
	}

	value = a / b

	return
}

// Mod returns a mod b, or ErrDivideByZero when b is zero.
func (Alu) Mod(a, b uint16) (value uint16, err error) {
	if b == 0 {
		err = ErrDivideByZero
		return
	}

	value = a % b

	return
}
