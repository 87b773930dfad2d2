package mem

import (
	"errors"

	"github.com/Coldlapse/16bit-SIC/translate"
)

var f = translate.From

var (
	// Memory errors
	ErrAddressRange = errors.New(f("address out of range"))
)

// ErrAddress is a word access at an address outside [0, Size-2].
type ErrAddress int

func (err ErrAddress) Error() string {
	return f("address %#06x out of range", int(err))
}

func (err ErrAddress) Unwrap() error {
	return ErrAddressRange
}

// ErrDumpRange is a dump request whose range falls outside the store or
// runs backwards.
type ErrDumpRange struct {
	Start int
	End   int
}

func (err *ErrDumpRange) Error() string {
	return f("dump range %#06x..%#06x out of range", err.Start, err.End)
}

func (err *ErrDumpRange) Unwrap() error {
	return ErrAddressRange
}
