package emulator

import (
	"github.com/Coldlapse/16bit-SIC/translate"
)

var f = translate.From

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Addr   int
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	if err.LineNo != 0 {
		return f("%#06x line %d %v", err.Addr, err.LineNo, err.Err)
	}

	return f("%#06x %v", err.Addr, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
