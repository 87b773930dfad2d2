package mem

import (
	"fmt"
	"strings"
)

// Format selects the rendering of a dump. The values are number bases;
// anything other than FormatHex renders binary.
type Format int

const (
	FormatBinary = Format(2)
	FormatHex    = Format(16)
)

const (
	hexPerLine = 16 // hex bytes per dump line
	binPerLine = 8  // binary bytes per dump line
)

// Dump renders the cells in [start, end] inclusive as a diagnostic view.
// Hexadecimal mode prints each byte as two uppercase hex digits, sixteen
// to a line; binary mode prints eight binary digits per byte, eight to a
// line. The final byte always ends its line. Dump never mutates memory.
func (m *Memory) Dump(start, end int, format Format) (text string, err error) {
	if start < 0 || end >= Size || start > end {
		err = &ErrDumpRange{Start: start, End: end}
		return
	}

	perLine := binPerLine
	if format == FormatHex {
		perLine = hexPerLine
	}

	var sb strings.Builder
	for i := start; i <= end; i++ {
		if format == FormatHex {
			fmt.Fprintf(&sb, "%02X", m.cell[i])
		} else {
			fmt.Fprintf(&sb, "%08b", m.cell[i])
		}

		if (i-start+1)%perLine == 0 || i == end {
			sb.WriteByte('\n')
		} else {
			sb.WriteByte(' ')
		}
	}

	text = sb.String()

	return
}
