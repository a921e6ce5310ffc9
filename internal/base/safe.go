package base

import (
	"strconv"

	"github.com/cockroachdb/redact"
)

// Coord marks a row, column, or dimension value (k, h, n') as safe for
// redacted logging when threaded through OutOfRangef/InvalidInputf and the
// errors they build, mirroring the teacher's SafeFormat treatment of
// TableNum/DiskFileNum in internal/base/filenames.go.
type Coord int

// String returns the decimal representation of c.
func (c Coord) String() string { return strconv.Itoa(int(c)) }

// SafeFormat implements redact.SafeFormatter.
func (c Coord) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Print(redact.SafeString(c.String()))
}
