// Package k2tree implements the k²-tree: a compact, read-optimized encoding
// of a sparse, valued N×N relation as two bit/value arrays plus a rank-1
// index, navigated by recursive quadrant descent.
package k2tree

import (
	"fmt"

	"github.com/cockroachdb/redact"
)

// Position is a (row, column) pair returned by the positional query family.
type Position struct {
	Row, Col int
}

// String returns "(row,col)".
func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// SafeFormat implements redact.SafeFormatter, mirroring the teacher's
// treatment of TableNum/DiskFileNum: positions carry no user data, so they're
// always safe to include in a redacted log or error.
func (p Position) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Print(redact.SafeString(p.String()))
}

// ValuedPosition pairs a Position with the element stored there.
type ValuedPosition[E any] struct {
	Row, Col int
	Value    E
}

// powInt returns base raised to the exp power, for small non-negative exp
// (heights are always small: h = ceil(log_k(N)), realistically well under
// 64 even for enormous relations).
func powInt(base, exp int) int {
	result := 1
	for ; exp > 0; exp-- {
		result *= base
	}
	return result
}

// logK returns ceil(log_k(n)), the smallest h such that k^h >= n; for
// n <= 1 it returns 0. k must be >= 2 (the builders reject smaller k before
// calling this); the function itself does not check k.
func logK(n, k int) int {
	h := 0
	side := 1
	for side < n {
		side *= k
		h++
	}
	return h
}

// heightFor computes h = max(1, ceil(log_k(maxExtent))), the height used by
// every builder to size n' = k^h.
func heightFor(maxExtent, k int) int {
	h := logK(maxExtent, k)
	if h < 1 {
		h = 1
	}
	return h
}

// allNull reports whether every element of block equals null. Used by the
// dense-matrix builder to decide whether a freshly assembled k² block of
// leaf values collapses to "absent" and can be elided, and by the
// dynamic-bitmap builder's h == 1 case.
func allNull[E comparable](block []E, null E) bool {
	for _, v := range block {
		if v != null {
			return false
		}
	}
	return true
}

// ColValue is one entry of a row-adjacency list: a column index paired with
// the value stored there. Row-adjacency-list builders require each row's
// slice of ColValue to be sorted by Col, with no duplicate columns.
type ColValue[E any] struct {
	Col   int
	Value E
}

// Triple is a (row, column, value) entry accepted by the in-place
// triple-list builder (§4.3.5). Duplicates are not deduplicated; whichever
// triple is processed last into a given leaf block wins.
type Triple[E any] struct {
	Row, Col int
	Value    E
}
