// Package invariants centralizes the build-tag-gated debug mode used
// throughout this module. Code that is expensive enough to skip in normal
// builds, but cheap enough to run whenever the "invariants" build tag is set,
// guards itself with invariants.Enabled.
package invariants

import (
	"math/rand/v2"

	"github.com/postfix/k2trees/internal/buildtags"
)

// Enabled is true when the binary was built with the "invariants" build tag.
// Assertions that re-derive a result by a second, slower method (e.g.
// recomputing rank1 by scanning instead of trusting the precomputed table)
// should be gated on this flag.
const Enabled = buildtags.Invariants

// Sometimes returns true percent% of the time, but only in invariants
// builds; it always returns false otherwise. Useful for sampling an
// expensive check across many calls instead of paying its cost on every one.
func Sometimes(percent int) bool {
	return Enabled && rand.IntN(100) < percent
}
