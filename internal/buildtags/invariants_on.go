//go:build invariants

package buildtags

// Invariants indicates whether the invariants build tag is set. See
// invariants.Enabled.
const Invariants = true
