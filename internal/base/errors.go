// Package base holds error values and small assertion helpers shared across
// the k2trees module, in the spirit of pebble's internal/base package: a
// place for the vocabulary every other package needs without pulling in the
// whole tree implementation.
package base

import (
	"github.com/cockroachdb/errors"
)

// ErrOutOfRange is returned (wrapped with the offending coordinate) when a
// query coordinate falls outside [0, n').
var ErrOutOfRange = errors.New("k2trees: coordinate out of range")

// ErrInvalidInput is returned (wrapped with detail) when a builder is handed
// a malformed input: a ragged dense matrix, an out-of-order row-adjacency
// list, a duplicate column within a row, or an arity k < 2.
var ErrInvalidInput = errors.New("k2trees: invalid input")

// OutOfRangef wraps ErrOutOfRange with a formatted detail message.
func OutOfRangef(format string, args ...interface{}) error {
	return errors.Wrapf(ErrOutOfRange, format, args...)
}

// InvalidInputf wraps ErrInvalidInput with a formatted detail message.
func InvalidInputf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidInput, format, args...)
}

// AssertionFailedf returns an assertion-failure error carrying the
// formatted message; it does not panic itself, so callers that want to
// abort pass the result to panic. Meant for internal-consistency checks that
// should be unreachable given the structural invariants of the encoded tree;
// callers typically gate the surrounding check on invariants.Enabled so the
// (cheap but non-zero) recomputation only happens in debug builds.
func AssertionFailedf(format string, args ...interface{}) error {
	return errors.AssertionFailedf(format, args...)
}
