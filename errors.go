package rrbtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("rrbtree: invalid configuration")
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("rrbtree: index out of bounds")
	// ErrInvariantViolated signals that Check found a structural invariant
	// (S1-S3, T1-T3) broken. This should never happen as a result of public
	// operations; it exists for test and fuzz harnesses.
	ErrInvariantViolated = errors.New("rrbtree: internal invariant violated")
)
