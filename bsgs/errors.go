package bsgs

import "errors"

// ErrUnsupported is returned for configuration choices that are recognized
// but not implemented, e.g. Transversals: ShallowSchreierTrees.
var ErrUnsupported = errors.New("bsgs: unsupported configuration")

// ErrInvariantViolated is returned when a completed construction's own
// strong generators fail to strip to identity: an assertion-class failure
// that indicates a bug in construction, not bad input.
var ErrInvariantViolated = errors.New("bsgs: invariant violated")

// ErrDegreeMismatch is returned when the supplied generating set's degree
// does not match the requested degree.
var ErrDegreeMismatch = errors.New("bsgs: degree mismatch")
