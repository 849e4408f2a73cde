package permgroup

import "errors"

// ErrDegreeMismatch is returned when a permutation passed to Contains has a
// different degree than the group.
var ErrDegreeMismatch = errors.New("permgroup: degree mismatch")
