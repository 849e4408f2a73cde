package automorphism

import "errors"

// ErrOracleFailure is returned when the automorphism oracle allocation or
// an invariant check on its response fails.
var ErrOracleFailure = errors.New("automorphism: oracle failure")

// ErrDomainError is returned for out-of-range vertex indices or partitions
// that do not cover [0, n).
var ErrDomainError = errors.New("automorphism: domain error")
