package taskorbit

import "errors"

// ErrDomainError is returned when an allocation entry falls outside the
// acting group's degree after the offset is applied. It wraps the
// underlying perm.ErrDomainError so callers can check either sentinel.
var ErrDomainError = errors.New("taskorbit: domain error")
